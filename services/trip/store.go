package trip

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"voyago/models"
	"voyago/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists trip sessions. The redis implementation backs
// production; the in-memory one backs tests.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.TripSession, error)
	Save(ctx context.Context, session *models.TripSession) error
	Delete(ctx context.Context, id string) error
}

// RedisSessionStore stores sessions as JSON blobs with a TTL, refreshed on
// every save.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: utils.TripSessionTTL}
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.TripSession, error) {
	data, err := s.Client.Get(ctx, utils.TripSessionPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session models.TripSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.TripSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, utils.TripSessionPrefix+session.ID, data, s.TTL).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.Client.Del(ctx, utils.TripSessionPrefix+id).Err()
}

// MemorySessionStore is a map-backed SessionStore for tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.TripSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]models.TripSession)}
}

func (s *MemorySessionStore) Get(ctx context.Context, id string) (*models.TripSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := session
	return &copied, nil
}

func (s *MemorySessionStore) Save(ctx context.Context, session *models.TripSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
