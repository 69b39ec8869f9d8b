package credential

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"voyago/services/completion"
	"voyago/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// keyPattern is the accepted completion-key format.
var keyPattern = regexp.MustCompile(`^(pk-|pplx-)[A-Za-z0-9]{24,}$`)

// ErrInvalidFormat is returned by Store when the submitted key does not match
// the expected format. The previously stored key, if any, is left untouched.
var ErrInvalidFormat = errors.New("credential does not match the expected key format")

// IsValid reports whether a key matches the accepted format.
func IsValid(value string) bool {
	return keyPattern.MatchString(value)
}

// Service manages per-session completion credentials. When a central key is
// configured, every session resolves to it and per-session storage is
// bypassed entirely.
type Service interface {
	Store(ctx context.Context, sessionID, value string) error
	Remove(ctx context.Context, sessionID string) error
	Present(ctx context.Context, sessionID string) bool
	Resolve(ctx context.Context, sessionID string) (string, error)
	Probe(ctx context.Context, value string) error
}

// DefaultCredentialService implements Service on the auth cache.
type DefaultCredentialService struct {
	Cache      *redis.Client
	Completion completion.Client
	CentralKey string
	Logger     *zap.Logger
}

func cacheKey(sessionID string) string {
	return utils.CredentialCachePrefix + sessionID
}

// Store validates and persists a key for the session. Invalid input returns
// ErrInvalidFormat without modifying prior state.
func (s *DefaultCredentialService) Store(ctx context.Context, sessionID, value string) error {
	value = strings.TrimSpace(value)
	if !IsValid(value) {
		return ErrInvalidFormat
	}
	if err := s.Cache.Set(ctx, cacheKey(sessionID), value, utils.CredentialTTL).Err(); err != nil {
		return err
	}
	s.Logger.Info("credential stored", zap.String("sessionID", sessionID))
	return nil
}

// Remove clears the stored key unconditionally.
func (s *DefaultCredentialService) Remove(ctx context.Context, sessionID string) error {
	return s.Cache.Del(ctx, cacheKey(sessionID)).Err()
}

// Present reports whether a non-empty key would resolve for the session.
func (s *DefaultCredentialService) Present(ctx context.Context, sessionID string) bool {
	_, err := s.Resolve(ctx, sessionID)
	return err == nil
}

// Resolve returns the effective key for the session: the central key when
// configured, otherwise the stored per-session key.
func (s *DefaultCredentialService) Resolve(ctx context.Context, sessionID string) (string, error) {
	if s.CentralKey != "" {
		return s.CentralKey, nil
	}
	value, err := s.Cache.Get(ctx, cacheKey(sessionID)).Result()
	if err == redis.Nil || value == "" {
		return "", completion.ErrCredentialMissing
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Probe sends one minimal completion request to sanity-check a key before
// first save. A probe failure never deletes an already-stored key.
func (s *DefaultCredentialService) Probe(ctx context.Context, value string) error {
	_, err := s.Completion.Complete(ctx, value, completion.PromptSpec{
		System:    "You are a connectivity check.",
		User:      "Reply with the single word OK.",
		MaxTokens: 5,
	})
	return err
}
