package trip

import (
	"context"
	"time"

	"voyago/database/repository"
	"voyago/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Preferences carries trip-type flag updates; nil fields are left unchanged.
type Preferences struct {
	RoundTrip  *bool `json:"roundTrip"`
	SkipHotels *bool `json:"skipHotels"`
}

// TripSessionService manages selection state and the checkout flow.
type TripSessionService interface {
	Create(ctx context.Context) (*models.TripSession, error)
	Get(ctx context.Context, id string) (*models.TripSession, error)
	SetOutboundFlight(ctx context.Context, id string, flight models.Flight) (*models.TripSession, error)
	SetReturnFlight(ctx context.Context, id string, flight models.Flight) (*models.TripSession, error)
	SetLodgings(ctx context.Context, id string, lodgings []models.Hotel) (*models.TripSession, error)
	AddLodging(ctx context.Context, id string, lodging models.Hotel) (*models.TripSession, error)
	RemoveLodging(ctx context.Context, id, lodgingID string) (*models.TripSession, error)
	SetPreferences(ctx context.Context, id string, prefs Preferences) (*models.TripSession, error)
	Total(ctx context.Context, id string) (float64, error)
	BeginCheckout(ctx context.Context, id string) (*models.TripSession, error)
	Checkout(ctx context.Context, id string, payment models.PaymentInput) (*models.BookingRecord, error)
	Reset(ctx context.Context, id string) (*models.TripSession, error)
}

// DefaultTripSessionService implements TripSessionService.
type DefaultTripSessionService struct {
	Store      SessionStore
	Bookings   repository.BookingRepository
	TaskClient *asynq.Client
	StripeKey  string
	BookingFee float64
	Logger     *zap.Logger
}

var _ TripSessionService = (*DefaultTripSessionService)(nil)

// legalTransitions is the trip state machine. Reset bypasses the table and is
// allowed from any stage.
var legalTransitions = map[models.TripStage][]models.TripStage{
	models.StageSearching:        {models.StageOutboundSelected},
	models.StageOutboundSelected: {models.StageOutboundSelected, models.StageReturnSelected, models.StageLodgingSelected, models.StageLodgingSkipped},
	models.StageReturnSelected:   {models.StageOutboundSelected, models.StageReturnSelected, models.StageLodgingSelected, models.StageLodgingSkipped},
	models.StageLodgingSelected:  {models.StageOutboundSelected, models.StageLodgingSelected, models.StageLodgingSkipped, models.StageCheckout},
	models.StageLodgingSkipped:   {models.StageOutboundSelected, models.StageLodgingSelected, models.StageLodgingSkipped, models.StageCheckout},
	models.StageCheckout:         {models.StageLodgingSelected, models.StageLodgingSkipped, models.StageConfirmed},
	models.StageConfirmed:        {},
}

func canTransition(from, to models.TripStage) bool {
	for _, allowed := range legalTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s *DefaultTripSessionService) transition(session *models.TripSession, to models.TripStage) error {
	if !canTransition(session.Stage, to) {
		return &IllegalTransitionError{From: session.Stage, To: to}
	}
	session.Stage = to
	return nil
}

// Create starts a fresh session. Round-trip is the default trip type.
func (s *DefaultTripSessionService) Create(ctx context.Context) (*models.TripSession, error) {
	now := time.Now()
	session := &models.TripSession{
		ID:        uuid.New().String(),
		Stage:     models.StageSearching,
		RoundTrip: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Info("trip session created", zap.String("sessionID", session.ID))
	return session, nil
}

func (s *DefaultTripSessionService) Get(ctx context.Context, id string) (*models.TripSession, error) {
	return s.Store.Get(ctx, id)
}

// save stamps and persists a mutated session.
func (s *DefaultTripSessionService) save(ctx context.Context, session *models.TripSession) (*models.TripSession, error) {
	session.UpdatedAt = time.Now()
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetOutboundFlight captures a snapshot copy of the chosen flight. Re-picking
// the outbound rewinds any later selection stage.
func (s *DefaultTripSessionService) SetOutboundFlight(ctx context.Context, id string, flight models.Flight) (*models.TripSession, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.transition(session, models.StageOutboundSelected); err != nil {
		return nil, err
	}
	session.Outbound = &flight
	session.Return = nil
	return s.save(ctx, session)
}

func (s *DefaultTripSessionService) SetReturnFlight(ctx context.Context, id string, flight models.Flight) (*models.TripSession, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !session.RoundTrip {
		return nil, ErrNotRoundTrip
	}
	if err := s.transition(session, models.StageReturnSelected); err != nil {
		return nil, err
	}
	session.Return = &flight
	return s.save(ctx, session)
}

func (s *DefaultTripSessionService) SetLodgings(ctx context.Context, id string, lodgings []models.Hotel) (*models.TripSession, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.transition(session, models.StageLodgingSelected); err != nil {
		return nil, err
	}
	session.Lodgings = append([]models.Hotel(nil), lodgings...)
	session.SkipHotels = false
	return s.save(ctx, session)
}

func (s *DefaultTripSessionService) AddLodging(ctx context.Context, id string, lodging models.Hotel) (*models.TripSession, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.transition(session, models.StageLodgingSelected); err != nil {
		return nil, err
	}
	session.Lodgings = append(session.Lodgings, lodging)
	session.SkipHotels = false
	return s.save(ctx, session)
}

func (s *DefaultTripSessionService) RemoveLodging(ctx context.Context, id, lodgingID string) (*models.TripSession, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	kept := session.Lodgings[:0]
	found := false
	for _, l := range session.Lodgings {
		if l.ID == lodgingID {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return nil, ErrLodgingNotFound
	}
	session.Lodgings = kept
	if len(session.Lodgings) == 0 && session.Stage == models.StageLodgingSelected {
		// Empty selection rewinds to the flight stage.
		if session.RoundTrip && session.Return != nil {
			session.Stage = models.StageReturnSelected
		} else {
			session.Stage = models.StageOutboundSelected
		}
	}
	return s.save(ctx, session)
}

func (s *DefaultTripSessionService) SetPreferences(ctx context.Context, id string, prefs Preferences) (*models.TripSession, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if prefs.RoundTrip != nil && *prefs.RoundTrip != session.RoundTrip {
		session.RoundTrip = *prefs.RoundTrip
		if !session.RoundTrip {
			session.Return = nil
			if session.Stage == models.StageReturnSelected {
				session.Stage = models.StageOutboundSelected
			}
		}
	}

	if prefs.SkipHotels != nil && *prefs.SkipHotels != session.SkipHotels {
		if *prefs.SkipHotels {
			if err := s.transition(session, models.StageLodgingSkipped); err != nil {
				return nil, err
			}
			session.SkipHotels = true
			session.Lodgings = nil
		} else {
			session.SkipHotels = false
			if session.Stage == models.StageLodgingSkipped {
				if session.RoundTrip && session.Return != nil {
					session.Stage = models.StageReturnSelected
				} else {
					session.Stage = models.StageOutboundSelected
				}
			}
		}
	}

	return s.save(ctx, session)
}

// Total sums selected flight prices, lodging line items and the flat fee.
func (s *DefaultTripSessionService) Total(ctx context.Context, id string) (float64, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return s.total(session), nil
}

func (s *DefaultTripSessionService) total(session *models.TripSession) float64 {
	// A fresh or reset session carries no fee.
	if session.Outbound == nil && session.Return == nil && len(session.Lodgings) == 0 {
		return 0
	}
	sum := s.BookingFee
	if session.Outbound != nil {
		sum += session.Outbound.Price
	}
	if session.Return != nil {
		sum += session.Return.Price
	}
	for _, l := range session.Lodgings {
		sum += l.Price
	}
	return sum
}

// BeginCheckout gates entry to the checkout stage on a complete selection.
func (s *DefaultTripSessionService) BeginCheckout(ctx context.Context, id string) (*models.TripSession, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.transition(session, models.StageCheckout); err != nil {
		return nil, err
	}
	return s.save(ctx, session)
}

// Reset restores the empty initial state. Allowed from any stage; used after
// a completed booking to start a new search.
func (s *DefaultTripSessionService) Reset(ctx context.Context, id string) (*models.TripSession, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Stage = models.StageSearching
	session.RoundTrip = true
	session.SkipHotels = false
	session.Outbound = nil
	session.Return = nil
	session.Lodgings = nil
	return s.save(ctx, session)
}
