package trip

import (
	"context"
	"testing"

	"voyago/database/repository"
	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryBookingRepo records created bookings in memory.
type memoryBookingRepo struct {
	created []models.BookingRecord
}

func (r *memoryBookingRepo) Create(ctx context.Context, record models.BookingRecord) (string, error) {
	r.created = append(r.created, record)
	return record.ID, nil
}

func (r *memoryBookingRepo) GetByID(ctx context.Context, id string) (*models.BookingRecord, error) {
	for i := range r.created {
		if r.created[i].ID == id {
			return &r.created[i], nil
		}
	}
	return nil, repository.ErrBookingNotFound
}

func (r *memoryBookingRepo) GetBySessionID(ctx context.Context, sessionID string) ([]models.BookingRecord, error) {
	var out []models.BookingRecord
	for _, rec := range r.created {
		if rec.SessionID == sessionID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memoryBookingRepo) MarkReminderSent(ctx context.Context, id string) error { return nil }

func newTestTripService() (*DefaultTripSessionService, *memoryBookingRepo) {
	repo := &memoryBookingRepo{}
	return &DefaultTripSessionService{
		Store:      NewMemorySessionStore(),
		Bookings:   repo,
		BookingFee: 49,
		Logger:     zap.NewNop(),
	}, repo
}

func boolPtr(v bool) *bool { return &v }

func outboundFlight(price float64) models.Flight {
	return models.Flight{ID: "f-out", Airline: "Delta Air Lines", From: "LAX", To: "JFK", Price: price}
}

func returnFlight(price float64) models.Flight {
	return models.Flight{ID: "f-ret", Airline: "Delta Air Lines", From: "JFK", To: "LAX", Price: price}
}

func TestCreateDefaults(t *testing.T) {
	svc, _ := newTestTripService()
	session, err := svc.Create(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, models.StageSearching, session.Stage)
	assert.True(t, session.RoundTrip)
	assert.False(t, session.SkipHotels)
	assert.Nil(t, session.Outbound)
	assert.Empty(t, session.Lodgings)
}

func TestGetUnknownSession(t *testing.T) {
	svc, _ := newTestTripService()
	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestTotalIsZeroWithoutSelection(t *testing.T) {
	svc, _ := newTestTripService()
	ctx := context.Background()
	session, _ := svc.Create(ctx)

	total, err := svc.Total(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total, "no selection means no fee either")
}

func TestTotalSumsSelectionPlusFee(t *testing.T) {
	svc, _ := newTestTripService()
	ctx := context.Background()
	session, _ := svc.Create(ctx)

	_, err := svc.SetOutboundFlight(ctx, session.ID, outboundFlight(300))
	require.NoError(t, err)
	_, err = svc.SetReturnFlight(ctx, session.ID, returnFlight(280))
	require.NoError(t, err)
	_, err = svc.SetLodgings(ctx, session.ID, []models.Hotel{{ID: "h1", Name: "Hilton", Price: 100}})
	require.NoError(t, err)

	total, err := svc.Total(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0+280.0+100.0+49.0, total)
}

func TestReturnFlightRequiresRoundTrip(t *testing.T) {
	svc, _ := newTestTripService()
	ctx := context.Background()
	session, _ := svc.Create(ctx)

	_, err := svc.SetPreferences(ctx, session.ID, Preferences{RoundTrip: boolPtr(false)})
	require.NoError(t, err)
	_, err = svc.SetOutboundFlight(ctx, session.ID, outboundFlight(300))
	require.NoError(t, err)

	_, err = svc.SetReturnFlight(ctx, session.ID, returnFlight(280))
	assert.ErrorIs(t, err, ErrNotRoundTrip)
}

func TestIllegalTransitions(t *testing.T) {
	svc, _ := newTestTripService()
	ctx := context.Background()

	// Return flight before outbound.
	session, _ := svc.Create(ctx)
	_, err := svc.SetReturnFlight(ctx, session.ID, returnFlight(280))
	var illegal *IllegalTransitionError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, models.StageSearching, illegal.From)
	assert.Equal(t, models.StageReturnSelected, illegal.To)

	// Lodging before any flight.
	_, err = svc.AddLodging(ctx, session.ID, models.Hotel{ID: "h1", Price: 90})
	assert.ErrorAs(t, err, &illegal)

	// Checkout straight from searching.
	_, err = svc.BeginCheckout(ctx, session.ID)
	assert.ErrorAs(t, err, &illegal)
}

func TestRepickingOutboundClearsReturn(t *testing.T) {
	svc, _ := newTestTripService()
	ctx := context.Background()
	session, _ := svc.Create(ctx)

	_, err := svc.SetOutboundFlight(ctx, session.ID, outboundFlight(300))
	require.NoError(t, err)
	_, err = svc.SetReturnFlight(ctx, session.ID, returnFlight(280))
	require.NoError(t, err)

	updated, err := svc.SetOutboundFlight(ctx, session.ID, outboundFlight(350))
	require.NoError(t, err)
	assert.Equal(t, models.StageOutboundSelected, updated.Stage)
	assert.Nil(t, updated.Return, "a new outbound invalidates the picked return")
	assert.Equal(t, 350.0, updated.Outbound.Price)
}

func TestRemoveLodgingRewindsWhenEmpty(t *testing.T) {
	svc, _ := newTestTripService()
	ctx := context.Background()
	session, _ := svc.Create(ctx)

	_, err := svc.SetOutboundFlight(ctx, session.ID, outboundFlight(300))
	require.NoError(t, err)
	_, err = svc.SetReturnFlight(ctx, session.ID, returnFlight(280))
	require.NoError(t, err)
	_, err = svc.AddLodging(ctx, session.ID, models.Hotel{ID: "h1", Price: 120})
	require.NoError(t, err)

	updated, err := svc.RemoveLodging(ctx, session.ID, "h1")
	require.NoError(t, err)
	assert.Empty(t, updated.Lodgings)
	assert.Equal(t, models.StageReturnSelected, updated.Stage)

	_, err = svc.RemoveLodging(ctx, session.ID, "h1")
	assert.ErrorIs(t, err, ErrLodgingNotFound)
}

func TestSkipHotelsClearsLodgings(t *testing.T) {
	svc, _ := newTestTripService()
	ctx := context.Background()
	session, _ := svc.Create(ctx)

	_, err := svc.SetOutboundFlight(ctx, session.ID, outboundFlight(300))
	require.NoError(t, err)
	_, err = svc.AddLodging(ctx, session.ID, models.Hotel{ID: "h1", Price: 120})
	require.NoError(t, err)

	updated, err := svc.SetPreferences(ctx, session.ID, Preferences{SkipHotels: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.SkipHotels)
	assert.Empty(t, updated.Lodgings)
	assert.Equal(t, models.StageLodgingSkipped, updated.Stage)

	// Skipping makes checkout reachable without lodging.
	updated, err = svc.BeginCheckout(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageCheckout, updated.Stage)
}

func TestResetFromAnyStage(t *testing.T) {
	svc, _ := newTestTripService()
	ctx := context.Background()
	session, _ := svc.Create(ctx)

	_, err := svc.SetOutboundFlight(ctx, session.ID, outboundFlight(300))
	require.NoError(t, err)
	_, err = svc.SetPreferences(ctx, session.ID, Preferences{SkipHotels: boolPtr(true)})
	require.NoError(t, err)
	_, err = svc.BeginCheckout(ctx, session.ID)
	require.NoError(t, err)

	updated, err := svc.Reset(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageSearching, updated.Stage)
	assert.True(t, updated.RoundTrip)
	assert.Nil(t, updated.Outbound)
	assert.Empty(t, updated.Lodgings)

	total, err := svc.Total(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestCheckoutSimulatedCardPayment(t *testing.T) {
	svc, repo := newTestTripService()
	ctx := context.Background()
	session, _ := svc.Create(ctx)

	_, err := svc.SetOutboundFlight(ctx, session.ID, outboundFlight(300))
	require.NoError(t, err)
	_, err = svc.SetReturnFlight(ctx, session.ID, returnFlight(280))
	require.NoError(t, err)
	_, err = svc.SetLodgings(ctx, session.ID, []models.Hotel{{ID: "h1", Name: "Hilton", Price: 100}})
	require.NoError(t, err)
	_, err = svc.BeginCheckout(ctx, session.ID)
	require.NoError(t, err)

	record, err := svc.Checkout(ctx, session.ID, models.PaymentInput{Method: "card"})
	require.NoError(t, err)

	assert.Equal(t, 729.0, record.Total)
	assert.Equal(t, 49.0, record.Fee)
	assert.Equal(t, "paid", record.Invoice.Status)
	assert.Equal(t, "USD", record.Invoice.Currency)
	// No stripe key configured: simulated payment reference.
	assert.Contains(t, record.Invoice.PaymentID, "pi_")
	require.NotNil(t, record.Itinerary.Outbound)
	assert.Equal(t, "f-out", record.Itinerary.Outbound.ID)

	require.Len(t, repo.created, 1)
	assert.Equal(t, session.ID, repo.created[0].SessionID)

	// The session is wiped for a fresh search.
	after, err := svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageSearching, after.Stage)
	assert.Nil(t, after.Outbound)

	total, err := svc.Total(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestCheckoutCashStaysPending(t *testing.T) {
	svc, _ := newTestTripService()
	ctx := context.Background()
	session, _ := svc.Create(ctx)

	_, err := svc.SetOutboundFlight(ctx, session.ID, outboundFlight(300))
	require.NoError(t, err)
	_, err = svc.SetPreferences(ctx, session.ID, Preferences{SkipHotels: boolPtr(true)})
	require.NoError(t, err)
	_, err = svc.BeginCheckout(ctx, session.ID)
	require.NoError(t, err)

	record, err := svc.Checkout(ctx, session.ID, models.PaymentInput{Method: "cash", Currency: "EUR"})
	require.NoError(t, err)
	assert.Equal(t, "pending", record.Invoice.Status)
	assert.Equal(t, "EUR", record.Invoice.Currency)
	assert.Empty(t, record.Invoice.PaymentID)
}

func TestCheckoutRejectsUnknownMethod(t *testing.T) {
	svc, repo := newTestTripService()
	ctx := context.Background()
	session, _ := svc.Create(ctx)

	_, err := svc.SetOutboundFlight(ctx, session.ID, outboundFlight(300))
	require.NoError(t, err)
	_, err = svc.SetPreferences(ctx, session.ID, Preferences{SkipHotels: boolPtr(true)})
	require.NoError(t, err)
	_, err = svc.BeginCheckout(ctx, session.ID)
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, session.ID, models.PaymentInput{Method: "barter"})
	require.Error(t, err)
	assert.Empty(t, repo.created, "failed payment persists nothing")
}

func TestCheckoutWithoutBeginFails(t *testing.T) {
	svc, _ := newTestTripService()
	ctx := context.Background()
	session, _ := svc.Create(ctx)

	_, err := svc.SetOutboundFlight(ctx, session.ID, outboundFlight(300))
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, session.ID, models.PaymentInput{Method: "card"})
	var illegal *IllegalTransitionError
	assert.ErrorAs(t, err, &illegal)
}
