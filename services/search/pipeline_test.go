package search

import (
	"context"
	"testing"

	"voyago/models"
	"voyago/services/completion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubCredentials resolves a fixed key or a fixed error.
type stubCredentials struct {
	key string
	err error
}

func (s *stubCredentials) Store(ctx context.Context, sessionID, value string) error { return nil }
func (s *stubCredentials) Remove(ctx context.Context, sessionID string) error       { return nil }
func (s *stubCredentials) Present(ctx context.Context, sessionID string) bool       { return s.err == nil }
func (s *stubCredentials) Probe(ctx context.Context, value string) error            { return nil }
func (s *stubCredentials) Resolve(ctx context.Context, sessionID string) (string, error) {
	return s.key, s.err
}

// stubCompletion returns a fixed completion text or error.
type stubCompletion struct {
	text string
	err  error

	calls int
}

func (s *stubCompletion) Complete(ctx context.Context, apiKey string, spec completion.PromptSpec) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func newTestService(cred *stubCredentials, comp *stubCompletion) *DefaultSearchService {
	return &DefaultSearchService{
		Credentials: cred,
		Completion:  comp,
		Logger:      zap.NewNop(),
	}
}

func flightQuery() models.FlightQuery {
	return models.FlightQuery{From: "LAX", To: "JFK", DepartureDate: "2024-06-01", Passengers: 1}
}

func TestFlightsLiveResults(t *testing.T) {
	comp := &stubCompletion{text: `Here you go:
[{"airline":"Delta Air Lines","flightNumber":"DL110","departureTime":"08:15","arrivalTime":"16:45","durationMinutes":330,"stops":0,"price":420},
 {"airline":"United Airlines","price":380}]`}
	svc := newTestService(&stubCredentials{key: "pplx-abc"}, comp)

	res, err := svc.Flights(context.Background(), "s1", flightQuery(), models.FlightFilter{})
	require.NoError(t, err)
	assert.Equal(t, SourceLive, res.Source)
	assert.Empty(t, res.Notice)
	require.Len(t, res.Records, 2)

	// Sorted ascending by price.
	assert.Equal(t, "United Airlines", res.Records[0].Airline)
	assert.Equal(t, 380.0, res.Records[0].Price)
	assert.Equal(t, "Delta Air Lines", res.Records[1].Airline)

	// Normalization fills route and defaults.
	for _, f := range res.Records {
		assert.Equal(t, "LAX", f.From)
		assert.Equal(t, "JFK", f.To)
		assert.NotEmpty(t, f.ID)
		assert.NotEmpty(t, f.Cabin)
		assert.Greater(t, f.Price, 0.0)
	}
}

func TestFlightsFallBackToSyntheticOnUnparseable(t *testing.T) {
	comp := &stubCompletion{text: "I could not find any flights, sorry."}
	svc := newTestService(&stubCredentials{key: "pplx-abc"}, comp)

	res, err := svc.Flights(context.Background(), "s1", flightQuery(), models.FlightFilter{})
	require.NoError(t, err, "extraction failure must degrade, not fail")
	assert.Equal(t, SourceSynthetic, res.Source)
	assert.Equal(t, syntheticNotice, res.Notice)
	assert.Len(t, res.Records, flightResultCount)
}

func TestFlightsFallBackToSyntheticOnEmptyArray(t *testing.T) {
	comp := &stubCompletion{text: `[]`}
	svc := newTestService(&stubCredentials{key: "pplx-abc"}, comp)

	res, err := svc.Flights(context.Background(), "s1", flightQuery(), models.FlightFilter{})
	require.NoError(t, err)
	assert.Equal(t, SourceSynthetic, res.Source)
}

func TestFlightsCredentialMissingIsHardFailure(t *testing.T) {
	comp := &stubCompletion{text: `[{"airline":"Delta"}]`}
	svc := newTestService(&stubCredentials{err: completion.ErrCredentialMissing}, comp)

	_, err := svc.Flights(context.Background(), "s1", flightQuery(), models.FlightFilter{})
	assert.ErrorIs(t, err, completion.ErrCredentialMissing)
	assert.Zero(t, comp.calls, "no completion call without a credential")
}

// Hotels follow the same policy as flights: credential problems are hard
// failures, never a synthetic fallback.
func TestHotelsCredentialMissingIsHardFailure(t *testing.T) {
	svc := newTestService(&stubCredentials{err: completion.ErrCredentialMissing}, &stubCompletion{})

	_, err := svc.Hotels(context.Background(), "s1",
		models.HotelQuery{Destination: "Paris", Guests: 2}, models.HotelFilter{})
	assert.ErrorIs(t, err, completion.ErrCredentialMissing)
}

func TestTransportFailuresAreHard(t *testing.T) {
	for _, upstream := range []error{
		completion.ErrCredentialInvalid,
		completion.ErrRateLimited,
		completion.ErrTimeout,
		completion.ErrEmptyCompletion,
	} {
		comp := &stubCompletion{err: upstream}
		svc := newTestService(&stubCredentials{key: "pplx-abc"}, comp)

		_, err := svc.Flights(context.Background(), "s1", flightQuery(), models.FlightFilter{})
		assert.ErrorIs(t, err, upstream)
	}
}

func TestMissingQueryParameters(t *testing.T) {
	svc := newTestService(&stubCredentials{key: "pplx-abc"}, &stubCompletion{text: `[]`})
	ctx := context.Background()

	_, err := svc.Flights(ctx, "s1", models.FlightQuery{To: "JFK", DepartureDate: "2024-06-01"}, models.FlightFilter{})
	var missing *MissingParamError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "from", missing.Field)

	_, err = svc.Hotels(ctx, "s1", models.HotelQuery{}, models.HotelFilter{})
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "destination", missing.Field)

	_, err = svc.Cars(ctx, "s1", models.CarQuery{Location: "Rome"}, models.CarFilter{})
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "pickupDate", missing.Field)

	_, err = svc.Packages(ctx, "s1", models.PackageQuery{}, models.PackageFilter{})
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "destination", missing.Field)
}

func TestNormalizeFlightCoercion(t *testing.T) {
	rec := map[string]interface{}{
		"airline":         "British Airways",
		"price":           "not a number", // wrong type, default substituted
		"durationMinutes": 155.0,
		"stops":           1.0,
	}
	f := normalizeFlight(rec, flightQuery())

	assert.Equal(t, "British Airways", f.Airline)
	assert.Equal(t, 155, f.DurationMins)
	assert.Equal(t, 1, f.Stops)
	assert.GreaterOrEqual(t, f.Price, 120.0)
	assert.LessOrEqual(t, f.Price, 620.0)
	assert.Equal(t, "/assets/logos/british-airways.svg", f.LogoURL)
}

func TestNormalizeHotelDefaults(t *testing.T) {
	h := normalizeHotel(map[string]interface{}{}, models.HotelQuery{Destination: "Lisbon", Guests: 2})

	assert.NotEmpty(t, h.Name)
	assert.Equal(t, "Lisbon", h.Location)
	assert.Equal(t, 4.0, h.Rating)
	assert.Equal(t, defaultAmenities, h.Amenities)
	assert.Equal(t, defaultHotelImage, h.ImageURL)
	assert.GreaterOrEqual(t, h.Price, 80.0)
	assert.LessOrEqual(t, h.Price, 360.0)
}
