package search

import (
	"context"

	"voyago/models"
	"voyago/services/completion"
	"voyago/services/credential"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Source tells the client where a result set came from.
type Source string

const (
	SourceLive      Source = "live"
	SourceSynthetic Source = "synthetic"
)

// syntheticNotice is the non-blocking notice attached when a completion could
// not be parsed and the generator stood in.
const syntheticNotice = "showing example data; live results were unavailable"

// Result wraps a normalized record list with its provenance.
type Result[R any] struct {
	Records []R    `json:"records"`
	Source  Source `json:"source"`
	Notice  string `json:"notice,omitempty"`
}

// Service is the search surface for every entity type. All five fetches share
// one policy: missing parameters and unresolvable credentials are hard
// failures, upstream transport failures are hard failures, and
// extraction/normalization failures silently degrade to synthetic records.
type Service interface {
	Flights(ctx context.Context, sessionID string, q models.FlightQuery, f models.FlightFilter) (*Result[models.Flight], error)
	Hotels(ctx context.Context, sessionID string, q models.HotelQuery, f models.HotelFilter) (*Result[models.Hotel], error)
	Cars(ctx context.Context, sessionID string, q models.CarQuery, f models.CarFilter) (*Result[models.CarRental], error)
	Packages(ctx context.Context, sessionID string, q models.PackageQuery, f models.PackageFilter) (*Result[models.TravelPackage], error)

	Cities(ctx context.Context, sessionID string, q models.CityQuery) (*Result[models.CityOption], error)
	RecentCities(ctx context.Context, sessionID string) ([]models.RecentCity, error)
	RecordRecentCity(ctx context.Context, sessionID string, city models.RecentCity) error

	AcquireLoadMore(ctx context.Context, sessionID, domain string) error
	ReleaseLoadMore(ctx context.Context, sessionID, domain string) error
}

// DefaultSearchService implements Service on the completion pipeline.
type DefaultSearchService struct {
	Credentials credential.Service
	Completion  completion.Client
	Cache       *redis.Client
	Logger      *zap.Logger
}

var _ Service = (*DefaultSearchService)(nil)
