package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"voyago/models"
	"voyago/services/completion"
	"voyago/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cityResultCount = 8

// suggestStateTTL bounds how long per-session typeahead state is kept.
const suggestStateTTL = time.Hour

// staticCities backs the synthetic generator for the typeahead.
var staticCities = []models.CityOption{
	{Code: "JFK", Name: "New York", Country: "United States"},
	{Code: "LAX", Name: "Los Angeles", Country: "United States"},
	{Code: "ORD", Name: "Chicago", Country: "United States"},
	{Code: "MIA", Name: "Miami", Country: "United States"},
	{Code: "LHR", Name: "London", Country: "United Kingdom"},
	{Code: "CDG", Name: "Paris", Country: "France"},
	{Code: "FRA", Name: "Frankfurt", Country: "Germany"},
	{Code: "AMS", Name: "Amsterdam", Country: "Netherlands"},
	{Code: "MAD", Name: "Madrid", Country: "Spain"},
	{Code: "FCO", Name: "Rome", Country: "Italy"},
	{Code: "IST", Name: "Istanbul", Country: "Turkey"},
	{Code: "DXB", Name: "Dubai", Country: "United Arab Emirates"},
	{Code: "DOH", Name: "Doha", Country: "Qatar"},
	{Code: "DEL", Name: "New Delhi", Country: "India"},
	{Code: "BOM", Name: "Mumbai", Country: "India"},
	{Code: "SIN", Name: "Singapore", Country: "Singapore"},
	{Code: "BKK", Name: "Bangkok", Country: "Thailand"},
	{Code: "HND", Name: "Tokyo", Country: "Japan"},
	{Code: "SYD", Name: "Sydney", Country: "Australia"},
	{Code: "GRU", Name: "São Paulo", Country: "Brazil"},
	{Code: "MEX", Name: "Mexico City", Country: "Mexico"},
	{Code: "YYZ", Name: "Toronto", Country: "Canada"},
	{Code: "CPT", Name: "Cape Town", Country: "South Africa"},
	{Code: "CAI", Name: "Cairo", Country: "Egypt"},
}

func (s *DefaultSearchService) Cities(ctx context.Context, sessionID string, q models.CityQuery) (*Result[models.CityOption], error) {
	if strings.TrimSpace(q.Query) == "" {
		return nil, &MissingParamError{Field: "q"}
	}

	res, err := runPipeline(ctx, s, sessionID, domainSpec[models.CityOption]{
		name:  "cities",
		count: cityResultCount,
		prompt: completion.PromptSpec{
			System: systemPrompt,
			User: fmt.Sprintf(
				`List up to %d cities with major airports whose name starts with or contains %q. `+
					`Return a JSON array of objects shaped like: `+
					`[{"code":"LHR","name":"London","country":"United Kingdom"}]`,
				cityResultCount, q.Query),
		},
		normalize: func(rec map[string]interface{}, idx int) models.CityOption {
			return models.CityOption{
				Code:    strings.ToUpper(stringField(rec, "", "code", "iata")),
				Name:    stringField(rec, "", "name", "city"),
				Country: stringField(rec, "", "country"),
			}
		},
		synthesize: func(count int) []models.CityOption {
			return syntheticCities(q.Query, count)
		},
	})
	if err != nil {
		return nil, err
	}

	// Last-write-wins commit: results always go back to the caller, but the
	// session's typeahead snapshot only moves forward. A slow earlier
	// response with a stale sequence cannot overwrite a newer query's state.
	if committed := s.commitSuggestState(ctx, sessionID, q.Seq, res.Records); !committed {
		s.Logger.Debug("stale typeahead response not committed",
			zap.String("sessionID", sessionID),
			zap.Int64("seq", q.Seq))
	}

	return res, nil
}

// syntheticCities filters the static list by case-insensitive substring of
// name or code, then pads from the remainder so exactly count records return.
func syntheticCities(query string, count int) []models.CityOption {
	lower := strings.ToLower(query)
	matched := make([]models.CityOption, 0, count)
	rest := make([]models.CityOption, 0, len(staticCities))
	for _, c := range staticCities {
		if strings.Contains(strings.ToLower(c.Name), lower) || strings.Contains(strings.ToLower(c.Code), lower) {
			matched = append(matched, c)
		} else {
			rest = append(rest, c)
		}
	}
	matched = append(matched, rest...)
	if len(matched) > count {
		matched = matched[:count]
	}
	return matched
}

// suggestCommitScript compares the stored sequence and writes the new
// sequence plus snapshot in one atomic step, so a slow response carrying an
// older sequence can never land after a newer one.
var suggestCommitScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]))
local seq = tonumber(ARGV[1])
if current and seq < current then
	return 0
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`)

// commitSuggestState advances the per-session typeahead snapshot when seq is
// at least the newest sequence seen. Returns false for stale sequences.
func (s *DefaultSearchService) commitSuggestState(ctx context.Context, sessionID string, seq int64, records []models.CityOption) bool {
	seqKey := utils.SuggestSeqPrefix + sessionID
	snapshot, err := json.Marshal(records)
	if err != nil {
		return false
	}

	committed, err := suggestCommitScript.Run(ctx, s.Cache,
		[]string{seqKey, seqKey + ":last"},
		seq, snapshot, suggestStateTTL.Milliseconds()).Int()
	if err != nil {
		s.Logger.Warn("failed to commit typeahead snapshot", zap.Error(err))
		return false
	}
	return committed == 1
}

// RecordRecentCity pushes a selected location onto the bounded
// most-recent-first list, de-duplicated by code.
func (s *DefaultSearchService) RecordRecentCity(ctx context.Context, sessionID string, city models.RecentCity) error {
	if city.Code == "" {
		return &MissingParamError{Field: "code"}
	}

	recent, err := s.RecentCities(ctx, sessionID)
	if err != nil {
		return err
	}

	updated := make([]models.RecentCity, 0, utils.MaxRecentCities)
	updated = append(updated, city)
	for _, c := range recent {
		if strings.EqualFold(c.Code, city.Code) {
			continue
		}
		updated = append(updated, c)
		if len(updated) == utils.MaxRecentCities {
			break
		}
	}

	data, err := json.Marshal(updated)
	if err != nil {
		return err
	}
	return s.Cache.Set(ctx, utils.RecentCitiesPrefix+sessionID, data, utils.TripSessionTTL).Err()
}

// RecentCities returns the stored recently-used locations, newest first.
func (s *DefaultSearchService) RecentCities(ctx context.Context, sessionID string) ([]models.RecentCity, error) {
	data, err := s.Cache.Get(ctx, utils.RecentCitiesPrefix+sessionID).Result()
	if err == redis.Nil {
		return []models.RecentCity{}, nil
	}
	if err != nil {
		return nil, err
	}
	var recent []models.RecentCity
	if err := json.Unmarshal([]byte(data), &recent); err != nil {
		return nil, err
	}
	return recent, nil
}

// AcquireLoadMore sets the per-session busy flag guarding overlapping
// pagination requests. ErrLoadMoreBusy when one is already in flight.
func (s *DefaultSearchService) AcquireLoadMore(ctx context.Context, sessionID, domain string) error {
	key := utils.LoadMorePrefix + sessionID + ":" + domain
	ok, err := s.Cache.SetNX(ctx, key, "1", utils.LoadMoreTTL).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrLoadMoreBusy
	}
	return nil
}

// ReleaseLoadMore clears the busy flag.
func (s *DefaultSearchService) ReleaseLoadMore(ctx context.Context, sessionID, domain string) error {
	return s.Cache.Del(ctx, utils.LoadMorePrefix+sessionID+":"+domain).Err()
}
