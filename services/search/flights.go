package search

import (
	"context"
	"fmt"
	"sort"

	"voyago/models"
	"voyago/services/completion"

	"github.com/google/uuid"
)

const flightResultCount = 8

// systemPrompt is shared by every domain fetch; the user prompt carries the
// query, the desired count and an example JSON shape.
const systemPrompt = "You are a travel data API. Respond only with JSON in exactly the requested shape. No prose, no markdown, no code fences."

func (s *DefaultSearchService) Flights(ctx context.Context, sessionID string, q models.FlightQuery, f models.FlightFilter) (*Result[models.Flight], error) {
	switch {
	case q.From == "":
		return nil, &MissingParamError{Field: "from"}
	case q.To == "":
		return nil, &MissingParamError{Field: "to"}
	case q.DepartureDate == "":
		return nil, &MissingParamError{Field: "date"}
	}
	if q.Passengers <= 0 {
		q.Passengers = 1
	}

	res, err := runPipeline(ctx, s, sessionID, domainSpec[models.Flight]{
		name:  "flights",
		count: flightResultCount,
		prompt: completion.PromptSpec{
			System: systemPrompt,
			User: fmt.Sprintf(
				`List %d realistic airline flights from %s to %s on %s for %d passenger(s), cabin %q. `+
					`Return a JSON array of objects shaped like: `+
					`[{"airline":"Delta Air Lines","flightNumber":"DL123","departureTime":"08:15","arrivalTime":"13:45","durationMinutes":330,"stops":0,"cabin":"Economy","terminal":"B","price":420}]`,
				flightResultCount, q.From, q.To, q.DepartureDate, q.Passengers, q.Cabin),
		},
		normalize: func(rec map[string]interface{}, idx int) models.Flight {
			return normalizeFlight(rec, q)
		},
		synthesize: func(count int) []models.Flight {
			return syntheticFlights(q, count)
		},
	})
	if err != nil {
		return nil, err
	}

	res.Records = applyFlightFilter(res.Records, f)
	sortFlights(res.Records, f.SortBy)
	return res, nil
}

func normalizeFlight(rec map[string]interface{}, q models.FlightQuery) models.Flight {
	airline := stringField(rec, "Unknown Airline", "airline", "carrier")
	duration := intField(rec, 0, "durationMinutes", "duration_minutes", "duration")
	departure := stringField(rec, "", "departureTime", "departure_time", "departure")
	arrival := stringField(rec, "", "arrivalTime", "arrival_time", "arrival")
	cabin := q.Cabin
	if cabin == "" {
		cabin = "Economy"
	}
	return models.Flight{
		ID:            stringField(rec, uuid.New().String(), "id"),
		Airline:       airline,
		FlightNumber:  stringField(rec, "", "flightNumber", "flight_number"),
		From:          q.From,
		To:            q.To,
		Date:          q.DepartureDate,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		DurationMins:  duration,
		Stops:         intField(rec, 0, "stops"),
		Cabin:         stringField(rec, cabin, "cabin"),
		Terminal:      stringField(rec, "A", "terminal"),
		Price:         floatField(rec, randomPrice(120, 620), "price"),
		Currency:      stringField(rec, "USD", "currency"),
		LogoURL:       lookupImage(airline, airlineLogos, defaultAirlineLogo),
	}
}

func applyFlightFilter(flights []models.Flight, f models.FlightFilter) []models.Flight {
	return filterRecords(flights, func(fl models.Flight) bool {
		if !inRange(fl.Price, f.MinPrice, f.MaxPrice) {
			return false
		}
		if f.MaxStops != nil && fl.Stops > *f.MaxStops {
			return false
		}
		if !matchesAll(f.Airlines, fl.Airline) {
			return false
		}
		if !matchesAll(f.Cabins, fl.Cabin) {
			return false
		}
		return true
	})
}

// sortFlights orders by ascending price, or by ascending departure time when
// both compared records carry one; records missing a departure time keep
// their relative order under time sort.
func sortFlights(flights []models.Flight, sortBy string) {
	switch sortBy {
	case "departure":
		sort.SliceStable(flights, func(i, j int) bool {
			a, b := flights[i].DepartureTime, flights[j].DepartureTime
			if a == "" || b == "" {
				return false
			}
			// "15:04" compares correctly as a string.
			return a < b
		})
	default:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].Price < flights[j].Price
		})
	}
}
