package search

import (
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }
func iptr(v int) *int        { return &v }

func sampleFlights() []models.Flight {
	return []models.Flight{
		{Airline: "Delta Air Lines", Cabin: "Economy", Price: 200, Stops: 0},
		{Airline: "United Airlines", Cabin: "Business", Price: 800, Stops: 1},
		{Airline: "British Airways", Cabin: "Economy", Price: 450, Stops: 2},
	}
}

func TestFlightFilterPriceBoundsInclusive(t *testing.T) {
	got := applyFlightFilter(sampleFlights(), models.FlightFilter{
		MinPrice: f64(200), MaxPrice: f64(450),
	})
	assert.Len(t, got, 2, "records at exactly min and max survive")
	assert.Equal(t, "Delta Air Lines", got[0].Airline)
	assert.Equal(t, "British Airways", got[1].Airline)
}

func TestFlightFilterMaxStops(t *testing.T) {
	got := applyFlightFilter(sampleFlights(), models.FlightFilter{MaxStops: iptr(1)})
	assert.Len(t, got, 2)
}

func TestFlightFilterAirlineSubstringCaseInsensitive(t *testing.T) {
	got := applyFlightFilter(sampleFlights(), models.FlightFilter{
		Airlines: []string{"DELTA"},
	})
	assert.Len(t, got, 1)
	assert.Equal(t, "Delta Air Lines", got[0].Airline)
}

func TestFlightFilterIdempotent(t *testing.T) {
	filter := models.FlightFilter{MaxPrice: f64(500), Cabins: []string{"economy"}}
	once := applyFlightFilter(sampleFlights(), filter)
	twice := applyFlightFilter(once, filter)
	assert.Equal(t, once, twice)
}

func TestFlightFilterEmptyPassesEverything(t *testing.T) {
	in := sampleFlights()
	assert.Equal(t, in, applyFlightFilter(in, models.FlightFilter{}))
}

func TestHotelFilterAmenitiesRequireAll(t *testing.T) {
	hotels := []models.Hotel{
		{Name: "A", Price: 100, Rating: 4.5, Amenities: []string{"WiFi", "Pool", "Gym"}},
		{Name: "B", Price: 150, Rating: 4.0, Amenities: []string{"WiFi"}},
	}

	got := applyHotelFilter(hotels, models.HotelFilter{Amenities: []string{"wifi", "pool"}})
	assert.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)
}

func TestHotelFilterRatingRange(t *testing.T) {
	hotels := []models.Hotel{
		{Name: "A", Rating: 3.5},
		{Name: "B", Rating: 4.0},
		{Name: "C", Rating: 4.8},
	}
	got := applyHotelFilter(hotels, models.HotelFilter{MinRating: f64(4.0), MaxRating: f64(4.8)})
	assert.Len(t, got, 2)
}

func TestMatchesAllBlankRequirementIgnored(t *testing.T) {
	assert.True(t, matchesAll([]string{"  ", ""}, "anything"))
	assert.True(t, matchesAll(nil, "anything"))
	assert.False(t, matchesAll([]string{"x"}))
}

func TestSortFlightsByDepartureAscending(t *testing.T) {
	flights := []models.Flight{
		{Airline: "A", DepartureTime: "14:00"},
		{Airline: "C", DepartureTime: "06:30"},
		{Airline: "E", DepartureTime: "09:05"},
	}
	sortFlights(flights, "departure")
	assert.Equal(t, []string{"C", "E", "A"},
		[]string{flights[0].Airline, flights[1].Airline, flights[2].Airline})
}

func TestSortFlightsByDepartureKeepsMissingStable(t *testing.T) {
	// Records without a departure time compare equal to everything, so a
	// stable sort keeps their relative order.
	flights := []models.Flight{
		{Airline: "A", DepartureTime: "14:00"},
		{Airline: "B", DepartureTime: ""},
		{Airline: "C", DepartureTime: "06:30"},
		{Airline: "D", DepartureTime: ""},
	}
	sortFlights(flights, "departure")

	var blanks []string
	for _, fl := range flights {
		if fl.DepartureTime == "" {
			blanks = append(blanks, fl.Airline)
		}
	}
	assert.Equal(t, []string{"B", "D"}, blanks)
}

func TestSortFlightsDefaultIsPriceAscending(t *testing.T) {
	flights := []models.Flight{{Price: 300}, {Price: 120}, {Price: 250}}
	sortFlights(flights, "")
	assert.Equal(t, []float64{120, 250, 300},
		[]float64{flights[0].Price, flights[1].Price, flights[2].Price})
}
