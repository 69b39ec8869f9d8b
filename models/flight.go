package models

// Flight is a normalized flight offer as rendered to clients. Selected
// flights persist inside booking itineraries, hence the bson tags.
type Flight struct {
	ID            string  `json:"id" bson:"id"`
	Airline       string  `json:"airline" bson:"airline"`
	FlightNumber  string  `json:"flightNumber" bson:"flightNumber"`
	From          string  `json:"from" bson:"from"`
	To            string  `json:"to" bson:"to"`
	Date          string  `json:"date,omitempty" bson:"date,omitempty"` // "2006-01-02"
	DepartureTime string  `json:"departureTime,omitempty" bson:"departureTime,omitempty"` // "15:04", local
	ArrivalTime   string  `json:"arrivalTime,omitempty" bson:"arrivalTime,omitempty"`
	DurationMins  int     `json:"durationMinutes" bson:"durationMinutes"`
	Stops         int     `json:"stops" bson:"stops"`
	Cabin         string  `json:"cabin" bson:"cabin"`
	Terminal      string  `json:"terminal" bson:"terminal"`
	Price         float64 `json:"price" bson:"price"`
	Currency      string  `json:"currency" bson:"currency"`
	LogoURL       string  `json:"logoUrl" bson:"logoUrl"`
}

// FlightQuery carries the required search parameters for a flight search.
type FlightQuery struct {
	From          string `form:"from"`
	To            string `form:"to"`
	DepartureDate string `form:"date"`
	ReturnDate    string `form:"returnDate"`
	Passengers    int    `form:"passengers"`
	Cabin         string `form:"cabin"`
}

// FlightFilter holds client-side filter criteria applied after normalization.
type FlightFilter struct {
	MinPrice *float64 `form:"minPrice"`
	MaxPrice *float64 `form:"maxPrice"`
	MaxStops *int     `form:"maxStops"`
	Airlines []string `form:"airline"`
	Cabins   []string `form:"cabinClass"`
	SortBy   string   `form:"sortBy"` // "price" (default) or "departure"
}
