package models

// CarRental is a normalized rental car offer.
type CarRental struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Model        string   `json:"model"`
	Category     string   `json:"category"`
	Seats        int      `json:"seats"`
	Transmission string   `json:"transmission"`
	PricePerDay  float64  `json:"pricePerDay"`
	Currency     string   `json:"currency"`
	Rating       float64  `json:"rating"`
	Features     []string `json:"features"`
	LogoURL      string   `json:"logoUrl"`
}

type CarQuery struct {
	Location    string `form:"location"`
	PickupDate  string `form:"pickupDate"`
	DropoffDate string `form:"dropoffDate"`
}

type CarFilter struct {
	MinPrice *float64 `form:"minPrice"`
	MaxPrice *float64 `form:"maxPrice"`
	Features []string `form:"feature"`
}
