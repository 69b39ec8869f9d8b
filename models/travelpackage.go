package models

// TravelPackage is a normalized all-in-one trip offer from an agency.
type TravelPackage struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Agency        string   `json:"agency"`
	Destination   string   `json:"destination"`
	DurationDays  int      `json:"durationDays"`
	Price         float64  `json:"price"`
	Currency      string   `json:"currency"`
	Rating        float64  `json:"rating"`
	Inclusions    []string `json:"inclusions"`
	ImageURL      string   `json:"imageUrl"`
	AgencyLogoURL string   `json:"agencyLogoUrl"`
}

type PackageQuery struct {
	Destination string `form:"destination"`
	Month       string `form:"month"`
	Travelers   int    `form:"travelers"`
}

type PackageFilter struct {
	MinPrice   *float64 `form:"minPrice"`
	MaxPrice   *float64 `form:"maxPrice"`
	MinRating  *float64 `form:"minRating"`
	Inclusions []string `form:"inclusion"`
}
