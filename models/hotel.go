package models

// Hotel is a normalized lodging offer. Price is the flat line item captured
// into the trip selection, not a per-night rate. Selected lodgings persist
// inside booking itineraries, hence the bson tags.
type Hotel struct {
	ID        string   `json:"id" bson:"id"`
	Name      string   `json:"name" bson:"name"`
	Location  string   `json:"location" bson:"location"`
	Price     float64  `json:"price" bson:"price"`
	Currency  string   `json:"currency" bson:"currency"`
	Rating    float64  `json:"rating" bson:"rating"`
	Amenities []string `json:"amenities" bson:"amenities"`
	ImageURL  string   `json:"imageUrl" bson:"imageUrl"`
}

type HotelQuery struct {
	Destination string `form:"destination"`
	CheckIn     string `form:"checkIn"`
	CheckOut    string `form:"checkOut"`
	Guests      int    `form:"guests"`
}

type HotelFilter struct {
	MinPrice  *float64 `form:"minPrice"`
	MaxPrice  *float64 `form:"maxPrice"`
	MinRating *float64 `form:"minRating"`
	MaxRating *float64 `form:"maxRating"`
	Amenities []string `form:"amenity"`
}
