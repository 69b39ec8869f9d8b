package search

import (
	"context"
	"fmt"

	"voyago/models"
	"voyago/services/completion"

	"github.com/google/uuid"
)

const hotelResultCount = 6

func (s *DefaultSearchService) Hotels(ctx context.Context, sessionID string, q models.HotelQuery, f models.HotelFilter) (*Result[models.Hotel], error) {
	if q.Destination == "" {
		return nil, &MissingParamError{Field: "destination"}
	}
	if q.Guests <= 0 {
		q.Guests = 1
	}

	res, err := runPipeline(ctx, s, sessionID, domainSpec[models.Hotel]{
		name:  "hotels",
		count: hotelResultCount,
		prompt: completion.PromptSpec{
			System: systemPrompt,
			User: fmt.Sprintf(
				`List %d realistic hotels in %s for %d guest(s), check-in %s, check-out %s. `+
					`Return a JSON array of objects shaped like: `+
					`[{"name":"Hilton Midtown","location":"Manhattan, New York","price":210,"rating":4.4,"amenities":["WiFi","Pool","Gym"]}]`,
				hotelResultCount, q.Destination, q.Guests, q.CheckIn, q.CheckOut),
		},
		normalize: func(rec map[string]interface{}, idx int) models.Hotel {
			return normalizeHotel(rec, q)
		},
		synthesize: func(count int) []models.Hotel {
			return syntheticHotels(q, count)
		},
	})
	if err != nil {
		return nil, err
	}

	res.Records = applyHotelFilter(res.Records, f)
	return res, nil
}

func normalizeHotel(rec map[string]interface{}, q models.HotelQuery) models.Hotel {
	name := stringField(rec, "City Hotel "+q.Destination, "name", "hotelName")
	return models.Hotel{
		ID:        stringField(rec, uuid.New().String(), "id"),
		Name:      name,
		Location:  stringField(rec, q.Destination, "location", "address"),
		Price:     floatField(rec, randomPrice(80, 360), "price", "pricePerNight"),
		Currency:  stringField(rec, "USD", "currency"),
		Rating:    floatField(rec, 4.0, "rating"),
		Amenities: stringListField(rec, defaultAmenities, "amenities"),
		ImageURL:  lookupImage(name, hotelImages, defaultHotelImage),
	}
}

func applyHotelFilter(hotels []models.Hotel, f models.HotelFilter) []models.Hotel {
	return filterRecords(hotels, func(h models.Hotel) bool {
		if !inRange(h.Price, f.MinPrice, f.MaxPrice) {
			return false
		}
		if !inRange(h.Rating, f.MinRating, f.MaxRating) {
			return false
		}
		return matchesAll(f.Amenities, h.Amenities...)
	})
}
