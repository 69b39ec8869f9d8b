package search

import (
	"context"
	"fmt"

	"voyago/models"
	"voyago/services/completion"

	"github.com/google/uuid"
)

const carResultCount = 6

func (s *DefaultSearchService) Cars(ctx context.Context, sessionID string, q models.CarQuery, f models.CarFilter) (*Result[models.CarRental], error) {
	switch {
	case q.Location == "":
		return nil, &MissingParamError{Field: "location"}
	case q.PickupDate == "":
		return nil, &MissingParamError{Field: "pickupDate"}
	}

	res, err := runPipeline(ctx, s, sessionID, domainSpec[models.CarRental]{
		name:  "cars",
		count: carResultCount,
		prompt: completion.PromptSpec{
			System: systemPrompt,
			User: fmt.Sprintf(
				`List %d realistic rental car offers in %s, pickup %s, drop-off %s. `+
					`Return a JSON array of objects shaped like: `+
					`[{"company":"Hertz","model":"Toyota Corolla","category":"Economy","seats":5,"transmission":"Automatic","pricePerDay":45,"rating":4.3,"features":["Air Conditioning","Bluetooth"]}]`,
				carResultCount, q.Location, q.PickupDate, q.DropoffDate),
		},
		normalize: func(rec map[string]interface{}, idx int) models.CarRental {
			return normalizeCar(rec)
		},
		synthesize: func(count int) []models.CarRental {
			return syntheticCars(q, count)
		},
	})
	if err != nil {
		return nil, err
	}

	res.Records = applyCarFilter(res.Records, f)
	return res, nil
}

func normalizeCar(rec map[string]interface{}) models.CarRental {
	company := stringField(rec, "Independent Rentals", "company", "agency")
	return models.CarRental{
		ID:           stringField(rec, uuid.New().String(), "id"),
		Company:      company,
		Model:        stringField(rec, "Compact Car", "model", "car"),
		Category:     stringField(rec, "Economy", "category", "class"),
		Seats:        intField(rec, 5, "seats"),
		Transmission: stringField(rec, "Automatic", "transmission"),
		PricePerDay:  floatField(rec, randomPrice(30, 160), "pricePerDay", "price_per_day", "price"),
		Currency:     stringField(rec, "USD", "currency"),
		Rating:       floatField(rec, 4.0, "rating"),
		Features:     stringListField(rec, defaultCarFeatures, "features"),
		LogoURL:      lookupImage(company, carCompanyLogos, defaultCarLogo),
	}
}

func applyCarFilter(cars []models.CarRental, f models.CarFilter) []models.CarRental {
	return filterRecords(cars, func(c models.CarRental) bool {
		if !inRange(c.PricePerDay, f.MinPrice, f.MaxPrice) {
			return false
		}
		return matchesAll(f.Features, c.Features...)
	})
}
