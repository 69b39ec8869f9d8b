package search

import (
	"context"
	"fmt"

	"voyago/models"
	"voyago/services/completion"

	"github.com/google/uuid"
)

const packageResultCount = 6

func (s *DefaultSearchService) Packages(ctx context.Context, sessionID string, q models.PackageQuery, f models.PackageFilter) (*Result[models.TravelPackage], error) {
	if q.Destination == "" {
		return nil, &MissingParamError{Field: "destination"}
	}
	if q.Travelers <= 0 {
		q.Travelers = 2
	}

	res, err := runPipeline(ctx, s, sessionID, domainSpec[models.TravelPackage]{
		name:  "packages",
		count: packageResultCount,
		prompt: completion.PromptSpec{
			System: systemPrompt,
			User: fmt.Sprintf(
				`List %d realistic travel packages to %s for %d traveler(s)%s. `+
					`Return a JSON array of objects shaped like: `+
					`[{"name":"7-Day Bali Escape","agency":"TUI","destination":"Bali","durationDays":7,"price":1450,"rating":4.6,"inclusions":["Flights","Accommodation","Breakfast"]}]`,
				packageResultCount, q.Destination, q.Travelers, monthClause(q.Month)),
		},
		normalize: func(rec map[string]interface{}, idx int) models.TravelPackage {
			return normalizePackage(rec, q)
		},
		synthesize: func(count int) []models.TravelPackage {
			return syntheticPackages(q, count)
		},
	})
	if err != nil {
		return nil, err
	}

	res.Records = applyPackageFilter(res.Records, f)
	return res, nil
}

func monthClause(month string) string {
	if month == "" {
		return ""
	}
	return " departing in " + month
}

func normalizePackage(rec map[string]interface{}, q models.PackageQuery) models.TravelPackage {
	agency := stringField(rec, "Local Agency", "agency", "operator")
	return models.TravelPackage{
		ID:            stringField(rec, uuid.New().String(), "id"),
		Name:          stringField(rec, q.Destination+" Getaway", "name", "title"),
		Agency:        agency,
		Destination:   stringField(rec, q.Destination, "destination"),
		DurationDays:  intField(rec, 7, "durationDays", "duration_days", "days"),
		Price:         floatField(rec, randomPrice(600, 2600), "price"),
		Currency:      stringField(rec, "USD", "currency"),
		Rating:        floatField(rec, 4.0, "rating"),
		Inclusions:    stringListField(rec, defaultInclusions, "inclusions"),
		ImageURL:      stringField(rec, defaultHotelImage, "imageUrl"),
		AgencyLogoURL: lookupImage(agency, agencyLogos, defaultAgencyLogo),
	}
}

func applyPackageFilter(packages []models.TravelPackage, f models.PackageFilter) []models.TravelPackage {
	return filterRecords(packages, func(p models.TravelPackage) bool {
		if !inRange(p.Price, f.MinPrice, f.MaxPrice) {
			return false
		}
		if f.MinRating != nil && p.Rating < *f.MinRating {
			return false
		}
		return matchesAll(f.Inclusions, p.Inclusions...)
	})
}
