package search

import (
	"fmt"
	"math/rand"

	"voyago/models"

	"github.com/google/uuid"
)

// Synthetic generators fabricate plausible records when the completion
// pipeline yields nothing usable. They never fail and always return exactly
// the requested count. Values are derived from index arithmetic plus ambient
// randomness so successive calls look varied but stay internally consistent.

var syntheticCarriers = []struct {
	Name string
	Code string
}{
	{"Delta Air Lines", "DL"},
	{"United Airlines", "UA"},
	{"American Airlines", "AA"},
	{"British Airways", "BA"},
	{"Lufthansa", "LH"},
	{"Emirates", "EK"},
	{"Qatar Airways", "QR"},
	{"Singapore Airlines", "SQ"},
}

var syntheticCabins = []string{"Economy", "Premium Economy", "Business", "First"}

var defaultAmenities = []string{"WiFi", "Breakfast", "Pool", "Gym", "Air Conditioning"}

func syntheticFlights(q models.FlightQuery, count int) []models.Flight {
	flights := make([]models.Flight, 0, count)
	for i := 0; i < count; i++ {
		carrier := syntheticCarriers[i%len(syntheticCarriers)]
		depart := 5*60 + (i*95)%(16*60) + rand.Intn(20)
		duration := 90 + (i*35)%480
		flights = append(flights, models.Flight{
			ID:            uuid.New().String(),
			Airline:       carrier.Name,
			FlightNumber:  fmt.Sprintf("%s%d", carrier.Code, 100+rand.Intn(900)),
			From:          q.From,
			To:            q.To,
			Date:          q.DepartureDate,
			DepartureTime: clockTime(depart),
			ArrivalTime:   clockTime(depart + duration),
			DurationMins:  duration,
			Stops:         i % 3,
			Cabin:         pick(syntheticCabins, q.Cabin),
			Terminal:      string(rune('A' + i%4)),
			Price:         120 + float64((i*57)%400) + float64(rand.Intn(80)),
			Currency:      "USD",
			LogoURL:       lookupImage(carrier.Name, airlineLogos, defaultAirlineLogo),
		})
	}
	return flights
}

var syntheticChains = []string{
	"Hilton", "Marriott", "Hyatt", "Sheraton",
	"InterContinental", "Radisson", "Four Seasons", "Holiday Inn",
}

func syntheticHotels(q models.HotelQuery, count int) []models.Hotel {
	hotels := make([]models.Hotel, 0, count)
	for i := 0; i < count; i++ {
		chain := syntheticChains[i%len(syntheticChains)]
		name := fmt.Sprintf("%s %s", chain, q.Destination)
		hotels = append(hotels, models.Hotel{
			ID:        uuid.New().String(),
			Name:      name,
			Location:  q.Destination,
			Price:     80 + float64((i*43)%240) + float64(rand.Intn(40)),
			Currency:  "USD",
			Rating:    3.5 + float64(i%4)*0.5,
			Amenities: append([]string(nil), defaultAmenities[:3+i%3]...),
			ImageURL:  lookupImage(name, hotelImages, defaultHotelImage),
		})
	}
	return hotels
}

var syntheticRentalCompanies = []string{"Hertz", "Avis", "Enterprise", "Budget", "Sixt", "Europcar"}

var syntheticCarModels = []struct {
	Model    string
	Category string
	Seats    int
}{
	{"Toyota Corolla", "Economy", 5},
	{"Honda Civic", "Compact", 5},
	{"Volkswagen Golf", "Compact", 5},
	{"Ford Explorer", "SUV", 7},
	{"BMW 3 Series", "Luxury", 5},
	{"Tesla Model 3", "Electric", 5},
}

var defaultCarFeatures = []string{"Air Conditioning", "Bluetooth", "Cruise Control", "GPS", "Parking Sensors"}

func syntheticCars(q models.CarQuery, count int) []models.CarRental {
	cars := make([]models.CarRental, 0, count)
	for i := 0; i < count; i++ {
		company := syntheticRentalCompanies[i%len(syntheticRentalCompanies)]
		model := syntheticCarModels[i%len(syntheticCarModels)]
		transmission := "Automatic"
		if i%3 == 2 {
			transmission = "Manual"
		}
		cars = append(cars, models.CarRental{
			ID:           uuid.New().String(),
			Company:      company,
			Model:        model.Model,
			Category:     model.Category,
			Seats:        model.Seats,
			Transmission: transmission,
			PricePerDay:  30 + float64((i*23)%120) + float64(rand.Intn(20)),
			Currency:     "USD",
			Rating:       4.0 + float64(i%2)*0.5,
			Features:     append([]string(nil), defaultCarFeatures[:3+i%3]...),
			LogoURL:      lookupImage(company, carCompanyLogos, defaultCarLogo),
		})
	}
	return cars
}

var syntheticAgencies = []string{"Expedia", "TUI", "Intrepid Travel", "G Adventures", "Contiki", "Trafalgar"}

var defaultInclusions = []string{"Flights", "Accommodation", "Breakfast", "Airport Transfers", "Guided Tours"}

func syntheticPackages(q models.PackageQuery, count int) []models.TravelPackage {
	packages := make([]models.TravelPackage, 0, count)
	for i := 0; i < count; i++ {
		agency := syntheticAgencies[i%len(syntheticAgencies)]
		days := 4 + (i*3)%10
		name := fmt.Sprintf("%d-Day %s Escape", days, q.Destination)
		packages = append(packages, models.TravelPackage{
			ID:            uuid.New().String(),
			Name:          name,
			Agency:        agency,
			Destination:   q.Destination,
			DurationDays:  days,
			Price:         600 + float64((i*211)%1800) + float64(rand.Intn(150)),
			Currency:      "USD",
			Rating:        4.0 + float64(i%3)*0.3,
			Inclusions:    append([]string(nil), defaultInclusions[:3+i%3]...),
			ImageURL:      defaultHotelImage,
			AgencyLogoURL: lookupImage(agency, agencyLogos, defaultAgencyLogo),
		})
	}
	return packages
}

// pick returns preferred when non-empty, otherwise cycles the options.
func pick(options []string, preferred string) string {
	if preferred != "" {
		return preferred
	}
	return options[rand.Intn(len(options))]
}
