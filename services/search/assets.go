package search

import "strings"

// Brand imagery is resolved by case-insensitive substring match of the
// entity's name against a fixed lookup table; no match falls back to a fixed
// default reference.

const (
	defaultAirlineLogo = "/assets/logos/airline-generic.svg"
	defaultHotelImage  = "/assets/images/hotel-generic.jpg"
	defaultCarLogo     = "/assets/logos/rental-generic.svg"
	defaultAgencyLogo  = "/assets/logos/agency-generic.svg"
)

var airlineLogos = map[string]string{
	"delta":      "/assets/logos/delta.svg",
	"united":     "/assets/logos/united.svg",
	"american":   "/assets/logos/american.svg",
	"british":    "/assets/logos/british-airways.svg",
	"lufthansa":  "/assets/logos/lufthansa.svg",
	"emirates":   "/assets/logos/emirates.svg",
	"qatar":      "/assets/logos/qatar.svg",
	"singapore":  "/assets/logos/singapore.svg",
	"air france": "/assets/logos/air-france.svg",
	"klm":        "/assets/logos/klm.svg",
}

var hotelImages = map[string]string{
	"hilton":           "/assets/images/hilton.jpg",
	"marriott":         "/assets/images/marriott.jpg",
	"hyatt":            "/assets/images/hyatt.jpg",
	"sheraton":         "/assets/images/sheraton.jpg",
	"intercontinental": "/assets/images/intercontinental.jpg",
	"radisson":         "/assets/images/radisson.jpg",
	"four seasons":     "/assets/images/four-seasons.jpg",
	"holiday inn":      "/assets/images/holiday-inn.jpg",
}

var carCompanyLogos = map[string]string{
	"hertz":      "/assets/logos/hertz.svg",
	"avis":       "/assets/logos/avis.svg",
	"enterprise": "/assets/logos/enterprise.svg",
	"budget":     "/assets/logos/budget.svg",
	"sixt":       "/assets/logos/sixt.svg",
	"europcar":   "/assets/logos/europcar.svg",
}

var agencyLogos = map[string]string{
	"expedia":      "/assets/logos/expedia.svg",
	"tui":          "/assets/logos/tui.svg",
	"intrepid":     "/assets/logos/intrepid.svg",
	"g adventures": "/assets/logos/g-adventures.svg",
	"contiki":      "/assets/logos/contiki.svg",
	"trafalgar":    "/assets/logos/trafalgar.svg",
}

func lookupImage(name string, table map[string]string, fallback string) string {
	lower := strings.ToLower(name)
	for brand, ref := range table {
		if strings.Contains(lower, brand) {
			return ref
		}
	}
	return fallback
}
