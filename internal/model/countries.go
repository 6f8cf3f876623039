package model

// CountryList is the fixed enumeration offered by the country field. The form
// rejects anything outside it.
var CountryList = []string{
	"Argentina",
	"Australia",
	"Austria",
	"Belgium",
	"Brazil",
	"Bulgaria",
	"Canada",
	"Chile",
	"China",
	"Colombia",
	"Croatia",
	"Czech Republic",
	"Denmark",
	"Ecuador",
	"Egypt",
	"Estonia",
	"Finland",
	"France",
	"Germany",
	"Greece",
	"Hungary",
	"Iceland",
	"India",
	"Indonesia",
	"Ireland",
	"Israel",
	"Italy",
	"Japan",
	"Kenya",
	"Latvia",
	"Lithuania",
	"Luxembourg",
	"Malaysia",
	"Mexico",
	"Morocco",
	"Netherlands",
	"New Zealand",
	"Nigeria",
	"Norway",
	"Peru",
	"Philippines",
	"Poland",
	"Portugal",
	"Romania",
	"Singapore",
	"Slovakia",
	"Slovenia",
	"South Africa",
	"South Korea",
	"Spain",
	"Sweden",
	"Switzerland",
	"Thailand",
	"Turkey",
	"Ukraine",
	"United Arab Emirates",
	"United Kingdom",
	"United States",
	"Uruguay",
	"Vietnam",
}

var countrySet = func() map[string]bool {
	m := make(map[string]bool, len(CountryList))
	for _, c := range CountryList {
		m[c] = true
	}
	return m
}()

func ValidCountry(name string) bool { return countrySet[name] }
