package model

import "strings"

// DefaultCity is used by the location selector when the requested city is unknown
const DefaultCity = "Mumbai"

// SupportedCities are the cities offered by the location selector
var SupportedCities = []string{
	"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai",
	"Kolkata", "Pune", "Ahmedabad", "Jaipur", "Surat",
	"Lucknow", "Kanpur", "Nagpur", "Indore", "Thane",
	"Bhopal", "Visakhapatnam", "Noida", "Gurgaon", "Kochi",
}

// ResolveCity returns the canonical spelling of city when it is supported,
// otherwise fallback.
func ResolveCity(city, fallback string) string {
	city = strings.TrimSpace(city)
	for _, c := range SupportedCities {
		if strings.EqualFold(c, city) {
			return c
		}
	}
	return fallback
}
