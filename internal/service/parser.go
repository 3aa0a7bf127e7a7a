package service

import (
	"regexp"
	"strconv"
	"strings"

	"propertyfinder/internal/model"
)

var (
	exactReferencePattern = regexp.MustCompile(`(?i)property "([^"]+)" located at ([^"]+) priced at \$(\d+)`)
	bedroomsPattern       = regexp.MustCompile(`(?i)(\d+)\s*bhk`)
	pricePattern          = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(crore|lakh|k|million)s?\b`)
	locationPattern       = regexp.MustCompile(`(?i)\bin\s+([a-z\s,]+)`)
)

// priceMultipliers converts a unit word into base currency units
var priceMultipliers = map[string]float64{
	"crore":   10_000_000,
	"lakh":    100_000,
	"k":       1_000,
	"million": 1_000_000,
}

// locationStopWords end a location phrase; they introduce price or other constraints
var locationStopWords = map[string]bool{
	"under": true, "below": true, "within": true, "upto": true, "up": true,
	"less": true, "for": true, "with": true, "around": true, "budget": true,
	"near": true, "priced": true, "at": true, "max": true, "maximum": true,
}

// QueryParser turns a raw search string into a ParsedQuery. It holds no state.
type QueryParser struct{}

// NewQueryParser creates a new query parser
func NewQueryParser() *QueryParser {
	return &QueryParser{}
}

// Parse extracts structured signals from query. Unrecognized input yields an
// empty ParsedQuery, never an error.
func (p *QueryParser) Parse(query string) *model.ParsedQuery {
	if ref := extractExactReference(query); ref != nil {
		return &model.ParsedQuery{ExactMatch: ref}
	}

	return &model.ParsedQuery{
		Bedrooms:       extractBedrooms(query),
		PriceCeiling:   extractPriceCeiling(query),
		LocationPhrase: extractLocation(query),
	}
}

func extractExactReference(query string) *model.ExactReference {
	m := exactReferencePattern.FindStringSubmatch(query)
	if m == nil {
		return nil
	}
	return &model.ExactReference{
		Title:    m[1],
		Location: m[2],
		Price:    m[3],
	}
}

func extractBedrooms(query string) *int {
	m := bedroomsPattern.FindStringSubmatch(query)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

func extractPriceCeiling(query string) *float64 {
	m := pricePattern.FindStringSubmatch(query)
	if m == nil {
		return nil
	}
	amount, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	ceiling, ok := NormalizePrice(amount, m[2])
	if !ok {
		return nil
	}
	return &ceiling
}

// NormalizePrice converts amount in unit into base currency units. ok is false
// for an unrecognized unit.
func NormalizePrice(amount float64, unit string) (float64, bool) {
	multiplier, ok := priceMultipliers[strings.ToLower(unit)]
	if !ok {
		return 0, false
	}
	return amount * multiplier, true
}

func extractLocation(query string) *string {
	m := locationPattern.FindStringSubmatch(query)
	if m == nil {
		return nil
	}

	words := strings.Fields(m[1])
	end := len(words)
	for i, w := range words {
		if locationStopWords[strings.ToLower(strings.Trim(w, ","))] {
			end = i
			break
		}
	}

	phrase := strings.Trim(strings.Join(words[:end], " "), " ,")
	if phrase == "" {
		return nil
	}
	return &phrase
}
