package model

// ParsedQuery holds the structured signals extracted from a free-text search query.
// A query with ExactMatch set never carries the other signals.
type ParsedQuery struct {
	ExactMatch     *ExactReference `json:"exact_match,omitempty"`
	Bedrooms       *int            `json:"bedrooms,omitempty"`
	PriceCeiling   *float64        `json:"price_ceiling,omitempty"` // base currency units
	LocationPhrase *string         `json:"location,omitempty"`
}

// ExactReference identifies one specific listing from a contextual prompt
type ExactReference struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	Price    string `json:"price"` // captured, not used for filtering
}

// IsEmpty reports whether no signal was recognized
func (q *ParsedQuery) IsEmpty() bool {
	return q.ExactMatch == nil && q.Bedrooms == nil && q.PriceCeiling == nil && q.LocationPhrase == nil
}
