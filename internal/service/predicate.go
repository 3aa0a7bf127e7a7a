package service

import "propertyfinder/internal/model"

// PredicateSet is the filter plan for one search call
type PredicateSet struct {
	Primary []model.Predicate
	// Fallback is tried only when Primary yields no rows. Nil means no retry.
	Fallback []model.Predicate
	OrderBy  model.OrderBy
}

// HasFallback reports whether a relaxed retry is defined
func (s PredicateSet) HasFallback() bool {
	return s.Fallback != nil
}

// BuildPredicates maps a parsed query onto store predicates. It performs no I/O.
func BuildPredicates(q *model.ParsedQuery) PredicateSet {
	set := PredicateSet{
		Primary: []model.Predicate{},
		OrderBy: model.NewestFirst,
	}
	if q == nil {
		return set
	}

	if q.ExactMatch != nil {
		set.Primary = []model.Predicate{
			{Field: model.FieldTitle, Operator: model.OpSubstringCI, Value: q.ExactMatch.Title},
		}
		set.Fallback = []model.Predicate{
			{Field: model.FieldLocation, Operator: model.OpSubstringCI, Value: q.ExactMatch.Location},
		}
		return set
	}

	if q.Bedrooms != nil {
		set.Primary = append(set.Primary, model.Predicate{
			Field: model.FieldBedroomsMin, Operator: model.OpEquals, Value: *q.Bedrooms,
		})
	}
	if q.LocationPhrase != nil {
		set.Primary = append(set.Primary, model.Predicate{
			Field: model.FieldLocation, Operator: model.OpSubstringCI, Value: *q.LocationPhrase,
		})
	}
	if q.PriceCeiling != nil {
		set.Primary = append(set.Primary, model.Predicate{
			Field: model.FieldPriceMin, Operator: model.OpLTE, Value: *q.PriceCeiling,
		})
	}

	return set
}
