package model

import (
	"fmt"
	"strconv"
)

// Field names a filterable property column
type Field string

const (
	FieldTitle       Field = "title"
	FieldLocation    Field = "location"
	FieldPriceMin    Field = "price_min"
	FieldBedroomsMin Field = "bedrooms_min"
	FieldCreatedAt   Field = "created_at"
)

// Operator is the comparison a predicate applies
type Operator string

const (
	OpEquals      Operator = "equals"
	OpSubstringCI Operator = "substring-ci"
	OpLTE         Operator = "lte"
)

// Direction is a sort direction
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Predicate is a single filter condition applied by the record store
type Predicate struct {
	Field    Field    `json:"field"`
	Operator Operator `json:"operator"`
	Value    any      `json:"value"`
}

func (p Predicate) String() string {
	value := fmt.Sprint(p.Value)
	if f, ok := p.Value.(float64); ok {
		value = strconv.FormatFloat(f, 'f', -1, 64)
	}

	switch p.Operator {
	case OpSubstringCI:
		return fmt.Sprintf("%s ilike \"%%%s%%\"", p.Field, value)
	case OpLTE:
		return fmt.Sprintf("%s <= %s", p.Field, value)
	default:
		return fmt.Sprintf("%s = %s", p.Field, value)
	}
}

// OrderBy is an ordering directive for filtered reads
type OrderBy struct {
	Field     Field     `json:"field"`
	Direction Direction `json:"direction"`
}

// NewestFirst orders rows by creation time, most recent first
var NewestFirst = OrderBy{Field: FieldCreatedAt, Direction: Descending}
