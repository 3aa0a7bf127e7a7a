package model

import (
	"time"

	"github.com/google/uuid"
)

// Property represents a property listing in the catalog
type Property struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Location     string    `json:"location" db:"location"`
	PriceMin     float64   `json:"price_min" db:"price_min"`
	PriceMax     *float64  `json:"price_max,omitempty" db:"price_max"`
	BedroomsMin  int       `json:"bedrooms_min" db:"bedrooms_min"`
	BedroomsMax  *int      `json:"bedrooms_max,omitempty" db:"bedrooms_max"`
	PropertyType *string   `json:"property_type,omitempty" db:"property_type"`
	Description  *string   `json:"description,omitempty" db:"description"`
	ImageURL     *string   `json:"image_url,omitempty" db:"image_url"`
	AIOverview   *string   `json:"ai_overview,omitempty" db:"ai_overview"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// PropertyPatch is a partial update. Nil fields are left untouched.
type PropertyPatch struct {
	Title        *string  `json:"title,omitempty"`
	Location     *string  `json:"location,omitempty"`
	PriceMin     *float64 `json:"price_min,omitempty"`
	PriceMax     *float64 `json:"price_max,omitempty"`
	BedroomsMin  *int     `json:"bedrooms_min,omitempty"`
	BedroomsMax  *int     `json:"bedrooms_max,omitempty"`
	PropertyType *string  `json:"property_type,omitempty"`
	Description  *string  `json:"description,omitempty"`
	ImageURL     *string  `json:"image_url,omitempty"`
	AIOverview   *string  `json:"ai_overview,omitempty"`
}

// IsEmpty reports whether the patch carries no fields
func (p PropertyPatch) IsEmpty() bool {
	return p.Title == nil && p.Location == nil &&
		p.PriceMin == nil && p.PriceMax == nil &&
		p.BedroomsMin == nil && p.BedroomsMax == nil &&
		p.PropertyType == nil && p.Description == nil &&
		p.ImageURL == nil && p.AIOverview == nil
}
