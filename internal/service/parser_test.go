package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryParser_ExactReference(t *testing.T) {
	parser := NewQueryParser()

	tests := []struct {
		name         string
		query        string
		wantTitle    string
		wantLocation string
		wantPrice    string
	}{
		{
			name:         "contextual prompt",
			query:        `property "Lake View Villa" located at Pune priced at $5000000`,
			wantTitle:    "Lake View Villa",
			wantLocation: "Pune",
			wantPrice:    "5000000",
		},
		{
			name:         "mixed case with surrounding text",
			query:        `Tell me more about the PROPERTY "Sky Loft 3B" Located At Bandra West, Mumbai PRICED AT $12500000 please`,
			wantTitle:    "Sky Loft 3B",
			wantLocation: "Bandra West, Mumbai",
			wantPrice:    "12500000",
		},
		{
			name:         "captures kept verbatim",
			query:        `property " Sea Breeze " located at Juhu, Mumbai priced at $9000000`,
			wantTitle:    " Sea Breeze ",
			wantLocation: "Juhu, Mumbai",
			wantPrice:    "9000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.Parse(tt.query)
			require.NotNil(t, got.ExactMatch)
			assert.Equal(t, tt.wantTitle, got.ExactMatch.Title)
			assert.Equal(t, tt.wantLocation, got.ExactMatch.Location)
			assert.Equal(t, tt.wantPrice, got.ExactMatch.Price)

			// exact references exclude every other signal
			assert.Nil(t, got.Bedrooms)
			assert.Nil(t, got.PriceCeiling)
			assert.Nil(t, got.LocationPhrase)
		})
	}
}

func TestQueryParser_ExactReferenceSuppressesSignals(t *testing.T) {
	got := NewQueryParser().Parse(`3 bhk in Pune property "Orchid 2 BHK" located at Pune priced at $4000000 under 50 lakh`)

	require.NotNil(t, got.ExactMatch)
	assert.Equal(t, "Orchid 2 BHK", got.ExactMatch.Title)
	assert.Nil(t, got.Bedrooms)
	assert.Nil(t, got.PriceCeiling)
	assert.Nil(t, got.LocationPhrase)
}

func TestQueryParser_Bedrooms(t *testing.T) {
	parser := NewQueryParser()

	for _, n := range []int{1, 2, 3, 4, 10} {
		for _, form := range []string{"%d bhk", "%dBHK", "%d Bhk flat", "need a %d  bHk"} {
			query := fmt.Sprintf(form, n)
			t.Run(query, func(t *testing.T) {
				got := parser.Parse(query)
				require.NotNil(t, got.Bedrooms)
				assert.Equal(t, n, *got.Bedrooms)
			})
		}
	}
}

func TestQueryParser_BedroomsNeedSuffix(t *testing.T) {
	got := NewQueryParser().Parse("flat in 3 Towers")

	assert.Nil(t, got.Bedrooms)
	assert.Nil(t, got.LocationPhrase)
}

func TestQueryParser_PriceCeiling(t *testing.T) {
	parser := NewQueryParser()

	tests := []struct {
		query string
		want  float64
	}{
		{"under 1.5 crore", 15_000_000},
		{"50 lakh", 5_000_000},
		{"budget 800k", 800_000},
		{"2 Million max", 2_000_000},
		{"0.75 CRORE", 7_500_000},
		{"below 20 lakh or 2 crore", 2_000_000},
		{"under 50 lakhs", 5_000_000},
		{"2 crores", 20_000_000},
		{"2 bhk in Pune under 50 lakhs", 5_000_000},
		{"villa for 2 Crores", 20_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := parser.Parse(tt.query)
			require.NotNil(t, got.PriceCeiling)
			assert.InDelta(t, tt.want, *got.PriceCeiling, 0.001)
		})
	}
}

func TestQueryParser_NoPriceWithoutKnownUnit(t *testing.T) {
	parser := NewQueryParser()

	for _, query := range []string{"under 5000000", "5 kitchens", "20 dollars", "3 bhk"} {
		t.Run(query, func(t *testing.T) {
			assert.Nil(t, parser.Parse(query).PriceCeiling)
		})
	}
}

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		unit       string
		multiplier float64
	}{
		{"crore", 10_000_000},
		{"lakh", 100_000},
		{"k", 1_000},
		{"million", 1_000_000},
		{"Lakh", 100_000},
	}

	for _, tt := range tests {
		for _, amount := range []float64{0, 1, 2.5, 99} {
			got, ok := NormalizePrice(amount, tt.unit)
			assert.True(t, ok)
			assert.Equal(t, amount*tt.multiplier, got)
		}
	}

	_, ok := NormalizePrice(10, "billion")
	assert.False(t, ok)
}

func TestQueryParser_Location(t *testing.T) {
	parser := NewQueryParser()

	tests := []struct {
		query string
		want  string
	}{
		{"3 bhk in Bangalore under 1.5 crore", "Bangalore"},
		{"villa in Koregaon Park, Pune", "Koregaon Park, Pune"},
		{"IN navi mumbai", "navi mumbai"},
		{"flats in   Whitefield   ", "Whitefield"},
		{"house in Andheri for 80 lakh", "Andheri"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := parser.Parse(tt.query)
			require.NotNil(t, got.LocationPhrase)
			assert.Equal(t, tt.want, *got.LocationPhrase)
		})
	}
}

func TestQueryParser_LocationRequiresWordBoundary(t *testing.T) {
	got := NewQueryParser().Parse("cabin near hills")
	assert.Nil(t, got.LocationPhrase)
}

func TestQueryParser_AllSignals(t *testing.T) {
	got := NewQueryParser().Parse("3 bhk in Bangalore under 1.5 crore")

	assert.Nil(t, got.ExactMatch)
	require.NotNil(t, got.Bedrooms)
	require.NotNil(t, got.LocationPhrase)
	require.NotNil(t, got.PriceCeiling)
	assert.Equal(t, 3, *got.Bedrooms)
	assert.Equal(t, "Bangalore", *got.LocationPhrase)
	assert.Equal(t, float64(15_000_000), *got.PriceCeiling)
}

func TestQueryParser_NoSignals(t *testing.T) {
	parser := NewQueryParser()

	for _, query := range []string{"", "   ", "flat near the beach", `property "unterminated`} {
		t.Run(query, func(t *testing.T) {
			got := parser.Parse(query)
			require.NotNil(t, got)
			assert.True(t, got.IsEmpty())
		})
	}
}

func TestQueryParser_Idempotent(t *testing.T) {
	parser := NewQueryParser()

	for _, query := range []string{
		"3 bhk in Bangalore under 1.5 crore",
		`property "Lake View Villa" located at Pune priced at $5000000`,
		"flat near the beach",
		"2bhk for 50 lakh",
	} {
		assert.Equal(t, parser.Parse(query), parser.Parse(query), query)
	}
}
