package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func filterProduct() *Product {
	return &Product{
		ID:          "lamp-01",
		Name:        "Moon Lamp",
		Description: "A lithophane moon printed from lunar surface data",
		BasePrice:   decimal.RequireFromString("24.90"),
		Rating:      4.8,
		MaterialOptions: []MaterialOption{
			{ID: "pla", Name: "PLA"},
		},
		ColorOptions: []ColorOption{
			{ID: "white", Name: "White"},
		},
		Tags: []string{"lamp", "gift"},
	}
}

func TestFilterState_Matches(t *testing.T) {
	tests := []struct {
		name   string
		filter FilterState
		want   bool
	}{
		{
			"empty predicates with open price range match",
			FilterState{PriceMax: decimal.RequireFromString("200")},
			true,
		},
		{
			"price bounds are inclusive",
			FilterState{PriceMin: decimal.RequireFromString("24.90"), PriceMax: decimal.RequireFromString("24.90")},
			true,
		},
		{
			"price below minimum",
			FilterState{PriceMin: decimal.RequireFromString("25"), PriceMax: decimal.RequireFromString("200")},
			false,
		},
		{
			"material present",
			FilterState{PriceMax: decimal.RequireFromString("200"), Materials: []string{"petg", "pla"}},
			true,
		},
		{
			"material absent",
			FilterState{PriceMax: decimal.RequireFromString("200"), Materials: []string{"petg"}},
			false,
		},
		{
			"color present",
			FilterState{PriceMax: decimal.RequireFromString("200"), Colors: []string{"white"}},
			true,
		},
		{
			"color absent",
			FilterState{PriceMax: decimal.RequireFromString("200"), Colors: []string{"black"}},
			false,
		},
		{
			"rating at threshold",
			FilterState{PriceMax: decimal.RequireFromString("200"), MinRating: 4.8},
			true,
		},
		{
			"rating below threshold",
			FilterState{PriceMax: decimal.RequireFromString("200"), MinRating: 4.9},
			false,
		},
		{
			"any tag suffices",
			FilterState{PriceMax: decimal.RequireFromString("200"), Tags: []string{"vase", "gift"}},
			true,
		},
		{
			"search is case-insensitive over name",
			FilterState{PriceMax: decimal.RequireFromString("200"), Search: "MOON"},
			true,
		},
		{
			"search matches description",
			FilterState{PriceMax: decimal.RequireFromString("200"), Search: "lunar"},
			true,
		},
		{
			"search misses",
			FilterState{PriceMax: decimal.RequireFromString("200"), Search: "vase"},
			false,
		},
		{
			"all predicates must hold",
			FilterState{PriceMax: decimal.RequireFromString("200"), Materials: []string{"pla"}, Colors: []string{"black"}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(filterProduct()))
		})
	}
}

func TestSortOption_Valid(t *testing.T) {
	for _, s := range []SortOption{SortFeatured, SortNewest, SortPriceLow, SortPriceHigh, SortRating} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, SortOption("alphabetical").Valid())
	assert.False(t, SortOption("").Valid())
}
