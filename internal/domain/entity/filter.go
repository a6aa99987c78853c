package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SortOption selects the ordering of a product listing.
type SortOption string

const (
	// SortFeatured lists featured products first, keeping catalog order otherwise.
	SortFeatured SortOption = "featured"
	// SortNewest reverses the catalog's natural order. Newer products are
	// appended to the catalog, so reverse order approximates recency.
	SortNewest SortOption = "newest"
	// SortPriceLow orders by ascending base price.
	SortPriceLow SortOption = "price-low"
	// SortPriceHigh orders by descending base price.
	SortPriceHigh SortOption = "price-high"
	// SortRating orders by descending rating.
	SortRating SortOption = "rating"
)

// Valid reports whether s is a known sort option.
func (s SortOption) Valid() bool {
	switch s {
	case SortFeatured, SortNewest, SortPriceLow, SortPriceHigh, SortRating:
		return true
	}

	return false
}

// FilterState holds the conjunctive predicates of a product listing.
// It is transient and page-scoped; it is never persisted.
type FilterState struct {
	PriceMin  decimal.Decimal `json:"price_min"`
	PriceMax  decimal.Decimal `json:"price_max"`
	Materials []string        `json:"materials"`
	Colors    []string        `json:"colors"`
	MinRating float64         `json:"min_rating"`
	Tags      []string        `json:"tags"`
	Search    string          `json:"search"`
}

// Matches reports whether the product satisfies every active predicate.
// Empty set predicates and a zero rating are inactive.
func (f *FilterState) Matches(p *Product) bool {
	if p.BasePrice.LessThan(f.PriceMin) || p.BasePrice.GreaterThan(f.PriceMax) {
		return false
	}

	if len(f.Materials) > 0 && !hasAnyMaterial(p, f.Materials) {
		return false
	}

	if len(f.Colors) > 0 && !hasAnyColor(p, f.Colors) {
		return false
	}

	if f.MinRating > 0 && p.Rating < f.MinRating {
		return false
	}

	if len(f.Tags) > 0 && !hasAnyTag(p, f.Tags) {
		return false
	}

	if term := strings.TrimSpace(f.Search); term != "" && !matchesSearch(p, term) {
		return false
	}

	return true
}

func matchesSearch(p *Product, term string) bool {
	term = strings.ToLower(term)

	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term)
}

func hasAnyMaterial(p *Product, ids []string) bool {
	for _, id := range ids {
		if _, ok := p.MaterialByID(id); ok {
			return true
		}
	}

	return false
}

func hasAnyColor(p *Product, ids []string) bool {
	for _, id := range ids {
		if _, ok := p.ColorByID(id); ok {
			return true
		}
	}

	return false
}

func hasAnyTag(p *Product, tags []string) bool {
	for _, tag := range tags {
		if p.HasTag(tag) {
			return true
		}
	}

	return false
}
