// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is one sellable catalog item. Products are loaded once from the
// static catalog source and never mutated at runtime.
type Product struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	CategorySlug    string           `json:"category_slug"`
	BasePrice       decimal.Decimal  `json:"base_price"`
	Currency        string           `json:"currency"`
	Images          []string         `json:"images"`
	Featured        bool             `json:"featured"`
	Tags            []string         `json:"tags"`
	MaterialOptions []MaterialOption `json:"material_options"`
	ColorOptions    []ColorOption    `json:"color_options"`
	SizeOptions     []SizeOption     `json:"size_options"`
	LeadTimeDaysMin int              `json:"lead_time_days_min"`
	LeadTimeDaysMax int              `json:"lead_time_days_max"`
	Rating          float64          `json:"rating"`
	ReviewCount     int              `json:"review_count"`
	SKU             string           `json:"sku"`
}

// MaterialOption is a selectable print material with its price delta.
type MaterialOption struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
}

// ColorOption is a selectable filament color with its price delta.
type ColorOption struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	HexCode       string          `json:"hex_code"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
}

// SizeOption is a selectable print size with its price delta.
type SizeOption struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Dimensions    string          `json:"dimensions"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
}

// MaterialByID returns the product's material option with the given id.
// The boolean reports whether the option belongs to this product.
func (p *Product) MaterialByID(id string) (MaterialOption, bool) {
	for _, opt := range p.MaterialOptions {
		if opt.ID == id {
			return opt, true
		}
	}

	return MaterialOption{}, false
}

// ColorByID returns the product's color option with the given id.
func (p *Product) ColorByID(id string) (ColorOption, bool) {
	for _, opt := range p.ColorOptions {
		if opt.ID == id {
			return opt, true
		}
	}

	return ColorOption{}, false
}

// SizeByID returns the product's size option with the given id.
func (p *Product) SizeByID(id string) (SizeOption, bool) {
	for _, opt := range p.SizeOptions {
		if opt.ID == id {
			return opt, true
		}
	}

	return SizeOption{}, false
}

// HasTag reports whether the product carries the given tag.
func (p *Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}

	return false
}

// FormatLeadTime renders the made-to-order production window as quoted to
// the customer, e.g. "3–5 business days".
func (p *Product) FormatLeadTime() string {
	if p.LeadTimeDaysMin == p.LeadTimeDaysMax {
		if p.LeadTimeDaysMin == 1 {
			return "1 business day"
		}

		return fmt.Sprintf("%d business days", p.LeadTimeDaysMin)
	}

	return fmt.Sprintf("%d–%d business days", p.LeadTimeDaysMin, p.LeadTimeDaysMax)
}
