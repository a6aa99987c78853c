package entity

// Category groups products for navigation and filtering. Categories are
// static data and never mutated at runtime.
type Category struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
