// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"light3d/internal/domain/entity"
)

// ProductView is a product enriched with display fields derived from it.
type ProductView struct {
	*entity.Product
	LeadTime string `json:"lead_time"`
}

// ListingInput represents one product listing request: filters, sort and page
// are transient and arrive fresh with every request.
type ListingInput struct {
	CategorySlug string              `json:"category_slug,omitempty"`
	Filter       *entity.FilterState `json:"filter,omitempty"`
	Sort         entity.SortOption   `json:"sort,omitempty"`
	Page         int                 `json:"page"`
}

// ListingOutput is one page of a filtered, sorted product listing.
type ListingOutput struct {
	Products   []*ProductView    `json:"products"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalItems int               `json:"total_items"`
	TotalPages int               `json:"total_pages"`
	Sort       entity.SortOption `json:"sort"`
}

// CategoryView is a category together with its product count.
type CategoryView struct {
	*entity.Category
	ProductCount int `json:"product_count"`
}

// CatalogUsecase defines the interface for catalog browsing use cases
type CatalogUsecase interface {
	// ListProducts returns one page of products after applying the input's
	// category scope, filters and sort. A page beyond the last one yields
	// an empty page, not an error.
	ListProducts(ctx context.Context, input *ListingInput) (*ListingOutput, error)

	// GetProduct returns a single product by id.
	GetProduct(ctx context.Context, id string) (*ProductView, error)

	// ListCategories returns all categories with their product counts.
	ListCategories(ctx context.Context) ([]*CategoryView, error)

	// GetCategory returns a single category by slug.
	GetCategory(ctx context.Context, slug string) (*CategoryView, error)
}
