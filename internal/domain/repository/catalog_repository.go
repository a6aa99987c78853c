// Package repository defines the persistence contracts the domain depends on.
package repository

import (
	"context"

	"light3d/internal/domain/entity"
	"light3d/internal/errors"
)

// ErrProductNotFound is returned when no product matches the requested id.
var ErrProductNotFound = errors.New("product not found")

// ErrCategoryNotFound is returned when no category matches the requested slug.
var ErrCategoryNotFound = errors.New("category not found")

// CatalogRepository provides read-only access to the static product catalog.
// The catalog is loaded once at startup and never written to.
type CatalogRepository interface {
	// ListProducts returns all products in catalog natural order.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// FindProductByID returns the product with the given id,
	// or ErrProductNotFound.
	FindProductByID(ctx context.Context, id string) (*entity.Product, error)

	// ListCategories returns all categories in catalog order.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// FindCategoryBySlug returns the category with the given slug,
	// or ErrCategoryNotFound.
	FindCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// ListProductsByCategory returns the products belonging to the given
	// category slug, in catalog natural order.
	ListProductsByCategory(ctx context.Context, slug string) ([]*entity.Product, error)
}
