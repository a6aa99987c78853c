// Package impl provides the concrete use case services.
package impl

import (
	"context"
	"sort"

	"light3d/config"
	"light3d/internal/domain/entity"
	domainerrors "light3d/internal/domain/errors"
	"light3d/internal/domain/repository"
	"light3d/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
	config      *config.Config
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Config      *config.Config
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		config:      params.Config,
	}
}

// ListProducts applies category scope, filters, sort and pagination in that
// order. The whole derivation is recomputed per request; nothing is cached.
func (s *catalogService) ListProducts(ctx context.Context, input *usecase.ListingInput) (*usecase.ListingOutput, error) {
	products, err := s.scopedProducts(ctx, input.CategorySlug)
	if err != nil {
		return nil, err
	}

	filter := s.normalizeFilter(input.Filter)
	filtered := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if filter.Matches(p) {
			filtered = append(filtered, p)
		}
	}

	sortKey := input.Sort
	if !sortKey.Valid() {
		sortKey = entity.SortFeatured
	}
	sortProducts(filtered, sortKey)

	pageSize := s.config.Listing.PageSize
	page := input.Page
	if page < 1 {
		page = 1
	}

	totalItems := len(filtered)
	totalPages := (totalItems + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start, end = totalItems, totalItems
	} else if end > totalItems {
		end = totalItems
	}

	views := make([]*usecase.ProductView, 0, end-start)
	for _, p := range filtered[start:end] {
		views = append(views, productView(p))
	}

	return &usecase.ListingOutput{
		Products:   views,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
		Sort:       sortKey,
	}, nil
}

// GetProduct returns a single product by id
func (s *catalogService) GetProduct(ctx context.Context, id string) (*usecase.ProductView, error) {
	product, err := s.catalogRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return productView(product), nil
}

// ListCategories returns all categories with their product counts
func (s *catalogService) ListCategories(ctx context.Context) ([]*usecase.CategoryView, error) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	views := make([]*usecase.CategoryView, 0, len(categories))
	for _, category := range categories {
		count, err := s.categoryProductCount(ctx, category.Slug)
		if err != nil {
			return nil, err
		}
		views = append(views, &usecase.CategoryView{Category: category, ProductCount: count})
	}

	return views, nil
}

// GetCategory returns a single category by slug
func (s *catalogService) GetCategory(ctx context.Context, slug string) (*usecase.CategoryView, error) {
	category, err := s.catalogRepo.FindCategoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	count, err := s.categoryProductCount(ctx, slug)
	if err != nil {
		return nil, err
	}

	return &usecase.CategoryView{Category: category, ProductCount: count}, nil
}

func (s *catalogService) scopedProducts(ctx context.Context, categorySlug string) ([]*entity.Product, error) {
	if categorySlug == "" {
		products, err := s.catalogRepo.ListProducts(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list products")
		}

		return products, nil
	}

	products, err := s.catalogRepo.ListProductsByCategory(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return products, nil
}

func (s *catalogService) categoryProductCount(ctx context.Context, slug string) (int, error) {
	products, err := s.catalogRepo.ListProductsByCategory(ctx, slug)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count category products")
	}

	return len(products), nil
}

// normalizeFilter fills in the default price range: a missing filter or a
// zero max bound means "no upper bound the visitor chose", which maps to the
// configured listing maximum.
func (s *catalogService) normalizeFilter(filter *entity.FilterState) *entity.FilterState {
	if filter == nil {
		return &entity.FilterState{PriceMin: decimal.Zero, PriceMax: s.config.Listing.PriceMax}
	}

	normalized := *filter
	if normalized.PriceMax.IsZero() {
		normalized.PriceMax = s.config.Listing.PriceMax
	}

	return &normalized
}

// sortProducts orders the slice in place. Every sort is stable so that
// catalog natural order breaks ties deterministically.
func sortProducts(products []*entity.Product, key entity.SortOption) {
	switch key {
	case entity.SortFeatured:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Featured && !products[j].Featured
		})
	case entity.SortNewest:
		// Newer products are appended to the catalog, so reverse
		// natural order approximates recency.
		for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
			products[i], products[j] = products[j], products[i]
		}
	case entity.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].BasePrice.LessThan(products[j].BasePrice)
		})
	case entity.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].BasePrice.GreaterThan(products[j].BasePrice)
		})
	case entity.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	}
}

func productView(p *entity.Product) *usecase.ProductView {
	return &usecase.ProductView{
		Product:  p,
		LeadTime: p.FormatLeadTime(),
	}
}
