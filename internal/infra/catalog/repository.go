package catalog

import (
	"context"
	"log/slog"

	"light3d/config"
	"light3d/internal/domain/entity"
	"light3d/internal/domain/repository"

	"go.uber.org/fx"
)

// memoryCatalogRepository serves the loaded catalog from memory.
// All reads share the same immutable entities.
type memoryCatalogRepository struct {
	products     []*entity.Product
	categories   []*entity.Category
	productsByID map[string]*entity.Product
	bySlug       map[string]*entity.Category
	byCategory   map[string][]*entity.Product
}

// Params defines the required parameters
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewCatalogRepository loads the catalog document and indexes it in memory.
func NewCatalogRepository(params Params) (repository.CatalogRepository, error) {
	doc, err := Load(params.Ctx, params.Config.Catalog.Source, params.Config.Catalog.Key)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Catalog loaded",
		slog.String("source", params.Config.Catalog.Source),
		slog.Int("products", len(doc.Products)),
		slog.Int("categories", len(doc.Categories)),
	)

	return newRepository(doc), nil
}

func newRepository(doc *Document) repository.CatalogRepository {
	repo := &memoryCatalogRepository{
		products:     doc.Products,
		categories:   doc.Categories,
		productsByID: make(map[string]*entity.Product, len(doc.Products)),
		bySlug:       make(map[string]*entity.Category, len(doc.Categories)),
		byCategory:   make(map[string][]*entity.Product, len(doc.Categories)),
	}

	for _, category := range doc.Categories {
		repo.bySlug[category.Slug] = category
	}
	for _, product := range doc.Products {
		repo.productsByID[product.ID] = product
		repo.byCategory[product.CategorySlug] = append(repo.byCategory[product.CategorySlug], product)
	}

	return repo
}

// ListProducts returns all products in catalog natural order.
func (repo *memoryCatalogRepository) ListProducts(_ context.Context) ([]*entity.Product, error) {
	return repo.products, nil
}

// FindProductByID returns the product with the given id.
func (repo *memoryCatalogRepository) FindProductByID(_ context.Context, id string) (*entity.Product, error) {
	product, ok := repo.productsByID[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return product, nil
}

// ListCategories returns all categories in catalog order.
func (repo *memoryCatalogRepository) ListCategories(_ context.Context) ([]*entity.Category, error) {
	return repo.categories, nil
}

// FindCategoryBySlug returns the category with the given slug.
func (repo *memoryCatalogRepository) FindCategoryBySlug(_ context.Context, slug string) (*entity.Category, error) {
	category, ok := repo.bySlug[slug]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}

	return category, nil
}

// ListProductsByCategory returns the products of one category.
func (repo *memoryCatalogRepository) ListProductsByCategory(_ context.Context, slug string) ([]*entity.Product, error) {
	if _, ok := repo.bySlug[slug]; !ok {
		return nil, repository.ErrCategoryNotFound
	}

	return repo.byCategory[slug], nil
}
