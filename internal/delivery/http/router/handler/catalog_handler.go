// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"light3d/internal/delivery/http/response"
	"light3d/internal/domain/entity"
	"light3d/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for catalog browsing handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListProducts handles the product listing with filters, sort and pagination.
// All listing state arrives as query parameters; nothing is remembered
// between requests, and malformed values fall back to their defaults rather
// than failing the request.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	listing, err := h.catalogUC.ListProducts(c.Request().Context(), listingInputFromQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing, "Products retrieved successfully")
}

// GetProduct handles retrieving a single product
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// ListCategories handles retrieving all categories
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// GetCategory handles retrieving a single category
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	category, err := h.catalogUC.GetCategory(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category, "Category retrieved successfully")
}

// listingInputFromQuery decodes the listing query parameters. Numeric values
// that do not parse are treated as absent, so the listing degrades to its
// defaults (page 1, full price range, no rating floor) instead of a 400.
func listingInputFromQuery(c echo.Context) *usecase.ListingInput {
	input := &usecase.ListingInput{
		CategorySlug: c.QueryParam("category"),
		Sort:         entity.SortOption(c.QueryParam("sort")),
		Page:         1,
	}

	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		input.Page = page
	}

	filter := &entity.FilterState{
		Materials: splitCSV(c.QueryParam("materials")),
		Colors:    splitCSV(c.QueryParam("colors")),
		Tags:      splitCSV(c.QueryParam("tags")),
		Search:    c.QueryParam("search"),
	}

	if min, err := decimal.NewFromString(c.QueryParam("price_min")); err == nil {
		filter.PriceMin = min
	}
	if max, err := decimal.NewFromString(c.QueryParam("price_max")); err == nil {
		filter.PriceMax = max
	}
	if rating, err := strconv.ParseFloat(c.QueryParam("min_rating"), 64); err == nil {
		filter.MinRating = rating
	}

	input.Filter = filter

	return input
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
