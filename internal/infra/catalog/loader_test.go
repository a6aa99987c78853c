package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"light3d/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocument = `{
  "categories": [
    {"slug": "lamps", "name": "Lamps", "description": "Lithophane lamps", "image": "lamps.jpg"}
  ],
  "products": [
    {
      "id": "moon-lamp",
      "name": "Moon Lamp",
      "description": "A lithophane moon lamp",
      "category_slug": "lamps",
      "base_price": "24.90",
      "currency": "EUR",
      "images": ["moon-1.jpg"],
      "featured": true,
      "tags": ["gift"],
      "material_options": [{"id": "pla", "name": "PLA", "description": "", "price_modifier": "0"}],
      "color_options": [{"id": "white", "name": "White", "hex_code": "#ffffff", "price_modifier": "0"}],
      "size_options": [{"id": "m", "name": "Medium", "dimensions": "12cm", "price_modifier": "2"}],
      "lead_time_days_min": 3,
      "lead_time_days_max": 5,
      "rating": 4.8,
      "review_count": 12,
      "sku": "L3D-ML-001"
    }
  ]
}`

func writeDocument(t *testing.T, body string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte(body), 0o600))

	return dir
}

func TestLoad_ParsesDocument(t *testing.T) {
	dir := writeDocument(t, testDocument)

	doc, err := Load(context.Background(), dir, "products.json")
	require.NoError(t, err)

	require.Len(t, doc.Categories, 1)
	require.Len(t, doc.Products, 1)

	product := doc.Products[0]
	assert.Equal(t, "moon-lamp", product.ID)
	assert.Equal(t, "lamps", product.CategorySlug)
	assert.Equal(t, "24.9", product.BasePrice.String())
	assert.Equal(t, "3–5 business days", product.FormatLeadTime())
}

func TestLoad_MissingObject(t *testing.T) {
	dir := writeDocument(t, testDocument)

	_, err := Load(context.Background(), dir, "missing.json")
	require.Error(t, err)
}

func TestLoad_RejectsUnknownCategory(t *testing.T) {
	body := `{
  "categories": [],
  "products": [
    {
      "id": "p1", "name": "P", "description": "", "category_slug": "nope",
      "base_price": "1", "currency": "EUR",
      "material_options": [{"id": "m", "name": "M", "price_modifier": "0"}],
      "color_options": [{"id": "c", "name": "C", "price_modifier": "0"}],
      "size_options": [{"id": "s", "name": "S", "price_modifier": "0"}]
    }
  ]
}`
	dir := writeDocument(t, body)

	_, err := Load(context.Background(), dir, "products.json")
	require.ErrorContains(t, err, "unknown category")
}

func TestRepository_Lookups(t *testing.T) {
	dir := writeDocument(t, testDocument)

	doc, err := Load(context.Background(), dir, "products.json")
	require.NoError(t, err)

	repo := newRepository(doc)
	ctx := context.Background()

	product, err := repo.FindProductByID(ctx, "moon-lamp")
	require.NoError(t, err)
	assert.Equal(t, "Moon Lamp", product.Name)

	_, err = repo.FindProductByID(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	category, err := repo.FindCategoryBySlug(ctx, "lamps")
	require.NoError(t, err)
	assert.Equal(t, "Lamps", category.Name)

	_, err = repo.FindCategoryBySlug(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)

	products, err := repo.ListProductsByCategory(ctx, "lamps")
	require.NoError(t, err)
	assert.Len(t, products, 1)
}
