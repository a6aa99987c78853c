// Package catalog loads the static product catalog and serves it from memory.
// The catalog document is read once at startup and never written back.
package catalog

import (
	"context"
	"encoding/json"
	"strings"

	"light3d/internal/domain/entity"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"

	// Register bucket URL schemes for deployed catalog sources.
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// Document is the shape of the catalog source file:
// {"categories": [...], "products": [...]}.
type Document struct {
	Categories []*entity.Category `json:"categories"`
	Products   []*entity.Product  `json:"products"`
}

// Load reads and validates the catalog document identified by source and key.
// Source is either a local directory or a blob bucket URL (file://, gs://,
// s3://); key is the object name inside it.
func Load(ctx context.Context, source, key string) (*Document, error) {
	bucket, err := openBucket(ctx, source)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open catalog source %s", source)
	}
	defer bucket.Close()

	raw, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog object %s", key)
	}

	doc := new(Document)
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse catalog document")
	}

	if err := validate(doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func openBucket(ctx context.Context, source string) (*blob.Bucket, error) {
	if strings.Contains(source, "://") {
		return blob.OpenBucket(ctx, source)
	}

	// Bare paths are local directories.
	return fileblob.OpenBucket(source, nil)
}

// validate rejects documents the storefront could not serve coherently:
// duplicate ids, dangling category references and products missing a
// variant dimension.
func validate(doc *Document) error {
	categories := make(map[string]struct{}, len(doc.Categories))
	for _, category := range doc.Categories {
		if category.Slug == "" {
			return errors.New("catalog category with empty slug")
		}
		if _, exists := categories[category.Slug]; exists {
			return errors.Errorf("duplicate category slug %s", category.Slug)
		}
		categories[category.Slug] = struct{}{}
	}

	products := make(map[string]struct{}, len(doc.Products))
	for _, product := range doc.Products {
		if product.ID == "" {
			return errors.New("catalog product with empty id")
		}
		if _, exists := products[product.ID]; exists {
			return errors.Errorf("duplicate product id %s", product.ID)
		}
		products[product.ID] = struct{}{}

		if _, known := categories[product.CategorySlug]; !known {
			return errors.Errorf("product %s references unknown category %s", product.ID, product.CategorySlug)
		}
		if len(product.MaterialOptions) == 0 || len(product.ColorOptions) == 0 || len(product.SizeOptions) == 0 {
			return errors.Errorf("product %s is missing a variant option list", product.ID)
		}
	}

	return nil
}
