// Package blobstore keeps carts in a gocloud blob bucket, one object per
// storage key. It is the durable store used when Postgres is not configured:
// a local directory in development, a cloud bucket in small deployments.
package blobstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"light3d/config"
	"light3d/internal/domain/entity"
	"light3d/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"

	// Register bucket URL schemes for deployed cart stores.
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

type cartRepository struct {
	bucket *blob.Bucket
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewCartRepository opens the configured cart bucket. Bare paths are local
// directories, created on first use; anything with a scheme goes through the
// gocloud URL muxer.
func NewCartRepository(params Params) (repository.CartRepository, error) {
	location := params.Config.Cart.Bucket

	var bucket *blob.Bucket
	var err error
	if strings.Contains(location, "://") {
		bucket, err = blob.OpenBucket(params.Ctx, location)
	} else {
		bucket, err = fileblob.OpenBucket(location, &fileblob.Options{CreateDir: true})
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open cart bucket %s", location)
	}

	params.Logger.Info("Cart blob store opened", slog.String("bucket", location))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &cartRepository{bucket: bucket}, nil
}

// newWithBucket is used by tests to wrap an already-open bucket.
func newWithBucket(bucket *blob.Bucket) repository.CartRepository {
	return &cartRepository{bucket: bucket}
}

// Save writes the full serialized line list to the key's object.
func (repo *cartRepository) Save(ctx context.Context, key string, cart *entity.Cart) error {
	payload, err := json.Marshal(cart.Lines)
	if err != nil {
		return errors.Wrap(err, "failed to serialize cart")
	}

	if err := repo.bucket.WriteAll(ctx, objectKey(key), payload, nil); err != nil {
		return errors.Wrap(err, "failed to write cart object")
	}

	return nil
}

// Load reads and deserializes the key's object.
func (repo *cartRepository) Load(ctx context.Context, key string) (*entity.Cart, error) {
	raw, err := repo.bucket.ReadAll(ctx, objectKey(key))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to read cart object")
	}

	var lines []*entity.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize cart payload")
	}

	return &entity.Cart{Lines: lines}, nil
}

// Delete removes the key's object. Absent objects are not an error.
func (repo *cartRepository) Delete(ctx context.Context, key string) error {
	if err := repo.bucket.Delete(ctx, objectKey(key)); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete cart object")
	}

	return nil
}

func objectKey(key string) string {
	return key + ".json"
}
