package repository

import (
	"context"

	"light3d/internal/domain/entity"
	"light3d/internal/errors"
)

// ErrCartNotFound is returned when no cart is stored under the given key.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository is the durable key-value contract for carts: one storage key
// holds one serialized line list. Writes replace the full list. Concurrent
// writers to the same key race last-write-wins; that is accepted, not
// engineered around.
type CartRepository interface {
	// Save serializes and stores the full cart under key, replacing any
	// previous value.
	Save(ctx context.Context, key string, cart *entity.Cart) error

	// Load reads and deserializes the cart stored under key.
	// A missing key yields ErrCartNotFound.
	Load(ctx context.Context, key string) (*entity.Cart, error)

	// Delete removes the cart stored under key. Deleting an absent key
	// is not an error.
	Delete(ctx context.Context, key string) error
}
