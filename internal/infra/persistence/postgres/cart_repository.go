package postgres

import (
	"context"
	"encoding/json"

	"light3d/internal/domain/entity"
	"light3d/internal/domain/repository"
	"light3d/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface with one
// row per storage key holding the serialized line list.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// Save upserts the full serialized cart under key.
func (repo *cartRepository) Save(ctx context.Context, key string, cart *entity.Cart) error {
	payload, err := json.Marshal(cart.Lines)
	if err != nil {
		return errors.Wrap(err, "failed to serialize cart")
	}

	cartM := &model.CartModel{
		Key:     key,
		Payload: payload,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(cartM).Error; err != nil {
		return errors.Wrap(err, "failed to save cart")
	}

	return nil
}

// Load reads and deserializes the cart stored under key.
func (repo *cartRepository) Load(ctx context.Context, key string) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	var lines []*entity.CartLine
	if err := json.Unmarshal(cartM.Payload, &lines); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize cart payload")
	}

	return &entity.Cart{Lines: lines}, nil
}

// Delete removes the cart stored under key. Absent keys are not an error.
func (repo *cartRepository) Delete(ctx context.Context, key string) error {
	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.CartModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart")
	}

	return nil
}
