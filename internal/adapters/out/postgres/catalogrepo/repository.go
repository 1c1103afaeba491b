package catalogrepo

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalogRepository implements ports.CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) GetRestaurant(ctx context.Context, id kernel.UUID) (catalog.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return catalog.Restaurant{}, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Restaurant{}, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return catalog.Restaurant{}, err
	}
	return restaurantToDomain(dto)
}

// GetDish is safe for concurrent use; order placement looks dishes up in
// parallel.
func (r *GormCatalogRepository) GetDish(ctx context.Context, id kernel.UUID) (catalog.Dish, error) {
	if err := id.Validate(); err != nil {
		return catalog.Dish{}, err
	}

	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Dish{}, errs.NewObjectNotFoundError("dish", id.String())
		}
		return catalog.Dish{}, err
	}
	return dishToDomain(dto)
}

func (r *GormCatalogRepository) ListRestaurantIDsByOwner(ctx context.Context, ownerID kernel.UUID) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&RestaurantDTO{}).
		Where("owner_id = ?", ownerID.Bytes()).
		Pluck("id", &raw).Error; err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, b := range raw {
		id, err := kernel.UUIDFromBytes(b[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
