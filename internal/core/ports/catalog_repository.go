package ports

import (
	"context"

	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
)

// CatalogRepository reads restaurants and dishes. Ordering never writes to it.
type CatalogRepository interface {
	// GetRestaurant and GetDish return errs.ObjectNotFoundError when absent.
	GetRestaurant(ctx context.Context, id kernel.UUID) (catalog.Restaurant, error)
	GetDish(ctx context.Context, id kernel.UUID) (catalog.Dish, error)

	ListRestaurantIDsByOwner(ctx context.Context, ownerID kernel.UUID) ([]kernel.UUID, error)
}
