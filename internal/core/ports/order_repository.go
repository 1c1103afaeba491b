// Package ports defines the contracts between the application layer and the
// adapters: repositories, the unit of work, token handling, idempotency and
// event publishing.
package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// OrderFilter narrows order listings. A nil Status means any status.
type OrderFilter struct {
	Status *order.Status
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, driver and version. It only applies when the
	// stored version still equals aggregate.ExpectedVersion(); otherwise it
	// returns an errs.VersionIsInvalidError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	ListByCustomer(ctx context.Context, customerID kernel.UUID, filter OrderFilter) ([]*order.Order, error)
	ListByDriver(ctx context.Context, driverID kernel.UUID, filter OrderFilter) ([]*order.Order, error)

	// ListByRestaurants returns orders of any of the given restaurants.
	// An empty id list yields an empty result.
	ListByRestaurants(ctx context.Context, restaurantIDs []kernel.UUID, filter OrderFilter) ([]*order.Order, error)
}
