package orderrepo

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker receives every aggregate written through the repository.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the mutable columns if the stored version still matches the
// one the aggregate was loaded with. A mismatch is an
// errs.VersionIsInvalidError.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.ExpectedVersion()).
		Updates(map[string]any{
			"status":     dto.Status,
			"driver_id":  dto.DriverID,
			"version":    dto.Version,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidError("order")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) ListByCustomer(ctx context.Context, customerID kernel.UUID, filter ports.OrderFilter) ([]*order.Order, error) {
	return r.list(ctx, filter, "customer_id = ?", customerID.Bytes())
}

func (r *GormOrderRepository) ListByDriver(ctx context.Context, driverID kernel.UUID, filter ports.OrderFilter) ([]*order.Order, error) {
	return r.list(ctx, filter, "driver_id = ?", driverID.Bytes())
}

// ListByRestaurants returns the orders of any of the given restaurants.
func (r *GormOrderRepository) ListByRestaurants(ctx context.Context, restaurantIDs []kernel.UUID, filter ports.OrderFilter) ([]*order.Order, error) {
	if len(restaurantIDs) == 0 {
		return []*order.Order{}, nil
	}
	ids := make([]uuid.UUID, 0, len(restaurantIDs))
	for _, id := range restaurantIDs {
		ids = append(ids, id.Bytes())
	}
	return r.list(ctx, filter, "restaurant_id IN ?", ids)
}

func (r *GormOrderRepository) list(ctx context.Context, filter ports.OrderFilter, where string, arg any) ([]*order.Order, error) {
	q := r.db.WithContext(ctx).Where(where, arg)
	if filter.Status != nil {
		q = q.Where("status = ?", int(*filter.Status))
	}

	var dtos []OrderDTO
	if err := q.Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
