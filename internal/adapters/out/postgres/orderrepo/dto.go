// Package orderrepo persists the order aggregate with GORM. Items are stored
// as a JSON column on the order row; the restaurant owner is copied onto the
// row so that owner listings need no join.
package orderrepo

import (
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	OwnerID      uuid.UUID       `gorm:"type:uuid;not null"`
	DriverID     *uuid.UUID      `gorm:"type:uuid;index"`
	Status       int             `gorm:"type:smallint;not null;index"`
	Total        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Items        []ItemDTO       `gorm:"type:jsonb;serializer:json;not null"`
	Version      int64           `gorm:"not null"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type ItemDTO struct {
	DishID  uuid.UUID          `json:"dishId"`
	Options []order.ItemOption `json:"options,omitempty"`
}

func fromDomain(o *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := o.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemDTO{DishID: item.DishID().Bytes(), Options: item.Options()})
	}

	return OrderDTO{
		ID:           o.ID().Bytes(),
		CustomerID:   o.CustomerID().Bytes(),
		RestaurantID: o.Restaurant().ID().Bytes(),
		OwnerID:      o.Restaurant().OwnerID().Bytes(),
		DriverID:     driverID,
		Status:       int(o.Status()),
		Total:        o.Total(),
		Items:        items,
		Version:      o.Version(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}
	restaurant, err := order.NewRestaurant(restaurantID, ownerID)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		dishID, dishErr := kernel.UUIDFromBytes(itemDTO.DishID[:])
		if dishErr != nil {
			return nil, dishErr
		}
		item, itemErr := order.NewItem(dishID, itemDTO.Options)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		kernel.RestoreEntity(id, dto.CreatedAt, dto.UpdatedAt),
		order.Status(dto.Status),
		dto.Total,
		customerID,
		restaurant,
		driverID,
		items,
		dto.Version,
	)
}
