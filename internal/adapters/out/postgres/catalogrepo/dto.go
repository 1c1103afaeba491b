// Package catalogrepo reads restaurants and dishes. The catalog is
// maintained outside this service, so the repository only reads.
package catalogrepo

import (
	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RestaurantDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// DishDTO keeps option definitions as JSON, mirroring catalog.DishOption.
type DishDTO struct {
	ID           uuid.UUID            `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID            `gorm:"type:uuid;not null;index"`
	Name         string               `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal      `gorm:"type:numeric(12,2);not null"`
	Options      []catalog.DishOption `gorm:"type:jsonb;serializer:json"`
}

func (DishDTO) TableName() string {
	return "dishes"
}

func restaurantToDomain(dto RestaurantDTO) (catalog.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Restaurant{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return catalog.Restaurant{}, err
	}
	return catalog.NewRestaurant(id, dto.Name, ownerID)
}

func dishToDomain(dto DishDTO) (catalog.Dish, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Dish{}, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return catalog.Dish{}, err
	}
	return catalog.NewDish(id, restaurantID, dto.Name, dto.Price, dto.Options)
}
