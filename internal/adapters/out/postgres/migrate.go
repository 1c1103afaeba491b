package postgres

import (
	"eats/internal/adapters/out/postgres/accountrepo"
	"eats/internal/adapters/out/postgres/catalogrepo"
	"eats/internal/adapters/out/postgres/orderrepo"
	"eats/internal/adapters/out/postgres/outboxrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&accountrepo.AccountDTO{},
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.DishDTO{},
		&orderrepo.OrderDTO{},
		&outboxrepo.MessageDTO{},
	)
}
