package postgres

import (
	"restobot/internal/adapters/out/postgres/menurepo"
	"restobot/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for every persisted entity:
// the menu, the orders and their line items.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
}
