// Package menurepo provides the persistence adapter for the restaurant menu.
// The menu is reference data: it is seeded once on startup and read by the
// catalog port and the browse query.
package menurepo

import (
	"restobot/internal/core/domain/model/kernel"
	"restobot/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
)

// MenuItemDTO represents the database structure for menu items.
type MenuItemDTO struct {
	ID          string `gorm:"primaryKey"`
	Name        string
	Category    string          `gorm:"index"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Description string
}

// TableName specifies the database table name for menu items.
// Overrides GORM's default naming convention to use "menu".
func (MenuItemDTO) TableName() string {
	return "menu"
}

// fromDomain converts a menu item to its database representation.
func fromDomain(item menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:          item.ID(),
		Name:        item.Name(),
		Category:    item.Category(),
		Price:       item.Price().Decimal(),
		Description: item.Description(),
	}
}

// toDomain converts a database DTO to a menu item.
func toDomain(dto MenuItemDTO) (menu.Item, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return menu.Item{}, err
	}

	return menu.NewItem(dto.ID, dto.Name, dto.Category, price, dto.Description)
}
