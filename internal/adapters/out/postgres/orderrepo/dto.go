// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"restobot/internal/core/domain/model/kernel"
	"restobot/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexing for
// efficient lookup by customer and placement time.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerName string          `gorm:"index"`
	Total        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status       int             `gorm:"index"`
	// The aggregate stamps both timestamps itself; GORM must not overwrite them.
	CreatedAt time.Time      `gorm:"index;autoCreateTime:false"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:false"`
	Items     []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line. The price is the one frozen at
// order time; the item name is not duplicated here and is joined from the
// menu table on load.
type OrderItemDTO struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID   string
	Quantity     int
	PriceAtOrder decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:      aggregate.ID().Bytes(),
			MenuItemID:   item.MenuItemID(),
			Quantity:     item.Quantity(),
			PriceAtOrder: item.PriceAtOrder().Decimal(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerName: aggregate.CustomerName(),
		Total:        aggregate.Total().Decimal(),
		Status:       int(aggregate.Status()),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
		Items:        items,
	}
}

// toDomain converts a database DTO to an order domain aggregate. Item names
// are resolved through the provided menu name map; a line whose menu item
// has disappeared falls back to its identifier so history stays readable.
func toDomain(dto OrderDTO, menuNames map[string]string) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoney(itemDTO.PriceAtOrder)
		if priceErr != nil {
			return nil, priceErr
		}

		name := menuNames[itemDTO.MenuItemID]
		if name == "" {
			name = itemDTO.MenuItemID
		}

		item, itemErr := order.NewItem(itemDTO.MenuItemID, name, itemDTO.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		items,
		total,
		order.Status(dto.Status),
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}
