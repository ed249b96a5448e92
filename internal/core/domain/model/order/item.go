package order

import (
	"errors"
	"fmt"

	"restobot/internal/core/domain/model/kernel"
	"restobot/internal/pkg/errs"
	"restobot/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("order Item must be created via NewItem constructor")

// Item is one line of an order: a menu item reference, a display name, a
// quantity and the price snapshot taken when the line was added.
//
// PriceAtOrder is fixed at insertion time and never recomputed from the live
// catalog, so historical orders are immune to later price changes. Items are
// exclusively owned by their Order and are replaced wholesale on modify.
type Item struct {
	menuItemID   string
	name         string
	quantity     int
	priceAtOrder kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates an order line with validation. The menu item id and name
// are required and the quantity must be a positive integer. The price is the
// catalog price at the moment the line is created.
func NewItem(menuItemID, name string, quantity int, priceAtOrder kernel.Money) (Item, error) {
	item := Item{
		priceAtOrder: priceAtOrder,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the referenced catalog item id.
func (i Item) MenuItemID() string {
	return i.menuItemID
}

// Name returns the menu item name captured when the line was added.
func (i Item) Name() string {
	return i.name
}

// Quantity returns how many units of the item were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// PriceAtOrder returns the per-unit price snapshot.
func (i Item) PriceAtOrder() kernel.Money {
	return i.priceAtOrder
}

// LineTotal returns quantity × price_at_order.
func (i Item) LineTotal() kernel.Money {
	return i.priceAtOrder.MulQuantity(i.quantity)
}

func (i *Item) setMenuItemID(menuItemID string) error {
	if menuItemID == "" {
		return errs.NewValueIsRequiredError("menu item id")
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not a positive integer", quantity))
	}
	i.quantity = quantity
	return nil
}
