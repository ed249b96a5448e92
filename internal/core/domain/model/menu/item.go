package menu

import (
	"errors"

	"restobot/internal/core/domain/model/kernel"
	"restobot/internal/pkg/errs"
	"restobot/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("menu Item must be created via NewItem constructor")

// Item is a value object describing one orderable entry of the menu: a
// stable external identifier, a display name, a category, a price and a
// free-text description.
//
// Items are immutable after catalog load. The order engine never mutates
// them; orders reference items by id and snapshot the price at order time.
type Item struct {
	id          string
	name        string
	category    string
	price       kernel.Money
	description string

	guard guard.ConstructorGuard
}

// NewItem creates a menu item with validation. The id, name and category are
// required; the price must be a constructed Money (non-negative by
// construction); the description may be empty.
func NewItem(id, name, category string, price kernel.Money, description string) (Item, error) {
	item := Item{
		price:       price,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setCategory(category),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the stable, externally visible item identifier.
func (i Item) ID() string {
	return i.id
}

// Name returns the display name.
func (i Item) Name() string {
	return i.name
}

// Category returns the menu category, e.g. "Main" or "Beverage".
func (i Item) Category() string {
	return i.category
}

// Price returns the current catalog price.
func (i Item) Price() kernel.Money {
	return i.price
}

// Description returns the free-text description.
func (i Item) Description() string {
	return i.description
}

func (i *Item) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("menu item id")
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	i.name = name
	return nil
}

func (i *Item) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("menu item category")
	}
	i.category = category
	return nil
}
