package commands

import (
	"errors"
	"fmt"

	"restobot/internal/pkg/errs"
	"restobot/internal/pkg/guard"
)

var ErrItemSelectionIsNotConstructed = errors.New(
	"ItemSelection must be created via NewItemSelection constructor",
)

// ItemSelection is one requested order line: a menu item identifier and how
// many units of it the customer wants. Place and modify commands carry a
// slice of selections; the handlers resolve them against the menu catalog to
// snapshot names and prices.
type ItemSelection struct { //nolint:recvcheck //using for validation
	menuItemID string
	quantity   int

	guard guard.ConstructorGuard
}

// NewItemSelection creates a selection of the given menu item and quantity.
// The identifier must be non-empty and the quantity positive.
func NewItemSelection(menuItemID string, quantity int) (ItemSelection, error) {
	selection := ItemSelection{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		selection.setMenuItemID(menuItemID),
		selection.setQuantity(quantity),
	); err != nil {
		return ItemSelection{}, err
	}

	return selection, nil
}

// Validate ensures the selection was created through the constructor.
func (s ItemSelection) Validate() error {
	return s.guard.Validate(ErrItemSelectionIsNotConstructed)
}

// MenuItemID returns the identifier of the selected menu item.
func (s ItemSelection) MenuItemID() string {
	return s.menuItemID
}

// Quantity returns how many units were requested.
func (s ItemSelection) Quantity() int {
	return s.quantity
}

func (s *ItemSelection) setMenuItemID(menuItemID string) error {
	if menuItemID == "" {
		return errs.NewValueIsRequiredError("menu item id")
	}

	s.menuItemID = menuItemID
	return nil
}

func (s *ItemSelection) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not a positive integer", quantity))
	}

	s.quantity = quantity
	return nil
}

// validateSelections checks that a command carries at least one properly
// constructed selection.
func validateSelections(selections []ItemSelection) error {
	if len(selections) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	for _, selection := range selections {
		if err := selection.Validate(); err != nil {
			return err
		}
	}
	return nil
}
