package commands

import (
	"errors"

	"restobot/internal/core/domain/model/kernel"
	"restobot/internal/pkg/guard"
)

var ErrModifyOrderCommandIsNotConstructed = errors.New(
	"ModifyOrderCommand must be created via NewModifyOrderCommand constructor",
)

// ModifyOrderCommand represents a request to replace an order's line items
// wholesale with a new selection. Modification is only permitted while the
// order has not been confirmed or started; the aggregate enforces that.
type ModifyOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	selections []ItemSelection

	guard guard.ConstructorGuard
}

// NewModifyOrderCommand creates a command to replace an order's items.
// Validates that the order ID is valid and at least one properly constructed
// item selection is present.
func NewModifyOrderCommand(orderID kernel.UUID, selections []ItemSelection) (ModifyOrderCommand, error) {
	command := ModifyOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setSelections(selections),
	); err != nil {
		return ModifyOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrModifyOrderCommandIsNotConstructed if validation fails.
func (c ModifyOrderCommand) Validate() error {
	return c.guard.Validate(ErrModifyOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to modify.
func (c ModifyOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Selections returns the replacement menu items with quantities.
func (c ModifyOrderCommand) Selections() []ItemSelection {
	return c.selections
}

func (c *ModifyOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ModifyOrderCommand) setSelections(selections []ItemSelection) error {
	if err := validateSelections(selections); err != nil {
		return err
	}

	c.selections = selections
	return nil
}
