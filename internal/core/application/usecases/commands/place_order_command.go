package commands

import (
	"errors"
	"strings"

	"restobot/internal/core/domain/model/kernel"
	"restobot/internal/pkg/errs"
	"restobot/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place a new restaurant order.
// Encapsulates the customer name and the selected menu items with quantities.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	selection, _ := NewItemSelection("3", 2)
//	cmd, err := NewPlaceOrderCommand(orderID, "Alice", []ItemSelection{selection})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, catalog, time.Now)
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerName string
	selections   []ItemSelection

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that the order ID is valid, the customer name is not blank and
// at least one properly constructed item selection is present.
func NewPlaceOrderCommand(
	orderID kernel.UUID, customerName string, selections []ItemSelection,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerName(customerName),
		command.setSelections(selections),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be stored under.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the name the order is placed under.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

// Selections returns the requested menu items with quantities.
func (c PlaceOrderCommand) Selections() []ItemSelection {
	return c.selections
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerName(customerName string) error {
	if strings.TrimSpace(customerName) == "" {
		return errs.NewValueIsRequiredError("customer name")
	}

	c.customerName = customerName
	return nil
}

func (c *PlaceOrderCommand) setSelections(selections []ItemSelection) error {
	if err := validateSelections(selections); err != nil {
		return err
	}

	c.selections = selections
	return nil
}
