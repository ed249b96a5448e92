package queries

import (
	"errors"
	"strings"
	"time"

	"restobot/internal/core/domain/model/kernel"
	"restobot/internal/pkg/errs"
	"restobot/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves all orders a customer has placed, newest
// first. The customer name is matched case-insensitively; cancelled and
// delivered orders are included, since the history is the audit trail.
//
// Example:
//
//	query, err := NewGetOrderHistoryQuery("Alice")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderHistoryQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetOrderHistoryQuery struct {
	customerName string

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for the given customer's orders.
// The name must not be blank.
func NewGetOrderHistoryQuery(customerName string) (GetOrderHistoryQuery, error) {
	if strings.TrimSpace(customerName) == "" {
		return GetOrderHistoryQuery{}, errs.NewValueIsRequiredError("customer name")
	}

	return GetOrderHistoryQuery{
		customerName: strings.TrimSpace(customerName),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderHistoryQueryIsNotConstructed if validation fails.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// CustomerName returns the customer whose orders are requested.
func (q GetOrderHistoryQuery) CustomerName() string {
	return q.customerName
}

// OrderItemResponse is one line of a historical order, with the item name
// as stored in the menu and the price frozen at order time.
type OrderItemResponse struct {
	MenuItemID   string
	Name         string
	Quantity     int
	PriceAtOrder kernel.Money
	LineTotal    kernel.Money
}

// OrderHistoryResponse is one order of the customer's history.
type OrderHistoryResponse struct {
	ID           kernel.UUID
	CustomerName string
	Items        []OrderItemResponse
	Total        kernel.Money
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
