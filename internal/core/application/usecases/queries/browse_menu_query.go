// Package queries contains read-only operations over the order store and
// menu. Implements the Query side of the CQRS architecture: handlers read
// the database directly with raw SQL and return plain response structs,
// bypassing the aggregates.
package queries

import (
	"errors"
	"strings"

	"restobot/internal/core/domain/model/kernel"
	"restobot/internal/pkg/guard"
)

var ErrBrowseMenuQueryIsNotConstructed = errors.New(
	"BrowseMenuQuery must be created via NewBrowseMenuQuery constructor",
)

// BrowseMenuQuery retrieves the menu categories, or the items of one
// category when one is named. The category is optional: without it the
// query lists categories only.
//
// Example:
//
//	query := NewBrowseMenuQuery("Main")
//	handler := NewBrowseMenuQueryHandler(db)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to browse menu: %w", err)
//	}
//	for _, item := range response.Items {
//	    fmt.Printf("%s: $%s\n", item.Name, item.Price)
//	}
type BrowseMenuQuery struct {
	category string

	guard guard.ConstructorGuard
}

// NewBrowseMenuQuery creates a query for the given category. An empty or
// blank category means "list the categories".
func NewBrowseMenuQuery(category string) BrowseMenuQuery {
	return BrowseMenuQuery{
		category: strings.TrimSpace(category),
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrBrowseMenuQueryIsNotConstructed if validation fails.
func (q BrowseMenuQuery) Validate() error {
	return q.guard.Validate(ErrBrowseMenuQueryIsNotConstructed)
}

// Category returns the requested category, empty when browsing categories.
func (q BrowseMenuQuery) Category() string {
	return q.category
}

// HasCategory reports whether a specific category was requested.
func (q BrowseMenuQuery) HasCategory() bool {
	return q.category != ""
}

// MenuItemResponse is one menu item as presented to customers.
type MenuItemResponse struct {
	ID          string
	Name        string
	Category    string
	Price       kernel.Money
	Description string
}

// BrowseMenuQueryResponse carries the browse result. Categories is filled
// when no category was requested, and also when the requested category
// matched nothing so callers can suggest alternatives. Items is filled for
// a known category.
type BrowseMenuQueryResponse struct {
	Categories []string
	Items      []MenuItemResponse
}
