package ports

import (
	"context"

	"restobot/internal/core/domain/model/menu"
)

// MenuCatalog defines the read contract for the restaurant menu. Command
// handlers resolve ordered item identifiers through it to snapshot prices,
// and the browse query lists its categories and items.
type MenuCatalog interface {
	// Lookup retrieves a menu item by its identifier.
	// Returns an ObjectNotFoundError when no such item exists.
	Lookup(ctx context.Context, itemID string) (menu.Item, error)

	// Categories returns the distinct menu categories in alphabetical order.
	Categories(ctx context.Context) ([]string, error)

	// ItemsInCategory returns all items of the given category, matched
	// case-insensitively. An unknown category yields an empty slice, not an
	// error, so callers can suggest alternatives.
	ItemsInCategory(ctx context.Context, category string) ([]menu.Item, error)
}
