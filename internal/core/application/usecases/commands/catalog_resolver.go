package commands

import (
	"context"

	"restobot/internal/core/domain/model/order"
	"restobot/internal/core/ports"
)

// resolveSelections turns item selections into order line items by looking
// each menu item up in the catalog, freezing its current price and name into
// the line. An unknown identifier fails the whole resolution so an order is
// never placed with a partial item list.
func resolveSelections(
	ctx context.Context, catalog ports.MenuCatalog, selections []ItemSelection,
) ([]order.Item, error) {
	items := make([]order.Item, 0, len(selections))
	for _, selection := range selections {
		menuItem, err := catalog.Lookup(ctx, selection.MenuItemID())
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(menuItem.ID(), menuItem.Name(), selection.Quantity(), menuItem.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
