package commands

import (
	"context"
	"time"

	"restobot/internal/core/domain/model/order"
	"restobot/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Resolves the selected menu items against the catalog, snapshots their
// prices and persists a new order in Pending status.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, catalog, time.Now)
//	selection, _ := NewItemSelection("1", 2)
//	cmd, _ := NewPlaceOrderCommand(kernel.NewUUID(), "Alice", []ItemSelection{selection})
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Printf("order %s total %s", placed.ID(), placed.Total())
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.MenuCatalog
	now        func() time.Time
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and a MenuCatalog
// for price resolution. A nil clock defaults to time.Now.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory, catalog ports.MenuCatalog, now func() time.Time,
) PlaceOrderCommandHandler {
	if now == nil {
		now = time.Now
	}
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		now:        now,
	}
}

// Handle processes the order placement command.
// Every selected item must exist in the catalog; otherwise the order is not
// created at all. Returns the placed aggregate on success.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items, err := resolveSelections(ctx, h.catalog, cmd.Selections())
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerName(), items, h.now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
