package commands

import (
	"context"
	"time"

	"restobot/internal/core/domain/model/order"
	"restobot/internal/core/ports"
)

// ModifyOrderCommandHandler handles the business logic for order modification.
// Loads the order under a row lock, resolves the replacement items against the
// catalog at current prices and swaps them in, moving the order to Modified.
type ModifyOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.MenuCatalog
	now        func() time.Time
}

// NewModifyOrderCommandHandler creates a handler for order modification.
// Requires an OrderUoWFactory for transactional persistence and a MenuCatalog
// for price resolution. A nil clock defaults to time.Now.
func NewModifyOrderCommandHandler(
	uowFactory OrderUoWFactory, catalog ports.MenuCatalog, now func() time.Time,
) ModifyOrderCommandHandler {
	if now == nil {
		now = time.Now
	}
	return ModifyOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		now:        now,
	}
}

// Handle processes the order modification command.
// The order row is locked for the duration of the transaction so concurrent
// mutations of the same order serialize. Replaced items are re-priced at the
// catalog's current prices; an order past modification yields an
// InvalidTransitionError and nothing is written. Returns the updated
// aggregate on success.
func (h *ModifyOrderCommandHandler) Handle(ctx context.Context, cmd ModifyOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items, err := resolveSelections(ctx, h.catalog, cmd.Selections())
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ReplaceItems(items, h.now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
