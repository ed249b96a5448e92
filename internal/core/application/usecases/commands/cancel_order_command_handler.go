package commands

import (
	"context"
	"time"

	"restobot/internal/core/domain/model/order"
)

// CancelOrderCommandHandler handles the business logic for order cancellation.
// Loads the order under a row lock and retires it to the terminal Cancelled
// status; the row itself is kept for history.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires an OrderUoWFactory for transactional persistence. A nil clock
// defaults to time.Now.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) CancelOrderCommandHandler {
	if now == nil {
		now = time.Now
	}
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the order cancellation command.
// An order past Confirmed yields an InvalidTransitionError and nothing is
// written. Returns the cancelled aggregate on success.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	if err = aggregate.Cancel(h.now()); err != nil {
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
