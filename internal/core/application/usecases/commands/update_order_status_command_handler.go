package commands

import (
	"context"
	"time"

	"restobot/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler handles the business logic for advancing
// an order along its lifecycle. Loads the order under a row lock, lets the
// aggregate verify the transition and persists the result.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
// Requires an OrderUoWFactory for transactional persistence. A nil clock
// defaults to time.Now.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory, now func() time.Time,
) UpdateOrderStatusCommandHandler {
	if now == nil {
		now = time.Now
	}
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the status update command.
//
// A request for the order's current status surfaces order.ErrStatusUnchanged
// and writes nothing; an unreachable status yields an InvalidTransitionError
// carrying the statuses allowed next. Returns the updated aggregate on
// success.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
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

	if err = aggregate.TransitionTo(cmd.Target(), h.now()); err != nil {
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
