package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler applies a generic lifecycle transition.
// The persist step is conditional on the status the order was read with, so
// two concurrent transitions cannot both win: the loser's write is rejected
// by the repository instead of silently overwriting.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the order, applies the transition through the aggregate's
// edge table, persists with a compare-and-swap on the previous status, and
// emits the notification after the commit.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
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

	orders := uow.OrderRepository()

	existing, err := orders.GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return nil, err
	}

	previous := existing.Status()
	if err = existing.ChangeStatus(cmd.Target()); err != nil {
		return nil, err
	}

	if err = orders.Update(ctx, existing, previous); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Emit(ctx, existing.Number(), cmd.Target())
	return existing, nil
}
