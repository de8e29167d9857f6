package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels an order. Cancellation is always
// accepted by the aggregate, so the conditional write here only guards
// against a concurrent transition racing the cancel.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

// NewCancelOrderCommandHandler creates a handler for cancellations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the order, cancels it, and persists the result.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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
	existing.Cancel()

	if err = orders.Update(ctx, existing, previous); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Emit(ctx, existing.Number(), order.Cancelled)
	return existing, nil
}
