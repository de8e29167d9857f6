package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// AssignShipperCommandHandler moves an accepted order to PickedUp with the
// shipper attached. Like the generic transition, the write is conditional on
// the status the order was read with.
type AssignShipperCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

// NewAssignShipperCommandHandler creates a handler for shipper assignments.
func NewAssignShipperCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) AssignShipperCommandHandler {
	return AssignShipperCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the order, assigns the shipper through the aggregate, and
// persists with a compare-and-swap on the previous status.
func (h AssignShipperCommandHandler) Handle(ctx context.Context, cmd AssignShipperCommand) (*order.Order, error) {
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
	if err = existing.AssignShipper(cmd.ShipperID(), cmd.ShipperName()); err != nil {
		return nil, err
	}

	if err = orders.Update(ctx, existing, previous); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Emit(ctx, existing.Number(), order.PickedUp)
	return existing, nil
}
