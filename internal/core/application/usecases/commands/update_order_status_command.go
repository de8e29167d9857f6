package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand requests a generic lifecycle transition for an
// order. The target must be a defined status; whether the transition is
// legal from the order's current status is decided by the aggregate.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	target      order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a transition command.
func NewUpdateOrderStatusCommand(orderNumber string, target order.Status) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setTarget(target),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderNumber returns the business order number.
func (c UpdateOrderStatusCommand) OrderNumber() string { return c.orderNumber }

// Target returns the requested status.
func (c UpdateOrderStatusCommand) Target() order.Status { return c.target }

func (c *UpdateOrderStatusCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *UpdateOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
