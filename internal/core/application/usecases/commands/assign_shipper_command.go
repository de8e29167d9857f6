package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrAssignShipperCommandIsNotConstructed = errors.New(
	"AssignShipperCommand must be created via NewAssignShipperCommand constructor",
)

// AssignShipperCommand hands an accepted order over to a shipper. This is
// the only path into the PickedUp status.
type AssignShipperCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	shipperID   kernel.UUID
	shipperName string

	guard guard.ConstructorGuard
}

// NewAssignShipperCommand creates a shipper assignment command.
func NewAssignShipperCommand(orderNumber string, shipperID kernel.UUID, shipperName string) (AssignShipperCommand, error) {
	cmd := AssignShipperCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setShipperID(shipperID),
		cmd.setShipperName(shipperName),
	); err != nil {
		return AssignShipperCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignShipperCommand) Validate() error {
	return c.guard.Validate(ErrAssignShipperCommandIsNotConstructed)
}

// OrderNumber returns the business order number.
func (c AssignShipperCommand) OrderNumber() string { return c.orderNumber }

// ShipperID returns the shipper identifier.
func (c AssignShipperCommand) ShipperID() kernel.UUID { return c.shipperID }

// ShipperName returns the shipper display name.
func (c AssignShipperCommand) ShipperName() string { return c.shipperName }

func (c *AssignShipperCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *AssignShipperCommand) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}
	c.shipperID = shipperID
	return nil
}

func (c *AssignShipperCommand) setShipperName(shipperName string) error {
	if shipperName == "" {
		return errs.NewValueIsRequiredError("shipperName")
	}
	c.shipperName = shipperName
	return nil
}
