package commands

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderItem carries one checkout line as received from the API.
// FoodID may be empty for lines without a catalog reference.
type CreateOrderItem struct {
	FoodID   string
	Name     string
	Image    string
	Size     string
	Quantity int
	Price    int64
}

// CreateOrderCommand represents a checkout request. The handler enriches it
// with the restaurant snapshot and produces a Pending order.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID                string
	userName              string
	userPhone             string
	items                 []CreateOrderItem
	subtotal              int64
	deliveryFee           int64
	serviceFee            int64
	total                 int64
	deliveryAddress       string
	note                  string
	estimatedDeliveryTime string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a checkout command. It validates the fields
// the API contract requires (customer id and name, at least one item, a
// positive total, a delivery address); deeper money and item validation is
// done by the domain constructors in the handler.
func NewCreateOrderCommand(
	userID, userName, userPhone string,
	items []CreateOrderItem,
	subtotal, deliveryFee, serviceFee, total int64,
	deliveryAddress, note, estimatedDeliveryTime string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		userPhone:             userPhone,
		items:                 items,
		subtotal:              subtotal,
		deliveryFee:           deliveryFee,
		serviceFee:            serviceFee,
		total:                 total,
		note:                  note,
		estimatedDeliveryTime: estimatedDeliveryTime,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setUserName(userName),
		cmd.setItems(items),
		cmd.setTotal(total),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the customer identifier.
func (c CreateOrderCommand) UserID() string { return c.userID }

// UserName returns the customer display name.
func (c CreateOrderCommand) UserName() string { return c.userName }

// UserPhone returns the optional customer phone number.
func (c CreateOrderCommand) UserPhone() string { return c.userPhone }

// Items returns the checkout lines.
func (c CreateOrderCommand) Items() []CreateOrderItem { return c.items }

// Subtotal returns the sum of line totals as submitted.
func (c CreateOrderCommand) Subtotal() int64 { return c.subtotal }

// DeliveryFee returns the submitted delivery fee (0 means "use the default").
func (c CreateOrderCommand) DeliveryFee() int64 { return c.deliveryFee }

// ServiceFee returns the submitted service fee.
func (c CreateOrderCommand) ServiceFee() int64 { return c.serviceFee }

// Total returns the submitted grand total.
func (c CreateOrderCommand) Total() int64 { return c.total }

// DeliveryAddress returns the free-text delivery address.
func (c CreateOrderCommand) DeliveryAddress() string { return c.deliveryAddress }

// Note returns the optional customer note.
func (c CreateOrderCommand) Note() string { return c.note }

// EstimatedDeliveryTime returns the submitted delivery window, possibly empty.
func (c CreateOrderCommand) EstimatedDeliveryTime() string { return c.estimatedDeliveryTime }

func (c *CreateOrderCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setUserName(userName string) error {
	if userName == "" {
		return errs.NewValueIsRequiredError("userName")
	}
	c.userName = userName
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	return nil
}

func (c *CreateOrderCommand) setTotal(total int64) error {
	if total <= 0 {
		return errs.NewValueIsRequiredError("total")
	}
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	c.deliveryAddress = deliveryAddress
	return nil
}
