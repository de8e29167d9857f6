package order

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// DefaultDeliveryFee is applied when a checkout request carries no delivery fee.
const DefaultDeliveryFee = 15000

// DefaultEstimatedDeliveryTime is the fallback delivery window shown to the
// customer when the checkout request does not provide one.
const DefaultEstimatedDeliveryTime = "20-30 min"

const (
	unknownRestaurantName    = "Unknown Restaurant"
	unknownRestaurantAddress = "Unknown Address"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrItemsAreRequired is returned when an order is created without line items.
	ErrItemsAreRequired = errors.New("order must contain at least one item")
)

// Customer identifies the buyer on an order. The phone number is optional.
type Customer struct {
	id    string
	name  string
	phone string
}

// NewCustomer creates a validated customer reference.
func NewCustomer(id, name, phone string) (Customer, error) {
	if id == "" {
		return Customer{}, errs.NewValueIsRequiredError("userId")
	}
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("userName")
	}
	return Customer{id: id, name: name, phone: phone}, nil
}

// ID returns the customer identifier.
func (c Customer) ID() string { return c.id }

// Name returns the customer display name.
func (c Customer) Name() string { return c.name }

// Phone returns the customer phone number, possibly empty.
func (c Customer) Phone() string { return c.phone }

// Pricing captures the money breakdown of an order at checkout time.
// A zero delivery fee is replaced by DefaultDeliveryFee before validation,
// and the total must equal subtotal plus fees. The equality is checked only
// at creation; restored orders are trusted as persisted.
type Pricing struct {
	subtotal    int64
	deliveryFee int64
	serviceFee  int64
	total       int64
}

// NewPricing creates a validated pricing breakdown.
func NewPricing(subtotal, deliveryFee, serviceFee, total int64) (Pricing, error) {
	if deliveryFee == 0 {
		deliveryFee = DefaultDeliveryFee
	}
	if subtotal < 0 || deliveryFee < 0 || serviceFee < 0 {
		return Pricing{}, errs.NewValueIsInvalidError("pricing must not be negative")
	}
	if total != subtotal+deliveryFee+serviceFee {
		return Pricing{}, errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("%d does not equal subtotal %d + fees %d", total, subtotal, deliveryFee+serviceFee),
		)
	}
	return Pricing{
		subtotal:    subtotal,
		deliveryFee: deliveryFee,
		serviceFee:  serviceFee,
		total:       total,
	}, nil
}

// RestorePricing rebuilds a pricing breakdown from persistence without
// re-validating the total.
func RestorePricing(subtotal, deliveryFee, serviceFee, total int64) Pricing {
	return Pricing{
		subtotal:    subtotal,
		deliveryFee: deliveryFee,
		serviceFee:  serviceFee,
		total:       total,
	}
}

// Subtotal returns the sum of line totals.
func (p Pricing) Subtotal() int64 { return p.subtotal }

// DeliveryFee returns the delivery fee.
func (p Pricing) DeliveryFee() int64 { return p.deliveryFee }

// ServiceFee returns the service fee.
func (p Pricing) ServiceFee() int64 { return p.serviceFee }

// Total returns the grand total.
func (p Pricing) Total() int64 { return p.total }

// Order is the aggregate root for a placed purchase. It owns the lifecycle
// status and is the only place transitions are decided: repositories persist
// whatever the aggregate produced, and the transition engine's edge table
// (see Status) guards every change.
//
// Invariants:
//   - the business order number is set once at creation and never changes
//   - status only moves along the lifecycle graph, except through Cancel,
//     which is deliberately unconditional (matching the cancel endpoint's
//     historical behavior)
//   - shipper fields are set only by AssignShipper and cleared by Cancel
//   - restaurant name/address are a creation-time snapshot, not a live
//     reference; the restaurant id is materialized alongside for analytics
//     scoping
type Order struct {
	id     kernel.UUID
	number string

	customer Customer
	items    []Item
	pricing  Pricing

	deliveryAddress       string
	note                  string
	estimatedDeliveryTime string

	status      Status
	shipperID   *kernel.UUID
	shipperName string

	restaurantID      *kernel.UUID
	restaurantName    string
	restaurantAddress string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates an order in Pending status. The restaurant snapshot
// starts with placeholder values; callers enrich it with AttachRestaurant
// when the lookup succeeds.
func NewOrder(
	id kernel.UUID,
	number string,
	customer Customer,
	items []Item,
	pricing Pricing,
	deliveryAddress string,
	note string,
	estimatedDeliveryTime string,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}
	if customer.id == "" {
		return nil, errs.NewValueIsRequiredError("customer")
	}
	if len(items) == 0 {
		return nil, ErrItemsAreRequired
	}
	if deliveryAddress == "" {
		return nil, errs.NewValueIsRequiredError("deliveryAddress")
	}
	if estimatedDeliveryTime == "" {
		estimatedDeliveryTime = DefaultEstimatedDeliveryTime
	}

	now := time.Now()
	return &Order{
		id:                    id,
		number:                number,
		customer:              customer,
		items:                 items,
		pricing:               pricing,
		deliveryAddress:       deliveryAddress,
		note:                  note,
		estimatedDeliveryTime: estimatedDeliveryTime,
		status:                Pending,
		restaurantName:        unknownRestaurantName,
		restaurantAddress:     unknownRestaurantAddress,
		createdAt:             now,
		updatedAt:             now,
		isConstructed:         true,
	}, nil
}

// RestoreOrder rebuilds an order from persistence. The status must be a
// defined state; beyond that the stored data is trusted.
func RestoreOrder(
	id kernel.UUID,
	number string,
	customer Customer,
	items []Item,
	pricing Pricing,
	deliveryAddress string,
	note string,
	estimatedDeliveryTime string,
	status Status,
	shipperID *kernel.UUID,
	shipperName string,
	restaurantID *kernel.UUID,
	restaurantName string,
	restaurantAddress string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:                    id,
		number:                number,
		customer:              customer,
		items:                 items,
		pricing:               pricing,
		deliveryAddress:       deliveryAddress,
		note:                  note,
		estimatedDeliveryTime: estimatedDeliveryTime,
		status:                status,
		shipperID:             shipperID,
		shipperName:           shipperName,
		restaurantID:          restaurantID,
		restaurantName:        restaurantName,
		restaurantAddress:     restaurantAddress,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
		isConstructed:         true,
	}, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the storage identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the business-facing order number.
func (o *Order) Number() string { return o.number }

// Customer returns the buyer reference.
func (o *Order) Customer() Customer { return o.customer }

// Items returns the ordered line items.
func (o *Order) Items() []Item { return o.items }

// Pricing returns the money breakdown.
func (o *Order) Pricing() Pricing { return o.pricing }

// DeliveryAddress returns the free-text delivery address.
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// Note returns the optional customer note.
func (o *Order) Note() string { return o.note }

// EstimatedDeliveryTime returns the delivery window shown to the customer.
func (o *Order) EstimatedDeliveryTime() string { return o.estimatedDeliveryTime }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Shipper returns the assigned shipper's identifier, or nil when unassigned.
func (o *Order) Shipper() *kernel.UUID { return o.shipperID }

// ShipperName returns the assigned shipper's display name.
func (o *Order) ShipperName() string { return o.shipperName }

// Restaurant returns the materialized restaurant identifier, or nil when the
// creation-time lookup failed.
func (o *Order) Restaurant() *kernel.UUID { return o.restaurantID }

// RestaurantName returns the captured restaurant name.
func (o *Order) RestaurantName() string { return o.restaurantName }

// RestaurantAddress returns the captured restaurant address.
func (o *Order) RestaurantAddress() string { return o.restaurantAddress }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// AttachRestaurant records the restaurant snapshot resolved from the first
// line item's food at creation time.
func (o *Order) AttachRestaurant(id kernel.UUID, name, address string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = &id
	if name != "" {
		o.restaurantName = name
	}
	if address != "" {
		o.restaurantAddress = address
	}
	return nil
}

// ChangeStatus applies a generic transition request against the lifecycle
// graph. On failure the order is left unmodified. PickedUp cannot be reached
// through this method; use AssignShipper.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.ChangeTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now()
	return nil
}

// AssignShipper records the shipper and moves the order to PickedUp.
// Legal only while the order is Assigned.
func (o *Order) AssignShipper(shipperID kernel.UUID, shipperName string) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}
	if shipperName == "" {
		return errs.NewValueIsRequiredError("shipperName")
	}

	newStatus, err := o.status.Pickup()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.shipperID = &shipperID
	o.shipperName = shipperName
	o.updatedAt = time.Now()
	return nil
}

// Cancel moves the order to Cancelled and clears the shipper assignment.
// It is unconditional: the cancel endpoint has always allowed cancelling
// regardless of the current status, unlike the generic Cancelled edge.
func (o *Order) Cancel() {
	o.status = Cancelled
	o.shipperID = nil
	o.shipperName = ""
	o.updatedAt = time.Now()
}
