// Package notification models the persisted, human-readable records emitted
// when an order changes status. Notifications are append-only: they are
// created by the transition side effect, listed for the dashboard feed, and
// deleted by explicit clear operations, but never updated.
package notification

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned when a Notification was not
// created through NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification or RestoreNotification")

// Notification records a single order status change for feed display.
// The order number is carried as a plain string: it is informational, not an
// enforced foreign key.
type Notification struct {
	id          kernel.UUID
	orderNumber string
	status      order.Status
	message     string
	read        bool
	createdAt   time.Time

	isConstructed bool
}

// NewNotification creates a notification for a status the order just
// entered, rendering the status-specific message.
func NewNotification(id kernel.UUID, orderNumber string, status order.Status) (*Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}

	return &Notification{
		id:            id,
		orderNumber:   orderNumber,
		status:        status,
		message:       renderMessage(orderNumber, status),
		createdAt:     time.Now(),
		isConstructed: true,
	}, nil
}

// RestoreNotification rebuilds a notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	orderNumber string,
	status order.Status,
	message string,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Notification{
		id:            id,
		orderNumber:   orderNumber,
		status:        status,
		message:       message,
		read:          read,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Notification was properly constructed.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the storage identifier.
func (n *Notification) ID() kernel.UUID { return n.id }

// OrderNumber returns the business order number the notification refers to.
func (n *Notification) OrderNumber() string { return n.orderNumber }

// Status returns the status value that triggered the notification.
func (n *Notification) Status() order.Status { return n.status }

// Message returns the rendered feed message.
func (n *Notification) Message() string { return n.message }

// Read reports whether the notification was marked as seen.
func (n *Notification) Read() bool { return n.read }

// CreatedAt returns the creation timestamp.
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// renderMessage maps a status to its feed template. Unrecognized values get
// a generic fallback so a notification is still produced.
func renderMessage(orderNumber string, status order.Status) string {
	switch status {
	case order.Pending:
		return fmt.Sprintf("Order %s has been placed and is waiting for acceptance", orderNumber)
	case order.Assigned:
		return fmt.Sprintf("Order %s was accepted, the restaurant is preparing it", orderNumber)
	case order.PickedUp:
		return fmt.Sprintf("Shipper picked up order %s at the restaurant", orderNumber)
	case order.Delivering:
		return fmt.Sprintf("Order %s is prepared and handed over to the shipper", orderNumber)
	case order.Delivered:
		return fmt.Sprintf("Order %s was delivered successfully", orderNumber)
	case order.Cancelled:
		return fmt.Sprintf("Order %s was cancelled", orderNumber)
	default:
		return fmt.Sprintf("Order %s moved to status %s", orderNumber, status)
	}
}
