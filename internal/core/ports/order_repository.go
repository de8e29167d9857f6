// Package ports defines the persistence interfaces implemented by the
// outbound adapters. Command and query handlers depend on these interfaces,
// never on a concrete store.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderFilter narrows an order listing. Nil/empty fields are ignored.
type OrderFilter struct {
	Status       *order.Status
	ShipperID    *kernel.UUID
	UserID       string
	RestaurantID *kernel.UUID
}

// OrderRepository persists order aggregates.
type OrderRepository interface {
	// Add saves a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists an order conditionally: the row is written only while
	// its stored status still equals expectedStatus. A lost race returns an
	// error unwrapping errs.ErrObjectAlreadyModified, so two concurrent
	// transitions cannot both pass their precondition and silently
	// overwrite each other.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// GetByNumber retrieves an order by its business order number.
	// Returns an error unwrapping errs.ErrObjectNotFound when absent.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// GetAll retrieves orders matching the filter, newest first.
	GetAll(ctx context.Context, filter OrderFilter) ([]*order.Order, error)
}
