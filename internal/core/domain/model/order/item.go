package order

import (
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// Item is a value object describing one ordered line. Name, image, size and
// unit price are captured as a snapshot at ordering time so later menu edits
// do not rewrite history. The food reference is optional: legacy orders may
// carry lines without one, and such lines are simply skipped by the
// food-level analytics.
type Item struct {
	foodID     *kernel.UUID
	name       string
	image      string
	size       string
	quantity   int
	price      int64
	totalPrice int64
}

// NewItem creates a validated line item. Quantity must be at least 1 and the
// unit price non-negative; the line total is always computed as
// quantity * price rather than trusted from the caller.
func NewItem(foodID *kernel.UUID, name, image, size string, quantity int, price int64) (Item, error) {
	if foodID != nil {
		if err := foodID.Validate(); err != nil {
			return Item{}, err
		}
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}
	if price < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%d is negative", price),
		)
	}

	return Item{
		foodID:     foodID,
		name:       name,
		image:      image,
		size:       size,
		quantity:   quantity,
		price:      price,
		totalPrice: int64(quantity) * price,
	}, nil
}

// RestoreItem rebuilds a line item from persistence, trusting the stored
// line total instead of recomputing it.
func RestoreItem(foodID *kernel.UUID, name, image, size string, quantity int, price, totalPrice int64) Item {
	return Item{
		foodID:     foodID,
		name:       name,
		image:      image,
		size:       size,
		quantity:   quantity,
		price:      price,
		totalPrice: totalPrice,
	}
}

// FoodID returns the referenced food identifier, or nil when the line has none.
func (i Item) FoodID() *kernel.UUID {
	return i.foodID
}

// Name returns the captured food name.
func (i Item) Name() string {
	return i.name
}

// Image returns the captured image reference.
func (i Item) Image() string {
	return i.image
}

// Size returns the captured size option.
func (i Item) Size() string {
	return i.size
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the captured unit price.
func (i Item) Price() int64 {
	return i.price
}

// TotalPrice returns the computed line total.
func (i Item) TotalPrice() int64 {
	return i.totalPrice
}
