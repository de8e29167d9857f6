package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
)

// Food is a read-only projection of a menu item. The order core never
// mutates the catalog; it only joins foods for order enrichment and
// food-level analytics.
type Food struct {
	ID           kernel.UUID
	Name         string
	Image        string
	Price        int64
	Category     string
	RestaurantID *kernel.UUID
}

// Restaurant is a read-only projection of a restaurant.
type Restaurant struct {
	ID      kernel.UUID
	Name    string
	Address string
}

// FoodRepository reads the menu catalog.
type FoodRepository interface {
	// Get retrieves a food by id. Returns an error unwrapping
	// errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (Food, error)
}

// RestaurantRepository reads restaurant reference data.
type RestaurantRepository interface {
	// Get retrieves a restaurant by id. Returns an error unwrapping
	// errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (Restaurant, error)
}
