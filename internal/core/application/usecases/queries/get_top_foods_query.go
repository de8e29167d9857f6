package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetTopFoodsQueryIsNotConstructed = errors.New(
	"GetTopFoodsQuery must be created via NewGetTopFoodsQuery constructor",
)

const (
	defaultTopFoodsLimit = 3
	maxTopFoodsLimit     = 10
)

// GetTopFoodsQuery ranks foods by total ordered quantity. The limit is
// clamped to [1, 10] with a default of 3 rather than rejected, so sloppy
// dashboard parameters still produce a chart.
type GetTopFoodsQuery struct { //nolint:recvcheck //using for validation
	limit        int
	restaurantID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTopFoodsQuery creates a ranking query. A non-positive limit falls
// back to the default.
func NewGetTopFoodsQuery(limit int, restaurantID string) (GetTopFoodsQuery, error) {
	if limit <= 0 {
		limit = defaultTopFoodsLimit
	}
	if limit > maxTopFoodsLimit {
		limit = maxTopFoodsLimit
	}

	q := GetTopFoodsQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}

	if restaurantID != "" {
		parsed, err := kernel.UUIDFromString(restaurantID)
		if err != nil {
			return GetTopFoodsQuery{}, err
		}
		q.restaurantID = &parsed
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTopFoodsQuery) Validate() error {
	return q.guard.Validate(ErrGetTopFoodsQueryIsNotConstructed)
}

// Limit returns the clamped result size.
func (q GetTopFoodsQuery) Limit() int { return q.limit }

// RestaurantID returns the restaurant scope, or nil.
func (q GetTopFoodsQuery) RestaurantID() *kernel.UUID { return q.restaurantID }

// TopFoodResponse is one ranked food with its display attributes. The
// restaurant reference is nil for catalog rows not tied to a restaurant.
type TopFoodResponse struct {
	FoodID       string  `json:"foodId"`
	Name         string  `json:"name"`
	Image        string  `json:"image,omitempty"`
	Price        int64   `json:"price"`
	Category     string  `json:"category,omitempty"`
	RestaurantID *string `json:"restaurantId,omitempty"`
	Quantity     int64   `json:"quantity"`
}
