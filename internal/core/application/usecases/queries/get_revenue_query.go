package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetRevenueQueryIsNotConstructed = errors.New(
	"GetRevenueQuery must be created via NewGetRevenueQuery constructor",
)

// GetRevenueQuery computes a bucketed revenue series for the dashboard
// chart. The granularity arrives as its wire string; empty defaults to
// daily.
type GetRevenueQuery struct { //nolint:recvcheck //using for validation
	granularity  services.Granularity
	restaurantID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRevenueQuery creates a revenue query from raw parameters.
func NewGetRevenueQuery(granularity, restaurantID string) (GetRevenueQuery, error) {
	q := GetRevenueQuery{
		guard: guard.NewConstructorGuard(),
	}

	parsed, err := services.GranularityFromString(granularity)
	if err != nil {
		return GetRevenueQuery{}, err
	}
	q.granularity = parsed

	if restaurantID != "" {
		id, idErr := kernel.UUIDFromString(restaurantID)
		if idErr != nil {
			return GetRevenueQuery{}, idErr
		}
		q.restaurantID = &id
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetRevenueQueryIsNotConstructed)
}

// Granularity returns the requested bucketing scheme.
func (q GetRevenueQuery) Granularity() services.Granularity { return q.granularity }

// RestaurantID returns the restaurant scope, or nil.
func (q GetRevenueQuery) RestaurantID() *kernel.UUID { return q.restaurantID }

// RevenuePoint is one slot of the revenue series. The wire names are fixed:
// the dashboard chart reads "period" and "total" from each slot.
type RevenuePoint struct {
	Label   string `json:"period"`
	Tooltip string `json:"tooltip"`
	Revenue int64  `json:"total"`
}

// GetRevenueQueryResponse is the whole series plus the granularity it was
// computed with.
type GetRevenueQueryResponse struct {
	Granularity string         `json:"granularity"`
	Points      []RevenuePoint `json:"series"`
}
