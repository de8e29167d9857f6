package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetCountersQueryIsNotConstructed = errors.New(
	"GetCountersQuery must be created via NewGetCountersQuery constructor",
)

// GetCountersQuery computes the dashboard counters: how many orders are
// currently running and how many are waiting for acceptance. Which statuses
// count as "running" is a dashboard policy; the default counts ASSIGNED
// only, deliberately excluding PICKED_UP and DELIVERING.
type GetCountersQuery struct { //nolint:recvcheck //using for validation
	restaurantID    *kernel.UUID
	runningStatuses []order.Status

	guard guard.ConstructorGuard
}

// NewGetCountersQuery creates a counters query scoped to a restaurant when
// restaurantID is non-empty.
func NewGetCountersQuery(restaurantID string) (GetCountersQuery, error) {
	q := GetCountersQuery{
		runningStatuses: []order.Status{order.Assigned},
		guard:           guard.NewConstructorGuard(),
	}

	if restaurantID != "" {
		parsed, err := kernel.UUIDFromString(restaurantID)
		if err != nil {
			return GetCountersQuery{}, err
		}
		q.restaurantID = &parsed
	}

	return q, nil
}

// WithRunningStatuses overrides which statuses count as running.
func (q GetCountersQuery) WithRunningStatuses(statuses ...order.Status) GetCountersQuery {
	q.runningStatuses = statuses
	return q
}

// Validate ensures the query was created through the constructor.
func (q GetCountersQuery) Validate() error {
	return q.guard.Validate(ErrGetCountersQueryIsNotConstructed)
}

// RestaurantID returns the restaurant scope, or nil.
func (q GetCountersQuery) RestaurantID() *kernel.UUID { return q.restaurantID }

// RunningStatuses returns the statuses counted as running.
func (q GetCountersQuery) RunningStatuses() []order.Status { return q.runningStatuses }

// GetCountersQueryResponse carries the dashboard counters.
type GetCountersQueryResponse struct {
	Running  int64 `json:"running"`
	Requests int64 `json:"requests"`
}
