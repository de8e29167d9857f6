package queries

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// GetLatestLocationQueryHandler reads the newest position sample from the
// ephemeral location store.
type GetLatestLocationQueryHandler struct {
	tracker ports.LocationTracker
}

// NewGetLatestLocationQueryHandler creates a handler for latest-location queries.
func NewGetLatestLocationQueryHandler(tracker ports.LocationTracker) GetLatestLocationQueryHandler {
	return GetLatestLocationQueryHandler{tracker: tracker}
}

// Handle returns the user's newest sample. Returns an error unwrapping
// errs.ErrObjectNotFound when the user has no samples.
func (h GetLatestLocationQueryHandler) Handle(
	ctx context.Context,
	query GetLatestLocationQuery,
) (ports.LocationPoint, error) {
	if err := query.Validate(); err != nil {
		return ports.LocationPoint{}, err
	}

	return h.tracker.Latest(ctx, query.UserID())
}
