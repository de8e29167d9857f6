package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/ports"
)

// TrackLocationCommandHandler appends a position sample to the user's trail.
type TrackLocationCommandHandler struct {
	tracker ports.LocationTracker
	now     func() time.Time
}

// NewTrackLocationCommandHandler creates a handler for location samples.
func NewTrackLocationCommandHandler(tracker ports.LocationTracker) TrackLocationCommandHandler {
	return TrackLocationCommandHandler{
		tracker: tracker,
		now:     time.Now,
	}
}

// Handle stamps the sample with the current time and records it.
func (h TrackLocationCommandHandler) Handle(ctx context.Context, cmd TrackLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.tracker.Append(ctx, ports.LocationPoint{
		UserID:    cmd.UserID(),
		Lat:       cmd.Lat(),
		Lng:       cmd.Lng(),
		Timestamp: h.now().UnixMilli(),
	})
}
