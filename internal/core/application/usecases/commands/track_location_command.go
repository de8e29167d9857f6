package commands

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrTrackLocationCommandIsNotConstructed = errors.New(
	"TrackLocationCommand must be created via NewTrackLocationCommand constructor",
)

// TrackLocationCommand records one position sample for a shipper or
// customer. Samples land in a bounded per-user trail.
type TrackLocationCommand struct { //nolint:recvcheck //using for validation
	userID string
	lat    float64
	lng    float64

	guard guard.ConstructorGuard
}

// NewTrackLocationCommand creates a location sample command.
func NewTrackLocationCommand(userID string, lat, lng float64) (TrackLocationCommand, error) {
	cmd := TrackLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setLat(lat),
		cmd.setLng(lng),
	); err != nil {
		return TrackLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TrackLocationCommand) Validate() error {
	return c.guard.Validate(ErrTrackLocationCommandIsNotConstructed)
}

// UserID returns the tracked user identifier.
func (c TrackLocationCommand) UserID() string { return c.userID }

// Lat returns the sample latitude.
func (c TrackLocationCommand) Lat() float64 { return c.lat }

// Lng returns the sample longitude.
func (c TrackLocationCommand) Lng() float64 { return c.lng }

func (c *TrackLocationCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	c.userID = userID
	return nil
}

func (c *TrackLocationCommand) setLat(lat float64) error {
	if lat < -90 || lat > 90 {
		return errs.NewValueIsOutOfRangeError("lat", lat, -90, 90)
	}
	c.lat = lat
	return nil
}

func (c *TrackLocationCommand) setLng(lng float64) error {
	if lng < -180 || lng > 180 {
		return errs.NewValueIsOutOfRangeError("lng", lng, -180, 180)
	}
	c.lng = lng
	return nil
}
