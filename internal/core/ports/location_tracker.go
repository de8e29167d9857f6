package ports

import "context"

// LocationPoint is one ephemeral position sample reported by a user
// (typically a shipper during delivery).
type LocationPoint struct {
	UserID    string  `json:"userId"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Timestamp int64   `json:"timestamp"`
}

// LocationTracker stores a short, capped history of position samples per
// user. Samples are ephemeral: the backing store keeps only the most recent
// ones and offers no durability guarantees.
type LocationTracker interface {
	// Append records a sample at the end of the user's history.
	Append(ctx context.Context, point LocationPoint) error

	// Latest returns the most recent sample for the user. Returns an error
	// unwrapping errs.ErrObjectNotFound when no sample exists.
	Latest(ctx context.Context, userID string) (LocationPoint, error)
}
