package queries

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetLatestLocationQueryIsNotConstructed = errors.New(
	"GetLatestLocationQuery must be created via NewGetLatestLocationQuery constructor",
)

// GetLatestLocationQuery fetches the newest position sample for a user.
type GetLatestLocationQuery struct { //nolint:recvcheck //using for validation
	userID string

	guard guard.ConstructorGuard
}

// NewGetLatestLocationQuery creates a latest-location query.
func NewGetLatestLocationQuery(userID string) (GetLatestLocationQuery, error) {
	q := GetLatestLocationQuery{
		guard: guard.NewConstructorGuard(),
	}

	if userID == "" {
		return GetLatestLocationQuery{}, errs.NewValueIsRequiredError("userId")
	}
	q.userID = userID

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLatestLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestLocationQueryIsNotConstructed)
}

// UserID returns the tracked user identifier.
func (q GetLatestLocationQuery) UserID() string { return q.userID }
