package order

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Assigned ──> PickedUp ──> Delivering ──> Delivered
//	   │            │            │             │
//	   └────────────┴────────────┴─────────────┴──> Cancelled
//
// Pending is the sole initial state; Delivered and Cancelled are terminal.
// PickedUp is never reachable through a generic status change: it is only
// entered by the dedicated shipper assignment operation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: the order is placed and waiting for
	// the restaurant to accept it.
	Pending

	// Assigned means the restaurant accepted the order and is preparing it.
	Assigned

	// PickedUp means a shipper collected the order at the restaurant.
	PickedUp

	// Delivering means the order is en route to the customer.
	Delivering

	// Delivered is the terminal success state.
	Delivered

	// Cancelled is the terminal abort state, reachable from any
	// non-terminal status.
	Cancelled
)

// ErrInvalidTransition is the sentinel unwrapped by InvalidTransitionError.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a status change that is not an edge of the
// lifecycle graph. It carries both endpoints so callers can render
// "invalid transition <current> -> <requested>".
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// endpoints.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Assigned:   "ASSIGNED",
		PickedUp:   "PICKED_UP",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		Assigned:   "ASSIGNED",
		PickedUp:   "PICKED_UP",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

// changeEdges maps a requested target status to the set of current statuses
// a generic change may start from. Every valid target is listed, so the
// table is the single source of truth for the lifecycle graph. PickedUp has
// an empty edge set: a direct request is always rejected because that state
// is owned by the shipper assignment operation.
func changeEdges() map[Status][]Status {
	return map[Status][]Status{
		Assigned:   {Pending},
		PickedUp:   {},
		Delivering: {PickedUp},
		Delivered:  {Delivering},
		Cancelled:  {Pending, Assigned, PickedUp, Delivering},
	}
}

// StatusFromString parses the wire form of a status (case-insensitive).
// Unrecognized values yield an error; they are never mapped to Unknown
// silently because a mistyped target must fail the transition request.
func StatusFromString(s string) (Status, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == upper {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire form of the status ("PENDING", "ASSIGNED", ...).
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions may leave this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ChangeTo validates a generic transition request and returns the new
// status. The transition succeeds iff (s, target) is an edge of the
// lifecycle graph; all other pairs fail with InvalidTransitionError.
func (s Status) ChangeTo(target Status) (Status, error) {
	allowed, ok := changeEdges()[target]
	if !ok {
		return Unknown, NewInvalidTransitionError(s, target)
	}
	for _, from := range allowed {
		if from == s {
			return target, nil
		}
	}
	return Unknown, NewInvalidTransitionError(s, target)
}

// Pickup transitions to PickedUp on behalf of the shipper assignment
// operation. Legal only from Assigned: the restaurant must have finished
// preparing before a shipper can collect the order.
func (s Status) Pickup() (Status, error) {
	if s != Assigned {
		return Unknown, NewInvalidTransitionError(s, PickedUp)
	}
	return PickedUp, nil
}
