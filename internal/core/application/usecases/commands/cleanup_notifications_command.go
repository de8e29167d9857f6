package commands

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCleanupNotificationsCommandIsNotConstructed = errors.New(
	"CleanupNotificationsCommand must be created via NewCleanupNotificationsCommand constructor",
)

// CleanupNotificationsCommand removes read notifications older than the
// retention window. Issued by the background cleanup job.
type CleanupNotificationsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewCleanupNotificationsCommand creates a cleanup command.
func NewCleanupNotificationsCommand(retention time.Duration) (CleanupNotificationsCommand, error) {
	cmd := CleanupNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if retention <= 0 {
		return CleanupNotificationsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"retention",
			fmt.Errorf("%s is not positive", retention),
		)
	}
	cmd.retention = retention

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CleanupNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrCleanupNotificationsCommandIsNotConstructed)
}

// Retention returns how long read notifications are kept.
func (c CleanupNotificationsCommand) Retention() time.Duration { return c.retention }
