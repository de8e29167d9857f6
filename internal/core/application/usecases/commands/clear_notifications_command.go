package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrClearNotificationsCommandIsNotConstructed = errors.New(
	"ClearNotificationsCommand must be created via NewClearNotificationsCommand constructor",
)

// ClearNotificationsCommand wipes the whole notification feed.
type ClearNotificationsCommand struct {
	guard guard.ConstructorGuard
}

// NewClearNotificationsCommand creates a feed wipe command.
func NewClearNotificationsCommand() ClearNotificationsCommand {
	return ClearNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ClearNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrClearNotificationsCommandIsNotConstructed)
}
