package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeleteNotificationCommandIsNotConstructed = errors.New(
	"DeleteNotificationCommand must be created via NewDeleteNotificationCommand constructor",
)

// DeleteNotificationCommand removes a single notification from the feed.
type DeleteNotificationCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteNotificationCommand creates a deletion command.
func NewDeleteNotificationCommand(notificationID kernel.UUID) (DeleteNotificationCommand, error) {
	cmd := DeleteNotificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNotificationID(notificationID); err != nil {
		return DeleteNotificationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteNotificationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteNotificationCommandIsNotConstructed)
}

// NotificationID returns the identifier of the notification to delete.
func (c DeleteNotificationCommand) NotificationID() kernel.UUID { return c.notificationID }

func (c *DeleteNotificationCommand) setNotificationID(notificationID kernel.UUID) error {
	if err := notificationID.Validate(); err != nil {
		return err
	}
	c.notificationID = notificationID
	return nil
}
