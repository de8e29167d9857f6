package commands

import "context"

// ClearNotificationsCommandHandler wipes the notification feed.
type ClearNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewClearNotificationsCommandHandler creates a handler for feed wipes.
func NewClearNotificationsCommandHandler(uowFactory NotificationUoWFactory) ClearNotificationsCommandHandler {
	return ClearNotificationsCommandHandler{uowFactory: uowFactory}
}

// Handle deletes every notification.
func (h ClearNotificationsCommandHandler) Handle(ctx context.Context, cmd ClearNotificationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NotificationRepository().DeleteAll(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
