package commands

import (
	"context"
	"time"
)

// CleanupNotificationsCommandHandler removes read notifications that aged
// out of the retention window and reports how many were removed.
type CleanupNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	now        func() time.Time
}

// NewCleanupNotificationsCommandHandler creates a handler for feed cleanups.
func NewCleanupNotificationsCommandHandler(uowFactory NotificationUoWFactory) CleanupNotificationsCommandHandler {
	return CleanupNotificationsCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle deletes read notifications created before now minus the retention.
func (h CleanupNotificationsCommandHandler) Handle(
	ctx context.Context,
	cmd CleanupNotificationsCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := h.now().Add(-cmd.Retention())
	removed, err := uow.NotificationRepository().DeleteReadOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
