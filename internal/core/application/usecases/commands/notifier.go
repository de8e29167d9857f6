package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// Notifier emits status-change notifications after an order mutation has
// committed. Emission is best effort: every failure is logged and swallowed,
// because the primary mutation must not be rolled back or failed for the
// sake of a feed record. The error log doubles as the dead-letter trail for
// lost notifications.
type Notifier struct {
	notifications ports.NotificationRepository
	logger        *slog.Logger
}

// NewNotifier creates a Notifier writing through the given repository.
func NewNotifier(notifications ports.NotificationRepository, logger *slog.Logger) Notifier {
	return Notifier{
		notifications: notifications,
		logger:        logger.With("component", "notifier"),
	}
}

// Emit renders and persists the notification for a status the order just
// entered. Never returns an error.
func (n Notifier) Emit(ctx context.Context, orderNumber string, status order.Status) {
	record, err := notification.NewNotification(kernel.NewUUID(), orderNumber, status)
	if err != nil {
		n.logger.ErrorContext(ctx, "Failed to build notification",
			"order", orderNumber, "status", status.String(), "error", err)
		return
	}

	if err := n.notifications.Add(ctx, record); err != nil {
		n.logger.ErrorContext(ctx, "Failed to persist notification",
			"order", orderNumber, "status", status.String(), "error", err)
	}
}
