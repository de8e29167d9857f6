package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
)

// NotificationRepository persists status-change notifications.
type NotificationRepository interface {
	// Add appends a notification record.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// GetRecent retrieves up to limit notifications, newest first.
	GetRecent(ctx context.Context, limit int) ([]*notification.Notification, error)

	// Delete removes a single notification. Returns an error unwrapping
	// errs.ErrObjectNotFound when absent.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteAll clears the feed.
	DeleteAll(ctx context.Context) error

	// DeleteReadOlderThan removes read notifications created before the
	// cutoff and reports how many were removed. Used by the cleanup job.
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
