package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNotificationsQueryHandler lists the newest notifications.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for feed queries.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle returns the newest feed entries, most recent first, capped at 50.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) ([]NotificationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).
		Table("notifications").
		Select("id, order_number, status, message, read, created_at").
		Order("created_at DESC").
		Limit(notificationFeedLimit).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feed := make([]NotificationResponse, 0)
	for rows.Next() {
		var id uuid.UUID
		var resp NotificationResponse
		if err = rows.Scan(&id, &resp.OrderNumber, &resp.Status, &resp.Message, &resp.Read, &resp.CreatedAt); err != nil {
			return nil, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = notificationID
		feed = append(feed, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return feed, nil
}
