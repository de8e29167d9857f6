// Package notificationrepo persists the notification feed with GORM.
package notificationrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// NotificationDTO maps a feed record to the notifications table.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber string    `gorm:"index"`
	Status      string
	Message     string
	Read        bool
	CreatedAt   time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "notifications".
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification to its database representation.
func fromDomain(record *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          record.ID().Bytes(),
		OrderNumber: record.OrderNumber(),
		Status:      record.Status().String(),
		Message:     record.Message(),
		Read:        record.Read(),
		CreatedAt:   record.CreatedAt(),
	}
}

// toDomain converts a database row back into a notification. Rows carrying a
// status name no longer defined fall back to the Unknown status so old feed
// entries stay readable.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		status = order.Unknown
	}

	return notification.RestoreNotification(
		id,
		dto.OrderNumber,
		status,
		dto.Message,
		dto.Read,
		dto.CreatedAt,
	)
}
