package notification_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	t.Run("should render the status-specific template", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Pending, "Order ORD1 has been placed and is waiting for acceptance"},
			{order.Assigned, "Order ORD1 was accepted, the restaurant is preparing it"},
			{order.PickedUp, "Shipper picked up order ORD1 at the restaurant"},
			{order.Delivering, "Order ORD1 is prepared and handed over to the shipper"},
			{order.Delivered, "Order ORD1 was delivered successfully"},
			{order.Cancelled, "Order ORD1 was cancelled"},
		}

		for _, tc := range testCases {
			t.Run(tc.status.String(), func(t *testing.T) {
				n, err := notification.NewNotification(kernel.NewUUID(), "ORD1", tc.status)

				require.NoError(t, err)
				require.NoError(t, n.Validate())
				assert.Equal(t, tc.expected, n.Message())
				assert.Equal(t, tc.status, n.Status())
				assert.Equal(t, "ORD1", n.OrderNumber())
				assert.False(t, n.Read())
				assert.False(t, n.CreatedAt().IsZero())
			})
		}
	})

	t.Run("should fall back to a generic message for unrecognized statuses", func(t *testing.T) {
		n, err := notification.NewNotification(kernel.NewUUID(), "ORD1", order.Status(42))

		require.NoError(t, err)
		assert.Equal(t, "Order ORD1 moved to status UNKNOWN", n.Message())
	})

	t.Run("should require an order number", func(t *testing.T) {
		_, err := notification.NewNotification(kernel.NewUUID(), "", order.Pending)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject an unconstructed id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := notification.NewNotification(zero, "ORD1", order.Pending)

		require.Error(t, err)
	})
}

func TestRestoreNotification(t *testing.T) {
	t.Run("should trust persisted fields", func(t *testing.T) {
		createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

		n, err := notification.RestoreNotification(
			kernel.NewUUID(), "ORD1", order.Delivered, "custom message", true, createdAt)

		require.NoError(t, err)
		assert.Equal(t, "custom message", n.Message())
		assert.True(t, n.Read())
		assert.Equal(t, createdAt, n.CreatedAt())
	})
}

func TestNotification_Validate(t *testing.T) {
	t.Run("zero value fails", func(t *testing.T) {
		var n notification.Notification

		require.ErrorIs(t, n.Validate(), notification.ErrNotificationIsNotConstructed)
	})
}
