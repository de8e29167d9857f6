package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	items := []commands.CreateOrderItem{{Name: "Pho Bo", Quantity: 2, Price: 35000}}

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			"user-1", "Alice", "+843331234",
			items,
			70000, 15000, 0, 85000,
			"12 Nguyen Trai", "no onions", "30-40 min",
		)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "user-1", cmd.UserID())
		assert.Equal(t, "Alice", cmd.UserName())
		assert.Len(t, cmd.Items(), 1)
		assert.Equal(t, int64(85000), cmd.Total())
		assert.Equal(t, "30-40 min", cmd.EstimatedDeliveryTime())
	})

	t.Run("missing user id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			"", "Alice", "", items, 70000, 0, 0, 70000, "addr", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing user name", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			"user-1", "", "", items, 70000, 0, 0, 70000, "addr", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			"user-1", "Alice", "", nil, 70000, 0, 0, 70000, "addr", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non positive total", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			"user-1", "Alice", "", items, 70000, 0, 0, 0, "addr", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing delivery address", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			"user-1", "Alice", "", items, 70000, 0, 0, 70000, "", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderStatusCommand("ORD123", order.Delivering)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "ORD123", cmd.OrderNumber())
		assert.Equal(t, order.Delivering, cmd.Target())
	})

	t.Run("missing order number", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand("", order.Delivering)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand("ORD123", order.Status(0))
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.UpdateOrderStatusCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	})
}

func TestNewAssignShipperCommand(t *testing.T) {
	shipperID := kernel.NewUUID()

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewAssignShipperCommand("ORD123", shipperID, "Bob")
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "ORD123", cmd.OrderNumber())
		assert.True(t, cmd.ShipperID().IsEqual(shipperID))
		assert.Equal(t, "Bob", cmd.ShipperName())
	})

	t.Run("missing order number", func(t *testing.T) {
		_, err := commands.NewAssignShipperCommand("", shipperID, "Bob")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed shipper id", func(t *testing.T) {
		_, err := commands.NewAssignShipperCommand("ORD123", kernel.UUID{}, "Bob")
		require.Error(t, err)
	})

	t.Run("missing shipper name", func(t *testing.T) {
		_, err := commands.NewAssignShipperCommand("ORD123", shipperID, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewCancelOrderCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCancelOrderCommand("ORD123")
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "ORD123", cmd.OrderNumber())
	})

	t.Run("missing order number", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewDeleteNotificationCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewDeleteNotificationCommand(id)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.NotificationID().IsEqual(id))
	})

	t.Run("unconstructed id", func(t *testing.T) {
		_, err := commands.NewDeleteNotificationCommand(kernel.UUID{})
		require.Error(t, err)
	})
}

func TestNewClearNotificationsCommand(t *testing.T) {
	cmd := commands.NewClearNotificationsCommand()
	require.NoError(t, cmd.Validate())

	var zero commands.ClearNotificationsCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrClearNotificationsCommandIsNotConstructed)
}

func TestNewTrackLocationCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewTrackLocationCommand("shipper-1", 10.7769, 106.7009)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "shipper-1", cmd.UserID())
	})

	t.Run("missing user id", func(t *testing.T) {
		_, err := commands.NewTrackLocationCommand("", 10, 106)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		_, err := commands.NewTrackLocationCommand("shipper-1", 91, 106)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("longitude out of range", func(t *testing.T) {
		_, err := commands.NewTrackLocationCommand("shipper-1", 10, -181)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
