package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetRecent(ctx context.Context, limit int) ([]*notification.Notification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockFoodRepository struct{ mock.Mock }

func (m *MockFoodRepository) Get(ctx context.Context, id kernel.UUID) (ports.Food, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Food), args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (ports.Restaurant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Restaurant), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) FoodRepository() ports.FoodRepository {
	args := m.Called()
	return args.Get(0).(ports.FoodRepository)
}

func (m *MockOrderUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotificationUoW struct{ mock.Mock }

func (m *MockNotificationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockLocationTracker struct{ mock.Mock }

func (m *MockLocationTracker) Append(ctx context.Context, point ports.LocationPoint) error {
	args := m.Called(ctx, point)
	return args.Error(0)
}

func (m *MockLocationTracker) Latest(ctx context.Context, userID string) (ports.LocationPoint, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(ports.LocationPoint), args.Error(1)
}

// discardNotifier returns a notifier that writes into the given mock
// repository and logs nowhere.
func discardNotifier(repo ports.NotificationRepository) commands.Notifier {
	return commands.NewNotifier(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newStoredOrder builds an order as the repository would return it, already
// moved to the given status.
func newStoredOrder(status order.Status) *order.Order {
	customer, _ := order.NewCustomer("user-1", "Alice", "+843331234")
	item, _ := order.NewItem(nil, "Pho Bo", "pho.png", "L", 2, 35000)
	pricing, _ := order.NewPricing(70000, 15000, 0, 85000)

	o, _ := order.NewOrder(
		kernel.NewUUID(),
		order.NewOrderNumber(),
		customer,
		[]order.Item{item},
		pricing,
		"12 Nguyen Trai",
		"",
		"",
	)

	if status == order.Assigned || status == order.PickedUp ||
		status == order.Delivering || status == order.Delivered {
		_ = o.ChangeStatus(order.Assigned)
	}
	if status == order.PickedUp || status == order.Delivering || status == order.Delivered {
		_ = o.AssignShipper(kernel.NewUUID(), "Bob")
	}
	if status == order.Delivering || status == order.Delivered {
		_ = o.ChangeStatus(order.Delivering)
	}
	if status == order.Delivered {
		_ = o.ChangeStatus(order.Delivered)
	}
	if status == order.Cancelled {
		o.Cancel()
	}
	return o
}
