// Package postgres provides the GORM-based Unit of Work used by command
// handlers. Each unit of work owns one transaction; repositories created
// through it run inside that transaction until Commit or Rollback.
package postgres

import (
	"context"

	"fooddelivery/internal/adapters/out/postgres/foodrepo"
	"fooddelivery/internal/adapters/out/postgres/notificationrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/restaurantrepo"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate records an aggregate modified during the unit of work,
// kept for post-commit processing such as an outbox publisher.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWork coordinates one database transaction across the order,
// catalog, and notification repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

func newGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// Begin starts the transaction. Calling Begin again on an active unit of
// work is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the transaction. The unit of work cannot be reused after.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. The unit of work cannot be reused after.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns the order repository bound to the current
// transaction, or to the plain connection when none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// NotificationRepository returns the notification repository bound to the
// current transaction.
func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn())
}

// FoodRepository returns the read-only food repository bound to the current
// transaction.
func (uow *GormUnitOfWork) FoodRepository() ports.FoodRepository {
	return foodrepo.NewGormFoodRepository(uow.conn())
}

// RestaurantRepository returns the read-only restaurant repository bound to
// the current transaction.
func (uow *GormUnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return restaurantrepo.NewGormRestaurantRepository(uow.conn())
}

// TrackAggregate registers an aggregate modified within this unit of work.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// GormOrderUoWFactory creates order units of work over a shared connection.
type GormOrderUoWFactory struct {
	db *gorm.DB
}

// NewGormOrderUoWFactory creates a factory for order units of work.
func NewGormOrderUoWFactory(db *gorm.DB) *GormOrderUoWFactory {
	return &GormOrderUoWFactory{db: db}
}

// Create produces a fresh unit of work with its own transaction state.
func (f *GormOrderUoWFactory) Create() commands.OrderUoW {
	return newGormUnitOfWork(f.db)
}

// GormNotificationUoWFactory creates notification units of work over a
// shared connection.
type GormNotificationUoWFactory struct {
	db *gorm.DB
}

// NewGormNotificationUoWFactory creates a factory for notification units of work.
func NewGormNotificationUoWFactory(db *gorm.DB) *GormNotificationUoWFactory {
	return &GormNotificationUoWFactory{db: db}
}

// Create produces a fresh unit of work with its own transaction state.
func (f *GormNotificationUoWFactory) Create() commands.NotificationUoW {
	return newGormUnitOfWork(f.db)
}
