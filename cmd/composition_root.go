package cmd

import (
	"log/slog"

	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/redis/locationrepo"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot builds every handler of the application from the shared
// infrastructure: one GORM connection, one Redis client, one logger.
type CompositionRoot struct {
	gormDB          *gorm.DB
	orderUoWFactory *postgres.GormOrderUoWFactory
	notifUoWFactory *postgres.GormNotificationUoWFactory
	locationTracker ports.LocationTracker
	logger          *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:          gormDB,
		orderUoWFactory: postgres.NewGormOrderUoWFactory(gormDB),
		notifUoWFactory: postgres.NewGormNotificationUoWFactory(gormDB),
		locationTracker: locationrepo.NewRedisLocationTracker(redisClient),
		logger:          logger,
	}
}

// notifier writes the feed outside any unit of work: emission happens after
// the mutation committed, on the plain connection.
func (c *CompositionRoot) notifier() commands.Notifier {
	return commands.NewNotifier(c.notifUoWFactory.Create().NotificationRepository(), c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory, c.notifier())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory, c.notifier())
}

func (c *CompositionRoot) CreateAssignShipperCommandHandler() commands.AssignShipperCommandHandler {
	return commands.NewAssignShipperCommandHandler(c.orderUoWFactory, c.notifier())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory, c.notifier())
}

func (c *CompositionRoot) CreateDeleteNotificationCommandHandler() commands.DeleteNotificationCommandHandler {
	return commands.NewDeleteNotificationCommandHandler(c.notifUoWFactory)
}

func (c *CompositionRoot) CreateClearNotificationsCommandHandler() commands.ClearNotificationsCommandHandler {
	return commands.NewClearNotificationsCommandHandler(c.notifUoWFactory)
}

func (c *CompositionRoot) CreateTrackLocationCommandHandler() commands.TrackLocationCommandHandler {
	return commands.NewTrackLocationCommandHandler(c.locationTracker)
}

func (c *CompositionRoot) CreateCleanupNotificationsCommandHandler() commands.CleanupNotificationsCommandHandler {
	return commands.NewCleanupNotificationsCommandHandler(c.notifUoWFactory)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCountersQueryHandler() queries.GetCountersQueryHandler {
	return queries.NewGetCountersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRevenueQueryHandler() queries.GetRevenueQueryHandler {
	return queries.NewGetRevenueQueryHandler(c.gormDB, c.logger)
}

func (c *CompositionRoot) CreateGetTopFoodsQueryHandler() queries.GetTopFoodsQueryHandler {
	return queries.NewGetTopFoodsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLatestLocationQueryHandler() queries.GetLatestLocationQueryHandler {
	return queries.NewGetLatestLocationQueryHandler(c.locationTracker)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCleanupNotificationsCommandHandler(), c.logger)
}
