package queries_test

import (
	"context"
	"testing"

	"fooddelivery/internal/adapters/out/postgres/notificationrepo"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetNotificationsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetNotificationsQueryHandler
}

func (suite *GetNotificationsQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = startOrdersDatabase(&suite.Suite)
	suite.Require().NoError(suite.db.AutoMigrate(&notificationrepo.NotificationDTO{}))
	suite.handler = queries.NewGetNotificationsQueryHandler(suite.db)
}

func (suite *GetNotificationsQueryHandlerTestSuite) TearDownSuite() {
	terminateDatabase(&suite.Suite, suite.container)
}

func (suite *GetNotificationsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE notifications").Error)
}

func (suite *GetNotificationsQueryHandlerTestSuite) TestHandle_EmptyFeed_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetNotificationsQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetNotificationsQueryHandlerTestSuite) TestHandle_WithEntries_ReturnsNewestFirst() {
	suite.seedNotification("FD-000001", order.Pending)
	suite.seedNotification("FD-000002", order.Assigned)
	suite.seedNotification("FD-000003", order.Delivered)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetNotificationsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	for i := 1; i < len(result); i++ {
		suite.False(result[i].CreatedAt.After(result[i-1].CreatedAt))
	}

	numbers := make(map[string]queries.NotificationResponse)
	for _, entry := range result {
		numbers[entry.OrderNumber] = entry
	}
	suite.Equal("PENDING", numbers["FD-000001"].Status)
	suite.Contains(numbers["FD-000001"].Message, "waiting for acceptance")
	suite.Equal("DELIVERED", numbers["FD-000003"].Status)
	suite.False(numbers["FD-000002"].Read)
}

func (suite *GetNotificationsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetNotificationsQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetNotificationsQuery constructor")
}

func (suite *GetNotificationsQueryHandlerTestSuite) seedNotification(orderNumber string, status order.Status) {
	record, err := notification.NewNotification(kernel.NewUUID(), orderNumber, status)
	suite.Require().NoError(err)

	repo := notificationrepo.NewGormNotificationRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), record))
}

func TestGetNotificationsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetNotificationsQueryHandlerTestSuite))
}
