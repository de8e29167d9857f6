package commands_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteNotificationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteNotificationCommand(id)
	require.NoError(t, err)

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockNotificationUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Delete", ctx, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteNotificationCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))
	notificationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteNotificationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DeleteNotificationCommand{} // not constructed properly

	factory := new(MockNotificationUoWFactory)
	handler := commands.NewDeleteNotificationCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDeleteNotificationCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestDeleteNotificationCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()

	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteNotificationCommand(id)
	require.NoError(t, err)

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockNotificationUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Delete", ctx, id).
			Return(errs.NewObjectNotFoundError("notificationId", id.String())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteNotificationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestClearNotificationsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewClearNotificationsCommand()

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockNotificationUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("DeleteAll", ctx).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClearNotificationsCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))
	notificationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestClearNotificationsCommandHandler_Handle_DeleteError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewClearNotificationsCommand()

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockNotificationUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("DeleteAll", ctx).Return(errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClearNotificationsCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
}
