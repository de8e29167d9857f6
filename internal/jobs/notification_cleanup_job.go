// Package jobs provides the scheduled background tasks of the service,
// built on github.com/robfig/cron/v3 and coordinated by JobManager.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// defaultNotificationRetention is how long read notifications are kept
// before the cleanup job removes them.
const defaultNotificationRetention = 30 * 24 * time.Hour

// notificationCleanupSchedule runs the cleanup once a day at 03:00.
const notificationCleanupSchedule = "0 3 * * *"

// NotificationCleanupJob periodically removes read notifications that aged
// out of the retention window, keeping the feed table from growing without
// bound.
type NotificationCleanupJob struct {
	handler   commands.CleanupNotificationsCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewNotificationCleanupJob creates the cleanup job with the default
// retention window.
func NewNotificationCleanupJob(
	handler commands.CleanupNotificationsCommandHandler,
	logger *slog.Logger,
) *NotificationCleanupJob {
	return &NotificationCleanupJob{
		handler:   handler,
		retention: defaultNotificationRetention,
		cron:      cron.New(),
		logger:    logger.With("component", "notification_cleanup_job"),
	}
}

// Start schedules the cleanup to run daily.
func (j *NotificationCleanupJob) Start() error {
	_, err := j.cron.AddFunc(notificationCleanupSchedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCleanupNotificationsCommand(j.retention)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Notification cleanup job misconfigured", "error", cmdErr)
			return
		}

		removed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Notification cleanup job failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Notification cleanup completed", "removed", removed)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification cleanup job started (running daily)")
	return nil
}

// Stop stops the cleanup job.
func (j *NotificationCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification cleanup job stopped")
}
