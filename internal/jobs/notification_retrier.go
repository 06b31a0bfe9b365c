// Package jobs holds background work scheduled alongside the HTTP server.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// PendingRetrier redelivers notifications that no channel accepted yet.
type PendingRetrier interface {
	RetryPending(ctx context.Context) (int, error)
}

// NotificationRetrier periodically redelivers pending notifications.
type NotificationRetrier struct {
	retrier   PendingRetrier
	scheduler *gocron.Scheduler
	interval  time.Duration
	timeout   time.Duration
	logger    *slog.Logger
}

// NewNotificationRetrier schedules retries every interval in the given location.
func NewNotificationRetrier(retrier PendingRetrier, loc *time.Location, interval time.Duration, logger *slog.Logger) *NotificationRetrier {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	timeout := interval
	if timeout <= 0 || timeout > time.Minute {
		timeout = time.Minute
	}
	return &NotificationRetrier{
		retrier:   retrier,
		scheduler: gocron.NewScheduler(loc),
		interval:  interval,
		timeout:   timeout,
		logger:    logger,
	}
}

// Start registers the job and runs the scheduler in the background. The first run is immediate.
func (r *NotificationRetrier) Start() error {
	if r.interval <= 0 {
		return fmt.Errorf("notification retry interval must be positive, got %s", r.interval)
	}
	r.scheduler.SingletonModeAll()
	if _, err := r.scheduler.Every(r.interval).Do(r.RunOnce); err != nil {
		return fmt.Errorf("schedule notification retries: %w", err)
	}
	r.scheduler.StartAsync()
	r.logger.Info("Notification retrier started", slog.String("interval", r.interval.String()))
	return nil
}

// Stop halts the scheduler. A run in progress finishes first.
func (r *NotificationRetrier) Stop() {
	r.scheduler.Stop()
}

// RunOnce performs a single retry pass.
func (r *NotificationRetrier) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	delivered, err := r.retrier.RetryPending(ctx)
	if err != nil {
		r.logger.Error("Failed to retry pending notifications", slog.String("error", err.Error()))
		return
	}
	if delivered > 0 {
		r.logger.Info("Delivered pending notifications", slog.Int("count", delivered))
	}
}
