package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shift_cashbox_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shift_cashbox_app/internal/core/ports/services"
	"github.com/google/uuid"
)

const (
	defaultRetryBatch      = 50
	defaultMaxAttempts     = 10
	defaultDispatchTimeout = 10 * time.Second
)

// notificationService stores notifications first and then hands them to every dispatcher.
// A notification that no dispatcher accepted stays pending for RetryPending.
type notificationService struct {
	BaseService
	repo            portsrepo.NotificationRepositoryFacade
	dispatchers     []portssvc.NotificationDispatcher
	metrics         portssvc.MetricsRecorder
	now             func() time.Time
	batchSize       int
	maxAttempts     int
	dispatchTimeout time.Duration
}

// NotificationServiceOption is a function that configures a notificationService
type NotificationServiceOption func(*notificationService)

// WithDispatchers sets the delivery channels
func WithDispatchers(dispatchers ...portssvc.NotificationDispatcher) NotificationServiceOption {
	return func(s *notificationService) {
		for _, d := range dispatchers {
			if d != nil {
				s.dispatchers = append(s.dispatchers, d)
			}
		}
	}
}

// WithNotificationMetrics sets the delivery counter recorder
func WithNotificationMetrics(m portssvc.MetricsRecorder) NotificationServiceOption {
	return func(s *notificationService) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithMaxAttempts stops retrying a notification after n failed deliveries
func WithMaxAttempts(n int) NotificationServiceOption {
	return func(s *notificationService) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithDispatchTimeout bounds a single delivery attempt
func WithDispatchTimeout(d time.Duration) NotificationServiceOption {
	return func(s *notificationService) {
		if d > 0 {
			s.dispatchTimeout = d
		}
	}
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo portsrepo.NotificationRepositoryFacade, options ...NotificationServiceOption) (portssvc.NotificationSvcFacade, error) {
	if repo == nil {
		return nil, errors.New("notification service: repository is required")
	}
	svc := &notificationService{
		repo:            repo,
		metrics:         noopMetrics{},
		now:             func() time.Time { return time.Now().UTC() },
		batchSize:       defaultRetryBatch,
		maxAttempts:     defaultMaxAttempts,
		dispatchTimeout: defaultDispatchTimeout,
	}
	for _, option := range options {
		option(svc)
	}
	return svc, nil
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// Notify records the notification and attempts delivery. Failures are logged, never returned.
func (s *notificationService) Notify(ctx context.Context, title, message string) (string, bool) {
	n := domain.Notification{
		NotificationID: uuid.NewString(),
		Title:          title,
		Message:        message,
		CreatedAt:      s.now(),
	}
	if err := s.repo.CreateNotification(ctx, n); err != nil {
		s.LogError(ctx, err, "Failed to store notification", slog.String("title", title))
		return "", false
	}
	s.deliver(ctx, n)
	return n.NotificationID, true
}

// RetryPending re-dispatches stored notifications that were never delivered.
func (s *notificationService) RetryPending(ctx context.Context) (int, error) {
	pending, err := s.repo.ListPendingNotifications(ctx, s.batchSize)
	if err != nil {
		s.LogError(ctx, err, "Failed to list pending notifications")
		return 0, err
	}

	delivered := 0
	for _, n := range pending {
		if ctx.Err() != nil {
			return delivered, ctx.Err()
		}
		if n.Attempts >= s.maxAttempts {
			continue
		}
		if s.deliver(ctx, n) {
			delivered++
		}
	}
	if len(pending) > 0 {
		s.LogInfo(ctx, "Retried pending notifications",
			slog.Int("pending", len(pending)),
			slog.Int("delivered", delivered))
	}
	return delivered, nil
}

// deliver marks n sent when at least one dispatcher accepted it.
func (s *notificationService) deliver(ctx context.Context, n domain.Notification) bool {
	if len(s.dispatchers) == 0 {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, s.dispatchTimeout)
	defer cancel()

	var failures []string
	delivered := false
	for _, d := range s.dispatchers {
		if err := d.Dispatch(ctx, n); err != nil {
			s.LogWarn(ctx, err, "Notification dispatch failed",
				slog.String("channel", d.Name()),
				slog.String("notification_id", n.NotificationID))
			failures = append(failures, d.Name()+": "+err.Error())
			s.metrics.NotificationDispatched(d.Name(), false)
			continue
		}
		delivered = true
		s.metrics.NotificationDispatched(d.Name(), true)
	}

	if delivered {
		if err := s.repo.MarkNotificationSent(ctx, n.NotificationID, s.now()); err != nil {
			s.LogError(ctx, err, "Failed to mark notification sent", slog.String("notification_id", n.NotificationID))
		}
		return true
	}
	if err := s.repo.RecordNotificationFailure(ctx, n.NotificationID, strings.Join(failures, "; ")); err != nil {
		s.LogError(ctx, err, "Failed to record notification failure", slog.String("notification_id", n.NotificationID))
	}
	return false
}
