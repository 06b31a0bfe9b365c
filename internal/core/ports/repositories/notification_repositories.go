package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
)

// NotificationRepositoryFacade stores outbound notifications until they are delivered.
type NotificationRepositoryFacade interface {
	CreateNotification(ctx context.Context, n domain.Notification) error

	// MarkNotificationSent flags a notification as delivered.
	MarkNotificationSent(ctx context.Context, notificationID string, sentAt time.Time) error

	// RecordNotificationFailure bumps the attempt counter and keeps the last error.
	RecordNotificationFailure(ctx context.Context, notificationID string, reason string) error

	// ListPendingNotifications returns undelivered notifications, oldest first.
	ListPendingNotifications(ctx context.Context, limit int) ([]domain.Notification, error)
}
