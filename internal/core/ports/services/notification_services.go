package services

import (
	"context"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
)

// NotifierSvc sends operator notifications. It never fails the calling operation:
// it returns the stored notification id and whether the notification was recorded.
type NotifierSvc interface {
	Notify(ctx context.Context, title, message string) (string, bool)
}

// NotificationDispatcher delivers a stored notification through one channel.
type NotificationDispatcher interface {
	Name() string
	Dispatch(ctx context.Context, n domain.Notification) error
}

// NotificationSvcFacade adds redelivery of pending notifications.
type NotificationSvcFacade interface {
	NotifierSvc

	// RetryPending re-dispatches undelivered notifications and returns how many were delivered.
	RetryPending(ctx context.Context) (int, error)
}
