package services

import "github.com/SscSPs/shift_cashbox_app/internal/core/ports/events"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Shift        ShiftSvcFacade
	Notification NotificationSvcFacade
	Feed         events.ChangeFeed
}
