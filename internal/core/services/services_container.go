package services

import (
	"fmt"

	"github.com/SscSPs/shift_cashbox_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/shift_cashbox_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shift_cashbox_app/internal/core/ports/services"
	"github.com/SscSPs/shift_cashbox_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	dispatchers []portssvc.NotificationDispatcher,
	feed events.ChangeFeed,
	metrics portssvc.MetricsRecorder,
) (*portssvc.ServiceContainer, error) {
	container := &portssvc.ServiceContainer{Feed: feed}

	notification, err := NewNotificationService(
		repos.NotificationRepo,
		WithDispatchers(dispatchers...),
		WithNotificationMetrics(metrics),
		WithMaxAttempts(cfg.NotificationMaxAttempts),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %w", err)
	}
	container.Notification = notification

	shift, err := NewShiftService(
		repos.ShiftRepo,
		repos.MovementRepo,
		repos.IncidentRepo,
		container.Notification,
		WithChangeFeed(feed),
		WithMetrics(metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create shift service: %w", err)
	}
	container.Shift = shift

	return container, nil
}
