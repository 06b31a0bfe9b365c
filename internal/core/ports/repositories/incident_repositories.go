package repositories

import (
	"context"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
)

// IncidentReader defines read operations for shift incidents
type IncidentReader interface {
	FindIncidentByID(ctx context.Context, incidentID string) (*domain.Incident, error)
	ListIncidentsByShift(ctx context.Context, shiftID string) ([]domain.Incident, error)
}

// IncidentWriter defines write operations for shift incidents
type IncidentWriter interface {
	// CreateIncident stores an incident only while its shift is open (apperrors.ErrShiftClosed otherwise).
	CreateIncident(ctx context.Context, incident domain.Incident) error
}

// IncidentRepositoryFacade combines all incident-related repository interfaces
type IncidentRepositoryFacade interface {
	IncidentReader
	IncidentWriter
}
