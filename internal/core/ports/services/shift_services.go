package services

import (
	"context"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/SscSPs/shift_cashbox_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ShiftReaderSvc defines read operations for shifts and their derived figures
type ShiftReaderSvc interface {
	GetShift(ctx context.Context, shiftID string) (*domain.Shift, error)

	// GetActiveShift returns the open shift for a date and period, or apperrors.ErrNotFound.
	GetActiveShift(ctx context.Context, date string, period domain.ShiftPeriod) (*domain.Shift, error)

	ListShifts(ctx context.Context, params dto.ListShiftsParams) (*dto.ListShiftsResponse, error)

	// GetSummary rebuilds the report summary from the latest snapshot.
	GetSummary(ctx context.Context, shiftID string) (*domain.ShiftSummary, error)

	// GetBoxBalance computes the running balance of one box.
	GetBoxBalance(ctx context.Context, shiftID string, box domain.BoxID) (decimal.Decimal, error)
}

// ShiftLifecycleSvc drives the open and close transitions
type ShiftLifecycleSvc interface {
	StartShift(ctx context.Context, req dto.StartShiftRequest, actorID string) (*domain.Shift, error)

	// ReconcileBox compares a declared breakdown with an expected amount without changing the shift.
	ReconcileBox(ctx context.Context, shiftID string, req dto.ReconcileRequest) (*domain.ReconciliationResult, error)

	// CloseShift is terminal. Unconfirmed mismatches fail with *apperrors.ReconciliationError.
	CloseShift(ctx context.Context, shiftID string, req dto.CloseShiftRequest, actorID string) (*domain.Shift, []domain.ReconciliationResult, error)
}

// MovementSvc records cash movements while a shift is open
type MovementSvc interface {
	RecordMovement(ctx context.Context, shiftID string, req dto.MovementRequest, actorID string) (*domain.Movement, error)
	UpdateMovement(ctx context.Context, movementID string, req dto.MovementRequest, actorID string) (*domain.Movement, error)
	DeleteMovement(ctx context.Context, movementID string, actorID string) error
	GetMovement(ctx context.Context, movementID string) (*domain.Movement, error)
	ListMovements(ctx context.Context, shiftID string) ([]domain.Movement, error)
}

// IncidentSvc records anomaly reports while a shift is open
type IncidentSvc interface {
	RecordIncident(ctx context.Context, shiftID string, req dto.IncidentRequest, actorID string) (*domain.Incident, error)
	GetIncident(ctx context.Context, incidentID string) (*domain.Incident, error)
	ListIncidents(ctx context.Context, shiftID string) ([]domain.Incident, error)
}

// ShiftSvcFacade combines all shift-related service interfaces
type ShiftSvcFacade interface {
	ShiftReaderSvc
	ShiftLifecycleSvc
	MovementSvc
	IncidentSvc
}
