package repositories

import (
	"context"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
)

// MovementReader defines read operations for shift movements
type MovementReader interface {
	FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error)

	// ListMovementsByShift returns the movements of a shift in creation order.
	ListMovementsByShift(ctx context.Context, shiftID string) ([]domain.Movement, error)
}

// MovementWriter defines write operations for shift movements
type MovementWriter interface {
	// CreateMovement stores a movement only while its shift is open (apperrors.ErrShiftClosed otherwise).
	CreateMovement(ctx context.Context, movement domain.Movement) error

	// UpdateMovement replaces a movement's editable fields while its shift is open.
	UpdateMovement(ctx context.Context, movement domain.Movement) error

	DeleteMovement(ctx context.Context, movementID string) error
}

// MovementRepositoryFacade combines all movement-related repository interfaces
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
}
