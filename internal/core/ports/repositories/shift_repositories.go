package repositories

import (
	"context"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
)

// ShiftReader defines read operations for shift data
type ShiftReader interface {
	// FindShiftByID retrieves a shift by its identifier. Returns apperrors.ErrNotFound if absent.
	FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error)

	// FindActiveShift retrieves the non-closed shift for a date and period, or apperrors.ErrNotFound.
	FindActiveShift(ctx context.Context, date string, period domain.ShiftPeriod) (*domain.Shift, error)

	// ListShifts retrieves a page of shifts, newest first, and a token for the next page.
	ListShifts(ctx context.Context, params domain.ListShiftsParams) ([]domain.Shift, *string, error)
}

// ShiftWriter defines write operations for shift data
type ShiftWriter interface {
	// CreateShift persists a new open shift. It fails with apperrors.ErrDuplicateActiveShift
	// when another open shift exists for the same date and period.
	CreateShift(ctx context.Context, shift domain.Shift) error

	// CloseShift writes the closure only if the shift is still open; otherwise apperrors.ErrShiftClosed.
	CloseShift(ctx context.Context, shiftID string, closure domain.ShiftClosure) error
}

// ShiftRepositoryFacade combines all shift-related repository interfaces
type ShiftRepositoryFacade interface {
	ShiftReader
	ShiftWriter
}
