package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrDuplicateActiveShift indicates an open shift already exists for the same date and period.
var ErrDuplicateActiveShift = fmt.Errorf("an open shift already exists for this date and period: %w", ErrDuplicate)

// ErrShiftClosed indicates a mutation was attempted on a closed shift.
var ErrShiftClosed = errors.New("shift is closed")

// ErrReconciliationMismatch indicates declared cash differs from the expected amount and was not overridden.
var ErrReconciliationMismatch = errors.New("declared cash does not match the expected amount")

// ErrForbidden indicates the caller may not perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected failure.
var ErrInternal = errors.New("internal error")

// AppError wraps an underlying error with an HTTP-ish status code and message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ValidationError carries every violated rule, never just the first.
type ValidationError struct {
	Errors []string
}

// NewValidationError builds a ValidationError from the collected messages.
func NewValidationError(errs []string) *ValidationError {
	return &ValidationError{Errors: errs}
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Errors, "; ")
}

// Is lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ReconciliationError lists the boxes whose declared cash did not match.
type ReconciliationError struct {
	Mismatches []domain.ReconciliationResult
}

func (e *ReconciliationError) Error() string {
	parts := make([]string, 0, len(e.Mismatches))
	for _, m := range e.Mismatches {
		parts = append(parts, fmt.Sprintf("%s: declared %s, expected %s (%s by %s)",
			m.Box, m.Declared.StringFixed(2), m.Expected.StringFixed(2), m.Direction, m.Difference.StringFixed(2)))
	}
	return ErrReconciliationMismatch.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrReconciliationMismatch) match.
func (e *ReconciliationError) Is(target error) bool {
	return target == ErrReconciliationMismatch
}

// ValidationDetails extracts the rule list from err, if it carries one.
func ValidationDetails(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Errors
	}
	return nil
}
