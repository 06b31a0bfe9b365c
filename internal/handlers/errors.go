package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/shift_cashbox_app/internal/apperrors"
	"github.com/SscSPs/shift_cashbox_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithError maps service errors onto HTTP statuses. action completes "Failed to ..." for 500s.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, action string) {
	var reconErr *apperrors.ReconciliationError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		details := apperrors.ValidationDetails(err)
		if details == nil {
			details = []string{err.Error()}
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": details})
	case errors.As(err, &reconErr):
		logger.Warn("Declared cash does not match", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": apperrors.ErrReconciliationMismatch.Error(), "mismatches": reconErr.Mismatches})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrDuplicateActiveShift):
		logger.Warn("Open shift already exists", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": apperrors.ErrDuplicateActiveShift.Error()})
	case errors.Is(err, apperrors.ErrShiftClosed):
		logger.Warn("Shift is closed", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": apperrors.ErrShiftClosed.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": apperrors.ErrDuplicate.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// requireCashier returns the authenticated cashier or writes 401.
func requireCashier(c *gin.Context, logger *slog.Logger) (middleware.Cashier, bool) {
	cashier, ok := middleware.GetCashierFromContext(c)
	if !ok {
		logger.Error("Cashier ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return middleware.Cashier{}, false
	}
	return cashier, true
}
