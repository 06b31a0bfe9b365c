package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/SscSPs/shift_cashbox_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a recoverable failure
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// noopMetrics is used when no recorder is configured.
type noopMetrics struct{}

func (noopMetrics) ShiftOpened(domain.ShiftPeriod) {}
func (noopMetrics) ShiftClosed(domain.ShiftPeriod) {}
func (noopMetrics) MovementRecorded(domain.BoxID, domain.MovementType) {}
func (noopMetrics) IncidentRecorded(domain.BoxID) {}
func (noopMetrics) ReconciliationMismatch(domain.BoxID, domain.Direction) {}
func (noopMetrics) NotificationDispatched(string, bool) {}
