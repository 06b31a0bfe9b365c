package services

import "github.com/SscSPs/shift_cashbox_app/internal/core/domain"

// MetricsRecorder receives business counters from the services.
type MetricsRecorder interface {
	ShiftOpened(period domain.ShiftPeriod)
	ShiftClosed(period domain.ShiftPeriod)
	MovementRecorded(box domain.BoxID, movementType domain.MovementType)
	IncidentRecorded(box domain.BoxID)
	ReconciliationMismatch(box domain.BoxID, direction domain.Direction)
	NotificationDispatched(channel string, delivered bool)
}
