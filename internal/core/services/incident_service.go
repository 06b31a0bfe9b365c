package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/shift_cashbox_app/internal/apperrors"
	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/SscSPs/shift_cashbox_app/internal/core/validation"
	"github.com/SscSPs/shift_cashbox_app/internal/dto"
	"github.com/SscSPs/shift_cashbox_app/internal/utils"
	"github.com/google/uuid"
)

// RecordIncident attaches an anomaly report to an open shift and notifies the operators.
func (s *shiftService) RecordIncident(ctx context.Context, shiftID string, req dto.IncidentRequest, actorID string) (*domain.Incident, error) {
	shift, err := s.loadOpenShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateIncident(req.ToIncidentData(shiftID)).Err(); err != nil {
		return nil, err
	}

	incident := domain.Incident{
		IncidentID:  uuid.NewString(),
		ShiftID:     shiftID,
		Type:        domain.IncidentType(strings.TrimSpace(string(req.Type))),
		Box:         req.Box,
		Description: strings.TrimSpace(req.Description),
		Amount:      req.Amount,
		AuditFields: domain.NewAuditFields(actorID, s.now()),
	}
	if req.CustomType != nil {
		if custom := strings.TrimSpace(*req.CustomType); custom != "" {
			incident.CustomType = &custom
		}
	}

	if err := s.incidentRepo.CreateIncident(ctx, incident); err != nil {
		if !errors.Is(err, apperrors.ErrShiftClosed) {
			s.LogError(ctx, err, "Failed to record incident", slog.String("shift_id", shiftID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Incident recorded",
		slog.String("shift_id", shiftID),
		slog.String("incident_id", incident.IncidentID),
		slog.String("type", incident.DisplayType()))
	s.metrics.IncidentRecorded(incident.Box)
	s.publish(ctx, domain.IncidentsChanged, shiftID)

	message := fmt.Sprintf("%s reported %q in %s during the %s shift of %s: %s",
		shift.CashierName, incident.DisplayType(), incident.Box.Label(), shift.Period, shift.Date, incident.Description)
	if incident.Amount != nil {
		message += fmt.Sprintf(" (%s)", utils.FormatMoney(*incident.Amount))
	}
	s.notify(ctx, "Incident reported", message)
	return &incident, nil
}

// GetIncident retrieves an incident by its ID.
func (s *shiftService) GetIncident(ctx context.Context, incidentID string) (*domain.Incident, error) {
	incident, err := s.incidentRepo.FindIncidentByID(ctx, incidentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load incident", slog.String("incident_id", incidentID))
		}
		return nil, err
	}
	return incident, nil
}

// ListIncidents retrieves the incidents of a shift in creation order.
func (s *shiftService) ListIncidents(ctx context.Context, shiftID string) ([]domain.Incident, error) {
	incidents, err := s.incidentRepo.ListIncidentsByShift(ctx, shiftID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list incidents", slog.String("shift_id", shiftID))
		return nil, err
	}
	return incidents, nil
}
