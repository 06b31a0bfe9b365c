package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/shift_cashbox_app/internal/apperrors"
	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/SscSPs/shift_cashbox_app/internal/core/validation"
	"github.com/SscSPs/shift_cashbox_app/internal/dto"
	"github.com/google/uuid"
)

// RecordMovement appends a cash movement to an open shift.
func (s *shiftService) RecordMovement(ctx context.Context, shiftID string, req dto.MovementRequest, actorID string) (*domain.Movement, error) {
	if _, err := s.loadOpenShift(ctx, shiftID); err != nil {
		return nil, err
	}
	if err := validation.ValidateMovement(req.ToMovementData(shiftID)).Err(); err != nil {
		return nil, err
	}

	movement := domain.Movement{
		MovementID:  uuid.NewString(),
		ShiftID:     shiftID,
		Box:         req.Box,
		Type:        req.Type,
		Amount:      *req.Amount,
		Reason:      strings.TrimSpace(req.Reason),
		Moment:      domain.MomentDuring,
		Breakdown:   req.Breakdown,
		AuditFields: domain.NewAuditFields(actorID, s.now()),
	}

	if err := s.movementRepo.CreateMovement(ctx, movement); err != nil {
		if !errors.Is(err, apperrors.ErrShiftClosed) {
			s.LogError(ctx, err, "Failed to record movement", slog.String("shift_id", shiftID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Movement recorded",
		slog.String("shift_id", shiftID),
		slog.String("movement_id", movement.MovementID),
		slog.String("box", string(movement.Box)),
		slog.String("type", string(movement.Type)),
		slog.String("amount", movement.Amount.StringFixed(2)))
	s.metrics.MovementRecorded(movement.Box, movement.Type)
	s.publish(ctx, domain.MovementsChanged, shiftID)
	return &movement, nil
}

// UpdateMovement corrects a movement of a shift that is still open.
func (s *shiftService) UpdateMovement(ctx context.Context, movementID string, req dto.MovementRequest, actorID string) (*domain.Movement, error) {
	existing, err := s.GetMovement(ctx, movementID)
	if err != nil {
		return nil, err
	}
	if _, err := s.loadOpenShift(ctx, existing.ShiftID); err != nil {
		return nil, err
	}
	if err := validation.ValidateMovement(req.ToMovementData(existing.ShiftID)).Err(); err != nil {
		return nil, err
	}

	updated := *existing
	updated.Box = req.Box
	updated.Type = req.Type
	updated.Amount = *req.Amount
	updated.Reason = strings.TrimSpace(req.Reason)
	updated.Breakdown = req.Breakdown
	updated.Touch(actorID, s.now())

	if err := s.movementRepo.UpdateMovement(ctx, updated); err != nil {
		if !errors.Is(err, apperrors.ErrShiftClosed) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update movement", slog.String("movement_id", movementID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Movement updated", slog.String("movement_id", movementID), slog.String("updated_by", actorID))
	s.publish(ctx, domain.MovementsChanged, updated.ShiftID)
	return &updated, nil
}

// DeleteMovement removes a movement. Balances are derived, so nothing else needs adjusting.
func (s *shiftService) DeleteMovement(ctx context.Context, movementID string, actorID string) error {
	existing, err := s.GetMovement(ctx, movementID)
	if err != nil {
		return err
	}
	if err := s.movementRepo.DeleteMovement(ctx, movementID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete movement", slog.String("movement_id", movementID))
		}
		return err
	}

	s.LogInfo(ctx, "Movement deleted",
		slog.String("movement_id", movementID),
		slog.String("shift_id", existing.ShiftID),
		slog.String("deleted_by", actorID))
	s.publish(ctx, domain.MovementsChanged, existing.ShiftID)
	return nil
}

// GetMovement retrieves a movement by its ID.
func (s *shiftService) GetMovement(ctx context.Context, movementID string) (*domain.Movement, error) {
	movement, err := s.movementRepo.FindMovementByID(ctx, movementID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load movement", slog.String("movement_id", movementID))
		}
		return nil, err
	}
	return movement, nil
}

// ListMovements retrieves the movements of a shift in creation order.
func (s *shiftService) ListMovements(ctx context.Context, shiftID string) ([]domain.Movement, error) {
	movements, err := s.movementRepo.ListMovementsByShift(ctx, shiftID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list movements", slog.String("shift_id", shiftID))
		return nil, err
	}
	return movements, nil
}
