package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/SscSPs/shift_cashbox_app/internal/models"
)

// ToModelMovement converts a domain Movement to a model Movement
func ToModelMovement(d domain.Movement) (models.Movement, error) {
	var breakdown []byte
	if d.Breakdown != nil {
		raw, err := json.Marshal(d.Breakdown)
		if err != nil {
			return models.Movement{}, fmt.Errorf("encode breakdown of movement %s: %w", d.MovementID, err)
		}
		breakdown = raw
	}
	return models.Movement{
		MovementID:   d.MovementID,
		ShiftID:      d.ShiftID,
		Box:          string(d.Box),
		MovementType: string(d.Type),
		Amount:       d.Amount,
		Reason:       d.Reason,
		Moment:       d.Moment,
		Breakdown:    breakdown,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainMovement converts a model Movement to a domain Movement
func ToDomainMovement(m models.Movement) (domain.Movement, error) {
	d := domain.Movement{
		MovementID:  m.MovementID,
		ShiftID:     m.ShiftID,
		Box:         domain.BoxID(m.Box),
		Type:        domain.MovementType(m.MovementType),
		Amount:      m.Amount,
		Reason:      m.Reason,
		Moment:      m.Moment,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if len(m.Breakdown) > 0 {
		var b domain.Breakdown
		if err := json.Unmarshal(m.Breakdown, &b); err != nil {
			return domain.Movement{}, fmt.Errorf("decode breakdown of movement %s: %w", m.MovementID, err)
		}
		d.Breakdown = &b
	}
	return d, nil
}

// ToDomainMovementSlice converts a slice of model Movements to a slice of domain Movements
func ToDomainMovementSlice(ms []models.Movement) ([]domain.Movement, error) {
	ds := make([]domain.Movement, len(ms))
	for i, m := range ms {
		d, err := ToDomainMovement(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
