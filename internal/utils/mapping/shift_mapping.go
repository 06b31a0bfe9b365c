package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/SscSPs/shift_cashbox_app/internal/models"
)

// ToModelShift converts a domain Shift to a model Shift, encoding the JSONB columns.
func ToModelShift(d domain.Shift) (models.Shift, error) {
	boxes, err := json.Marshal(d.Boxes)
	if err != nil {
		return models.Shift{}, fmt.Errorf("encode boxes of shift %s: %w", d.ShiftID, err)
	}
	counts, err := json.Marshal(d.ProductCounts)
	if err != nil {
		return models.Shift{}, fmt.Errorf("encode product counts of shift %s: %w", d.ShiftID, err)
	}

	var email *string
	if d.CashierEmail != "" {
		e := d.CashierEmail
		email = &e
	}

	return models.Shift{
		ShiftID:       d.ShiftID,
		ShiftDate:     d.Date,
		ShiftPeriod:   string(d.Period),
		CashierName:   d.CashierName,
		CashierEmail:  email,
		Boxes:         boxes,
		ProductCounts: counts,
		Closed:        d.Closed,
		ClosedAt:      d.ClosedAt,
		Observations:  d.Observations,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainShift converts a model Shift to a domain Shift
func ToDomainShift(m models.Shift) (domain.Shift, error) {
	d := domain.Shift{
		ShiftID:      m.ShiftID,
		Date:         m.ShiftDate,
		Period:       domain.ShiftPeriod(m.ShiftPeriod),
		CashierName:  m.CashierName,
		Closed:       m.Closed,
		ClosedAt:     m.ClosedAt,
		Observations: m.Observations,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if m.CashierEmail != nil {
		d.CashierEmail = *m.CashierEmail
	}
	if err := json.Unmarshal(m.Boxes, &d.Boxes); err != nil {
		return domain.Shift{}, fmt.Errorf("decode boxes of shift %s: %w", m.ShiftID, err)
	}
	if err := json.Unmarshal(m.ProductCounts, &d.ProductCounts); err != nil {
		return domain.Shift{}, fmt.Errorf("decode product counts of shift %s: %w", m.ShiftID, err)
	}
	return d, nil
}

// ToDomainShiftSlice converts a slice of model Shifts to a slice of domain Shifts
func ToDomainShiftSlice(ms []models.Shift) ([]domain.Shift, error) {
	ds := make([]domain.Shift, len(ms))
	for i, m := range ms {
		d, err := ToDomainShift(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
