package domain

import "github.com/shopspring/decimal"

// MovementType is the direction of a cash movement.
type MovementType string

const (
	Inflow  MovementType = "inflow"
	Outflow MovementType = "outflow"
)

// IsValid reports whether t is a known direction.
func (t MovementType) IsValid() bool {
	return t == Inflow || t == Outflow
}

// MomentDuring marks movements recorded while the shift is operating.
const MomentDuring = "during"

// Movement is one cash in/out entry against a box of a shift.
type Movement struct {
	MovementID string          `json:"movementID"`
	ShiftID    string          `json:"shiftID"`
	Box        BoxID           `json:"box"`
	Type       MovementType    `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
	Moment     string          `json:"moment"`
	Breakdown  *Breakdown      `json:"breakdown,omitempty"`
	AuditFields
}

// Signed returns the amount with the sign of its direction.
func (m Movement) Signed() decimal.Decimal {
	if m.Type == Outflow {
		return m.Amount.Neg()
	}
	return m.Amount
}
