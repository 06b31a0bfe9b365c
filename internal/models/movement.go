package models

import "github.com/shopspring/decimal"

// Movement is the shift_movements row.
type Movement struct {
	MovementID   string          `db:"movement_id"`
	ShiftID      string          `db:"shift_id"`
	Box          string          `db:"box"`
	MovementType string          `db:"movement_type"`
	Amount       decimal.Decimal `db:"amount"`
	Reason       string          `db:"reason"`
	Moment       string          `db:"moment"`
	Breakdown    []byte          `db:"breakdown"` // nullable JSONB
	AuditFields
}
