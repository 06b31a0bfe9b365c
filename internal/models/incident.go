package models

import "github.com/shopspring/decimal"

// Incident is the shift_incidents row.
type Incident struct {
	IncidentID   string           `db:"incident_id"`
	ShiftID      string           `db:"shift_id"`
	IncidentType string           `db:"incident_type"`
	CustomType   *string          `db:"custom_type"`
	Box          string           `db:"box"`
	Description  string           `db:"description"`
	Amount       *decimal.Decimal `db:"amount"`
	AuditFields
}
