package models

import "time"

// Shift is the shifts row. Boxes and ProductCounts are JSONB documents.
type Shift struct {
	ShiftID       string     `db:"shift_id"`
	ShiftDate     string     `db:"shift_date"`
	ShiftPeriod   string     `db:"shift_period"`
	CashierName   string     `db:"cashier_name"`
	CashierEmail  *string    `db:"cashier_email"`
	Boxes         []byte     `db:"boxes"`
	ProductCounts []byte     `db:"product_counts"`
	Closed        bool       `db:"closed"`
	ClosedAt      *time.Time `db:"closed_at"`
	Observations  *string    `db:"observations"`
	AuditFields
}
