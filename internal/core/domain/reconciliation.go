package domain

import "github.com/shopspring/decimal"

// ReconciliationStatus is the outcome of comparing declared cash against an expected amount.
type ReconciliationStatus string

const (
	ReconciliationAccepted ReconciliationStatus = "accepted"
	ReconciliationMismatch ReconciliationStatus = "mismatch"
)

// Direction says whether the declared count is above or below what was expected.
type Direction string

const (
	DirectionOver  Direction = "over"
	DirectionUnder Direction = "under"
)

// ReconciliationResult is Accepted or a Mismatch carrying the discrepancy.
// A mismatch only becomes acceptable through AcceptOverride.
type ReconciliationResult struct {
	Box        BoxID                `json:"box,omitempty"`
	Status     ReconciliationStatus `json:"status"`
	Declared   decimal.Decimal      `json:"declared"`
	Expected   decimal.Decimal      `json:"expected"`
	Difference decimal.Decimal      `json:"difference"`
	Direction  Direction            `json:"direction,omitempty"`
	Overridden bool                 `json:"overridden"`
}

// IsMismatch is true when the totals differ beyond tolerance, overridden or not.
func (r ReconciliationResult) IsMismatch() bool {
	return r.Status == ReconciliationMismatch
}

// IsAccepted is true for a matching count or an explicitly overridden mismatch.
func (r ReconciliationResult) IsAccepted() bool {
	return r.Status == ReconciliationAccepted || r.Overridden
}

// AcceptOverride records the caller's explicit confirmation of a mismatch.
func (r ReconciliationResult) AcceptOverride() ReconciliationResult {
	if r.Status == ReconciliationMismatch {
		r.Overridden = true
	}
	return r
}
