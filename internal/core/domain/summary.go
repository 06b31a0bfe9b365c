package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BoxSummary is the closing view of one box.
type BoxSummary struct {
	Box           BoxID            `json:"box"`
	InitialFund   decimal.Decimal  `json:"initialFund"`
	CollectedCash *decimal.Decimal `json:"collectedCash,omitempty"`
	InflowTotal   decimal.Decimal  `json:"inflowTotal"`
	OutflowTotal  decimal.Decimal  `json:"outflowTotal"`
	Balance       decimal.Decimal  `json:"balance"`
}

// ShiftSummary is derived from a snapshot of a shift, its movements and incidents.
// It is always rebuilt, never patched.
type ShiftSummary struct {
	ShiftID       string               `json:"shiftID"`
	Date          string               `json:"date"`
	Period        ShiftPeriod          `json:"shiftPeriod"`
	CashierName   string               `json:"cashierName"`
	Closed        bool                 `json:"closed"`
	ClosedAt      *time.Time           `json:"closedAt,omitempty"`
	Observations  *string              `json:"observations,omitempty"`
	Boxes         map[BoxID]BoxSummary `json:"boxes"`
	TotalBalance  decimal.Decimal      `json:"totalBalance"`
	ProductDeltas map[ProductID]int    `json:"productDeltas,omitempty"`
	Incidents     []Incident           `json:"incidents"`
	MovementCount int                  `json:"movementCount"`
}
