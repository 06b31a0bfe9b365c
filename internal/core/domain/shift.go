package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftPeriod identifies which half of the day a shift covers.
type ShiftPeriod string

const (
	PeriodMorning   ShiftPeriod = "morning"
	PeriodAfternoon ShiftPeriod = "afternoon"
)

// IsValid reports whether p is a known period.
func (p ShiftPeriod) IsValid() bool {
	return p == PeriodMorning || p == PeriodAfternoon
}

// BoxID identifies a cash box. BoxOther is only valid for incidents.
type BoxID string

const (
	BoxCounter    BoxID = "counter"
	BoxGamingDesk BoxID = "gaming-desk"
	BoxOther      BoxID = "other"
)

// CashBoxes are the tills every shift tracks, in display order.
var CashBoxes = []BoxID{BoxCounter, BoxGamingDesk}

// IsCashBox reports whether b is one of the tracked tills.
func (b BoxID) IsCashBox() bool {
	return b == BoxCounter || b == BoxGamingDesk
}

// IsIncidentBox reports whether b may be referenced by an incident.
func (b BoxID) IsIncidentBox() bool {
	return b.IsCashBox() || b == BoxOther
}

// Label is the human-readable box name used in messages.
func (b BoxID) Label() string {
	switch b {
	case BoxCounter:
		return "Counter"
	case BoxGamingDesk:
		return "Gaming desk"
	case BoxOther:
		return "Other"
	default:
		return string(b)
	}
}

// Box holds the cash state of one till within a shift.
type Box struct {
	InitialFund            decimal.Decimal  `json:"initialFund"`
	InitialFundBreakdown   *Breakdown       `json:"initialFundBreakdown,omitempty"`
	CollectedCash          *decimal.Decimal `json:"collectedCash,omitempty"`
	CollectedCashBreakdown *Breakdown       `json:"collectedCashBreakdown,omitempty"`
}

// Shift is one cash-register work period.
type Shift struct {
	ShiftID       string        `json:"shiftID"`
	Date          string        `json:"date"` // calendar day, YYYY-MM-DD
	Period        ShiftPeriod   `json:"shiftPeriod"`
	CashierName   string        `json:"cashierName"`
	CashierEmail  string        `json:"cashierEmail,omitempty"`
	Boxes         map[BoxID]Box `json:"boxes"`
	ProductCounts ProductCounts `json:"productCounts"`
	Closed        bool          `json:"closed"`
	ClosedAt      *time.Time    `json:"closedAt,omitempty"`
	Observations  *string       `json:"observations,omitempty"`
	AuditFields
}

// IsOpen is true while the shift accepts movements and incidents.
func (s *Shift) IsOpen() bool {
	return s != nil && !s.Closed
}

// Box returns the state of a box, if the shift tracks it.
func (s *Shift) Box(id BoxID) (Box, bool) {
	if s == nil || s.Boxes == nil {
		return Box{}, false
	}
	b, ok := s.Boxes[id]
	return b, ok
}

// TotalCollected sums the collected cash recorded for every box.
func (s *Shift) TotalCollected() decimal.Decimal {
	total := decimal.Zero
	if s == nil {
		return total
	}
	for _, id := range CashBoxes {
		if b, ok := s.Boxes[id]; ok && b.CollectedCash != nil {
			total = total.Add(*b.CollectedCash)
		}
	}
	return total
}

// ShiftClosure carries everything written by the close transition.
type ShiftClosure struct {
	ClosedAt      time.Time
	ClosedBy      string
	CollectedCash map[BoxID]decimal.Decimal
	Breakdowns    map[BoxID]*Breakdown
	ClosingCounts map[ProductID]int
	Observations  *string
}

// Apply returns a copy of s with the closure written into it.
func (c ShiftClosure) Apply(s Shift) Shift {
	boxes := make(map[BoxID]Box, len(s.Boxes))
	for id, b := range s.Boxes {
		if cash, ok := c.CollectedCash[id]; ok {
			b.CollectedCash = &cash
			b.CollectedCashBreakdown = c.Breakdowns[id]
		}
		boxes[id] = b
	}
	s.Boxes = boxes
	s.ProductCounts.Closing = c.ClosingCounts
	closedAt := c.ClosedAt
	s.Closed = true
	s.ClosedAt = &closedAt
	s.Observations = c.Observations
	s.Touch(c.ClosedBy, c.ClosedAt)
	return s
}

// ListShiftsParams filters and pages shift listings.
type ListShiftsParams struct {
	Limit     int
	NextToken *string
	Date      string
	OnlyOpen  bool
}
