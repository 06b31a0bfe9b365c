package dto

import (
	"time"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/SscSPs/shift_cashbox_app/internal/core/validation"
	"github.com/shopspring/decimal"
)

// BoxOpeningRequest is the opening fund declared for one box.
type BoxOpeningRequest struct {
	InitialFund          *decimal.Decimal  `json:"initialFund" swaggertype:"string" example:"1000.00"`
	InitialFundBreakdown *domain.Breakdown `json:"initialFundBreakdown,omitempty"`
}

// StartShiftRequest defines the data needed to open a shift.
// Business rules are checked by the validation package so every violation is reported at once.
type StartShiftRequest struct {
	Date                 string                             `json:"date" example:"2024-01-01"`
	ShiftPeriod          domain.ShiftPeriod                 `json:"shiftPeriod" example:"morning"`
	CashierName          string                             `json:"cashierName" binding:"max=120"`
	CashierEmail         string                             `json:"cashierEmail" binding:"max=254"`
	Boxes                map[domain.BoxID]BoxOpeningRequest `json:"boxes"`
	OpeningProductCounts map[domain.ProductID]int           `json:"openingProductCounts"`
}

// ToShiftStart converts the request into the form checked by validation.ValidateShiftStart.
func (r StartShiftRequest) ToShiftStart() validation.ShiftStart {
	boxes := make(map[domain.BoxID]validation.BoxOpening, len(r.Boxes))
	for id, b := range r.Boxes {
		boxes[id] = validation.BoxOpening{InitialFund: b.InitialFund, InitialFundBreakdown: b.InitialFundBreakdown}
	}
	return validation.ShiftStart{
		Date:          r.Date,
		Period:        r.ShiftPeriod,
		CashierName:   r.CashierName,
		CashierEmail:  r.CashierEmail,
		Boxes:         boxes,
		OpeningCounts: r.OpeningProductCounts,
	}
}

// CloseBoxRequest is the cash counted in one box at close.
type CloseBoxRequest struct {
	CollectedCash          *decimal.Decimal  `json:"collectedCash" swaggertype:"string" example:"1150.00"`
	CollectedCashBreakdown *domain.Breakdown `json:"collectedCashBreakdown,omitempty"`
	// AcceptOverride confirms a reported mismatch for this box.
	AcceptOverride bool `json:"acceptOverride"`
}

// CloseShiftRequest defines the data needed to close a shift.
type CloseShiftRequest struct {
	Boxes                map[domain.BoxID]CloseBoxRequest `json:"boxes"`
	ClosingProductCounts map[domain.ProductID]int         `json:"closingProductCounts"`
	Observations         *string                          `json:"observations,omitempty" binding:"omitempty,max=2000"`
}

// CollectedCash extracts the declared amounts per box.
func (r CloseShiftRequest) CollectedCash() map[domain.BoxID]*decimal.Decimal {
	out := make(map[domain.BoxID]*decimal.Decimal, len(r.Boxes))
	for id, b := range r.Boxes {
		out[id] = b.CollectedCash
	}
	return out
}

// ReconcileRequest asks whether a declared breakdown matches an expected amount.
type ReconcileRequest struct {
	Box       domain.BoxID      `json:"box" binding:"required" example:"counter"`
	Breakdown *domain.Breakdown `json:"breakdown" binding:"required"`
	Expected  *decimal.Decimal  `json:"expected" binding:"required" swaggertype:"string" example:"345.00"`
}

// ListShiftsParams defines the query parameters for listing shifts.
type ListShiftsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
	Date      string  `form:"date" binding:"omitempty,datetime=2006-01-02"`
	OnlyOpen  bool    `form:"open"`
}

// ShiftResponse defines the data returned for a shift.
type ShiftResponse struct {
	ShiftID       string                      `json:"shiftID"`
	Date          string                      `json:"date"`
	ShiftPeriod   domain.ShiftPeriod          `json:"shiftPeriod"`
	CashierName   string                      `json:"cashierName"`
	CashierEmail  string                      `json:"cashierEmail,omitempty"`
	Boxes         map[domain.BoxID]domain.Box `json:"boxes"`
	ProductCounts domain.ProductCounts        `json:"productCounts"`
	Closed        bool                        `json:"closed"`
	ClosedAt      *time.Time                  `json:"closedAt,omitempty"`
	Observations  *string                     `json:"observations,omitempty"`
	CreatedAt     time.Time                   `json:"createdAt"`
	CreatedBy     string                      `json:"createdBy"`
	LastUpdatedAt time.Time                   `json:"lastUpdatedAt"`
	LastUpdatedBy string                      `json:"lastUpdatedBy"`
}

// ListShiftsResponse is one page of shifts.
type ListShiftsResponse struct {
	Shifts    []ShiftResponse `json:"shifts"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// CloseShiftResponse returns the closed shift and the reconciliation outcome per box.
type CloseShiftResponse struct {
	Shift           ShiftResponse                 `json:"shift"`
	Reconciliations []domain.ReconciliationResult `json:"reconciliations"`
}

// BoxBalanceResponse is the running balance of one box.
type BoxBalanceResponse struct {
	ShiftID string          `json:"shiftID"`
	Box     domain.BoxID    `json:"box"`
	Balance decimal.Decimal `json:"balance" swaggertype:"string"`
}

// ToShiftResponse converts a domain.Shift to ShiftResponse DTO.
func ToShiftResponse(s *domain.Shift) ShiftResponse {
	return ShiftResponse{
		ShiftID:       s.ShiftID,
		Date:          s.Date,
		ShiftPeriod:   s.Period,
		CashierName:   s.CashierName,
		CashierEmail:  s.CashierEmail,
		Boxes:         s.Boxes,
		ProductCounts: s.ProductCounts,
		Closed:        s.Closed,
		ClosedAt:      s.ClosedAt,
		Observations:  s.Observations,
		CreatedAt:     s.CreatedAt,
		CreatedBy:     s.CreatedBy,
		LastUpdatedAt: s.LastUpdatedAt,
		LastUpdatedBy: s.LastUpdatedBy,
	}
}

// ToShiftResponses converts a slice of domain.Shift to []ShiftResponse.
func ToShiftResponses(shifts []domain.Shift) []ShiftResponse {
	responses := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		responses[i] = ToShiftResponse(&shifts[i])
	}
	return responses
}
