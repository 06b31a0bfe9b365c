package dto

import (
	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EvaluateBreakdownRequest asks for the total of a cash count.
type EvaluateBreakdownRequest struct {
	Breakdown *domain.Breakdown `json:"breakdown" binding:"required"`
}

// BreakdownResponse is a cash count with its derived figures.
type BreakdownResponse struct {
	Counts map[string]int             `json:"counts"`
	Total  decimal.Decimal            `json:"total" swaggertype:"string"`
	Bills  []domain.DenominationCount `json:"bills"`
	Coins  []domain.DenominationCount `json:"coins"`
	Text   string                     `json:"text"`
}

// ToBreakdownResponse converts a domain.Breakdown to BreakdownResponse DTO.
func ToBreakdownResponse(b *domain.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		Counts: b.Counts,
		Total:  b.Sum(),
		Bills:  b.Bills(),
		Coins:  b.Coins(),
		Text:   b.Format(),
	}
}
