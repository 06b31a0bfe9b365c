package dto

import (
	"time"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/SscSPs/shift_cashbox_app/internal/core/validation"
	"github.com/shopspring/decimal"
)

// MovementRequest defines the data needed to record or edit a cash movement.
type MovementRequest struct {
	Box       domain.BoxID        `json:"box" example:"counter"`
	Type      domain.MovementType `json:"type" example:"inflow"`
	Amount    *decimal.Decimal    `json:"amount" swaggertype:"string" example:"200.00"`
	Reason    string              `json:"reason" binding:"max=500" example:"sale"`
	Breakdown *domain.Breakdown   `json:"breakdown,omitempty"`
}

// ToMovementData converts the request into the form checked by validation.ValidateMovement.
func (r MovementRequest) ToMovementData(shiftID string) validation.MovementData {
	return validation.MovementData{
		ShiftID:   shiftID,
		Box:       r.Box,
		Type:      r.Type,
		Amount:    r.Amount,
		Reason:    r.Reason,
		Breakdown: r.Breakdown,
	}
}

// MovementResponse defines the data returned for a movement.
type MovementResponse struct {
	MovementID string              `json:"movementID"`
	ShiftID    string              `json:"shiftID"`
	Box        domain.BoxID        `json:"box"`
	Type       domain.MovementType `json:"type"`
	Amount     decimal.Decimal     `json:"amount" swaggertype:"string"`
	Reason     string              `json:"reason"`
	Moment     string              `json:"moment"`
	Breakdown  *domain.Breakdown   `json:"breakdown,omitempty"`
	CreatedAt  time.Time           `json:"createdAt"`
	CreatedBy  string              `json:"createdBy"`
}

// ToMovementResponse converts a domain.Movement to MovementResponse DTO.
func ToMovementResponse(m *domain.Movement) MovementResponse {
	return MovementResponse{
		MovementID: m.MovementID,
		ShiftID:    m.ShiftID,
		Box:        m.Box,
		Type:       m.Type,
		Amount:     m.Amount,
		Reason:     m.Reason,
		Moment:     m.Moment,
		Breakdown:  m.Breakdown,
		CreatedAt:  m.CreatedAt,
		CreatedBy:  m.CreatedBy,
	}
}

// ToMovementResponses converts a slice of domain.Movement to []MovementResponse.
func ToMovementResponses(movements []domain.Movement) []MovementResponse {
	responses := make([]MovementResponse, len(movements))
	for i := range movements {
		responses[i] = ToMovementResponse(&movements[i])
	}
	return responses
}
