package dto

import (
	"time"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/SscSPs/shift_cashbox_app/internal/core/validation"
	"github.com/shopspring/decimal"
)

// IncidentRequest defines the data needed to record an incident.
type IncidentRequest struct {
	Type        domain.IncidentType `json:"type" example:"incorrect-payment-method"`
	CustomType  *string             `json:"customType,omitempty" binding:"omitempty,max=120"`
	Box         domain.BoxID        `json:"box" example:"counter"`
	Description string              `json:"description" binding:"max=2000"`
	Amount      *decimal.Decimal    `json:"amount,omitempty" swaggertype:"string"`
}

// ToIncidentData converts the request into the form checked by validation.ValidateIncident.
func (r IncidentRequest) ToIncidentData(shiftID string) validation.IncidentData {
	return validation.IncidentData{
		ShiftID:     shiftID,
		Type:        r.Type,
		CustomType:  r.CustomType,
		Box:         r.Box,
		Description: r.Description,
		Amount:      r.Amount,
	}
}

// IncidentResponse defines the data returned for an incident.
type IncidentResponse struct {
	IncidentID  string              `json:"incidentID"`
	ShiftID     string              `json:"shiftID"`
	Type        domain.IncidentType `json:"type"`
	CustomType  *string             `json:"customType,omitempty"`
	DisplayType string              `json:"displayType"`
	Box         domain.BoxID        `json:"box"`
	Description string              `json:"description"`
	Amount      *decimal.Decimal    `json:"amount,omitempty" swaggertype:"string"`
	CreatedAt   time.Time           `json:"createdAt"`
	CreatedBy   string              `json:"createdBy"`
}

// ToIncidentResponse converts a domain.Incident to IncidentResponse DTO.
func ToIncidentResponse(i *domain.Incident) IncidentResponse {
	return IncidentResponse{
		IncidentID:  i.IncidentID,
		ShiftID:     i.ShiftID,
		Type:        i.Type,
		CustomType:  i.CustomType,
		DisplayType: i.DisplayType(),
		Box:         i.Box,
		Description: i.Description,
		Amount:      i.Amount,
		CreatedAt:   i.CreatedAt,
		CreatedBy:   i.CreatedBy,
	}
}

// ToIncidentResponses converts a slice of domain.Incident to []IncidentResponse.
func ToIncidentResponses(incidents []domain.Incident) []IncidentResponse {
	responses := make([]IncidentResponse, len(incidents))
	for i := range incidents {
		responses[i] = ToIncidentResponse(&incidents[i])
	}
	return responses
}
