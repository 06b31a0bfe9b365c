package domain

import "github.com/shopspring/decimal"

// IncidentType classifies an anomaly. Any other non-empty value is kept as free text.
type IncidentType string

const (
	IncidentIncorrectPaymentMethod  IncidentType = "incorrect-payment-method"
	IncidentCustomerRejectsPurchase IncidentType = "customer-rejects-purchase"
	IncidentIncompletePayment       IncidentType = "customer-incomplete-payment"
	IncidentExternalContingencySale IncidentType = "external-contingency-sale"
	IncidentOther                   IncidentType = "other"
)

// IncidentTypes lists the predefined incident types.
var IncidentTypes = []IncidentType{
	IncidentIncorrectPaymentMethod,
	IncidentCustomerRejectsPurchase,
	IncidentIncompletePayment,
	IncidentExternalContingencySale,
	IncidentOther,
}

// Incident is an anomaly report tied to a shift. Incidents never affect balances.
type Incident struct {
	IncidentID  string           `json:"incidentID"`
	ShiftID     string           `json:"shiftID"`
	Type        IncidentType     `json:"type"`
	CustomType  *string          `json:"customType,omitempty"`
	Box         BoxID            `json:"box"`
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	AuditFields
}

// DisplayType prefers the custom type when one was given.
func (i Incident) DisplayType() string {
	if i.CustomType != nil && *i.CustomType != "" {
		return *i.CustomType
	}
	return string(i.Type)
}
