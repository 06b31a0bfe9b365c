package mapping

import (
	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/SscSPs/shift_cashbox_app/internal/models"
)

// ToModelIncident converts a domain Incident to a model Incident
func ToModelIncident(d domain.Incident) models.Incident {
	return models.Incident{
		IncidentID:   d.IncidentID,
		ShiftID:      d.ShiftID,
		IncidentType: string(d.Type),
		CustomType:   d.CustomType,
		Box:          string(d.Box),
		Description:  d.Description,
		Amount:       d.Amount,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainIncident converts a model Incident to a domain Incident
func ToDomainIncident(m models.Incident) domain.Incident {
	return domain.Incident{
		IncidentID:  m.IncidentID,
		ShiftID:     m.ShiftID,
		Type:        domain.IncidentType(m.IncidentType),
		CustomType:  m.CustomType,
		Box:         domain.BoxID(m.Box),
		Description: m.Description,
		Amount:      m.Amount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainIncidentSlice converts a slice of model Incidents to a slice of domain Incidents
func ToDomainIncidentSlice(ms []models.Incident) []domain.Incident {
	ds := make([]domain.Incident, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainIncident(m)
	}
	return ds
}
