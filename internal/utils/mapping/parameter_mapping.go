package mapping

import (
	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	"github.com/gestorsaas/gestor_financeiro_app/internal/models"
)

// ToModelSystemParameter converts a domain SystemParameter to a model SystemParameter
func ToModelSystemParameter(d domain.SystemParameter) models.SystemParameter {
	return models.SystemParameter{
		ParameterID: d.ParameterID,
		CompanyID:   d.CompanyID,
		Key:         d.Key,
		Value:       d.Value,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSystemParameter converts a model SystemParameter to a domain SystemParameter
func ToDomainSystemParameter(m models.SystemParameter) domain.SystemParameter {
	return domain.SystemParameter{
		ParameterID: m.ParameterID,
		CompanyID:   m.CompanyID,
		Key:         m.Key,
		Value:       m.Value,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSystemParameterSlice converts a slice of model SystemParameters to domain SystemParameters
func ToDomainSystemParameterSlice(ms []models.SystemParameter) []domain.SystemParameter {
	ds := make([]domain.SystemParameter, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSystemParameter(m)
	}
	return ds
}
