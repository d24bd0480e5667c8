package mapping

import (
	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	"github.com/gestorsaas/gestor_financeiro_app/internal/models"
)

// ToModelRegistration converts a domain Registration to a model Registration
func ToModelRegistration(d domain.Registration) models.Registration {
	return models.Registration{
		RegistrationID: d.RegistrationID,
		CompanyID:      d.CompanyID,
		LegalName:      d.LegalName,
		Role:           models.RegistrationRole(d.Role),
		PersonType:     models.PersonType(d.PersonType),
		CPFCNPJ:        d.CPFCNPJ,
		Email:          d.Email,
		Phone:          d.Phone,
		City:           d.City,
		State:          d.State,
		BirthDate:      d.BirthDate,
		Status:         models.RegistrationStatus(d.Status),
		Notes:          d.Notes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRegistration converts a model Registration to a domain Registration
func ToDomainRegistration(m models.Registration) domain.Registration {
	return domain.Registration{
		RegistrationID: m.RegistrationID,
		CompanyID:      m.CompanyID,
		LegalName:      m.LegalName,
		Role:           domain.RegistrationRole(m.Role),
		PersonType:     domain.PersonType(m.PersonType),
		CPFCNPJ:        m.CPFCNPJ,
		Email:          m.Email,
		Phone:          m.Phone,
		City:           m.City,
		State:          m.State,
		BirthDate:      m.BirthDate,
		Status:         domain.RegistrationStatus(m.Status),
		Notes:          m.Notes,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRegistrationSlice converts a slice of model Registrations to domain Registrations
func ToDomainRegistrationSlice(ms []models.Registration) []domain.Registration {
	ds := make([]domain.Registration, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRegistration(m)
	}
	return ds
}
