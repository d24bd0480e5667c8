package repositories

import (
	"context"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
)

// RegistrationFilter narrows registration listings. Nil fields are ignored.
type RegistrationFilter struct {
	Role   *domain.RegistrationRole
	Status *domain.RegistrationStatus
	// Search matches legal name or CPF/CNPJ, case insensitive.
	Search string
}

// RegistrationReader defines read operations for the counterparty directory
type RegistrationReader interface {
	// FindRegistrationByID retrieves a registration by its identifier within a company.
	FindRegistrationByID(ctx context.Context, companyID string, registrationID string) (*domain.Registration, error)

	// ListRegistrations retrieves the company's registrations matching the filter,
	// ordered by legal name.
	ListRegistrations(ctx context.Context, companyID string, filter RegistrationFilter) ([]domain.Registration, error)
}

// RegistrationWriter defines write operations for the counterparty directory
type RegistrationWriter interface {
	// SaveRegistration persists a new registration.
	SaveRegistration(ctx context.Context, registration domain.Registration) error

	// UpdateRegistration updates an existing registration's details.
	UpdateRegistration(ctx context.Context, registration domain.Registration) error

	// DeleteRegistration removes a registration. The delete is rejected while
	// scheduled entries still reference it.
	DeleteRegistration(ctx context.Context, companyID string, registrationID string) error
}

// RegistrationRepositoryFacade combines all registration-related repository interfaces
type RegistrationRepositoryFacade interface {
	RegistrationReader
	RegistrationWriter
}

// RegistrationRepositoryWithTx extends RegistrationRepositoryFacade with transaction capabilities
type RegistrationRepositoryWithTx interface {
	RegistrationRepositoryFacade
	TransactionManager
}
