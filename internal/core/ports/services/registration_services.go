package services

import (
	"context"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
)

// RegistrationReaderSvc defines read operations for the counterparty directory
type RegistrationReaderSvc interface {
	// GetRegistrationByID retrieves a specific registration by its ID.
	GetRegistrationByID(ctx context.Context, companyID string, registrationID string) (*domain.Registration, error)

	// ListRegistrations retrieves the company's registrations matching the params.
	ListRegistrations(ctx context.Context, companyID string, params dto.ListRegistrationsParams) ([]domain.Registration, error)
}

// RegistrationWriterSvc defines write operations for the counterparty directory
type RegistrationWriterSvc interface {
	// CreateRegistration persists a new registration.
	CreateRegistration(ctx context.Context, companyID string, req dto.CreateRegistrationRequest, creatorUserID string) (*domain.Registration, error)

	// UpdateRegistration updates a registration's details.
	UpdateRegistration(ctx context.Context, companyID string, registrationID string, req dto.UpdateRegistrationRequest, requestingUserID string) (*domain.Registration, error)

	// DeleteRegistration removes a registration, failing while scheduled entries still use it.
	DeleteRegistration(ctx context.Context, companyID string, registrationID string) error
}

// RegistrationSvcFacade combines all registration-related service interfaces
type RegistrationSvcFacade interface {
	RegistrationReaderSvc
	RegistrationWriterSvc
}
