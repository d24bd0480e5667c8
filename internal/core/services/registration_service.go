package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gestorsaas/gestor_financeiro_app/internal/apperrors"
	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	portsrepo "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/repositories"
	portssvc "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/services"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
	"github.com/google/uuid"
)

type registrationService struct {
	BaseService
	registrationRepo portsrepo.RegistrationRepositoryFacade
	entryRepo        portsrepo.ScheduledEntryReader
}

// NewRegistrationService creates the counterparty directory service.
func NewRegistrationService(registrationRepo portsrepo.RegistrationRepositoryFacade, entryRepo portsrepo.ScheduledEntryReader) portssvc.RegistrationSvcFacade {
	return &registrationService{registrationRepo: registrationRepo, entryRepo: entryRepo}
}

var _ portssvc.RegistrationSvcFacade = (*registrationService)(nil)

func (s *registrationService) CreateRegistration(ctx context.Context, companyID string, req dto.CreateRegistrationRequest, creatorUserID string) (*domain.Registration, error) {
	status := req.Status
	if status == "" {
		status = domain.RegistrationActive
	}

	now := time.Now()
	registration := domain.Registration{
		RegistrationID: uuid.NewString(),
		CompanyID:      companyID,
		LegalName:      req.LegalName,
		Role:           req.Role,
		PersonType:     req.PersonType,
		CPFCNPJ:        req.CPFCNPJ,
		Email:          req.Email,
		Phone:          req.Phone,
		City:           req.City,
		State:          req.State,
		BirthDate:      req.BirthDate,
		Status:         status,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.registrationRepo.SaveRegistration(ctx, registration); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save registration", slog.String("registration_id", registration.RegistrationID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Registration created", slog.String("registration_id", registration.RegistrationID), slog.String("role", string(registration.Role)))
	return &registration, nil
}

func (s *registrationService) GetRegistrationByID(ctx context.Context, companyID string, registrationID string) (*domain.Registration, error) {
	registration, err := s.registrationRepo.FindRegistrationByID(ctx, companyID, registrationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find registration", slog.String("registration_id", registrationID))
		}
		return nil, err
	}
	return registration, nil
}

func (s *registrationService) ListRegistrations(ctx context.Context, companyID string, params dto.ListRegistrationsParams) ([]domain.Registration, error) {
	filter := portsrepo.RegistrationFilter{
		Role:   params.Role,
		Status: params.Status,
		Search: params.Search,
	}
	registrations, err := s.registrationRepo.ListRegistrations(ctx, companyID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list registrations")
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	return registrations, nil
}

func (s *registrationService) UpdateRegistration(ctx context.Context, companyID string, registrationID string, req dto.UpdateRegistrationRequest, requestingUserID string) (*domain.Registration, error) {
	registration, err := s.registrationRepo.FindRegistrationByID(ctx, companyID, registrationID)
	if err != nil {
		return nil, err
	}

	if req.LegalName != nil {
		registration.LegalName = *req.LegalName
	}
	if req.Role != nil {
		registration.Role = *req.Role
	}
	if req.PersonType != nil {
		registration.PersonType = *req.PersonType
	}
	if req.CPFCNPJ != nil {
		registration.CPFCNPJ = *req.CPFCNPJ
	}
	if req.Email != nil {
		registration.Email = *req.Email
	}
	if req.Phone != nil {
		registration.Phone = *req.Phone
	}
	if req.City != nil {
		registration.City = *req.City
	}
	if req.State != nil {
		registration.State = *req.State
	}
	if req.BirthDate != nil {
		registration.BirthDate = req.BirthDate
	}
	if req.Status != nil {
		registration.Status = *req.Status
	}
	if req.Notes != nil {
		registration.Notes = *req.Notes
	}
	registration.LastUpdatedAt = time.Now()
	registration.LastUpdatedBy = requestingUserID

	if err := s.registrationRepo.UpdateRegistration(ctx, *registration); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update registration", slog.String("registration_id", registrationID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Registration updated", slog.String("registration_id", registrationID))
	return registration, nil
}

// DeleteRegistration removes a registration unless scheduled entries still
// reference it.
func (s *registrationService) DeleteRegistration(ctx context.Context, companyID string, registrationID string) error {
	count, err := s.entryRepo.CountEntriesByRegistration(ctx, companyID, registrationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check registration usage", slog.String("registration_id", registrationID))
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: registration has %d scheduled entries", apperrors.ErrConflict, count)
	}

	if err := s.registrationRepo.DeleteRegistration(ctx, companyID, registrationID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete registration", slog.String("registration_id", registrationID))
		}
		return err
	}

	s.LogInfo(ctx, "Registration deleted", slog.String("registration_id", registrationID))
	return nil
}
