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

type parameterService struct {
	BaseService
	parameterRepo portsrepo.ParameterRepositoryFacade
	cashBoxRepo   portsrepo.CashBoxReader
}

// NewParameterService creates the system parameter service.
func NewParameterService(parameterRepo portsrepo.ParameterRepositoryFacade, cashBoxRepo portsrepo.CashBoxReader) portssvc.ParameterSvcFacade {
	return &parameterService{parameterRepo: parameterRepo, cashBoxRepo: cashBoxRepo}
}

var _ portssvc.ParameterSvcFacade = (*parameterService)(nil)

func (s *parameterService) GetParameter(ctx context.Context, companyID string, key string) (*domain.SystemParameter, error) {
	parameter, err := s.parameterRepo.FindParameterByKey(ctx, companyID, key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find parameter", slog.String("key", key))
		}
		return nil, err
	}
	return parameter, nil
}

func (s *parameterService) ListParameters(ctx context.Context, companyID string) ([]domain.SystemParameter, error) {
	parameters, err := s.parameterRepo.ListParameters(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parameters")
		return nil, fmt.Errorf("failed to list parameters: %w", err)
	}
	return parameters, nil
}

func (s *parameterService) SetParameter(ctx context.Context, companyID string, req dto.SetParameterRequest, requestingUserID string) (*domain.SystemParameter, error) {
	// The default cash box parameter must point at a real box of this company.
	if req.Key == domain.ParamDefaultCashBoxID {
		if _, err := s.cashBoxRepo.FindCashBoxByID(ctx, companyID, req.Value); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: cash box %s does not exist", apperrors.ErrValidation, req.Value)
			}
			return nil, err
		}
	}

	now := time.Now()
	parameter := domain.SystemParameter{
		ParameterID: uuid.NewString(),
		CompanyID:   companyID,
		Key:         req.Key,
		Value:       req.Value,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.parameterRepo.UpsertParameter(ctx, parameter); err != nil {
		s.LogError(ctx, err, "Failed to upsert parameter", slog.String("key", req.Key))
		return nil, err
	}

	s.LogInfo(ctx, "Parameter set", slog.String("key", req.Key))
	return &parameter, nil
}

func (s *parameterService) DeleteParameter(ctx context.Context, companyID string, key string) error {
	if err := s.parameterRepo.DeleteParameter(ctx, companyID, key); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete parameter", slog.String("key", key))
		}
		return err
	}
	s.LogInfo(ctx, "Parameter deleted", slog.String("key", key))
	return nil
}

// ResolveDefaultCashBoxID looks up the default cash box parameter and checks
// the box still exists. A missing parameter or a stale reference resolves to
// nil rather than an error, leaving the caller to decide whether a default is
// required.
func (s *parameterService) ResolveDefaultCashBoxID(ctx context.Context, companyID string) (*string, error) {
	parameter, err := s.parameterRepo.FindParameterByKey(ctx, companyID, domain.ParamDefaultCashBoxID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if parameter.Value == "" {
		return nil, nil
	}

	if _, err := s.cashBoxRepo.FindCashBoxByID(ctx, companyID, parameter.Value); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Default cash box parameter points at a missing box", slog.String("cash_box_id", parameter.Value))
			return nil, nil
		}
		return nil, err
	}

	id := parameter.Value
	return &id, nil
}
