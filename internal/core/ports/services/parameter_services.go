package services

import (
	"context"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
)

// ParameterSvcFacade defines operations for tenant-scoped system parameters
type ParameterSvcFacade interface {
	// GetParameter retrieves a parameter by key.
	GetParameter(ctx context.Context, companyID string, key string) (*domain.SystemParameter, error)

	// ListParameters retrieves the company's parameters.
	ListParameters(ctx context.Context, companyID string) ([]domain.SystemParameter, error)

	// SetParameter creates or replaces a parameter.
	SetParameter(ctx context.Context, companyID string, req dto.SetParameterRequest, requestingUserID string) (*domain.SystemParameter, error)

	// DeleteParameter removes a parameter by key.
	DeleteParameter(ctx context.Context, companyID string, key string) error

	// ResolveDefaultCashBoxID returns the cash box named by the default cash
	// box parameter, or nil when the parameter is unset or points at a box
	// that no longer exists.
	ResolveDefaultCashBoxID(ctx context.Context, companyID string) (*string, error)
}
