package repositories

import (
	"context"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
)

// ParameterReader defines read operations for system parameters
type ParameterReader interface {
	// FindParameterByKey retrieves a parameter by its key within a company.
	FindParameterByKey(ctx context.Context, companyID string, key string) (*domain.SystemParameter, error)

	// ListParameters retrieves the company's parameters ordered by key.
	ListParameters(ctx context.Context, companyID string) ([]domain.SystemParameter, error)
}

// ParameterWriter defines write operations for system parameters
type ParameterWriter interface {
	// UpsertParameter inserts a parameter or replaces the value and description
	// of an existing one with the same key.
	UpsertParameter(ctx context.Context, parameter domain.SystemParameter) error

	// DeleteParameter removes a parameter by key.
	DeleteParameter(ctx context.Context, companyID string, key string) error
}

// ParameterRepositoryFacade combines all parameter-related repository interfaces
type ParameterRepositoryFacade interface {
	ParameterReader
	ParameterWriter
}

// ParameterRepositoryWithTx extends ParameterRepositoryFacade with transaction capabilities
type ParameterRepositoryWithTx interface {
	ParameterRepositoryFacade
	TransactionManager
}
