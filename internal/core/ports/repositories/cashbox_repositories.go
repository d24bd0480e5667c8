package repositories

import (
	"context"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
)

// CashBoxReader defines read operations for cash boxes
type CashBoxReader interface {
	// FindCashBoxByID retrieves a cash box by its identifier within a company.
	FindCashBoxByID(ctx context.Context, companyID string, cashBoxID string) (*domain.CashBox, error)

	// ListCashBoxes retrieves the company's cash boxes ordered by name.
	ListCashBoxes(ctx context.Context, companyID string) ([]domain.CashBox, error)
}

// CashBoxWriter defines write operations for cash boxes
type CashBoxWriter interface {
	// SaveCashBox persists a new cash box.
	SaveCashBox(ctx context.Context, cashBox domain.CashBox) error

	// UpdateCashBox updates an existing cash box's details.
	UpdateCashBox(ctx context.Context, cashBox domain.CashBox) error

	// DeleteCashBox removes a cash box. The delete is rejected while movements
	// still reference it.
	DeleteCashBox(ctx context.Context, companyID string, cashBoxID string) error
}

// CashBoxRepositoryFacade combines all cash-box-related repository interfaces
type CashBoxRepositoryFacade interface {
	CashBoxReader
	CashBoxWriter
}

// CashBoxRepositoryWithTx extends CashBoxRepositoryFacade with transaction capabilities
type CashBoxRepositoryWithTx interface {
	CashBoxRepositoryFacade
	TransactionManager
}
