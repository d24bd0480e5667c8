package services

import (
	"context"
	"time"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
	"github.com/shopspring/decimal"
)

// CashBoxReaderSvc defines read operations for cash boxes
type CashBoxReaderSvc interface {
	// GetCashBoxByID retrieves a specific cash box by its ID.
	GetCashBoxByID(ctx context.Context, companyID string, cashBoxID string) (*domain.CashBox, error)

	// ListCashBoxes retrieves the company's cash boxes.
	ListCashBoxes(ctx context.Context, companyID string) ([]domain.CashBox, error)
}

// CashBoxWriterSvc defines write operations for cash boxes
type CashBoxWriterSvc interface {
	// CreateCashBox persists a new cash box.
	CreateCashBox(ctx context.Context, companyID string, req dto.CreateCashBoxRequest, creatorUserID string) (*domain.CashBox, error)

	// UpdateCashBox updates a cash box's details.
	UpdateCashBox(ctx context.Context, companyID string, cashBoxID string, req dto.UpdateCashBoxRequest, requestingUserID string) (*domain.CashBox, error)

	// DeleteCashBox removes a cash box, failing while movements still use it.
	DeleteCashBox(ctx context.Context, companyID string, cashBoxID string) error
}

// CashBoxCalculatorSvc defines calculation operations related to cash boxes
type CashBoxCalculatorSvc interface {
	// CalculateRunningBalance returns the opening balance plus all movements of
	// a cash box dated up to and including asOf.
	CalculateRunningBalance(ctx context.Context, companyID string, cashBoxID string, asOf time.Time) (decimal.Decimal, error)
}

// CashBoxSvcFacade combines all cash-box-related service interfaces
type CashBoxSvcFacade interface {
	CashBoxReaderSvc
	CashBoxWriterSvc
	CashBoxCalculatorSvc
}
