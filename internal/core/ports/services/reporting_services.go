package services

import (
	"context"
	"time"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// CashFlow generates the period statement of a cash box selection: opening
	// balance carried in, movements in the interval, closing balance.
	CashFlow(ctx context.Context, companyID string, params dto.CashFlowParams) (*domain.CashFlowStatement, *string, error)

	// PrintableStatement generates the printable form of the cash flow, with
	// movements split by side.
	PrintableStatement(ctx context.Context, companyID string, params dto.CashFlowParams) (*domain.PrintableStatement, *string, error)

	// IncomeStatement generates the income statement for a period. When
	// synthetic is true, categories collapse into top-level code groups.
	IncomeStatement(ctx context.Context, companyID string, from, to time.Time, synthetic bool) (*domain.IncomeStatement, error)
}
