package repositories

import (
	"context"
	"time"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines operations for retrieving financial report data
type ReportingRepository interface {
	// SumOpeningBalances returns the sum of cash box opening balances, for one
	// box or for all boxes of the company when cashBoxID is nil.
	SumOpeningBalances(ctx context.Context, companyID string, cashBoxID *string) (decimal.Decimal, error)

	// SumMovementsBefore returns the signed sum of movements dated strictly
	// before the given date, narrowed by cash box and category when set.
	SumMovementsBefore(ctx context.Context, companyID string, cashBoxID *string, categoryID *string, before time.Time) (decimal.Decimal, error)

	// ListMovementsBetween retrieves movements dated within [from, to] inclusive,
	// narrowed by cash box and category when set, ordered by date ascending then
	// creation time ascending.
	ListMovementsBetween(ctx context.Context, companyID string, cashBoxID *string, categoryID *string, from, to time.Time) ([]domain.Movement, error)

	// GetIncomeStatementRows returns per-category signed totals of movements
	// dated within [from, to] inclusive, split by movement kind.
	GetIncomeStatementRows(ctx context.Context, companyID string, from, to time.Time) ([]domain.IncomeStatementRow, error)
}
