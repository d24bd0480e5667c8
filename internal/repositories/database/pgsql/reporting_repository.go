package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	portsrepo "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/repositories"
	"github.com/gestorsaas/gestor_financeiro_app/internal/models"
	"github.com/gestorsaas/gestor_financeiro_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for report aggregates.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// SumOpeningBalances returns the sum of cash box opening balances, for one box
// or for all boxes of the company when cashBoxID is nil.
func (r *PgxReportingRepository) SumOpeningBalances(ctx context.Context, companyID string, cashBoxID *string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(opening_balance), 0)
		FROM cash_boxes
		WHERE company_id = $1 AND ($2::text IS NULL OR cash_box_id = $2);
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, companyID, cashBoxID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum opening balances for company %s: %w", companyID, err)
	}
	return total, nil
}

// SumMovementsBefore returns the signed sum of movements dated strictly before
// the given date. Amounts are stored sign-normalized, so a plain SUM is the
// balance contribution.
func (r *PgxReportingRepository) SumMovementsBefore(ctx context.Context, companyID string, cashBoxID *string, categoryID *string, before time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM movements
		WHERE company_id = $1
		  AND ($2::text IS NULL OR cash_box_id = $2)
		  AND ($3::text IS NULL OR category_id = $3)
		  AND movement_date < $4;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, companyID, cashBoxID, categoryID, before).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum movements before %s for company %s: %w", before.Format("2006-01-02"), companyID, err)
	}
	return total, nil
}

// ListMovementsBetween retrieves movements dated within [from, to] inclusive,
// ordered by date ascending then creation time ascending for statements.
func (r *PgxReportingRepository) ListMovementsBetween(ctx context.Context, companyID string, cashBoxID *string, categoryID *string, from, to time.Time) ([]domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE company_id = $1
		  AND ($2::text IS NULL OR cash_box_id = $2)
		  AND ($3::text IS NULL OR category_id = $3)
		  AND movement_date >= $4 AND movement_date <= $5
		ORDER BY movement_date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, cashBoxID, categoryID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query period movements for company %s: %w", companyID, err)
	}
	defer rows.Close()

	ms := []models.Movement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan period movement row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating period movement rows: %w", err)
	}

	return mapping.ToDomainMovementSlice(ms), nil
}

// GetIncomeStatementRows returns per-category signed totals of the period's
// movements, split by movement kind. Movements without a category are not part
// of the income statement.
func (r *PgxReportingRepository) GetIncomeStatementRows(ctx context.Context, companyID string, from, to time.Time) ([]domain.IncomeStatementRow, error) {
	query := `
		SELECT m.category_id, c.code, c.name, m.kind, SUM(m.amount)
		FROM movements m
		JOIN categories c ON c.category_id = m.category_id
		WHERE m.company_id = $1 AND m.movement_date >= $2 AND m.movement_date <= $3
		GROUP BY m.category_id, c.code, c.name, m.kind
		ORDER BY c.code, c.name;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query income statement rows for company %s: %w", companyID, err)
	}
	defer rows.Close()

	result := []domain.IncomeStatementRow{}
	for rows.Next() {
		var row domain.IncomeStatementRow
		if err := rows.Scan(&row.CategoryID, &row.Code, &row.Name, &row.Kind, &row.Total); err != nil {
			return nil, fmt.Errorf("failed to scan income statement row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating income statement rows: %w", err)
	}

	return result, nil
}
