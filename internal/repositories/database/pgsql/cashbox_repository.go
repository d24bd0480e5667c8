package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestorsaas/gestor_financeiro_app/internal/apperrors"
	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	portsrepo "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/repositories"
	"github.com/gestorsaas/gestor_financeiro_app/internal/models"
	"github.com/gestorsaas/gestor_financeiro_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCashBoxRepository struct {
	BaseRepository
}

// newPgxCashBoxRepository creates a new repository for cash box data.
func newPgxCashBoxRepository(pool *pgxpool.Pool) portsrepo.CashBoxRepositoryWithTx {
	return &PgxCashBoxRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCashBoxRepository implements portsrepo.CashBoxRepositoryWithTx
var _ portsrepo.CashBoxRepositoryWithTx = (*PgxCashBoxRepository)(nil)

const cashBoxColumns = `cash_box_id, company_id, name, opening_balance, created_at, created_by, last_updated_at, last_updated_by`

func scanCashBox(row pgx.Row) (models.CashBox, error) {
	var m models.CashBox
	err := row.Scan(
		&m.CashBoxID,
		&m.CompanyID,
		&m.Name,
		&m.OpeningBalance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCashBox inserts a new cash box.
func (r *PgxCashBoxRepository) SaveCashBox(ctx context.Context, cashBox domain.CashBox) error {
	m := mapping.ToModelCashBox(cashBox)

	query := `
		INSERT INTO cash_boxes (` + cashBoxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CashBoxID,
		m.CompanyID,
		m.Name,
		m.OpeningBalance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return fmt.Errorf("%w: cash box %q", cerr, m.Name)
		}
		return fmt.Errorf("failed to save cash box %s: %w", m.CashBoxID, err)
	}
	return nil
}

// FindCashBoxByID retrieves a cash box by its ID within a company.
func (r *PgxCashBoxRepository) FindCashBoxByID(ctx context.Context, companyID string, cashBoxID string) (*domain.CashBox, error) {
	query := `
		SELECT ` + cashBoxColumns + `
		FROM cash_boxes
		WHERE company_id = $1 AND cash_box_id = $2;
	`
	m, err := scanCashBox(r.Pool.QueryRow(ctx, query, companyID, cashBoxID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cash box by ID %s: %w", cashBoxID, err)
	}
	d := mapping.ToDomainCashBox(m)
	return &d, nil
}

// ListCashBoxes retrieves the company's cash boxes ordered by name.
func (r *PgxCashBoxRepository) ListCashBoxes(ctx context.Context, companyID string) ([]domain.CashBox, error) {
	query := `
		SELECT ` + cashBoxColumns + `
		FROM cash_boxes
		WHERE company_id = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash boxes for company %s: %w", companyID, err)
	}
	defer rows.Close()

	ms := []models.CashBox{}
	for rows.Next() {
		m, err := scanCashBox(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cash box row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash box rows: %w", err)
	}

	return mapping.ToDomainCashBoxSlice(ms), nil
}

// UpdateCashBox updates an existing cash box.
func (r *PgxCashBoxRepository) UpdateCashBox(ctx context.Context, cashBox domain.CashBox) error {
	m := mapping.ToModelCashBox(cashBox)

	query := `
		UPDATE cash_boxes
		SET name = $3, opening_balance = $4, last_updated_at = $5, last_updated_by = $6
		WHERE company_id = $1 AND cash_box_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.CompanyID,
		m.CashBoxID,
		m.Name,
		m.OpeningBalance,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return fmt.Errorf("%w: cash box %q", cerr, m.Name)
		}
		return fmt.Errorf("failed to update cash box %s: %w", m.CashBoxID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCashBox removes a cash box. Movements keep a protecting foreign key,
// so the delete surfaces ErrConflict while any still reference it.
func (r *PgxCashBoxRepository) DeleteCashBox(ctx context.Context, companyID string, cashBoxID string) error {
	query := `
		DELETE FROM cash_boxes
		WHERE company_id = $1 AND cash_box_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, companyID, cashBoxID)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return fmt.Errorf("%w: cash box %s is still in use", cerr, cashBoxID)
		}
		return fmt.Errorf("failed to delete cash box %s: %w", cashBoxID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
