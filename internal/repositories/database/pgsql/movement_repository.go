package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gestorsaas/gestor_financeiro_app/internal/apperrors"
	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	portsrepo "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/repositories"
	"github.com/gestorsaas/gestor_financeiro_app/internal/models"
	"github.com/gestorsaas/gestor_financeiro_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMovementRepository struct {
	BaseRepository
}

// newPgxMovementRepository creates a new repository for movement data.
func newPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepositoryWithTx {
	return &PgxMovementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxMovementRepository implements portsrepo.MovementRepositoryWithTx
var _ portsrepo.MovementRepositoryWithTx = (*PgxMovementRepository)(nil)

const movementColumns = `movement_id, company_id, cash_box_id, category_id, origin_entry_id, movement_date, description, amount, kind, created_at, created_by, last_updated_at, last_updated_by`

const insertMovementSQL = `
	INSERT INTO movements (` + movementColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`

func scanMovement(row pgx.Row) (models.Movement, error) {
	var m models.Movement
	err := row.Scan(
		&m.MovementID,
		&m.CompanyID,
		&m.CashBoxID,
		&m.CategoryID,
		&m.OriginEntryID,
		&m.MovementDate,
		&m.Description,
		&m.Amount,
		&m.Kind,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func movementInsertArgs(m models.Movement) []interface{} {
	return []interface{}{
		m.MovementID,
		m.CompanyID,
		m.CashBoxID,
		m.CategoryID,
		m.OriginEntryID,
		m.MovementDate,
		m.Description,
		m.Amount,
		m.Kind,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

// SaveMovement inserts a new movement.
func (r *PgxMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) error {
	m := mapping.ToModelMovement(movement)

	_, err := r.Pool.Exec(ctx, insertMovementSQL, movementInsertArgs(m)...)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return fmt.Errorf("%w: movement %s", cerr, m.MovementID)
		}
		return fmt.Errorf("failed to save movement %s: %w", m.MovementID, err)
	}
	return nil
}

// FindMovementByID retrieves a movement by its ID within a company.
func (r *PgxMovementRepository) FindMovementByID(ctx context.Context, companyID string, movementID string) (*domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE company_id = $1 AND movement_id = $2;
	`
	m, err := scanMovement(r.Pool.QueryRow(ctx, query, companyID, movementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find movement by ID %s: %w", movementID, err)
	}
	d := mapping.ToDomainMovement(m)
	return &d, nil
}

// FindMovementByOriginEntry retrieves the settlement movement linked to a
// scheduled entry, if one exists.
func (r *PgxMovementRepository) FindMovementByOriginEntry(ctx context.Context, companyID string, entryID string) (*domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE company_id = $1 AND origin_entry_id = $2;
	`
	m, err := scanMovement(r.Pool.QueryRow(ctx, query, companyID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find movement by origin entry %s: %w", entryID, err)
	}
	d := mapping.ToDomainMovement(m)
	return &d, nil
}

// ListMovements retrieves movements matching the filter, newest first.
func (r *PgxMovementRepository) ListMovements(ctx context.Context, companyID string, filter portsrepo.MovementFilter) ([]domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE company_id = $1
		  AND ($2::text IS NULL OR cash_box_id = $2)
		  AND ($3::text IS NULL OR category_id = $3)
		  AND ($4::date IS NULL OR movement_date >= $4)
		  AND ($5::date IS NULL OR movement_date <= $5)
		ORDER BY movement_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, filter.CashBoxID, filter.CategoryID, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements for company %s: %w", companyID, err)
	}
	defer rows.Close()

	ms := []models.Movement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movement row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movement rows: %w", err)
	}

	return mapping.ToDomainMovementSlice(ms), nil
}

// CountMovementsByCashBox returns how many movements reference a cash box.
func (r *PgxMovementRepository) CountMovementsByCashBox(ctx context.Context, companyID string, cashBoxID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM movements WHERE company_id = $1 AND cash_box_id = $2;`
	if err := r.Pool.QueryRow(ctx, query, companyID, cashBoxID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count movements for cash box %s: %w", cashBoxID, err)
	}
	return count, nil
}

// CountMovementsByCategory returns how many movements reference a category.
func (r *PgxMovementRepository) CountMovementsByCategory(ctx context.Context, companyID string, categoryID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM movements WHERE company_id = $1 AND category_id = $2;`
	if err := r.Pool.QueryRow(ctx, query, companyID, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count movements for category %s: %w", categoryID, err)
	}
	return count, nil
}

// UpdateMovement updates an existing movement.
func (r *PgxMovementRepository) UpdateMovement(ctx context.Context, movement domain.Movement) error {
	m := mapping.ToModelMovement(movement)

	query := `
		UPDATE movements
		SET cash_box_id = $3, category_id = $4, movement_date = $5, description = $6,
		    amount = $7, kind = $8, last_updated_at = $9, last_updated_by = $10
		WHERE company_id = $1 AND movement_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.CompanyID,
		m.MovementID,
		m.CashBoxID,
		m.CategoryID,
		m.MovementDate,
		m.Description,
		m.Amount,
		m.Kind,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return fmt.Errorf("%w: movement %s", cerr, m.MovementID)
		}
		return fmt.Errorf("failed to update movement %s: %w", m.MovementID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteMovement removes a movement without touching any linked entry.
func (r *PgxMovementRepository) DeleteMovement(ctx context.Context, companyID string, movementID string) error {
	query := `
		DELETE FROM movements
		WHERE company_id = $1 AND movement_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, companyID, movementID)
	if err != nil {
		return fmt.Errorf("failed to delete movement %s: %w", movementID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteMovementAndReopenEntry removes a settlement movement and reverts its
// origin entry to pending in one transaction, so the payable/receivable shows
// up as open again the moment its payment record disappears.
func (r *PgxMovementRepository) DeleteMovementAndReopenEntry(ctx context.Context, movement domain.Movement, updatedByUserID string, updatedAt time.Time) error {
	if movement.OriginEntryID == nil {
		return fmt.Errorf("%w: movement %s has no origin entry", apperrors.ErrValidation, movement.MovementID)
	}

	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin reversal transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "Failed to rollback reversal transaction", "error", rbErr)
		}
	}()

	deleteQuery := `
		DELETE FROM movements
		WHERE company_id = $1 AND movement_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, deleteQuery, movement.CompanyID, movement.MovementID)
	if err != nil {
		return fmt.Errorf("failed to delete movement %s: %w", movement.MovementID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	reopenQuery := `
		UPDATE scheduled_entries
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE company_id = $1 AND entry_id = $2;
	`
	cmdTag, err = tx.Exec(ctx, reopenQuery,
		movement.CompanyID,
		*movement.OriginEntryID,
		domain.EntryPending,
		updatedAt,
		updatedByUserID,
	)
	if err != nil {
		return fmt.Errorf("failed to reopen entry %s: %w", *movement.OriginEntryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: origin entry %s", apperrors.ErrNotFound, *movement.OriginEntryID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reversal transaction: %w", err)
	}
	return nil
}
