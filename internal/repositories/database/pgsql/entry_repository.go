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

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for scheduled entry data.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.ScheduledEntryRepositoryWithTx {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxEntryRepository implements portsrepo.ScheduledEntryRepositoryWithTx
var _ portsrepo.ScheduledEntryRepositoryWithTx = (*PgxEntryRepository)(nil)

const entryColumns = `entry_id, company_id, category_id, registration_id, description, amount, due_date, status, document_label, notes, created_at, created_by, last_updated_at, last_updated_by`

const insertEntrySQL = `
	INSERT INTO scheduled_entries (` + entryColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
`

func scanEntry(row pgx.Row) (models.ScheduledEntry, error) {
	var m models.ScheduledEntry
	err := row.Scan(
		&m.EntryID,
		&m.CompanyID,
		&m.CategoryID,
		&m.RegistrationID,
		&m.Description,
		&m.Amount,
		&m.DueDate,
		&m.Status,
		&m.DocumentLabel,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func entryInsertArgs(m models.ScheduledEntry) []interface{} {
	return []interface{}{
		m.EntryID,
		m.CompanyID,
		m.CategoryID,
		m.RegistrationID,
		m.Description,
		m.Amount,
		m.DueDate,
		m.Status,
		m.DocumentLabel,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

// SaveEntry inserts a single new scheduled entry.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.ScheduledEntry) error {
	m := mapping.ToModelScheduledEntry(entry)

	_, err := r.Pool.Exec(ctx, insertEntrySQL, entryInsertArgs(m)...)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return fmt.Errorf("%w: entry %s", cerr, m.EntryID)
		}
		return fmt.Errorf("failed to save entry %s: %w", m.EntryID, err)
	}
	return nil
}

// SaveEntries inserts a batch of scheduled entries within one transaction so
// an installment series lands whole or not at all.
func (r *PgxEntryRepository) SaveEntries(ctx context.Context, entries []domain.ScheduledEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for entry batch: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "Failed to rollback entry batch transaction", "error", rbErr)
		}
	}()

	batch := &pgx.Batch{}
	for _, entry := range entries {
		batch.Queue(insertEntrySQL, entryInsertArgs(mapping.ToModelScheduledEntry(entry))...)
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			if cerr := constraintError(err); cerr != nil {
				return fmt.Errorf("%w: entry %s", cerr, entries[i].EntryID)
			}
			return fmt.Errorf("failed to save entry %s in batch: %w", entries[i].EntryID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close entry batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit entry batch: %w", err)
	}
	return nil
}

// FindEntryByID retrieves a scheduled entry by its ID within a company.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, companyID string, entryID string) (*domain.ScheduledEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM scheduled_entries
		WHERE company_id = $1 AND entry_id = $2;
	`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, companyID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by ID %s: %w", entryID, err)
	}
	d := mapping.ToDomainScheduledEntry(m)
	return &d, nil
}

// ListEntries retrieves scheduled entries matching the filter, ordered by due
// date then document label. The kind filter joins through the category.
func (r *PgxEntryRepository) ListEntries(ctx context.Context, companyID string, filter portsrepo.EntryFilter) ([]domain.ScheduledEntry, error) {
	query := `
		SELECT e.entry_id, e.company_id, e.category_id, e.registration_id, e.description, e.amount,
		       e.due_date, e.status, e.document_label, e.notes,
		       e.created_at, e.created_by, e.last_updated_at, e.last_updated_by
		FROM scheduled_entries e
		JOIN categories c ON c.category_id = e.category_id
		WHERE e.company_id = $1
		  AND ($2::text IS NULL OR e.status = $2)
		  AND ($3::text IS NULL OR c.kind = $3)
		  AND ($4::text IS NULL OR e.category_id = $4)
		  AND ($5::text IS NULL OR e.registration_id = $5)
		  AND ($6::date IS NULL OR e.due_date >= $6)
		  AND ($7::date IS NULL OR e.due_date <= $7)
		  AND ($8::date IS NULL OR (e.status = 'PENDING' AND e.due_date < $8))
		ORDER BY e.due_date, e.document_label;
	`
	var statusArg, kindArg *string
	if filter.OverdueOn == nil && filter.Status != nil {
		s := string(*filter.Status)
		statusArg = &s
	}
	if filter.Kind != nil {
		s := string(*filter.Kind)
		kindArg = &s
	}

	rows, err := r.Pool.Query(ctx, query, companyID, statusArg, kindArg,
		filter.CategoryID, filter.RegistrationID, filter.DueFrom, filter.DueTo, filter.OverdueOn)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for company %s: %w", companyID, err)
	}
	defer rows.Close()

	ms := []models.ScheduledEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}

	return mapping.ToDomainScheduledEntrySlice(ms), nil
}

// CountEntriesByCategory returns how many scheduled entries reference a category.
func (r *PgxEntryRepository) CountEntriesByCategory(ctx context.Context, companyID string, categoryID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM scheduled_entries WHERE company_id = $1 AND category_id = $2;`
	if err := r.Pool.QueryRow(ctx, query, companyID, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries for category %s: %w", categoryID, err)
	}
	return count, nil
}

// CountEntriesByRegistration returns how many scheduled entries reference a registration.
func (r *PgxEntryRepository) CountEntriesByRegistration(ctx context.Context, companyID string, registrationID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM scheduled_entries WHERE company_id = $1 AND registration_id = $2;`
	if err := r.Pool.QueryRow(ctx, query, companyID, registrationID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries for registration %s: %w", registrationID, err)
	}
	return count, nil
}

// UpdateEntry updates an existing scheduled entry.
func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.ScheduledEntry) error {
	m := mapping.ToModelScheduledEntry(entry)

	query := `
		UPDATE scheduled_entries
		SET category_id = $3, registration_id = $4, description = $5, amount = $6,
		    due_date = $7, status = $8, notes = $9, last_updated_at = $10, last_updated_by = $11
		WHERE company_id = $1 AND entry_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.CompanyID,
		m.EntryID,
		m.CategoryID,
		m.RegistrationID,
		m.Description,
		m.Amount,
		m.DueDate,
		m.Status,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return fmt.Errorf("%w: entry %s", cerr, m.EntryID)
		}
		return fmt.Errorf("failed to update entry %s: %w", m.EntryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateEntryStatus updates only the lifecycle status of an entry.
func (r *PgxEntryRepository) UpdateEntryStatus(ctx context.Context, companyID string, entryID string, status domain.EntryStatus, updatedByUserID string, updatedAt time.Time) error {
	query := `
		UPDATE scheduled_entries
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE company_id = $1 AND entry_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, companyID, entryID, status, updatedAt, updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to update status of entry %s: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntry removes a scheduled entry.
func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, companyID string, entryID string) error {
	query := `
		DELETE FROM scheduled_entries
		WHERE company_id = $1 AND entry_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, companyID, entryID)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return fmt.Errorf("%w: entry %s is still referenced", cerr, entryID)
		}
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SettleEntry inserts the settlement movement and flips the entry to settled
// in one transaction. The status update is guarded on the entry still being
// pending, so concurrent settlements of the same entry cannot both succeed.
func (r *PgxEntryRepository) SettleEntry(ctx context.Context, entry domain.ScheduledEntry, movement domain.Movement) error {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin settlement transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "Failed to rollback settlement transaction", "error", rbErr)
		}
	}()

	statusQuery := `
		UPDATE scheduled_entries
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE company_id = $1 AND entry_id = $2 AND status = 'PENDING';
	`
	cmdTag, err := tx.Exec(ctx, statusQuery,
		entry.CompanyID,
		entry.EntryID,
		domain.EntrySettled,
		movement.CreatedAt,
		movement.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to mark entry %s settled: %w", entry.EntryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: entry %s is not pending", apperrors.ErrConflict, entry.EntryID)
	}

	m := mapping.ToModelMovement(movement)
	_, err = tx.Exec(ctx, insertMovementSQL, movementInsertArgs(m)...)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return fmt.Errorf("%w: settlement movement for entry %s", cerr, entry.EntryID)
		}
		return fmt.Errorf("failed to save settlement movement %s: %w", m.MovementID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit settlement transaction: %w", err)
	}
	return nil
}
