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

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryWithTx {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepositoryWithTx
var _ portsrepo.CategoryRepositoryWithTx = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, company_id, name, kind, code, created_at, created_by, last_updated_at, last_updated_by`

func scanCategory(row pgx.Row) (models.Category, error) {
	var m models.Category
	err := row.Scan(
		&m.CategoryID,
		&m.CompanyID,
		&m.Name,
		&m.Kind,
		&m.Code,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCategory inserts a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)

	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.CompanyID,
		m.Name,
		m.Kind,
		m.Code,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return fmt.Errorf("%w: category %q", cerr, m.Name)
		}
		return fmt.Errorf("failed to save category %s: %w", m.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a category by its ID within a company.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, companyID string, categoryID string) (*domain.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE company_id = $1 AND category_id = $2;
	`
	m, err := scanCategory(r.Pool.QueryRow(ctx, query, companyID, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}
	d := mapping.ToDomainCategory(m)
	return &d, nil
}

// FindCategoryByCode retrieves the category whose code matches exactly, if any.
func (r *PgxCategoryRepository) FindCategoryByCode(ctx context.Context, companyID string, code string) (*domain.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE company_id = $1 AND code = $2
		LIMIT 1;
	`
	m, err := scanCategory(r.Pool.QueryRow(ctx, query, companyID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by code %q: %w", code, err)
	}
	d := mapping.ToDomainCategory(m)
	return &d, nil
}

// ListCategories retrieves the company's categories, optionally restricted to one kind.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, companyID string, kind *domain.CategoryKind) ([]domain.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE company_id = $1 AND ($2::text IS NULL OR kind = $2)
		ORDER BY code, name;
	`
	var kindArg *string
	if kind != nil {
		s := string(*kind)
		kindArg = &s
	}

	rows, err := r.Pool.Query(ctx, query, companyID, kindArg)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories for company %s: %w", companyID, err)
	}
	defer rows.Close()

	ms := []models.Category{}
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}

	return mapping.ToDomainCategorySlice(ms), nil
}

// UpdateCategory updates an existing category.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)

	query := `
		UPDATE categories
		SET name = $3, kind = $4, code = $5, last_updated_at = $6, last_updated_by = $7
		WHERE company_id = $1 AND category_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.CompanyID,
		m.CategoryID,
		m.Name,
		m.Kind,
		m.Code,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return fmt.Errorf("%w: category %q", cerr, m.Name)
		}
		return fmt.Errorf("failed to update category %s: %w", m.CategoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category. Scheduled entries keep a protecting
// foreign key, so the delete surfaces ErrConflict while any still reference it.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, companyID string, categoryID string) error {
	query := `
		DELETE FROM categories
		WHERE company_id = $1 AND category_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, companyID, categoryID)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return fmt.Errorf("%w: category %s is still in use", cerr, categoryID)
		}
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
