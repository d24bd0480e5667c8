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

type PgxParameterRepository struct {
	BaseRepository
}

// newPgxParameterRepository creates a new repository for system parameters.
func newPgxParameterRepository(pool *pgxpool.Pool) portsrepo.ParameterRepositoryWithTx {
	return &PgxParameterRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxParameterRepository implements portsrepo.ParameterRepositoryWithTx
var _ portsrepo.ParameterRepositoryWithTx = (*PgxParameterRepository)(nil)

const parameterColumns = `parameter_id, company_id, param_key, param_value, description, created_at, created_by, last_updated_at, last_updated_by`

func scanParameter(row pgx.Row) (models.SystemParameter, error) {
	var m models.SystemParameter
	err := row.Scan(
		&m.ParameterID,
		&m.CompanyID,
		&m.Key,
		&m.Value,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindParameterByKey retrieves a parameter by its key within a company.
func (r *PgxParameterRepository) FindParameterByKey(ctx context.Context, companyID string, key string) (*domain.SystemParameter, error) {
	query := `
		SELECT ` + parameterColumns + `
		FROM system_parameters
		WHERE company_id = $1 AND param_key = $2;
	`
	m, err := scanParameter(r.Pool.QueryRow(ctx, query, companyID, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find parameter %q: %w", key, err)
	}
	d := mapping.ToDomainSystemParameter(m)
	return &d, nil
}

// ListParameters retrieves the company's parameters ordered by key.
func (r *PgxParameterRepository) ListParameters(ctx context.Context, companyID string) ([]domain.SystemParameter, error) {
	query := `
		SELECT ` + parameterColumns + `
		FROM system_parameters
		WHERE company_id = $1
		ORDER BY param_key;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query parameters for company %s: %w", companyID, err)
	}
	defer rows.Close()

	ms := []models.SystemParameter{}
	for rows.Next() {
		m, err := scanParameter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan parameter row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating parameter rows: %w", err)
	}

	return mapping.ToDomainSystemParameterSlice(ms), nil
}

// UpsertParameter inserts a parameter or replaces the value and description of
// an existing one with the same key.
func (r *PgxParameterRepository) UpsertParameter(ctx context.Context, parameter domain.SystemParameter) error {
	m := mapping.ToModelSystemParameter(parameter)

	query := `
		INSERT INTO system_parameters (` + parameterColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (company_id, param_key)
		DO UPDATE SET param_value = EXCLUDED.param_value,
		              description = EXCLUDED.description,
		              last_updated_at = EXCLUDED.last_updated_at,
		              last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ParameterID,
		m.CompanyID,
		m.Key,
		m.Value,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert parameter %q: %w", m.Key, err)
	}
	return nil
}

// DeleteParameter removes a parameter by key.
func (r *PgxParameterRepository) DeleteParameter(ctx context.Context, companyID string, key string) error {
	query := `
		DELETE FROM system_parameters
		WHERE company_id = $1 AND param_key = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, companyID, key)
	if err != nil {
		return fmt.Errorf("failed to delete parameter %q: %w", key, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
