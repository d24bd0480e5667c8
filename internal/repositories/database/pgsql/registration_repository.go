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

type PgxRegistrationRepository struct {
	BaseRepository
}

// newPgxRegistrationRepository creates a new repository for directory data.
func newPgxRegistrationRepository(pool *pgxpool.Pool) portsrepo.RegistrationRepositoryWithTx {
	return &PgxRegistrationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxRegistrationRepository implements portsrepo.RegistrationRepositoryWithTx
var _ portsrepo.RegistrationRepositoryWithTx = (*PgxRegistrationRepository)(nil)

const registrationColumns = `registration_id, company_id, legal_name, role, person_type, cpf_cnpj, email, phone, city, state, birth_date, status, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanRegistration(row pgx.Row) (models.Registration, error) {
	var m models.Registration
	err := row.Scan(
		&m.RegistrationID,
		&m.CompanyID,
		&m.LegalName,
		&m.Role,
		&m.PersonType,
		&m.CPFCNPJ,
		&m.Email,
		&m.Phone,
		&m.City,
		&m.State,
		&m.BirthDate,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveRegistration inserts a new registration.
func (r *PgxRegistrationRepository) SaveRegistration(ctx context.Context, registration domain.Registration) error {
	m := mapping.ToModelRegistration(registration)

	query := `
		INSERT INTO registrations (` + registrationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RegistrationID,
		m.CompanyID,
		m.LegalName,
		m.Role,
		m.PersonType,
		m.CPFCNPJ,
		m.Email,
		m.Phone,
		m.City,
		m.State,
		m.BirthDate,
		m.Status,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return fmt.Errorf("%w: registration %q", cerr, m.LegalName)
		}
		return fmt.Errorf("failed to save registration %s: %w", m.RegistrationID, err)
	}
	return nil
}

// FindRegistrationByID retrieves a registration by its ID within a company.
func (r *PgxRegistrationRepository) FindRegistrationByID(ctx context.Context, companyID string, registrationID string) (*domain.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE company_id = $1 AND registration_id = $2;
	`
	m, err := scanRegistration(r.Pool.QueryRow(ctx, query, companyID, registrationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find registration by ID %s: %w", registrationID, err)
	}
	d := mapping.ToDomainRegistration(m)
	return &d, nil
}

// ListRegistrations retrieves the company's registrations matching the filter.
// A BOTH role matches both customer and supplier filters.
func (r *PgxRegistrationRepository) ListRegistrations(ctx context.Context, companyID string, filter portsrepo.RegistrationFilter) ([]domain.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE company_id = $1
		  AND ($2::text IS NULL OR role = $2 OR role = 'BOTH')
		  AND ($3::text IS NULL OR status = $3)
		  AND ($4::text = '' OR legal_name ILIKE '%' || $4 || '%' OR cpf_cnpj ILIKE '%' || $4 || '%')
		ORDER BY legal_name;
	`
	var roleArg, statusArg *string
	if filter.Role != nil {
		s := string(*filter.Role)
		roleArg = &s
	}
	if filter.Status != nil {
		s := string(*filter.Status)
		statusArg = &s
	}

	rows, err := r.Pool.Query(ctx, query, companyID, roleArg, statusArg, filter.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to query registrations for company %s: %w", companyID, err)
	}
	defer rows.Close()

	ms := []models.Registration{}
	for rows.Next() {
		m, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registration row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registration rows: %w", err)
	}

	return mapping.ToDomainRegistrationSlice(ms), nil
}

// UpdateRegistration updates an existing registration.
func (r *PgxRegistrationRepository) UpdateRegistration(ctx context.Context, registration domain.Registration) error {
	m := mapping.ToModelRegistration(registration)

	query := `
		UPDATE registrations
		SET legal_name = $3, role = $4, person_type = $5, cpf_cnpj = $6, email = $7,
		    phone = $8, city = $9, state = $10, birth_date = $11, status = $12, notes = $13,
		    last_updated_at = $14, last_updated_by = $15
		WHERE company_id = $1 AND registration_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.CompanyID,
		m.RegistrationID,
		m.LegalName,
		m.Role,
		m.PersonType,
		m.CPFCNPJ,
		m.Email,
		m.Phone,
		m.City,
		m.State,
		m.BirthDate,
		m.Status,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return fmt.Errorf("%w: registration %q", cerr, m.LegalName)
		}
		return fmt.Errorf("failed to update registration %s: %w", m.RegistrationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteRegistration removes a registration. Scheduled entries keep a
// protecting foreign key, so the delete surfaces ErrConflict while any still
// reference it.
func (r *PgxRegistrationRepository) DeleteRegistration(ctx context.Context, companyID string, registrationID string) error {
	query := `
		DELETE FROM registrations
		WHERE company_id = $1 AND registration_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, companyID, registrationID)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return fmt.Errorf("%w: registration %s is still in use", cerr, registrationID)
		}
		return fmt.Errorf("failed to delete registration %s: %w", registrationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
