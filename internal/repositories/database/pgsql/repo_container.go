package pgsql

import (
	portsrepo "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	categoryRepo := newPgxCategoryRepository(dbPool)
	cashBoxRepo := newPgxCashBoxRepository(dbPool)
	registrationRepo := newPgxRegistrationRepository(dbPool)
	entryRepo := newPgxEntryRepository(dbPool)
	movementRepo := newPgxMovementRepository(dbPool)
	parameterRepo := newPgxParameterRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CategoryRepo:     categoryRepo,
		CashBoxRepo:      cashBoxRepo,
		RegistrationRepo: registrationRepo,
		EntryRepo:        entryRepo,
		MovementRepo:     movementRepo,
		ParameterRepo:    parameterRepo,
		ReportingRepo:    reportingRepo,
	}
}
