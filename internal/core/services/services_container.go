package services

import (
	portsrepo "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/repositories"
	portssvc "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Parameter service first since the reporting service resolves the
	// default cash box through it.
	container.Parameter = NewParameterService(repos.ParameterRepo, repos.CashBoxRepo)

	container.Category = NewCategoryService(repos.CategoryRepo, repos.EntryRepo, repos.MovementRepo)
	container.CashBox = NewCashBoxService(repos.CashBoxRepo, repos.MovementRepo, repos.ReportingRepo)
	container.Registration = NewRegistrationService(repos.RegistrationRepo, repos.EntryRepo)
	container.Entry = NewEntryService(repos.EntryRepo, repos.CategoryRepo, repos.RegistrationRepo, repos.CashBoxRepo)
	container.Movement = NewMovementService(repos.MovementRepo, repos.CashBoxRepo, repos.CategoryRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.CashBoxRepo, repos.CategoryRepo, container.Parameter)

	return container
}
