package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CategoryRepo     CategoryRepositoryFacade
	CashBoxRepo      CashBoxRepositoryFacade
	RegistrationRepo RegistrationRepositoryFacade
	EntryRepo        ScheduledEntryRepositoryFacade
	MovementRepo     MovementRepositoryFacade
	ParameterRepo    ParameterRepositoryFacade
	ReportingRepo    ReportingRepository
}
