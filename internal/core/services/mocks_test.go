package services_test

import (
	"context"
	"time"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	portsrepo "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/repositories"
	portssvc "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/services"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, companyID string, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, companyID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByCode(ctx context.Context, companyID string, code string) (*domain.Category, error) {
	args := m.Called(ctx, companyID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, companyID string, kind *domain.CategoryKind) ([]domain.Category, error) {
	args := m.Called(ctx, companyID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, companyID string, categoryID string) error {
	args := m.Called(ctx, companyID, categoryID)
	return args.Error(0)
}

// --- Mock CashBoxRepository ---
type MockCashBoxRepository struct {
	mock.Mock
}

var _ portsrepo.CashBoxRepositoryFacade = (*MockCashBoxRepository)(nil)

func (m *MockCashBoxRepository) FindCashBoxByID(ctx context.Context, companyID string, cashBoxID string) (*domain.CashBox, error) {
	args := m.Called(ctx, companyID, cashBoxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBox), args.Error(1)
}

func (m *MockCashBoxRepository) ListCashBoxes(ctx context.Context, companyID string) ([]domain.CashBox, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashBox), args.Error(1)
}

func (m *MockCashBoxRepository) SaveCashBox(ctx context.Context, cashBox domain.CashBox) error {
	args := m.Called(ctx, cashBox)
	return args.Error(0)
}

func (m *MockCashBoxRepository) UpdateCashBox(ctx context.Context, cashBox domain.CashBox) error {
	args := m.Called(ctx, cashBox)
	return args.Error(0)
}

func (m *MockCashBoxRepository) DeleteCashBox(ctx context.Context, companyID string, cashBoxID string) error {
	args := m.Called(ctx, companyID, cashBoxID)
	return args.Error(0)
}

// --- Mock RegistrationRepository ---
type MockRegistrationRepository struct {
	mock.Mock
}

var _ portsrepo.RegistrationRepositoryFacade = (*MockRegistrationRepository)(nil)

func (m *MockRegistrationRepository) FindRegistrationByID(ctx context.Context, companyID string, registrationID string) (*domain.Registration, error) {
	args := m.Called(ctx, companyID, registrationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) ListRegistrations(ctx context.Context, companyID string, filter portsrepo.RegistrationFilter) ([]domain.Registration, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) SaveRegistration(ctx context.Context, registration domain.Registration) error {
	args := m.Called(ctx, registration)
	return args.Error(0)
}

func (m *MockRegistrationRepository) UpdateRegistration(ctx context.Context, registration domain.Registration) error {
	args := m.Called(ctx, registration)
	return args.Error(0)
}

func (m *MockRegistrationRepository) DeleteRegistration(ctx context.Context, companyID string, registrationID string) error {
	args := m.Called(ctx, companyID, registrationID)
	return args.Error(0)
}

// --- Mock ScheduledEntryRepository ---
type MockEntryRepository struct {
	mock.Mock
}

var _ portsrepo.ScheduledEntryRepositoryFacade = (*MockEntryRepository)(nil)

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, companyID string, entryID string) (*domain.ScheduledEntry, error) {
	args := m.Called(ctx, companyID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduledEntry), args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context, companyID string, filter portsrepo.EntryFilter) ([]domain.ScheduledEntry, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduledEntry), args.Error(1)
}

func (m *MockEntryRepository) CountEntriesByCategory(ctx context.Context, companyID string, categoryID string) (int64, error) {
	args := m.Called(ctx, companyID, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntryRepository) CountEntriesByRegistration(ctx context.Context, companyID string, registrationID string) (int64, error) {
	args := m.Called(ctx, companyID, registrationID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.ScheduledEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) SaveEntries(ctx context.Context, entries []domain.ScheduledEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockEntryRepository) UpdateEntry(ctx context.Context, entry domain.ScheduledEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) UpdateEntryStatus(ctx context.Context, companyID string, entryID string, status domain.EntryStatus, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, companyID, entryID, status, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockEntryRepository) DeleteEntry(ctx context.Context, companyID string, entryID string) error {
	args := m.Called(ctx, companyID, entryID)
	return args.Error(0)
}

func (m *MockEntryRepository) SettleEntry(ctx context.Context, entry domain.ScheduledEntry, movement domain.Movement) error {
	args := m.Called(ctx, entry, movement)
	return args.Error(0)
}

// --- Mock MovementRepository ---
type MockMovementRepository struct {
	mock.Mock
}

var _ portsrepo.MovementRepositoryFacade = (*MockMovementRepository)(nil)

func (m *MockMovementRepository) FindMovementByID(ctx context.Context, companyID string, movementID string) (*domain.Movement, error) {
	args := m.Called(ctx, companyID, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) FindMovementByOriginEntry(ctx context.Context, companyID string, entryID string) (*domain.Movement, error) {
	args := m.Called(ctx, companyID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) ListMovements(ctx context.Context, companyID string, filter portsrepo.MovementFilter) ([]domain.Movement, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) CountMovementsByCashBox(ctx context.Context, companyID string, cashBoxID string) (int64, error) {
	args := m.Called(ctx, companyID, cashBoxID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMovementRepository) CountMovementsByCategory(ctx context.Context, companyID string, categoryID string) (int64, error) {
	args := m.Called(ctx, companyID, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) UpdateMovement(ctx context.Context, movement domain.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) DeleteMovement(ctx context.Context, companyID string, movementID string) error {
	args := m.Called(ctx, companyID, movementID)
	return args.Error(0)
}

func (m *MockMovementRepository) DeleteMovementAndReopenEntry(ctx context.Context, movement domain.Movement, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, movement, updatedByUserID, updatedAt)
	return args.Error(0)
}

// --- Mock ParameterRepository ---
type MockParameterRepository struct {
	mock.Mock
}

var _ portsrepo.ParameterRepositoryFacade = (*MockParameterRepository)(nil)

func (m *MockParameterRepository) FindParameterByKey(ctx context.Context, companyID string, key string) (*domain.SystemParameter, error) {
	args := m.Called(ctx, companyID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemParameter), args.Error(1)
}

func (m *MockParameterRepository) ListParameters(ctx context.Context, companyID string) ([]domain.SystemParameter, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SystemParameter), args.Error(1)
}

func (m *MockParameterRepository) UpsertParameter(ctx context.Context, parameter domain.SystemParameter) error {
	args := m.Called(ctx, parameter)
	return args.Error(0)
}

func (m *MockParameterRepository) DeleteParameter(ctx context.Context, companyID string, key string) error {
	args := m.Called(ctx, companyID, key)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) SumOpeningBalances(ctx context.Context, companyID string, cashBoxID *string) (decimal.Decimal, error) {
	args := m.Called(ctx, companyID, cashBoxID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumMovementsBefore(ctx context.Context, companyID string, cashBoxID *string, categoryID *string, before time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, companyID, cashBoxID, categoryID, before)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) ListMovementsBetween(ctx context.Context, companyID string, cashBoxID *string, categoryID *string, from, to time.Time) ([]domain.Movement, error) {
	args := m.Called(ctx, companyID, cashBoxID, categoryID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockReportingRepository) GetIncomeStatementRows(ctx context.Context, companyID string, from, to time.Time) ([]domain.IncomeStatementRow, error) {
	args := m.Called(ctx, companyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IncomeStatementRow), args.Error(1)
}

// --- Mock ParameterService (as used by entry and reporting services) ---
type MockParameterService struct {
	mock.Mock
}

var _ portssvc.ParameterSvcFacade = (*MockParameterService)(nil)

func (m *MockParameterService) GetParameter(ctx context.Context, companyID string, key string) (*domain.SystemParameter, error) {
	args := m.Called(ctx, companyID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemParameter), args.Error(1)
}

func (m *MockParameterService) ListParameters(ctx context.Context, companyID string) ([]domain.SystemParameter, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SystemParameter), args.Error(1)
}

func (m *MockParameterService) SetParameter(ctx context.Context, companyID string, req dto.SetParameterRequest, requestingUserID string) (*domain.SystemParameter, error) {
	args := m.Called(ctx, companyID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemParameter), args.Error(1)
}

func (m *MockParameterService) DeleteParameter(ctx context.Context, companyID string, key string) error {
	args := m.Called(ctx, companyID, key)
	return args.Error(0)
}

func (m *MockParameterService) ResolveDefaultCashBoxID(ctx context.Context, companyID string) (*string, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}
