package services_test

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gestorsaas/gestor_financeiro_app/internal/apperrors"
	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	portsrepo "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/repositories"
	portssvc "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/services"
	"github.com/gestorsaas/gestor_financeiro_app/internal/core/services"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type EntryServiceTestSuite struct {
	suite.Suite
	mockEntryRepo        *MockEntryRepository
	mockCategoryRepo     *MockCategoryRepository
	mockRegistrationRepo *MockRegistrationRepository
	mockCashBoxRepo      *MockCashBoxRepository
	service              portssvc.EntrySvcFacade
	companyID            string
	userID               string
	revenueCategory      domain.Category
	expenseCategory      domain.Category
	customer             domain.Registration
}

func (suite *EntryServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockRegistrationRepo = new(MockRegistrationRepository)
	suite.mockCashBoxRepo = new(MockCashBoxRepository)
	suite.service = services.NewEntryService(
		suite.mockEntryRepo,
		suite.mockCategoryRepo,
		suite.mockRegistrationRepo,
		suite.mockCashBoxRepo,
	)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.revenueCategory = domain.Category{
		CategoryID: uuid.NewString(),
		CompanyID:  suite.companyID,
		Name:       "Service revenue",
		Kind:       domain.KindRevenue,
		Code:       "1.01",
	}
	suite.expenseCategory = domain.Category{
		CategoryID: uuid.NewString(),
		CompanyID:  suite.companyID,
		Name:       "Rent",
		Kind:       domain.KindExpense,
		Code:       "2.01",
	}
	suite.customer = domain.Registration{
		RegistrationID: uuid.NewString(),
		CompanyID:      suite.companyID,
		LegalName:      "Acme Ltda",
		Role:           domain.RoleCustomer,
		PersonType:     domain.PersonCompany,
		Status:         domain.RegistrationActive,
	}
}

func (suite *EntryServiceTestSuite) TestCreateEntrySuccess() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		CategoryID:  suite.revenueCategory.CategoryID,
		Description: "Invoice 42",
		Amount:      decimal.NewFromInt(250),
		DueDate:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.companyID, suite.revenueCategory.CategoryID).Return(&suite.revenueCategory, nil).Once()
	suite.mockEntryRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.ScheduledEntry")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.companyID, req, suite.userID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), entry)
	assert.Equal(suite.T(), domain.EntryPending, entry.Status)
	assert.True(suite.T(), entry.Amount.Equal(decimal.NewFromInt(250)))
	assert.Regexp(suite.T(), regexp.MustCompile(`^\d{5}$`), entry.DocumentLabel)
	assert.Equal(suite.T(), suite.userID, entry.CreatedBy)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestCreateEntryRejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		CategoryID:  suite.revenueCategory.CategoryID,
		Description: "Bad",
		Amount:      decimal.Zero,
		DueDate:     time.Now(),
	}

	entry, err := suite.service.CreateEntry(ctx, suite.companyID, req, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Nil(suite.T(), entry)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateEntryRejectsRoleMismatch() {
	ctx := context.Background()
	// A plain customer cannot sit on the supplier side of an expense.
	req := dto.CreateEntryRequest{
		CategoryID:     suite.expenseCategory.CategoryID,
		RegistrationID: &suite.customer.RegistrationID,
		Description:    "Rent September",
		Amount:         decimal.NewFromInt(1200),
		DueDate:        time.Now(),
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.companyID, suite.expenseCategory.CategoryID).Return(&suite.expenseCategory, nil).Once()
	suite.mockRegistrationRepo.On("FindRegistrationByID", ctx, suite.companyID, suite.customer.RegistrationID).Return(&suite.customer, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.companyID, req, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Nil(suite.T(), entry)
}

func (suite *EntryServiceTestSuite) TestCreateInstallmentsDividesTotalEvenly() {
	ctx := context.Background()
	req := dto.CreateInstallmentsRequest{
		CategoryID:   suite.revenueCategory.CategoryID,
		Description:  "Contract 7",
		Amount:       decimal.NewFromInt(1000),
		InterestRate: decimal.NewFromInt(10),
		Installments: 3,
		FirstDueDate: time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.companyID, suite.revenueCategory.CategoryID).Return(&suite.revenueCategory, nil).Once()
	suite.mockEntryRepo.On("SaveEntries", ctx, mock.AnythingOfType("[]domain.ScheduledEntry")).Return(nil).Once()

	entries, err := suite.service.CreateInstallments(ctx, suite.companyID, req, suite.userID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), entries, 3)

	// 1000 plus 10% interest is 1100; each installment is 1100/3 rounded to cents.
	expected := decimal.RequireFromString("366.67")
	for _, entry := range entries {
		assert.True(suite.T(), entry.Amount.Equal(expected), "amount %s", entry.Amount)
		assert.Equal(suite.T(), domain.EntryPending, entry.Status)
	}

	// Labels share one 4-digit group and carry position/total.
	group := strings.SplitN(entries[0].DocumentLabel, "-", 2)[0]
	assert.Regexp(suite.T(), regexp.MustCompile(`^\d{4}$`), group)
	assert.Equal(suite.T(), group+"-1/3", entries[0].DocumentLabel)
	assert.Equal(suite.T(), group+"-2/3", entries[1].DocumentLabel)
	assert.Equal(suite.T(), group+"-3/3", entries[2].DocumentLabel)

	// Monthly due dates clamp to shorter months.
	assert.Equal(suite.T(), time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), entries[0].DueDate)
	assert.Equal(suite.T(), time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), entries[1].DueDate)
	assert.Equal(suite.T(), time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), entries[2].DueDate)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestCreateInstallmentsRejectsSingleInstallment() {
	ctx := context.Background()
	req := dto.CreateInstallmentsRequest{
		CategoryID:   suite.revenueCategory.CategoryID,
		Description:  "Contract 8",
		Amount:       decimal.NewFromInt(1000),
		Installments: 1,
		FirstDueDate: time.Now(),
	}

	entries, err := suite.service.CreateInstallments(ctx, suite.companyID, req, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Nil(suite.T(), entries)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntries", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestListEntriesOverdueMapsToFilter() {
	ctx := context.Background()

	suite.mockEntryRepo.On("ListEntries", ctx, suite.companyID, mock.MatchedBy(func(f portsrepo.EntryFilter) bool {
		return f.OverdueOn != nil && f.Status == nil
	})).Return([]domain.ScheduledEntry{}, nil).Once()

	entries, err := suite.service.ListEntries(ctx, suite.companyID, dto.ListEntriesParams{Status: "OVERDUE"})

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), entries)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestSettleRevenueEntryCreatesCredit() {
	ctx := context.Background()
	cashBoxID := uuid.NewString()
	entry := domain.ScheduledEntry{
		EntryID:     uuid.NewString(),
		CompanyID:   suite.companyID,
		CategoryID:  suite.revenueCategory.CategoryID,
		Description: "Invoice 42",
		Amount:      decimal.NewFromInt(150),
		DueDate:     time.Now(),
		Status:      domain.EntryPending,
	}
	req := dto.SettleEntryRequest{
		CashBoxID:      cashBoxID,
		SettlementDate: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	}

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.companyID, entry.EntryID).Return(&entry, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.companyID, suite.revenueCategory.CategoryID).Return(&suite.revenueCategory, nil).Once()
	suite.mockCashBoxRepo.On("FindCashBoxByID", ctx, suite.companyID, cashBoxID).Return(&domain.CashBox{CashBoxID: cashBoxID, CompanyID: suite.companyID}, nil).Once()
	suite.mockEntryRepo.On("SettleEntry", ctx, entry, mock.AnythingOfType("domain.Movement")).Return(nil).Once()

	movement, err := suite.service.SettleEntry(ctx, suite.companyID, entry.EntryID, req, suite.userID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), movement)
	assert.Equal(suite.T(), domain.Credit, movement.Kind)
	assert.True(suite.T(), movement.Amount.Equal(decimal.NewFromInt(150)))
	assert.Equal(suite.T(), "Settlement: Invoice 42", movement.Description)
	assert.Equal(suite.T(), entry.EntryID, *movement.OriginEntryID)
	assert.Equal(suite.T(), cashBoxID, movement.CashBoxID)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestSettleExpenseEntryCreatesDebit() {
	ctx := context.Background()
	cashBoxID := uuid.NewString()
	entry := domain.ScheduledEntry{
		EntryID:     uuid.NewString(),
		CompanyID:   suite.companyID,
		CategoryID:  suite.expenseCategory.CategoryID,
		Description: "Rent September",
		Amount:      decimal.NewFromInt(80),
		DueDate:     time.Now(),
		Status:      domain.EntryPending,
	}
	req := dto.SettleEntryRequest{CashBoxID: cashBoxID, SettlementDate: time.Now()}

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.companyID, entry.EntryID).Return(&entry, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.companyID, suite.expenseCategory.CategoryID).Return(&suite.expenseCategory, nil).Once()
	suite.mockCashBoxRepo.On("FindCashBoxByID", ctx, suite.companyID, cashBoxID).Return(&domain.CashBox{CashBoxID: cashBoxID, CompanyID: suite.companyID}, nil).Once()
	suite.mockEntryRepo.On("SettleEntry", ctx, entry, mock.AnythingOfType("domain.Movement")).Return(nil).Once()

	movement, err := suite.service.SettleEntry(ctx, suite.companyID, entry.EntryID, req, suite.userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.Debit, movement.Kind)
	assert.True(suite.T(), movement.Amount.Equal(decimal.NewFromInt(-80)), "amount %s", movement.Amount)
	assert.Equal(suite.T(), cashBoxID, movement.CashBoxID)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestSettleRequiresCashBox() {
	ctx := context.Background()
	entry := domain.ScheduledEntry{
		EntryID:    uuid.NewString(),
		CompanyID:  suite.companyID,
		CategoryID: suite.revenueCategory.CategoryID,
		Amount:     decimal.NewFromInt(10),
		Status:     domain.EntryPending,
	}

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.companyID, entry.EntryID).Return(&entry, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.companyID, suite.revenueCategory.CategoryID).Return(&suite.revenueCategory, nil).Once()

	movement, err := suite.service.SettleEntry(ctx, suite.companyID, entry.EntryID, dto.SettleEntryRequest{SettlementDate: time.Now()}, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Nil(suite.T(), movement)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SettleEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestSettleRejectsUnknownCashBox() {
	ctx := context.Background()
	entry := domain.ScheduledEntry{
		EntryID:    uuid.NewString(),
		CompanyID:  suite.companyID,
		CategoryID: suite.revenueCategory.CategoryID,
		Amount:     decimal.NewFromInt(10),
		Status:     domain.EntryPending,
	}

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.companyID, entry.EntryID).Return(&entry, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.companyID, suite.revenueCategory.CategoryID).Return(&suite.revenueCategory, nil).Once()
	suite.mockCashBoxRepo.On("FindCashBoxByID", ctx, suite.companyID, "missing-box").Return(nil, apperrors.ErrNotFound).Once()

	movement, err := suite.service.SettleEntry(ctx, suite.companyID, entry.EntryID, dto.SettleEntryRequest{CashBoxID: "missing-box", SettlementDate: time.Now()}, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Nil(suite.T(), movement)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SettleEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestSettleRejectsNonPendingEntry() {
	ctx := context.Background()
	entry := domain.ScheduledEntry{
		EntryID:    uuid.NewString(),
		CompanyID:  suite.companyID,
		CategoryID: suite.revenueCategory.CategoryID,
		Amount:     decimal.NewFromInt(10),
		Status:     domain.EntrySettled,
	}

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.companyID, entry.EntryID).Return(&entry, nil).Once()

	movement, err := suite.service.SettleEntry(ctx, suite.companyID, entry.EntryID, dto.SettleEntryRequest{SettlementDate: time.Now()}, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
	assert.Nil(suite.T(), movement)
}

func (suite *EntryServiceTestSuite) TestDeleteSettledEntryRefused() {
	ctx := context.Background()
	entry := domain.ScheduledEntry{
		EntryID:   uuid.NewString(),
		CompanyID: suite.companyID,
		Status:    domain.EntrySettled,
	}

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.companyID, entry.EntryID).Return(&entry, nil).Once()

	err := suite.service.DeleteEntry(ctx, suite.companyID, entry.EntryID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "DeleteEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCancelRejectsNonPendingEntry() {
	ctx := context.Background()
	entry := domain.ScheduledEntry{
		EntryID:   uuid.NewString(),
		CompanyID: suite.companyID,
		Status:    domain.EntryCancelled,
	}

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.companyID, entry.EntryID).Return(&entry, nil).Once()

	err := suite.service.CancelEntry(ctx, suite.companyID, entry.EntryID, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
}

func TestEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntryServiceTestSuite))
}
