package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/gestorsaas/gestor_financeiro_app/internal/apperrors"
	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	portssvc "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/services"
	"github.com/gestorsaas/gestor_financeiro_app/internal/core/services"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MovementServiceTestSuite struct {
	suite.Suite
	mockMovementRepo *MockMovementRepository
	mockCashBoxRepo  *MockCashBoxRepository
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.MovementSvcFacade
	companyID        string
	userID           string
	cashBox          domain.CashBox
}

func (suite *MovementServiceTestSuite) SetupTest() {
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.mockCashBoxRepo = new(MockCashBoxRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewMovementService(suite.mockMovementRepo, suite.mockCashBoxRepo, suite.mockCategoryRepo)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.cashBox = domain.CashBox{
		CashBoxID: uuid.NewString(),
		CompanyID: suite.companyID,
		Name:      "Main till",
	}
}

func (suite *MovementServiceTestSuite) TestCreateDebitNormalizesToNegative() {
	ctx := context.Background()
	req := dto.CreateMovementRequest{
		CashBoxID:    suite.cashBox.CashBoxID,
		MovementDate: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Description:  "Office supplies",
		Amount:       decimal.NewFromInt(45),
		Kind:         domain.Debit,
	}

	suite.mockCashBoxRepo.On("FindCashBoxByID", ctx, suite.companyID, suite.cashBox.CashBoxID).Return(&suite.cashBox, nil).Once()
	suite.mockMovementRepo.On("SaveMovement", ctx, mock.AnythingOfType("domain.Movement")).Return(nil).Once()

	movement, err := suite.service.CreateMovement(ctx, suite.companyID, req, suite.userID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), movement.Amount.Equal(decimal.NewFromInt(-45)), "amount %s", movement.Amount)
	assert.Equal(suite.T(), domain.Debit, movement.Kind)
	assert.Nil(suite.T(), movement.OriginEntryID)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestCreateCreditKeepsNegativeInputPositive() {
	ctx := context.Background()
	req := dto.CreateMovementRequest{
		CashBoxID:    suite.cashBox.CashBoxID,
		MovementDate: time.Now(),
		Description:  "Counter sale",
		Amount:       decimal.NewFromInt(-90),
		Kind:         domain.Credit,
	}

	suite.mockCashBoxRepo.On("FindCashBoxByID", ctx, suite.companyID, suite.cashBox.CashBoxID).Return(&suite.cashBox, nil).Once()
	suite.mockMovementRepo.On("SaveMovement", ctx, mock.AnythingOfType("domain.Movement")).Return(nil).Once()

	movement, err := suite.service.CreateMovement(ctx, suite.companyID, req, suite.userID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), movement.Amount.Equal(decimal.NewFromInt(90)), "amount %s", movement.Amount)
}

func (suite *MovementServiceTestSuite) TestCreateRejectsZeroAmount() {
	ctx := context.Background()
	req := dto.CreateMovementRequest{
		CashBoxID:    suite.cashBox.CashBoxID,
		MovementDate: time.Now(),
		Description:  "Nothing",
		Amount:       decimal.Zero,
		Kind:         domain.Credit,
	}

	movement, err := suite.service.CreateMovement(ctx, suite.companyID, req, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Nil(suite.T(), movement)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveMovement", mock.Anything, mock.Anything)
}

func (suite *MovementServiceTestSuite) TestCreateRejectsUnknownCashBox() {
	ctx := context.Background()
	req := dto.CreateMovementRequest{
		CashBoxID:    "missing-box",
		MovementDate: time.Now(),
		Description:  "Sale",
		Amount:       decimal.NewFromInt(10),
		Kind:         domain.Credit,
	}

	suite.mockCashBoxRepo.On("FindCashBoxByID", ctx, suite.companyID, "missing-box").Return(nil, apperrors.ErrNotFound).Once()

	movement, err := suite.service.CreateMovement(ctx, suite.companyID, req, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Nil(suite.T(), movement)
}

func (suite *MovementServiceTestSuite) TestUpdateRenormalizesAfterKindChange() {
	ctx := context.Background()
	movementID := uuid.NewString()
	existing := domain.Movement{
		MovementID:   movementID,
		CompanyID:    suite.companyID,
		CashBoxID:    suite.cashBox.CashBoxID,
		MovementDate: time.Now(),
		Description:  "Sale",
		Amount:       decimal.NewFromInt(90),
		Kind:         domain.Credit,
	}
	newKind := domain.Debit
	req := dto.UpdateMovementRequest{Kind: &newKind}

	suite.mockMovementRepo.On("FindMovementByID", ctx, suite.companyID, movementID).Return(&existing, nil).Once()
	suite.mockCashBoxRepo.On("FindCashBoxByID", ctx, suite.companyID, suite.cashBox.CashBoxID).Return(&suite.cashBox, nil).Once()
	suite.mockMovementRepo.On("UpdateMovement", ctx, mock.AnythingOfType("domain.Movement")).Return(nil).Once()

	movement, err := suite.service.UpdateMovement(ctx, suite.companyID, movementID, req, suite.userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.Debit, movement.Kind)
	assert.True(suite.T(), movement.Amount.Equal(decimal.NewFromInt(-90)), "amount %s", movement.Amount)
}

func (suite *MovementServiceTestSuite) TestDeleteSettlementMovementReopensEntry() {
	ctx := context.Background()
	entryID := uuid.NewString()
	movement := domain.Movement{
		MovementID:    uuid.NewString(),
		CompanyID:     suite.companyID,
		CashBoxID:     suite.cashBox.CashBoxID,
		OriginEntryID: &entryID,
		Amount:        decimal.NewFromInt(100),
		Kind:          domain.Credit,
	}

	suite.mockMovementRepo.On("FindMovementByID", ctx, suite.companyID, movement.MovementID).Return(&movement, nil).Once()
	suite.mockMovementRepo.On("DeleteMovementAndReopenEntry", ctx, movement, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteMovement(ctx, suite.companyID, movement.MovementID, suite.userID)

	assert.NoError(suite.T(), err)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "DeleteMovement", mock.Anything, mock.Anything, mock.Anything)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestDeleteOrdinaryMovement() {
	ctx := context.Background()
	movement := domain.Movement{
		MovementID: uuid.NewString(),
		CompanyID:  suite.companyID,
		CashBoxID:  suite.cashBox.CashBoxID,
		Amount:     decimal.NewFromInt(-30),
		Kind:       domain.Debit,
	}

	suite.mockMovementRepo.On("FindMovementByID", ctx, suite.companyID, movement.MovementID).Return(&movement, nil).Once()
	suite.mockMovementRepo.On("DeleteMovement", ctx, suite.companyID, movement.MovementID).Return(nil).Once()

	err := suite.service.DeleteMovement(ctx, suite.companyID, movement.MovementID, suite.userID)

	assert.NoError(suite.T(), err)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "DeleteMovementAndReopenEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMovementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MovementServiceTestSuite))
}
