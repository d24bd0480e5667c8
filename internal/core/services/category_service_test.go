package services_test

import (
	"context"
	"testing"

	"github.com/gestorsaas/gestor_financeiro_app/internal/apperrors"
	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	portssvc "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/services"
	"github.com/gestorsaas/gestor_financeiro_app/internal/core/services"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo *MockCategoryRepository
	mockEntryRepo    *MockEntryRepository
	mockMovementRepo *MockMovementRepository
	service          portssvc.CategorySvcFacade
	companyID        string
	userID           string
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.service = services.NewCategoryService(suite.mockCategoryRepo, suite.mockEntryRepo, suite.mockMovementRepo)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *CategoryServiceTestSuite) TestCreateCategory() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{Name: "Sales", Kind: domain.KindRevenue, Code: "1.01"}

	suite.mockCategoryRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, suite.companyID, req, suite.userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Sales", category.Name)
	assert.Equal(suite.T(), domain.KindRevenue, category.Kind)
	assert.Equal(suite.T(), suite.companyID, category.CompanyID)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteBlockedWhileEntriesExist() {
	ctx := context.Background()
	categoryID := uuid.NewString()

	suite.mockEntryRepo.On("CountEntriesByCategory", ctx, suite.companyID, categoryID).Return(int64(2), nil).Once()

	err := suite.service.DeleteCategory(ctx, suite.companyID, categoryID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "DeleteCategory", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestDeleteBlockedWhileMovementsExist() {
	ctx := context.Background()
	categoryID := uuid.NewString()

	suite.mockEntryRepo.On("CountEntriesByCategory", ctx, suite.companyID, categoryID).Return(int64(0), nil).Once()
	suite.mockMovementRepo.On("CountMovementsByCategory", ctx, suite.companyID, categoryID).Return(int64(4), nil).Once()

	err := suite.service.DeleteCategory(ctx, suite.companyID, categoryID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "DeleteCategory", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestDeleteUnusedCategory() {
	ctx := context.Background()
	categoryID := uuid.NewString()

	suite.mockEntryRepo.On("CountEntriesByCategory", ctx, suite.companyID, categoryID).Return(int64(0), nil).Once()
	suite.mockMovementRepo.On("CountMovementsByCategory", ctx, suite.companyID, categoryID).Return(int64(0), nil).Once()
	suite.mockCategoryRepo.On("DeleteCategory", ctx, suite.companyID, categoryID).Return(nil).Once()

	err := suite.service.DeleteCategory(ctx, suite.companyID, categoryID)

	assert.NoError(suite.T(), err)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
