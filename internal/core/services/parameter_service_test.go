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

type ParameterServiceTestSuite struct {
	suite.Suite
	mockParameterRepo *MockParameterRepository
	mockCashBoxRepo   *MockCashBoxRepository
	service           portssvc.ParameterSvcFacade
	companyID         string
	userID            string
}

func (suite *ParameterServiceTestSuite) SetupTest() {
	suite.mockParameterRepo = new(MockParameterRepository)
	suite.mockCashBoxRepo = new(MockCashBoxRepository)
	suite.service = services.NewParameterService(suite.mockParameterRepo, suite.mockCashBoxRepo)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *ParameterServiceTestSuite) TestSetDefaultCashBoxValidatesBox() {
	ctx := context.Background()
	req := dto.SetParameterRequest{Key: domain.ParamDefaultCashBoxID, Value: "missing-box"}

	suite.mockCashBoxRepo.On("FindCashBoxByID", ctx, suite.companyID, "missing-box").Return(nil, apperrors.ErrNotFound).Once()

	parameter, err := suite.service.SetParameter(ctx, suite.companyID, req, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Nil(suite.T(), parameter)
	suite.mockParameterRepo.AssertNotCalled(suite.T(), "UpsertParameter", mock.Anything, mock.Anything)
}

func (suite *ParameterServiceTestSuite) TestSetDefaultCashBoxUpserts() {
	ctx := context.Background()
	boxID := uuid.NewString()
	req := dto.SetParameterRequest{Key: domain.ParamDefaultCashBoxID, Value: boxID}

	suite.mockCashBoxRepo.On("FindCashBoxByID", ctx, suite.companyID, boxID).Return(&domain.CashBox{CashBoxID: boxID}, nil).Once()
	suite.mockParameterRepo.On("UpsertParameter", ctx, mock.AnythingOfType("domain.SystemParameter")).Return(nil).Once()

	parameter, err := suite.service.SetParameter(ctx, suite.companyID, req, suite.userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), boxID, parameter.Value)
	suite.mockParameterRepo.AssertExpectations(suite.T())
}

func (suite *ParameterServiceTestSuite) TestResolveDefaultReturnsNilWhenUnset() {
	ctx := context.Background()

	suite.mockParameterRepo.On("FindParameterByKey", ctx, suite.companyID, domain.ParamDefaultCashBoxID).Return(nil, apperrors.ErrNotFound).Once()

	id, err := suite.service.ResolveDefaultCashBoxID(ctx, suite.companyID)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), id)
}

func (suite *ParameterServiceTestSuite) TestResolveDefaultIgnoresStaleBox() {
	ctx := context.Background()
	parameter := domain.SystemParameter{
		ParameterID: uuid.NewString(),
		CompanyID:   suite.companyID,
		Key:         domain.ParamDefaultCashBoxID,
		Value:       "deleted-box",
	}

	suite.mockParameterRepo.On("FindParameterByKey", ctx, suite.companyID, domain.ParamDefaultCashBoxID).Return(&parameter, nil).Once()
	suite.mockCashBoxRepo.On("FindCashBoxByID", ctx, suite.companyID, "deleted-box").Return(nil, apperrors.ErrNotFound).Once()

	id, err := suite.service.ResolveDefaultCashBoxID(ctx, suite.companyID)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), id)
}

func (suite *ParameterServiceTestSuite) TestResolveDefaultReturnsExistingBox() {
	ctx := context.Background()
	boxID := uuid.NewString()
	parameter := domain.SystemParameter{
		ParameterID: uuid.NewString(),
		CompanyID:   suite.companyID,
		Key:         domain.ParamDefaultCashBoxID,
		Value:       boxID,
	}

	suite.mockParameterRepo.On("FindParameterByKey", ctx, suite.companyID, domain.ParamDefaultCashBoxID).Return(&parameter, nil).Once()
	suite.mockCashBoxRepo.On("FindCashBoxByID", ctx, suite.companyID, boxID).Return(&domain.CashBox{CashBoxID: boxID}, nil).Once()

	id, err := suite.service.ResolveDefaultCashBoxID(ctx, suite.companyID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), boxID, *id)
}

func TestParameterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ParameterServiceTestSuite))
}
