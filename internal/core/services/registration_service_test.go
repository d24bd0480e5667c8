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

type RegistrationServiceTestSuite struct {
	suite.Suite
	mockRegistrationRepo *MockRegistrationRepository
	mockEntryRepo        *MockEntryRepository
	service              portssvc.RegistrationSvcFacade
	companyID            string
	userID               string
}

func (suite *RegistrationServiceTestSuite) SetupTest() {
	suite.mockRegistrationRepo = new(MockRegistrationRepository)
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.service = services.NewRegistrationService(suite.mockRegistrationRepo, suite.mockEntryRepo)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *RegistrationServiceTestSuite) TestCreateDefaultsToActive() {
	ctx := context.Background()
	req := dto.CreateRegistrationRequest{
		LegalName:  "Fornecedora XYZ",
		Role:       domain.RoleSupplier,
		PersonType: domain.PersonCompany,
	}

	suite.mockRegistrationRepo.On("SaveRegistration", ctx, mock.AnythingOfType("domain.Registration")).Return(nil).Once()

	registration, err := suite.service.CreateRegistration(ctx, suite.companyID, req, suite.userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.RegistrationActive, registration.Status)
	assert.Equal(suite.T(), domain.RoleSupplier, registration.Role)
	suite.mockRegistrationRepo.AssertExpectations(suite.T())
}

func (suite *RegistrationServiceTestSuite) TestDeleteBlockedWhileEntriesExist() {
	ctx := context.Background()
	registrationID := uuid.NewString()

	suite.mockEntryRepo.On("CountEntriesByRegistration", ctx, suite.companyID, registrationID).Return(int64(1), nil).Once()

	err := suite.service.DeleteRegistration(ctx, suite.companyID, registrationID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
	suite.mockRegistrationRepo.AssertNotCalled(suite.T(), "DeleteRegistration", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RegistrationServiceTestSuite) TestDeleteUnreferencedRegistration() {
	ctx := context.Background()
	registrationID := uuid.NewString()

	suite.mockEntryRepo.On("CountEntriesByRegistration", ctx, suite.companyID, registrationID).Return(int64(0), nil).Once()
	suite.mockRegistrationRepo.On("DeleteRegistration", ctx, suite.companyID, registrationID).Return(nil).Once()

	err := suite.service.DeleteRegistration(ctx, suite.companyID, registrationID)

	assert.NoError(suite.T(), err)
	suite.mockRegistrationRepo.AssertExpectations(suite.T())
}

func TestRegistrationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegistrationServiceTestSuite))
}
