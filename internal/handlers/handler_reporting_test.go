package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gestorsaas/gestor_financeiro_app/internal/core/domain"
	portssvc "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/services"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
	"github.com/gestorsaas/gestor_financeiro_app/internal/handlers"
	"github.com/gestorsaas/gestor_financeiro_app/internal/middleware"
	"github.com/gestorsaas/gestor_financeiro_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

func (m *MockReportingService) CashFlow(ctx context.Context, companyID string, params dto.CashFlowParams) (*domain.CashFlowStatement, *string, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var cashBoxID *string
	if args.Get(1) != nil {
		cashBoxID = args.Get(1).(*string)
	}
	return args.Get(0).(*domain.CashFlowStatement), cashBoxID, args.Error(2)
}

func (m *MockReportingService) PrintableStatement(ctx context.Context, companyID string, params dto.CashFlowParams) (*domain.PrintableStatement, *string, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var cashBoxID *string
	if args.Get(1) != nil {
		cashBoxID = args.Get(1).(*string)
	}
	return args.Get(0).(*domain.PrintableStatement), cashBoxID, args.Error(2)
}

func (m *MockReportingService) IncomeStatement(ctx context.Context, companyID string, from, to time.Time, synthetic bool) (*domain.IncomeStatement, error) {
	args := m.Called(ctx, companyID, from, to, synthetic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatement), args.Error(1)
}

// --- Test Suite ---
type ReportingHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockReportingSvc *MockReportingService
	jwtSecret        string
	companyID        string
	userID           string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ReportingHandlerTestSuite) generateTestToken() string {
	claims := middleware.AppClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "gestor-test",
			Subject:   suite.userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		CompanyID: suite.companyID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.mockReportingSvc = new(MockReportingService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skips swagger route setup
	}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Reporting: suite.mockReportingSvc,
	})
}

func (suite *ReportingHandlerTestSuite) doRequest(path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReportingHandlerTestSuite) emptyStatement() *domain.CashFlowStatement {
	return &domain.CashFlowStatement{
		Movements:      []domain.Movement{},
		OpeningBalance: decimal.Zero,
		PeriodTotal:    decimal.Zero,
		ClosingBalance: decimal.Zero,
	}
}

func (suite *ReportingHandlerTestSuite) TestCashFlowNamedCashBox() {
	boxID := uuid.NewString()

	suite.mockReportingSvc.On("CashFlow", mock.Anything, suite.companyID, mock.MatchedBy(func(p dto.CashFlowParams) bool {
		return p.Selection.CashBoxID != nil && *p.Selection.CashBoxID == boxID && !p.Selection.AllBoxes
	})).Return(suite.emptyStatement(), &boxID, nil).Once()

	w := suite.doRequest(fmt.Sprintf("/api/v1/reports/cash-flow?from=2026-08-01&to=2026-08-31&cashBoxID=%s", boxID))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CashFlowResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(boxID, *resp.CashBoxID)
	suite.mockReportingSvc.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestCashFlowEmptyParamMeansAllBoxes() {
	suite.mockReportingSvc.On("CashFlow", mock.Anything, suite.companyID, mock.MatchedBy(func(p dto.CashFlowParams) bool {
		return p.Selection.CashBoxID == nil && p.Selection.AllBoxes
	})).Return(suite.emptyStatement(), nil, nil).Once()

	w := suite.doRequest("/api/v1/reports/cash-flow?from=2026-08-01&to=2026-08-31&cashBoxID=")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReportingSvc.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestCashFlowAbsentParamDefersToDefault() {
	suite.mockReportingSvc.On("CashFlow", mock.Anything, suite.companyID, mock.MatchedBy(func(p dto.CashFlowParams) bool {
		return p.Selection.CashBoxID == nil && !p.Selection.AllBoxes
	})).Return(suite.emptyStatement(), nil, nil).Once()

	w := suite.doRequest("/api/v1/reports/cash-flow?from=2026-08-01&to=2026-08-31")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReportingSvc.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestCashFlowRejectsMissingPeriod() {
	w := suite.doRequest("/api/v1/reports/cash-flow?from=2026-08-01")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingSvc.AssertNotCalled(suite.T(), "CashFlow", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingHandlerTestSuite) TestCashFlowRejectsInvertedPeriod() {
	w := suite.doRequest("/api/v1/reports/cash-flow?from=2026-08-31&to=2026-08-01")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ReportingHandlerTestSuite) TestIncomeStatementSyntheticFlag() {
	statement := &domain.IncomeStatement{
		Revenues:     []domain.CategoryTotal{},
		Expenses:     []domain.CategoryTotal{},
		TotalRevenue: decimal.Zero,
		TotalExpense: decimal.Zero,
		Result:       decimal.Zero,
	}

	suite.mockReportingSvc.On("IncomeStatement", mock.Anything, suite.companyID,
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		true).Return(statement, nil).Once()

	w := suite.doRequest("/api/v1/reports/income-statement?from=2026-08-01&to=2026-08-31&synthetic=true")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.IncomeStatementResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Synthetic)
	suite.mockReportingSvc.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestUnauthenticatedRequestRejected() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/cash-flow?from=2026-08-01&to=2026-08-31", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestReportingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
