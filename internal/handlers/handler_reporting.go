package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/services"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
	"github.com/gestorsaas/gestor_financeiro_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reportingHandler struct {
	reportingSvc portssvc.ReportingService
}

func newReportingHandler(reportingSvc portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingSvc: reportingSvc}
}

// parsePeriod reads the from/to query parameters, writing a 400 when either is
// missing, malformed or out of order.
func parsePeriod(c *gin.Context) (from, to time.Time, ok bool) {
	var err error
	from, err = time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing from date, expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	to, err = time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing to date, expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to date must not precede from date"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// parseCashBoxSelection reads the three-way cashBoxID query parameter: a value
// names a box, present-but-empty explicitly asks for every box, and an absent
// parameter lets the default cash box parameter decide.
func parseCashBoxSelection(c *gin.Context) dto.CashBoxSelection {
	query := c.Request.URL.Query()
	if !query.Has("cashBoxID") {
		return dto.CashBoxSelection{}
	}
	value := query.Get("cashBoxID")
	if value == "" {
		return dto.CashBoxSelection{AllBoxes: true}
	}
	return dto.CashBoxSelection{CashBoxID: &value}
}

func cashFlowParams(c *gin.Context) (dto.CashFlowParams, bool) {
	from, to, ok := parsePeriod(c)
	if !ok {
		return dto.CashFlowParams{}, false
	}
	params := dto.CashFlowParams{
		Selection: parseCashBoxSelection(c),
		From:      from,
		To:        to,
	}
	if categoryID := c.Query("categoryID"); categoryID != "" {
		params.CategoryID = &categoryID
	}
	return params, true
}

// getCashFlow godoc
// @Summary Cash flow statement
// @Description Period statement of a cash box selection: opening balance, movements and closing balance. Omit cashBoxID to use the default cash box; pass it empty to cover every box.
// @Tags Reports
// @Produce json
// @Param from query string true "Period start (YYYY-MM-DD)" Format(date)
// @Param to query string true "Period end (YYYY-MM-DD)" Format(date)
// @Param cashBoxID query string false "Cash box filter; empty value selects all boxes"
// @Param categoryID query string false "Restrict to one category"
// @Success 200 {object} dto.CashFlowResponse "Successfully generated statement"
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, ok := cashFlowParams(c)
	if !ok {
		return
	}

	companyID, _, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	statement, cashBoxID, err := h.reportingSvc.CashFlow(c.Request.Context(), companyID, params)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to generate cash flow statement")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashFlowResponse(statement, cashBoxID, params.From, params.To))
}

// getPrintableStatement godoc
// @Summary Printable cash statement
// @Description The cash flow statement in printable form, with movements split into credits and debits
// @Tags Reports
// @Produce json
// @Param from query string true "Period start (YYYY-MM-DD)" Format(date)
// @Param to query string true "Period end (YYYY-MM-DD)" Format(date)
// @Param cashBoxID query string false "Cash box filter; empty value selects all boxes"
// @Param categoryID query string false "Restrict to one category"
// @Success 200 {object} dto.PrintableStatementResponse "Successfully generated statement"
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /reports/statement [get]
func (h *reportingHandler) getPrintableStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, ok := cashFlowParams(c)
	if !ok {
		return
	}

	companyID, _, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	statement, cashBoxID, err := h.reportingSvc.PrintableStatement(c.Request.Context(), companyID, params)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to generate printable statement")
		return
	}

	c.JSON(http.StatusOK, dto.ToPrintableStatementResponse(statement, cashBoxID, params.From, params.To))
}

// getIncomeStatement godoc
// @Summary Income statement
// @Description Revenue and expense totals per category over a period. Synthetic mode collapses categories into top-level code groups.
// @Tags Reports
// @Produce json
// @Param from query string true "Period start (YYYY-MM-DD)" Format(date)
// @Param to query string true "Period end (YYYY-MM-DD)" Format(date)
// @Param synthetic query boolean false "Group categories by top-level code"
// @Success 200 {object} dto.IncomeStatementResponse "Successfully generated statement"
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, ok := parsePeriod(c)
	if !ok {
		return
	}
	synthetic := c.DefaultQuery("synthetic", "false") == "true"

	companyID, _, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	statement, err := h.reportingSvc.IncomeStatement(c.Request.Context(), companyID, from, to, synthetic)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to generate income statement")
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(statement, synthetic, from, to))
}

// registerReportingRoutes wires the reporting endpoints into the router group.
func registerReportingRoutes(rg *gin.RouterGroup, reportingSvc portssvc.ReportingService) {
	h := newReportingHandler(reportingSvc)

	reports := rg.Group("/reports")
	{
		reports.GET("/cash-flow", h.getCashFlow)
		reports.GET("/statement", h.getPrintableStatement)
		reports.GET("/income-statement", h.getIncomeStatement)
	}
}
