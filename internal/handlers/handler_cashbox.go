package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/services"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
	"github.com/gestorsaas/gestor_financeiro_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type cashBoxHandler struct {
	cashBoxSvc portssvc.CashBoxSvcFacade
}

func newCashBoxHandler(cashBoxSvc portssvc.CashBoxSvcFacade) *cashBoxHandler {
	return &cashBoxHandler{cashBoxSvc: cashBoxSvc}
}

// createCashBox godoc
// @Summary Create a new cash box
// @Description Creates a cash box with an opening balance for the authenticated company
// @Tags CashBoxes
// @Accept json
// @Produce json
// @Param cashBox body dto.CreateCashBoxRequest true "Cash box details"
// @Success 201 {object} dto.CashBoxResponse "Successfully created cash box"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Duplicate cash box name"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /cash-boxes [post]
func (h *cashBoxHandler) createCashBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCashBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body for cash box creation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	companyID, userID, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	cashBox, err := h.cashBoxSvc.CreateCashBox(c.Request.Context(), companyID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create cash box")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCashBoxResponse(cashBox))
}

// getCashBox godoc
// @Summary Get a cash box by ID
// @Description Retrieves a single cash box of the authenticated company
// @Tags CashBoxes
// @Produce json
// @Param cashBoxID path string true "Cash Box ID"
// @Success 200 {object} dto.CashBoxResponse "Successfully retrieved cash box"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Cash box not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /cash-boxes/{cashBoxID} [get]
func (h *cashBoxHandler) getCashBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cashBoxID := c.Param("cashBoxID")

	companyID, _, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	cashBox, err := h.cashBoxSvc.GetCashBoxByID(c.Request.Context(), companyID, cashBoxID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve cash box")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashBoxResponse(cashBox))
}

// listCashBoxes godoc
// @Summary List cash boxes
// @Description Lists all cash boxes of the authenticated company
// @Tags CashBoxes
// @Produce json
// @Success 200 {array} dto.CashBoxResponse "Successfully retrieved cash boxes"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /cash-boxes [get]
func (h *cashBoxHandler) listCashBoxes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, _, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	cashBoxes, err := h.cashBoxSvc.ListCashBoxes(c.Request.Context(), companyID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list cash boxes")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCashBoxResponse(cashBoxes))
}

// updateCashBox godoc
// @Summary Update a cash box
// @Description Updates a cash box's name or opening balance
// @Tags CashBoxes
// @Accept json
// @Produce json
// @Param cashBoxID path string true "Cash Box ID"
// @Param cashBox body dto.UpdateCashBoxRequest true "Fields to update"
// @Success 200 {object} dto.CashBoxResponse "Successfully updated cash box"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Cash box not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /cash-boxes/{cashBoxID} [put]
func (h *cashBoxHandler) updateCashBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cashBoxID := c.Param("cashBoxID")

	var req dto.UpdateCashBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	companyID, userID, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	cashBox, err := h.cashBoxSvc.UpdateCashBox(c.Request.Context(), companyID, cashBoxID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to update cash box")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashBoxResponse(cashBox))
}

// deleteCashBox godoc
// @Summary Delete a cash box
// @Description Deletes a cash box that has no recorded movements
// @Tags CashBoxes
// @Produce json
// @Param cashBoxID path string true "Cash Box ID"
// @Success 204 "Successfully deleted cash box"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Cash box not found"
// @Failure 409 {object} map[string]string "Cash box still has movements"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /cash-boxes/{cashBoxID} [delete]
func (h *cashBoxHandler) deleteCashBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cashBoxID := c.Param("cashBoxID")

	companyID, _, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	if err := h.cashBoxSvc.DeleteCashBox(c.Request.Context(), companyID, cashBoxID); err != nil {
		writeServiceError(c, logger, err, "Failed to delete cash box")
		return
	}

	c.Status(http.StatusNoContent)
}

// getCashBoxBalance godoc
// @Summary Get a cash box running balance
// @Description Returns the opening balance plus all movements of the box up to the given date (defaults to today)
// @Tags CashBoxes
// @Produce json
// @Param cashBoxID path string true "Cash Box ID"
// @Param asOf query string false "Balance date (YYYY-MM-DD)" Format(date)
// @Success 200 {object} dto.CashBoxBalanceResponse "Successfully calculated balance"
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Cash box not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /cash-boxes/{cashBoxID}/balance [get]
func (h *cashBoxHandler) getCashBoxBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cashBoxID := c.Param("cashBoxID")

	asOf := time.Now()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date, expected YYYY-MM-DD"})
			return
		}
		asOf = parsed
	}

	companyID, _, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	balance, err := h.cashBoxSvc.CalculateRunningBalance(c.Request.Context(), companyID, cashBoxID, asOf)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to calculate cash box balance")
		return
	}

	c.JSON(http.StatusOK, dto.CashBoxBalanceResponse{
		CashBoxID: cashBoxID,
		AsOf:      asOf,
		Balance:   balance,
	})
}

// registerCashBoxRoutes wires the cash box endpoints into the router group.
func registerCashBoxRoutes(rg *gin.RouterGroup, cashBoxSvc portssvc.CashBoxSvcFacade) {
	h := newCashBoxHandler(cashBoxSvc)

	cashBoxes := rg.Group("/cash-boxes")
	{
		cashBoxes.POST("", h.createCashBox)
		cashBoxes.GET("", h.listCashBoxes)
		cashBoxes.GET("/:cashBoxID", h.getCashBox)
		cashBoxes.PUT("/:cashBoxID", h.updateCashBox)
		cashBoxes.DELETE("/:cashBoxID", h.deleteCashBox)
		cashBoxes.GET("/:cashBoxID/balance", h.getCashBoxBalance)
	}
}
