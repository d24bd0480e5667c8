package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/services"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
	"github.com/gestorsaas/gestor_financeiro_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type entryHandler struct {
	entrySvc portssvc.EntrySvcFacade
}

func newEntryHandler(entrySvc portssvc.EntrySvcFacade) *entryHandler {
	return &entryHandler{entrySvc: entrySvc}
}

// createEntry godoc
// @Summary Create a scheduled entry
// @Description Creates a single payable or receivable for the authenticated company
// @Tags Entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse "Successfully created entry"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body for entry creation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	companyID, userID, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	entry, err := h.entrySvc.CreateEntry(c.Request.Context(), companyID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// createInstallments godoc
// @Summary Create an installment series
// @Description Generates a group of scheduled entries by dividing the amount plus interest evenly, with monthly due dates
// @Tags Entries
// @Accept json
// @Produce json
// @Param installments body dto.CreateInstallmentsRequest true "Installment series details"
// @Success 201 {array} dto.EntryResponse "Successfully created entries"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /entries/installments [post]
func (h *entryHandler) createInstallments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInstallmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body for installment creation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	companyID, userID, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	entries, err := h.entrySvc.CreateInstallments(c.Request.Context(), companyID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create installments")
		return
	}

	c.JSON(http.StatusCreated, dto.ToListEntryResponse(entries))
}

// getEntry godoc
// @Summary Get a scheduled entry by ID
// @Description Retrieves a single scheduled entry of the authenticated company
// @Tags Entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse "Successfully retrieved entry"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /entries/{entryID} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	companyID, _, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	entry, err := h.entrySvc.GetEntryByID(c.Request.Context(), companyID, entryID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List scheduled entries
// @Description Lists the company's entries. The OVERDUE status selects pending entries past their due date.
// @Tags Entries
// @Produce json
// @Param status query string false "Filter by status" Enums(PENDING, SETTLED, CANCELLED, OVERDUE)
// @Param kind query string false "Filter by category kind" Enums(REVENUE, EXPENSE)
// @Param categoryID query string false "Filter by category"
// @Param registrationID query string false "Filter by registration"
// @Param dueFrom query string false "Due date lower bound (YYYY-MM-DD)" Format(date)
// @Param dueTo query string false "Due date upper bound (YYYY-MM-DD)" Format(date)
// @Success 200 {array} dto.EntryResponse "Successfully retrieved entries"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	companyID, _, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	entries, err := h.entrySvc.ListEntries(c.Request.Context(), companyID, params)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListEntryResponse(entries))
}

// updateEntry godoc
// @Summary Update a scheduled entry
// @Description Updates a pending entry's details. Settled and cancelled entries cannot change.
// @Tags Entries
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param entry body dto.UpdateEntryRequest true "Fields to update"
// @Success 200 {object} dto.EntryResponse "Successfully updated entry"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is not pending"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /entries/{entryID} [put]
func (h *entryHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	companyID, userID, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	entry, err := h.entrySvc.UpdateEntry(c.Request.Context(), companyID, entryID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to update entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// cancelEntry godoc
// @Summary Cancel a scheduled entry
// @Description Marks a pending entry as cancelled
// @Tags Entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 204 "Successfully cancelled entry"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is not pending"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /entries/{entryID}/cancel [post]
func (h *entryHandler) cancelEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	companyID, userID, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	if err := h.entrySvc.CancelEntry(c.Request.Context(), companyID, entryID, userID); err != nil {
		writeServiceError(c, logger, err, "Failed to cancel entry")
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteEntry godoc
// @Summary Delete a scheduled entry
// @Description Deletes an entry. Settled entries must have their settlement movement deleted first.
// @Tags Entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 204 "Successfully deleted entry"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is settled"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /entries/{entryID} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	companyID, _, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	if err := h.entrySvc.DeleteEntry(c.Request.Context(), companyID, entryID); err != nil {
		writeServiceError(c, logger, err, "Failed to delete entry")
		return
	}

	c.Status(http.StatusNoContent)
}

// settleEntry godoc
// @Summary Settle a scheduled entry
// @Description Records the cash movement that pays a pending entry and marks it settled. The cash box and settlement date are required.
// @Tags Entries
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param settlement body dto.SettleEntryRequest true "Settlement details"
// @Success 201 {object} dto.MovementResponse "Successfully settled entry"
// @Failure 400 {object} map[string]string "Validation error or no cash box available"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is not pending"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /entries/{entryID}/settle [post]
func (h *entryHandler) settleEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	var req dto.SettleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body for settlement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	companyID, userID, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	movement, err := h.entrySvc.SettleEntry(c.Request.Context(), companyID, entryID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to settle entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// registerEntryRoutes wires the scheduled entry endpoints into the router group.
func registerEntryRoutes(rg *gin.RouterGroup, entrySvc portssvc.EntrySvcFacade) {
	h := newEntryHandler(entrySvc)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createEntry)
		entries.POST("/installments", h.createInstallments)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.PUT("/:entryID", h.updateEntry)
		entries.DELETE("/:entryID", h.deleteEntry)
		entries.POST("/:entryID/cancel", h.cancelEntry)
		entries.POST("/:entryID/settle", h.settleEntry)
	}
}
