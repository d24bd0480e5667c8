package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/services"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
	"github.com/gestorsaas/gestor_financeiro_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type movementHandler struct {
	movementSvc portssvc.MovementSvcFacade
}

func newMovementHandler(movementSvc portssvc.MovementSvcFacade) *movementHandler {
	return &movementHandler{movementSvc: movementSvc}
}

// createMovement godoc
// @Summary Record a cash movement
// @Description Records a credit or debit against a cash box. The amount sign is normalized per kind.
// @Tags Movements
// @Accept json
// @Produce json
// @Param movement body dto.CreateMovementRequest true "Movement details"
// @Success 201 {object} dto.MovementResponse "Successfully recorded movement"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /movements [post]
func (h *movementHandler) createMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body for movement creation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	companyID, userID, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	movement, err := h.movementSvc.CreateMovement(c.Request.Context(), companyID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to record movement")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// getMovement godoc
// @Summary Get a movement by ID
// @Description Retrieves a single cash movement of the authenticated company
// @Tags Movements
// @Produce json
// @Param movementID path string true "Movement ID"
// @Success 200 {object} dto.MovementResponse "Successfully retrieved movement"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Movement not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /movements/{movementID} [get]
func (h *movementHandler) getMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movementID := c.Param("movementID")

	companyID, _, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	movement, err := h.movementSvc.GetMovementByID(c.Request.Context(), companyID, movementID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve movement")
		return
	}

	c.JSON(http.StatusOK, dto.ToMovementResponse(movement))
}

// listMovements godoc
// @Summary List movements
// @Description Lists the company's cash movements filtered by box, category or date range
// @Tags Movements
// @Produce json
// @Param cashBoxID query string false "Filter by cash box"
// @Param categoryID query string false "Filter by category"
// @Param from query string false "Movement date lower bound (YYYY-MM-DD)" Format(date)
// @Param to query string false "Movement date upper bound (YYYY-MM-DD)" Format(date)
// @Success 200 {array} dto.MovementResponse "Successfully retrieved movements"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /movements [get]
func (h *movementHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	companyID, _, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	movements, err := h.movementSvc.ListMovements(c.Request.Context(), companyID, params)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list movements")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMovementResponse(movements))
}

// updateMovement godoc
// @Summary Update a movement
// @Description Updates a movement's details, re-normalizing the amount sign
// @Tags Movements
// @Accept json
// @Produce json
// @Param movementID path string true "Movement ID"
// @Param movement body dto.UpdateMovementRequest true "Fields to update"
// @Success 200 {object} dto.MovementResponse "Successfully updated movement"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Movement not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /movements/{movementID} [put]
func (h *movementHandler) updateMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movementID := c.Param("movementID")

	var req dto.UpdateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	companyID, userID, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	movement, err := h.movementSvc.UpdateMovement(c.Request.Context(), companyID, movementID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to update movement")
		return
	}

	c.JSON(http.StatusOK, dto.ToMovementResponse(movement))
}

// deleteMovement godoc
// @Summary Delete a movement
// @Description Deletes a movement. Deleting a settlement movement reopens its origin entry as pending.
// @Tags Movements
// @Produce json
// @Param movementID path string true "Movement ID"
// @Success 204 "Successfully deleted movement"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Movement not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /movements/{movementID} [delete]
func (h *movementHandler) deleteMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movementID := c.Param("movementID")

	companyID, userID, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	if err := h.movementSvc.DeleteMovement(c.Request.Context(), companyID, movementID, userID); err != nil {
		writeServiceError(c, logger, err, "Failed to delete movement")
		return
	}

	c.Status(http.StatusNoContent)
}

// registerMovementRoutes wires the movement endpoints into the router group.
func registerMovementRoutes(rg *gin.RouterGroup, movementSvc portssvc.MovementSvcFacade) {
	h := newMovementHandler(movementSvc)

	movements := rg.Group("/movements")
	{
		movements.POST("", h.createMovement)
		movements.GET("", h.listMovements)
		movements.GET("/:movementID", h.getMovement)
		movements.PUT("/:movementID", h.updateMovement)
		movements.DELETE("/:movementID", h.deleteMovement)
	}
}
