package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/services"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
	"github.com/gestorsaas/gestor_financeiro_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type parameterHandler struct {
	parameterSvc portssvc.ParameterSvcFacade
}

func newParameterHandler(parameterSvc portssvc.ParameterSvcFacade) *parameterHandler {
	return &parameterHandler{parameterSvc: parameterSvc}
}

// setParameter godoc
// @Summary Set a system parameter
// @Description Creates or replaces a tenant-scoped parameter. The default cash box parameter must name an existing box.
// @Tags Parameters
// @Accept json
// @Produce json
// @Param parameter body dto.SetParameterRequest true "Parameter key and value"
// @Success 200 {object} dto.ParameterResponse "Successfully set parameter"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /parameters [put]
func (h *parameterHandler) setParameter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetParameterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body for parameter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	companyID, userID, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	parameter, err := h.parameterSvc.SetParameter(c.Request.Context(), companyID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to set parameter")
		return
	}

	c.JSON(http.StatusOK, dto.ToParameterResponse(parameter))
}

// getParameter godoc
// @Summary Get a system parameter
// @Description Retrieves a parameter by key
// @Tags Parameters
// @Produce json
// @Param key path string true "Parameter key"
// @Success 200 {object} dto.ParameterResponse "Successfully retrieved parameter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Parameter not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /parameters/{key} [get]
func (h *parameterHandler) getParameter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	key := c.Param("key")

	companyID, _, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	parameter, err := h.parameterSvc.GetParameter(c.Request.Context(), companyID, key)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve parameter")
		return
	}

	c.JSON(http.StatusOK, dto.ToParameterResponse(parameter))
}

// listParameters godoc
// @Summary List system parameters
// @Description Lists all parameters of the authenticated company
// @Tags Parameters
// @Produce json
// @Success 200 {array} dto.ParameterResponse "Successfully retrieved parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /parameters [get]
func (h *parameterHandler) listParameters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, _, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	parameters, err := h.parameterSvc.ListParameters(c.Request.Context(), companyID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list parameters")
		return
	}

	c.JSON(http.StatusOK, dto.ToListParameterResponse(parameters))
}

// deleteParameter godoc
// @Summary Delete a system parameter
// @Description Removes a parameter by key
// @Tags Parameters
// @Produce json
// @Param key path string true "Parameter key"
// @Success 204 "Successfully deleted parameter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Parameter not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /parameters/{key} [delete]
func (h *parameterHandler) deleteParameter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	key := c.Param("key")

	companyID, _, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	if err := h.parameterSvc.DeleteParameter(c.Request.Context(), companyID, key); err != nil {
		writeServiceError(c, logger, err, "Failed to delete parameter")
		return
	}

	c.Status(http.StatusNoContent)
}

// registerParameterRoutes wires the parameter endpoints into the router group.
func registerParameterRoutes(rg *gin.RouterGroup, parameterSvc portssvc.ParameterSvcFacade) {
	h := newParameterHandler(parameterSvc)

	parameters := rg.Group("/parameters")
	{
		parameters.PUT("", h.setParameter)
		parameters.GET("", h.listParameters)
		parameters.GET("/:key", h.getParameter)
		parameters.DELETE("/:key", h.deleteParameter)
	}
}
