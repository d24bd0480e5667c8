package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/services"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
	"github.com/gestorsaas/gestor_financeiro_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type registrationHandler struct {
	registrationSvc portssvc.RegistrationSvcFacade
}

func newRegistrationHandler(registrationSvc portssvc.RegistrationSvcFacade) *registrationHandler {
	return &registrationHandler{registrationSvc: registrationSvc}
}

// createRegistration godoc
// @Summary Create a new registration
// @Description Creates a customer or supplier directory entry for the authenticated company
// @Tags Registrations
// @Accept json
// @Produce json
// @Param registration body dto.CreateRegistrationRequest true "Registration details"
// @Success 201 {object} dto.RegistrationResponse "Successfully created registration"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Duplicate document number"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /registrations [post]
func (h *registrationHandler) createRegistration(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body for registration creation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	companyID, userID, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	registration, err := h.registrationSvc.CreateRegistration(c.Request.Context(), companyID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create registration")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRegistrationResponse(registration))
}

// getRegistration godoc
// @Summary Get a registration by ID
// @Description Retrieves a single directory entry of the authenticated company
// @Tags Registrations
// @Produce json
// @Param registrationID path string true "Registration ID"
// @Success 200 {object} dto.RegistrationResponse "Successfully retrieved registration"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Registration not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /registrations/{registrationID} [get]
func (h *registrationHandler) getRegistration(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	registrationID := c.Param("registrationID")

	companyID, _, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	registration, err := h.registrationSvc.GetRegistrationByID(c.Request.Context(), companyID, registrationID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve registration")
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(registration))
}

// listRegistrations godoc
// @Summary List registrations
// @Description Lists the company's directory entries, filtered by role, status or a name/document search
// @Tags Registrations
// @Produce json
// @Param role query string false "Filter by role" Enums(CUSTOMER, SUPPLIER, BOTH)
// @Param status query string false "Filter by status" Enums(ACTIVE, INACTIVE)
// @Param search query string false "Search legal name or document number"
// @Success 200 {array} dto.RegistrationResponse "Successfully retrieved registrations"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /registrations [get]
func (h *registrationHandler) listRegistrations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListRegistrationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	companyID, _, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	registrations, err := h.registrationSvc.ListRegistrations(c.Request.Context(), companyID, params)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list registrations")
		return
	}

	c.JSON(http.StatusOK, dto.ToListRegistrationResponse(registrations))
}

// updateRegistration godoc
// @Summary Update a registration
// @Description Updates a directory entry's details
// @Tags Registrations
// @Accept json
// @Produce json
// @Param registrationID path string true "Registration ID"
// @Param registration body dto.UpdateRegistrationRequest true "Fields to update"
// @Success 200 {object} dto.RegistrationResponse "Successfully updated registration"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Registration not found"
// @Failure 409 {object} map[string]string "Duplicate document number"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /registrations/{registrationID} [put]
func (h *registrationHandler) updateRegistration(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	registrationID := c.Param("registrationID")

	var req dto.UpdateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	companyID, userID, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	registration, err := h.registrationSvc.UpdateRegistration(c.Request.Context(), companyID, registrationID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to update registration")
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(registration))
}

// deleteRegistration godoc
// @Summary Delete a registration
// @Description Deletes a directory entry that no scheduled entry references
// @Tags Registrations
// @Produce json
// @Param registrationID path string true "Registration ID"
// @Success 204 "Successfully deleted registration"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Registration not found"
// @Failure 409 {object} map[string]string "Registration still referenced by scheduled entries"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /registrations/{registrationID} [delete]
func (h *registrationHandler) deleteRegistration(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	registrationID := c.Param("registrationID")

	companyID, _, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	if err := h.registrationSvc.DeleteRegistration(c.Request.Context(), companyID, registrationID); err != nil {
		writeServiceError(c, logger, err, "Failed to delete registration")
		return
	}

	c.Status(http.StatusNoContent)
}

// registerRegistrationRoutes wires the directory endpoints into the router group.
func registerRegistrationRoutes(rg *gin.RouterGroup, registrationSvc portssvc.RegistrationSvcFacade) {
	h := newRegistrationHandler(registrationSvc)

	registrations := rg.Group("/registrations")
	{
		registrations.POST("", h.createRegistration)
		registrations.GET("", h.listRegistrations)
		registrations.GET("/:registrationID", h.getRegistration)
		registrations.PUT("/:registrationID", h.updateRegistration)
		registrations.DELETE("/:registrationID", h.deleteRegistration)
	}
}
