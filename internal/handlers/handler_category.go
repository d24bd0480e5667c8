package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/gestorsaas/gestor_financeiro_app/internal/core/ports/services"
	"github.com/gestorsaas/gestor_financeiro_app/internal/dto"
	"github.com/gestorsaas/gestor_financeiro_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type categoryHandler struct {
	categorySvc portssvc.CategorySvcFacade
}

func newCategoryHandler(categorySvc portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{categorySvc: categorySvc}
}

// createCategory godoc
// @Summary Create a new category
// @Description Creates a chart-of-accounts category for the authenticated company
// @Tags Categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse "Successfully created category"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Duplicate category code"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body for category creation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	companyID, userID, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	category, err := h.categorySvc.CreateCategory(c.Request.Context(), companyID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// getCategory godoc
// @Summary Get a category by ID
// @Description Retrieves a single category of the authenticated company
// @Tags Categories
// @Produce json
// @Param categoryID path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse "Successfully retrieved category"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /categories/{categoryID} [get]
func (h *categoryHandler) getCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("categoryID")

	companyID, _, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	category, err := h.categorySvc.GetCategoryByID(c.Request.Context(), companyID, categoryID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve category")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// listCategories godoc
// @Summary List categories
// @Description Lists the company's categories, optionally filtered by kind
// @Tags Categories
// @Produce json
// @Param kind query string false "Filter by kind" Enums(REVENUE, EXPENSE)
// @Success 200 {array} dto.CategoryResponse "Successfully retrieved categories"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListCategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	companyID, _, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	categories, err := h.categorySvc.ListCategories(c.Request.Context(), companyID, params.Kind)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}

// updateCategory godoc
// @Summary Update a category
// @Description Updates a category's name, kind or code
// @Tags Categories
// @Accept json
// @Produce json
// @Param categoryID path string true "Category ID"
// @Param category body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.CategoryResponse "Successfully updated category"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 409 {object} map[string]string "Duplicate category code"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /categories/{categoryID} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("categoryID")

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	companyID, userID, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	category, err := h.categorySvc.UpdateCategory(c.Request.Context(), companyID, categoryID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Deletes a category that no scheduled entry references
// @Tags Categories
// @Produce json
// @Param categoryID path string true "Category ID"
// @Success 204 "Successfully deleted category"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 409 {object} map[string]string "Category still referenced by scheduled entries"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /categories/{categoryID} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("categoryID")

	companyID, _, ok := requestIdentity(c, logger)
	if !ok {
		return
	}

	if err := h.categorySvc.DeleteCategory(c.Request.Context(), companyID, categoryID); err != nil {
		writeServiceError(c, logger, err, "Failed to delete category")
		return
	}

	c.Status(http.StatusNoContent)
}

// registerCategoryRoutes wires the category endpoints into the router group.
func registerCategoryRoutes(rg *gin.RouterGroup, categorySvc portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categorySvc)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:categoryID", h.getCategory)
		categories.PUT("/:categoryID", h.updateCategory)
		categories.DELETE("/:categoryID", h.deleteCategory)
	}
}
