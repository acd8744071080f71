package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/penwald/envelope_budget_app/internal/core/ports/services"
	"github.com/penwald/envelope_budget_app/internal/dto"
	"github.com/penwald/envelope_budget_app/internal/middleware"
)

// categoryHandler handles HTTP requests related to envelopes.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func newCategoryHandler(categoryService portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{categoryService: categoryService}
}

// registerCategoryRoutes registers the /categories routes.
func registerCategoryRoutes(group *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categoryService)
	categories := group.Group("/categories")
	categories.POST("", h.createCategory)
	categories.GET("", h.listCategories)
	categories.GET("/:categoryID", h.getCategory)
	categories.PUT("/:categoryID", h.updateCategory)
	categories.DELETE("/:categoryID", h.deleteCategory)
}

// createCategory godoc
// @Summary Create a budget envelope
// @Description Creates a new category with an optional target-change schedule
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} domain.Category
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 409 {object} map[string]string "Category already exists"
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	cat, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// listCategories godoc
// @Summary List budget envelopes
// @Tags categories
// @Produce json
// @Success 200 {object} dto.ListCategoriesResponse
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListCategoriesResponse{Categories: categories})
}

// getCategory godoc
// @Summary Get one budget envelope
// @Tags categories
// @Produce json
// @Param categoryID path string true "Category ID"
// @Success 200 {object} domain.Category
// @Failure 404 {object} map[string]string "Category not found"
// @Router /categories/{categoryID} [get]
func (h *categoryHandler) getCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cat, err := h.categoryService.GetCategoryByID(c.Request.Context(), c.Param("categoryID"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// updateCategory godoc
// @Summary Update a budget envelope
// @Description Replaces the provided fields; omitted fields are untouched
// @Tags categories
// @Accept json
// @Produce json
// @Param categoryID path string true "Category ID"
// @Param category body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} domain.Category
// @Failure 404 {object} map[string]string "Category not found"
// @Router /categories/{categoryID} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for updateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	cat, err := h.categoryService.UpdateCategory(c.Request.Context(), c.Param("categoryID"), req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// deleteCategory godoc
// @Summary Delete a budget envelope
// @Description Removes the category; historical transactions keep a dangling reference which aggregation skips
// @Tags categories
// @Produce json
// @Param categoryID path string true "Category ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Category not found"
// @Router /categories/{categoryID} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.categoryService.DeleteCategory(c.Request.Context(), c.Param("categoryID")); err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
