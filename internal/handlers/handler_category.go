package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/middleware"
	"github.com/gin-gonic/gin"
)

type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func registerCategoryRoutes(rg *gin.RouterGroup, cs portssvc.CategorySvcFacade) {
	h := &categoryHandler{categoryService: cs}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.addCategory)
		categories.DELETE("/:name", h.deleteCategory)
	}
}

// listCategories godoc
// @Summary List categories
// @Description Categories are shared by every container. When the store is unavailable the built-in set is returned with source "defaults".
// @Tags categories
// @Produce json
// @Success 200 {object} dto.ListCategoriesResponse
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	list := h.categoryService.GetCategories(c.Request.Context())
	if list.FromDefaults() {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Serving built-in categories", slog.Any("cause", list.Cause))
	}
	c.JSON(http.StatusOK, dto.ToListCategoriesResponse(list))
}

// addCategory godoc
// @Summary Add a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} domain.Category
// @Failure 400 {object} map[string]string "Invalid input or reserved name"
// @Failure 409 {object} map[string]string "Category already exists"
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) addCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.categoryService.AddCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to add category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Built-in categories and categories used by any transaction cannot be deleted
// @Tags categories
// @Param name path string true "Category name"
// @Success 204
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 409 {object} map[string]string "Built-in or in use"
// @Security BearerAuth
// @Router /categories/{name} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")

	if err := h.categoryService.DeleteCategory(c.Request.Context(), name); err != nil {
		respondError(c, logger, err, "Failed to delete category")
		return
	}
	logger.Info("Category deleted", slog.String("category", name))
	c.Status(http.StatusNoContent)
}
