package handlers

import (
	"net/http"
	"strings"

	"hostel-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler handles HTTP requests for categories and their options
type CategoryHandler struct {
	service service.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service service.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// ListCategories handles GET /api/v1/categories
// @Summary List categories
// @Description List every category with its options in display order
// @Tags categories
// @Produce json
// @Success 200 {array} service.CategoryResponse "Categories"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "list categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST /api/v1/categories
// @Summary Create a category
// @Description Create a category with optional initial options and a sentinel option
// @Tags categories
// @Accept json
// @Produce json
// @Param category body service.CreateCategoryRequest true "Category data"
// @Success 201 {object} service.CategoryResponse "Created category"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Category already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req service.CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles PUT /api/v1/categories/:id
// @Summary Update a category
// @Description Rename a category. When options is present the option list is replaced and existing tags in the category are removed.
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Param category body service.UpdateCategoryRequest true "Category data"
// @Success 200 {object} service.CategoryResponse "Updated category"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Failure 409 {object} ErrorResponse "Category name taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := uuidParam(c, "id", "category")
	if !ok {
		return
	}
	var req service.UpdateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.service.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err, "update category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/v1/categories/:id
// @Summary Delete a category
// @Description Delete a category together with its options and every tag link that used it
// @Tags categories
// @Param id path string true "Category ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid category ID"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := uuidParam(c, "id", "category")
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "delete category")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListOptions handles GET /api/v1/categories/:id/options
// @Summary List category options
// @Tags categories
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 200 {array} service.OptionResponse "Options in display order"
// @Failure 400 {object} ErrorResponse "Invalid category ID"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Router /categories/{id}/options [get]
func (h *CategoryHandler) ListOptions(c *gin.Context) {
	id, ok := uuidParam(c, "id", "category")
	if !ok {
		return
	}

	options, err := h.service.ListOptions(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "list options")
		return
	}
	c.JSON(http.StatusOK, options)
}

// ListOptionsByCategoryName handles GET /api/v1/category-options?category_name=
// @Summary List options by category name
// @Tags categories
// @Produce json
// @Param category_name query string true "Category name"
// @Success 200 {array} service.OptionResponse "Options in display order"
// @Failure 400 {object} ErrorResponse "category_name is required"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Router /category-options [get]
func (h *CategoryHandler) ListOptionsByCategoryName(c *gin.Context) {
	name := strings.TrimSpace(c.Query("category_name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "category_name parameter is required"})
		return
	}

	options, err := h.service.ListOptionsByCategoryName(c.Request.Context(), name)
	if err != nil {
		handleServiceError(c, err, "list options")
		return
	}
	c.JSON(http.StatusOK, options)
}

// AddOption handles POST /api/v1/categories/:id/options
// @Summary Add an option
// @Description Append an option to the end of the category's option list
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Param option body service.OptionRequest true "Option"
// @Success 201 {object} service.OptionResponse "Created option"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Failure 409 {object} ErrorResponse "Option already exists"
// @Security BearerAuth
// @Router /categories/{id}/options [post]
func (h *CategoryHandler) AddOption(c *gin.Context) {
	id, ok := uuidParam(c, "id", "category")
	if !ok {
		return
	}
	var req service.OptionRequest
	if !bindJSON(c, &req) {
		return
	}

	option, err := h.service.AddOption(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err, "add option")
		return
	}
	c.JSON(http.StatusCreated, option)
}

// RenameOption handles PUT /api/v1/categories/:id/options/:optionId
// @Summary Rename an option
// @Description Rename an option in place. Tag links keep pointing at it.
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Param optionId path string true "Option ID (UUID)"
// @Param option body service.OptionRequest true "Option"
// @Success 200 {object} service.OptionResponse "Renamed option"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Option not found in category"
// @Failure 409 {object} ErrorResponse "Option name taken"
// @Security BearerAuth
// @Router /categories/{id}/options/{optionId} [put]
func (h *CategoryHandler) RenameOption(c *gin.Context) {
	categoryID, ok := uuidParam(c, "id", "category")
	if !ok {
		return
	}
	optionID, ok := uuidParam(c, "optionId", "option")
	if !ok {
		return
	}
	var req service.OptionRequest
	if !bindJSON(c, &req) {
		return
	}

	option, err := h.service.RenameOption(c.Request.Context(), categoryID, optionID, &req)
	if err != nil {
		handleServiceError(c, err, "rename option")
		return
	}
	c.JSON(http.StatusOK, option)
}

// DeleteOption handles DELETE /api/v1/categories/:id/options/:optionId
// @Summary Delete an option
// @Description Delete an option and every tag link that selected it
// @Tags categories
// @Param id path string true "Category ID (UUID)"
// @Param optionId path string true "Option ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Option not found in category"
// @Security BearerAuth
// @Router /categories/{id}/options/{optionId} [delete]
func (h *CategoryHandler) DeleteOption(c *gin.Context) {
	categoryID, ok := uuidParam(c, "id", "category")
	if !ok {
		return
	}
	optionID, ok := uuidParam(c, "optionId", "option")
	if !ok {
		return
	}

	if err := h.service.DeleteOption(c.Request.Context(), categoryID, optionID); err != nil {
		handleServiceError(c, err, "delete option")
		return
	}
	c.Status(http.StatusNoContent)
}
