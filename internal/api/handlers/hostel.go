package handlers

import (
	"net/http"

	"hostel-directory-backend/internal/auth"
	"hostel-directory-backend/internal/database/models"
	"hostel-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HostelHandler handles HTTP requests for hostels
type HostelHandler struct {
	service service.HostelServiceInterface
	tags    entityTagHandler
}

// NewHostelHandler creates a new hostel handler
func NewHostelHandler(hostels service.HostelServiceInterface, tags service.TagServiceInterface) *HostelHandler {
	return &HostelHandler{
		service: hostels,
		tags:    entityTagHandler{kind: models.EntityTypeHostel, tags: tags},
	}
}

// ListHostels handles GET /api/v1/hostels
// @Summary List hostels
// @Description List active hostels, newest first. Repeated filter parameters narrow the list: an entity must match every category, and any option within a category.
// @Tags hostels
// @Produce json
// @Param filter query []string false "Category:Option filter" collectionFormat(multi)
// @Success 200 {array} service.HostelResponse "Hostels"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /hostels [get]
func (h *HostelHandler) ListHostels(c *gin.Context) {
	filters, ok := filtersFromQuery(c)
	if !ok {
		return
	}

	hostels, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		handleServiceError(c, err, "list hostels")
		return
	}
	c.JSON(http.StatusOK, hostels)
}

// GetHostel handles GET /api/v1/hostels/:id
// @Summary Get hostel by ID
// @Description Get an active hostel with its tags, images, rating summary and most recent comments
// @Tags hostels
// @Produce json
// @Param id path string true "Hostel ID (UUID)"
// @Success 200 {object} service.HostelResponse "Hostel"
// @Failure 400 {object} ErrorResponse "Invalid hostel ID"
// @Failure 404 {object} ErrorResponse "Hostel not found"
// @Router /hostels/{id} [get]
func (h *HostelHandler) GetHostel(c *gin.Context) {
	id, ok := uuidParam(c, "id", "hostel")
	if !ok {
		return
	}

	hostel, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "get hostel")
		return
	}
	c.JSON(http.StatusOK, hostel)
}

// CreateHostel handles POST /api/v1/hostels
// @Summary Create a hostel
// @Description Create a hostel and tag it. Mappings that cannot be resolved are skipped and reported in tag_results.
// @Tags hostels
// @Accept json
// @Produce json
// @Param hostel body service.CreateHostelRequest true "Hostel data"
// @Success 201 {object} service.HostelResponse "Created hostel"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /hostels [post]
func (h *HostelHandler) CreateHostel(c *gin.Context) {
	var req service.CreateHostelRequest
	if !bindJSON(c, &req) {
		return
	}
	if userID, ok := auth.GetUserID(c); ok && req.CreatedBy == nil {
		req.CreatedBy = &userID
	}

	hostel, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "create hostel")
		return
	}
	c.JSON(http.StatusCreated, hostel)
}

// UpdateHostel handles PUT /api/v1/hostels/:id
// @Summary Update a hostel
// @Description Replace a hostel's fields. Tags are replaced only when categories is present.
// @Tags hostels
// @Accept json
// @Produce json
// @Param id path string true "Hostel ID (UUID)"
// @Param hostel body service.UpdateHostelRequest true "Hostel data"
// @Success 200 {object} service.HostelResponse "Updated hostel"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Hostel not found"
// @Security BearerAuth
// @Router /hostels/{id} [put]
func (h *HostelHandler) UpdateHostel(c *gin.Context) {
	id, ok := uuidParam(c, "id", "hostel")
	if !ok {
		return
	}
	var req service.UpdateHostelRequest
	if !bindJSON(c, &req) {
		return
	}

	hostel, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err, "update hostel")
		return
	}
	c.JSON(http.StatusOK, hostel)
}

// DeleteHostel handles DELETE /api/v1/hostels/:id
// @Summary Delete a hostel
// @Description Hide a hostel from listings. Its tags, ratings and comments are kept.
// @Tags hostels
// @Param id path string true "Hostel ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid hostel ID"
// @Failure 404 {object} ErrorResponse "Hostel not found"
// @Security BearerAuth
// @Router /hostels/{id} [delete]
func (h *HostelHandler) DeleteHostel(c *gin.Context) {
	id, ok := uuidParam(c, "id", "hostel")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "delete hostel")
		return
	}
	c.Status(http.StatusNoContent)
}

// SetHostelTags handles PUT /api/v1/hostels/:id/tags
// @Summary Replace a hostel's tags
// @Description Replace every tag of the hostel. The response lists the outcome of each mapping.
// @Tags hostels
// @Accept json
// @Produce json
// @Param id path string true "Hostel ID (UUID)"
// @Param tags body service.SetTagsRequest true "Tag mappings"
// @Success 200 {object} service.TagSetResponse "Resulting tag set"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Hostel not found"
// @Security BearerAuth
// @Router /hostels/{id}/tags [put]
func (h *HostelHandler) SetHostelTags(c *gin.Context) {
	h.tags.setTags(c)
}

// LinkHostelTag handles POST /api/v1/hostels/:id/tag-links
// @Summary Link one option to a hostel
// @Description Link an option by ID, replacing the hostel's option in that category
// @Tags hostels
// @Accept json
// @Produce json
// @Param id path string true "Hostel ID (UUID)"
// @Param link body service.LinkTagRequest true "Category and option IDs"
// @Success 200 {object} service.TagSetResponse "Resulting tag set"
// @Failure 400 {object} ErrorResponse "Option does not belong to the category"
// @Failure 404 {object} ErrorResponse "Hostel, category or option not found"
// @Security BearerAuth
// @Router /hostels/{id}/tag-links [post]
func (h *HostelHandler) LinkHostelTag(c *gin.Context) {
	h.tags.linkTag(c)
}
