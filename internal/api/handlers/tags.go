package handlers

import (
	"net/http"

	"hostel-directory-backend/internal/database/models"
	"hostel-directory-backend/internal/service"
	"hostel-directory-backend/internal/tagging"

	"github.com/gin-gonic/gin"
)

// filtersFromQuery reads repeated filter=Category:Option parameters
func filtersFromQuery(c *gin.Context) (tagging.Filters, bool) {
	filters, err := tagging.ParseFilters(c.QueryArray("filter"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid filter", Details: err.Error()})
		return nil, false
	}
	return filters, true
}

// entityTagHandler serves the tag endpoints shared by hostels and projects
type entityTagHandler struct {
	kind models.EntityType
	tags service.TagServiceInterface
}

func (h entityTagHandler) setTags(c *gin.Context) {
	id, ok := uuidParam(c, "id", string(h.kind))
	if !ok {
		return
	}
	var req service.SetTagsRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.tags.SetEntityTags(c.Request.Context(), h.kind, id, &req)
	if err != nil {
		handleServiceError(c, err, "set tags")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h entityTagHandler) linkTag(c *gin.Context) {
	id, ok := uuidParam(c, "id", string(h.kind))
	if !ok {
		return
	}
	var req service.LinkTagRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.tags.LinkTag(c.Request.Context(), h.kind, id, &req)
	if err != nil {
		handleServiceError(c, err, "link tag")
		return
	}
	c.JSON(http.StatusOK, resp)
}
