package handlers

import (
	"net/http"

	"hostel-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ImageHandler handles HTTP requests for hostel image metadata
type ImageHandler struct {
	service service.ImageServiceInterface
}

// NewImageHandler creates a new image handler
func NewImageHandler(service service.ImageServiceInterface) *ImageHandler {
	return &ImageHandler{service: service}
}

// ListHostelImages handles GET /api/v1/hostels/:id/images
// @Summary List a hostel's images
// @Tags images
// @Produce json
// @Param id path string true "Hostel ID (UUID)"
// @Success 200 {array} service.ImageResponse "Images, primary first"
// @Failure 404 {object} ErrorResponse "Hostel not found"
// @Router /hostels/{id}/images [get]
func (h *ImageHandler) ListHostelImages(c *gin.Context) {
	hostelID, ok := uuidParam(c, "id", "hostel")
	if !ok {
		return
	}

	images, err := h.service.ListByHostel(c.Request.Context(), hostelID)
	if err != nil {
		handleServiceError(c, err, "list images")
		return
	}
	c.JSON(http.StatusOK, images)
}

// AddHostelImage handles POST /api/v1/hostels/:id/images
// @Summary Attach an image to a hostel
// @Description Store image metadata. A primary image demotes the hostel's other images.
// @Tags images
// @Accept json
// @Produce json
// @Param id path string true "Hostel ID (UUID)"
// @Param image body service.CreateImageRequest true "Image"
// @Success 201 {object} service.ImageResponse "Created image"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Hostel not found"
// @Security BearerAuth
// @Router /hostels/{id}/images [post]
func (h *ImageHandler) AddHostelImage(c *gin.Context) {
	hostelID, ok := uuidParam(c, "id", "hostel")
	if !ok {
		return
	}
	var req service.CreateImageRequest
	if !bindJSON(c, &req) {
		return
	}

	image, err := h.service.Add(c.Request.Context(), hostelID, &req)
	if err != nil {
		handleServiceError(c, err, "add image")
		return
	}
	c.JSON(http.StatusCreated, image)
}

// UpdateImage handles PUT /api/v1/images/:id
// @Summary Update image metadata
// @Tags images
// @Accept json
// @Produce json
// @Param id path string true "Image ID (UUID)"
// @Param image body service.UpdateImageRequest true "Changes"
// @Success 200 {object} service.ImageResponse "Updated image"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Image not found"
// @Security BearerAuth
// @Router /images/{id} [put]
func (h *ImageHandler) UpdateImage(c *gin.Context) {
	id, ok := uuidParam(c, "id", "image")
	if !ok {
		return
	}
	var req service.UpdateImageRequest
	if !bindJSON(c, &req) {
		return
	}

	image, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err, "update image")
		return
	}
	c.JSON(http.StatusOK, image)
}

// DeleteImage handles DELETE /api/v1/images/:id
// @Summary Delete image metadata
// @Tags images
// @Param id path string true "Image ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Image not found"
// @Security BearerAuth
// @Router /images/{id} [delete]
func (h *ImageHandler) DeleteImage(c *gin.Context) {
	id, ok := uuidParam(c, "id", "image")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "delete image")
		return
	}
	c.Status(http.StatusNoContent)
}
