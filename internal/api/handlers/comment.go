package handlers

import (
	"net/http"

	"hostel-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CommentHandler handles HTTP requests for hostel comments
type CommentHandler struct {
	service service.CommentServiceInterface
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(service service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{service: service}
}

// ListHostelComments handles GET /api/v1/hostels/:id/comments
// @Summary List a hostel's comments
// @Description Comments on the hostel, oldest first
// @Tags comments
// @Produce json
// @Param id path string true "Hostel ID (UUID)"
// @Success 200 {array} service.CommentResponse "Comments"
// @Failure 404 {object} ErrorResponse "Hostel not found"
// @Router /hostels/{id}/comments [get]
func (h *CommentHandler) ListHostelComments(c *gin.Context) {
	hostelID, ok := uuidParam(c, "id", "hostel")
	if !ok {
		return
	}

	comments, err := h.service.ListByHostel(c.Request.Context(), hostelID)
	if err != nil {
		handleServiceError(c, err, "list comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// ListComments handles GET /api/v1/comments
// @Summary List all comments
// @Description Every comment, newest first, for moderation
// @Tags comments
// @Produce json
// @Success 200 {array} service.CommentResponse "Comments"
// @Security BearerAuth
// @Router /comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "list comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// CreateComment handles POST /api/v1/comments
// @Summary Comment on a hostel
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body service.CreateCommentRequest true "Comment"
// @Success 201 {object} service.CommentResponse "Created comment"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Hostel not found"
// @Router /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req service.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "create comment")
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// UpdateComment handles PUT /api/v1/comments/:id
// @Summary Edit or verify a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID (UUID)"
// @Param comment body service.UpdateCommentRequest true "Changes"
// @Success 200 {object} service.CommentResponse "Updated comment"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Comment not found"
// @Security BearerAuth
// @Router /comments/{id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, ok := uuidParam(c, "id", "comment")
	if !ok {
		return
	}
	var req service.UpdateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err, "update comment")
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DeleteComment handles DELETE /api/v1/comments/:id
// @Summary Delete a comment
// @Tags comments
// @Param id path string true "Comment ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Comment not found"
// @Security BearerAuth
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := uuidParam(c, "id", "comment")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "delete comment")
		return
	}
	c.Status(http.StatusNoContent)
}
