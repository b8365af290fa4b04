package handlers

import (
	"net/http"

	"hostel-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RatingHandler handles HTTP requests for hostel ratings
type RatingHandler struct {
	service service.RatingServiceInterface
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(service service.RatingServiceInterface) *RatingHandler {
	return &RatingHandler{service: service}
}

// ListHostelRatings handles GET /api/v1/hostels/:id/ratings
// @Summary List a hostel's ratings
// @Tags ratings
// @Produce json
// @Param id path string true "Hostel ID (UUID)"
// @Success 200 {array} service.RatingResponse "Ratings"
// @Failure 404 {object} ErrorResponse "Hostel not found"
// @Router /hostels/{id}/ratings [get]
func (h *RatingHandler) ListHostelRatings(c *gin.Context) {
	hostelID, ok := uuidParam(c, "id", "hostel")
	if !ok {
		return
	}

	ratings, err := h.service.ListByHostel(c.Request.Context(), hostelID)
	if err != nil {
		handleServiceError(c, err, "list ratings")
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// CreateRating handles POST /api/v1/ratings
// @Summary Rate a hostel
// @Description Record a 1 to 5 rating. Each user rates a hostel at most once.
// @Tags ratings
// @Accept json
// @Produce json
// @Param rating body service.CreateRatingRequest true "Rating"
// @Success 201 {object} service.RatingResponse "Created rating"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Hostel or user not found"
// @Failure 409 {object} ErrorResponse "Already rated"
// @Router /ratings [post]
func (h *RatingHandler) CreateRating(c *gin.Context) {
	var req service.CreateRatingRequest
	if !bindJSON(c, &req) {
		return
	}

	rating, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "create rating")
		return
	}
	c.JSON(http.StatusCreated, rating)
}

// UpdateRating handles PUT /api/v1/ratings/:id
// @Summary Change a rating
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path string true "Rating ID (UUID)"
// @Param rating body service.UpdateRatingRequest true "Rating"
// @Success 200 {object} service.RatingResponse "Updated rating"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Rating not found"
// @Security BearerAuth
// @Router /ratings/{id} [put]
func (h *RatingHandler) UpdateRating(c *gin.Context) {
	id, ok := uuidParam(c, "id", "rating")
	if !ok {
		return
	}
	var req service.UpdateRatingRequest
	if !bindJSON(c, &req) {
		return
	}

	rating, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err, "update rating")
		return
	}
	c.JSON(http.StatusOK, rating)
}

// DeleteRating handles DELETE /api/v1/ratings/:id
// @Summary Delete a rating
// @Tags ratings
// @Param id path string true "Rating ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Rating not found"
// @Security BearerAuth
// @Router /ratings/{id} [delete]
func (h *RatingHandler) DeleteRating(c *gin.Context) {
	id, ok := uuidParam(c, "id", "rating")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "delete rating")
		return
	}
	c.Status(http.StatusNoContent)
}
