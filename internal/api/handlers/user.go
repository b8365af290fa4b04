package handlers

import (
	"net/http"

	"hostel-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	service service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// LookupUser handles POST /api/v1/users/lookup
// @Summary Look up or create a user
// @Description Return the user for an auth provider uid, creating one with the default role on first sight
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.LookupUserRequest true "Auth identity"
// @Success 200 {object} service.UserResponse "User"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Router /users/lookup [post]
func (h *UserHandler) LookupUser(c *gin.Context) {
	var req service.LookupUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.service.LookupOrCreate(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "look up user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUser handles GET /api/v1/users/:id
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse "User"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := uuidParam(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "get user")
		return
	}
	c.JSON(http.StatusOK, user)
}
