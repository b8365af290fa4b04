package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hostel-directory-backend/internal/database/models"
	apperrors "hostel-directory-backend/internal/errors"
	"hostel-directory-backend/internal/logger"
	"hostel-directory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService maps auth provider identities to directory users
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// Ensure UserService implements UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// LookupUserRequest identifies a user by the auth provider's uid
type LookupUserRequest struct {
	AuthUID     string `json:"auth_uid" validate:"required,max=128"`
	DisplayName string `json:"display_name,omitempty" validate:"max=255"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID          uuid.UUID       `json:"id"`
	AuthUID     string          `json:"auth_uid"`
	DisplayName string          `json:"display_name"`
	Role        models.UserRole `json:"role"`
	CreatedAt   string          `json:"created_at"`
}

// LookupOrCreate returns the user with the given auth uid, creating one with the default role if needed
func (s *UserService) LookupOrCreate(ctx context.Context, req *LookupUserRequest) (*UserResponse, error) {
	req.AuthUID = strings.TrimSpace(req.AuthUID)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	existing, err := s.repo.GetByAuthUID(ctx, req.AuthUID)
	if err == nil {
		return toUserResponse(existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user := &models.User{
		AuthUID:     req.AuthUID,
		DisplayName: strings.TrimSpace(req.DisplayName),
		Role:        models.UserRoleUser,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		// created concurrently by another request
		if user, err = s.repo.GetByAuthUID(ctx, req.AuthUID); err != nil {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		return toUserResponse(user), nil
	}

	logger.WithContext(ctx).WithField("user_id", user.ID).Infof("created user")
	return toUserResponse(user), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "get user")
	}
	return toUserResponse(user), nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		AuthUID:     user.AuthUID,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	}
}
