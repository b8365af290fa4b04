package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hostel-directory-backend/internal/database/models"
	apperrors "hostel-directory-backend/internal/errors"
	"hostel-directory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RatingService handles business logic for hostel ratings
type RatingService struct {
	hostelRepo repository.HostelRepositoryInterface
	ratingRepo repository.RatingRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	validator  *validator.Validate
}

// Ensure RatingService implements RatingServiceInterface
var _ RatingServiceInterface = (*RatingService)(nil)

// NewRatingService creates a new rating service
func NewRatingService(hostelRepo repository.HostelRepositoryInterface, ratingRepo repository.RatingRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *RatingService {
	return &RatingService{
		hostelRepo: hostelRepo,
		ratingRepo: ratingRepo,
		userRepo:   userRepo,
		validator:  validator,
	}
}

// CreateRatingRequest represents the request to rate a hostel
type CreateRatingRequest struct {
	HostelID      uuid.UUID `json:"hostel_id" validate:"required"`
	UserID        uuid.UUID `json:"user_id" validate:"required"`
	OverallRating float64   `json:"overall_rating" validate:"gte=1,lte=5"`
}

// UpdateRatingRequest represents the request to change a rating
type UpdateRatingRequest struct {
	OverallRating float64 `json:"overall_rating" validate:"gte=1,lte=5"`
}

// RatingResponse represents a rating in API responses
type RatingResponse struct {
	ID            uuid.UUID `json:"id"`
	HostelID      uuid.UUID `json:"hostel_id"`
	UserID        uuid.UUID `json:"user_id"`
	OverallRating float64   `json:"overall_rating"`
	CreatedAt     string    `json:"created_at"`
	UpdatedAt     string    `json:"updated_at"`
}

// Create records a user's rating of a hostel. A user rates a hostel at most once.
func (s *RatingService) Create(ctx context.Context, req *CreateRatingRequest) (*RatingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if _, err := s.hostelRepo.GetActiveByID(ctx, req.HostelID); err != nil {
		return nil, lookupError(err, apperrors.ErrHostelNotFound, "get hostel")
	}
	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "get user")
	}

	existing, err := s.ratingRepo.GetByHostelAndUser(ctx, req.HostelID, req.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing rating: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrRatingExists
	}

	rating := &models.Rating{
		HostelID:      req.HostelID,
		UserID:        req.UserID,
		OverallRating: req.OverallRating,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, writeError(err, "create rating", apperrors.ErrRatingExists)
	}

	return toRatingResponse(rating), nil
}

// ListByHostel returns the ratings of an active hostel
func (s *RatingService) ListByHostel(ctx context.Context, hostelID uuid.UUID) ([]RatingResponse, error) {
	if _, err := s.hostelRepo.GetActiveByID(ctx, hostelID); err != nil {
		return nil, lookupError(err, apperrors.ErrHostelNotFound, "get hostel")
	}

	ratings, err := s.ratingRepo.ListByHostel(ctx, hostelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}

	responses := make([]RatingResponse, len(ratings))
	for i := range ratings {
		responses[i] = *toRatingResponse(&ratings[i])
	}
	return responses, nil
}

// Update changes the score of a rating
func (s *RatingService) Update(ctx context.Context, id uuid.UUID, req *UpdateRatingRequest) (*RatingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	rating, err := s.ratingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrRatingNotFound, "get rating")
	}

	rating.OverallRating = req.OverallRating
	if err := s.ratingRepo.Update(ctx, rating); err != nil {
		return nil, fmt.Errorf("failed to update rating: %w", err)
	}

	return toRatingResponse(rating), nil
}

// Delete removes a rating
func (s *RatingService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.ratingRepo.GetByID(ctx, id); err != nil {
		return lookupError(err, apperrors.ErrRatingNotFound, "get rating")
	}
	if err := s.ratingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete rating: %w", err)
	}
	return nil
}

func toRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		ID:            rating.ID,
		HostelID:      rating.HostelID,
		UserID:        rating.UserID,
		OverallRating: rating.OverallRating,
		CreatedAt:     rating.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     rating.UpdatedAt.Format(time.RFC3339),
	}
}
