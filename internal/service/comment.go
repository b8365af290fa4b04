package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hostel-directory-backend/internal/database/models"
	apperrors "hostel-directory-backend/internal/errors"
	"hostel-directory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CommentService handles business logic for hostel comments
type CommentService struct {
	hostelRepo  repository.HostelRepositoryInterface
	commentRepo repository.CommentRepositoryInterface
	validator   *validator.Validate
}

// Ensure CommentService implements CommentServiceInterface
var _ CommentServiceInterface = (*CommentService)(nil)

// NewCommentService creates a new comment service
func NewCommentService(hostelRepo repository.HostelRepositoryInterface, commentRepo repository.CommentRepositoryInterface, validator *validator.Validate) *CommentService {
	return &CommentService{
		hostelRepo:  hostelRepo,
		commentRepo: commentRepo,
		validator:   validator,
	}
}

// CreateCommentRequest represents the request to comment on a hostel
type CreateCommentRequest struct {
	HostelID    uuid.UUID  `json:"hostel_id" validate:"required"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	CommentText string     `json:"comment_text" validate:"required,max=2000"`
	UserName    string     `json:"user_name,omitempty" validate:"max=255"`
	UserEmail   string     `json:"user_email,omitempty" validate:"omitempty,email,max=255"`
}

// UpdateCommentRequest edits the text or the verified flag of a comment
type UpdateCommentRequest struct {
	CommentText *string `json:"comment_text,omitempty" validate:"omitempty,min=1,max=2000"`
	IsVerified  *bool   `json:"is_verified,omitempty"`
}

// CommentResponse represents a comment in API responses
type CommentResponse struct {
	ID          uuid.UUID  `json:"id"`
	HostelID    uuid.UUID  `json:"hostel_id"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	CommentText string     `json:"comment_text"`
	UserName    string     `json:"user_name"`
	UserEmail   string     `json:"user_email"`
	IsVerified  bool       `json:"is_verified"`
	CreatedAt   string     `json:"created_at"`
}

// Create adds an unverified comment to an active hostel
func (s *CommentService) Create(ctx context.Context, req *CreateCommentRequest) (*CommentResponse, error) {
	req.CommentText = strings.TrimSpace(req.CommentText)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if _, err := s.hostelRepo.GetActiveByID(ctx, req.HostelID); err != nil {
		return nil, lookupError(err, apperrors.ErrHostelNotFound, "get hostel")
	}

	comment := &models.Comment{
		HostelID:    req.HostelID,
		UserID:      req.UserID,
		CommentText: req.CommentText,
		UserName:    strings.TrimSpace(req.UserName),
		UserEmail:   strings.TrimSpace(req.UserEmail),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, writeError(err, "create comment", nil)
	}

	return toCommentResponse(comment), nil
}

// ListByHostel returns an active hostel's comments, oldest first
func (s *CommentService) ListByHostel(ctx context.Context, hostelID uuid.UUID) ([]CommentResponse, error) {
	if _, err := s.hostelRepo.GetActiveByID(ctx, hostelID); err != nil {
		return nil, lookupError(err, apperrors.ErrHostelNotFound, "get hostel")
	}

	comments, err := s.commentRepo.ListByHostel(ctx, hostelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return toCommentResponses(comments), nil
}

// ListAll returns every comment, newest first, for moderation
func (s *CommentService) ListAll(ctx context.Context) ([]CommentResponse, error) {
	comments, err := s.commentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return toCommentResponses(comments), nil
}

// Update edits a comment; at least one field must be given
func (s *CommentService) Update(ctx context.Context, id uuid.UUID, req *UpdateCommentRequest) (*CommentResponse, error) {
	if req.CommentText != nil {
		text := strings.TrimSpace(*req.CommentText)
		req.CommentText = &text
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	updates := map[string]interface{}{}
	if req.CommentText != nil {
		updates["comment_text"] = *req.CommentText
	}
	if req.IsVerified != nil {
		updates["is_verified"] = *req.IsVerified
	}
	if len(updates) == 0 {
		return nil, apperrors.NewValidationError("", "nothing to update")
	}

	if _, err := s.commentRepo.GetByID(ctx, id); err != nil {
		return nil, lookupError(err, apperrors.ErrCommentNotFound, "get comment")
	}
	if err := s.commentRepo.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload comment: %w", err)
	}
	return toCommentResponse(comment), nil
}

// Delete removes a comment
func (s *CommentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.commentRepo.GetByID(ctx, id); err != nil {
		return lookupError(err, apperrors.ErrCommentNotFound, "get comment")
	}
	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func toCommentResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:          comment.ID,
		HostelID:    comment.HostelID,
		UserID:      comment.UserID,
		CommentText: comment.CommentText,
		UserName:    comment.UserName,
		UserEmail:   comment.UserEmail,
		IsVerified:  comment.IsVerified,
		CreatedAt:   comment.CreatedAt.Format(time.RFC3339),
	}
}

func toCommentResponses(comments []models.Comment) []CommentResponse {
	responses := make([]CommentResponse, len(comments))
	for i := range comments {
		responses[i] = *toCommentResponse(&comments[i])
	}
	return responses
}
