package repository

import (
	"context"

	"hostel-directory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository handles database operations for comments
type CommentRepository struct {
	db *gorm.DB
}

// Ensure CommentRepository implements CommentRepositoryInterface
var _ CommentRepositoryInterface = (*CommentRepository)(nil)

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create creates a new comment
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// GetByID retrieves a comment by ID
func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByHostel retrieves a hostel's comments, oldest first
func (r *CommentRepository) ListByHostel(ctx context.Context, hostelID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).Where("hostel_id = ?", hostelID).Order("created_at ASC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// ListAll retrieves every comment, newest first
func (r *CommentRepository) ListAll(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// RecentByHostelIDs returns up to perHostel newest comments for each hostel
func (r *CommentRepository) RecentByHostelIDs(ctx context.Context, hostelIDs []uuid.UUID, perHostel int) (map[uuid.UUID][]models.Comment, error) {
	out := make(map[uuid.UUID][]models.Comment, len(hostelIDs))
	if len(hostelIDs) == 0 || perHostel <= 0 {
		return out, nil
	}
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("hostel_id IN ?", hostelIDs).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	for _, comment := range comments {
		if len(out[comment.HostelID]) < perHostel {
			out[comment.HostelID] = append(out[comment.HostelID], comment)
		}
	}
	return out, nil
}

// Update applies column updates to a comment
func (r *CommentRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Comment{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes a comment
func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Comment{}, "id = ?", id).Error
}
