package repository

import (
	"context"

	"hostel-directory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingSummary aggregates the ratings of one hostel
type RatingSummary struct {
	HostelID uuid.UUID
	Average  float64
	Total    int64
}

// RatingRepository handles database operations for ratings
type RatingRepository struct {
	db *gorm.DB
}

// Ensure RatingRepository implements RatingRepositoryInterface
var _ RatingRepositoryInterface = (*RatingRepository)(nil)

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Create creates a new rating
func (r *RatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(rating).Error
}

// GetByID retrieves a rating by ID
func (r *RatingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.WithContext(ctx).First(&rating, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByHostelAndUser retrieves the rating a user gave a hostel
func (r *RatingRepository) GetByHostelAndUser(ctx context.Context, hostelID, userID uuid.UUID) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).First(&rating, "hostel_id = ? AND user_id = ?", hostelID, userID).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// ListByHostel retrieves the ratings of a hostel, newest first
func (r *RatingRepository) ListByHostel(ctx context.Context, hostelID uuid.UUID) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).Where("hostel_id = ?", hostelID).Order("created_at DESC").Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// Update writes the rating value
func (r *RatingRepository) Update(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Model(rating).Select("overall_rating", "updated_at").Updates(rating).Error
}

// Delete removes a rating
func (r *RatingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Rating{}, "id = ?", id).Error
}

// SummaryByHostelIDs computes average and count per hostel; hostels without ratings are absent
func (r *RatingRepository) SummaryByHostelIDs(ctx context.Context, hostelIDs []uuid.UUID) (map[uuid.UUID]RatingSummary, error) {
	out := make(map[uuid.UUID]RatingSummary, len(hostelIDs))
	if len(hostelIDs) == 0 {
		return out, nil
	}
	var rows []RatingSummary
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("hostel_id, AVG(overall_rating) AS average, COUNT(*) AS total").
		Where("hostel_id IN ?", hostelIDs).
		Group("hostel_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.HostelID] = row
	}
	return out, nil
}
