package repository

import (
	"context"

	"hostel-directory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HostelImageRepository handles database operations for hostel image metadata
type HostelImageRepository struct {
	db *gorm.DB
}

// NewHostelImageRepository creates a new hostel image repository
func NewHostelImageRepository(db *gorm.DB) *HostelImageRepository {
	return &HostelImageRepository{db: db}
}

func orderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("is_primary DESC, created_at ASC")
}

// Create creates a new image row
func (r *HostelImageRepository) Create(ctx context.Context, image *models.HostelImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

// GetByID retrieves an image by ID
func (r *HostelImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.HostelImage, error) {
	var image models.HostelImage
	if err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// ListByHostel retrieves a hostel's images, primary first
func (r *HostelImageRepository) ListByHostel(ctx context.Context, hostelID uuid.UUID) ([]models.HostelImage, error) {
	var images []models.HostelImage
	err := orderedImages(r.db.WithContext(ctx)).Where("hostel_id = ?", hostelID).Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

// ListByHostelIDs retrieves the images of several hostels grouped by hostel
func (r *HostelImageRepository) ListByHostelIDs(ctx context.Context, hostelIDs []uuid.UUID) (map[uuid.UUID][]models.HostelImage, error) {
	out := make(map[uuid.UUID][]models.HostelImage, len(hostelIDs))
	if len(hostelIDs) == 0 {
		return out, nil
	}
	var images []models.HostelImage
	err := orderedImages(r.db.WithContext(ctx)).Where("hostel_id IN ?", hostelIDs).Find(&images).Error
	if err != nil {
		return nil, err
	}
	for _, image := range images {
		out[image.HostelID] = append(out[image.HostelID], image)
	}
	return out, nil
}

// Update writes the image's mutable columns
func (r *HostelImageRepository) Update(ctx context.Context, image *models.HostelImage) error {
	return r.db.WithContext(ctx).Model(image).
		Select("image_url", "image_type", "is_primary", "updated_at").
		Updates(image).Error
}

// ClearPrimary unsets the primary flag on every image of the hostel except keepID
func (r *HostelImageRepository) ClearPrimary(ctx context.Context, hostelID, keepID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.HostelImage{}).
		Where("hostel_id = ? AND id <> ? AND is_primary = ?", hostelID, keepID, true).
		Update("is_primary", false).Error
}

// Delete removes an image row
func (r *HostelImageRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.HostelImage{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
