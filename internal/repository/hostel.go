package repository

import (
	"context"

	"hostel-directory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HostelRepository handles database operations for hostels
type HostelRepository struct {
	db *gorm.DB
}

// Ensure HostelRepository implements HostelRepositoryInterface
var _ HostelRepositoryInterface = (*HostelRepository)(nil)

// NewHostelRepository creates a new hostel repository
func NewHostelRepository(db *gorm.DB) *HostelRepository {
	return &HostelRepository{db: db}
}

// hostelColumns are the scalar columns Update writes; tags, custom values
// and the active flag have their own write paths.
var hostelColumns = []string{
	"name", "description", "location", "address", "phone_number",
	"email", "website", "price_range", "updated_at",
}

// Create creates a new hostel
func (r *HostelRepository) Create(ctx context.Context, hostel *models.Hostel) error {
	if hostel.CustomValues == nil {
		hostel.CustomValues = models.CustomValues{}
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(hostel).Error
}

// GetActiveByID retrieves an active hostel by ID
func (r *HostelRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Hostel, error) {
	var hostel models.Hostel
	err := r.db.WithContext(ctx).First(&hostel, "id = ? AND is_active = ?", id, true).Error
	if err != nil {
		return nil, err
	}
	return &hostel, nil
}

// ListActive retrieves every active hostel, newest first
func (r *HostelRepository) ListActive(ctx context.Context) ([]models.Hostel, error) {
	var hostels []models.Hostel
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&hostels).Error
	if err != nil {
		return nil, err
	}
	return hostels, nil
}

// ListActiveByIDs retrieves the active hostels among ids, newest first
func (r *HostelRepository) ListActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Hostel, error) {
	hostels := []models.Hostel{}
	if len(ids) == 0 {
		return hostels, nil
	}
	err := r.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Order("created_at DESC").
		Find(&hostels).Error
	if err != nil {
		return nil, err
	}
	return hostels, nil
}

// Update writes the hostel's scalar columns
func (r *HostelRepository) Update(ctx context.Context, hostel *models.Hostel) error {
	return r.db.WithContext(ctx).Model(hostel).Select(hostelColumns).Updates(hostel).Error
}

// Deactivate soft deletes an active hostel, returning the number of rows changed
func (r *HostelRepository) Deactivate(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Hostel{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
