package repository

import (
	"context"

	"hostel-directory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagLinkRepository handles writes to the entity/category/option junction
type TagLinkRepository struct {
	db *gorm.DB
}

// NewTagLinkRepository creates a new tag link repository
func NewTagLinkRepository(db *gorm.DB) *TagLinkRepository {
	return &TagLinkRepository{db: db}
}

// Create inserts a tag link
func (r *TagLinkRepository) Create(ctx context.Context, link *models.TagLink) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(link).Error
}

// DeleteByEntity removes every link of one entity
func (r *TagLinkRepository) DeleteByEntity(ctx context.Context, kind models.EntityType, entityID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.TagLink{}, "entity_type = ? AND entity_id = ?", kind, entityID)
	return res.RowsAffected, res.Error
}

// DeleteByEntityCategory removes the link (if any) of one entity in one category
func (r *TagLinkRepository) DeleteByEntityCategory(ctx context.Context, kind models.EntityType, entityID, categoryID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.TagLink{},
		"entity_type = ? AND entity_id = ? AND category_id = ?", kind, entityID, categoryID)
	return res.RowsAffected, res.Error
}

// DeleteByCategory removes every link in a category, across all entities
func (r *TagLinkRepository) DeleteByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.TagLink{}, "category_id = ?", categoryID)
	return res.RowsAffected, res.Error
}

// DeleteByOption removes every link to one option
func (r *TagLinkRepository) DeleteByOption(ctx context.Context, optionID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.TagLink{}, "option_id = ?", optionID)
	return res.RowsAffected, res.Error
}
