package repository

import (
	"context"
	"database/sql"

	"hostel-directory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryRepository handles database operations for categories and their options
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func orderedOptions(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, name ASC")
}

// Create inserts the category row only; options are created with CreateOptions
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(category).Error
}

// List retrieves all categories ordered by name, each with its ordered options
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Preload("Options", orderedOptions).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID retrieves a category with its options
func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Preload("Options", orderedOptions).First(&category, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetByName retrieves a category by its exact name, without options
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Update applies column updates to a category. A map is used so empty strings are written.
func (r *CategoryRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes the category row. Options and tag links must already be gone.
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// CreateOptions inserts options in order, numbering positions from startPosition
func (r *CategoryRepository) CreateOptions(ctx context.Context, categoryID uuid.UUID, names []string, startPosition int) ([]models.CategoryOption, error) {
	if len(names) == 0 {
		return []models.CategoryOption{}, nil
	}
	options := make([]models.CategoryOption, 0, len(names))
	for i, name := range names {
		options = append(options, models.CategoryOption{
			CategoryID: categoryID,
			Name:       name,
			Position:   startPosition + i,
		})
	}
	if err := r.db.WithContext(ctx).Create(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

// ListOptions retrieves the options of a category in display order
func (r *CategoryRepository) ListOptions(ctx context.Context, categoryID uuid.UUID) ([]models.CategoryOption, error) {
	var options []models.CategoryOption
	err := orderedOptions(r.db.WithContext(ctx)).Where("category_id = ?", categoryID).Find(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

// GetOption retrieves an option only if it belongs to the category
func (r *CategoryRepository) GetOption(ctx context.Context, categoryID, optionID uuid.UUID) (*models.CategoryOption, error) {
	var option models.CategoryOption
	err := r.db.WithContext(ctx).First(&option, "id = ? AND category_id = ?", optionID, categoryID).Error
	if err != nil {
		return nil, err
	}
	return &option, nil
}

// GetOptionByID retrieves an option regardless of category
func (r *CategoryRepository) GetOptionByID(ctx context.Context, optionID uuid.UUID) (*models.CategoryOption, error) {
	var option models.CategoryOption
	if err := r.db.WithContext(ctx).First(&option, "id = ?", optionID).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

// GetOptionByName resolves an option name within a category
func (r *CategoryRepository) GetOptionByName(ctx context.Context, categoryID uuid.UUID, name string) (*models.CategoryOption, error) {
	var option models.CategoryOption
	err := r.db.WithContext(ctx).First(&option, "category_id = ? AND name = ?", categoryID, name).Error
	if err != nil {
		return nil, err
	}
	return &option, nil
}

// RenameOption changes an option's name
func (r *CategoryRepository) RenameOption(ctx context.Context, optionID uuid.UUID, name string) error {
	return r.db.WithContext(ctx).Model(&models.CategoryOption{}).Where("id = ?", optionID).Update("name", name).Error
}

// DeleteOption removes a single option. Tag links pointing at it must already be gone.
func (r *CategoryRepository) DeleteOption(ctx context.Context, optionID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.CategoryOption{}, "id = ?", optionID).Error
}

// DeleteOptions removes every option of a category
func (r *CategoryRepository) DeleteOptions(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.CategoryOption{}, "category_id = ?", categoryID)
	return res.RowsAffected, res.Error
}

// NextOptionPosition returns the position after the category's last option
func (r *CategoryRepository) NextOptionPosition(ctx context.Context, categoryID uuid.UUID) (int, error) {
	var last sql.NullInt64
	err := r.db.WithContext(ctx).Model(&models.CategoryOption{}).
		Select("MAX(position)").
		Where("category_id = ?", categoryID).
		Row().Scan(&last)
	if err != nil {
		return 0, err
	}
	if !last.Valid {
		return 0, nil
	}
	return int(last.Int64) + 1, nil
}
