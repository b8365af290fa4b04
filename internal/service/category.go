package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hostel-directory-backend/internal/database/models"
	apperrors "hostel-directory-backend/internal/errors"
	"hostel-directory-backend/internal/logger"
	"hostel-directory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryService manages categories and their options. Every mutation runs in one transaction
// so cascades never stop halfway.
type CategoryService struct {
	db        *gorm.DB
	validator *validator.Validate
}

// Ensure CategoryService implements CategoryServiceInterface
var _ CategoryServiceInterface = (*CategoryService)(nil)

// NewCategoryService creates a new CategoryService
func NewCategoryService(db *gorm.DB, validator *validator.Validate) *CategoryService {
	return &CategoryService{
		db:        db,
		validator: validator,
	}
}

// OptionInput is an option name as submitted by clients: either "Web" or {"option_name": "Web"}
type OptionInput struct {
	OptionName string `json:"option_name"`
}

// UnmarshalJSON accepts both the string and the object form
func (o *OptionInput) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		o.OptionName = name
		return nil
	}
	var obj struct {
		OptionName string `json:"option_name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("option must be a string or an object with option_name: %w", err)
	}
	o.OptionName = obj.OptionName
	return nil
}

// CreateCategoryRequest represents the request to create a category
type CreateCategoryRequest struct {
	CategoryName   string        `json:"category_name" validate:"required,max=100"`
	Options        []OptionInput `json:"options,omitempty"`
	SentinelOption string        `json:"sentinel_option,omitempty" validate:"max=255"`
}

// UpdateCategoryRequest represents the request to update a category.
// A nil Options leaves the options alone; a non-nil one (even empty) replaces them all.
// A nil SentinelOption leaves it unchanged and an empty string clears it.
type UpdateCategoryRequest struct {
	CategoryName   string         `json:"category_name" validate:"required,max=100"`
	Options        *[]OptionInput `json:"options,omitempty"`
	SentinelOption *string        `json:"sentinel_option,omitempty"`
}

// OptionRequest carries a single option name
type OptionRequest struct {
	OptionName string `json:"option_name" validate:"required,max=255"`
}

// OptionResponse represents one option in API responses
type OptionResponse struct {
	OptionID   uuid.UUID `json:"option_id"`
	OptionName string    `json:"option_name"`
	Position   int       `json:"position"`
}

// CategoryResponse represents a category with its ordered options
type CategoryResponse struct {
	CategoryID     uuid.UUID        `json:"category_id"`
	CategoryName   string           `json:"category_name"`
	SentinelOption string           `json:"sentinel_option,omitempty"`
	Options        []OptionResponse `json:"options"`
}

// ListCategories returns every category with its options. No pagination; the set is small.
func (s *CategoryService) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := repository.NewCategoryRepository(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *toCategoryResponse(&categories[i])
	}
	return responses, nil
}

// CreateCategory creates a category and its initial options
func (s *CategoryService) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*CategoryResponse, error) {
	req.CategoryName = strings.TrimSpace(req.CategoryName)
	req.SentinelOption = strings.TrimSpace(req.SentinelOption)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	names := optionNames(req.Options)
	if req.SentinelOption != "" && !containsName(names, req.SentinelOption) {
		return nil, apperrors.ErrInvalidSentinelOption
	}

	var created *models.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := repository.New(tx)

		category := &models.Category{Name: req.CategoryName, SentinelOption: req.SentinelOption}
		if err := repos.Categories.Create(ctx, category); err != nil {
			return writeError(err, "create category", apperrors.ErrCategoryExists)
		}
		if _, err := repos.Categories.CreateOptions(ctx, category.ID, names, 0); err != nil {
			return writeError(err, "create category options", apperrors.ErrOptionExists)
		}

		var err error
		created, err = repos.Categories.GetByID(ctx, category.ID)
		if err != nil {
			return fmt.Errorf("failed to reload category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"category_id": created.ID,
		"options":     len(names),
	}).Infof("created category %q", created.Name)

	return toCategoryResponse(created), nil
}

// UpdateCategory renames a category and, when options are supplied, replaces them destructively:
// every tag link under the category is removed before the old options are deleted.
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *UpdateCategoryRequest) (*CategoryResponse, error) {
	req.CategoryName = strings.TrimSpace(req.CategoryName)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var updated *models.Category
	var removedLinks int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := repository.New(tx)

		category, err := repos.Categories.GetByID(ctx, id)
		if err != nil {
			return lookupError(err, apperrors.ErrCategoryNotFound, "get category")
		}

		names := make([]string, len(category.Options))
		for i, o := range category.Options {
			names[i] = o.Name
		}

		updates := map[string]interface{}{"name": req.CategoryName}

		if req.Options != nil {
			names = optionNames(*req.Options)
			if removedLinks, err = repos.TagLinks.DeleteByCategory(ctx, id); err != nil {
				return fmt.Errorf("failed to delete tag links: %w", err)
			}
			if _, err := repos.Entities.DropCustomValues(ctx, id); err != nil {
				return fmt.Errorf("failed to drop custom values: %w", err)
			}
			if _, err := repos.Categories.DeleteOptions(ctx, id); err != nil {
				return writeError(err, "delete category options", nil)
			}
			if _, err := repos.Categories.CreateOptions(ctx, id, names, 0); err != nil {
				return writeError(err, "create category options", apperrors.ErrOptionExists)
			}
			if category.HasSentinel() && !containsName(names, category.SentinelOption) {
				updates["sentinel_option"] = ""
			}
		}

		if req.SentinelOption != nil {
			sentinel := strings.TrimSpace(*req.SentinelOption)
			if sentinel != "" && !containsName(names, sentinel) {
				return apperrors.ErrInvalidSentinelOption
			}
			updates["sentinel_option"] = sentinel
		}

		if err := repos.Categories.Update(ctx, id, updates); err != nil {
			return writeError(err, "update category", apperrors.ErrCategoryExists)
		}

		updated, err = repos.Categories.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to reload category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if req.Options != nil {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"category_id":       id,
			"removed_tag_links": removedLinks,
			"options":           len(updated.Options),
		}).Infof("replaced options of category %q", updated.Name)
	}

	return toCategoryResponse(updated), nil
}

// DeleteCategory removes the category's tag links, options and row in one transaction
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := repository.New(tx)

		if _, err := repos.Categories.GetByID(ctx, id); err != nil {
			return lookupError(err, apperrors.ErrCategoryNotFound, "get category")
		}
		links, err := repos.TagLinks.DeleteByCategory(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete tag links: %w", err)
		}
		if _, err := repos.Entities.DropCustomValues(ctx, id); err != nil {
			return fmt.Errorf("failed to drop custom values: %w", err)
		}
		if _, err := repos.Categories.DeleteOptions(ctx, id); err != nil {
			return writeError(err, "delete category options", nil)
		}
		if _, err := repos.Categories.Delete(ctx, id); err != nil {
			return writeError(err, "delete category", nil)
		}

		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"category_id":       id,
			"removed_tag_links": links,
		}).Infof("deleted category")
		return nil
	})
}

// ListOptions returns the options of a category in display order
func (s *CategoryService) ListOptions(ctx context.Context, categoryID uuid.UUID) ([]OptionResponse, error) {
	category, err := repository.NewCategoryRepository(s.db).GetByID(ctx, categoryID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrCategoryNotFound, "get category")
	}
	return toOptionResponses(category.Options), nil
}

// ListOptionsByCategoryName returns the options of the category with the given name
func (s *CategoryService) ListOptionsByCategoryName(ctx context.Context, name string) ([]OptionResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("category_name", "is required")
	}

	repo := repository.NewCategoryRepository(s.db)
	category, err := repo.GetByName(ctx, name)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrCategoryNotFound, "get category")
	}
	options, err := repo.ListOptions(ctx, category.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list options: %w", err)
	}
	return toOptionResponses(options), nil
}

// AddOption appends an option to the end of a category
func (s *CategoryService) AddOption(ctx context.Context, categoryID uuid.UUID, req *OptionRequest) (*OptionResponse, error) {
	req.OptionName = strings.TrimSpace(req.OptionName)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var created models.CategoryOption
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repository.NewCategoryRepository(tx)

		if _, err := repo.GetByID(ctx, categoryID); err != nil {
			return lookupError(err, apperrors.ErrCategoryNotFound, "get category")
		}
		position, err := repo.NextOptionPosition(ctx, categoryID)
		if err != nil {
			return fmt.Errorf("failed to compute option position: %w", err)
		}
		options, err := repo.CreateOptions(ctx, categoryID, []string{req.OptionName}, position)
		if err != nil {
			return writeError(err, "create option", apperrors.ErrOptionExists)
		}
		created = options[0]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toOptionResponse(&created), nil
}

// RenameOption renames an option of the category. The category's sentinel follows the rename.
func (s *CategoryService) RenameOption(ctx context.Context, categoryID, optionID uuid.UUID, req *OptionRequest) (*OptionResponse, error) {
	req.OptionName = strings.TrimSpace(req.OptionName)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var renamed *models.CategoryOption
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repository.NewCategoryRepository(tx)

		category, option, err := getCategoryOption(ctx, repo, categoryID, optionID)
		if err != nil {
			return err
		}
		if option.Name == req.OptionName {
			renamed = option
			return nil
		}
		if err := repo.RenameOption(ctx, optionID, req.OptionName); err != nil {
			return writeError(err, "rename option", apperrors.ErrOptionExists)
		}
		if category.SentinelOption == option.Name {
			if err := repo.Update(ctx, categoryID, map[string]interface{}{"sentinel_option": req.OptionName}); err != nil {
				return fmt.Errorf("failed to update sentinel option: %w", err)
			}
		}

		option.Name = req.OptionName
		renamed = option
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toOptionResponse(renamed), nil
}

// DeleteOption removes an option and every tag link pointing at it. Deleting the sentinel
// also drops the free-text values stored for the category.
func (s *CategoryService) DeleteOption(ctx context.Context, categoryID, optionID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := repository.New(tx)

		category, option, err := getCategoryOption(ctx, repos.Categories, categoryID, optionID)
		if err != nil {
			return err
		}
		if _, err := repos.TagLinks.DeleteByOption(ctx, optionID); err != nil {
			return fmt.Errorf("failed to delete tag links: %w", err)
		}
		if err := repos.Categories.DeleteOption(ctx, optionID); err != nil {
			return writeError(err, "delete option", nil)
		}
		if category.SentinelOption == option.Name {
			if err := repos.Categories.Update(ctx, categoryID, map[string]interface{}{"sentinel_option": ""}); err != nil {
				return fmt.Errorf("failed to clear sentinel option: %w", err)
			}
			// free text only ever hangs off the sentinel link that was just removed
			if _, err := repos.Entities.DropCustomValues(ctx, categoryID); err != nil {
				return fmt.Errorf("failed to drop custom values: %w", err)
			}
		}
		return nil
	})
}

func getCategoryOption(ctx context.Context, repo *repository.CategoryRepository, categoryID, optionID uuid.UUID) (*models.Category, *models.CategoryOption, error) {
	category, err := repo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, nil, lookupError(err, apperrors.ErrCategoryNotFound, "get category")
	}
	option, err := repo.GetOption(ctx, categoryID, optionID)
	if err != nil {
		return nil, nil, lookupError(err, apperrors.ErrOptionNotFound, "get option")
	}
	return category, option, nil
}

// optionNames trims names, drops blanks and collapses duplicates, keeping first-seen order
func optionNames(inputs []OptionInput) []string {
	names := make([]string, 0, len(inputs))
	seen := make(map[string]struct{}, len(inputs))
	for _, in := range inputs {
		name := strings.TrimSpace(in.OptionName)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func toCategoryResponse(category *models.Category) *CategoryResponse {
	return &CategoryResponse{
		CategoryID:     category.ID,
		CategoryName:   category.Name,
		SentinelOption: category.SentinelOption,
		Options:        toOptionResponses(category.Options),
	}
}

func toOptionResponse(option *models.CategoryOption) *OptionResponse {
	return &OptionResponse{
		OptionID:   option.ID,
		OptionName: option.Name,
		Position:   option.Position,
	}
}

func toOptionResponses(options []models.CategoryOption) []OptionResponse {
	responses := make([]OptionResponse, len(options))
	for i := range options {
		responses[i] = *toOptionResponse(&options[i])
	}
	return responses
}
