package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"hostel-directory-backend/internal/database/models"
	apperrors "hostel-directory-backend/internal/errors"
	"hostel-directory-backend/internal/logger"
	"hostel-directory-backend/internal/repository"
	"hostel-directory-backend/internal/tagging"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SetTagsRequest replaces every tag of an entity.
// CustomValues is keyed by category name and only honoured for categories with a sentinel option.
type SetTagsRequest struct {
	Categories   []tagging.Pair    `json:"categories"`
	CustomValues map[string]string `json:"custom_values,omitempty"`
}

// LinkTagRequest links one option to an entity by ID
type LinkTagRequest struct {
	CategoryID uuid.UUID `json:"category_id" validate:"required"`
	OptionID   uuid.UUID `json:"option_id" validate:"required"`
}

// TagSetResponse is an entity's tag set after a write, with the outcome of every submitted mapping
type TagSetResponse struct {
	EntityType   models.EntityType `json:"entity_type"`
	EntityID     uuid.UUID         `json:"entity_id"`
	Categories   []tagging.Pair    `json:"categories"`
	CustomValues map[string]string `json:"custom_values"`
	TagResults   []tagging.Result  `json:"tag_results"`
	Applied      int               `json:"applied"`
	Skipped      int               `json:"skipped"`
}

// TagService writes tag links for hostels and projects
type TagService struct {
	db        *gorm.DB
	tags      repository.TagQueryRepositoryInterface
	validator *validator.Validate
}

// Ensure TagService implements TagServiceInterface
var _ TagServiceInterface = (*TagService)(nil)

// NewTagService creates a new TagService
func NewTagService(db *gorm.DB, tags repository.TagQueryRepositoryInterface, validator *validator.Validate) *TagService {
	return &TagService{
		db:        db,
		tags:      tags,
		validator: validator,
	}
}

// SetEntityTags replaces the entity's tags with the resolvable mappings of req.
// Unresolvable mappings are reported in the response and do not stop the others.
func (s *TagService) SetEntityTags(ctx context.Context, kind models.EntityType, entityID uuid.UUID, req *SetTagsRequest) (*TagSetResponse, error) {
	if !kind.IsValid() {
		return nil, apperrors.NewValidationError("entity_type", fmt.Sprintf("unsupported entity type %q", kind))
	}

	var results []tagging.Result
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := repository.New(tx)
		if err := lockEntity(ctx, repos, kind, entityID); err != nil {
			return err
		}
		var err error
		results, err = replaceTags(ctx, repos, kind, entityID, req.Categories, req.CustomValues)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.describe(ctx, kind, entityID, results)
}

// LinkTag links a single option, replacing whatever option the entity had in that category.
// Unlike SetEntityTags it is strict: an option from another category is a validation error.
func (s *TagService) LinkTag(ctx context.Context, kind models.EntityType, entityID uuid.UUID, req *LinkTagRequest) (*TagSetResponse, error) {
	if !kind.IsValid() {
		return nil, apperrors.NewValidationError("entity_type", fmt.Sprintf("unsupported entity type %q", kind))
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var result tagging.Result
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := repository.New(tx)
		if err := lockEntity(ctx, repos, kind, entityID); err != nil {
			return err
		}

		category, err := repos.Categories.GetByID(ctx, req.CategoryID)
		if err != nil {
			return lookupError(err, apperrors.ErrCategoryNotFound, "get category")
		}
		option, err := repos.Categories.GetOptionByID(ctx, req.OptionID)
		if err != nil {
			return lookupError(err, apperrors.ErrOptionNotFound, "get option")
		}
		if option.CategoryID != category.ID {
			return apperrors.ErrOptionCategoryMismatch
		}

		if _, err := repos.TagLinks.DeleteByEntityCategory(ctx, kind, entityID, category.ID); err != nil {
			return fmt.Errorf("failed to clear tag link: %w", err)
		}
		link := &models.TagLink{EntityType: kind, EntityID: entityID, CategoryID: category.ID, OptionID: option.ID}
		if err := repos.TagLinks.Create(ctx, link); err != nil {
			return writeError(err, "create tag link", nil)
		}

		// a link by ID carries no free text, so whatever the category held before is dropped
		values, err := entityCustomValues(ctx, repos, kind, entityID)
		if err != nil {
			return err
		}
		if _, ok := values[category.ID.String()]; ok {
			delete(values, category.ID.String())
			if err := repos.Entities.SetCustomValues(ctx, kind, entityID, values); err != nil {
				return fmt.Errorf("failed to store custom values: %w", err)
			}
		}

		result = tagging.Result{CategoryName: category.Name, OptionName: option.Name, Status: tagging.StatusLinked}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.describe(ctx, kind, entityID, []tagging.Result{result})
}

func (s *TagService) describe(ctx context.Context, kind models.EntityType, entityID uuid.UUID, results []tagging.Result) (*TagSetResponse, error) {
	values, err := entityCustomValues(ctx, repository.New(s.db), kind, entityID)
	if err != nil {
		return nil, err
	}
	sets, err := loadEntityTags(ctx, s.tags, kind, map[uuid.UUID]models.CustomValues{entityID: values})
	if err != nil {
		return nil, err
	}

	set := sets[entityID]
	applied, skipped := tagging.Summarize(results)
	return &TagSetResponse{
		EntityType:   kind,
		EntityID:     entityID,
		Categories:   set.Categories,
		CustomValues: set.CustomValues,
		TagResults:   results,
		Applied:      applied,
		Skipped:      skipped,
	}, nil
}

// resolvedMapping is one submitted mapping after name resolution
type resolvedMapping struct {
	result   tagging.Result
	category *models.Category
	option   *models.CategoryOption
	custom   string
}

// replaceTags swaps the entity's tag links for the resolvable mappings and stores the
// accepted custom values on the entity row. A category is claimed by the first mapping that
// links it; mappings that fail to resolve leave it open for later ones. Custom values naming
// no mapped category are reported after the mappings. It must run inside the caller's transaction.
func replaceTags(ctx context.Context, repos *repository.Repositories, kind models.EntityType, entityID uuid.UUID, mappings []tagging.Pair, custom map[string]string) ([]tagging.Result, error) {
	if _, err := repos.TagLinks.DeleteByEntity(ctx, kind, entityID); err != nil {
		return nil, fmt.Errorf("failed to clear tag links: %w", err)
	}

	customByName := make(map[string]string, len(custom))
	for name, value := range custom {
		if v := strings.TrimSpace(value); v != "" {
			customByName[strings.TrimSpace(name)] = v
		}
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"entity_type": kind,
		"entity_id":   entityID,
	})

	stored := models.CustomValues{}
	seen := make(map[uuid.UUID]struct{}, len(mappings))
	mapped := make(map[string]struct{}, len(mappings))
	results := make([]tagging.Result, 0, len(mappings)+len(customByName))

	for _, raw := range mappings {
		m := raw.Normalize()
		mapped[m.CategoryName] = struct{}{}
		resolved, err := resolveMapping(ctx, repos.Categories, m, customByName[m.CategoryName], seen)
		if err != nil {
			return nil, err
		}

		if resolved.result.Status.Applied() {
			link := &models.TagLink{
				EntityType: kind,
				EntityID:   entityID,
				CategoryID: resolved.category.ID,
				OptionID:   resolved.option.ID,
			}
			if err := repos.TagLinks.Create(ctx, link); err != nil {
				return nil, writeError(err, "create tag link", nil)
			}
			seen[resolved.category.ID] = struct{}{}
			if resolved.custom != "" {
				stored[resolved.category.ID.String()] = resolved.custom
			}
		} else {
			log.WithField("status", resolved.result.Status).
				Warnf("skipped tag mapping %q=%q: %s", m.CategoryName, m.OptionName, resolved.result.Message)
		}

		results = append(results, resolved.result)
	}

	orphans := make([]string, 0, len(customByName))
	for name := range customByName {
		if _, ok := mapped[name]; !ok {
			orphans = append(orphans, name)
		}
	}
	sort.Strings(orphans)
	for _, name := range orphans {
		result := tagging.Result{
			CategoryName: name,
			Status:       tagging.StatusCustomWithoutMapping,
			Message:      fmt.Sprintf("custom value for %q has no matching category mapping", name),
		}
		log.WithField("status", result.Status).Warnf("skipped custom value for %q: %s", name, result.Message)
		results = append(results, result)
	}

	if err := repos.Entities.SetCustomValues(ctx, kind, entityID, stored); err != nil {
		return nil, fmt.Errorf("failed to store custom values: %w", err)
	}

	return results, nil
}

// resolveMapping resolves names to rows. Only infrastructure failures are returned as errors;
// anything the caller got wrong becomes a non-applied result.
func resolveMapping(ctx context.Context, repo *repository.CategoryRepository, m tagging.Pair, custom string, seen map[uuid.UUID]struct{}) (resolvedMapping, error) {
	r := resolvedMapping{result: tagging.Result{CategoryName: m.CategoryName, OptionName: m.OptionName}}

	category, err := repo.GetByName(ctx, m.CategoryName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.result.Status = tagging.StatusCategoryNotFound
		r.result.Message = fmt.Sprintf("no category named %q", m.CategoryName)
		return r, nil
	}
	if err != nil {
		return r, fmt.Errorf("failed to resolve category: %w", err)
	}
	if _, dup := seen[category.ID]; dup {
		r.result.Status = tagging.StatusDuplicateCategory
		r.result.Message = "category already mapped earlier in this request"
		return r, nil
	}
	r.category = category

	optionName := m.OptionName
	useCustom := false
	switch {
	case optionName == "" && custom == "":
		r.result.Status = tagging.StatusEmptyOption
		r.result.Message = "no option selected"
		return r, nil
	case optionName == "" && !category.HasSentinel():
		r.result.Status = tagging.StatusCustomNotAllowed
		r.result.Message = fmt.Sprintf("category %q does not accept custom values", category.Name)
		return r, nil
	case optionName == "":
		optionName = category.SentinelOption
		useCustom = true
	case custom != "" && category.HasSentinel() && optionName == category.SentinelOption:
		useCustom = true
	}

	option, err := repo.GetOptionByName(ctx, category.ID, optionName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.result.Status = tagging.StatusOptionNotFound
		r.result.Message = fmt.Sprintf("category %q has no option %q", category.Name, optionName)
		return r, nil
	}
	if err != nil {
		return r, fmt.Errorf("failed to resolve option: %w", err)
	}
	r.option = option
	r.result.OptionName = option.Name

	switch {
	case useCustom:
		r.custom = custom
		r.result.Status = tagging.StatusLinkedSentinel
	case custom != "":
		r.result.Status = tagging.StatusLinked
		r.result.Message = "custom value ignored: only the sentinel option takes free text"
	default:
		r.result.Status = tagging.StatusLinked
	}
	return r, nil
}

// lockEntity fails with the kind's NotFound error unless the entity exists and is active
func lockEntity(ctx context.Context, repos *repository.Repositories, kind models.EntityType, id uuid.UUID) error {
	ok, err := repos.Entities.LockActive(ctx, kind, id)
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", kind, err)
	}
	if !ok {
		return entityNotFound(kind)
	}
	return nil
}

func entityNotFound(kind models.EntityType) error {
	if kind == models.EntityTypeProject {
		return apperrors.ErrProjectNotFound
	}
	return apperrors.ErrHostelNotFound
}

func entityCustomValues(ctx context.Context, repos *repository.Repositories, kind models.EntityType, id uuid.UUID) (models.CustomValues, error) {
	switch kind {
	case models.EntityTypeHostel:
		hostel, err := repos.Hostels.GetActiveByID(ctx, id)
		if err != nil {
			return nil, lookupError(err, apperrors.ErrHostelNotFound, "get hostel")
		}
		return hostel.CustomValues, nil
	case models.EntityTypeProject:
		project, err := repos.Projects.GetByID(ctx, id)
		if err != nil {
			return nil, lookupError(err, apperrors.ErrProjectNotFound, "get project")
		}
		return project.CustomValues, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedEntityType, kind)
	}
}

// entityTagSet is the read view of one entity's tags
type entityTagSet struct {
	Categories   []tagging.Pair
	CustomValues map[string]string
}

// loadEntityTags resolves tags for every entity in stored with one query. Custom values are
// re-keyed from category ID to category name; values for categories the entity is no longer
// tagged in are dropped.
func loadEntityTags(ctx context.Context, q repository.TagQueryRepositoryInterface, kind models.EntityType, stored map[uuid.UUID]models.CustomValues) (map[uuid.UUID]entityTagSet, error) {
	ids := make([]uuid.UUID, 0, len(stored))
	for id := range stored {
		ids = append(ids, id)
	}

	tags, err := q.EntityTags(ctx, kind, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}

	sets := make(map[uuid.UUID]entityTagSet, len(ids))
	for id, values := range stored {
		set := entityTagSet{Categories: []tagging.Pair{}, CustomValues: map[string]string{}}
		for _, t := range tags[id] {
			set.Categories = append(set.Categories, t.Pair())
			if v, ok := values[t.CategoryID.String()]; ok {
				set.CustomValues[t.CategoryName] = v
			}
		}
		sets[id] = set
	}
	return sets, nil
}
