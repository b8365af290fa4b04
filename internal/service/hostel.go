package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hostel-directory-backend/internal/database/models"
	apperrors "hostel-directory-backend/internal/errors"
	"hostel-directory-backend/internal/logger"
	"hostel-directory-backend/internal/repository"
	"hostel-directory-backend/internal/tagging"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HostelService handles business logic for hostels
type HostelService struct {
	db             *gorm.DB
	tags           repository.TagQueryRepositoryInterface
	validator      *validator.Validate
	recentInList   int
	recentInDetail int
}

// Ensure HostelService implements HostelServiceInterface
var _ HostelServiceInterface = (*HostelService)(nil)

// NewHostelService creates a new hostel service. recentInList and recentInDetail cap the
// comments embedded in list and detail responses.
func NewHostelService(db *gorm.DB, tags repository.TagQueryRepositoryInterface, validator *validator.Validate, recentInList, recentInDetail int) *HostelService {
	return &HostelService{
		db:             db,
		tags:           tags,
		validator:      validator,
		recentInList:   recentInList,
		recentInDetail: recentInDetail,
	}
}

// CreateHostelRequest represents the request to create a hostel
type CreateHostelRequest struct {
	Name         string            `json:"name" validate:"required,max=255"`
	Description  string            `json:"description,omitempty"`
	Location     string            `json:"location" validate:"required,max=500"`
	Address      string            `json:"address,omitempty"`
	PhoneNumber  string            `json:"phone_number,omitempty" validate:"max=20"`
	Email        string            `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Website      string            `json:"website,omitempty" validate:"omitempty,url,max=255"`
	PriceRange   string            `json:"price_range,omitempty" validate:"max=100"`
	CreatedBy    *uuid.UUID        `json:"created_by,omitempty"`
	Categories   []tagging.Pair    `json:"categories,omitempty"`
	CustomValues map[string]string `json:"custom_values,omitempty"`
}

// UpdateHostelRequest represents the request to update a hostel. Scalars are replaced as a whole.
// A nil Categories leaves tags and custom values untouched; a non-nil one (even empty) replaces them.
type UpdateHostelRequest struct {
	Name         string            `json:"name" validate:"required,max=255"`
	Description  string            `json:"description,omitempty"`
	Location     string            `json:"location" validate:"required,max=500"`
	Address      string            `json:"address,omitempty"`
	PhoneNumber  string            `json:"phone_number,omitempty" validate:"max=20"`
	Email        string            `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Website      string            `json:"website,omitempty" validate:"omitempty,url,max=255"`
	PriceRange   string            `json:"price_range,omitempty" validate:"max=100"`
	Categories   *[]tagging.Pair   `json:"categories,omitempty"`
	CustomValues map[string]string `json:"custom_values,omitempty"`
}

// HostelResponse represents a hostel with everything shown next to it
type HostelResponse struct {
	ID             uuid.UUID         `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Location       string            `json:"location"`
	Address        string            `json:"address"`
	PhoneNumber    string            `json:"phone_number"`
	Email          string            `json:"email"`
	Website        string            `json:"website"`
	PriceRange     string            `json:"price_range"`
	CreatedBy      *uuid.UUID        `json:"created_by,omitempty"`
	Categories     []tagging.Pair    `json:"categories"`
	CustomValues   map[string]string `json:"custom_values"`
	Images         []ImageResponse   `json:"images"`
	AverageRating  *float64          `json:"average_rating"`
	TotalRatings   int64             `json:"total_ratings"`
	RecentComments []CommentResponse `json:"recent_comments"`
	TagResults     []tagging.Result  `json:"tag_results,omitempty"`
	CreatedAt      string            `json:"created_at"`
	UpdatedAt      string            `json:"updated_at"`
}

// Create creates a hostel and its tags in one transaction
func (s *HostelService) Create(ctx context.Context, req *CreateHostelRequest) (*HostelResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Location = strings.TrimSpace(req.Location)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	hostel := &models.Hostel{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Website:     req.Website,
		PriceRange:  req.PriceRange,
		CreatedBy:   req.CreatedBy,
		IsActive:    true,
	}

	var results []tagging.Result
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := repository.New(tx)
		if err := repos.Hostels.Create(ctx, hostel); err != nil {
			return writeError(err, "create hostel", nil)
		}
		var err error
		results, err = replaceTags(ctx, repos, models.EntityTypeHostel, hostel.ID, req.Categories, req.CustomValues)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("hostel_id", hostel.ID).Infof("created hostel %q", hostel.Name)

	return s.describe(ctx, hostel.ID, results)
}

// GetByID retrieves an active hostel with its tags, images, rating summary and recent comments
func (s *HostelService) GetByID(ctx context.Context, id uuid.UUID) (*HostelResponse, error) {
	hostel, err := repository.NewHostelRepository(s.db).GetActiveByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrHostelNotFound, "get hostel")
	}

	responses, err := s.assemble(ctx, []models.Hostel{*hostel}, s.recentInDetail)
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

// List returns active hostels matching every filter category, newest first
func (s *HostelService) List(ctx context.Context, filters tagging.Filters) ([]HostelResponse, error) {
	repo := repository.NewHostelRepository(s.db)
	filters = filters.Normalize()

	var hostels []models.Hostel
	if filters.Empty() {
		var err error
		if hostels, err = repo.ListActive(ctx); err != nil {
			return nil, fmt.Errorf("failed to list hostels: %w", err)
		}
	} else {
		ids, err := s.tags.FilterEntityIDs(ctx, models.EntityTypeHostel, filters)
		if err != nil {
			return nil, fmt.Errorf("failed to filter hostels: %w", err)
		}
		if hostels, err = repo.ListActiveByIDs(ctx, ids); err != nil {
			return nil, fmt.Errorf("failed to list hostels: %w", err)
		}
	}

	return s.assemble(ctx, hostels, s.recentInList)
}

// Update replaces a hostel's scalar fields and, when categories are given, its tags
func (s *HostelService) Update(ctx context.Context, id uuid.UUID, req *UpdateHostelRequest) (*HostelResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Location = strings.TrimSpace(req.Location)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var results []tagging.Result
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := repository.New(tx)
		if err := lockEntity(ctx, repos, models.EntityTypeHostel, id); err != nil {
			return err
		}
		hostel, err := repos.Hostels.GetActiveByID(ctx, id)
		if err != nil {
			return lookupError(err, apperrors.ErrHostelNotFound, "get hostel")
		}

		hostel.Name = req.Name
		hostel.Description = req.Description
		hostel.Location = req.Location
		hostel.Address = req.Address
		hostel.PhoneNumber = req.PhoneNumber
		hostel.Email = req.Email
		hostel.Website = req.Website
		hostel.PriceRange = req.PriceRange
		if err := repos.Hostels.Update(ctx, hostel); err != nil {
			return writeError(err, "update hostel", nil)
		}

		if req.Categories != nil {
			results, err = replaceTags(ctx, repos, models.EntityTypeHostel, id, *req.Categories, req.CustomValues)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.describe(ctx, id, results)
}

// Delete hides a hostel. Tags, ratings and comments stay in place.
func (s *HostelService) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := repository.NewHostelRepository(s.db).Deactivate(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete hostel: %w", err)
	}
	if n == 0 {
		return apperrors.ErrHostelNotFound
	}
	logger.WithContext(ctx).WithField("hostel_id", id).Infof("deactivated hostel")
	return nil
}

func (s *HostelService) describe(ctx context.Context, id uuid.UUID, results []tagging.Result) (*HostelResponse, error) {
	resp, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp.TagResults = results
	return resp, nil
}

// assemble batch-loads everything shown with the hostels: one query each for tags,
// images, rating summaries and recent comments, however many hostels there are.
func (s *HostelService) assemble(ctx context.Context, hostels []models.Hostel, recentComments int) ([]HostelResponse, error) {
	responses := make([]HostelResponse, len(hostels))
	if len(hostels) == 0 {
		return responses, nil
	}

	repos := repository.New(s.db)
	ids := make([]uuid.UUID, len(hostels))
	stored := make(map[uuid.UUID]models.CustomValues, len(hostels))
	for i, h := range hostels {
		ids[i] = h.ID
		stored[h.ID] = h.CustomValues
	}

	tagSets, err := loadEntityTags(ctx, s.tags, models.EntityTypeHostel, stored)
	if err != nil {
		return nil, err
	}
	images, err := repos.Images.ListByHostelIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}
	summaries, err := repos.Ratings.SummaryByHostelIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}
	comments, err := repos.Comments.RecentByHostelIDs(ctx, ids, recentComments)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	for i := range hostels {
		h := &hostels[i]
		resp := HostelResponse{
			ID:             h.ID,
			Name:           h.Name,
			Description:    h.Description,
			Location:       h.Location,
			Address:        h.Address,
			PhoneNumber:    h.PhoneNumber,
			Email:          h.Email,
			Website:        h.Website,
			PriceRange:     h.PriceRange,
			CreatedBy:      h.CreatedBy,
			Categories:     tagSets[h.ID].Categories,
			CustomValues:   tagSets[h.ID].CustomValues,
			Images:         toImageResponses(images[h.ID]),
			RecentComments: toCommentResponses(comments[h.ID]),
			CreatedAt:      h.CreatedAt.Format(time.RFC3339),
			UpdatedAt:      h.UpdatedAt.Format(time.RFC3339),
		}
		if summary, ok := summaries[h.ID]; ok && summary.Total > 0 {
			avg := summary.Average
			resp.AverageRating = &avg
			resp.TotalRatings = summary.Total
		}
		responses[i] = resp
	}
	return responses, nil
}
