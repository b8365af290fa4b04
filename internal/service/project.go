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

// ProjectService handles business logic for projects
type ProjectService struct {
	db        *gorm.DB
	tags      repository.TagQueryRepositoryInterface
	validator *validator.Validate
}

// Ensure ProjectService implements ProjectServiceInterface
var _ ProjectServiceInterface = (*ProjectService)(nil)

// NewProjectService creates a new project service
func NewProjectService(db *gorm.DB, tags repository.TagQueryRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		db:        db,
		tags:      tags,
		validator: validator,
	}
}

// TeamMemberRequest is one credited person on a project
type TeamMemberRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	LinkedIn string `json:"linkedin,omitempty" validate:"omitempty,url,max=255"`
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name         string              `json:"name" validate:"required,max=255"`
	Description  string              `json:"description,omitempty"`
	Link         string              `json:"link,omitempty" validate:"omitempty,url"`
	Members      []TeamMemberRequest `json:"members,omitempty" validate:"dive"`
	Categories   []tagging.Pair      `json:"categories,omitempty"`
	CustomValues map[string]string   `json:"custom_values,omitempty"`
}

// UpdateProjectRequest represents the request to update a project.
// Members and Categories follow the same rule: nil keeps, non-nil (even empty) replaces.
type UpdateProjectRequest struct {
	Name         string               `json:"name" validate:"required,max=255"`
	Description  string               `json:"description,omitempty"`
	Link         string               `json:"link,omitempty" validate:"omitempty,url"`
	Members      *[]TeamMemberRequest `json:"members,omitempty"`
	Categories   *[]tagging.Pair      `json:"categories,omitempty"`
	CustomValues map[string]string    `json:"custom_values,omitempty"`
}

// TeamMemberResponse represents a team member in API responses
type TeamMemberResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	LinkedIn string    `json:"linkedin"`
}

// ProjectResponse represents a project with its members and tags
type ProjectResponse struct {
	ID           uuid.UUID            `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	Link         string               `json:"link"`
	Members      []TeamMemberResponse `json:"members"`
	Categories   []tagging.Pair       `json:"categories"`
	CustomValues map[string]string    `json:"custom_values"`
	TagResults   []tagging.Result     `json:"tag_results,omitempty"`
	CreatedAt    string               `json:"created_at"`
	UpdatedAt    string               `json:"updated_at"`
}

// Create creates a project with its members and tags in one transaction
func (s *ProjectService) Create(ctx context.Context, req *CreateProjectRequest) (*ProjectResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
		Link:        req.Link,
		IsActive:    true,
	}

	var results []tagging.Result
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := repository.New(tx)
		if err := repos.Projects.Create(ctx, project); err != nil {
			return writeError(err, "create project", nil)
		}
		if _, err := repos.Projects.ReplaceMembers(ctx, project.ID, toTeamMembers(req.Members)); err != nil {
			return writeError(err, "create team members", nil)
		}
		var err error
		results, err = replaceTags(ctx, repos, models.EntityTypeProject, project.ID, req.Categories, req.CustomValues)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("project_id", project.ID).Infof("created project %q", project.Name)

	return s.describe(ctx, project.ID, results)
}

// GetByID retrieves an active project
func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*ProjectResponse, error) {
	project, err := repository.NewProjectRepository(s.db).GetActiveByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrProjectNotFound, "get project")
	}

	responses, err := s.assemble(ctx, []models.Project{*project})
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

// List returns active projects matching every filter category, newest first
func (s *ProjectService) List(ctx context.Context, filters tagging.Filters) ([]ProjectResponse, error) {
	repo := repository.NewProjectRepository(s.db)
	filters = filters.Normalize()

	var projects []models.Project
	if filters.Empty() {
		var err error
		if projects, err = repo.ListActive(ctx); err != nil {
			return nil, fmt.Errorf("failed to list projects: %w", err)
		}
	} else {
		ids, err := s.tags.FilterEntityIDs(ctx, models.EntityTypeProject, filters)
		if err != nil {
			return nil, fmt.Errorf("failed to filter projects: %w", err)
		}
		if projects, err = repo.ListActiveByIDs(ctx, ids); err != nil {
			return nil, fmt.Errorf("failed to list projects: %w", err)
		}
	}

	return s.assemble(ctx, projects)
}

// Update replaces a project's scalars, and its members and tags when given, in one transaction
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if req.Members != nil {
		for _, m := range *req.Members {
			if err := s.validator.Struct(m); err != nil {
				return nil, validationError(err)
			}
		}
	}

	var results []tagging.Result
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := repository.New(tx)
		if err := lockEntity(ctx, repos, models.EntityTypeProject, id); err != nil {
			return err
		}
		project, err := repos.Projects.GetByID(ctx, id)
		if err != nil {
			return lookupError(err, apperrors.ErrProjectNotFound, "get project")
		}

		project.Name = req.Name
		project.Description = req.Description
		project.Link = req.Link
		if err := repos.Projects.Update(ctx, project); err != nil {
			return writeError(err, "update project", nil)
		}

		if req.Members != nil {
			if _, err := repos.Projects.ReplaceMembers(ctx, id, toTeamMembers(*req.Members)); err != nil {
				return writeError(err, "replace team members", nil)
			}
		}
		if req.Categories != nil {
			results, err = replaceTags(ctx, repos, models.EntityTypeProject, id, *req.Categories, req.CustomValues)
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

// Delete hides a project, keeping its tags and members
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := repository.NewProjectRepository(s.db).Deactivate(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if n == 0 {
		return apperrors.ErrProjectNotFound
	}
	logger.WithContext(ctx).WithField("project_id", id).Infof("deactivated project")
	return nil
}

// Purge hard deletes a project, active or not, after removing its tag links and members
func (s *ProjectService) Purge(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := repository.New(tx)

		if _, err := repos.Projects.GetByID(ctx, id); err != nil {
			return lookupError(err, apperrors.ErrProjectNotFound, "get project")
		}
		links, err := repos.TagLinks.DeleteByEntity(ctx, models.EntityTypeProject, id)
		if err != nil {
			return fmt.Errorf("failed to delete tag links: %w", err)
		}
		if err := repos.Projects.DeleteMembers(ctx, id); err != nil {
			return fmt.Errorf("failed to delete team members: %w", err)
		}
		if _, err := repos.Projects.Delete(ctx, id); err != nil {
			return writeError(err, "delete project", nil)
		}

		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"project_id":        id,
			"removed_tag_links": links,
		}).Infof("purged project")
		return nil
	})
}

func (s *ProjectService) describe(ctx context.Context, id uuid.UUID, results []tagging.Result) (*ProjectResponse, error) {
	resp, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp.TagResults = results
	return resp, nil
}

func (s *ProjectService) assemble(ctx context.Context, projects []models.Project) ([]ProjectResponse, error) {
	responses := make([]ProjectResponse, len(projects))
	if len(projects) == 0 {
		return responses, nil
	}

	stored := make(map[uuid.UUID]models.CustomValues, len(projects))
	for _, p := range projects {
		stored[p.ID] = p.CustomValues
	}
	tagSets, err := loadEntityTags(ctx, s.tags, models.EntityTypeProject, stored)
	if err != nil {
		return nil, err
	}

	for i := range projects {
		p := &projects[i]
		members := make([]TeamMemberResponse, len(p.Members))
		for j, m := range p.Members {
			members[j] = TeamMemberResponse{ID: m.ID, Name: m.Name, LinkedIn: m.LinkedIn}
		}
		responses[i] = ProjectResponse{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			Link:         p.Link,
			Members:      members,
			Categories:   tagSets[p.ID].Categories,
			CustomValues: tagSets[p.ID].CustomValues,
			CreatedAt:    p.CreatedAt.Format(time.RFC3339),
			UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
		}
	}
	return responses, nil
}

func toTeamMembers(reqs []TeamMemberRequest) []models.TeamMember {
	members := make([]models.TeamMember, 0, len(reqs))
	for _, r := range reqs {
		members = append(members, models.TeamMember{
			Name:     strings.TrimSpace(r.Name),
			LinkedIn: strings.TrimSpace(r.LinkedIn),
		})
	}
	return members
}
