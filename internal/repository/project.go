package repository

import (
	"context"

	"hostel-directory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects and their team members
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func orderedMembers(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC, name ASC")
}

// Create creates a new project row; members are written with ReplaceMembers
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	if project.CustomValues == nil {
		project.CustomValues = models.CustomValues{}
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(project).Error
}

// GetActiveByID retrieves an active project with its members
func (r *ProjectRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("Members", orderedMembers).
		First(&project, "id = ? AND is_active = ?", id, true).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByID retrieves a project whether or not it is active
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListActive retrieves every active project with members, newest first
func (r *ProjectRepository) ListActive(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Preload("Members", orderedMembers).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// ListActiveByIDs retrieves the active projects among ids with members, newest first
func (r *ProjectRepository) ListActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Project, error) {
	projects := []models.Project{}
	if len(ids) == 0 {
		return projects, nil
	}
	err := r.db.WithContext(ctx).
		Preload("Members", orderedMembers).
		Where("id IN ? AND is_active = ?", ids, true).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Update writes the project's scalar columns
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Model(project).
		Select("name", "description", "link", "updated_at").
		Updates(project).Error
}

// Deactivate soft deletes an active project
func (r *ProjectRepository) Deactivate(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Project{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}

// Delete removes the project row. Members and tag links must already be gone.
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// ReplaceMembers deletes the project's members and inserts the given ones
func (r *ProjectRepository) ReplaceMembers(ctx context.Context, projectID uuid.UUID, members []models.TeamMember) ([]models.TeamMember, error) {
	if err := r.DeleteMembers(ctx, projectID); err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return []models.TeamMember{}, nil
	}
	for i := range members {
		members[i].ID = uuid.Nil
		members[i].ProjectID = projectID
	}
	if err := r.db.WithContext(ctx).Create(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// DeleteMembers removes every member of a project
func (r *ProjectRepository) DeleteMembers(ctx context.Context, projectID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.TeamMember{}, "project_id = ?", projectID).Error
}
