package service

import (
	"context"

	"hostel-directory-backend/internal/database/models"
	"hostel-directory-backend/internal/tagging"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CategoryServiceInterface defines the interface for the category registry
type CategoryServiceInterface interface {
	ListCategories(ctx context.Context) ([]CategoryResponse, error)
	CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*CategoryResponse, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req *UpdateCategoryRequest) (*CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListOptions(ctx context.Context, categoryID uuid.UUID) ([]OptionResponse, error)
	ListOptionsByCategoryName(ctx context.Context, name string) ([]OptionResponse, error)
	AddOption(ctx context.Context, categoryID uuid.UUID, req *OptionRequest) (*OptionResponse, error)
	RenameOption(ctx context.Context, categoryID, optionID uuid.UUID, req *OptionRequest) (*OptionResponse, error)
	DeleteOption(ctx context.Context, categoryID, optionID uuid.UUID) error
}

// TagServiceInterface defines the interface for tagging entities outside of entity create/update
type TagServiceInterface interface {
	SetEntityTags(ctx context.Context, kind models.EntityType, entityID uuid.UUID, req *SetTagsRequest) (*TagSetResponse, error)
	LinkTag(ctx context.Context, kind models.EntityType, entityID uuid.UUID, req *LinkTagRequest) (*TagSetResponse, error)
}

// HostelServiceInterface defines the interface for hostel service
type HostelServiceInterface interface {
	Create(ctx context.Context, req *CreateHostelRequest) (*HostelResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*HostelResponse, error)
	List(ctx context.Context, filters tagging.Filters) ([]HostelResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateHostelRequest) (*HostelResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	Create(ctx context.Context, req *CreateProjectRequest) (*ProjectResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProjectResponse, error)
	List(ctx context.Context, filters tagging.Filters) ([]ProjectResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Purge(ctx context.Context, id uuid.UUID) error
}

// RatingServiceInterface defines the interface for rating service
type RatingServiceInterface interface {
	Create(ctx context.Context, req *CreateRatingRequest) (*RatingResponse, error)
	ListByHostel(ctx context.Context, hostelID uuid.UUID) ([]RatingResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateRatingRequest) (*RatingResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CommentServiceInterface defines the interface for comment service
type CommentServiceInterface interface {
	Create(ctx context.Context, req *CreateCommentRequest) (*CommentResponse, error)
	ListByHostel(ctx context.Context, hostelID uuid.UUID) ([]CommentResponse, error)
	ListAll(ctx context.Context) ([]CommentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateCommentRequest) (*CommentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ImageServiceInterface defines the interface for hostel image metadata
type ImageServiceInterface interface {
	Add(ctx context.Context, hostelID uuid.UUID, req *CreateImageRequest) (*ImageResponse, error)
	ListByHostel(ctx context.Context, hostelID uuid.UUID) ([]ImageResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateImageRequest) (*ImageResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	LookupOrCreate(ctx context.Context, req *LookupUserRequest) (*UserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error)
}
