package repository

import (
	"context"

	"hostel-directory-backend/internal/database/models"
	"hostel-directory-backend/internal/tagging"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// HostelRepositoryInterface defines the interface for hostel repository operations
type HostelRepositoryInterface interface {
	Create(ctx context.Context, hostel *models.Hostel) error
	GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Hostel, error)
	ListActive(ctx context.Context) ([]models.Hostel, error)
	ListActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Hostel, error)
	Update(ctx context.Context, hostel *models.Hostel) error
	Deactivate(ctx context.Context, id uuid.UUID) (int64, error)
}

// RatingRepositoryInterface defines the interface for rating repository operations
type RatingRepositoryInterface interface {
	Create(ctx context.Context, rating *models.Rating) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Rating, error)
	GetByHostelAndUser(ctx context.Context, hostelID, userID uuid.UUID) (*models.Rating, error)
	ListByHostel(ctx context.Context, hostelID uuid.UUID) ([]models.Rating, error)
	Update(ctx context.Context, rating *models.Rating) error
	Delete(ctx context.Context, id uuid.UUID) error
	SummaryByHostelIDs(ctx context.Context, hostelIDs []uuid.UUID) (map[uuid.UUID]RatingSummary, error)
}

// CommentRepositoryInterface defines the interface for comment repository operations
type CommentRepositoryInterface interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	ListByHostel(ctx context.Context, hostelID uuid.UUID) ([]models.Comment, error)
	ListAll(ctx context.Context) ([]models.Comment, error)
	RecentByHostelIDs(ctx context.Context, hostelIDs []uuid.UUID, perHostel int) (map[uuid.UUID][]models.Comment, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByAuthUID(ctx context.Context, authUID string) (*models.User, error)
}

// TagQueryRepositoryInterface defines the read side of the tagging subsystem
type TagQueryRepositoryInterface interface {
	FilterEntityIDs(ctx context.Context, kind models.EntityType, filters tagging.Filters) ([]uuid.UUID, error)
	EntityTags(ctx context.Context, kind models.EntityType, ids []uuid.UUID) (map[uuid.UUID][]ResolvedTag, error)
}
