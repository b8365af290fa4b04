package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hostel-directory-backend/internal/database/models"
	apperrors "hostel-directory-backend/internal/errors"
	"hostel-directory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImageService manages hostel image metadata. The files themselves are stored elsewhere.
type ImageService struct {
	db        *gorm.DB
	validator *validator.Validate
}

// Ensure ImageService implements ImageServiceInterface
var _ ImageServiceInterface = (*ImageService)(nil)

// NewImageService creates a new image service
func NewImageService(db *gorm.DB, validator *validator.Validate) *ImageService {
	return &ImageService{
		db:        db,
		validator: validator,
	}
}

// CreateImageRequest represents the request to attach an image to a hostel
type CreateImageRequest struct {
	ImageURL  string           `json:"image_url" validate:"required,url"`
	ImageType models.ImageType `json:"image_type,omitempty" validate:"omitempty,oneof=general room exterior common_area"`
	IsPrimary bool             `json:"is_primary"`
}

// UpdateImageRequest changes image metadata; nil fields are left alone
type UpdateImageRequest struct {
	ImageURL  *string           `json:"image_url,omitempty" validate:"omitempty,url"`
	ImageType *models.ImageType `json:"image_type,omitempty" validate:"omitempty,oneof=general room exterior common_area"`
	IsPrimary *bool             `json:"is_primary,omitempty"`
}

// ImageResponse represents image metadata in API responses
type ImageResponse struct {
	ID         uuid.UUID        `json:"id"`
	HostelID   uuid.UUID        `json:"hostel_id"`
	ImageURL   string           `json:"image_url"`
	ImageType  models.ImageType `json:"image_type"`
	IsPrimary  bool             `json:"is_primary"`
	UploadedAt string           `json:"uploaded_at"`
}

// Add attaches an image to an active hostel. A primary image demotes the hostel's other images.
func (s *ImageService) Add(ctx context.Context, hostelID uuid.UUID, req *CreateImageRequest) (*ImageResponse, error) {
	req.ImageURL = strings.TrimSpace(req.ImageURL)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	image := &models.HostelImage{
		HostelID:  hostelID,
		ImageURL:  req.ImageURL,
		ImageType: req.ImageType,
		IsPrimary: req.IsPrimary,
	}
	if image.ImageType == "" {
		image.ImageType = models.ImageTypeGeneral
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := repository.New(tx)
		if _, err := repos.Hostels.GetActiveByID(ctx, hostelID); err != nil {
			return lookupError(err, apperrors.ErrHostelNotFound, "get hostel")
		}
		if err := repos.Images.Create(ctx, image); err != nil {
			return writeError(err, "create image", nil)
		}
		if image.IsPrimary {
			if err := repos.Images.ClearPrimary(ctx, hostelID, image.ID); err != nil {
				return fmt.Errorf("failed to clear primary image: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toImageResponse(image), nil
}

// ListByHostel returns an active hostel's images, primary first
func (s *ImageService) ListByHostel(ctx context.Context, hostelID uuid.UUID) ([]ImageResponse, error) {
	repos := repository.New(s.db)
	if _, err := repos.Hostels.GetActiveByID(ctx, hostelID); err != nil {
		return nil, lookupError(err, apperrors.ErrHostelNotFound, "get hostel")
	}

	images, err := repos.Images.ListByHostel(ctx, hostelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	return toImageResponses(images), nil
}

// Update changes image metadata
func (s *ImageService) Update(ctx context.Context, id uuid.UUID, req *UpdateImageRequest) (*ImageResponse, error) {
	if req.ImageURL != nil {
		url := strings.TrimSpace(*req.ImageURL)
		req.ImageURL = &url
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var image *models.HostelImage
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := repository.New(tx)

		var err error
		image, err = repos.Images.GetByID(ctx, id)
		if err != nil {
			return lookupError(err, apperrors.ErrImageNotFound, "get image")
		}
		if req.ImageURL != nil {
			image.ImageURL = *req.ImageURL
		}
		if req.ImageType != nil {
			image.ImageType = *req.ImageType
		}
		if req.IsPrimary != nil {
			image.IsPrimary = *req.IsPrimary
		}

		if err := repos.Images.Update(ctx, image); err != nil {
			return fmt.Errorf("failed to update image: %w", err)
		}
		if image.IsPrimary {
			if err := repos.Images.ClearPrimary(ctx, image.HostelID, image.ID); err != nil {
				return fmt.Errorf("failed to clear primary image: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toImageResponse(image), nil
}

// Delete removes image metadata
func (s *ImageService) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := repository.NewHostelImageRepository(s.db).Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	if n == 0 {
		return apperrors.ErrImageNotFound
	}
	return nil
}

func toImageResponse(image *models.HostelImage) *ImageResponse {
	return &ImageResponse{
		ID:         image.ID,
		HostelID:   image.HostelID,
		ImageURL:   image.ImageURL,
		ImageType:  image.ImageType,
		IsPrimary:  image.IsPrimary,
		UploadedAt: image.CreatedAt.Format(time.RFC3339),
	}
}

func toImageResponses(images []models.HostelImage) []ImageResponse {
	responses := make([]ImageResponse, len(images))
	for i := range images {
		responses[i] = *toImageResponse(&images[i])
	}
	return responses
}
