package service_test

import (
	"context"
	"testing"

	"hostel-directory-backend/internal/database/models"
	apperrors "hostel-directory-backend/internal/errors"
	"hostel-directory-backend/internal/service"
	"hostel-directory-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ImageServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	imageService  *service.ImageService
	fx            *testutils.Fixtures
	ctx           context.Context
	hostel        *models.Hostel
}

func (suite *ImageServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.imageService = service.NewImageService(suite.baseTestSuite.DB, service.NewValidator())
	suite.ctx = context.Background()
}

func (suite *ImageServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ImageServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.fx = testutils.NewFixtures(suite.T(), suite.baseTestSuite.DB)
	suite.hostel = suite.fx.Hostel("Sunrise")
}

func (suite *ImageServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ImageServiceTestSuite) primaries() []uuid.UUID {
	images, err := suite.imageService.ListByHostel(suite.ctx, suite.hostel.ID)
	suite.Require().NoError(err)
	var ids []uuid.UUID
	for _, img := range images {
		if img.IsPrimary {
			ids = append(ids, img.ID)
		}
	}
	return ids
}

func (suite *ImageServiceTestSuite) TestAdd_SinglePrimary() {
	first, err := suite.imageService.Add(suite.ctx, suite.hostel.ID, &service.CreateImageRequest{
		ImageURL:  "https://img.example.com/front.jpg",
		IsPrimary: true,
	})
	suite.Require().NoError(err)
	suite.Equal(models.ImageTypeGeneral, first.ImageType)
	suite.Equal([]uuid.UUID{first.ID}, suite.primaries())

	second, err := suite.imageService.Add(suite.ctx, suite.hostel.ID, &service.CreateImageRequest{
		ImageURL:  "https://img.example.com/room.jpg",
		ImageType: models.ImageTypeRoom,
		IsPrimary: true,
	})
	suite.Require().NoError(err)
	suite.Equal([]uuid.UUID{second.ID}, suite.primaries())

	primary := true
	_, err = suite.imageService.Update(suite.ctx, first.ID, &service.UpdateImageRequest{IsPrimary: &primary})
	suite.Require().NoError(err)
	suite.Equal([]uuid.UUID{first.ID}, suite.primaries())
}

func (suite *ImageServiceTestSuite) TestAdd_Errors() {
	_, err := suite.imageService.Add(suite.ctx, uuid.New(), &service.CreateImageRequest{ImageURL: "https://img.example.com/a.jpg"})
	suite.ErrorIs(err, apperrors.ErrHostelNotFound)

	_, err = suite.imageService.Add(suite.ctx, suite.hostel.ID, &service.CreateImageRequest{ImageURL: "front.jpg"})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.imageService.Add(suite.ctx, suite.hostel.ID, &service.CreateImageRequest{
		ImageURL:  "https://img.example.com/a.jpg",
		ImageType: models.ImageType("selfie"),
	})
	suite.True(apperrors.IsValidation(err))
}

func (suite *ImageServiceTestSuite) TestUpdateAndDelete() {
	image, err := suite.imageService.Add(suite.ctx, suite.hostel.ID, &service.CreateImageRequest{ImageURL: "https://img.example.com/a.jpg"})
	suite.Require().NoError(err)

	exterior := models.ImageTypeExterior
	updated, err := suite.imageService.Update(suite.ctx, image.ID, &service.UpdateImageRequest{ImageType: &exterior})
	suite.Require().NoError(err)
	suite.Equal(models.ImageTypeExterior, updated.ImageType)
	suite.Equal("https://img.example.com/a.jpg", updated.ImageURL)

	_, err = suite.imageService.Update(suite.ctx, uuid.New(), &service.UpdateImageRequest{ImageType: &exterior})
	suite.ErrorIs(err, apperrors.ErrImageNotFound)

	suite.Require().NoError(suite.imageService.Delete(suite.ctx, image.ID))
	suite.ErrorIs(suite.imageService.Delete(suite.ctx, image.ID), apperrors.ErrImageNotFound)

	images, err := suite.imageService.ListByHostel(suite.ctx, suite.hostel.ID)
	suite.Require().NoError(err)
	suite.Empty(images)
}

func TestImageServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImageServiceTestSuite))
}
