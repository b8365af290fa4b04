package service_test

import (
	"context"
	"testing"

	"hostel-directory-backend/internal/database/models"
	apperrors "hostel-directory-backend/internal/errors"
	"hostel-directory-backend/internal/mocks"
	"hostel-directory-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	userService  *service.UserService
	ctx          context.Context
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.userService = service.NewUserService(suite.mockUserRepo, service.NewValidator())
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserServiceTestSuite) TestLookupOrCreate_Existing() {
	existing := &models.User{AuthUID: "uid-1", DisplayName: "Kim", Role: models.UserRoleAdmin}
	existing.ID = uuid.New()
	suite.mockUserRepo.EXPECT().GetByAuthUID(gomock.Any(), "uid-1").Return(existing, nil)

	resp, err := suite.userService.LookupOrCreate(suite.ctx, &service.LookupUserRequest{AuthUID: " uid-1 "})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), existing.ID, resp.ID)
	assert.Equal(suite.T(), models.UserRoleAdmin, resp.Role)
}

func (suite *UserServiceTestSuite) TestLookupOrCreate_New() {
	suite.mockUserRepo.EXPECT().GetByAuthUID(gomock.Any(), "uid-2").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.Equal(suite.T(), models.UserRoleUser, u.Role)
			u.ID = uuid.New()
			return nil
		})

	resp, err := suite.userService.LookupOrCreate(suite.ctx, &service.LookupUserRequest{AuthUID: "uid-2", DisplayName: "Lee"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Lee", resp.DisplayName)
	assert.Equal(suite.T(), models.UserRoleUser, resp.Role)
}

func (suite *UserServiceTestSuite) TestLookupOrCreate_CreatedConcurrently() {
	winner := &models.User{AuthUID: "uid-3", Role: models.UserRoleUser}
	winner.ID = uuid.New()
	gomock.InOrder(
		suite.mockUserRepo.EXPECT().GetByAuthUID(gomock.Any(), "uid-3").Return(nil, gorm.ErrRecordNotFound),
		suite.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey),
		suite.mockUserRepo.EXPECT().GetByAuthUID(gomock.Any(), "uid-3").Return(winner, nil),
	)

	resp, err := suite.userService.LookupOrCreate(suite.ctx, &service.LookupUserRequest{AuthUID: "uid-3"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), winner.ID, resp.ID)
}

func (suite *UserServiceTestSuite) TestLookupOrCreate_Validation() {
	_, err := suite.userService.LookupOrCreate(suite.ctx, &service.LookupUserRequest{AuthUID: "  "})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.userService.GetByID(suite.ctx, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
