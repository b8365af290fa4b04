package handlers_test

import (
	"net/http"
	"testing"

	"hostel-directory-backend/internal/api/handlers"
	"hostel-directory-backend/internal/database/models"
	apperrors "hostel-directory-backend/internal/errors"
	"hostel-directory-backend/internal/mocks"
	"hostel-directory-backend/internal/service"
	"hostel-directory-backend/internal/tagging"
	"hostel-directory-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockProjects *mocks.MockProjectServiceInterface
	mockTags     *mocks.MockTagServiceInterface
	http         *testutils.HTTPTestSuite
}

func (suite *ProjectHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProjects = mocks.NewMockProjectServiceInterface(suite.ctrl)
	suite.mockTags = mocks.NewMockTagServiceInterface(suite.ctrl)
	handler := handlers.NewProjectHandler(suite.mockProjects, suite.mockTags)

	suite.http = testutils.SetupHTTPTest()
	r := suite.http.Router
	r.GET("/projects", handler.ListProjects)
	r.GET("/projects/:id", handler.GetProject)
	r.POST("/projects", handler.CreateProject)
	r.PUT("/projects/:id", handler.UpdateProject)
	r.DELETE("/projects/:id", handler.DeleteProject)
	r.PUT("/projects/:id/tags", handler.SetProjectTags)
	r.POST("/projects/:id/tag-links", handler.LinkProjectTag)
}

func (suite *ProjectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectHandlerTestSuite) TestListProjects() {
	suite.mockProjects.EXPECT().List(gomock.Any(), tagging.Filters{"Year of Submission": {"2024"}}).
		Return([]service.ProjectResponse{{ID: uuid.New(), Name: "Campus Map"}}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/projects?filter=Year%20of%20Submission:2024", nil)

	var got []service.ProjectResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Require().Len(got, 1)
	suite.Equal("Campus Map", got[0].Name)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject() {
	req := service.CreateProjectRequest{
		Name:    "Campus Map",
		Members: []service.TeamMemberRequest{{Name: "Ada"}, {Name: "Brook", LinkedIn: "https://linkedin.com/in/brook"}},
	}
	suite.mockProjects.EXPECT().Create(gomock.Any(), &req).
		Return(&service.ProjectResponse{ID: uuid.New(), Name: "Campus Map", Members: []service.TeamMemberResponse{{Name: "Ada"}, {Name: "Brook"}}}, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/projects", req)

	var got service.ProjectResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	suite.Len(got.Members, 2)
}

func (suite *ProjectHandlerTestSuite) TestGetProject_NotFound() {
	id := uuid.New()
	suite.mockProjects.EXPECT().GetByID(gomock.Any(), id).Return(nil, apperrors.ErrProjectNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/projects/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "project not found")
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject_MembersOptional() {
	id := uuid.New()
	suite.mockProjects.EXPECT().Update(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req *service.UpdateProjectRequest) (*service.ProjectResponse, error) {
			suite.Nil(req.Members)
			suite.Require().NotNil(req.Categories)
			suite.Len(*req.Categories, 1)
			return &service.ProjectResponse{ID: id, Name: req.Name}, nil
		})

	body := `{"name":"Campus Map v2","categories":[{"category_name":"Domain","option_name":"Web"}]}`
	w := suite.http.MakeRequest(http.MethodPut, "/projects/"+id.String(), body)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject_SoftByDefault() {
	id := uuid.New()
	suite.mockProjects.EXPECT().Delete(gomock.Any(), id).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/projects/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject_Purge() {
	id := uuid.New()
	suite.mockProjects.EXPECT().Purge(gomock.Any(), id).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/projects/"+id.String()+"?purge=true", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject_BadPurgeFlag() {
	w := suite.http.MakeRequest(http.MethodDelete, "/projects/"+uuid.NewString()+"?purge=maybe", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "purge")
}

func (suite *ProjectHandlerTestSuite) TestSetProjectTags_UsesProjectKind() {
	id := uuid.New()
	suite.mockTags.EXPECT().SetEntityTags(gomock.Any(), models.EntityTypeProject, id, gomock.Any()).
		Return(&service.TagSetResponse{EntityType: models.EntityTypeProject, EntityID: id}, nil)

	w := suite.http.MakeRequest(http.MethodPut, "/projects/"+id.String()+"/tags", service.SetTagsRequest{})

	var got service.TagSetResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal(models.EntityTypeProject, got.EntityType)
}

func (suite *ProjectHandlerTestSuite) TestLinkProjectTag_InvalidID() {
	w := suite.http.MakeRequest(http.MethodPost, "/projects/xyz/tag-links", service.LinkTagRequest{})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid project ID")
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
