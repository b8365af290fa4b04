package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"hostel-directory-backend/internal/api/handlers"
	"hostel-directory-backend/internal/auth"
	"hostel-directory-backend/internal/database/models"
	apperrors "hostel-directory-backend/internal/errors"
	"hostel-directory-backend/internal/mocks"
	"hostel-directory-backend/internal/service"
	"hostel-directory-backend/internal/tagging"
	"hostel-directory-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// HostelHandlerTestSuite defines the test suite for HostelHandler
type HostelHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockHostels *mocks.MockHostelServiceInterface
	mockTags    *mocks.MockTagServiceInterface
	userID      uuid.UUID
	http        *testutils.HTTPTestSuite
}

func (suite *HostelHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockHostels = mocks.NewMockHostelServiceInterface(suite.ctrl)
	suite.mockTags = mocks.NewMockTagServiceInterface(suite.ctrl)
	suite.userID = uuid.New()
	handler := handlers.NewHostelHandler(suite.mockHostels, suite.mockTags)

	suite.http = testutils.SetupHTTPTest()
	r := suite.http.Router
	r.GET("/hostels", handler.ListHostels)
	r.GET("/hostels/:id", handler.GetHostel)
	r.PUT("/hostels/:id", handler.UpdateHostel)
	r.DELETE("/hostels/:id", handler.DeleteHostel)
	r.PUT("/hostels/:id/tags", handler.SetHostelTags)
	r.POST("/hostels/:id/tag-links", handler.LinkHostelTag)

	// simulates RequireAuth having run
	authed := r.Group("/authed", func(c *gin.Context) {
		c.Set(auth.ContextKeyUserID, suite.userID)
		c.Next()
	})
	authed.POST("/hostels", handler.CreateHostel)
	r.POST("/hostels", handler.CreateHostel)
}

func (suite *HostelHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *HostelHandlerTestSuite) TestListHostels_WithFilters() {
	expected := tagging.Filters{"Domain": {"Mobile", "Web"}, "Room": {"Dorm"}}
	hostels := []service.HostelResponse{{ID: uuid.New(), Name: "Sunrise"}}
	suite.mockHostels.EXPECT().List(gomock.Any(), expected).Return(hostels, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/hostels?filter=Domain:Web&filter=Room:Dorm&filter=Domain:Mobile", nil)

	var got []service.HostelResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Len(got, 1)
	suite.Equal("Sunrise", got[0].Name)
}

func (suite *HostelHandlerTestSuite) TestListHostels_NoFilters() {
	suite.mockHostels.EXPECT().List(gomock.Any(), tagging.Filters{}).Return([]service.HostelResponse{}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/hostels", nil)

	var got []service.HostelResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Empty(got)
}

func (suite *HostelHandlerTestSuite) TestListHostels_MalformedFilter() {
	w := suite.http.MakeRequest(http.MethodGet, "/hostels?filter=Domain", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid filter")
}

func (suite *HostelHandlerTestSuite) TestGetHostel() {
	id := uuid.New()
	avg := 4.5
	suite.mockHostels.EXPECT().GetByID(gomock.Any(), id).
		Return(&service.HostelResponse{ID: id, Name: "Sunrise", AverageRating: &avg, TotalRatings: 2}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/hostels/"+id.String(), nil)

	var got service.HostelResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Require().NotNil(got.AverageRating)
	suite.InDelta(4.5, *got.AverageRating, 0.0001)
	suite.Equal(int64(2), got.TotalRatings)
}

func (suite *HostelHandlerTestSuite) TestGetHostel_Errors() {
	testCases := []struct {
		name           string
		path           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{"invalid id", "/hostels/abc", nil, http.StatusBadRequest, "Invalid hostel ID"},
		{"not found", "/hostels/" + uuid.NewString(), apperrors.ErrHostelNotFound, http.StatusNotFound, "hostel not found"},
		{"database down", "/hostels/" + uuid.NewString(), errors.New("dial tcp: refused"), http.StatusInternalServerError, "Failed to get hostel"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			if tc.err != nil {
				suite.mockHostels.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, tc.err)
			}

			w := suite.http.MakeRequest(http.MethodGet, tc.path, nil)

			testutils.AssertErrorResponse(suite.T(), w, tc.expectedStatus, tc.expectedError)
		})
	}
}

func (suite *HostelHandlerTestSuite) TestCreateHostel_StampsCaller() {
	suite.mockHostels.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *service.CreateHostelRequest) (*service.HostelResponse, error) {
			suite.Require().NotNil(req.CreatedBy)
			suite.Equal(suite.userID, *req.CreatedBy)
			suite.Equal([]tagging.Pair{{CategoryName: "Domain", OptionName: "Other"}}, req.Categories)
			suite.Equal(map[string]string{"Domain": "Robotics"}, req.CustomValues)
			return &service.HostelResponse{ID: uuid.New(), Name: req.Name, CreatedBy: req.CreatedBy}, nil
		})

	w := suite.http.MakeRequest(http.MethodPost, "/authed/hostels", service.CreateHostelRequest{
		Name:         "Sunrise",
		Location:     "Lisbon",
		Categories:   []tagging.Pair{{CategoryName: "Domain", OptionName: "Other"}},
		CustomValues: map[string]string{"Domain": "Robotics"},
	})

	var got service.HostelResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	suite.Equal("Sunrise", got.Name)
}

func (suite *HostelHandlerTestSuite) TestCreateHostel_Anonymous() {
	suite.mockHostels.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *service.CreateHostelRequest) (*service.HostelResponse, error) {
			suite.Nil(req.CreatedBy)
			return &service.HostelResponse{ID: uuid.New(), Name: req.Name}, nil
		})

	w := suite.http.MakeRequest(http.MethodPost, "/hostels", service.CreateHostelRequest{Name: "Sunrise", Location: "Lisbon"})

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HostelHandlerTestSuite) TestCreateHostel_Validation() {
	suite.mockHostels.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, &apperrors.ValidationError{Field: "location", Message: "is required"})

	w := suite.http.MakeRequest(http.MethodPost, "/hostels", service.CreateHostelRequest{Name: "Sunrise"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "location")
}

func (suite *HostelHandlerTestSuite) TestUpdateHostel_KeepsTagsWhenCategoriesAbsent() {
	id := uuid.New()
	suite.mockHostels.EXPECT().Update(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req *service.UpdateHostelRequest) (*service.HostelResponse, error) {
			suite.Nil(req.Categories)
			return &service.HostelResponse{ID: id, Name: req.Name}, nil
		})

	w := suite.http.MakeRequest(http.MethodPut, "/hostels/"+id.String(), `{"name":"Sunset","location":"Porto"}`)

	var got service.HostelResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal("Sunset", got.Name)
}

func (suite *HostelHandlerTestSuite) TestUpdateHostel_EmptyCategoriesClear() {
	id := uuid.New()
	suite.mockHostels.EXPECT().Update(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req *service.UpdateHostelRequest) (*service.HostelResponse, error) {
			suite.Require().NotNil(req.Categories)
			suite.Empty(*req.Categories)
			return &service.HostelResponse{ID: id}, nil
		})

	w := suite.http.MakeRequest(http.MethodPut, "/hostels/"+id.String(), `{"name":"Sunset","location":"Porto","categories":[]}`)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HostelHandlerTestSuite) TestDeleteHostel() {
	id := uuid.New()
	suite.mockHostels.EXPECT().Delete(gomock.Any(), id).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/hostels/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HostelHandlerTestSuite) TestSetHostelTags() {
	id := uuid.New()
	req := service.SetTagsRequest{
		Categories: []tagging.Pair{
			{CategoryName: "Domain", OptionName: "Web"},
			{CategoryName: "Nope", OptionName: "X"},
		},
	}
	resp := &service.TagSetResponse{
		EntityType: models.EntityTypeHostel,
		EntityID:   id,
		Categories: []tagging.Pair{{CategoryName: "Domain", OptionName: "Web"}},
		TagResults: []tagging.Result{
			{CategoryName: "Domain", OptionName: "Web", Status: tagging.StatusLinked},
			{CategoryName: "Nope", OptionName: "X", Status: tagging.StatusCategoryNotFound},
		},
		Applied: 1,
		Skipped: 1,
	}
	suite.mockTags.EXPECT().SetEntityTags(gomock.Any(), models.EntityTypeHostel, id, &req).Return(resp, nil)

	w := suite.http.MakeRequest(http.MethodPut, "/hostels/"+id.String()+"/tags", req)

	var got service.TagSetResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal(1, got.Applied)
	suite.Equal(1, got.Skipped)
	suite.Equal(tagging.StatusCategoryNotFound, got.TagResults[1].Status)
}

func (suite *HostelHandlerTestSuite) TestSetHostelTags_InactiveHostel() {
	id := uuid.New()
	suite.mockTags.EXPECT().SetEntityTags(gomock.Any(), models.EntityTypeHostel, id, gomock.Any()).
		Return(nil, apperrors.ErrHostelNotFound)

	w := suite.http.MakeRequest(http.MethodPut, "/hostels/"+id.String()+"/tags", service.SetTagsRequest{})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "hostel not found")
}

func (suite *HostelHandlerTestSuite) TestLinkHostelTag_Mismatch() {
	id := uuid.New()
	req := service.LinkTagRequest{CategoryID: uuid.New(), OptionID: uuid.New()}
	suite.mockTags.EXPECT().LinkTag(gomock.Any(), models.EntityTypeHostel, id, &req).
		Return(nil, apperrors.ErrOptionCategoryMismatch)

	w := suite.http.MakeRequest(http.MethodPost, "/hostels/"+id.String()+"/tag-links", req)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "option does not belong to the category")
}

func TestHostelHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HostelHandlerTestSuite))
}
