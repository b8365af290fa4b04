package handlers_test

import (
	"net/http"
	"testing"

	"hostel-directory-backend/internal/api/handlers"
	apperrors "hostel-directory-backend/internal/errors"
	"hostel-directory-backend/internal/mocks"
	"hostel-directory-backend/internal/service"
	"hostel-directory-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RatingHandlerTestSuite defines the test suite for RatingHandler
type RatingHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRatingServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *RatingHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRatingServiceInterface(suite.ctrl)
	handler := handlers.NewRatingHandler(suite.mockService)

	suite.http = testutils.SetupHTTPTest()
	r := suite.http.Router
	r.GET("/hostels/:id/ratings", handler.ListHostelRatings)
	r.POST("/ratings", handler.CreateRating)
	r.PUT("/ratings/:id", handler.UpdateRating)
	r.DELETE("/ratings/:id", handler.DeleteRating)
}

func (suite *RatingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RatingHandlerTestSuite) TestCreateRating() {
	req := service.CreateRatingRequest{HostelID: uuid.New(), UserID: uuid.New(), OverallRating: 4}
	suite.mockService.EXPECT().Create(gomock.Any(), &req).
		Return(&service.RatingResponse{ID: uuid.New(), HostelID: req.HostelID, UserID: req.UserID, OverallRating: 4}, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/ratings", req)

	var got service.RatingResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	suite.Equal(4.0, got.OverallRating)
}

func (suite *RatingHandlerTestSuite) TestCreateRating_Errors() {
	testCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{"out of range", &apperrors.ValidationError{Field: "overall_rating", Message: "must be between 1 and 5"}, http.StatusBadRequest, "overall_rating"},
		{"unknown hostel", apperrors.ErrHostelNotFound, http.StatusNotFound, "hostel not found"},
		{"second rating", apperrors.ErrRatingExists, http.StatusConflict, "rating already exists"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			w := suite.http.MakeRequest(http.MethodPost, "/ratings", service.CreateRatingRequest{OverallRating: 9})

			testutils.AssertErrorResponse(suite.T(), w, tc.expectedStatus, tc.expectedError)
		})
	}
}

func (suite *RatingHandlerTestSuite) TestListHostelRatings() {
	hostelID := uuid.New()
	suite.mockService.EXPECT().ListByHostel(gomock.Any(), hostelID).
		Return([]service.RatingResponse{{ID: uuid.New(), OverallRating: 5}, {ID: uuid.New(), OverallRating: 3}}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/hostels/"+hostelID.String()+"/ratings", nil)

	var got []service.RatingResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Len(got, 2)
}

func (suite *RatingHandlerTestSuite) TestUpdateRating() {
	id := uuid.New()
	req := service.UpdateRatingRequest{OverallRating: 2}
	suite.mockService.EXPECT().Update(gomock.Any(), id, &req).
		Return(&service.RatingResponse{ID: id, OverallRating: 2}, nil)

	w := suite.http.MakeRequest(http.MethodPut, "/ratings/"+id.String(), req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *RatingHandlerTestSuite) TestDeleteRating_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), id).Return(apperrors.ErrRatingNotFound)

	w := suite.http.MakeRequest(http.MethodDelete, "/ratings/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "rating not found")
}

func TestRatingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RatingHandlerTestSuite))
}
