package service_test

import (
	"context"
	"testing"
	"time"

	"hostel-directory-backend/internal/database/models"
	apperrors "hostel-directory-backend/internal/errors"
	"hostel-directory-backend/internal/service"
	"hostel-directory-backend/internal/tagging"
	"hostel-directory-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type HostelServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	hostelService *service.HostelService
	fx            *testutils.Fixtures
	ctx           context.Context
}

func (suite *HostelServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.hostelService = service.NewHostelService(db, newTagQuery(suite.T(), db), service.NewValidator(), 2, 10)
	suite.ctx = context.Background()
}

func (suite *HostelServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *HostelServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.fx = testutils.NewFixtures(suite.T(), suite.baseTestSuite.DB)
	suite.fx.SentinelCategory("Domain", "Other", "Web", "Mobile", "Other")
	suite.fx.Category("Room", "Dorm", "Private")
}

func (suite *HostelServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *HostelServiceTestSuite) create(name string, tags ...string) *service.HostelResponse {
	resp, err := suite.hostelService.Create(suite.ctx, &service.CreateHostelRequest{
		Name:       name,
		Location:   "Block " + name,
		Categories: pairs(tags...),
	})
	suite.Require().NoError(err)
	return resp
}

func (suite *HostelServiceTestSuite) names(hostels []service.HostelResponse) []string {
	out := make([]string, len(hostels))
	for i, h := range hostels {
		out[i] = h.Name
	}
	return out
}

func (suite *HostelServiceTestSuite) TestCreate() {
	resp, err := suite.hostelService.Create(suite.ctx, &service.CreateHostelRequest{
		Name:         "  Sunrise ",
		Location:     "North campus",
		Email:        "desk@sunrise.example.com",
		Categories:   pairs("Domain", "Other", "Room", "Suite"),
		CustomValues: map[string]string{"Domain": "Bioinformatics"},
	})
	suite.Require().NoError(err)

	suite.Equal("Sunrise", resp.Name)
	requirePairs(suite.T(), pairs("Domain", "Other"), resp.Categories)
	suite.Equal(map[string]string{"Domain": "Bioinformatics"}, resp.CustomValues)
	suite.Equal([]tagging.Status{tagging.StatusLinkedSentinel, tagging.StatusOptionNotFound}, statuses(resp.TagResults))
	suite.Empty(resp.Images)
	suite.Nil(resp.AverageRating)
	suite.Equal(int64(0), resp.TotalRatings)
	suite.Empty(resp.RecentComments)
}

func (suite *HostelServiceTestSuite) TestCreate_Validation() {
	cases := []struct {
		name  string
		req   service.CreateHostelRequest
		field string
	}{
		{"missing name", service.CreateHostelRequest{Name: " ", Location: "x"}, "name"},
		{"missing location", service.CreateHostelRequest{Name: "x"}, "location"},
		{"bad email", service.CreateHostelRequest{Name: "x", Location: "x", Email: "not-an-email"}, "email"},
		{"bad website", service.CreateHostelRequest{Name: "x", Location: "x", Website: "nope"}, "website"},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			req := tc.req
			_, err := suite.hostelService.Create(suite.ctx, &req)
			suite.Require().Error(err)
			var verr *apperrors.ValidationError
			suite.Require().ErrorAs(err, &verr)
			suite.Equal(tc.field, verr.Field)
		})
	}
	suite.Equal(int64(0), suite.fx.CountTagLinks(""))
}

func (suite *HostelServiceTestSuite) TestList_FilterConjunction() {
	suite.create("E1", "Domain", "Web", "Room", "Dorm")
	suite.create("E2", "Domain", "Web", "Room", "Private")

	cases := []struct {
		name    string
		filters tagging.Filters
		want    []string
	}{
		{"both categories", tagging.Filters{"Domain": {"Web"}, "Room": {"Dorm"}}, []string{"E1"}},
		{"one category", tagging.Filters{"Domain": {"Web"}}, []string{"E1", "E2"}},
		{"any of two options", tagging.Filters{"Room": {"Dorm", "Private"}}, []string{"E1", "E2"}},
		{"no match", tagging.Filters{"Domain": {"Mobile"}}, []string{}},
		{"unknown category", tagging.Filters{"Colour": {"Blue"}}, []string{}},
		{"no filters", nil, []string{"E1", "E2"}},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			hostels, err := suite.hostelService.List(suite.ctx, tc.filters)
			suite.Require().NoError(err)
			suite.ElementsMatch(tc.want, suite.names(hostels))
		})
	}
}

func (suite *HostelServiceTestSuite) TestList_NewestFirstAndActiveOnly() {
	older := suite.create("Older")
	suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.Hostel{}).
		Where("id = ?", older.ID).Update("created_at", time.Now().Add(-time.Hour)).Error)
	suite.create("Newer")
	gone := suite.create("Gone")
	suite.Require().NoError(suite.hostelService.Delete(suite.ctx, gone.ID))

	hostels, err := suite.hostelService.List(suite.ctx, nil)
	suite.Require().NoError(err)
	suite.Equal([]string{"Newer", "Older"}, suite.names(hostels))
}

func (suite *HostelServiceTestSuite) TestGetByID_Aggregates() {
	hostel := suite.create("Sunrise", "Room", "Dorm")
	db := suite.baseTestSuite.DB

	alice := suite.fx.User("alice")
	bob := suite.fx.User("bob")
	suite.Require().NoError(db.Create(&models.Rating{HostelID: hostel.ID, UserID: alice.ID, OverallRating: 4}).Error)
	suite.Require().NoError(db.Create(&models.Rating{HostelID: hostel.ID, UserID: bob.ID, OverallRating: 5}).Error)
	suite.Require().NoError(db.Create(&models.HostelImage{HostelID: hostel.ID, ImageURL: "https://img.example.com/1.jpg", ImageType: models.ImageTypeRoom, IsPrimary: true}).Error)

	base := time.Now().Add(-time.Hour)
	for i, text := range []string{"first", "second", "third"} {
		c := models.Comment{HostelID: hostel.ID, CommentText: text}
		c.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		suite.Require().NoError(db.Create(&c).Error)
	}

	detail, err := suite.hostelService.GetByID(suite.ctx, hostel.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(detail.AverageRating)
	suite.InDelta(4.5, *detail.AverageRating, 0.001)
	suite.Equal(int64(2), detail.TotalRatings)
	suite.Require().Len(detail.Images, 1)
	suite.True(detail.Images[0].IsPrimary)
	suite.Len(detail.RecentComments, 3)
	suite.Equal("third", detail.RecentComments[0].CommentText)
	suite.Empty(detail.TagResults)

	listed, err := suite.hostelService.List(suite.ctx, nil)
	suite.Require().NoError(err)
	suite.Require().Len(listed, 1)
	suite.Len(listed[0].RecentComments, 2, "list embeds fewer comments than detail")
	requirePairs(suite.T(), pairs("Room", "Dorm"), listed[0].Categories)
}

func (suite *HostelServiceTestSuite) TestUpdate() {
	hostel := suite.create("Sunrise", "Domain", "Web")

	updated, err := suite.hostelService.Update(suite.ctx, hostel.ID, &service.UpdateHostelRequest{
		Name:       "Sunset",
		Location:   "South campus",
		PriceRange: "$$",
	})
	suite.Require().NoError(err)
	suite.Equal("Sunset", updated.Name)
	suite.Equal("$$", updated.PriceRange)
	requirePairs(suite.T(), pairs("Domain", "Web"), updated.Categories)
	suite.Nil(updated.TagResults, "tags untouched when categories omitted")

	replaced := pairs("Room", "Private")
	updated, err = suite.hostelService.Update(suite.ctx, hostel.ID, &service.UpdateHostelRequest{
		Name:       "Sunset",
		Location:   "South campus",
		Categories: &replaced,
	})
	suite.Require().NoError(err)
	requirePairs(suite.T(), pairs("Room", "Private"), updated.Categories)
	suite.Empty(updated.PriceRange, "scalars are replaced as a whole")

	none := []tagging.Pair{}
	updated, err = suite.hostelService.Update(suite.ctx, hostel.ID, &service.UpdateHostelRequest{
		Name:       "Sunset",
		Location:   "South campus",
		Categories: &none,
	})
	suite.Require().NoError(err)
	suite.Empty(updated.Categories)
}

func (suite *HostelServiceTestSuite) TestUpdate_NotFound() {
	_, err := suite.hostelService.Update(suite.ctx, uuid.New(), &service.UpdateHostelRequest{Name: "x", Location: "y"})
	suite.ErrorIs(err, apperrors.ErrHostelNotFound)

	hostel := suite.create("Gone")
	suite.Require().NoError(suite.hostelService.Delete(suite.ctx, hostel.ID))
	_, err = suite.hostelService.Update(suite.ctx, hostel.ID, &service.UpdateHostelRequest{Name: "x", Location: "y"})
	suite.ErrorIs(err, apperrors.ErrHostelNotFound)
}

func (suite *HostelServiceTestSuite) TestDelete_KeepsTags() {
	hostel := suite.create("Sunrise", "Domain", "Web")

	suite.Require().NoError(suite.hostelService.Delete(suite.ctx, hostel.ID))
	suite.ErrorIs(suite.hostelService.Delete(suite.ctx, hostel.ID), apperrors.ErrHostelNotFound)

	_, err := suite.hostelService.GetByID(suite.ctx, hostel.ID)
	suite.ErrorIs(err, apperrors.ErrHostelNotFound)
	suite.Equal(int64(1), suite.fx.CountTagLinks("entity_id = ?", hostel.ID))

	hostels, err := suite.hostelService.List(suite.ctx, tagging.Filters{"Domain": {"Web"}})
	suite.Require().NoError(err)
	suite.Empty(hostels)
}

func TestHostelServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HostelServiceTestSuite))
}
