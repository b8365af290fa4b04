package service_test

import (
	"context"
	"sync"
	"testing"

	"hostel-directory-backend/internal/database/models"
	apperrors "hostel-directory-backend/internal/errors"
	"hostel-directory-backend/internal/service"
	"hostel-directory-backend/internal/tagging"
	"hostel-directory-backend/internal/testutils"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TagServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	tagService    *service.TagService
	fx            *testutils.Fixtures
	ctx           context.Context

	domain *models.Category
	room   *models.Category
	hostel *models.Hostel
}

func (suite *TagServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.tagService = service.NewTagService(db, newTagQuery(suite.T(), db), service.NewValidator())
	suite.ctx = context.Background()
}

func (suite *TagServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *TagServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.fx = testutils.NewFixtures(suite.T(), suite.baseTestSuite.DB)
	suite.domain = suite.fx.SentinelCategory("Domain", "Other", "Web", "Mobile", "Other")
	suite.room = suite.fx.Category("Room", "Dorm", "Private")
	suite.hostel = suite.fx.Hostel("Sunrise")
}

func (suite *TagServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TagServiceTestSuite) set(mappings []tagging.Pair, custom map[string]string) *service.TagSetResponse {
	resp, err := suite.tagService.SetEntityTags(suite.ctx, models.EntityTypeHostel, suite.hostel.ID, &service.SetTagsRequest{
		Categories:   mappings,
		CustomValues: custom,
	})
	suite.Require().NoError(err)
	return resp
}

func (suite *TagServiceTestSuite) TestSetEntityTags_FullReplace() {
	suite.fx.Tag(models.EntityTypeHostel, suite.hostel.ID, suite.room, "Private")

	resp := suite.set(pairs("Domain", "Web"), nil)

	requirePairs(suite.T(), pairs("Domain", "Web"), resp.Categories)
	suite.Equal(1, resp.Applied)
	suite.Equal(0, resp.Skipped)
	suite.Equal(int64(1), suite.fx.CountTagLinks("entity_id = ?", suite.hostel.ID))
}

func (suite *TagServiceTestSuite) TestSetEntityTags_Idempotent() {
	mappings := pairs("Domain", "Web", "Room", "Dorm")

	first := suite.set(mappings, nil)
	second := suite.set(mappings, nil)

	if diff := cmp.Diff(first.Categories, second.Categories); diff != "" {
		suite.T().Fatalf("second application changed the tag set (-first +second):\n%s", diff)
	}
	suite.Equal(int64(2), suite.fx.CountTagLinks("entity_id = ?", suite.hostel.ID))
}

func (suite *TagServiceTestSuite) TestSetEntityTags_UnresolvedMappingsDoNotAbort() {
	resp := suite.set(pairs(
		"Nope", "Web",
		"Domain", "Desktop",
		"Room", "Dorm",
		"Room", "Private",
		"Domain", "",
		"Domain", "Mobile",
	), nil)

	suite.Equal([]tagging.Status{
		tagging.StatusCategoryNotFound,
		tagging.StatusOptionNotFound,
		tagging.StatusLinked,
		tagging.StatusDuplicateCategory,
		tagging.StatusEmptyOption,
		tagging.StatusLinked,
	}, statuses(resp.TagResults))
	suite.Equal(2, resp.Applied)
	suite.Equal(4, resp.Skipped)
	requirePairs(suite.T(), pairs("Room", "Dorm", "Domain", "Mobile"), resp.Categories)
}

func (suite *TagServiceTestSuite) TestSetEntityTags_FailedMappingLeavesCategoryOpen() {
	resp := suite.set(pairs("Domain", "Desktop", "Domain", "Mobile", "Domain", "Web"), nil)

	suite.Equal([]tagging.Status{
		tagging.StatusOptionNotFound,
		tagging.StatusLinked,
		tagging.StatusDuplicateCategory,
	}, statuses(resp.TagResults))
	requirePairs(suite.T(), pairs("Domain", "Mobile"), resp.Categories)
	suite.Equal(int64(1), suite.fx.CountTagLinks("entity_id = ?", suite.hostel.ID))
}

func (suite *TagServiceTestSuite) TestSetEntityTags_CustomValueWithoutMappingIsReported() {
	resp := suite.set(pairs("Room", "Dorm"), map[string]string{"Domain": "Robotics", "Year": "2024", "Room": " "})

	suite.Equal([]tagging.Status{
		tagging.StatusLinked,
		tagging.StatusCustomWithoutMapping,
		tagging.StatusCustomWithoutMapping,
	}, statuses(resp.TagResults))
	suite.Equal("Domain", resp.TagResults[1].CategoryName)
	suite.Equal("Year", resp.TagResults[2].CategoryName)
	suite.Equal(1, resp.Applied)
	suite.Equal(2, resp.Skipped)
	suite.Empty(resp.CustomValues)
	requirePairs(suite.T(), pairs("Room", "Dorm"), resp.Categories)
}

func (suite *TagServiceTestSuite) TestSetEntityTags_EmptyOption() {
	resp := suite.set(pairs("Room", " "), nil)

	suite.Equal([]tagging.Status{tagging.StatusEmptyOption}, statuses(resp.TagResults))
	suite.Empty(resp.Categories)
}

func (suite *TagServiceTestSuite) TestSetEntityTags_SentinelStoresCustomValue() {
	resp := suite.set(pairs("Domain", "Other"), map[string]string{"Domain": " Quantum computing "})

	suite.Equal([]tagging.Status{tagging.StatusLinkedSentinel}, statuses(resp.TagResults))
	requirePairs(suite.T(), pairs("Domain", "Other"), resp.Categories)
	suite.Equal(map[string]string{"Domain": "Quantum computing"}, resp.CustomValues)

	// the free text never becomes an option
	options, err := service.NewCategoryService(suite.baseTestSuite.DB, service.NewValidator()).ListOptions(suite.ctx, suite.domain.ID)
	suite.Require().NoError(err)
	suite.Len(options, 3)

	var stored models.Hostel
	suite.Require().NoError(suite.baseTestSuite.DB.First(&stored, "id = ?", suite.hostel.ID).Error)
	suite.Equal(models.CustomValues{suite.domain.ID.String(): "Quantum computing"}, stored.CustomValues)
}

func (suite *TagServiceTestSuite) TestSetEntityTags_CustomValueWithoutOptionUsesSentinel() {
	resp := suite.set(pairs("Domain", ""), map[string]string{"Domain": "Robotics"})

	suite.Equal([]tagging.Status{tagging.StatusLinkedSentinel}, statuses(resp.TagResults))
	suite.Equal("Other", resp.TagResults[0].OptionName)
	suite.Equal(map[string]string{"Domain": "Robotics"}, resp.CustomValues)
}

func (suite *TagServiceTestSuite) TestSetEntityTags_CustomValueNotAccepted() {
	resp := suite.set(pairs("Room", "", "Domain", "Web"), map[string]string{"Room": "Loft", "Domain": "Robotics"})

	suite.Equal([]tagging.Status{tagging.StatusCustomNotAllowed, tagging.StatusLinked}, statuses(resp.TagResults))
	suite.NotEmpty(resp.TagResults[1].Message, "ignored custom value is reported")
	suite.Empty(resp.CustomValues)
	requirePairs(suite.T(), pairs("Domain", "Web"), resp.Categories)
}

func (suite *TagServiceTestSuite) TestSetEntityTags_ReplacingDropsOldCustomValue() {
	suite.set(pairs("Domain", "Other"), map[string]string{"Domain": "Robotics"})
	resp := suite.set(pairs("Domain", "Web"), nil)

	suite.Empty(resp.CustomValues)
}

func (suite *TagServiceTestSuite) TestSetEntityTags_EmptyListClears() {
	suite.set(pairs("Domain", "Web", "Room", "Dorm"), nil)
	resp := suite.set([]tagging.Pair{}, nil)

	suite.Empty(resp.Categories)
	suite.Empty(resp.TagResults)
	suite.Equal(int64(0), suite.fx.CountTagLinks("entity_id = ?", suite.hostel.ID))
}

func (suite *TagServiceTestSuite) TestSetEntityTags_EntityMustBeActive() {
	_, err := suite.tagService.SetEntityTags(suite.ctx, models.EntityTypeHostel, uuid.New(), &service.SetTagsRequest{})
	suite.ErrorIs(err, apperrors.ErrHostelNotFound)

	_, err = suite.tagService.SetEntityTags(suite.ctx, models.EntityTypeProject, suite.hostel.ID, &service.SetTagsRequest{})
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)

	_, err = suite.tagService.SetEntityTags(suite.ctx, models.EntityType("dorm"), suite.hostel.ID, &service.SetTagsRequest{})
	suite.True(apperrors.IsValidation(err))
}

func (suite *TagServiceTestSuite) TestSetEntityTags_ProjectsAndHostelsAreSeparate() {
	project := suite.fx.Project("Compiler")
	suite.set(pairs("Domain", "Web"), nil)

	resp, err := suite.tagService.SetEntityTags(suite.ctx, models.EntityTypeProject, project.ID, &service.SetTagsRequest{
		Categories: pairs("Domain", "Mobile"),
	})
	suite.Require().NoError(err)
	requirePairs(suite.T(), pairs("Domain", "Mobile"), resp.Categories)
	suite.Equal(int64(1), suite.fx.CountTagLinks("entity_type = ? AND entity_id = ?", models.EntityTypeHostel, suite.hostel.ID))
}

func (suite *TagServiceTestSuite) TestLinkTag() {
	suite.set(pairs("Domain", "Other"), map[string]string{"Domain": "Robotics"})

	resp, err := suite.tagService.LinkTag(suite.ctx, models.EntityTypeHostel, suite.hostel.ID, &service.LinkTagRequest{
		CategoryID: suite.domain.ID,
		OptionID:   suite.fx.Option(suite.domain, "Mobile").ID,
	})
	suite.Require().NoError(err)
	requirePairs(suite.T(), pairs("Domain", "Mobile"), resp.Categories)
	suite.Empty(resp.CustomValues, "custom value belongs to the sentinel only")
	suite.Equal(1, resp.Applied)
}

func (suite *TagServiceTestSuite) TestLinkTag_SentinelCarriesNoCustomValue() {
	suite.set(pairs("Domain", "Other"), map[string]string{"Domain": "Robotics"})

	resp, err := suite.tagService.LinkTag(suite.ctx, models.EntityTypeHostel, suite.hostel.ID, &service.LinkTagRequest{
		CategoryID: suite.domain.ID,
		OptionID:   suite.fx.Option(suite.domain, "Other").ID,
	})
	suite.Require().NoError(err)
	requirePairs(suite.T(), pairs("Domain", "Other"), resp.Categories)
	suite.Empty(resp.CustomValues)
	suite.Empty(suite.fx.StoredCustomValues(models.EntityTypeHostel, suite.hostel.ID))
}

func (suite *TagServiceTestSuite) TestLinkTag_ReplacedOptionsDoNotRestoreCustomValue() {
	suite.set(pairs("Domain", "Other"), map[string]string{"Domain": "Robotics"})

	categories := service.NewCategoryService(suite.baseTestSuite.DB, service.NewValidator())
	options := []service.OptionInput{{OptionName: "Web"}, {OptionName: "Other"}}
	sentinel := "Other"
	updated, err := categories.UpdateCategory(suite.ctx, suite.domain.ID, &service.UpdateCategoryRequest{
		CategoryName:   "Domain",
		Options:        &options,
		SentinelOption: &sentinel,
	})
	suite.Require().NoError(err)
	suite.Require().Equal("Other", updated.Options[1].OptionName)
	suite.Empty(suite.fx.StoredCustomValues(models.EntityTypeHostel, suite.hostel.ID))

	resp, err := suite.tagService.LinkTag(suite.ctx, models.EntityTypeHostel, suite.hostel.ID, &service.LinkTagRequest{
		CategoryID: suite.domain.ID,
		OptionID:   updated.Options[1].OptionID,
	})
	suite.Require().NoError(err)
	requirePairs(suite.T(), pairs("Domain", "Other"), resp.Categories)
	suite.Empty(resp.CustomValues)
}

func (suite *TagServiceTestSuite) TestLinkTag_OptionFromAnotherCategory() {
	_, err := suite.tagService.LinkTag(suite.ctx, models.EntityTypeHostel, suite.hostel.ID, &service.LinkTagRequest{
		CategoryID: suite.domain.ID,
		OptionID:   suite.fx.Option(suite.room, "Dorm").ID,
	})
	suite.ErrorIs(err, apperrors.ErrOptionCategoryMismatch)
	suite.True(apperrors.IsValidation(err))
	suite.Equal(int64(0), suite.fx.CountTagLinks(""))

	_, err = suite.tagService.LinkTag(suite.ctx, models.EntityTypeHostel, suite.hostel.ID, &service.LinkTagRequest{
		CategoryID: suite.domain.ID,
		OptionID:   uuid.New(),
	})
	suite.ErrorIs(err, apperrors.ErrOptionNotFound)

	_, err = suite.tagService.LinkTag(suite.ctx, models.EntityTypeHostel, suite.hostel.ID, &service.LinkTagRequest{})
	suite.True(apperrors.IsValidation(err))
}

// Concurrent full replacements on one entity: last writer wins and the
// result is always exactly one writer's set, never a mix of both.
func (suite *TagServiceTestSuite) TestSetEntityTags_ConcurrentWritersLastWins() {
	a := pairs("Domain", "Web", "Room", "Dorm")
	b := pairs("Domain", "Mobile")

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for _, mappings := range [][]tagging.Pair{a, b} {
		wg.Add(1)
		go func(m []tagging.Pair) {
			defer wg.Done()
			_, err := suite.tagService.SetEntityTags(suite.ctx, models.EntityTypeHostel, suite.hostel.ID, &service.SetTagsRequest{Categories: m})
			errs <- err
		}(mappings)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		suite.Require().NoError(err)
	}

	hostels := service.NewHostelService(suite.baseTestSuite.DB, newTagQuery(suite.T(), suite.baseTestSuite.DB), service.NewValidator(), 5, 10)
	final, err := hostels.GetByID(suite.ctx, suite.hostel.ID)
	suite.Require().NoError(err)

	got := append([]tagging.Pair{}, final.Categories...)
	tagging.SortPairs(got)
	for _, want := range [][]tagging.Pair{a, b} {
		want = append([]tagging.Pair{}, want...)
		tagging.SortPairs(want)
		if cmp.Equal(want, got) {
			return
		}
	}
	suite.Failf("mixed tag set", "final tags %v match neither writer", got)
}

func TestTagServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TagServiceTestSuite))
}
