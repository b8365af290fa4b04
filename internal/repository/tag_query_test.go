package repository

import (
	"context"
	"sort"
	"testing"

	"hostel-directory-backend/internal/database"
	"hostel-directory-backend/internal/database/models"
	"hostel-directory-backend/internal/tagging"
	"hostel-directory-backend/internal/testutils"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TagQueryRepositoryTestSuite tests the sqlx read side of tagging
type TagQueryRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TagQueryRepository
	fx            *testutils.Fixtures
	ctx           context.Context

	department *models.Category
	year       *models.Category
	a, b, c    *models.Hostel
}

func (suite *TagQueryRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	x, err := database.NewSQLX(suite.baseTestSuite.DB)
	suite.Require().NoError(err)
	suite.repo = NewTagQueryRepository(x)
	suite.ctx = context.Background()
}

func (suite *TagQueryRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest arranges A={Department:CSE, Year:2024}, B={Department:IT, Year:2024}, C={Department:CSE}
func (suite *TagQueryRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.fx = testutils.NewFixtures(suite.T(), suite.baseTestSuite.DB)

	suite.department = suite.fx.Category("Department", "CSE", "IT", "ECE")
	suite.year = suite.fx.Category("Year of Submission", "2024", "2025")
	suite.a = suite.fx.Hostel("A")
	suite.b = suite.fx.Hostel("B")
	suite.c = suite.fx.Hostel("C")

	suite.fx.Tag(models.EntityTypeHostel, suite.a.ID, suite.department, "CSE")
	suite.fx.Tag(models.EntityTypeHostel, suite.a.ID, suite.year, "2024")
	suite.fx.Tag(models.EntityTypeHostel, suite.b.ID, suite.department, "IT")
	suite.fx.Tag(models.EntityTypeHostel, suite.b.ID, suite.year, "2024")
	suite.fx.Tag(models.EntityTypeHostel, suite.c.ID, suite.department, "CSE")
}

func (suite *TagQueryRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TagQueryRepositoryTestSuite) filter(f tagging.Filters) []uuid.UUID {
	ids, err := suite.repo.FilterEntityIDs(suite.ctx, models.EntityTypeHostel, f)
	suite.Require().NoError(err)
	sortIDs(ids)
	return ids
}

func (suite *TagQueryRepositoryTestSuite) TestAndAcrossOrWithin() {
	got := suite.filter(tagging.Filters{"Department": {"CSE", "IT"}, "Year of Submission": {"2024"}})
	suite.Equal(sorted(suite.a.ID, suite.b.ID), got, "C lacks a Year tag")
}

func (suite *TagQueryRepositoryTestSuite) TestSingleCategory() {
	suite.Equal(sorted(suite.a.ID, suite.c.ID), suite.filter(tagging.Filters{"Department": {"CSE"}}))
	suite.Equal(sorted(suite.a.ID, suite.b.ID), suite.filter(tagging.Filters{"Year of Submission": {"2024"}}))
}

func (suite *TagQueryRepositoryTestSuite) TestNoMatches() {
	suite.Empty(suite.filter(tagging.Filters{"Department": {"ECE"}}))
	suite.Empty(suite.filter(tagging.Filters{"Unknown": {"x"}}))
	suite.Empty(suite.filter(tagging.Filters{"Department": {"CSE"}, "Unknown": {"x"}}))
}

func (suite *TagQueryRepositoryTestSuite) TestOptionNameFromAnotherCategoryDoesNotMatch() {
	suite.fx.Category("Domain", "CSE")
	suite.Equal(sorted(suite.a.ID, suite.c.ID), suite.filter(tagging.Filters{"Department": {"CSE"}}))
	suite.Empty(suite.filter(tagging.Filters{"Domain": {"CSE"}}))
}

func (suite *TagQueryRepositoryTestSuite) TestEntityTypesAreSeparate() {
	project := suite.fx.Project("P")
	suite.fx.Tag(models.EntityTypeProject, project.ID, suite.department, "ECE")

	suite.Empty(suite.filter(tagging.Filters{"Department": {"ECE"}}))

	ids, err := suite.repo.FilterEntityIDs(suite.ctx, models.EntityTypeProject, tagging.Filters{"Department": {"ECE"}})
	suite.Require().NoError(err)
	suite.Equal([]uuid.UUID{project.ID}, ids)
}

func (suite *TagQueryRepositoryTestSuite) TestEmptyFiltersAreRejected() {
	_, err := suite.repo.FilterEntityIDs(suite.ctx, models.EntityTypeHostel, tagging.Filters{"Department": {}})
	suite.Error(err)
}

func (suite *TagQueryRepositoryTestSuite) TestAgreesWithInMemoryEvaluation() {
	tags, err := suite.repo.EntityTags(suite.ctx, models.EntityTypeHostel, []uuid.UUID{suite.a.ID, suite.b.ID, suite.c.ID})
	suite.Require().NoError(err)

	cases := []tagging.Filters{
		{"Department": {"CSE"}},
		{"Department": {"IT", "ECE"}},
		{"Year of Submission": {"2024", "2025"}},
		{"Department": {"CSE"}, "Year of Submission": {"2024"}},
		{"Department": {"CSE", "IT", "ECE"}, "Year of Submission": {"2025"}},
	}
	for _, f := range cases {
		var want []uuid.UUID
		for _, id := range []uuid.UUID{suite.a.ID, suite.b.ID, suite.c.ID} {
			pairs := make([]tagging.Pair, 0, len(tags[id]))
			for _, t := range tags[id] {
				pairs = append(pairs, t.Pair())
			}
			if f.Matches(pairs) {
				want = append(want, id)
			}
		}
		sortIDs(want)
		got := suite.filter(f)
		if len(want) == 0 {
			suite.Empty(got, "filters %v", f)
			continue
		}
		suite.Equal(want, got, "filters %v", f)
	}
}

func (suite *TagQueryRepositoryTestSuite) TestEntityTags() {
	tags, err := suite.repo.EntityTags(suite.ctx, models.EntityTypeHostel, []uuid.UUID{suite.a.ID, suite.c.ID})
	suite.Require().NoError(err)

	got := map[uuid.UUID][]tagging.Pair{}
	for id, resolved := range tags {
		for _, t := range resolved {
			got[id] = append(got[id], t.Pair())
		}
	}
	want := map[uuid.UUID][]tagging.Pair{
		suite.a.ID: {{CategoryName: "Department", OptionName: "CSE"}, {CategoryName: "Year of Submission", OptionName: "2024"}},
		suite.c.ID: {{CategoryName: "Department", OptionName: "CSE"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		suite.T().Errorf("EntityTags() mismatch (-want +got):\n%s", diff)
	}
	suite.Equal(suite.department.ID, tags[suite.c.ID][0].CategoryID)

	empty, err := suite.repo.EntityTags(suite.ctx, models.EntityTypeHostel, nil)
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func sorted(ids ...uuid.UUID) []uuid.UUID {
	sortIDs(ids)
	return ids
}

func sortIDs(ids []uuid.UUID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
}

func TestTagQueryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TagQueryRepositoryTestSuite))
}
