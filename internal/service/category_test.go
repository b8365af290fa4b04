package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"hostel-directory-backend/internal/database/models"
	apperrors "hostel-directory-backend/internal/errors"
	"hostel-directory-backend/internal/service"
	"hostel-directory-backend/internal/tagging"
	"hostel-directory-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	baseTestSuite   *testutils.BaseTestSuite
	categoryService *service.CategoryService
	hostelService   *service.HostelService
	fx              *testutils.Fixtures
	ctx             context.Context
}

func (suite *CategoryServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	v := service.NewValidator()
	suite.categoryService = service.NewCategoryService(db, v)
	suite.hostelService = service.NewHostelService(db, newTagQuery(suite.T(), db), v, 5, 10)
	suite.ctx = context.Background()
}

func (suite *CategoryServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.fx = testutils.NewFixtures(suite.T(), suite.baseTestSuite.DB)
}

func (suite *CategoryServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *CategoryServiceTestSuite) optionNames(options []service.OptionResponse) []string {
	names := make([]string, len(options))
	for i, o := range options {
		names[i] = o.OptionName
	}
	return names
}

func (suite *CategoryServiceTestSuite) TestCreateCategory() {
	var req service.CreateCategoryRequest
	body := `{"category_name":" Domain ","options":["Web",{"option_name":"Mobile"}," ","Web","Other"],"sentinel_option":"Other"}`
	suite.Require().NoError(json.Unmarshal([]byte(body), &req))

	resp, err := suite.categoryService.CreateCategory(suite.ctx, &req)
	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, resp.CategoryID)
	suite.Equal("Domain", resp.CategoryName)
	suite.Equal("Other", resp.SentinelOption)
	suite.Equal([]string{"Web", "Mobile", "Other"}, suite.optionNames(resp.Options))
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Validation() {
	_, err := suite.categoryService.CreateCategory(suite.ctx, &service.CreateCategoryRequest{CategoryName: "  "})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.categoryService.CreateCategory(suite.ctx, &service.CreateCategoryRequest{
		CategoryName:   "Domain",
		Options:        []service.OptionInput{{OptionName: "Web"}},
		SentinelOption: "Other",
	})
	suite.ErrorIs(err, apperrors.ErrInvalidSentinelOption)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Duplicate() {
	suite.fx.Category("Domain")

	_, err := suite.categoryService.CreateCategory(suite.ctx, &service.CreateCategoryRequest{CategoryName: "Domain"})
	suite.ErrorIs(err, apperrors.ErrCategoryExists)
}

func (suite *CategoryServiceTestSuite) TestListCategories_ExactOptions() {
	domain := suite.fx.Category("Domain", "Web", "Mobile")
	suite.fx.Category("Room Type", "Dorm", "Private")
	suite.fx.Category("Amenities")

	suite.Require().NoError(suite.categoryService.DeleteOption(suite.ctx, domain.ID, suite.fx.Option(domain, "Web").ID))

	list, err := suite.categoryService.ListCategories(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(list, 3)
	suite.Equal("Amenities", list[0].CategoryName)
	suite.Empty(list[0].Options)
	suite.Equal([]string{"Mobile"}, suite.optionNames(list[1].Options))
	suite.Equal([]string{"Dorm", "Private"}, suite.optionNames(list[2].Options))
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_RenameKeepsOptionsAndTags() {
	domain := suite.fx.Category("Domain", "Web", "Mobile")
	hostel := suite.fx.Hostel("Sunrise")
	suite.fx.Tag(models.EntityTypeHostel, hostel.ID, domain, "Web")

	resp, err := suite.categoryService.UpdateCategory(suite.ctx, domain.ID, &service.UpdateCategoryRequest{CategoryName: "Field"})
	suite.Require().NoError(err)
	suite.Equal("Field", resp.CategoryName)
	suite.Equal([]string{"Web", "Mobile"}, suite.optionNames(resp.Options))

	got, err := suite.hostelService.GetByID(suite.ctx, hostel.ID)
	suite.Require().NoError(err)
	requirePairs(suite.T(), pairs("Field", "Web"), got.Categories)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_EmptyOptionsClearsEverything() {
	domain := suite.fx.Category("Domain", "Web", "Mobile")
	room := suite.fx.Category("Room", "Dorm")
	hostel := suite.fx.Hostel("Sunrise")
	suite.fx.Tag(models.EntityTypeHostel, hostel.ID, domain, "Web")
	suite.fx.Tag(models.EntityTypeHostel, hostel.ID, room, "Dorm")

	empty := []service.OptionInput{}
	_, err := suite.categoryService.UpdateCategory(suite.ctx, domain.ID, &service.UpdateCategoryRequest{
		CategoryName: "Domain",
		Options:      &empty,
	})
	suite.Require().NoError(err)

	options, err := suite.categoryService.ListOptions(suite.ctx, domain.ID)
	suite.Require().NoError(err)
	suite.Empty(options)
	suite.Equal(int64(0), suite.fx.CountTagLinks("category_id = ?", domain.ID))

	got, err := suite.hostelService.GetByID(suite.ctx, hostel.ID)
	suite.Require().NoError(err)
	requirePairs(suite.T(), pairs("Room", "Dorm"), got.Categories)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_ReplaceOptionsIsDestructive() {
	domain := suite.fx.SentinelCategory("Domain", "Other", "Web", "Other")
	hostel := suite.fx.Hostel("Sunrise")
	suite.fx.Tag(models.EntityTypeHostel, hostel.ID, domain, "Web")

	options := []service.OptionInput{{OptionName: "Web"}, {OptionName: "AI"}}
	resp, err := suite.categoryService.UpdateCategory(suite.ctx, domain.ID, &service.UpdateCategoryRequest{
		CategoryName: "Domain",
		Options:      &options,
	})
	suite.Require().NoError(err)
	suite.Equal([]string{"Web", "AI"}, suite.optionNames(resp.Options))
	suite.Empty(resp.SentinelOption, "sentinel no longer names an option")
	suite.NotEqual(suite.fx.Option(domain, "Web").ID, resp.Options[0].OptionID, "options are recreated, not diffed")
	suite.Equal(int64(0), suite.fx.CountTagLinks(""))
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_Sentinel() {
	domain := suite.fx.Category("Domain", "Web", "Other")

	other := "Other"
	resp, err := suite.categoryService.UpdateCategory(suite.ctx, domain.ID, &service.UpdateCategoryRequest{
		CategoryName:   "Domain",
		SentinelOption: &other,
	})
	suite.Require().NoError(err)
	suite.Equal("Other", resp.SentinelOption)

	missing := "Nope"
	_, err = suite.categoryService.UpdateCategory(suite.ctx, domain.ID, &service.UpdateCategoryRequest{
		CategoryName:   "Domain",
		SentinelOption: &missing,
	})
	suite.ErrorIs(err, apperrors.ErrInvalidSentinelOption)

	none := ""
	resp, err = suite.categoryService.UpdateCategory(suite.ctx, domain.ID, &service.UpdateCategoryRequest{
		CategoryName:   "Domain",
		SentinelOption: &none,
	})
	suite.Require().NoError(err)
	suite.Empty(resp.SentinelOption)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_Errors() {
	_, err := suite.categoryService.UpdateCategory(suite.ctx, uuid.New(), &service.UpdateCategoryRequest{CategoryName: "X"})
	suite.ErrorIs(err, apperrors.ErrCategoryNotFound)

	domain := suite.fx.Category("Domain")
	suite.fx.Category("Room")
	_, err = suite.categoryService.UpdateCategory(suite.ctx, domain.ID, &service.UpdateCategoryRequest{CategoryName: "Room"})
	suite.ErrorIs(err, apperrors.ErrCategoryExists)

	_, err = suite.categoryService.UpdateCategory(suite.ctx, domain.ID, &service.UpdateCategoryRequest{})
	suite.True(apperrors.IsValidation(err))
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_Cascades() {
	domain := suite.fx.Category("Domain", "Web", "Mobile")
	room := suite.fx.Category("Room", "Dorm")
	first := suite.fx.Hostel("First")
	second := suite.fx.Hostel("Second")
	suite.fx.Tag(models.EntityTypeHostel, first.ID, domain, "Web")
	suite.fx.Tag(models.EntityTypeHostel, first.ID, room, "Dorm")
	suite.fx.Tag(models.EntityTypeHostel, second.ID, domain, "Mobile")

	suite.Require().NoError(suite.categoryService.DeleteCategory(suite.ctx, domain.ID))

	suite.Equal(int64(0), suite.fx.CountTagLinks("category_id = ?", domain.ID))
	hostels, err := suite.hostelService.List(suite.ctx, nil)
	suite.Require().NoError(err)
	suite.Require().Len(hostels, 2)
	for _, h := range hostels {
		for _, p := range h.Categories {
			suite.NotEqual("Domain", p.CategoryName)
		}
	}

	filtered, err := suite.hostelService.List(suite.ctx, tagging.Filters{"Domain": {"Web"}})
	suite.Require().NoError(err)
	suite.Empty(filtered)

	err = suite.categoryService.DeleteCategory(suite.ctx, domain.ID)
	suite.ErrorIs(err, apperrors.ErrCategoryNotFound)
}

func (suite *CategoryServiceTestSuite) TestOptionLifecycle() {
	domain := suite.fx.SentinelCategory("Domain", "Other", "Web", "Other")
	hostel := suite.fx.Hostel("Sunrise")
	suite.fx.Tag(models.EntityTypeHostel, hostel.ID, domain, "Other")

	added, err := suite.categoryService.AddOption(suite.ctx, domain.ID, &service.OptionRequest{OptionName: "AI"})
	suite.Require().NoError(err)
	suite.Equal(2, added.Position)

	_, err = suite.categoryService.AddOption(suite.ctx, domain.ID, &service.OptionRequest{OptionName: "AI"})
	suite.ErrorIs(err, apperrors.ErrOptionExists)

	renamed, err := suite.categoryService.RenameOption(suite.ctx, domain.ID, suite.fx.Option(domain, "Other").ID, &service.OptionRequest{OptionName: "Something else"})
	suite.Require().NoError(err)
	suite.Equal("Something else", renamed.OptionName)

	list, err := suite.categoryService.ListCategories(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal("Something else", list[0].SentinelOption, "sentinel follows the rename")

	suite.Require().NoError(suite.categoryService.DeleteOption(suite.ctx, domain.ID, renamed.OptionID))
	suite.Equal(int64(0), suite.fx.CountTagLinks("option_id = ?", renamed.OptionID))

	list, err = suite.categoryService.ListCategories(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(list[0].SentinelOption)
	suite.Equal([]string{"Web", "AI"}, suite.optionNames(list[0].Options))

	byName, err := suite.categoryService.ListOptionsByCategoryName(suite.ctx, "Domain")
	suite.Require().NoError(err)
	suite.Equal([]string{"Web", "AI"}, suite.optionNames(byName))
}

func (suite *CategoryServiceTestSuite) TestCascadesDropCustomValues() {
	domain := suite.fx.SentinelCategory("Domain", "Other", "Web", "Other")
	tagged := suite.fx.Hostel("Tagged")
	suite.fx.Tag(models.EntityTypeHostel, tagged.ID, domain, "Other")
	suite.fx.SetCustomValues(models.EntityTypeHostel, tagged.ID, models.CustomValues{domain.ID.String(): "Robotics"})

	suite.Require().NoError(suite.categoryService.DeleteOption(suite.ctx, domain.ID, suite.fx.Option(domain, "Web").ID))
	suite.Equal(models.CustomValues{domain.ID.String(): "Robotics"}, suite.fx.StoredCustomValues(models.EntityTypeHostel, tagged.ID),
		"removing another option keeps the sentinel's value")

	suite.Require().NoError(suite.categoryService.DeleteOption(suite.ctx, domain.ID, suite.fx.Option(domain, "Other").ID))
	suite.Empty(suite.fx.StoredCustomValues(models.EntityTypeHostel, tagged.ID))

	room := suite.fx.SentinelCategory("Room", "Other", "Dorm", "Other")
	project := suite.fx.Project("Compiler")
	suite.fx.Tag(models.EntityTypeProject, project.ID, room, "Other")
	suite.fx.SetCustomValues(models.EntityTypeProject, project.ID, models.CustomValues{room.ID.String(): "Loft"})

	options := []service.OptionInput{{OptionName: "Dorm"}, {OptionName: "Other"}}
	_, err := suite.categoryService.UpdateCategory(suite.ctx, room.ID, &service.UpdateCategoryRequest{
		CategoryName: "Room",
		Options:      &options,
	})
	suite.Require().NoError(err)
	suite.Empty(suite.fx.StoredCustomValues(models.EntityTypeProject, project.ID))

	year := suite.fx.SentinelCategory("Year", "Other", "2024", "Other")
	suite.fx.Tag(models.EntityTypeProject, project.ID, year, "Other")
	suite.fx.SetCustomValues(models.EntityTypeProject, project.ID, models.CustomValues{year.ID.String(): "2019"})

	suite.Require().NoError(suite.categoryService.DeleteCategory(suite.ctx, year.ID))
	suite.Empty(suite.fx.StoredCustomValues(models.EntityTypeProject, project.ID))
}

func (suite *CategoryServiceTestSuite) TestOptionScopedToCategory() {
	domain := suite.fx.Category("Domain", "Web")
	room := suite.fx.Category("Room", "Dorm")

	_, err := suite.categoryService.RenameOption(suite.ctx, domain.ID, suite.fx.Option(room, "Dorm").ID, &service.OptionRequest{OptionName: "X"})
	suite.ErrorIs(err, apperrors.ErrOptionNotFound)

	err = suite.categoryService.DeleteOption(suite.ctx, domain.ID, suite.fx.Option(room, "Dorm").ID)
	suite.ErrorIs(err, apperrors.ErrOptionNotFound)

	_, err = suite.categoryService.ListOptions(suite.ctx, uuid.New())
	suite.ErrorIs(err, apperrors.ErrCategoryNotFound)

	_, err = suite.categoryService.ListOptionsByCategoryName(suite.ctx, "Missing")
	suite.ErrorIs(err, apperrors.ErrCategoryNotFound)
}

func TestOptionInput_UnmarshalJSON(t *testing.T) {
	var inputs []service.OptionInput
	if err := json.Unmarshal([]byte(`["Web",{"option_name":"Mobile"}]`), &inputs); err != nil {
		t.Fatal(err)
	}
	if len(inputs) != 2 || inputs[0].OptionName != "Web" || inputs[1].OptionName != "Mobile" {
		t.Fatalf("unexpected inputs %+v", inputs)
	}
	if err := json.Unmarshal([]byte(`[42]`), &inputs); err == nil {
		t.Fatal("expected an error for a numeric option")
	}
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
