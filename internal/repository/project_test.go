package repository

import (
	"context"
	"testing"

	"hostel-directory-backend/internal/database/models"
	"hostel-directory-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository
	fx            *testutils.Fixtures
	ctx           context.Context
}

func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.ctx = context.Background()
}

func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.fx = testutils.NewFixtures(suite.T(), suite.baseTestSuite.DB)
}

func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ProjectRepositoryTestSuite) TestReplaceMembers() {
	project := suite.fx.Project("Compiler")

	_, err := suite.repo.ReplaceMembers(suite.ctx, project.ID, []models.TeamMember{
		{Name: "Asha", LinkedIn: "https://linkedin.com/in/asha"},
		{Name: "Ravi"},
	})
	suite.Require().NoError(err)

	members, err := suite.repo.ReplaceMembers(suite.ctx, project.ID, []models.TeamMember{{Name: "Meera"}})
	suite.Require().NoError(err)
	suite.Len(members, 1)

	found, err := suite.repo.GetActiveByID(suite.ctx, project.ID)
	suite.Require().NoError(err)
	suite.Require().Len(found.Members, 1)
	suite.Equal("Meera", found.Members[0].Name)

	_, err = suite.repo.ReplaceMembers(suite.ctx, project.ID, nil)
	suite.Require().NoError(err)
	found, err = suite.repo.GetActiveByID(suite.ctx, project.ID)
	suite.Require().NoError(err)
	suite.Empty(found.Members)
}

func (suite *ProjectRepositoryTestSuite) TestUpdateAndDeactivate() {
	project := suite.fx.Project("Compiler")
	project.Name = "Compiler v2"
	project.Link = "https://github.com/example/compiler"
	suite.Require().NoError(suite.repo.Update(suite.ctx, project))

	n, err := suite.repo.Deactivate(suite.ctx, project.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), n)

	_, err = suite.repo.GetActiveByID(suite.ctx, project.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	stored, err := suite.repo.GetByID(suite.ctx, project.ID)
	suite.Require().NoError(err)
	suite.Equal("Compiler v2", stored.Name)
	suite.False(stored.IsActive)

	active, err := suite.repo.ListActive(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(active)
}

func (suite *ProjectRepositoryTestSuite) TestDeleteRestrictedByMembers() {
	project := suite.fx.Project("Compiler")
	_, err := suite.repo.ReplaceMembers(suite.ctx, project.ID, []models.TeamMember{{Name: "Asha"}})
	suite.Require().NoError(err)

	_, err = suite.repo.Delete(suite.ctx, project.ID)
	suite.ErrorIs(err, gorm.ErrForeignKeyViolated)

	suite.Require().NoError(suite.repo.DeleteMembers(suite.ctx, project.ID))
	n, err := suite.repo.Delete(suite.ctx, project.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), n)
}

func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
