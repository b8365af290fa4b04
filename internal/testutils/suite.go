package testutils

import (
	"testing"

	"hostel-directory-backend/internal/config"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BaseTestSuite gives repository and service suites a migrated database.
// Without build tags the database is an in-memory SQLite instance per suite;
// with -tags integration it is the shared dockertest Postgres container.
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config

	release func()
}

// SetupTestSuite returns a per-suite wrapper around a ready database.
// Call this in SetupSuite before using the DB.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	db, cfg, release, err := openTestDatabase()
	if err != nil {
		t.Fatalf("failed to initialize test database: %v", err)
	}
	return &BaseTestSuite{
		DB:      db,
		Config:  cfg,
		release: release,
	}
}

// RunWithTestSuite is a convenience wrapper to run a function with a ready suite.
func RunWithTestSuite(t *testing.T, testFunc func(*BaseTestSuite)) {
	s := SetupTestSuite(t)
	defer s.TeardownTestSuite()
	testFunc(s)
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite cleans the data and releases the suite's hold on the database.
func (s *BaseTestSuite) TeardownTestSuite() {
	s.CleanTestDB()
	if s.release != nil {
		s.release()
	}
}

// CleanTestDB deletes all rows, children before parents so foreign keys hold.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	tables := []string{
		"tag_links",
		"team_members",
		"comments",
		"ratings",
		"hostel_images",
		"category_options",
		"categories",
		"projects",
		"hostels",
		"users",
	}
	m := s.DB.Migrator()
	for _, t := range tables {
		if m.HasTable(t) {
			s.DB.Exec(`DELETE FROM ` + t)
		}
	}
}
