package testutils

import (
	"testing"

	"hostel-directory-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Fixtures inserts rows directly through GORM so tests can arrange state
// without going through the services under test.
type Fixtures struct {
	t  testing.TB
	db *gorm.DB
}

// NewFixtures creates a Fixtures bound to db
func NewFixtures(t testing.TB, db *gorm.DB) *Fixtures {
	return &Fixtures{t: t, db: db}
}

// Category creates a category with options in the given order
func (f *Fixtures) Category(name string, options ...string) *models.Category {
	f.t.Helper()
	category := &models.Category{Name: name}
	require.NoError(f.t, f.db.Create(category).Error)
	for i, option := range options {
		opt := models.CategoryOption{CategoryID: category.ID, Name: option, Position: i}
		require.NoError(f.t, f.db.Create(&opt).Error)
		category.Options = append(category.Options, opt)
	}
	return category
}

// SentinelCategory creates a category whose sentinel is the named option
func (f *Fixtures) SentinelCategory(name, sentinel string, options ...string) *models.Category {
	f.t.Helper()
	category := f.Category(name, options...)
	require.NoError(f.t, f.db.Model(category).Update("sentinel_option", sentinel).Error)
	category.SentinelOption = sentinel
	return category
}

// Option returns the named option of category, failing the test when absent
func (f *Fixtures) Option(category *models.Category, name string) models.CategoryOption {
	f.t.Helper()
	for _, opt := range category.Options {
		if opt.Name == name {
			return opt
		}
	}
	f.t.Fatalf("category %s has no option %s", category.Name, name)
	return models.CategoryOption{}
}

// Hostel creates an active hostel
func (f *Fixtures) Hostel(name string) *models.Hostel {
	f.t.Helper()
	hostel := &models.Hostel{
		Name:         name,
		Location:     "https://maps.example.com/" + name,
		Description:  name + " description",
		CustomValues: models.CustomValues{},
		IsActive:     true,
	}
	require.NoError(f.t, f.db.Create(hostel).Error)
	return hostel
}

// Project creates an active project
func (f *Fixtures) Project(name string) *models.Project {
	f.t.Helper()
	project := &models.Project{
		Name:         name,
		Description:  name + " description",
		CustomValues: models.CustomValues{},
		IsActive:     true,
	}
	require.NoError(f.t, f.db.Create(project).Error)
	return project
}

// User creates a user with the default role
func (f *Fixtures) User(authUID string) *models.User {
	f.t.Helper()
	user := &models.User{AuthUID: authUID, DisplayName: authUID, Role: models.UserRoleUser}
	require.NoError(f.t, f.db.Create(user).Error)
	return user
}

// Tag links an entity to the named option of category
func (f *Fixtures) Tag(kind models.EntityType, entityID uuid.UUID, category *models.Category, option string) *models.TagLink {
	f.t.Helper()
	link := &models.TagLink{
		EntityType: kind,
		EntityID:   entityID,
		CategoryID: category.ID,
		OptionID:   f.Option(category, option).ID,
	}
	require.NoError(f.t, f.db.Omit("Category", "Option").Create(link).Error)
	return link
}

// CountTagLinks counts tag link rows matching the optional where clause
func (f *Fixtures) CountTagLinks(query string, args ...interface{}) int64 {
	f.t.Helper()
	var count int64
	tx := f.db.Model(&models.TagLink{})
	if query != "" {
		tx = tx.Where(query, args...)
	}
	require.NoError(f.t, tx.Count(&count).Error)
	return count
}

// SetCustomValues overwrites the stored free-text values of an entity
func (f *Fixtures) SetCustomValues(kind models.EntityType, id uuid.UUID, values models.CustomValues) {
	f.t.Helper()
	require.NoError(f.t, f.db.Table(kind.TableName()).Where("id = ?", id).Update("custom_values", values).Error)
}

// StoredCustomValues reads an entity's free-text values as stored, keyed by category ID
func (f *Fixtures) StoredCustomValues(kind models.EntityType, id uuid.UUID) models.CustomValues {
	f.t.Helper()
	var values []models.CustomValues
	require.NoError(f.t, f.db.Table(kind.TableName()).Where("id = ?", id).Pluck("custom_values", &values).Error)
	require.Len(f.t, values, 1)
	return values[0]
}
