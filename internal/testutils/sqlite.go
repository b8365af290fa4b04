//go:build !integration

package testutils

import (
	"fmt"

	"hostel-directory-backend/internal/config"
	"hostel-directory-backend/internal/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDatabase creates a private in-memory SQLite database. The shared cache
// keeps it alive across pooled connections; one open connection serializes access.
func openTestDatabase() (*gorm.DB, *config.Config, func(), error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Initialize(dsn, &database.Options{
		Driver:       database.DriverSQLite,
		LogLevel:     logger.Silent,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	cfg := &config.Config{
		Environment:            "test",
		DatabaseDriver:         database.DriverSQLite,
		DatabaseURL:            dsn,
		Port:                   "8080",
		LogLevel:               "debug",
		JWTSecret:              "test-secret",
		RecentCommentsInList:   5,
		RecentCommentsInDetail: 10,
	}

	release := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cfg, release, nil
}

// CleanupSharedContainer is a no-op for SQLite; each suite closes its own database.
func CleanupSharedContainer() {}
