package main

import (
	"fmt"
	"os"
	"time"

	"hostel-directory-backend/internal/config"
	"hostel-directory-backend/internal/database"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "hostel-directory-backend/docs" // This is needed for swag
)

//	@title			Hostel Directory Backend API
//	@version		1.0
//	@description	Backend API for the hostel and project directory: categories and options, tagging, hostels with ratings, comments and images, and student projects.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

var (
	waitForDB time.Duration
	cfg       *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Hostel directory backend",
	Long: `Hostel directory backend.

Available subcommands:
  serve   - Run the HTTP API
  migrate - Create or update the database schema
  seed    - Load categories and sample entities from a YAML file
  token   - Issue a JWT for a user and role`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load environment variables from .env file in development
		if err := godotenv.Load(); err != nil {
			logrus.Info("No .env file found, using system environment variables")
		}

		var err error
		if cfg, err = config.Load(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		setupLogging(cfg.LogLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&waitForDB, "wait-for-db", 0, "Keep retrying the database connection for this long (e.g. 60s)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// openDatabase connects with the configured driver, retrying until waitForDB
// elapses so the server can start alongside a dockerized Postgres.
func openDatabase(opts *database.Options) (*gorm.DB, error) {
	if opts == nil {
		opts = &database.Options{}
	}
	opts.Driver = cfg.DatabaseDriver
	if cfg.IsSQLite() {
		// one writer at a time
		opts.MaxOpenConns = 1
	}

	deadline := time.Now().Add(waitForDB)
	for attempt := 1; ; attempt++ {
		db, err := database.Initialize(cfg.DatabaseURL, opts)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("failed to initialize database after %d attempts: %w", attempt, err)
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 {
			logrus.Warnf("Database not ready (attempt %d): %v", attempt, err)
		}
		time.Sleep(time.Second)
	}
}

// quietDB suppresses GORM query logging for one-shot commands
func quietDB() *database.Options {
	return &database.Options{LogLevel: logger.Silent}
}
