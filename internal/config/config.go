package config

import (
	"fmt"
	"strings"

	apperrors "hostel-directory-backend/internal/errors"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseDriver   string `mapstructure:"DB_DRIVER"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	SQLitePath       string `mapstructure:"SQLITE_PATH"`

	// JWT configuration
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	AuthEnabled bool   `mapstructure:"AUTH_ENABLED"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Seeding
	SeedFile string `mapstructure:"SEED_FILE"`

	// Comments embedded in hostel responses
	RecentCommentsInList   int `mapstructure:"RECENT_COMMENTS_IN_LIST"`
	RecentCommentsInDetail int `mapstructure:"RECENT_COMMENTS_IN_DETAIL"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.GetViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// ALLOWED_ORIGINS arrives as one comma separated string from the environment
	config.AllowedOrigins = splitOrigins(config.AllowedOrigins)
	config.DatabaseDriver = strings.ToLower(strings.TrimSpace(config.DatabaseDriver))

	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "hostel_directory")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("SQLITE_PATH", "hostel_directory.db")

	// JWT defaults
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("AUTH_ENABLED", false)

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	v.SetDefault("SEED_FILE", "config/seed.yaml")

	v.SetDefault("RECENT_COMMENTS_IN_LIST", 5)
	v.SetDefault("RECENT_COMMENTS_IN_DETAIL", 10)
}

func buildDatabaseURL(config *Config) string {
	if config.DatabaseDriver == "sqlite" {
		return config.SQLitePath
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func splitOrigins(origins []string) []string {
	var out []string
	for _, entry := range origins {
		for _, origin := range strings.Split(entry, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				out = append(out, origin)
			}
		}
	}
	return out
}

func validate(config *Config) error {
	if config.Environment == "production" || config.AuthEnabled {
		if config.JWTSecret == defaultJWTSecret || config.JWTSecret == "" {
			return apperrors.ErrJWTSecretNotSet
		}
	}

	switch config.DatabaseDriver {
	case "postgres":
		if config.DatabaseName == "" {
			return apperrors.ErrDatabaseNameEmpty
		}
	case "sqlite":
	default:
		return apperrors.ErrUnknownDBDriver
	}

	if config.RecentCommentsInList < 0 || config.RecentCommentsInDetail < 0 {
		return apperrors.NewConfigurationError("recent comment limits must not be negative")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsSQLite reports whether the configured driver is the embedded SQLite one
func (c *Config) IsSQLite() bool {
	return c.DatabaseDriver == "sqlite"
}
