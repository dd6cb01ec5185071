package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Matching MatchingConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           string
	Env            string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
}

// DatabaseConfig holds SurrealDB connection settings
type DatabaseConfig struct {
	Host      string
	Port      string
	Namespace string
	Database  string
	User      string
	Password  string
}

// MatchingConfig holds the scoring policy constants. The defaults encode the
// production questionnaire layout and must only be changed together with it.
type MatchingConfig struct {
	// ReservedQuestionID is never scored (free-text field-of-study question).
	ReservedQuestionID int
	// YearQuestionID is the study-year text question scored by year distance.
	YearQuestionID int
	// CriticalQuestionID is the radio question with near-binary penalty.
	CriticalQuestionID int
	// RadioScaleMax is the largest possible difference on the radio scale.
	RadioScaleMax int
	// DefaultLimit and MaxLimit bound the recommendation page size.
	DefaultLimit int
	MaxLimit     int
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Env:            getEnv("SERVER_ENV", "development"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			AllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Database: DatabaseConfig{
			Host:      getEnv("DB_HOST", "localhost"),
			Port:      getEnv("DB_PORT", "8000"),
			Namespace: getEnv("DB_NAMESPACE", "roomatch"),
			Database:  getEnv("DB_DATABASE", "main"),
			User:      getEnv("DB_USER", "root"),
			Password:  getEnv("DB_PASSWORD", "root"),
		},
		Matching: MatchingConfig{
			ReservedQuestionID: getIntEnv("MATCH_RESERVED_QUESTION_ID", 1),
			YearQuestionID:     getIntEnv("MATCH_YEAR_QUESTION_ID", 2),
			CriticalQuestionID: getIntEnv("MATCH_CRITICAL_QUESTION_ID", 8),
			RadioScaleMax:      getIntEnv("MATCH_RADIO_SCALE_MAX", 4),
			DefaultLimit:       getIntEnv("MATCH_DEFAULT_LIMIT", 20),
			MaxLimit:           getIntEnv("MATCH_MAX_LIMIT", 50),
		},
	}, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}

	// Database validation
	if c.Database.Host == "" {
		errs = append(errs, errors.New("DB_HOST is required"))
	}
	if c.Database.Port == "" {
		errs = append(errs, errors.New("DB_PORT is required"))
	}
	if c.Database.Namespace == "" {
		errs = append(errs, errors.New("DB_NAMESPACE is required"))
	}
	if c.Database.Database == "" {
		errs = append(errs, errors.New("DB_DATABASE is required"))
	}

	// Matching validation
	if c.Matching.RadioScaleMax <= 0 {
		errs = append(errs, errors.New("MATCH_RADIO_SCALE_MAX must be positive"))
	}
	if c.Matching.DefaultLimit <= 0 {
		errs = append(errs, errors.New("MATCH_DEFAULT_LIMIT must be positive"))
	}
	if c.Matching.MaxLimit < c.Matching.DefaultLimit {
		errs = append(errs, errors.New("MATCH_MAX_LIMIT must be >= MATCH_DEFAULT_LIMIT"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
