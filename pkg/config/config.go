package config

import (
	"fmt"
	"os"
	"strconv"

	// Load environment variables from .env files when present.
	_ "github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Assistant AssistantConfig
	Seed      SeedConfig
	Sweep     SweepConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// AssistantConfig controls the interactive assistant session.
type AssistantConfig struct {
	// MaxHistory caps the in-memory conversation log; 0 means unbounded.
	MaxHistory int
}

// SeedConfig controls sample-data seeding.
type SeedConfig struct {
	Enabled     bool
	ExtraRandom int // extra gofakeit-generated records on top of the canned set
}

// SweepConfig controls the scheduled overdue-invoice sweep.
type SweepConfig struct {
	Enabled  bool
	Schedule string // cron expression, 5-field format
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvAsInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", "postgres"),
			Database: getEnv("POSTGRES_DB", "finassist-dev"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		},
		Assistant: AssistantConfig{
			MaxHistory: getEnvAsInt("ASSISTANT_MAX_HISTORY", 0),
		},
		Seed: SeedConfig{
			Enabled:     getEnvAsBool("SEED_ENABLED", true),
			ExtraRandom: getEnvAsInt("SEED_EXTRA_RANDOM", 0),
		},
		Sweep: SweepConfig{
			Enabled:  getEnvAsBool("SWEEP_ENABLED", true),
			Schedule: getEnv("SWEEP_SCHEDULE", "0 2 * * *"),
		},
	}

	return cfg, nil
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
