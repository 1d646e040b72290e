package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Deck configuration
	DeckType     string
	ShuffleCount int
	AcesHigh     bool

	// Driver configuration
	DealCount int

	// Resource paths
	DataDir string

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	// Get working directory for resource paths
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	shuffleCount, err := getEnvInt("SHUFFLE_COUNT", 7)
	if err != nil {
		return nil, err
	}

	dealCount, err := getEnvInt("DEAL_COUNT", 5)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DeckType:     getEnvWithDefault("DECK_TYPE", "full_french"),
		ShuffleCount: shuffleCount,
		AcesHigh:     getEnvWithDefault("ACES_HIGH", "true") == "true",
		DealCount:    dealCount,
		Environment:  getEnvWithDefault("ENVIRONMENT", "development"),
		DataDir:      getEnvWithDefault("DATA_DIR", filepath.Join(wd, "data")),
	}

	// Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// validate checks if all configuration values are usable
func (c *Config) validate() error {
	if c.DeckType != "full_french" {
		return fmt.Errorf("unsupported DECK_TYPE: %s", c.DeckType)
	}
	if c.ShuffleCount < 0 {
		return fmt.Errorf("SHUFFLE_COUNT cannot be negative: %d", c.ShuffleCount)
	}
	if c.DealCount < 0 {
		return fmt.Errorf("DEAL_COUNT cannot be negative: %d", c.DealCount)
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or default if not set
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
