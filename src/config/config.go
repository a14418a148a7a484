package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all process configuration. It is loaded once at startup and
// never re-read; collaborators receive the fields they need at construction.
type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	SummaryAPIURL string
	LogLevel      string
}

// Load reads configuration from the environment, falling back to a .env
// file if present.
func Load() (Config, error) {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "5001"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		JWTSecret:     getEnv("JWT_SECRET", "your_jwt_secret"),
		SummaryAPIURL: getEnv("SUMMARY_API_URL", "http://localhost:5000"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
