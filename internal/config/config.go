package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// Optional shared rate-limiter storage
	RedisURL string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Generation
	RandomSeed uint64 // env: RANDOM_SEED; 0 means time-seeded
	SeedDev    bool   // env: SEED_DEV_DATA; insert sample keywords on startup

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "SEO Planner"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":3000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/seoplanner?sslmode=disable"),
		RedisURL:    getEnv("REDIS_URL", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", ""),
		RandomSeed:  getEnvUint("RANDOM_SEED", 0),
		SeedDev:     getEnv("SEED_DEV_DATA", "") != "",

		SiteTitle:   getEnv("SITE_TITLE", "SEO Planner"),
		SiteTagline: getEnv("SITE_TAGLINE", "Plan content that ranks"),
		SiteFooter:  getEnv("SITE_FOOTER", "SEO Planner - Plan content that ranks"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvUint(key string, fallback uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseUint(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
