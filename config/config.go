package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	Environment string
	DBPath      string
	JWTSecret   string
	KBDomains   string // comma-separated allowlist for /kb/ingest/url
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		Environment: get("APP_ENV", "development"),
		DBPath:      get("DB_PATH", "mkulima.db"),
		JWTSecret:   get("JWT_SECRET", "dev-secret-change-me"),
		KBDomains:   get("KB_ALLOWED_DOMAINS", ""),
	}
	log.Printf("[cfg] port=%s env=%s db=%s", cfg.Port, cfg.Environment, cfg.DBPath)
	return cfg
}
