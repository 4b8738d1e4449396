package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Style store
	StylesDir string

	// Auth (optional; endpoints are open when unset)
	APIKey string

	// Request limits
	MaxContentBytes int64
	MaxUploadBytes  int64

	// Export coordination
	HealthTimeout time.Duration
	HistoryLimit  int
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "5002"),

		StylesDir: envOr("STYLES_DIR", "styles/journal_templates"),

		APIKey: os.Getenv("PUBSTYLE_API_KEY"),

		MaxContentBytes: envInt64("MAX_CONTENT_BYTES", 10485760), // 10MB
		MaxUploadBytes:  envInt64("MAX_UPLOAD_BYTES", 52428800),  // 50MB

		HealthTimeout: envDuration("HEALTH_TIMEOUT", 5*time.Second),
		HistoryLimit:  envInt("HISTORY_LIMIT", 100),
	}

	if cfg.MaxContentBytes <= 0 {
		cfg.MaxContentBytes = 10485760
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.HealthTimeout <= 0 {
		cfg.HealthTimeout = 5 * time.Second
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 100
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.StylesDir == "" {
		return fmt.Errorf("STYLES_DIR must not be empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
