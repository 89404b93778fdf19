package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string

	// Dataset source: a local path or an http(s) URL
	DataSource        string
	SourceTimeout     time.Duration
	SourceMaxAttempts int
	SourceRetryDelay  time.Duration

	// Exchange-rate table
	RateStartYear    int
	RateEndYear      int
	RateDefaultMonth string
	RateAnchorsFile  string

	DefaultRangeStart string
	ViewCacheSize     int

	RateLimit          string // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string

	JWTSecret string
	JWTIssuer string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATA_SOURCE", "GRETL_TUFE.csv")
	viper.SetDefault("SOURCE_TIMEOUT", "10s")
	viper.SetDefault("SOURCE_MAX_ATTEMPTS", 3)
	viper.SetDefault("SOURCE_RETRY_DELAY", "500ms")
	viper.SetDefault("RATE_START_YEAR", 2015)
	viper.SetDefault("RATE_END_YEAR", 2026)
	viper.SetDefault("RATE_DEFAULT_MONTH", "2025-01")
	viper.SetDefault("RATE_ANCHORS_FILE", "")
	viper.SetDefault("DEFAULT_RANGE_START", "2020-01-01")
	viper.SetDefault("VIEW_CACHE_SIZE", 256)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_ISSUER", "price-dashboard")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	// This allows overriding defaults with .env file values, which can then be overridden by actual environment variables.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.LogLevel = strings.ToLower(viper.GetString("LOG_LEVEL"))

	cfg.DataSource = viper.GetString("DATA_SOURCE")
	if cfg.DataSource == "" {
		log.Println("Warning: DATA_SOURCE not set. Only the embedded fallback dataset will be served.")
	}
	cfg.SourceTimeout = durationOrDefault("SOURCE_TIMEOUT", 10*time.Second)
	cfg.SourceMaxAttempts = viper.GetInt("SOURCE_MAX_ATTEMPTS")
	if cfg.SourceMaxAttempts < 1 {
		log.Printf("Warning: Invalid value for SOURCE_MAX_ATTEMPTS (%d). Defaulting to 1.\n", cfg.SourceMaxAttempts)
		cfg.SourceMaxAttempts = 1
	}
	cfg.SourceRetryDelay = durationOrDefault("SOURCE_RETRY_DELAY", 500*time.Millisecond)

	cfg.RateStartYear = viper.GetInt("RATE_START_YEAR")
	cfg.RateEndYear = viper.GetInt("RATE_END_YEAR")
	if cfg.RateStartYear > cfg.RateEndYear {
		return nil, fmt.Errorf("RATE_START_YEAR (%d) must not be after RATE_END_YEAR (%d)", cfg.RateStartYear, cfg.RateEndYear)
	}
	cfg.RateDefaultMonth = viper.GetString("RATE_DEFAULT_MONTH")
	cfg.RateAnchorsFile = viper.GetString("RATE_ANCHORS_FILE")

	cfg.DefaultRangeStart = viper.GetString("DEFAULT_RANGE_START")
	cfg.ViewCacheSize = viper.GetInt("VIEW_CACHE_SIZE")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. The admin reload endpoint is disabled.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")

	return cfg, nil
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
