package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "GRETL_TUFE.csv", cfg.DataSource)
	assert.Equal(t, 10*time.Second, cfg.SourceTimeout)
	assert.Equal(t, 3, cfg.SourceMaxAttempts)
	assert.Equal(t, 2015, cfg.RateStartYear)
	assert.Equal(t, 2026, cfg.RateEndYear)
	assert.Equal(t, "2025-01", cfg.RateDefaultMonth)
	assert.Equal(t, "2020-01-01", cfg.DefaultRangeStart)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("DATA_SOURCE", "https://example.com/GRETL_TUFE.csv")
	t.Setenv("SOURCE_TIMEOUT", "not-a-duration")
	t.Setenv("SOURCE_MAX_ATTEMPTS", "0")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/GRETL_TUFE.csv", cfg.DataSource)
	assert.Equal(t, 10*time.Second, cfg.SourceTimeout)
	assert.Equal(t, 1, cfg.SourceMaxAttempts)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_InvalidYears(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("RATE_START_YEAR", "2030")
	t.Setenv("RATE_END_YEAR", "2020")

	_, err := LoadConfig()
	assert.Error(t, err)
}
