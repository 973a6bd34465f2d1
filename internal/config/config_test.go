package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/ip-portfolio/internal/valuation"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_PRETTY", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DEFAULTS_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, valuation.StandardDefaults(), cfg.Defaults)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "false")
	t.Setenv("DATABASE_URL", "postgres://localhost/ipval")
	t.Setenv("DEFAULTS_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, "postgres://localhost/ipval", cfg.DatabaseURL)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("LOG_PRETTY", "sometimes")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEFAULTS_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.LogPretty)
}

func TestLoad_RejectsUnknownLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")
	t.Setenv("PORT", "")
	t.Setenv("DEFAULTS_FILE", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_WithDefaultsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	require.NoError(t, os.WriteFile(path, []byte("years: 7\ndiscount_rate: 0.1\nallocation: 0.35\n"), 0o644))

	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEFAULTS_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Defaults.Years)
	assert.Equal(t, 0.1, cfg.Defaults.DiscountRate)
	assert.Equal(t, 0.35, cfg.Defaults.Allocation)
	assert.Equal(t, 50000.0, cfg.Defaults.SaleValue)
}

func TestLoadDefaults_NormalizesOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	require.NoError(t, os.WriteFile(path, []byte("years: 30\ndiscount_rate: 0.9\nsale_value: -5\n"), 0o644))

	d, err := LoadDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, valuation.MaxYears, d.Years)
	assert.Equal(t, valuation.MaxDiscountRate, d.DiscountRate)
	assert.Equal(t, 0.0, d.SaleValue)
}

func TestLoadDefaults_Errors(t *testing.T) {
	_, err := LoadDefaults(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("years: [1, 2\n"), 0o644))
	_, err = LoadDefaults(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Port: 70000, LogLevel: "info"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: 8080, LogLevel: "warn"}
	assert.NoError(t, cfg.Validate())
}
