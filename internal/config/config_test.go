package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"port": 9090,
		"database_url": "postgres://localhost/rankrite",
		"history_backend": "postgres",
		"matched_term_count": 8,
		"log_json": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/rankrite", cfg.DatabaseURL)
	assert.Equal(t, BackendPostgres, cfg.HistoryBackend)
	assert.Equal(t, 8, cfg.MatchedTermCount)
	assert.True(t, cfg.LogJSON)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/rankrite")
	t.Setenv("PORT", "7000")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Config{DatabaseURL: "postgres://file/rankrite"}
	require.NoError(t, cfg.FromEnv())

	// File value wins over the environment
	assert.Equal(t, "postgres://file/rankrite", cfg.DatabaseURL)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFromEnv_BadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg := Config{}
	err := cfg.FromEnv()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid PORT value")
}

func TestValidate_UnknownBackend(t *testing.T) {
	cfg := &Config{HistoryBackend: "redis"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown history backend")
}

func TestValidate_PostgresRequiresURL(t *testing.T) {
	cfg := &Config{HistoryBackend: BackendPostgres}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database_url")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{MatchedTermCount: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "matched_term_count")

	cfg = &Config{Port: -1}
	err = cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Port:             8080,
		HistoryBackend:   BackendMemory,
		MatchedTermCount: 5,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Defaults()

	partial := Config{
		Port:     9090,
		LogLevel: "debug",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, "debug", merged.LogLevel)

	// Default values should fill in empty fields
	assert.Equal(t, BackendMemory, merged.HistoryBackend)
	assert.Equal(t, 5, merged.MatchedTermCount)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Port:           9090,
		HistoryBackend: BackendMemory,
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, BackendMemory, merged.HistoryBackend)
}
