package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON are strings understood by time.ParseDuration ("30s").
	jsonBody := `{
		"app": { "version": "1.2.3" },
		"storage": {
			"db": { "dsn": "/home/user/.ledger/ledger.db" }
		},
		"adapter": {
			"base_url": "https://api.example.com",
			"token": "sometoken",
			"request_timeout": "30s"
		},
		"workers": {
			"sync_every": "15m",
			"sync_flex": "5m",
			"mutation_delay": "5m",
			"job_timeout": "60s",
			"backoff_base": "30s",
			"backoff_cap": "10m",
			"max_attempts": 5,
			"upload_batch_size": 50
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/home/user/.ledger/ledger.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "https://api.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, "sometoken", cfg.Adapter.Token)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 15*time.Minute, cfg.Workers.SyncEvery)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncFlex)
	assert.Equal(t, 5*time.Minute, cfg.Workers.MutationDelay)
	assert.Equal(t, time.Minute, cfg.Workers.JobTimeout)
	assert.Equal(t, 30*time.Second, cfg.Workers.BackoffBase)
	assert.Equal(t, 10*time.Minute, cfg.Workers.BackoffCap)
	assert.Equal(t, 5, cfg.Workers.MaxAttempts)
	assert.Equal(t, 50, cfg.Workers.UploadBatchSize)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	jsonBody := `{
		"workers": { "sync_every": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "numeric.json")

	// Numeric durations are raw nanoseconds.
	jsonBody := `{
		"adapter": { "request_timeout": 15000000000 }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// With non-pointer nested structs, all fields are zero values.
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{
		"adapter": { "base_url": "http://127.0.0.1:8000" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "http://127.0.0.1:8000", cfg.Adapter.BaseURL)
	assert.Empty(t, cfg.Adapter.Token)
	assert.Zero(t, cfg.Adapter.RequestTimeout)

	// Others remain zero
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Workers{}, cfg.Workers)
}
