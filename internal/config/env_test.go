// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/home/user/.ledger/ledger.db",

		"ADAPTER_BASE_URL":        "https://api.example.com",
		"ADAPTER_TOKEN":           "sometoken",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"WORKERS_SYNC_EVERY":        "15m",
		"WORKERS_SYNC_FLEX":         "5m",
		"WORKERS_MUTATION_DELAY":    "5m",
		"WORKERS_JOB_TIMEOUT":       "60s",
		"WORKERS_BACKOFF_BASE":      "30s",
		"WORKERS_BACKOFF_CAP":       "10m",
		"WORKERS_MAX_ATTEMPTS":      "5",
		"WORKERS_UPLOAD_BATCH_SIZE": "50",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

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

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ADAPTER_BASE_URL":        "http://localhost:8080",
		"STORAGE_DB_DATABASE_URI": "ledger.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.BaseURL)
	assert.Empty(t, cfg.Adapter.Token)
	assert.Zero(t, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "ledger.db", cfg.Storage.DB.DSN)

	// Others untouched
	assert.Empty(t, cfg.App.Version)
	assert.Equal(t, Workers{}, cfg.Workers)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// In this version all nested fields are non-pointer values,
	// so "empty" state is represented by zero values.
	assert.Equal(t, "", cfg.JSONFilePath)

	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Workers{}, cfg.Workers)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"WORKERS_SYNC_EVERY": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	// Error wording may vary depending on parseEnv internals; assert loosely.
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"ADAPTER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Adapter.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_VERSION",

		"STORAGE_DB_DATABASE_URI",

		"ADAPTER_BASE_URL",
		"ADAPTER_TOKEN",
		"ADAPTER_REQUEST_TIMEOUT",

		"WORKERS_SYNC_EVERY",
		"WORKERS_SYNC_FLEX",
		"WORKERS_MUTATION_DELAY",
		"WORKERS_JOB_TIMEOUT",
		"WORKERS_BACKOFF_BASE",
		"WORKERS_BACKOFF_CAP",
		"WORKERS_MAX_ATTEMPTS",
		"WORKERS_UPLOAD_BATCH_SIZE",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
