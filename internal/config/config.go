// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-ledger-keeper client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the client version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds network settings for the remote REST backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for the background sync scheduler and the
	// job runner.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client
	// (e.g. "1.2.3"). Attached to outbound requests as a User-Agent suffix.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path used to open the local database
	// (e.g. "/home/user/.ledger/ledger.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds network settings for the remote REST backend.
type Adapter struct {
	// BaseURL is the HTTP endpoint of the remote backend
	// (e.g. "https://api.example.com").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Token is the bearer token attached to every authenticated request.
	// Token acquisition and refresh are handled outside this client; a 401
	// or 403 response is the signal that re-authentication is required.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout is the default timeout for a single outbound request
	// (e.g. "15s"). The run-level sync timeout is configured separately in
	// [Workers].
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for the background sync scheduler and runner.
type Workers struct {
	// SyncEvery is the periodic sync cadence (e.g. "15m").
	// Env: WORKERS_SYNC_EVERY
	SyncEvery time.Duration `env:"SYNC_EVERY"`

	// SyncFlex is the flex window applied to the periodic cadence; the job
	// fires anywhere inside [SyncEvery-SyncFlex, SyncEvery].
	// Env: WORKERS_SYNC_FLEX
	SyncFlex time.Duration `env:"SYNC_FLEX"`

	// MutationDelay is the startup delay of the coalescing sync job scheduled
	// after a local edit (e.g. "5m").
	// Env: WORKERS_MUTATION_DELAY
	MutationDelay time.Duration `env:"MUTATION_DELAY"`

	// JobTimeout is the hard ceiling on a single full-sync run (e.g. "60s").
	// Env: WORKERS_JOB_TIMEOUT
	JobTimeout time.Duration `env:"JOB_TIMEOUT"`

	// BackoffBase is the initial retry delay for failed sync jobs.
	// Env: WORKERS_BACKOFF_BASE
	BackoffBase time.Duration `env:"BACKOFF_BASE"`

	// BackoffCap bounds the exponential retry delay.
	// Env: WORKERS_BACKOFF_CAP
	BackoffCap time.Duration `env:"BACKOFF_CAP"`

	// MaxAttempts bounds how many times a retryable sync job is re-run
	// before the failure becomes terminal.
	// Env: WORKERS_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// UploadBatchSize is the fixed size of sequential upload batches.
	// Env: WORKERS_UPLOAD_BATCH_SIZE
	UploadBatchSize int `env:"UPLOAD_BATCH_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
