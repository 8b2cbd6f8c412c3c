package config

import (
	"fmt"
	"time"
)

// Default values applied by [GetClientConfig] when a field is left unset by
// every configuration source.
const (
	DefaultRequestTimeout  = 15 * time.Second
	DefaultSyncEvery       = 15 * time.Minute
	DefaultSyncFlex        = 5 * time.Minute
	DefaultMutationDelay   = 5 * time.Minute
	DefaultJobTimeout      = 60 * time.Second
	DefaultBackoffBase     = 30 * time.Second
	DefaultBackoffCap      = 10 * time.Minute
	DefaultMaxAttempts     = 3
	DefaultUploadBatchSize = 20
)

// ClientApp holds client application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the client version string.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the remote backend endpoint used by the client.
	BaseURL string
	// Token is the bearer token attached to outbound requests.
	Token string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncEvery defines the periodic sync cadence.
	SyncEvery time.Duration
	// SyncFlex is the flex window applied to SyncEvery.
	SyncFlex time.Duration
	// MutationDelay is the coalescing delay after a local edit.
	MutationDelay time.Duration
	// JobTimeout is the hard ceiling on a single sync run.
	JobTimeout time.Duration
	// BackoffBase is the initial retry delay for failed sync jobs.
	BackoffBase time.Duration
	// BackoffCap bounds the exponential retry delay.
	BackoffCap time.Duration
	// MaxAttempts bounds retries of a retryable sync job.
	MaxAttempts int
	// UploadBatchSize is the fixed size of sequential upload batches.
	UploadBatchSize int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies defaults for unset durations and
// limits, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			Token:          cfg.Adapter.Token,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			SyncEvery:       cfg.Workers.SyncEvery,
			SyncFlex:        cfg.Workers.SyncFlex,
			MutationDelay:   cfg.Workers.MutationDelay,
			JobTimeout:      cfg.Workers.JobTimeout,
			BackoffBase:     cfg.Workers.BackoffBase,
			BackoffCap:      cfg.Workers.BackoffCap,
			MaxAttempts:     cfg.Workers.MaxAttempts,
			UploadBatchSize: cfg.Workers.UploadBatchSize,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.SyncEvery == 0 {
		cfg.Workers.SyncEvery = DefaultSyncEvery
	}
	if cfg.Workers.SyncFlex == 0 {
		cfg.Workers.SyncFlex = DefaultSyncFlex
	}
	if cfg.Workers.MutationDelay == 0 {
		cfg.Workers.MutationDelay = DefaultMutationDelay
	}
	if cfg.Workers.JobTimeout == 0 {
		cfg.Workers.JobTimeout = DefaultJobTimeout
	}
	if cfg.Workers.BackoffBase == 0 {
		cfg.Workers.BackoffBase = DefaultBackoffBase
	}
	if cfg.Workers.BackoffCap == 0 {
		cfg.Workers.BackoffCap = DefaultBackoffCap
	}
	if cfg.Workers.MaxAttempts == 0 {
		cfg.Workers.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Workers.UploadBatchSize == 0 {
		cfg.Workers.UploadBatchSize = DefaultUploadBatchSize
	}
}
