package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a remote backend base URL
//	-d local database path
//	-t bearer token for the remote backend
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "15s")
//	-sync-every periodic sync cadence (e.g., "15m")
//	-sync-flex periodic flex window (e.g., "5m")
//	-mutation-delay coalescing delay after a local edit (e.g., "5m")
//	-job-timeout hard ceiling on one sync run (e.g., "60s")
func ParseFlags() *StructuredConfig {
	var baseURL string
	var databaseDSN string
	var token string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var syncEvery time.Duration
	var syncFlex time.Duration
	var mutationDelay time.Duration
	var jobTimeout time.Duration

	flag.StringVar(&baseURL, "a", "", "Remote backend base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&token, "t", "", "Bearer token")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.DurationVar(&syncEvery, "sync-every", 0, "Periodic sync cadence (e.g., 15m)")
	flag.DurationVar(&syncFlex, "sync-flex", 0, "Periodic sync flex window (e.g., 5m)")
	flag.DurationVar(&mutationDelay, "mutation-delay", 0, "Delay before syncing after a local edit (e.g., 5m)")
	flag.DurationVar(&jobTimeout, "job-timeout", 0, "Hard ceiling on one sync run (e.g., 60s)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			Token:          token,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncEvery:     syncEvery,
			SyncFlex:      syncFlex,
			MutationDelay: mutationDelay,
			JobTimeout:    jobTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
