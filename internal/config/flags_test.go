package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "https://api.example.com",
				"-d", "/home/user/.ledger/ledger.db",
				"-t", "sometoken",
				"-c", "/path/to/config.json",
				"-request-timeout", "30s",
				"-sync-every", "15m",
				"-sync-flex", "5m",
				"-mutation-delay", "5m",
				"-job-timeout", "60s",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "https://api.example.com", cfg.Adapter.BaseURL)
				assert.Equal(t, "/home/user/.ledger/ledger.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "sometoken", cfg.Adapter.Token)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
				assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, 15*time.Minute, cfg.Workers.SyncEvery)
				assert.Equal(t, 5*time.Minute, cfg.Workers.SyncFlex)
				assert.Equal(t, 5*time.Minute, cfg.Workers.MutationDelay)
				assert.Equal(t, time.Minute, cfg.Workers.JobTimeout)
			},
		},
		{
			name: "config alias flag",
			args: []string{
				"-config", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "partial flags",
			args: []string{
				"-a", "http://127.0.0.1:3000",
				"-sync-every", "1h",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "http://127.0.0.1:3000", cfg.Adapter.BaseURL)
				assert.Equal(t, time.Hour, cfg.Workers.SyncEvery)
				assert.Empty(t, cfg.Adapter.Token)
				assert.Empty(t, cfg.Storage.DB.DSN)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.Adapter.BaseURL)
				assert.Empty(t, cfg.Adapter.Token)
				assert.Empty(t, cfg.Storage.DB.DSN)
				assert.Empty(t, cfg.JSONFilePath)
				assert.Zero(t, cfg.Workers.SyncEvery)
				assert.Zero(t, cfg.Workers.JobTimeout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flag.CommandLine for each test
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			// Set os.Args to simulate command line arguments
			oldArgs := os.Args
			os.Args = append([]string{"cmd"}, tt.args...)
			defer func() { os.Args = oldArgs }()

			cfg := ParseFlags()
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}
