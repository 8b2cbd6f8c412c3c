// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the client-facing view is validated in
// [ClientConfig.validate] after defaults have been applied.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncEvery == 0 || cfg.Workers.SyncFlex >= cfg.Workers.SyncEvery {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Workers.JobTimeout == 0 || cfg.Workers.MaxAttempts <= 0 || cfg.Workers.UploadBatchSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
