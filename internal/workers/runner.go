// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/adapter"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// syncJobRunner adapts the sync orchestrator to the job queue. Every run is
// bounded by a hard timeout so a wedged network call cannot hold the queue.
type syncJobRunner struct {
	sync     service.ClientSyncService
	identity adapter.IdentityProvider
	timeout  time.Duration
	logger   *logger.Logger
}

func NewSyncJobRunner(sync service.ClientSyncService, identity adapter.IdentityProvider, timeout time.Duration, logger *logger.Logger) JobRunner {
	return &syncJobRunner{
		sync:     sync,
		identity: identity,
		timeout:  timeout,
		logger:   logger,
	}
}

// Run implements [JobRunner]. Upload-only and download-only requests are
// served by a full run: the phase order already puts uploads first, and an
// extra download after an upload is idempotent.
func (r *syncJobRunner) Run(ctx context.Context, params models.SyncJobParams) Outcome {
	log := r.logger.GetChildLogger().With().
		Str("func", "syncJobRunner.Run").
		Str("sync_type", string(params.SyncType)).
		Logger()

	userID, ok := r.identity.CurrentUserID()
	if !ok {
		// No session means nothing to sync. Reporting success keeps the
		// scheduler from burning retry attempts on a logged-out client.
		log.Debug().Msg("skipping sync run: no authenticated user")
		return OutcomeSuccess
	}

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	err := r.sync.FullSync(runCtx, userID)
	if err == nil {
		if params.Notify || params.OfflineQueued {
			log.Info().Int64("user_id", userID).Msg("sync run completed")
		}
		return OutcomeSuccess
	}

	outcome := classifySyncError(err)
	log.Warn().Err(err).
		Int64("user_id", userID).
		Str("outcome", outcome.String()).
		Msg("sync run failed")
	return outcome
}

// classifySyncError decides whether a failed run is worth retrying. Auth
// failures are terminal: retrying with the same rejected token cannot
// succeed. Everything else (network errors, timeouts, server errors) is
// transient.
func classifySyncError(err error) Outcome {
	if adapter.IsAuthError(err) {
		return OutcomeFailure
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "401") ||
		strings.Contains(msg, "403") ||
		strings.Contains(msg, "unauthorized") ||
		strings.Contains(msg, "forbidden") {
		return OutcomeFailure
	}

	return OutcomeRetry
}
