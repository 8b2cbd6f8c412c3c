// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/adapter"
	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/internal/workers"
)

// connectivityProbeInterval is how often the backend reachability probe runs.
const connectivityProbeInterval = 30 * time.Second

// App wires the client runtime: services, the backend adapter and the
// background sync machinery, and runs until interrupted.
type App struct {
	services  *service.ClientServices
	backend   adapter.BackendAdapter
	queue     workers.JobQueue
	scheduler *workers.SyncScheduler
	logger    *logger.Logger
}

func NewApp(services *service.ClientServices, backend adapter.BackendAdapter, adapterCfg config.ClientAdapter, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	connectivity := workers.NewProbeConnectivityMonitor(
		workers.NewTCPProbe(adapterCfg.BaseURL),
		connectivityProbeInterval,
	)
	runner := workers.NewSyncJobRunner(services.Sync, backend, workersCfg.JobTimeout, log)
	queue := workers.NewJobQueue(runner, connectivity, workers.NewPluggedInPowerMonitor(), log)
	scheduler := workers.NewSyncScheduler(queue, connectivity, workersCfg, log)

	// every local edit nudges the scheduler into a coalesced sync
	services.Ledger.SetMutationListener(scheduler)

	return &App{
		services:  services,
		backend:   backend,
		queue:     queue,
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// Run starts the sync schedule and blocks until SIGINT or SIGTERM. Pending
// jobs are cancelled on shutdown; an active sync run finishes its record.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(a.logger.WithContext(context.Background()))
	defer cancel()

	go a.logSyncTransitions(ctx)

	if _, ok := a.backend.CurrentUserID(); ok {
		a.scheduler.OnLogin()
	} else {
		a.logger.Warn().Msg("no bearer token configured; sync stays idle until one is provided")
	}
	a.scheduler.EnsurePeriodic()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	a.logger.Info().Msg("shutting down")
	a.queue.Stop()

	return nil
}

func (a *App) logSyncTransitions(ctx context.Context) {
	states, unsubscribe := a.services.Sync.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-states:
			if !ok {
				return
			}
			event := a.logger.Debug()
			if state.LastError != "" {
				event = a.logger.Warn().Str("last_error", state.LastError)
			}
			event.Str("phase", string(state.Phase)).Msg("sync state changed")
		}
	}
}
