// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// Job names under which sync work is queued. Uniqueness is scoped per name,
// so an immediate sync never displaces the periodic schedule.
const (
	jobSyncNow       = "sync:now"
	jobSyncPeriodic  = "sync:periodic"
	jobSyncCoalesced = "sync:coalesced"
	jobSyncOffline   = "sync:offline"
)

// SyncScheduler maps application triggers onto queued sync jobs. It also
// implements [service.MutationListener] so the ledger service can nudge it
// after every local write.
type SyncScheduler struct {
	queue        JobQueue
	connectivity ConnectivityMonitor
	cfg          config.ClientWorkers
	logger       *logger.Logger
}

func NewSyncScheduler(queue JobQueue, connectivity ConnectivityMonitor, cfg config.ClientWorkers, logger *logger.Logger) *SyncScheduler {
	return &SyncScheduler{
		queue:        queue,
		connectivity: connectivity,
		cfg:          cfg,
		logger:       logger,
	}
}

// OnLogin queues an immediate full sync. A repeated login replaces a not yet
// started one.
func (s *SyncScheduler) OnLogin() {
	s.queue.Enqueue(JobSpec{
		Name:        jobSyncNow,
		Uniqueness:  UniquenessReplace,
		Constraints: Constraints{RequiresNetwork: true},
		Backoff:     s.backoff(),
		Params:      models.SyncJobParams{SyncType: models.SyncTypeFull},
	})
}

// OnLocalMutation implements the mutation listener. Edits are coalesced: each
// new edit replaces the pending delayed sync, so a burst of edits produces a
// single run MutationDelay after the last one. An edit made offline
// additionally queues a network-gated sync that fires as soon as
// connectivity returns.
func (s *SyncScheduler) OnLocalMutation() {
	s.queue.Enqueue(JobSpec{
		Name:        jobSyncCoalesced,
		Uniqueness:  UniquenessReplace,
		Constraints: Constraints{RequiresNetwork: true},
		Delay:       s.cfg.MutationDelay,
		Backoff:     s.backoff(),
		Params:      models.SyncJobParams{SyncType: models.SyncTypeUploadOnly},
	})

	if !s.connectivity.Online() {
		s.QueueWhileOffline()
	}
}

// EnsurePeriodic installs the recurring background sync. UniquenessKeep makes
// the call idempotent: an already scheduled occurrence is preserved.
func (s *SyncScheduler) EnsurePeriodic() {
	s.queue.Enqueue(JobSpec{
		Name:       jobSyncPeriodic,
		Uniqueness: UniquenessKeep,
		Constraints: Constraints{
			RequiresNetwork:       true,
			RequiresBatteryNotLow: true,
		},
		Every:   s.cfg.SyncEvery,
		Flex:    s.cfg.SyncFlex,
		Backoff: s.backoff(),
		Params:  models.SyncJobParams{SyncType: models.SyncTypeFull},
	})
}

// QueueWhileOffline queues a zero-delay sync gated on connectivity. The queue
// parks it until the connectivity monitor reports the backend reachable
// again.
func (s *SyncScheduler) QueueWhileOffline() {
	s.queue.Enqueue(JobSpec{
		Name:        jobSyncOffline,
		Uniqueness:  UniquenessReplace,
		Constraints: Constraints{RequiresNetwork: true},
		Backoff:     s.backoff(),
		Params: models.SyncJobParams{
			SyncType:      models.SyncTypeFull,
			OfflineQueued: true,
		},
	})
}

func (s *SyncScheduler) backoff() Backoff {
	return Backoff{
		Base:        s.cfg.BackoffBase,
		Cap:         s.cfg.BackoffCap,
		MaxAttempts: s.cfg.MaxAttempts,
	}
}
