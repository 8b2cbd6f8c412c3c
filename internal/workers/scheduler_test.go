package workers

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

type captureQueue struct {
	mu    sync.Mutex
	specs []JobSpec
}

func (q *captureQueue) Enqueue(spec JobSpec) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.specs = append(q.specs, spec)
}

func (q *captureQueue) Stop() {}

func (q *captureQueue) captured() []JobSpec {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]JobSpec(nil), q.specs...)
}

func testWorkersConfig() config.ClientWorkers {
	return config.ClientWorkers{
		SyncEvery:       15 * time.Minute,
		SyncFlex:        5 * time.Minute,
		MutationDelay:   5 * time.Minute,
		JobTimeout:      time.Minute,
		BackoffBase:     30 * time.Second,
		BackoffCap:      10 * time.Minute,
		MaxAttempts:     3,
		UploadBatchSize: 20,
	}
}

func newTestScheduler(conn *fakeConnectivity) (*SyncScheduler, *captureQueue) {
	queue := &captureQueue{}
	return NewSyncScheduler(queue, conn, testWorkersConfig(), logger.Nop()), queue
}

func TestSyncScheduler_OnLogin(t *testing.T) {
	s, queue := newTestScheduler(&fakeConnectivity{online: true})

	s.OnLogin()

	specs := queue.captured()
	require.Len(t, specs, 1)
	spec := specs[0]
	assert.Equal(t, "sync:now", spec.Name)
	assert.Equal(t, UniquenessReplace, spec.Uniqueness)
	assert.True(t, spec.Constraints.RequiresNetwork)
	assert.Zero(t, spec.Delay)
	assert.False(t, spec.Periodic())
	assert.Equal(t, models.SyncTypeFull, spec.Params.SyncType)
	assert.Equal(t, 3, spec.Backoff.MaxAttempts)
}

func TestSyncScheduler_OnLocalMutation_Online(t *testing.T) {
	s, queue := newTestScheduler(&fakeConnectivity{online: true})

	s.OnLocalMutation()

	specs := queue.captured()
	require.Len(t, specs, 1)
	spec := specs[0]
	assert.Equal(t, "sync:coalesced", spec.Name)
	assert.Equal(t, UniquenessReplace, spec.Uniqueness, "a newer edit replaces the pending sync")
	assert.Equal(t, 5*time.Minute, spec.Delay)
	assert.Equal(t, models.SyncTypeUploadOnly, spec.Params.SyncType)
}

func TestSyncScheduler_OnLocalMutation_OfflineAlsoQueuesGatedSync(t *testing.T) {
	s, queue := newTestScheduler(&fakeConnectivity{online: false})

	s.OnLocalMutation()

	specs := queue.captured()
	require.Len(t, specs, 2)
	assert.Equal(t, "sync:coalesced", specs[0].Name)

	offline := specs[1]
	assert.Equal(t, "sync:offline", offline.Name)
	assert.True(t, offline.Constraints.RequiresNetwork)
	assert.Zero(t, offline.Delay)
	assert.True(t, offline.Params.OfflineQueued)
}

func TestSyncScheduler_EnsurePeriodic(t *testing.T) {
	s, queue := newTestScheduler(&fakeConnectivity{online: true})

	s.EnsurePeriodic()
	s.EnsurePeriodic()

	specs := queue.captured()
	require.Len(t, specs, 2)
	for _, spec := range specs {
		assert.Equal(t, "sync:periodic", spec.Name)
		assert.Equal(t, UniquenessKeep, spec.Uniqueness, "re-installing must not reset the schedule")
		assert.Equal(t, 15*time.Minute, spec.Every)
		assert.Equal(t, 5*time.Minute, spec.Flex)
		assert.True(t, spec.Constraints.RequiresNetwork)
		assert.True(t, spec.Constraints.RequiresBatteryNotLow)
	}
}
