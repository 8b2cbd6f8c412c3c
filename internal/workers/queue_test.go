// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// recordingRunner — стаб JobRunner, mockgen не нужен (избегаем цикл импортов).
type recordingRunner struct {
	mu       sync.Mutex
	outcomes []Outcome
	runs     []models.SyncJobParams
}

func (r *recordingRunner) Run(_ context.Context, params models.SyncJobParams) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.runs = append(r.runs, params)
	if len(r.outcomes) == 0 {
		return OutcomeSuccess
	}
	out := r.outcomes[0]
	r.outcomes = r.outcomes[1:]
	return out
}

func (r *recordingRunner) runCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.runs)
}

func (r *recordingRunner) lastParams() models.SyncJobParams {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.runs) == 0 {
		return models.SyncJobParams{}
	}
	return r.runs[len(r.runs)-1]
}

type fakeConnectivity struct {
	mu     sync.Mutex
	online bool
	subs   []chan struct{}
}

func (c *fakeConnectivity) Online() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.online
}

func (c *fakeConnectivity) Subscribe() (<-chan struct{}, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan struct{}, 1)
	c.subs = append(c.subs, ch)
	return ch, func() {}
}

func (c *fakeConnectivity) restore() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.online = true
	for _, ch := range c.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

type fakePower struct {
	low atomic.Bool
}

func (p *fakePower) BatteryLow() bool { return p.low.Load() }

func newTestQueue(t *testing.T, runner JobRunner, conn ConnectivityMonitor) JobQueue {
	t.Helper()
	q := NewJobQueue(runner, conn, &fakePower{}, logger.Nop())
	t.Cleanup(q.Stop)
	return q
}

// waitFor poll-ждёт условие, чтобы не зависеть от точных таймингов.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(2 * time.Millisecond)
	}
	return cond()
}

func TestJobQueue_EnqueueRunsJob(t *testing.T) {
	runner := &recordingRunner{}
	q := newTestQueue(t, runner, &fakeConnectivity{online: true})

	q.Enqueue(JobSpec{
		Name:   "sync:test",
		Params: models.SyncJobParams{SyncType: models.SyncTypeFull},
	})

	require.True(t, waitFor(t, time.Second, func() bool { return runner.runCount() == 1 }))
	assert.Equal(t, models.SyncTypeFull, runner.lastParams().SyncType)
}

func TestJobQueue_ReplaceDisplacesPending(t *testing.T) {
	runner := &recordingRunner{}
	q := newTestQueue(t, runner, &fakeConnectivity{online: true})

	q.Enqueue(JobSpec{
		Name:       "sync:test",
		Uniqueness: UniquenessReplace,
		Delay:      time.Hour, // would never fire in this test
		Params:     models.SyncJobParams{SyncType: models.SyncTypeUploadOnly},
	})
	q.Enqueue(JobSpec{
		Name:       "sync:test",
		Uniqueness: UniquenessReplace,
		Delay:      5 * time.Millisecond,
		Params:     models.SyncJobParams{SyncType: models.SyncTypeFull},
	})

	require.True(t, waitFor(t, time.Second, func() bool { return runner.runCount() == 1 }))
	assert.Equal(t, models.SyncTypeFull, runner.lastParams().SyncType)

	// the displaced hour-long instance must not fire later
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, runner.runCount())
}

func TestJobQueue_KeepPreservesPending(t *testing.T) {
	runner := &recordingRunner{}
	q := newTestQueue(t, runner, &fakeConnectivity{online: true})

	q.Enqueue(JobSpec{
		Name:       "sync:test",
		Uniqueness: UniquenessKeep,
		Delay:      20 * time.Millisecond,
		Params:     models.SyncJobParams{SyncType: models.SyncTypeFull},
	})
	q.Enqueue(JobSpec{
		Name:       "sync:test",
		Uniqueness: UniquenessKeep,
		Delay:      time.Millisecond,
		Params:     models.SyncJobParams{SyncType: models.SyncTypeDownloadOnly},
	})

	require.True(t, waitFor(t, time.Second, func() bool { return runner.runCount() == 1 }))
	// the first enqueued instance survived, the second was dropped
	assert.Equal(t, models.SyncTypeFull, runner.lastParams().SyncType)
}

func TestJobQueue_NetworkGatedJobParksUntilRestored(t *testing.T) {
	runner := &recordingRunner{}
	conn := &fakeConnectivity{online: false}
	q := newTestQueue(t, runner, conn)

	q.Enqueue(JobSpec{
		Name:        "sync:offline",
		Constraints: Constraints{RequiresNetwork: true},
		Params:      models.SyncJobParams{OfflineQueued: true},
	})

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, runner.runCount(), "job must not run while offline")

	conn.restore()

	require.True(t, waitFor(t, time.Second, func() bool { return runner.runCount() == 1 }))
	assert.True(t, runner.lastParams().OfflineQueued)
}

func TestJobQueue_RetryOutcomeRetriesWithBackoff(t *testing.T) {
	runner := &recordingRunner{outcomes: []Outcome{OutcomeRetry, OutcomeRetry, OutcomeSuccess}}
	q := newTestQueue(t, runner, &fakeConnectivity{online: true})

	q.Enqueue(JobSpec{
		Name:    "sync:test",
		Backoff: Backoff{Base: time.Millisecond, Cap: 5 * time.Millisecond, MaxAttempts: 5},
	})

	require.True(t, waitFor(t, time.Second, func() bool { return runner.runCount() == 3 }))
}

func TestJobQueue_RetryStopsAtMaxAttempts(t *testing.T) {
	runner := &recordingRunner{outcomes: []Outcome{OutcomeRetry, OutcomeRetry, OutcomeRetry, OutcomeRetry}}
	q := newTestQueue(t, runner, &fakeConnectivity{online: true})

	q.Enqueue(JobSpec{
		Name:    "sync:test",
		Backoff: Backoff{Base: time.Millisecond, MaxAttempts: 3},
	})

	require.True(t, waitFor(t, time.Second, func() bool { return runner.runCount() == 3 }))
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 3, runner.runCount())
}

func TestJobQueue_TerminalFailureDoesNotRetry(t *testing.T) {
	runner := &recordingRunner{outcomes: []Outcome{OutcomeFailure}}
	q := newTestQueue(t, runner, &fakeConnectivity{online: true})

	q.Enqueue(JobSpec{
		Name:    "sync:test",
		Backoff: Backoff{Base: time.Millisecond, MaxAttempts: 5},
	})

	require.True(t, waitFor(t, time.Second, func() bool { return runner.runCount() == 1 }))
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, runner.runCount())
}

func TestJobQueue_PeriodicJobReschedules(t *testing.T) {
	runner := &recordingRunner{}
	q := newTestQueue(t, runner, &fakeConnectivity{online: true})

	q.Enqueue(JobSpec{
		Name:  "sync:periodic",
		Every: 10 * time.Millisecond,
	})

	require.True(t, waitFor(t, 2*time.Second, func() bool { return runner.runCount() >= 3 }))
}

func TestJobQueue_BatteryLowDefersJob(t *testing.T) {
	runner := &recordingRunner{}
	power := &fakePower{}
	power.low.Store(true)

	q := NewJobQueue(runner, &fakeConnectivity{online: true}, power, logger.Nop())
	t.Cleanup(q.Stop)

	q.Enqueue(JobSpec{
		Name:        "sync:periodic",
		Constraints: Constraints{RequiresBatteryNotLow: true},
	})

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, runner.runCount(), "job must wait for a healthy battery")
}

func TestJobQueue_StopCancelsPending(t *testing.T) {
	runner := &recordingRunner{}
	q := NewJobQueue(runner, &fakeConnectivity{online: true}, &fakePower{}, logger.Nop())

	q.Enqueue(JobSpec{Name: "sync:test", Delay: 50 * time.Millisecond})
	q.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, 0, runner.runCount())
}
