// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
)

var (
	errRunRetryable = errors.New("job run asked for retry")
	errRunFailed    = errors.New("job run failed terminally")
)

// batteryRecheckInterval is how long a battery-gated job waits before the
// power state is examined again.
const batteryRecheckInterval = time.Minute

type pendingJob struct {
	spec  JobSpec
	timer *time.Timer
}

// jobQueue is an in-memory job queue keyed by job name. Per name it holds at
// most one pending instance, at most one active run, and at most one parked
// instance waiting for its constraints.
type jobQueue struct {
	runner       JobRunner
	connectivity ConnectivityMonitor
	power        PowerMonitor
	logger       *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	pending  map[string]*pendingJob
	active   map[string]bool
	followup map[string]JobSpec
	waiting  map[string]JobSpec
}

func NewJobQueue(runner JobRunner, connectivity ConnectivityMonitor, power PowerMonitor, logger *logger.Logger) JobQueue {
	ctx, cancel := context.WithCancel(context.Background())
	q := &jobQueue{
		runner:       runner,
		connectivity: connectivity,
		power:        power,
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
		pending:      make(map[string]*pendingJob),
		active:       make(map[string]bool),
		followup:     make(map[string]JobSpec),
		waiting:      make(map[string]JobSpec),
	}

	q.wg.Add(1)
	go q.watchConnectivity()

	return q
}

// Enqueue implements [JobQueue]. Under UniquenessKeep an already pending or
// parked instance wins; under UniquenessReplace the new spec displaces it.
// An active run is never interrupted either way.
func (q *jobQueue) Enqueue(spec JobSpec) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.ctx.Err() != nil {
		return
	}

	if existing, ok := q.pending[spec.Name]; ok {
		if spec.Uniqueness == UniquenessKeep {
			return
		}
		existing.timer.Stop()
		delete(q.pending, spec.Name)
	}
	if _, ok := q.waiting[spec.Name]; ok {
		if spec.Uniqueness == UniquenessKeep {
			return
		}
		delete(q.waiting, spec.Name)
	}

	q.schedule(spec, q.startDelay(spec))
}

// Stop implements [JobQueue].
func (q *jobQueue) Stop() {
	q.cancel()

	q.mu.Lock()
	for name, p := range q.pending {
		p.timer.Stop()
		delete(q.pending, name)
	}
	q.mu.Unlock()

	q.wg.Wait()
}

func (q *jobQueue) startDelay(spec JobSpec) time.Duration {
	if spec.Periodic() && spec.Delay == 0 {
		return q.periodicDelay(spec)
	}
	return spec.Delay
}

// periodicDelay picks the next occurrence at a random point inside the flex
// window [Every-Flex, Every].
func (q *jobQueue) periodicDelay(spec JobSpec) time.Duration {
	flex := spec.Flex
	if flex <= 0 || flex >= spec.Every {
		return spec.Every
	}
	return spec.Every - flex + time.Duration(rand.Int63n(int64(flex)))
}

// schedule arms the pending timer for spec. Callers must hold q.mu.
func (q *jobQueue) schedule(spec JobSpec, delay time.Duration) {
	p := &pendingJob{spec: spec}
	p.timer = time.AfterFunc(delay, func() { q.fire(spec) })
	q.pending[spec.Name] = p
}

// fire moves a due job from pending into a run, or parks it when a
// constraint is unmet.
func (q *jobQueue) fire(spec JobSpec) {
	q.mu.Lock()
	delete(q.pending, spec.Name)

	if q.ctx.Err() != nil {
		q.mu.Unlock()
		return
	}

	if spec.Constraints.RequiresNetwork && !q.connectivity.Online() {
		q.waiting[spec.Name] = spec
		q.mu.Unlock()
		q.logger.Debug().Str("job", spec.Name).Msg("job parked until connectivity is restored")
		return
	}

	if spec.Constraints.RequiresBatteryNotLow && q.power.BatteryLow() {
		q.schedule(spec, batteryRecheckInterval)
		q.mu.Unlock()
		q.logger.Debug().Str("job", spec.Name).Msg("job deferred on low battery")
		return
	}

	if q.active[spec.Name] {
		// one run per name; the latest spec runs right after the active one
		q.followup[spec.Name] = spec
		q.mu.Unlock()
		return
	}

	q.active[spec.Name] = true
	q.wg.Add(1)
	q.mu.Unlock()

	go q.run(spec)
}

func (q *jobQueue) run(spec JobSpec) {
	defer q.wg.Done()

	log := q.logger.GetChildLogger().With().Str("job", spec.Name).Logger()

	err := retry.Do(q.ctx, q.backoff(spec.Backoff), func(ctx context.Context) error {
		switch q.runner.Run(ctx, spec.Params) {
		case OutcomeSuccess:
			return nil
		case OutcomeRetry:
			return retry.RetryableError(errRunRetryable)
		default:
			return errRunFailed
		}
	})
	if err != nil {
		log.Warn().Err(err).Msg("job gave up")
	} else {
		log.Debug().Msg("job finished")
	}

	q.finish(spec)
}

func (q *jobQueue) backoff(b Backoff) retry.Backoff {
	base := b.Base
	if base <= 0 {
		base = time.Second
	}

	backoff := retry.NewExponential(base)
	if b.Cap > 0 {
		backoff = retry.WithCappedDuration(b.Cap, backoff)
	}

	attempts := b.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return retry.WithMaxRetries(uint64(attempts-1), backoff)
}

func (q *jobQueue) finish(spec JobSpec) {
	q.mu.Lock()
	defer q.mu.Unlock()

	delete(q.active, spec.Name)
	if q.ctx.Err() != nil {
		return
	}

	if next, ok := q.followup[spec.Name]; ok {
		delete(q.followup, spec.Name)
		q.schedule(next, 0)
		return
	}

	if spec.Periodic() {
		if _, ok := q.pending[spec.Name]; !ok {
			q.schedule(spec, q.periodicDelay(spec))
		}
	}
}

func (q *jobQueue) watchConnectivity() {
	defer q.wg.Done()

	events, cancel := q.connectivity.Subscribe()
	defer cancel()

	for {
		select {
		case <-q.ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			q.releaseWaiting()
		}
	}
}

func (q *jobQueue) releaseWaiting() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for name, spec := range q.waiting {
		delete(q.waiting, name)
		q.schedule(spec, 0)
	}
}
