// Package workers provides the background job machinery of the client: a
// named in-memory job queue with uniqueness and constraint gating, a sync job
// runner with outcome classification, and the scheduler that maps application
// triggers onto queued jobs.
package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

// Outcome is the result a job run reports back to the queue. OutcomeRetry
// asks for another attempt under the job's backoff policy; OutcomeFailure is
// terminal and the job is dropped.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeRetry
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeRetry:
		return "retry"
	case OutcomeFailure:
		return "failure"
	}
	return "unknown"
}

// Uniqueness controls what happens when a job is enqueued under a name that
// already has a pending instance.
type Uniqueness int

const (
	// UniquenessReplace cancels the pending instance and schedules the new one.
	UniquenessReplace Uniqueness = iota
	// UniquenessKeep leaves the pending instance in place and drops the new one.
	UniquenessKeep
)

// Constraints gate the start of a job run. A job whose constraints are not
// met waits; it is released once they are satisfied.
type Constraints struct {
	RequiresNetwork       bool
	RequiresBatteryNotLow bool
}

// Backoff bounds the retry schedule of a retryable job.
type Backoff struct {
	// Base is the first retry delay; subsequent delays grow exponentially.
	Base time.Duration
	// Cap bounds a single delay.
	Cap time.Duration
	// MaxAttempts is the total number of attempts including the first.
	MaxAttempts int
}

// JobSpec describes one schedulable unit of work.
type JobSpec struct {
	Name        string
	Uniqueness  Uniqueness
	Constraints Constraints
	// Delay postpones the first run of a one-shot job.
	Delay time.Duration
	// Every makes the job periodic when positive; the job reschedules itself
	// after each run completes.
	Every time.Duration
	// Flex widens the periodic window: each occurrence fires at a random
	// point within [Every-Flex, Every].
	Flex    time.Duration
	Backoff Backoff
	Params  models.SyncJobParams
}

// Periodic reports whether the job reschedules itself after completion.
func (s JobSpec) Periodic() bool {
	return s.Every > 0
}

// JobRunner executes one attempt of a job and classifies the result.
type JobRunner interface {
	Run(ctx context.Context, params models.SyncJobParams) Outcome
}

// JobQueue accepts job specs and drives them to completion honouring
// uniqueness, delays, constraints, retries and periodic rescheduling.
type JobQueue interface {
	Enqueue(spec JobSpec)
	// Stop cancels pending timers and waits for active runs to finish.
	Stop()
}

// ConnectivityMonitor reports whether the backend is reachable and announces
// transitions back to an online state.
type ConnectivityMonitor interface {
	Online() bool
	// Subscribe delivers a signal each time connectivity is restored. The
	// returned cancel function releases the subscription.
	Subscribe() (<-chan struct{}, func())
}

// PowerMonitor reports the host power state. Desktop builds return a
// permanently healthy battery; the interface exists for hosts that do not.
type PowerMonitor interface {
	BatteryLow() bool
}
