package workers

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger-keeper/internal/adapter"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// stubSyncService — стаб ClientSyncService для раннера.
type stubSyncService struct {
	err         error
	calls       atomic.Int32
	lastUserID  atomic.Int64
	hadDeadline atomic.Bool
	block       bool
}

func (s *stubSyncService) FullSync(ctx context.Context, userID int64) error {
	s.calls.Add(1)
	s.lastUserID.Store(userID)
	if _, ok := ctx.Deadline(); ok {
		s.hadDeadline.Store(true)
	}
	if s.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return s.err
}

func (s *stubSyncService) RunState() models.SyncRunState { return models.SyncRunState{} }

func (s *stubSyncService) Subscribe() (<-chan models.SyncRunState, func()) {
	ch := make(chan models.SyncRunState)
	return ch, func() {}
}

// staticIdentity — стаб IdentityProvider.
type staticIdentity struct {
	id int64
	ok bool
}

func (i staticIdentity) CurrentUserID() (int64, bool) { return i.id, i.ok }
func (i staticIdentity) SetToken(string)              {}
func (i staticIdentity) Token() string                { return "" }

func TestSyncJobRunner_NoUserIsSuccess(t *testing.T) {
	sync := &stubSyncService{}
	runner := NewSyncJobRunner(sync, staticIdentity{ok: false}, time.Second, logger.Nop())

	out := runner.Run(context.Background(), models.SyncJobParams{SyncType: models.SyncTypeFull})

	assert.Equal(t, OutcomeSuccess, out)
	assert.Equal(t, int32(0), sync.calls.Load(), "sync must not run without a user")
}

func TestSyncJobRunner_SuccessfulRun(t *testing.T) {
	sync := &stubSyncService{}
	runner := NewSyncJobRunner(sync, staticIdentity{id: 42, ok: true}, time.Second, logger.Nop())

	out := runner.Run(context.Background(), models.SyncJobParams{SyncType: models.SyncTypeFull, Notify: true})

	assert.Equal(t, OutcomeSuccess, out)
	assert.Equal(t, int64(42), sync.lastUserID.Load())
	assert.True(t, sync.hadDeadline.Load(), "every run must carry the hard timeout")
}

func TestSyncJobRunner_AuthErrorIsTerminal(t *testing.T) {
	sync := &stubSyncService{err: fmt.Errorf("upload categories: %w", adapter.ErrUnauthorized)}
	runner := NewSyncJobRunner(sync, staticIdentity{id: 42, ok: true}, time.Second, logger.Nop())

	out := runner.Run(context.Background(), models.SyncJobParams{SyncType: models.SyncTypeFull})

	assert.Equal(t, OutcomeFailure, out)
}

func TestSyncJobRunner_NetworkErrorIsRetryable(t *testing.T) {
	sync := &stubSyncService{err: errors.New("list remote categories: dial tcp: connection refused")}
	runner := NewSyncJobRunner(sync, staticIdentity{id: 42, ok: true}, time.Second, logger.Nop())

	out := runner.Run(context.Background(), models.SyncJobParams{SyncType: models.SyncTypeFull})

	assert.Equal(t, OutcomeRetry, out)
}

func TestSyncJobRunner_TimeoutCancelsRun(t *testing.T) {
	sync := &stubSyncService{block: true}
	runner := NewSyncJobRunner(sync, staticIdentity{id: 42, ok: true}, 10*time.Millisecond, logger.Nop())

	start := time.Now()
	out := runner.Run(context.Background(), models.SyncJobParams{SyncType: models.SyncTypeFull})

	require.Less(t, time.Since(start), time.Second)
	assert.Equal(t, OutcomeRetry, out, "a timed-out run is worth retrying")
}

func TestClassifySyncError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Outcome
	}{
		{"wrapped 401 sentinel", fmt.Errorf("x: %w", adapter.ErrUnauthorized), OutcomeFailure},
		{"wrapped 403 sentinel", fmt.Errorf("x: %w", adapter.ErrForbidden), OutcomeFailure},
		{"plain unauthorized text", errors.New("server said Unauthorized"), OutcomeFailure},
		{"plain 403 text", errors.New("http 403: nope"), OutcomeFailure},
		{"server error", &adapter.StatusError{Code: 500, Body: "boom"}, OutcomeRetry},
		{"timeout", context.DeadlineExceeded, OutcomeRetry},
		{"unknown", errors.New("weird"), OutcomeRetry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifySyncError(tt.err))
		})
	}
}
