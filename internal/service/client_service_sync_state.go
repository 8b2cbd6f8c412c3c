package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

// runStateFeed is the owned state machine behind the observable sync state.
// The orchestrator is the single writer; any number of subscribers read.
// Subscriber channels hold one pending value; a newer transition replaces an
// unread one, so slow readers always observe the latest state.
type runStateFeed struct {
	mu    sync.RWMutex
	state models.SyncRunState
	subs  map[int]chan models.SyncRunState
	next  int
}

func newRunStateFeed() *runStateFeed {
	return &runStateFeed{
		state: models.SyncRunState{Phase: models.RunIdle, ChangedAt: time.Now()},
		subs:  make(map[int]chan models.SyncRunState),
	}
}

func (f *runStateFeed) snapshot() models.SyncRunState {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

func (f *runStateFeed) subscribe() (<-chan models.SyncRunState, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.next
	f.next++
	ch := make(chan models.SyncRunState, 1)
	f.subs[id] = ch

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if sub, ok := f.subs[id]; ok {
			delete(f.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (f *runStateFeed) publish(phase models.RunPhase, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state = models.SyncRunState{Phase: phase, ChangedAt: time.Now()}
	if err != nil {
		f.state.LastError = err.Error()
	}

	for _, ch := range f.subs {
		select {
		case <-ch:
		default:
		}
		ch <- f.state
	}
}
