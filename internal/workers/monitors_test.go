package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeConnectivityMonitor_AnnouncesRestoration(t *testing.T) {
	var online atomic.Bool

	m := NewProbeConnectivityMonitor(func(context.Context) bool {
		return online.Load()
	}, 5*time.Millisecond)
	t.Cleanup(m.(*probeConnectivityMonitor).Stop)

	assert.False(t, m.Online())

	events, cancel := m.Subscribe()
	defer cancel()

	online.Store(true)

	select {
	case <-events:
	case <-time.After(time.Second):
		t.Fatal("no restoration event delivered")
	}
	assert.True(t, m.Online())
}

func TestProbeConnectivityMonitor_NoEventWhileStableOnline(t *testing.T) {
	m := NewProbeConnectivityMonitor(func(context.Context) bool { return true }, 5*time.Millisecond)
	t.Cleanup(m.(*probeConnectivityMonitor).Stop)

	events, cancel := m.Subscribe()
	defer cancel()

	select {
	case <-events:
		t.Fatal("stable online state must not produce events")
	case <-time.After(30 * time.Millisecond):
	}
}

func TestProbeAddress(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"explicit port", "http://localhost:8080", "localhost:8080"},
		{"default http port", "http://example.com", "example.com:80"},
		{"default https port", "https://example.com", "example.com:443"},
		{"empty", "", ""},
		{"no host", "http://", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, probeAddress(tt.url))
		})
	}
}

func TestPluggedInPowerMonitor(t *testing.T) {
	require.False(t, NewPluggedInPowerMonitor().BatteryLow())
}
