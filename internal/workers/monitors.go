package workers

import (
	"context"
	"net"
	"net/url"
	"sync"
	"time"
)

// probeConnectivityMonitor polls a reachability probe on a fixed interval and
// announces offline-to-online transitions to subscribers.
type probeConnectivityMonitor struct {
	probe    func(ctx context.Context) bool
	interval time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.RWMutex
	online bool
	subs   map[int]chan struct{}
	next   int
}

// NewProbeConnectivityMonitor starts a monitor around probe. The first probe
// runs synchronously so Online reflects reality from the start.
func NewProbeConnectivityMonitor(probe func(ctx context.Context) bool, interval time.Duration) ConnectivityMonitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &probeConnectivityMonitor{
		probe:    probe,
		interval: interval,
		cancel:   cancel,
		subs:     make(map[int]chan struct{}),
	}
	m.online = probe(ctx)

	m.wg.Add(1)
	go m.loop(ctx)

	return m
}

// Online implements [ConnectivityMonitor].
func (m *probeConnectivityMonitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// Subscribe implements [ConnectivityMonitor].
func (m *probeConnectivityMonitor) Subscribe() (<-chan struct{}, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.next
	m.next++
	ch := make(chan struct{}, 1)
	m.subs[id] = ch

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if sub, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Stop halts the polling loop. Subscriptions stay open but silent.
func (m *probeConnectivityMonitor) Stop() {
	m.cancel()
	m.wg.Wait()
}

func (m *probeConnectivityMonitor) loop(ctx context.Context) {
	defer m.wg.Done()

	t := time.NewTicker(m.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.observe(m.probe(ctx))
		}
	}
}

func (m *probeConnectivityMonitor) observe(online bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	restored := online && !m.online
	m.online = online
	if !restored {
		return
	}

	for _, ch := range m.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// NewTCPProbe builds a reachability probe that dials the host of baseURL.
// A successful TCP connect is taken as the backend being reachable; the
// request itself may still fail, which the sync run handles on its own.
func NewTCPProbe(baseURL string) func(ctx context.Context) bool {
	host := probeAddress(baseURL)

	return func(ctx context.Context) bool {
		if host == "" {
			return false
		}

		d := net.Dialer{Timeout: 3 * time.Second}
		conn, err := d.DialContext(ctx, "tcp", host)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}
}

func probeAddress(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return ""
	}

	if u.Port() != "" {
		return u.Host
	}

	port := "80"
	if u.Scheme == "https" {
		port = "443"
	}
	return net.JoinHostPort(u.Hostname(), port)
}

// pluggedInPowerMonitor is the desktop power monitor: the battery is never
// low because there is no battery signal to read.
type pluggedInPowerMonitor struct{}

func NewPluggedInPowerMonitor() PowerMonitor {
	return pluggedInPowerMonitor{}
}

// BatteryLow implements [PowerMonitor].
func (pluggedInPowerMonitor) BatteryLow() bool {
	return false
}
