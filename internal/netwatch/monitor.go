// SPDX-License-Identifier: Apache-2.0

// Package netwatch provides the live online/offline signal consumed by the
// background sync engine.
//
// The monitor holds the last known connectivity state and announces
// transitions to subscribers; the sync engine reads the state before starting
// a drain (an offline trigger is a safe no-op) and re-triggers on the
// offline-to-online transition.
package netwatch

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/meguri-app/meguri/internal/logger"
)

//go:generate mockgen -source=monitor.go -destination=../mock/net_signal_mock.go -package=mock

// Signal is the read-only view the sync engine depends on.
type Signal interface {
	Online() bool
}

// Monitor probes the server periodically and tracks connectivity state.
// The zero state is online: the first failed probe flips it.
type Monitor struct {
	probe    func(ctx context.Context) error
	interval time.Duration
	log      *logger.Logger

	online atomic.Bool

	mu     sync.Mutex
	nextID int64
	subs   map[int64]func(online bool)
}

// NewMonitor builds a monitor around probe (typically the adapter's Ping).
// interval <= 0 defaults to 30 seconds.
func NewMonitor(probe func(ctx context.Context) error, interval time.Duration, log *logger.Logger) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	m := &Monitor{
		probe:    probe,
		interval: interval,
		log:      log,
		subs:     make(map[int64]func(bool)),
	}
	m.online.Store(true)
	return m
}

// Online implements Signal.
func (m *Monitor) Online() bool {
	return m.online.Load()
}

// Subscribe registers fn for connectivity transitions. fn runs on the
// monitor's goroutine; keep it short. The returned function unsubscribes.
func (m *Monitor) Subscribe(fn func(online bool)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// SetOnline records a connectivity observation. Subscribers are notified only
// on a state transition. Exposed so the transport layer can report failures
// it observes between probes.
func (m *Monitor) SetOnline(online bool) {
	if m.online.Swap(online) == online {
		return
	}

	m.log.Debug().Bool("online", online).Msg("connectivity changed")

	m.mu.Lock()
	fns := make([]func(bool), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(online)
	}
}

// Start launches the probe loop. It returns immediately; the loop exits when
// ctx is cancelled.
func (m *Monitor) Start(ctx context.Context) {
	go func() {
		t := time.NewTicker(m.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				probeCtx, cancel := context.WithTimeout(ctx, m.interval)
				err := m.probe(probeCtx)
				cancel()

				m.SetOnline(err == nil)
			}
		}
	}()
}
