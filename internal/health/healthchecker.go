// Package health tracks liveness of the service's dependencies and
// caches an aggregate flag the HTTP health handlers read without
// touching the store on every probe.
package health

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Checker is implemented by component-level checkers (store, external APIs).
type Checker interface {
	Name() string
	IsHealthy() bool
	Start(ctx context.Context, interval time.Duration)
}

// ComponentStatus is one dependency's state in a Monitor snapshot.
type ComponentStatus struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
}

// Monitor aggregates component checkers into a single service flag and
// records when the flag last changed.
type Monitor struct {
	healthy atomic.Int32
	deps    []Checker
	log     zerolog.Logger

	mu         sync.Mutex
	lastChange time.Time
}

func NewMonitor(log zerolog.Logger, deps ...Checker) *Monitor {
	m := &Monitor{deps: deps, log: log}
	m.healthy.Store(0)
	return m
}

// IsHealthy returns the cached aggregate flag.
func (m *Monitor) IsHealthy() bool { return m.healthy.Load() == 1 }

// Snapshot reports per-component state for the readiness endpoint.
func (m *Monitor) Snapshot() []ComponentStatus {
	out := make([]ComponentStatus, 0, len(m.deps))
	for _, c := range m.deps {
		out = append(out, ComponentStatus{Name: c.Name(), Healthy: c.IsHealthy()})
	}
	return out
}

// Start re-evaluates dependency health on the given interval until ctx
// is cancelled. Transitions are logged once, not on every tick.
func (m *Monitor) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := int32(0)
	eval := func() {
		all := int32(1)
		for _, c := range m.deps {
			if !c.IsHealthy() {
				all = 0
			}
		}
		m.healthy.Store(all)
		if all != prev {
			m.mu.Lock()
			m.lastChange = time.Now().UTC()
			m.mu.Unlock()
			if all == 1 {
				m.log.Info().Msg("service health: UP")
			} else {
				m.log.Error().Msg("service health: DOWN")
			}
			prev = all
		}
	}

	eval()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			eval()
		}
	}
}

// LastChange reports when the aggregate flag last flipped. Zero until
// the first evaluation completes.
func (m *Monitor) LastChange() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastChange
}
