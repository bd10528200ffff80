package health

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type fakeChecker struct {
	name    string
	healthy atomic.Int32
}

func (f *fakeChecker) Name() string                               { return f.name }
func (f *fakeChecker) IsHealthy() bool                            { return f.healthy.Load() == 1 }
func (f *fakeChecker) Start(ctx context.Context, _ time.Duration) {}

func TestMonitorTransitions(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := &fakeChecker{name: "store"}
	store.healthy.Store(1)

	m := NewMonitor(zerolog.Nop(), store)
	go m.Start(ctx, 10*time.Millisecond)

	waitTrue(t, func() bool { return m.IsHealthy() })

	store.healthy.Store(0)
	waitTrue(t, func() bool { return !m.IsHealthy() })
	assert.False(t, m.LastChange().IsZero())

	store.healthy.Store(1)
	waitTrue(t, func() bool { return m.IsHealthy() })
}

func TestMonitorSnapshot(t *testing.T) {
	store := &fakeChecker{name: "store"}
	store.healthy.Store(1)
	gh := &fakeChecker{name: "github"}

	m := NewMonitor(zerolog.Nop(), store, gh)
	snap := m.Snapshot()

	assert.Len(t, snap, 2)
	assert.Equal(t, "store", snap[0].Name)
	assert.True(t, snap[0].Healthy)
	assert.False(t, snap[1].Healthy)
}

func waitTrue(t *testing.T, pred func() bool) {
	t.Helper()
	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		if pred() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met before timeout")
}
