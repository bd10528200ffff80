package store

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/devlink/devlink/internal/health"
	"github.com/devlink/devlink/internal/model"
)

// HealthChecker monitors store reachability with periodic probes.
type HealthChecker struct {
	store        Store
	healthy      atomic.Int32
	log          zerolog.Logger
	probeTimeout time.Duration
}

// NewHealthChecker creates a store health checker. It reports unhealthy
// until the first successful probe.
func NewHealthChecker(s Store, log zerolog.Logger, probeTimeout time.Duration) *HealthChecker {
	hc := &HealthChecker{store: s, log: log, probeTimeout: probeTimeout}
	hc.healthy.Store(0)
	return hc
}

func (hc *HealthChecker) Name() string { return "store" }

// IsHealthy returns the cached status without blocking.
func (hc *HealthChecker) IsHealthy() bool { return hc.healthy.Load() == 1 }

// Start probes the store until ctx is cancelled.
func (hc *HealthChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	check := func() {
		to := hc.probeTimeout
		if to <= 0 {
			to = 2 * time.Second
		}
		probeCtx, cancel := context.WithTimeout(ctx, to)
		defer cancel()
		if hc.probe(probeCtx) {
			hc.healthy.Store(1)
		} else {
			hc.healthy.Store(0)
		}
	}

	check()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}

func (hc *HealthChecker) probe(ctx context.Context) bool {
	if p, ok := hc.store.(health.HealthPinger); ok {
		if err := p.HealthPing(ctx); err != nil {
			hc.log.Error().Stack().Str("checker", hc.Name()).Err(err).Msg("store health check failed")
			return false
		}
		return true
	}

	// Fallback: a read for a user that cannot exist. ErrNotFound means the
	// store answered, which is all the probe needs.
	_, err := hc.store.Users().Get(ctx, "__health_check__")
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		hc.log.Error().Stack().Str("checker", hc.Name()).Err(err).Msg("store health check failed")
		return false
	}
	return true
}
