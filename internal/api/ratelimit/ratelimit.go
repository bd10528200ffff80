// Package ratelimit provides a per-client token-bucket limiter for the
// credential endpoints. Registration and login are keyed by remote IP
// because both run before any token is presented.
package ratelimit

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/devlink/devlink/internal/api/respond"
)

const cleanupInterval = 5 * time.Minute

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// Limiter tracks one token bucket per client IP. Stale entries are
// reaped in the background; call Stop to end the reaper.
type Limiter struct {
	limit rate.Limit
	burst int
	log   zerolog.Logger

	mu      sync.Mutex
	clients map[string]*clientLimiter

	stopCh chan struct{}
}

// New creates a Limiter allowing perMinute requests per client IP.
func New(perMinute int, log zerolog.Logger) *Limiter {
	l := &Limiter{
		limit:   rate.Limit(float64(perMinute) / 60.0),
		burst:   perMinute,
		log:     log,
		clients: make(map[string]*clientLimiter),
		stopCh:  make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Stop ends the background cleanup goroutine.
func (l *Limiter) Stop() {
	close(l.stopCh)
}

// Middleware rejects requests over the per-IP budget with 429 and a
// Retry-After estimate of the next token refill.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !l.allow(ip) {
			retryAfter := int(math.Ceil(1.0 / float64(l.limit)))
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			respond.WriteMsg(w, http.StatusTooManyRequests, "Too many requests, please try again later")
			l.log.Warn().Str("ip", ip).Str("path", r.URL.Path).Msg("rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientCount reports the number of tracked client buckets.
func (l *Limiter) ClientCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func (l *Limiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cl, ok := l.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = cl
	}
	cl.lastAccess = time.Now()
	return cl.limiter.Allow()
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup()
		case <-l.stopCh:
			return
		}
	}
}

func (l *Limiter) cleanup() {
	ttl := 2 * cleanupInterval
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, cl := range l.clients {
		if now.Sub(cl.lastAccess) > ttl {
			delete(l.clients, ip)
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
