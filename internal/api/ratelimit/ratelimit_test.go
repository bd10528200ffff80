package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiterAllowsWithinBudget(t *testing.T) {
	l := New(5, zerolog.Nop())
	defer l.Stop()

	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code, "request %d should pass", i)
	}
}

func TestLimiterRejectsOverBudget(t *testing.T) {
	l := New(2, zerolog.Nop())
	defer l.Stop()

	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/users", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	require.Equal(t, http.StatusOK, send("10.0.0.2:1234").Code)
	require.Equal(t, http.StatusOK, send("10.0.0.2:1234").Code)

	rr := send("10.0.0.2:1234")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))

	// A different client keeps its own bucket.
	assert.Equal(t, http.StatusOK, send("10.0.0.3:1234").Code)
	assert.Equal(t, 2, l.ClientCount())
}
