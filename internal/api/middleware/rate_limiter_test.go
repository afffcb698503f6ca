package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RideSlotService/pkg/logger"
)

func sendThrough(handler http.Handler, remoteAddr, forwarded string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	if forwarded != "" {
		req.Header.Set("X-Forwarded-For", forwarded)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Code
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRateLimiter_PerClient(t *testing.T) {
	handler := NewRateLimiter(1, 2, false, logger.NewNop()).Middleware(okHandler)

	assert.Equal(t, http.StatusOK, sendThrough(handler, "10.0.0.1:5000", ""))
	assert.Equal(t, http.StatusOK, sendThrough(handler, "10.0.0.1:5001", ""))
	assert.Equal(t, http.StatusTooManyRequests, sendThrough(handler, "10.0.0.1:5002", ""))

	// другой клиент имеет свой лимит
	assert.Equal(t, http.StatusOK, sendThrough(handler, "10.0.0.2:5000", ""))
}

func TestRateLimiter_IgnoresForwardedForByDefault(t *testing.T) {
	handler := NewRateLimiter(1, 1, false, logger.NewNop()).Middleware(okHandler)

	assert.Equal(t, http.StatusOK, sendThrough(handler, "10.0.0.1:5000", "192.168.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, sendThrough(handler, "10.0.0.1:5000", "192.168.1.2"))
	assert.Equal(t, http.StatusTooManyRequests, sendThrough(handler, "10.0.0.1:5000", "192.168.1.3"))
}

func TestRateLimiter_TrustedProxy(t *testing.T) {
	handler := NewRateLimiter(1, 1, true, logger.NewNop()).Middleware(okHandler)

	assert.Equal(t, http.StatusOK, sendThrough(handler, "10.0.0.1:5000", "192.168.1.7, 10.0.0.1"))
	assert.Equal(t, http.StatusOK, sendThrough(handler, "10.0.0.1:5000", "192.168.1.8"))
	assert.Equal(t, http.StatusTooManyRequests, sendThrough(handler, "10.0.0.1:5000", "192.168.1.7"))
}

func TestRateLimiter_Sweep(t *testing.T) {
	limiter := NewRateLimiter(1, 1, false, logger.NewNop())
	handler := limiter.Middleware(okHandler)

	sendThrough(handler, "10.0.0.1:5000", "")
	sendThrough(handler, "10.0.0.2:5000", "")
	assert.Equal(t, http.StatusTooManyRequests, sendThrough(handler, "10.0.0.1:5000", ""))

	assert.Zero(t, limiter.Sweep(time.Hour))
	assert.Equal(t, 2, limiter.Sweep(0))

	// после очистки клиент получает новый лимитер
	assert.Equal(t, http.StatusOK, sendThrough(handler, "10.0.0.1:5000", ""))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "172.16.0.3:41234"
	req.Header.Set("X-Forwarded-For", " 203.0.113.9 ")

	assert.Equal(t, "172.16.0.3", NewRateLimiter(1, 1, false, logger.NewNop()).clientIP(req))
	assert.Equal(t, "203.0.113.9", NewRateLimiter(1, 1, true, logger.NewNop()).clientIP(req))

	req.Header.Del("X-Forwarded-For")
	req.RemoteAddr = "no-port"
	assert.Equal(t, "no-port", NewRateLimiter(1, 1, true, logger.NewNop()).clientIP(req))
}
