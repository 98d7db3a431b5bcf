package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheMiddlewareWithoutRedisPassesThrough(t *testing.T) {
	called := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called++
		w.WriteHeader(http.StatusTeapot)
	})

	wrapped := CacheMiddleware(nil, DefaultCacheConfig())(next)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/comics", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.Equal(t, 2, called, "without a cache every request must reach the handler")
}

func TestRateLimiterWithoutRedisPassesThrough(t *testing.T) {
	called := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called++
	})

	limiter := NewRateLimiter(nil, 1, time.Minute)
	wrapped := limiter.Middleware(next)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/comics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 3, called)
}

func TestGenerateCacheKeyVariesWithRequest(t *testing.T) {
	base := httptest.NewRequest(http.MethodGet, "/comics", nil)

	differentPath := httptest.NewRequest(http.MethodGet, "/comics/1", nil)
	differentQuery := httptest.NewRequest(http.MethodGet, "/comics?ordering=pk", nil)
	differentCaller := httptest.NewRequest(http.MethodGet, "/comics", nil)
	differentCaller.Header.Set("Authorization", "Token abc")

	baseKey := generateCacheKey(base)
	assert.NotEqual(t, baseKey, generateCacheKey(differentPath))
	assert.NotEqual(t, baseKey, generateCacheKey(differentQuery))
	assert.NotEqual(t, baseKey, generateCacheKey(differentCaller))
	assert.Equal(t, baseKey, generateCacheKey(httptest.NewRequest(http.MethodGet, "/comics", nil)))
}

func TestClientIPPrefersForwardedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	assert.Equal(t, "10.0.0.1", clientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	assert.Equal(t, "203.0.113.9", clientIP(req))
}
