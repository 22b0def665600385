package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomiematch/roomiematch/internal/logger"
)

func rateLimited(client *redis.Client, maxReq int) http.Handler {
	cfg := RateLimitConfig{MaxRequests: maxReq, Window: time.Minute, KeyPrefix: "test"}
	return RateLimit(client, cfg, logger.NewNop())(okHandler())
}

func doRequest(h http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/tools/room_finder", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitRedisBlocksOverLimit(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	h := rateLimited(client, 3)

	for i := 0; i < 3; i++ {
		rec := doRequest(h, "203.0.113.9")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}

	rec := doRequest(h, "203.0.113.9")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// A different client keeps its own budget
	rec = doRequest(h, "203.0.113.10")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitRedisWindowExpires(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	h := rateLimited(client, 1)

	assert.Equal(t, http.StatusOK, doRequest(h, "203.0.113.9").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(h, "203.0.113.9").Code)

	mr.FastForward(time.Minute + time.Second)

	assert.Equal(t, http.StatusOK, doRequest(h, "203.0.113.9").Code)
}

func TestRateLimitFailsOpenWhenRedisDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	h := rateLimited(client, 1)
	mr.Close()

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doRequest(h, "203.0.113.9").Code)
	}
}

func TestRateLimitLocalFallback(t *testing.T) {
	h := rateLimited(nil, 2)

	assert.Equal(t, http.StatusOK, doRequest(h, "203.0.113.9").Code)
	assert.Equal(t, http.StatusOK, doRequest(h, "203.0.113.9").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(h, "203.0.113.9").Code)

	assert.Equal(t, http.StatusOK, doRequest(h, "203.0.113.10").Code)
}

func TestRateLimitDisabled(t *testing.T) {
	cfg := RateLimitConfig{MaxRequests: 0, Window: time.Minute}
	h := RateLimit(nil, cfg, logger.NewNop())(okHandler())

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, doRequest(h, "203.0.113.9").Code)
	}
}
