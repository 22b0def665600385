package mw

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/roomiematch/roomiematch/internal/httpserver/respond"
	"github.com/roomiematch/roomiematch/internal/logger"
	"github.com/roomiematch/roomiematch/internal/utils"
)

type RateLimitConfig struct {
	MaxRequests int           // requests allowed per window per client IP
	Window      time.Duration // fixed window length
	KeyPrefix   string        // Redis key namespace
	TrustProxy  bool          // resolve client IP from proxy headers when true
}

const (
	bucketIdleTTL    = 15 * time.Minute
	bucketSweepEvery = time.Minute
	maxBuckets       = 8192
)

// RateLimit limits each client IP to cfg.MaxRequests per cfg.Window.
// With a Redis client the counter is a shared INCR+EXPIRE window and Redis
// failures let requests through. Without one, a per-process token bucket
// applies. MaxRequests <= 0 disables limiting entirely.
func RateLimit(client *redis.Client, cfg RateLimitConfig, log logger.Logger) func(http.Handler) http.Handler {
	if cfg.MaxRequests <= 0 {
		log.Debug("RateLimit: disabled, passthrough mode")
		return func(next http.Handler) http.Handler { return next }
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "ratelimit"
	}

	if client == nil {
		log.Debug("RateLimit: no redis client, using local buckets")
		return localRateLimit(cfg)
	}
	return redisRateLimit(client, cfg, log)
}

func redisRateLimit(client *redis.Client, cfg RateLimitConfig, log logger.Logger) func(http.Handler) http.Handler {
	limitStr := strconv.Itoa(cfg.MaxRequests)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := cfg.KeyPrefix + ":" + utils.ClientIP(r, cfg.TrustProxy)

			count, err := client.Incr(ctx, key).Result()
			if err != nil {
				// Fail open: allow the request when Redis is unavailable
				log.Warn("rate limit redis error, allowing request", logger.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			// Start the window on the first hit
			if count == 1 {
				client.Expire(ctx, key, cfg.Window)
			}

			remaining := max(cfg.MaxRequests-int(count), 0)
			w.Header().Set("X-RateLimit-Limit", limitStr)
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(cfg.Window).Unix(), 10))

			if count > int64(cfg.MaxRequests) {
				w.Header().Set("Retry-After", strconv.Itoa(int(cfg.Window.Seconds())))
				writeRateLimited(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func localRateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	l := newLimiter(cfg)
	limitStr := strconv.Itoa(cfg.MaxRequests)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := time.Now()
			l.sweepMaybe(now)

			key := utils.ClientIP(r, cfg.TrustProxy)
			ok, remaining, retry := l.allow(key, now)

			w.Header().Set("X-RateLimit-Limit", limitStr)
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(remaining, 0)))
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				writeRateLimited(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeRateLimited(w http.ResponseWriter) {
	respond.Error(w, http.StatusTooManyRequests, "", respond.ErrorDetail{
		Code:    "rate_limited",
		Message: "rate limit exceeded, retry later",
	})
}

type bucket struct {
	mu       sync.Mutex
	tokens   float64
	lastRef  time.Time
	lastSeen time.Time
}

type limiter struct {
	rate      float64 // tokens refilled per second
	capacity  float64
	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

func newLimiter(cfg RateLimitConfig) *limiter {
	return &limiter{
		rate:      float64(cfg.MaxRequests) / cfg.Window.Seconds(),
		capacity:  float64(cfg.MaxRequests),
		buckets:   make(map[string]*bucket, 64),
		lastSweep: time.Now(),
	}
}

func (l *limiter) getBucket(key string, now time.Time) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.buckets) >= maxBuckets {
		l.sweepLocked(now)
	}
	b := l.buckets[key]
	if b == nil {
		b = &bucket{tokens: l.capacity, lastRef: now, lastSeen: now}
		l.buckets[key] = b
	}
	return b
}

func (l *limiter) allow(key string, now time.Time) (ok bool, remaining int, retryAfterSec int) {
	b := l.getBucket(key, now)

	b.mu.Lock()
	defer b.mu.Unlock()

	elapsed := now.Sub(b.lastRef).Seconds()
	if elapsed > 0 {
		b.tokens = math.Min(l.capacity, b.tokens+elapsed*l.rate)
		b.lastRef = now
	}

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		b.lastSeen = now
		return true, int(math.Floor(b.tokens)), 0
	}

	needed := 1.0 - b.tokens
	sec := int(math.Ceil(needed / l.rate))
	if sec < 1 {
		sec = 1
	}
	return false, int(math.Floor(b.tokens)), sec
}

func (l *limiter) sweepLocked(now time.Time) {
	for ip, b := range l.buckets {
		if now.Sub(b.lastSeen) > bucketIdleTTL {
			delete(l.buckets, ip)
		}
	}
	l.lastSweep = now
}

func (l *limiter) sweepMaybe(now time.Time) {
	l.mu.Lock()
	if now.Sub(l.lastSweep) >= bucketSweepEvery {
		l.sweepLocked(now)
	}
	l.mu.Unlock()
}
