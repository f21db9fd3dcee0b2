package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"tabletop-events-api/internal/response"
)

const rateLimitKeyPrefix = "ratelimit:"

// RateLimiter decides whether another request from key is allowed
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// NewRateLimiter returns a redis fixed-window limiter shared by every
// instance, or a per-process token bucket when client is nil.
func NewRateLimiter(client *redis.Client, maxRequests int, window time.Duration) RateLimiter {
	if client == nil {
		return NewLocalRateLimiter(maxRequests, window)
	}
	return newRedisRateLimiter(client, maxRequests, window)
}

// counterStore is the subset of *redis.Client the fixed-window limiter uses
type counterStore interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	PExpire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	PTTL(ctx context.Context, key string) *redis.DurationCmd
}

type redisRateLimiter struct {
	store       counterStore
	maxRequests int64
	window      time.Duration
}

func newRedisRateLimiter(store counterStore, maxRequests int, window time.Duration) *redisRateLimiter {
	return &redisRateLimiter{store: store, maxRequests: int64(maxRequests), window: window}
}

// Allow counts the request in the current window. Only the first hit sets
// the expiry, so the window closes window after it opened no matter how
// often the key is hit.
func (l *redisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	key = rateLimitKeyPrefix + key

	count, err := l.store.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := l.store.PExpire(ctx, key, l.window).Err(); err != nil {
			return false, err
		}
		return count <= l.maxRequests, nil
	}
	if count > l.maxRequests {
		// a failed PEXPIRE after the first INCR leaves a counter that never resets
		ttl, err := l.store.PTTL(ctx, key).Result()
		if err != nil {
			return false, err
		}
		if ttl < 0 {
			if err := l.store.PExpire(ctx, key, l.window).Err(); err != nil {
				return false, err
			}
		}
	}
	return count <= l.maxRequests, nil
}

// LocalRateLimiter keeps one token bucket per key in process memory
type LocalRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewLocalRateLimiter allows maxRequests per window per key, refilled evenly
func NewLocalRateLimiter(maxRequests int, window time.Duration) *LocalRateLimiter {
	if maxRequests <= 0 {
		maxRequests = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LocalRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(window / time.Duration(maxRequests)),
		burst:    maxRequests,
	}
}

func (l *LocalRateLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	limiter, ok := l.limiters[key]
	if !ok {
		if len(l.limiters) > 10000 {
			l.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()
	return limiter.Allow(), nil
}

// RateLimit rejects clients that exceed the limiter with 429. The key is
// the client IP.
func RateLimit(limiter RateLimiter, maxRequests int, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Error("Rate limiter failed", zap.Error(err))
			response.AbortWithError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Rate limiting error")
			return
		}
		if !allowed {
			c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
			c.Header("X-RateLimit-Remaining", "0")
			response.AbortWithError(c, http.StatusTooManyRequests, response.ErrCodeTooManyReqs, "Too many requests")
			return
		}
		c.Next()
	}
}
