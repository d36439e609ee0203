package middleware

import (
	"context"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen/articles-service/internal/adapters/http/dto"
)

const (
	limiterSweepInterval = 3 * time.Minute
	limiterIdleTTL       = 10 * time.Minute
)

// RateLimitObserver is told about rejected requests.
type RateLimitObserver interface {
	RateLimited(route string)
}

type keyedLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a token bucket per acting identity.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*keyedLimiter
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

// NewRateLimiter creates a limiter allowing rps sustained requests and
// bursts of burst per key.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*keyedLimiter),
		limit:    rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

// Allow reports whether key may proceed now.
func (rl *RateLimiter) Allow(key string) bool {
	return rl.get(key).AllowN(rl.now(), 1)
}

// Sweep forgets keys idle for longer than ttl and returns how many went.
func (rl *RateLimiter) Sweep(ttl time.Duration) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-ttl)
	removed := 0

	for k, l := range rl.limiters {
		if l.lastSeen.Before(cutoff) {
			delete(rl.limiters, k)
			removed++
		}
	}

	return removed
}

// Run sweeps idle keys until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(limiterSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Sweep(limiterIdleTTL)
		}
	}
}

func (rl *RateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if l, ok := rl.limiters[key]; ok {
		l.lastSeen = rl.now()
		return l.limiter
	}

	l := &keyedLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst), lastSeen: rl.now()}
	rl.limiters[key] = l

	return l.limiter
}

// retryAfter is the whole number of seconds until one token is available.
func (rl *RateLimiter) retryAfter() int {
	if rl.limit <= 0 {
		return 1
	}

	return int(math.Ceil(1 / float64(rl.limit)))
}

// Middleware rejects callers over their budget with 429 RATE_LIMITED. It
// keys on the acting identity and falls back to the client IP, so it must
// run after Identify.
func (rl *RateLimiter) Middleware(observer RateLimitObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := GetIdentity(c).Username
		if key == "" {
			key = "ip:" + c.ClientIP()
		}

		if rl.Allow(key) {
			c.Next()
			return
		}

		if observer != nil {
			observer.RateLimited(c.FullPath())
		}

		c.Header("Retry-After", strconv.Itoa(rl.retryAfter()))
		dto.AbortWithCode(c, dto.ErrorCodeRateLimited, "Request was throttled.")
	}
}
