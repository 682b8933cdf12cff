package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

type clientBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter is a fixed-window token bucket per client key
type RateLimiter struct {
	mu          sync.Mutex
	capacity    int
	refillDur   time.Duration
	clients     map[string]*clientBucket
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

// NewRateLimiter allows capacity requests per refillDur for each client
func NewRateLimiter(capacity int, refillDur time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:    capacity,
		refillDur:   refillDur,
		clients:     make(map[string]*clientBucket),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for key, bucket := range r.clients {
		if now.Sub(bucket.lastRefill) > bucketCleanupThreshold {
			delete(r.clients, key)
		}
	}
}

// Stop ends the cleanup goroutine
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

// Allow consumes a token for key and reports whether one was available
func (r *RateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, exists := r.clients[key]

	if !exists {
		r.clients[key] = &clientBucket{
			tokens:     r.capacity - 1,
			lastRefill: now,
		}
		return true
	}

	if now.Sub(bucket.lastRefill) >= r.refillDur {
		bucket.tokens = r.capacity
		bucket.lastRefill = now
	}

	if bucket.tokens <= 0 {
		return false
	}

	bucket.tokens--
	return true
}

// RateLimit rejects clients that exceeded the limiter with 429. A nil
// limiter lets every request through.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		if !limiter.Allow(c.ClientIP()) {
			c.Header("Retry-After", strconv.Itoa(int(limiter.refillDur.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate_limit_exceeded",
			})
			return
		}
		c.Next()
	}
}
