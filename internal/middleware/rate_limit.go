package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yigit/unitutor/internal/app/models/dto"
	"golang.org/x/time/rate"
)

// RateLimiterConfig holds the per-client token bucket settings
type RateLimiterConfig struct {
	RequestsPerMinute int
	Burst             int
	CleanupInterval   time.Duration
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter limits requests per client IP
type RateLimiter struct {
	limit rate.Limit
	burst int
	ttl   time.Duration

	mu      sync.Mutex
	clients map[string]*clientLimiter

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a RateLimiter and starts evicting idle clients in the background
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = 5 * time.Minute
	}

	rl := &RateLimiter{
		limit:   rate.Limit(float64(config.RequestsPerMinute) / 60.0),
		burst:   config.Burst,
		ttl:     config.CleanupInterval * 2,
		clients: make(map[string]*clientLimiter),
		stopCh:  make(chan struct{}),
	}

	go rl.cleanupLoop(config.CleanupInterval)

	return rl
}

// Stop stops the cleanup goroutine
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Middleware rejects clients that exhausted their bucket with 429
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if rl.limiterFor(ip).Allow() {
			c.Next()
			return
		}

		log.Warn().Str("clientIP", ip).Str("path", c.Request.URL.Path).Msg("Rate limit exceeded")

		c.Header("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))
		detail := dto.NewErrorDetail(dto.ErrorCodeRateLimited, "Too many requests. Please try again later.").
			WithSeverity(dto.ErrorSeverityWarning)
		c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(detail))
	}
}

// ClientCount returns the number of tracked clients
func (rl *RateLimiter) ClientCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = cl
	}
	cl.lastAccess = time.Now()
	return cl.limiter
}

// retryAfterSeconds is the time until one token is refilled, at least one second
func (rl *RateLimiter) retryAfterSeconds() int {
	if rl.limit <= 0 {
		return 60
	}
	sec := int(math.Ceil(1.0 / float64(rl.limit)))
	if sec < 1 {
		sec = 1
	}
	return sec
}

func (rl *RateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now())
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) cleanup(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, cl := range rl.clients {
		if now.Sub(cl.lastAccess) > rl.ttl {
			delete(rl.clients, key)
		}
	}
}
