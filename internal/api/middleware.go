package api

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/auth"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/logger"
)

const ctxUsername = "username"

// Rate limit tiers. Auth and payment endpoints get the strict bucket, the
// rest of the API shares the general one.
const (
	limitStrict = rate.Limit(2)
	burstStrict = 5

	limitGeneral = rate.Limit(10)
	burstGeneral = 20
)

const (
	sweepInterval = time.Minute
	visitorTTL    = 3 * time.Minute
)

// visitor holds a rate limiter and the last time its key was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{
		visitors:  make(map[string]*visitor),
		lastSweep: time.Now(),
	}
}

func (rl *rateLimiter) get(key string, r rate.Limit, b int) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if time.Since(rl.lastSweep) > sweepInterval {
		rl.sweepLocked()
	}

	v, ok := rl.visitors[key]
	if !ok {
		limiter := rate.NewLimiter(r, b)
		rl.visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// sweepLocked evicts idle entries so the visitors map does not grow
// unbounded. Sweeps run piggybacked on get, so the limiter needs no
// background goroutine and no teardown. Caller holds mu.
func (rl *rateLimiter) sweepLocked() {
	for key, v := range rl.visitors {
		if time.Since(v.lastSeen) > visitorTTL {
			delete(rl.visitors, key)
		}
	}
	rl.lastSweep = time.Now()
}

// RateLimit throttles per client IP, with a separate stricter bucket for
// login and payment endpoints.
func RateLimit(rl *rateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, burst, tier := limitGeneral, burstGeneral, "general"
		if strings.HasPrefix(c.Request.URL.Path, "/api/auth/login") ||
			strings.HasPrefix(c.Request.URL.Path, "/api/payment/") {
			limit, burst, tier = limitStrict, burstStrict, "strict"
		}

		key := "ip:" + c.ClientIP() + ":" + tier
		if !rl.get(key, limit, burst).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"detail": http.StatusText(http.StatusTooManyRequests),
			})
			return
		}

		c.Next()
	}
}

// RequestLogger assigns every request an id, threads it through the request
// context for downstream log enrichment, and emits one structured line per
// request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)

		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		logger.FromCtx(ctx).Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote_ip", c.ClientIP()),
		)
	}
}

// RequireAuth rejects requests without a valid bearer token and stores the
// authenticated username on the gin context.
func RequireAuth(authSvc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, err := authSvc.Verify(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
			return
		}

		c.Set(ctxUsername, username)
		c.Next()
	}
}
