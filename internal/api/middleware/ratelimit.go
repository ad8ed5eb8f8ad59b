package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// clientLimiter stores the rate limiter for one client.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiterMiddleware applies a per-client token bucket across all
// endpoints. Clients are keyed by IP.
type RateLimiterMiddleware struct {
	clients map[string]*clientLimiter
	mu      sync.Mutex
	rate    int // tokens per second
	burst   int
	logger  *zap.Logger
}

// NewRateLimiterMiddleware creates a RateLimiterMiddleware and starts a
// background goroutine that evicts idle client entries.
func NewRateLimiterMiddleware(refillRate, bucketSize int, logger *zap.Logger) *RateLimiterMiddleware {
	rm := &RateLimiterMiddleware{
		clients: make(map[string]*clientLimiter),
		rate:    refillRate,
		burst:   bucketSize,
		logger:  logger,
	}
	go rm.cleanupClients()
	return rm
}

// getClientLimiter retrieves or creates the rate limiter for a client.
func (rm *RateLimiterMiddleware) getClientLimiter(identifier string) *clientLimiter {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	limiter, exists := rm.clients[identifier]
	if !exists {
		limiter = &clientLimiter{
			limiter: rate.NewLimiter(rate.Limit(rm.rate), rm.burst),
		}
		rm.clients[identifier] = limiter
	}
	limiter.lastSeen = time.Now()
	return limiter
}

// cleanupClients periodically removes client entries not seen for a while.
func (rm *RateLimiterMiddleware) cleanupClients() {
	for {
		time.Sleep(10 * time.Minute)
		rm.mu.Lock()
		count := 0
		for id, client := range rm.clients {
			if time.Since(client.lastSeen) > 30*time.Minute {
				delete(rm.clients, id)
				count++
			}
		}
		rm.mu.Unlock()
		if count > 0 {
			rm.logger.Info("rate limiter cleanup removed idle clients", zap.Int("count", count))
		}
	}
}

// Limit creates the Gin middleware handler.
func (rm *RateLimiterMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientKey := c.ClientIP()
		limiter := rm.getClientLimiter(clientKey)

		if !limiter.limiter.Allow() {
			rm.logger.Warn("rate limit exceeded",
				zap.String("client", clientKey),
				zap.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": "Rate limit exceeded"})
			return
		}

		c.Next()
	}
}
