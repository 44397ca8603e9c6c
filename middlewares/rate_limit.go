package middlewares

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Chase-42/recipe-vault-sub002/utils"

	"github.com/gin-gonic/gin"
)

// CounterStore is the external increment-with-expiry counter shared across
// all server instances. The Redis implementation lives in config.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (count int64, ttl time.Duration, err error)
}

type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
	RouteKey    string
}

func rateLimitKey(routeKey, ip string) string {
	sum := sha256.Sum256([]byte(routeKey + "|" + ip))
	return "ratelimit:" + hex.EncodeToString(sum[:])
}

// RateLimit throttles per route + client IP. A store failure fails open:
// the request is allowed and the error only logged, so an unavailable
// counter store never takes the API down with it.
func RateLimit(store CounterStore, cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateLimitKey(cfg.RouteKey, c.ClientIP())

		count, ttl, err := store.Incr(c.Request.Context(), key, cfg.Window)
		if err != nil {
			log.Printf("rate limit store error for %s: %v (failing open)", cfg.RouteKey, err)
			setRateLimitHeaders(c, cfg.MaxRequests, cfg.MaxRequests, cfg.Window)
			c.Next()
			return
		}

		remaining := cfg.MaxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}
		setRateLimitHeaders(c, cfg.MaxRequests, remaining, ttl)

		if int(count) > cfg.MaxRequests {
			retryAfter := int(ttl.Seconds() + 0.999)
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			utils.RespondError(c, http.StatusTooManyRequests, "too many requests", "RATE_LIMITED")
			c.Abort()
			return
		}

		c.Next()
	}
}

func setRateLimitHeaders(c *gin.Context, limit, remaining int, reset time.Duration) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(reset).Unix()))
}
