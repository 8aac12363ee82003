package middleware

import (
	"fmt"
	"time"

	"github.com/furnimart/furnimart-backend/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware enforces a fixed-window request limit per client IP
// backed by Redis. When Redis is unreachable requests pass through: the
// limiter protects against abuse, it must not take the site down with it.
type RateLimitMiddleware struct {
	client      *redis.Client
	window      time.Duration
	maxRequests int
}

func NewRateLimitMiddleware(client *redis.Client, window time.Duration, maxRequests int) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		client:      client,
		window:      window,
		maxRequests: maxRequests,
	}
}

func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.client == nil {
			c.Next()
			return
		}

		log := GetLoggerFromContext(c)
		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		count, err := m.client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.Warn("Rate limiter unavailable, allowing request", map[string]interface{}{
				"error": err.Error(),
			})
			c.Next()
			return
		}

		if count == 1 {
			if err := m.client.Expire(c.Request.Context(), key, m.window).Err(); err != nil {
				log.Warn("Failed to set rate limit window", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}

		if count > int64(m.maxRequests) {
			log.Warn("Rate limit exceeded", map[string]interface{}{
				"ip":    c.ClientIP(),
				"count": count,
			})
			errors.TooManyRequests(c, "")
			c.Abort()
			return
		}

		c.Next()
	}
}
