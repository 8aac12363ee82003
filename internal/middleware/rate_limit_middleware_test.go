package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware_NoClientPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	limiter := NewRateLimitMiddleware(nil, time.Minute, 1)
	router.GET("/test", limiter.Limit(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitMiddleware_RedisUnreachablePassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Nothing listens on this port; every INCR fails and the limiter
	// must allow the request anyway.
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
	defer client.Close()

	limiter := NewRateLimitMiddleware(client, time.Minute, 1)
	router.GET("/test", limiter.Limit(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	}
}
