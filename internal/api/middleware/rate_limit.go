package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"institute-portal-backend/internal/cache"
	"institute-portal-backend/internal/logger"
)

// RateLimit allows limit requests per window for each client IP and route.
// It fails open: without a store, or when the store errors, requests pass.
func RateLimit(store cache.Store, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || limit <= 0 {
			c.Next()
			return
		}

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		key := "rate_limit:" + c.ClientIP() + ":" + route

		ok, err := store.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.WithContext(c).WithError(err).Warn("rate limiter unavailable")
			c.Next()
			return
		}
		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, try again later"})
			return
		}
		c.Next()
	}
}
