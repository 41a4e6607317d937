package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"institute-portal-backend/internal/logger"
)

// HeaderRequestID carries the request id in both directions
const HeaderRequestID = "X-Request-ID"

// longer client-supplied ids are replaced so they cannot flood the logs
const requestIDMaxLen = 64

// RequestID reuses the caller's X-Request-ID or generates one, stores it on
// the context for logger.WithContext and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(logger.ContextKeyRequestID, rid)
		c.Header(HeaderRequestID, rid)

		c.Next()
	}
}
