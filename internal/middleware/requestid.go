package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clientdesk/internal/logger"
)

const RequestIDHeader = "X-Request-Id"

// RequestID assigns every request a uuid (or reuses the inbound header) and
// threads it through the request context for the structured logger.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
