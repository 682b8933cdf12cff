package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID when it is a UUID and
// generates one otherwise.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request ID of the current request
func GetRequestID(c *gin.Context) string {
	return c.GetString("requestID")
}
