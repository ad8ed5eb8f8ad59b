package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the per-request identifier.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key the request ID is stored under.
const requestIDKey = "request_id"

// RequestIDMiddleware assigns every request a UUID, echoed in the response
// header. An incoming X-Request-ID is honoured so callers can correlate.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestID returns the identifier assigned to the current request.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
