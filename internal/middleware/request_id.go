package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// ContextRequestID is the gin context key holding the request id
const ContextRequestID = "requestID"

// RequestID reuses the caller's X-Request-ID or generates one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}

		c.Set(ContextRequestID, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
