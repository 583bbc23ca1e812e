package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unitutor/internal/pkg/metrics"
)

// Metrics records every request against its route template
func Metrics(recorder metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		recorder.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
