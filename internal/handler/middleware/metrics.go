package middleware

import (
	"strconv"
	"time"

	"residencial-admin/internal/observability/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency per route template, so ids never become label values.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
