package middleware

import (
	"time"

	"github.com/ajiang05/vibeCheck/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request latency labelled by route pattern, so /events/1
// and /events/2 share a series.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
