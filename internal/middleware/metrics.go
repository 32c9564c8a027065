package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/poultrymitra/mitra_backend/internal/metrics"
)

// Metrics records request counts and latencies by route template.
func Metrics(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Observe(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
