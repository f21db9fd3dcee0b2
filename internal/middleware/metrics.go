package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"tabletop-events-api/internal/metrics"
)

// HTTPRecorder records one finished request
type HTTPRecorder interface {
	RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration)
}

// Metrics returns a middleware that records HTTP metrics
func Metrics(m HTTPRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip metrics and health endpoints
		if metrics.ShouldSkipEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		m.RecordHTTPRequest(
			c.Request.Method,
			c.FullPath(), // route pattern keeps label cardinality bounded
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
