package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"circularmetals-backend/internal/shared/metrics"
	"circularmetals-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request and feeds the duration histogram.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		durationMs := float64(latency.Microseconds()) / 1000.0

		metrics.ObserveRequestDurationMs(durationMs)

		telemetry.Info("request.complete", map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": durationMs,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		})
	}
}
