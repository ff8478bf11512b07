package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openamr/amr/internal/infrastructure/monitoring/logging"
)

// skipPaths are high-frequency endpoints excluded from request logging.
var skipPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// RequestLogging logs method, path, status, duration and request ID for every
// request. 5xx responses log at Error level, 4xx at Warn.
func RequestLogging(log logging.Logger) gin.HandlerFunc {
	log = log.Named("http")
	return func(c *gin.Context) {
		if skipPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		fields := []logging.Field{
			logging.String("method", c.Request.Method),
			logging.String("path", c.Request.URL.Path),
			logging.Int("status", c.Writer.Status()),
			logging.Duration("duration", time.Since(start)),
			logging.String("request_id", GetRequestID(c)),
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Error("request failed", fields...)
		case status >= 400:
			log.Warn("request rejected", fields...)
		default:
			log.Info("request completed", fields...)
		}
	}
}
