package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog writes one structured line per request. It replaces gin.Logger so
// access lines share the JSON format of the rest of the service.
func AccessLog(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"request_id", c.GetString("RequestID"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.ClientIP(),
			"resp_bytes", c.Writer.Size(),
		}

		switch {
		case status >= 500:
			log.Error("HTTP access", attrs...)
		case status >= 400:
			log.Warn("HTTP access", attrs...)
		default:
			log.Info("HTTP access", attrs...)
		}
	}
}
