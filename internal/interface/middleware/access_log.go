package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AccessLog writes one structured line per request. The level follows the
// final status: 5xx error, 4xx warn, otherwise info.
func AccessLog(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		entry := logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"latency":    time.Since(start).String(),
			"ip":         ipFromCtx(c),
		})
		switch {
		case status >= 500:
			entry.Error("API")
		case status >= 400:
			entry.Warn("API")
		default:
			entry.Info("API")
		}
	}
}
