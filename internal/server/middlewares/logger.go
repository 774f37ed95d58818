package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger logs every request when it starts and when it completes.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		logger := zap.S().Named("http")

		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"ip", c.ClientIP(),
			"user-agent", c.Request.UserAgent(),
		}
		logger.Debugw("request started", append(fields, "time", start.Format(time.RFC3339))...)

		c.Next()

		fields = append(fields,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
		if len(c.Errors) > 0 {
			for _, e := range c.Errors.Errors() {
				logger.Errorw(e, fields...)
			}
			return
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			logger.Warnw("request completed", fields...)
		default:
			logger.Infow("request completed", fields...)
		}
	}
}
