package middleware

import (
	"time"

	"github.com/flexprice/vanrental/internal/logger"
	"github.com/gin-gonic/gin"
)

// LoggingMiddleware returns a gin middleware that logs every request
// with its matched route and the request id carried by the context.
func LoggingMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		fields := []interface{}{
			"status", c.Writer.Status(),
			"method", c.Request.Method,
			"route", route,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"response_bytes", c.Writer.Size(),
			"latency_ms", time.Since(start).Milliseconds(),
		}

		if format := c.Query("format"); format != "" {
			fields = append(fields, "format", format)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		reqLog := log.WithContext(c.Request.Context())
		statusCode := c.Writer.Status()
		switch {
		case statusCode >= 500:
			reqLog.Errorw("HTTP_REQUEST_ERROR", fields...)
		case statusCode >= 400:
			reqLog.Warnw("HTTP_REQUEST_WARNING", fields...)
		default:
			reqLog.Infow("HTTP_REQUEST_INFO", fields...)
		}
	}
}
