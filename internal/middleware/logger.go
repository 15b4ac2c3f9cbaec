package middleware

import (
	"log/slog"
	"time"

	"ia-admin/internal/logging"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one record per request. 4xx log at warn, 5xx at error.
func RequestLogger(lg *logging.Logger) gin.HandlerFunc {
	lg = lg.WithComponent(logging.ComponentHTTP)

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		args := []any{
			logging.FieldRequestID, GetRequestID(c),
			logging.FieldMethod, c.Request.Method,
			logging.FieldPath, c.Request.URL.Path,
			logging.FieldStatusCode, status,
			logging.FieldDuration, time.Since(start).Milliseconds(),
			logging.FieldClientIP, c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			args = append(args, logging.FieldError, c.Errors.String())
		}
		lg.Log(c.Request.Context(), level, "HTTP request completed", args...)
	}
}
