package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/articles-service/internal/platform/logging"
)

// opsPrefix is the route prefix of probes, build info and metrics.
const opsPrefix = "/-/"

// Logging returns the access log middleware. Each API request produces a
// debug "request started" line and a "request completed" line whose level
// follows the status: 5xx error, 4xx warn, otherwise info. Routes under /-/
// and any of skipPaths are not logged.
func Logging(skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}

	return func(c *gin.Context) {
		if p := c.Request.URL.Path; skip[p] || strings.HasPrefix(p, opsPrefix) {
			c.Next()
			return
		}

		start := time.Now()
		target := c.Request.URL.RequestURI()

		logging.FromContext(c.Request.Context()).Debug("request started",
			slog.String("method", c.Request.Method),
			slog.String("path", target),
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
		)

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", target),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", elapsed),
			slog.Int64("latency_ms", elapsed.Milliseconds()),
			slog.Int("bytes", c.Writer.Size()),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		// The identity middleware runs after this one and may have added
		// the acting user to the context logger.
		ctx := c.Request.Context()
		logging.FromContext(ctx).LogAttrs(ctx, levelFor(status), "request completed", attrs...)
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
