package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/articles-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/articles-service/internal/platform/logging"
)

// Recovery turns a handler panic into a 500 INTERNAL_ERROR envelope and an
// error log carrying the stack. The panic value is never sent to the
// client. It is installed first so it also covers the other middleware.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}

			ctx := c.Request.Context()
			logging.FromContext(ctx).ErrorContext(ctx, "panic recovered",
				slog.String("panic", fmt.Sprint(p)),
				slog.String("method", c.Request.Method),
				slog.String("route", c.FullPath()),
				slog.String("trace_id", dto.GetTraceID(c)),
				slog.String("stack", string(debug.Stack())),
			)

			// Half-written responses (a CSV export mid-stream) cannot get
			// an envelope anymore.
			if c.Writer.Written() {
				c.Abort()
				return
			}

			dto.AbortWithCode(c, dto.ErrorCodeInternal, "an internal error occurred")
		}()

		c.Next()
	}
}
