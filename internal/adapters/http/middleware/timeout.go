package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/articles-service/internal/adapters/http/dto"
)

// Timeout bounds each API request. Handlers and the storage layer see the
// deadline through the request context and normally surface it as a 504
// TIMEOUT envelope themselves; if a handler returns without writing after
// the deadline passed, the envelope is written here.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if !c.Writer.Written() && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			dto.AbortWithCode(c, dto.ErrorCodeTimeout, "request timeout exceeded")
		}
	}
}

// MaxBodySize caps article and comment payloads at maxBytes. Reading past
// the cap fails, and the bind error becomes a 400 BAD_REQUEST.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 && c.Request.Body != nil && c.Request.Body != http.NoBody {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
