package logging

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Attribute keys added to request-scoped loggers.
const (
	KeyRequestID     = "request_id"
	KeyTraceID       = "trace_id"
	KeyCorrelationID = "correlation_id"
	KeyUser          = "user"
)

var defaultLogger = slog.Default()

// FromContext returns the logger stored in ctx, or the process default.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return defaultLogger
	}

	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}

	return defaultLogger
}

// WithContext stores a logger in the context.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// HasLogger reports whether ctx carries a logger stored by WithContext.
func HasLogger(ctx context.Context) bool {
	_, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	return ok
}

func withAttr(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With(slog.String(key, value)))
}

// WithRequestID tags the context logger with the per-request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return withAttr(ctx, KeyRequestID, id)
}

// WithTraceID tags the context logger with the active OpenTelemetry trace id.
func WithTraceID(ctx context.Context, id string) context.Context {
	return withAttr(ctx, KeyTraceID, id)
}

// WithCorrelationID tags the context logger with the caller's correlation id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return withAttr(ctx, KeyCorrelationID, id)
}

// WithUser tags the context logger with the acting username, so every write
// an author makes can be traced back to them.
func WithUser(ctx context.Context, username string) context.Context {
	return withAttr(ctx, KeyUser, username)
}

// SetDefault sets the fallback logger and the slog package default.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
	slog.SetDefault(logger)
}
