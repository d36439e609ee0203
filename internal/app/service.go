// Package app holds the article, comment and catalog use cases. Services
// check who may write, normalize input and record outcomes; HTTP lives in
// adapters/http and SQL in adapters/storage.
package app

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jsamuelsen/articles-service/internal/domain"
	"github.com/jsamuelsen/articles-service/internal/platform/logging"
	"github.com/jsamuelsen/articles-service/internal/platform/telemetry"
)

// Recorder receives use-case outcomes for metrics.
type Recorder interface {
	// WriteCompleted records a finished write; err is nil on success.
	WriteCompleted(entity, operation string, err error)

	// ExportCompleted records the number of rows written by an export.
	ExportCompleted(rows int)
}

type noopRecorder struct{}

func (noopRecorder) WriteCompleted(string, string, error) {}
func (noopRecorder) ExportCompleted(int)                  {}

func orNoop(r Recorder) Recorder {
	if r == nil {
		return noopRecorder{}
	}

	return r
}

// traceWrite starts the span for one write use case. The returned func ends
// the span and reports the outcome to r. id is zero for creates.
func traceWrite(ctx context.Context, r Recorder, entity, operation string, id int64) (context.Context, func(error)) {
	attrs := []attribute.KeyValue{attribute.String("app.entity", entity)}
	if id != 0 {
		attrs = append(attrs, attribute.Int64("app.entity_id", id))
	}

	ctx, end := telemetry.StartSpan(ctx, entity+"."+operation, attrs...)

	return ctx, func(err error) {
		end(err)
		r.WriteCompleted(entity, operation, err)
	}
}

func orDefault(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}

	return logger.With(slog.String("component", component))
}

// loggerFor prefers the request-scoped logger so entries carry request ids.
func loggerFor(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logging.HasLogger(ctx) {
		return logging.FromContext(ctx)
	}

	return fallback
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}

	t := strings.TrimSpace(*s)

	return &t
}

func normalizeNamesPtr(names *[]string) *[]string {
	if names == nil {
		return nil
	}

	n := domain.NormalizeNames(*names)

	return &n
}

// normalizeArticle trims every string field. Name lists are trimmed
// without dropping blanks so validation can still report them.
func normalizeArticle(in domain.ArticleInput) domain.ArticleInput {
	in.Identifier = trimPtr(in.Identifier)
	in.Title = trimPtr(in.Title)
	in.Abstract = trimPtr(in.Abstract)

	return in
}
