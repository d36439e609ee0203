package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/articles-service/internal/domain"
	"github.com/jsamuelsen/articles-service/internal/platform/logging"
)

// requestIDKey mirrors the key the request id middleware stores under.
const requestIDKey = "request_id"

// GetTraceID returns the OpenTelemetry trace id of the request, falling back
// to the request id when tracing is off.
func GetTraceID(c *gin.Context) string {
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	if id := c.GetString(requestIDKey); id != "" {
		return id
	}

	return c.GetHeader("X-Request-ID")
}

// MapError maps an error to an HTTP status code and error response.
// Unknown errors are mapped to 500 Internal Server Error with a generic message.
func MapError(err error) (int, *ErrorResponse) {
	switch {
	case err == nil:
		return http.StatusOK, nil

	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, innerMessage[*domain.NotFoundError](err))

	case domain.IsValidation(err):
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return http.StatusBadRequest, NewErrorResponse(ErrorCodeValidation, "request validation failed").
				WithDetails(ve.Fields)
		}

		return http.StatusBadRequest, NewErrorResponse(ErrorCodeValidation, err.Error())

	case domain.IsUnauthorized(err):
		return http.StatusUnauthorized, NewErrorResponse(
			ErrorCodeUnauthorized,
			"Authentication credentials were not provided.",
		)

	case domain.IsForbidden(err):
		return http.StatusForbidden, NewErrorResponse(ErrorCodeForbidden, innerMessage[*domain.ForbiddenError](err))

	case domain.IsConflict(err):
		return http.StatusConflict, NewErrorResponse(ErrorCodeConflict, innerMessage[*domain.ConflictError](err))

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(
			ErrorCodeUnavailable,
			"service temporarily unavailable",
		)

	case errors.Is(err, ErrBinding):
		return http.StatusBadRequest, NewErrorResponse(ErrorCodeBadRequest, err.Error())

	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, NewErrorResponse(ErrorCodeValidation, "request validation failed").
			WithDetails(ValidationErrors(err))

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, NewErrorResponse(ErrorCodeTimeout, "request timeout exceeded")

	default:
		// Unknown errors get a generic message to avoid leaking internals
		return http.StatusInternalServerError, NewErrorResponse(
			ErrorCodeInternal,
			"an internal error occurred",
		)
	}
}

// innerMessage returns the message of the typed domain error inside err,
// dropping the wrapping context added on the way up.
func innerMessage[T error](err error) string {
	var target T
	if errors.As(err, &target) {
		return target.Error()
	}

	return err.Error()
}

// HandleError writes the error response for err. Internal errors are
// logged with full detail.
func HandleError(c *gin.Context, err error) {
	status, resp := MapError(err)
	resp.WithTraceID(GetTraceID(c))

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("trace_id", resp.TraceID),
		)
	}

	c.JSON(status, resp)
}

// AbortWithError aborts the chain with the error response for err.
func AbortWithError(c *gin.Context, err error) {
	status, resp := MapError(err)
	c.AbortWithStatusJSON(status, resp.WithTraceID(GetTraceID(c)))
}

// AbortWithCode aborts the chain with a specific error code.
func AbortWithCode(c *gin.Context, code, message string) {
	resp := NewErrorResponse(code, message).WithTraceID(GetTraceID(c))
	c.AbortWithStatusJSON(HTTPStatusFromCode(code), resp)
}
