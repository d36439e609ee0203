// Package dto holds the request and response shapes of the articles API and
// the single mapping from domain errors onto them.
package dto

import "net/http"

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail is the machine-readable part of an ErrorResponse. For
// VALIDATION_ERROR, Details maps each offending field to its message.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Error codes.
const (
	ErrorCodeBadRequest       = "BAD_REQUEST"      // unparseable body or query
	ErrorCodeValidation       = "VALIDATION_ERROR" // well-formed but rejected fields
	ErrorCodeUnauthorized     = "UNAUTHORIZED"     // anonymous write, bad bearer token
	ErrorCodeForbidden        = "FORBIDDEN"        // not the article or comment owner
	ErrorCodeNotFound         = "NOT_FOUND"
	ErrorCodeMethodNotAllowed = "METHOD_NOT_ALLOWED" // e.g. POST on read-only authors
	ErrorCodeConflict         = "CONFLICT"
	ErrorCodeRateLimited      = "RATE_LIMITED"
	ErrorCodeTimeout          = "TIMEOUT"
	ErrorCodeUnavailable      = "SERVICE_UNAVAILABLE"
	ErrorCodeInternal         = "INTERNAL_ERROR"
)

var codeStatus = map[string]int{
	ErrorCodeBadRequest:       http.StatusBadRequest,
	ErrorCodeValidation:       http.StatusBadRequest,
	ErrorCodeUnauthorized:     http.StatusUnauthorized,
	ErrorCodeForbidden:        http.StatusForbidden,
	ErrorCodeNotFound:         http.StatusNotFound,
	ErrorCodeMethodNotAllowed: http.StatusMethodNotAllowed,
	ErrorCodeConflict:         http.StatusConflict,
	ErrorCodeRateLimited:      http.StatusTooManyRequests,
	ErrorCodeTimeout:          http.StatusGatewayTimeout,
	ErrorCodeUnavailable:      http.StatusServiceUnavailable,
	ErrorCodeInternal:         http.StatusInternalServerError,
}

// HTTPStatusFromCode returns the status an error code is served with.
// Unknown codes are 500.
func HTTPStatusFromCode(code string) int {
	if status, ok := codeStatus[code]; ok {
		return status
	}

	return http.StatusInternalServerError
}

// NewErrorResponse builds an envelope without details or trace id.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// WithDetails attaches per-field messages. An empty map is dropped so the
// field is omitted from the JSON.
func (e *ErrorResponse) WithDetails(details map[string]string) *ErrorResponse {
	if len(details) > 0 {
		e.Error.Details = details
	}

	return e
}

// WithTraceID sets the id a client quotes when reporting the failure.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}
