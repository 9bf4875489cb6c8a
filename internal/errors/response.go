package errors

import (
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrorResponse is the JSON body returned for failed requests
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail describes a failure to the client
type ErrorDetail struct {
	Display       string                 `json:"message"`
	InternalError string                 `json:"internal_error,omitempty"`
	Details       map[string]interface{} `json:"details,omitempty"`
}

// HTTPStatusFromErr maps a marked error to an HTTP status code
func HTTPStatusFromErr(err error) int {
	switch {
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidOperation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the client facing error body. Hints become the
// display message; internal errors never leak their message.
func NewErrorResponse(err error) ErrorResponse {
	display := strings.Join(GetHints(err), "; ")
	if display == "" {
		display = "An unexpected error occurred"
	}

	detail := ErrorDetail{
		Display: display,
		Details: GetDetails(err),
	}
	if HTTPStatusFromErr(err) != http.StatusInternalServerError {
		detail.InternalError = err.Error()
	}
	if len(detail.Details) == 0 {
		detail.Details = nil
	}

	return ErrorResponse{Success: false, Error: detail}
}
