package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an application error.
type Code string

const (
	CodeValidation  Code = "VALIDATION"           // 422
	CodeConflict    Code = "CONFLICT"             // 409
	CodeNotFound    Code = "NOT_FOUND"            // 404
	CodeForbidden   Code = "FORBIDDEN"            // 403
	CodeUnauth      Code = "UNAUTHORIZED"         // 401
	CodeUnavailable Code = "UPSTREAM_UNAVAILABLE" // 503
	CodeTimeout     Code = "UPSTREAM_TIMEOUT"     // 504
	CodeInternal    Code = "INTERNAL"             // 500
)

// Error carries a code and the HTTP status it maps to at the edge.
type Error struct {
	Code    Code   `json:"code"`
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func Validation(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Status: http.StatusUnprocessableEntity, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Code: CodeConflict, Status: http.StatusConflict, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...any) *Error {
	return &Error{Code: CodeForbidden, Status: http.StatusForbidden, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...any) *Error {
	return &Error{Code: CodeUnauth, Status: http.StatusUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func Unavailable(format string, args ...any) *Error {
	return &Error{Code: CodeUnavailable, Status: http.StatusServiceUnavailable, Message: fmt.Sprintf(format, args...)}
}

func Timeout(format string, args ...any) *Error {
	return &Error{Code: CodeTimeout, Status: http.StatusGatewayTimeout, Message: fmt.Sprintf(format, args...)}
}

func Internal(format string, args ...any) *Error {
	return &Error{Code: CodeInternal, Status: http.StatusInternalServerError, Message: fmt.Sprintf(format, args...)}
}

// From extracts an *Error, wrapping unknown errors as Internal.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal("%v", err)
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == code
}
