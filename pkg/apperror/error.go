package apperror

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error represents an application error with HTTP status and error code
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
	Details    map[string]any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the internal error
func (e *Error) Unwrap() error {
	return e.Internal
}

// WithInternal returns a copy of the error with an internal error attached
func (e *Error) WithInternal(err error) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    e.Message,
		Internal:   err,
	}
}

// WithMessage returns a copy of the error with a custom message
func (e *Error) WithMessage(message string) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    message,
		Internal:   e.Internal,
		Details:    e.Details,
	}
}

// WithDetails returns a copy of the error with details attached
func (e *Error) WithDetails(details map[string]any) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    e.Message,
		Internal:   e.Internal,
		Details:    details,
	}
}

// New creates a new application error
func New(status int, code, message string) *Error {
	return &Error{
		HTTPStatus: status,
		Code:       code,
		Message:    message,
	}
}

// Common error definitions
var (
	ErrUnauthorized = New(http.StatusUnauthorized, "unauthorized", "Authentication required")
	ErrForbidden    = New(http.StatusForbidden, "forbidden", "Access denied")

	// Resource errors
	ErrNotFound = New(http.StatusNotFound, "not_found", "Resource not found")
	ErrConflict = New(http.StatusConflict, "conflict", "Resource already exists")

	// Validation errors
	ErrBadRequest = New(http.StatusBadRequest, "bad_request", "Invalid request")
	ErrValidation = New(http.StatusUnprocessableEntity, "validation_error", "Validation failed")

	// Server errors
	ErrInternal = New(http.StatusInternalServerError, "internal_error", "An internal error occurred")
)

// Classify resolves any error to an HTTP status and the error object served
// to clients. App errors carry their own status and code; echo.HTTPError
// values are mapped by status; everything else is an internal error.
func Classify(err error) (int, map[string]any) {
	status := http.StatusInternalServerError
	errorObj := map[string]any{
		"code":    "internal_error",
		"message": "An internal error occurred",
	}

	if appErr, ok := err.(*Error); ok {
		status = appErr.HTTPStatus
		errorObj["code"] = appErr.Code
		errorObj["message"] = appErr.Message
		if len(appErr.Details) > 0 {
			errorObj["details"] = appErr.Details
		}
		return status, errorObj
	}

	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code

		// Middleware can pass a pre-built error object through the message.
		if msgMap, ok := he.Message.(map[string]any); ok {
			if errInner, ok := msgMap["error"].(map[string]any); ok {
				for k, v := range errInner {
					errorObj[k] = v
				}
			}
			return status, errorObj
		}

		if msg, ok := he.Message.(string); ok {
			errorObj["message"] = msg
			switch status {
			case http.StatusUnauthorized:
				errorObj["code"] = "unauthorized"
			case http.StatusForbidden:
				errorObj["code"] = "forbidden"
			case http.StatusNotFound:
				errorObj["code"] = "not_found"
			case http.StatusBadRequest:
				errorObj["code"] = "bad_request"
			case http.StatusConflict:
				errorObj["code"] = "conflict"
			case http.StatusUnprocessableEntity:
				errorObj["code"] = "validation_error"
			}
		}
	}

	return status, errorObj
}

// NewBadRequest creates a bad request error with a custom message
func NewBadRequest(message string) *Error {
	return ErrBadRequest.WithMessage(message)
}

// NewNotFound creates a not found error for a resource type and ID
func NewNotFound(resourceType, id string) *Error {
	return ErrNotFound.WithMessage(fmt.Sprintf("%s '%s' not found", resourceType, id))
}

// NewInternal creates an internal error with a message and optional wrapped error
func NewInternal(message string, err error) *Error {
	return &Error{
		HTTPStatus: http.StatusInternalServerError,
		Code:       "internal_error",
		Message:    message,
		Internal:   err,
	}
}

// NewForbidden creates a forbidden error with a custom message
func NewForbidden(message string) *Error {
	return ErrForbidden.WithMessage(message)
}
