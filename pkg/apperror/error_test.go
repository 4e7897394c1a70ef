package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name: "without internal error",
			err: &Error{
				HTTPStatus: http.StatusNotFound,
				Code:       "not_found",
				Message:    "Resource not found",
			},
			expected: "not_found: Resource not found",
		},
		{
			name: "with internal error",
			err: &Error{
				HTTPStatus: http.StatusInternalServerError,
				Code:       "internal_error",
				Message:    "Something went wrong",
				Internal:   errors.New("content reload failed"),
			},
			expected: "internal_error: Something went wrong (content reload failed)",
		},
		{
			name: "empty message",
			err: &Error{
				HTTPStatus: http.StatusBadRequest,
				Code:       "bad_request",
				Message:    "",
			},
			expected: "bad_request: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("underlying cause")

	withInternal := &Error{
		HTTPStatus: http.StatusInternalServerError,
		Code:       "internal_error",
		Message:    "Something went wrong",
		Internal:   inner,
	}
	if got := withInternal.Unwrap(); got != inner {
		t.Errorf("Unwrap() = %v, want %v", got, inner)
	}
	if !errors.Is(withInternal, inner) {
		t.Error("errors.Is should see through the app error")
	}

	plain := &Error{HTTPStatus: http.StatusNotFound, Code: "not_found", Message: "Resource not found"}
	if got := plain.Unwrap(); got != nil {
		t.Errorf("Unwrap() = %v, want nil", got)
	}
}

func TestErrorWithInternal(t *testing.T) {
	original := &Error{
		HTTPStatus: http.StatusNotFound,
		Code:       "not_found",
		Message:    "Resource not found",
	}

	internalErr := errors.New("document walk failed")
	withInternal := original.WithInternal(internalErr)

	if withInternal.Internal != internalErr {
		t.Errorf("WithInternal().Internal = %v, want %v", withInternal.Internal, internalErr)
	}
	if withInternal.HTTPStatus != original.HTTPStatus {
		t.Errorf("WithInternal().HTTPStatus = %d, want %d", withInternal.HTTPStatus, original.HTTPStatus)
	}
	if withInternal.Code != original.Code {
		t.Errorf("WithInternal().Code = %q, want %q", withInternal.Code, original.Code)
	}
	if original.Internal != nil {
		t.Error("original error was modified")
	}
}

func TestErrorWithMessage(t *testing.T) {
	original := &Error{
		HTTPStatus: http.StatusBadRequest,
		Code:       "bad_request",
		Message:    "Original message",
		Internal:   errors.New("internal"),
		Details:    map[string]any{"key": "value"},
	}

	withMessage := original.WithMessage("Custom message")

	if withMessage.Message != "Custom message" {
		t.Errorf("WithMessage().Message = %q, want %q", withMessage.Message, "Custom message")
	}
	if withMessage.Code != original.Code {
		t.Errorf("WithMessage().Code = %q, want %q", withMessage.Code, original.Code)
	}
	if withMessage.Internal != original.Internal {
		t.Errorf("WithMessage().Internal = %v, want %v", withMessage.Internal, original.Internal)
	}
	if original.Message != "Original message" {
		t.Error("original error was modified")
	}
}

func TestErrorWithDetails(t *testing.T) {
	original := &Error{
		HTTPStatus: http.StatusUnprocessableEntity,
		Code:       "validation_error",
		Message:    "Validation failed",
	}

	details := map[string]any{
		"field": "category",
		"error": "unknown category 'gke'",
	}
	withDetails := original.WithDetails(details)

	if withDetails.Details == nil {
		t.Fatal("WithDetails().Details is nil")
	}
	if withDetails.Details["field"] != "category" {
		t.Errorf("WithDetails().Details['field'] = %v, want %v", withDetails.Details["field"], "category")
	}
	if original.Details != nil {
		t.Error("original error was modified")
	}
}

func TestConstructors(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		err := New(http.StatusConflict, "conflict", "Resource already exists")
		if err.HTTPStatus != http.StatusConflict || err.Code != "conflict" || err.Message != "Resource already exists" {
			t.Errorf("New() = %+v", err)
		}
		if err.Internal != nil || err.Details != nil {
			t.Error("New() should not set Internal or Details")
		}
	})

	t.Run("NewBadRequest", func(t *testing.T) {
		err := NewBadRequest("unknown query parameter")
		if err.HTTPStatus != http.StatusBadRequest || err.Code != "bad_request" {
			t.Errorf("NewBadRequest() = %+v", err)
		}
		if err.Message != "unknown query parameter" {
			t.Errorf("NewBadRequest().Message = %q", err.Message)
		}
	})

	t.Run("NewNotFound", func(t *testing.T) {
		err := NewNotFound("document", "aks-scaling")
		if err.HTTPStatus != http.StatusNotFound || err.Code != "not_found" {
			t.Errorf("NewNotFound() = %+v", err)
		}
		if err.Message != "document 'aks-scaling' not found" {
			t.Errorf("NewNotFound().Message = %q", err.Message)
		}
	})

	t.Run("NewInternal", func(t *testing.T) {
		inner := errors.New("walk failed")
		err := NewInternal("content load failed", inner)
		if err.HTTPStatus != http.StatusInternalServerError || err.Code != "internal_error" {
			t.Errorf("NewInternal() = %+v", err)
		}
		if err.Internal != inner {
			t.Errorf("NewInternal().Internal = %v, want %v", err.Internal, inner)
		}
	})

	t.Run("NewForbidden", func(t *testing.T) {
		err := NewForbidden("drafts are not served")
		if err.HTTPStatus != http.StatusForbidden || err.Code != "forbidden" {
			t.Errorf("NewForbidden() = %+v", err)
		}
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "app error",
			err:        NewNotFound("document", "missing-doc"),
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name: "app error with details",
			err: ErrValidation.WithDetails(map[string]any{
				"field": "linkTo",
			}),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "validation_error",
		},
		{
			name:       "echo error mapped by status",
			err:        echo.NewHTTPError(http.StatusNotFound, "page not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:       "echo bad request",
			err:        echo.NewHTTPError(http.StatusBadRequest, "bad input"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "generic error",
			err:        errors.New("some generic error"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, errorObj := Classify(tt.err)
			if status != tt.wantStatus {
				t.Errorf("Classify() status = %d, want %d", status, tt.wantStatus)
			}
			if errorObj["code"] != tt.wantCode {
				t.Errorf("Classify() code = %v, want %v", errorObj["code"], tt.wantCode)
			}
		})
	}
}

func TestClassify_StructuredMessage(t *testing.T) {
	structured := map[string]any{
		"error": map[string]any{
			"code":    "reload_failed",
			"message": "content reload failed",
			"details": []string{"content/docs/aks"},
		},
	}

	status, errorObj := Classify(echo.NewHTTPError(http.StatusInternalServerError, structured))
	if status != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", status, http.StatusInternalServerError)
	}
	if errorObj["code"] != "reload_failed" {
		t.Errorf("code = %v, want reload_failed", errorObj["code"])
	}
	if errorObj["message"] != "content reload failed" {
		t.Errorf("message = %v", errorObj["message"])
	}
}

func TestPredefinedErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *Error
		wantStatus int
		wantCode   string
	}{
		{"ErrUnauthorized", ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"ErrForbidden", ErrForbidden, http.StatusForbidden, "forbidden"},
		{"ErrNotFound", ErrNotFound, http.StatusNotFound, "not_found"},
		{"ErrConflict", ErrConflict, http.StatusConflict, "conflict"},
		{"ErrBadRequest", ErrBadRequest, http.StatusBadRequest, "bad_request"},
		{"ErrValidation", ErrValidation, http.StatusUnprocessableEntity, "validation_error"},
		{"ErrInternal", ErrInternal, http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.HTTPStatus != tt.wantStatus {
				t.Errorf("%s.HTTPStatus = %d, want %d", tt.name, tt.err.HTTPStatus, tt.wantStatus)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("%s.Code = %q, want %q", tt.name, tt.err.Code, tt.wantCode)
			}
		})
	}
}
