package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error so callers can branch on the failure
// class instead of parsing messages.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindNotFound          Kind = "not_found"
	KindConflict          Kind = "conflict"
	KindInsufficientStock Kind = "insufficient_stock"
	KindStoreUnavailable  Kind = "store_unavailable"
	KindArtifact          Kind = "artifact"
	KindNotify            Kind = "notify"
	KindUnauthorized      Kind = "unauthorized"
	KindInternal          Kind = "internal"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Kind    Kind         `json:"kind"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound           = &AppError{Code: http.StatusNotFound, Kind: KindNotFound, Message: "Resource not found"}
	ErrBadRequest         = &AppError{Code: http.StatusBadRequest, Kind: KindValidation, Message: "Bad request"}
	ErrInternalServer     = &AppError{Code: http.StatusInternalServerError, Kind: KindInternal, Message: "Internal server error"}
	ErrConflict           = &AppError{Code: http.StatusConflict, Kind: KindConflict, Message: "Resource already exists"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Kind: KindUnauthorized, Message: "Invalid email or password"}
)

// NewAppError creates a new application error
func NewAppError(code int, kind Kind, message string) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindValidation,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: message,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: resource + " not found",
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: message,
	}
}

// NewProductNotFoundError reports an unknown product reference in an order
func NewProductNotFoundError(productID int64) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: fmt.Sprintf("Product %d not found", productID),
	}
}

// NewInsufficientStockError reports a quantity exceeding the available stock
func NewInsufficientStockError(productID int64, name string, available, requested int) *AppError {
	return &AppError{
		Code: http.StatusBadRequest,
		Kind: KindInsufficientStock,
		Message: fmt.Sprintf("Insufficient stock for %q (product %d): %d available, %d requested",
			name, productID, available, requested),
	}
}

// NewStoreUnavailableError wraps a store connectivity or query failure
func NewStoreUnavailableError(operation string, err error) *AppError {
	return &AppError{
		Code:    http.StatusServiceUnavailable,
		Kind:    KindStoreUnavailable,
		Message: fmt.Sprintf("%s: %v", operation, err),
	}
}

// NewArtifactError reports a receipt rendering failure
func NewArtifactError(err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindArtifact,
		Message: fmt.Sprintf("Receipt rendering failed: %v", err),
	}
}

// NewNotifyError reports a mail delivery failure
func NewNotifyError(err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindNotify,
		Message: fmt.Sprintf("Email delivery failed: %v", err),
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// IsKind reports whether err is an AppError of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindInternal,
		Message: err.Error(),
	}
}
