package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies an application error.
type ErrorType string

const (
	// Authentication and registration errors
	ErrorTypeInvalidCredentials ErrorType = "INVALID_CREDENTIALS"
	ErrorTypeDuplicateEmail     ErrorType = "DUPLICATE_EMAIL"
	ErrorTypeNotAuthenticated   ErrorType = "NOT_AUTHENTICATED"
	ErrorTypeForbidden          ErrorType = "FORBIDDEN"

	// Domain errors
	ErrorTypeValidation ErrorType = "VALIDATION"
	ErrorTypeNotFound   ErrorType = "NOT_FOUND"

	// Infrastructure errors
	ErrorTypeStorage  ErrorType = "STORAGE"
	ErrorTypeExternal ErrorType = "EXTERNAL"
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError carries a typed, human-readable application error.
// The message is what callers surface to users; Cause preserves the
// underlying error for logs.
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Cause      error     `json:"-"`
	HTTPStatus int       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause attaches an underlying error.
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// NewInvalidCredentialsError reports a failed credential check.
func NewInvalidCredentialsError(message string) *AppError {
	if message == "" {
		message = "Invalid email or password"
	}
	return &AppError{
		Type:       ErrorTypeInvalidCredentials,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewDuplicateEmailError reports a registration attempt with a known email.
func NewDuplicateEmailError(message string) *AppError {
	if message == "" {
		message = "User already exists with this email"
	}
	return &AppError{
		Type:       ErrorTypeDuplicateEmail,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

// NewNotAuthenticatedError reports an operation that requires a signed-in identity.
func NewNotAuthenticatedError(message string) *AppError {
	if message == "" {
		message = "not authenticated"
	}
	return &AppError{
		Type:       ErrorTypeNotAuthenticated,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewForbiddenError reports a mutation attempted by a non-owner.
func NewForbiddenError(message string) *AppError {
	if message == "" {
		message = "forbidden"
	}
	return &AppError{
		Type:       ErrorTypeForbidden,
		Message:    message,
		HTTPStatus: http.StatusForbidden,
	}
}

// NewValidationError reports invalid input.
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFoundError reports a missing resource.
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewStorageError reports a failed durable-storage operation.
func NewStorageError(operation string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeStorage,
		Message:    fmt.Sprintf("storage operation '%s' failed", operation),
		Cause:      err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewExternalError reports a failure surfaced by an external provider.
func NewExternalError(service string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeExternal,
		Message:    fmt.Sprintf("external service '%s' error", service),
		Cause:      err,
		HTTPStatus: http.StatusBadGateway,
	}
}

// NewInternalError reports an unexpected internal failure.
func NewInternalError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// GetAppError extracts an AppError from an error chain, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType checks whether err is an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

func IsInvalidCredentials(err error) bool { return IsType(err, ErrorTypeInvalidCredentials) }
func IsDuplicateEmail(err error) bool     { return IsType(err, ErrorTypeDuplicateEmail) }
func IsNotAuthenticated(err error) bool   { return IsType(err, ErrorTypeNotAuthenticated) }
func IsForbidden(err error) bool          { return IsType(err, ErrorTypeForbidden) }
func IsNotFound(err error) bool           { return IsType(err, ErrorTypeNotFound) }
func IsValidation(err error) bool         { return IsType(err, ErrorTypeValidation) }

// Wrap adds context to an error, preserving an existing AppError's type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr := GetAppError(err); appErr != nil {
		appErr.Message = fmt.Sprintf("%s: %s", message, appErr.Message)
		return appErr
	}
	return NewInternalError(message).WithCause(err)
}
