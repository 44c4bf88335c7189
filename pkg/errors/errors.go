package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Domain errors
	ErrorTypeValidation      ErrorType = "VALIDATION"
	ErrorTypeNotFound        ErrorType = "NOT_FOUND"
	ErrorTypeConflict        ErrorType = "CONFLICT"
	ErrorTypeNotOwner        ErrorType = "NOT_OWNER"
	ErrorTypeNotAProject     ErrorType = "NOT_A_PROJECT"
	ErrorTypeAlreadyProject  ErrorType = "ALREADY_PROJECT"
	ErrorTypeInvalidTarget   ErrorType = "INVALID_TARGET"
	ErrorTypeSelfFollow      ErrorType = "SELF_FOLLOW"
	ErrorTypeUnauthenticated ErrorType = "UNAUTHENTICATED"

	// Application and infrastructure errors
	ErrorTypeInternal ErrorType = "INTERNAL"
	ErrorTypeDatabase ErrorType = "DATABASE"
)

// AppError represents an application-specific error
type AppError struct {
	Type       ErrorType              `json:"type"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	HTTPStatus int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails adds error details
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// Constructor functions for common error types

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewConflictError creates a conflict error
func NewConflictError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

// NewNotOwnerError creates an authorization error for mutations restricted
// to the entity's author
func NewNotOwnerError(resource string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotOwner,
		Message:    fmt.Sprintf("only the author may modify this %s", resource),
		HTTPStatus: http.StatusForbidden,
	}
}

// NewNotAProjectError creates a state-precondition error for operations that
// require a promoted idea
func NewNotAProjectError() *AppError {
	return &AppError{
		Type:       ErrorTypeNotAProject,
		Message:    "idea is not a project",
		HTTPStatus: http.StatusConflict,
	}
}

// NewAlreadyProjectError creates a state-precondition error for double promotion
func NewAlreadyProjectError() *AppError {
	return &AppError{
		Type:       ErrorTypeAlreadyProject,
		Message:    "idea is already a project",
		HTTPStatus: http.StatusConflict,
	}
}

// NewInvalidTargetError creates a graph-edge precondition error
func NewInvalidTargetError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInvalidTarget,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewSelfFollowError creates a graph-edge precondition error for self-follows
func NewSelfFollowError() *AppError {
	return &AppError{
		Type:       ErrorTypeSelfFollow,
		Message:    "cannot follow yourself",
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewUnauthenticatedError creates an error for requests with no resolvable
// actor identity
func NewUnauthenticatedError(message string) *AppError {
	if message == "" {
		message = "unauthenticated"
	}
	return &AppError{
		Type:       ErrorTypeUnauthenticated,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewDatabaseError creates a database error
func NewDatabaseError(operation string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeDatabase,
		Message:    fmt.Sprintf("database operation '%s' failed", operation),
		Cause:      err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// Helper functions

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from an error chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// IsNotOwner checks if an error is a not owner error
func IsNotOwner(err error) bool {
	return IsType(err, ErrorTypeNotOwner)
}

// IsNotAProject checks if an error is a not-a-project error
func IsNotAProject(err error) bool {
	return IsType(err, ErrorTypeNotAProject)
}

// IsAlreadyProject checks if an error is an already-project error
func IsAlreadyProject(err error) bool {
	return IsType(err, ErrorTypeAlreadyProject)
}

// IsSelfFollow checks if an error is a self-follow error
func IsSelfFollow(err error) bool {
	return IsType(err, ErrorTypeSelfFollow)
}

// IsInvalidTarget checks if an error is an invalid target error
func IsInvalidTarget(err error) bool {
	return IsType(err, ErrorTypeInvalidTarget)
}

// IsUnauthenticated checks if an error is an unauthenticated error
func IsUnauthenticated(err error) bool {
	return IsType(err, ErrorTypeUnauthenticated)
}

// IsConflict checks if an error is a conflict error
func IsConflict(err error) bool {
	return IsType(err, ErrorTypeConflict)
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	// If it's already an AppError, add context to message
	if appErr := GetAppError(err); appErr != nil {
		appErr.Message = fmt.Sprintf("%s: %s", message, appErr.Message)
		return appErr
	}

	// Otherwise create a new internal error
	return NewInternalError(message).WithCause(err)
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}
