// Package errors provides application-level error types and utilities.
// It defines the error kinds the engines surface to callers: validation,
// not found, invalid transition, conflict, and persistence failures.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation_error"
	ErrorTypeNotFound   ErrorType = "not_found"
	// ErrorTypeInvalidTransition covers moves to a column outside the
	// ticket's project and document operations that require Draft status.
	ErrorTypeInvalidTransition ErrorType = "invalid_transition"
	// ErrorTypeConflict marks retryable failures caused by a concurrent
	// transaction winning the race (sequence allocation, open-segment insert).
	ErrorTypeConflict    ErrorType = "conflict"
	ErrorTypePersistence ErrorType = "persistence_failure"
	// ErrorTypeInternal is the catch-all type the HTTP layer reports for
	// errors that are not an *AppError.
	ErrorTypeInternal ErrorType = "internal_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newError(ErrorTypeValidation, message, http.StatusBadRequest, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newError(ErrorTypeNotFound, message, http.StatusNotFound, details)
}

// NewInvalidTransitionError creates an error for an operation that is not
// allowed in the entity's current state.
func NewInvalidTransitionError(message string, details ...string) *AppError {
	return newError(ErrorTypeInvalidTransition, message, http.StatusUnprocessableEntity, details)
}

// NewConflictError creates a new conflict error. Conflicts are retryable.
func NewConflictError(message string, details ...string) *AppError {
	return newError(ErrorTypeConflict, message, http.StatusConflict, details)
}

// NewPersistenceError creates an error for store failures outside domain logic.
func NewPersistenceError(message string, details ...string) *AppError {
	return newError(ErrorTypePersistence, message, http.StatusInternalServerError, details)
}

func newError(typ ErrorType, message string, code int, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    typ,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

// IsInvalidTransitionError checks if the error is an invalid transition error
func IsInvalidTransitionError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeInvalidTransition
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeConflict
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeValidation
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// SQLite unique constraint error
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	return false
}
