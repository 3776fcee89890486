package services

import (
	"errors"

	apperrors "github.com/yububu-edu/progress-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")
	ErrConflict         = errors.New("resource conflict")

	// Student specific errors
	ErrStudentNotFound = errors.New("student profile not found")

	// Chapter specific errors
	ErrChapterNotFound = errors.New("chapter not found")
	ErrChapterInactive = errors.New("chapter is not active")

	// Progress specific errors
	ErrProgressNotFound = errors.New("progress record not found")

	// Badge specific errors
	ErrBadgeNotFound      = errors.New("badge not found")
	ErrBadgeAlreadyEarned = errors.New("badge already earned")
	ErrUnknownBadgeType   = errors.New("unknown badge type")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// ===== ERROR HELPERS =====

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrStudentNotFound) ||
		errors.Is(err, ErrChapterNotFound) ||
		errors.Is(err, ErrProgressNotFound) ||
		errors.Is(err, ErrBadgeNotFound)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) {
		return true
	}
	var ve apperrors.ValidationErrors
	if errors.As(err, &ve) {
		return true
	}
	var single *apperrors.ValidationError
	return errors.As(err, &single)
}

// IsConflict checks if error represents a resource conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrBadgeAlreadyEarned)
}
