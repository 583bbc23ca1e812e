package apperrors

import "errors"

// Common errors
var (
	// Persistence errors
	ErrPersistence = errors.New("persistence operation affected no rows")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Subject errors
var (
	ErrSubjectNotFound  = errors.New("subject not found")
	ErrSubjectURLExists = errors.New("subject with this url already exists")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrStudentNotFound    = errors.New("student not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// NewValidationError creates a validation error carrying the offending field
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Details: map[string]interface{}{"field": field},
	}
}

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
