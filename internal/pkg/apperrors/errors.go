package apperrors

import "errors"

// Validation errors
var (
	ErrMissingFields    = errors.New("missing required fields")
	ErrMissingData      = errors.New("missing data")
	ErrInvalidRole      = errors.New("invalid role")
	ErrValidationFailed = errors.New("validation failed")
)

// Conflict errors
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)

// Not-found errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrStudentNotFound   = errors.New("student not found")
	ErrInstituteNotFound = errors.New("institute not found")
	ErrApparIDNotFound   = errors.New("student with this appar id not found")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenMissing       = errors.New("no token")
	ErrTokenMalformed     = errors.New("invalid token format")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenExpired       = errors.New("token expired")
)

// Authorization errors
var (
	ErrForbidden = errors.New("forbidden")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping a sentinel error with a
// caller-facing message
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
