package apperrors

import "errors"

// Common errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrUserNotFound     = errors.New("user not found")

	// Infrastructure errors
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Provisioning errors
var (
	ErrUsernameAlreadyExists   = errors.New("username already exists")
	ErrRegdNumberAlreadyExists = errors.New("registration number already exists")
	ErrStaffCodeAlreadyExists  = errors.New("staff code already exists")
)

// Attendance errors
var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrFacultyNotFound      = errors.New("faculty not found")
	ErrClassroomNotFound    = errors.New("classroom not found")
	ErrClassroomExists      = errors.New("classroom with this name already exists")
	ErrDuplicateAttendance  = errors.New("attendance already marked for this date")
	ErrInvalidAttendanceDay = errors.New("invalid attendance date")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
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

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewValidationError creates a validation failure tied to a request field
func NewValidationError(field, message string) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}
