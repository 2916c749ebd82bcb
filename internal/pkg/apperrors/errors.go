package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrDuplicateField   = errors.New("duplicate field value entered")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnauthenticated    = errors.New("not authorized to access this route")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Upload errors
	ErrUploadFailed = errors.New("file upload failed")
)

// Bootcamp errors
var (
	ErrBootcampNotFound     = errors.New("bootcamp not found")
	ErrBootcampAlreadyOwned = errors.New("user has already published a bootcamp")
	ErrZipcodeNotGeocodable = errors.New("zipcode could not be geocoded")
	ErrPhotoNotImage        = errors.New("uploaded file is not an image")
	ErrPhotoTooLarge        = errors.New("uploaded file exceeds the size limit")
)

// Course errors
var (
	ErrCourseNotFound = errors.New("course not found")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrRoleNotAssignable  = errors.New("role cannot be assigned at registration")
)

// StatusError carries a human message and an HTTP status code alongside a
// sentinel cause. Handlers raise it, the boundary translator renders it.
type StatusError struct {
	Err        error
	Message    string
	StatusCode int
}

// Error implements the error interface
func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *StatusError) Unwrap() error {
	return e.Err
}

// NewStatusError creates a StatusError with an underlying sentinel
func NewStatusError(err error, message string, statusCode int) *StatusError {
	return &StatusError{
		Err:        err,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewNotFoundError creates a 404 error with a message
func NewNotFoundError(message string) error {
	return &StatusError{Err: ErrResourceNotFound, Message: message, StatusCode: 404}
}

// NewForbiddenError creates a 403 error with a message
func NewForbiddenError(message string) error {
	return &StatusError{Err: ErrPermissionDenied, Message: message, StatusCode: 403}
}

// NewBadRequestError creates a 400 error with a message
func NewBadRequestError(message string) error {
	return &StatusError{Err: ErrBadRequest, Message: message, StatusCode: 400}
}
