package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUsernameTaken is returned when the requested username already exists.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrAuthenticationFailed is returned for a bad username/password pair.
	// Unknown username and wrong password intentionally share this error so
	// responses cannot be used for username enumeration.
	ErrAuthenticationFailed = errors.New("invalid username or password")
	// ErrMissingCredential is returned when no authorization credential was presented.
	ErrMissingCredential = errors.New("authorization credential not provided")
	// ErrInvalidToken is returned for a malformed, unverifiable or expired token.
	ErrInvalidToken = errors.New("invalid or expired access token")
	// ErrUserNotFound is returned when a valid token references a user that no longer exists.
	ErrUserNotFound = errors.New("user not found")
	// ErrLessonNotFound is returned when the requested lesson does not exist.
	ErrLessonNotFound = errors.New("lesson not found")
	// ErrRouteNotFound is returned for requests that match no route.
	ErrRouteNotFound = errors.New("no route matches this path")
)

// ValidationError carries per-field messages from registration input checks.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "submitted data is not valid"
}

// NewValidationError creates a validation error from a field→message map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// ErrorResponse is the uniform error body sent to clients.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: e.Message,
		Errors:  e.Fields,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. This is the only place
// the error taxonomy is translated to wire status codes. Unclassified errors
// collapse to a generic 500 so internal detail never leaks to the client.
func MapErrorToHTTP(err error) *HTTPError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		httpErr := NewHTTPError(http.StatusUnprocessableEntity, ve.Error())
		httpErr.Fields = ve.Fields
		return httpErr
	}

	switch {
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusUnprocessableEntity, ErrUsernameTaken.Error())
	case errors.Is(err, ErrAuthenticationFailed):
		return NewHTTPError(http.StatusUnauthorized, ErrAuthenticationFailed.Error())
	case errors.Is(err, ErrMissingCredential):
		return NewHTTPError(http.StatusUnauthorized, ErrMissingCredential.Error())
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidToken.Error())
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusUnauthorized, ErrUserNotFound.Error())
	case errors.Is(err, ErrLessonNotFound):
		return NewHTTPError(http.StatusNotFound, ErrLessonNotFound.Error())
	case errors.Is(err, ErrRouteNotFound):
		return NewHTTPError(http.StatusNotFound, ErrRouteNotFound.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
