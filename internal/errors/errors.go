package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering an already used email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrMissingFields is returned when required input fields are absent.
	ErrMissingFields = errors.New("required fields missing")
	// ErrNoLocator is returned when an upload carries neither a file URL nor a youtube URL.
	ErrNoLocator = errors.New("either file_url or youtube_url is required")
	// ErrFileNotFound is returned when a registry entry does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrUserNotFound is returned when a user record does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrForbidden is returned when the caller's role is insufficient.
	ErrForbidden = errors.New("insufficient permissions")
	// ErrUnauthorized is returned when no token accompanies the request.
	ErrUnauthorized = errors.New("authentication required")
	// ErrTokenExpired is returned when a token is past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned when a token is malformed or badly signed.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrSelfDelete is returned when a super admin tries to delete their own account.
	ErrSelfDelete = errors.New("cannot delete your own account")
	// ErrSuperAdminProtected is returned when deleting a super admin account.
	ErrSuperAdminProtected = errors.New("cannot delete a super admin")
	// ErrSuperAdminCreation is returned when trying to mint another super admin.
	ErrSuperAdminCreation = errors.New("cannot create a super admin")
	// ErrUpstreamStore is returned when the external store or blob store fails.
	ErrUpstreamStore = errors.New("upstream store failure")
)

// Response is the JSON envelope every failure uses. Success responses carry
// success=true plus endpoint specific fields.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, detail string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Detail:     detail,
	}
}

// Envelope converts an HTTPError to the failure envelope.
func (e *HTTPError) Envelope() Response {
	return Response{
		Success: false,
		Message: e.Message,
		Error:   e.Detail,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrNoLocator),
		errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "")
	case errors.Is(err, ErrForbidden),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenInvalid),
		errors.Is(err, ErrSelfDelete),
		errors.Is(err, ErrSuperAdminProtected),
		errors.Is(err, ErrSuperAdminCreation):
		return NewHTTPError(http.StatusForbidden, err.Error(), "")
	case errors.Is(err, ErrFileNotFound),
		errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", err.Error())
	}
}
