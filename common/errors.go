package common

import (
	"errors"
	"fmt"
)

// StatusTokenExpired is the distinguished status code the dashboard API uses
// to signal that the access token has expired and should be refreshed.
const StatusTokenExpired = 498

// APIError carries the HTTP status and the server-provided detail of a
// failed request. Detail may be a string, a list of field errors, or an
// arbitrary object; callers are responsible for rendering it.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

func NewAPIError(status int, message string, detail any) *APIError {
	return &APIError{
		Status:  status,
		Message: message,
		Detail:  detail,
	}
}

// SessionExpiredError signals that the access token expired and the refresh
// attempt failed as well. Callers are expected to drop back to the login
// flow when they see this error.
type SessionExpiredError struct {
	Reason error
}

func (e *SessionExpiredError) Error() string {
	if e.Reason != nil {
		return fmt.Sprintf("session expired and refresh failed: %v", e.Reason)
	}
	return "session expired and refresh failed"
}

func (e *SessionExpiredError) Unwrap() error {
	return e.Reason
}

// IsSessionExpired reports whether err is (or wraps) a SessionExpiredError.
func IsSessionExpired(err error) bool {
	var se *SessionExpiredError
	return errors.As(err, &se)
}
