package nautobot

import (
	"errors"
	"fmt"
	"net/http"
)

// The client maps every failed request onto one of three error kinds:
// AuthError (credential rejected), ConnectionError (transport failure or
// unreachable endpoint) and APIError (non-2xx application response). Callers
// switch on the kind to pick remediation text; nothing else leaks through.

// AuthError indicates the API rejected the configured token (401 or 403).
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("authentication failed (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("authentication failed (%d)", e.StatusCode)
}

// ConnectionError indicates the endpoint could not be reached: DNS failure,
// refused connection, timeout, or a request issued after Close.
type ConnectionError struct {
	Message string
	Err     error // underlying transport error, may be nil
}

func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("connection failed: %s: %v", e.Message, e.Err)
	}
	return "connection failed: " + e.Message
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// APIError indicates the API answered with an application-level failure.
// StatusCode carries the HTTP status; Body the response text when available.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// IsAuth returns true if the error is an AuthError.
func IsAuth(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// IsConnection returns true if the error is a ConnectionError.
func IsConnection(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}

// IsAPI returns true if the error is an APIError.
func IsAPI(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}

// IsNotFound returns true if the error is an APIError with status 404.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == http.StatusNotFound
}
