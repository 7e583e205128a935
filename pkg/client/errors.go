package client

import (
	"errors"
	"fmt"
)

// AuthError is an authorization failure from the API: the session token is
// missing, invalid, or expired. The client never retries these; it fires the
// auth-expiry hook and surfaces the error to the caller.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "session expired"
	}
	return "session expired: " + e.Message
}

// APIError is any other non-2xx response, carrying the status code and the
// server-provided message verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// IsAuthExpired returns true if err (or any wrapped error) is an AuthError.
func IsAuthExpired(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsStatus returns true if err (or any wrapped error) is an APIError with the
// given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == code
	}
	return false
}
