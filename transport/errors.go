package transport

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized marks 401 responses: the token is missing, invalid, or
	// expired from the backend's point of view.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden marks 403 responses: the session is valid but lacks the
	// privilege for the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound marks 404 responses.
	ErrNotFound = errors.New("not found")
)

// StatusError carries the details of a non-2xx backend response. errors.Is
// matches it against the sentinel for its status class.
type StatusError struct {
	Method    string
	Path      string
	Status    int
	RequestID string
	Detail    string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
}

func (e *StatusError) Unwrap() error {
	switch e.Status {
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	default:
		return nil
	}
}
