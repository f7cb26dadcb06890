package api

import (
	"fmt"
	"net/http"

	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"
)

// Error is a failed API call. It distinguishes the two remote failure
// classes: a network failure has Status 0 and a wrapped transport error,
// a server error has the HTTP status and the optional message from the
// response's JSON error field.
type Error struct {
	// Op names the failed operation, e.g. "list candidates".
	Op string

	// Status is the HTTP status code, 0 when no response arrived.
	Status int

	// Message is the server's error text, empty when the envelope had none.
	Message string

	// Err is the underlying transport error, nil for server errors.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("api: %s: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("api: %s: %s (status %d)", e.Op, e.Message, e.Status)
	default:
		return fmt.Sprintf("api: %s: status %d", e.Op, e.Status)
	}
}

// Unwrap returns the underlying transport error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is maps a 404 response to domain.ErrNotFound, so callers can test
// membership with errors.Is without importing this package.
func (e *Error) Is(target error) bool {
	return target == domain.ErrNotFound && e.Status == http.StatusNotFound
}

// ServerMessage returns the server-provided error text, empty when the
// failure was network-level or the server omitted it. Notification code
// prefers this over generic fallbacks.
func (e *Error) ServerMessage() string {
	return e.Message
}

// IsNetwork reports whether no HTTP response was received.
func (e *Error) IsNetwork() bool {
	return e.Status == 0
}
