// Package errors defines the failure taxonomy shared by the core:
// network failures (retried, then surfaced with their attempt count),
// API failures (non-2xx responses, never retried) and validation
// failures (bad caller input, detected before any network call).
package errors

import (
	"errors"
	"fmt"
)

// Kind categorizes a failure for callers that branch on it.
type Kind int

const (
	// Network is a transport-level failure: timeout, refused
	// connection, other I/O trouble.
	Network Kind = iota

	// API is a non-2xx HTTP response from the remote service.
	API

	// Validation is malformed caller input caught before the network
	// was touched.
	Validation
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Network:
		return "network"
	case API:
		return "api"
	case Validation:
		return "validation"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Error is the single failure value the core produces. It keeps enough
// detail for an operator to tell credential, connectivity and service
// problems apart without re-running the query.
type Error struct {
	Kind       Kind
	StatusCode int    // HTTP status for API errors, 0 otherwise
	Body       string // response body for API errors
	Attempts   int    // attempts made for network errors, 0 otherwise
	Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case API:
		return fmt.Sprintf("api error: HTTP %d: %s", e.StatusCode, e.Body)
	case Network:
		return fmt.Sprintf("network error: %v", e.Underlying)
	default:
		return e.Underlying.Error()
	}
}

// Unwrap returns the underlying error for error-chain compatibility.
func (e *Error) Unwrap() error { return e.Underlying }

// NewNetwork wraps a transport-level failure with the number of
// attempts that were made before giving up.
func NewNetwork(attempts int, err error) *Error {
	return &Error{Kind: Network, Attempts: attempts, Underlying: err}
}

// NewAPI wraps a non-2xx response, preserving status and body for
// diagnostic display.
func NewAPI(status int, body string) *Error {
	return &Error{
		Kind:       API,
		StatusCode: status,
		Body:       body,
		Underlying: fmt.Errorf("unexpected status %d", status),
	}
}

// NewValidation reports malformed caller input.
func NewValidation(format string, args ...any) *Error {
	return &Error{Kind: Validation, Underlying: fmt.Errorf(format, args...)}
}

// IsKind reports whether err carries the given kind anywhere in its
// chain.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// StatusCode returns the HTTP status carried by an API error, or 0 when
// err is not one.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Kind == API {
		return e.StatusCode
	}
	return 0
}
