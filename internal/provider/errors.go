package provider

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// APIError represents a non-success status reported inside a provider's
// response body. The provider's own message is carried where available.
type APIError struct {
	// Provider is the upstream API name (e.g., "ticketmaster", "google-places")
	Provider string

	// Status is the provider's status value, when the API reports one
	Status string

	// Message is the provider-supplied error message, if any
	Message string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s API error: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("%s API error: %s", e.Provider, e.Status)
}

// HTTPError represents an HTTP-level failure (a non-2xx response status).
type HTTPError struct {
	// Provider is the upstream API name
	Provider string

	// StatusCode is the HTTP response status code
	StatusCode int
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s HTTP error: status %d", e.Provider, e.StatusCode)
}

// TimeoutError represents a request that exceeded its deadline. It is kept
// distinct from HTTPError so callers can decide to retry.
type TimeoutError struct {
	// Provider is the upstream API name
	Provider string

	// Op describes what timed out (e.g., "search events", "geocode")
	Op string
}

// Error implements the error interface
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: request timeout while %s", e.Provider, e.Op)
}

// IsTimeout reports whether err is a deadline or network timeout of any
// shape: a *TimeoutError, a context deadline, or a net.Error timeout as
// surfaced by net/http.
func IsTimeout(err error) bool {
	var te *TimeoutError
	if errors.As(err, &te) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
