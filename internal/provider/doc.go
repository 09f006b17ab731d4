// Package provider defines the shared error taxonomy for upstream API
// failures.
//
// Three failure classes are distinguished so callers can react differently:
//   - APIError: the provider answered with a non-success status in its
//     response body (e.g., a Google Places status other than OK)
//   - HTTPError: the transport returned a non-2xx HTTP status
//   - TimeoutError: the request exceeded its deadline; callers may retry
//
// Validation failures never reach this package; they are rejected before a
// request is issued (see internal/validate).
package provider
