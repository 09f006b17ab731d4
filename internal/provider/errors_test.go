package provider

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestAPIErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "with provider message",
			err:  &APIError{Provider: "google-places", Status: "REQUEST_DENIED", Message: "API key invalid"},
			want: "google-places API error: API key invalid",
		},
		{
			name: "status only",
			err:  &APIError{Provider: "google-places", Status: "UNKNOWN_ERROR"},
			want: "google-places API error: UNKNOWN_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHTTPErrorCarriesStatusCode(t *testing.T) {
	err := &HTTPError{Provider: "ticketmaster", StatusCode: 503}
	if got := err.Error(); got != "ticketmaster HTTP error: status 503" {
		t.Errorf("Error() = %q", got)
	}

	var httpErr *HTTPError
	wrapped := fmt.Errorf("searching events: %w", err)
	if !errors.As(wrapped, &httpErr) {
		t.Fatal("errors.As failed to unwrap *HTTPError")
	}
	if httpErr.StatusCode != 503 {
		t.Errorf("StatusCode = %d, want 503", httpErr.StatusCode)
	}
}

func TestIsTimeout(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "timeout error type",
			err:  &TimeoutError{Provider: "google-places", Op: "fetching places"},
			want: true,
		},
		{
			name: "wrapped timeout error",
			err:  fmt.Errorf("search: %w", &TimeoutError{Provider: "ticketmaster", Op: "search events"}),
			want: true,
		},
		{
			name: "context deadline",
			err:  context.DeadlineExceeded,
			want: true,
		},
		{
			name: "http error is not a timeout",
			err:  &HTTPError{Provider: "ticketmaster", StatusCode: 500},
			want: false,
		},
		{
			name: "nil",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTimeout(tt.err); got != tt.want {
				t.Errorf("IsTimeout() = %v, want %v", got, tt.want)
			}
		})
	}
}
