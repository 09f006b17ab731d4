package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestErrWithNilError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("operation done", Err(nil))

	if strings.Contains(buf.String(), "error=") {
		t.Errorf("nil error should be omitted from output, got: %s", buf.String())
	}
}

func TestErrWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("operation failed", Err(errors.New("boom")))

	if !strings.Contains(buf.String(), "error=boom") {
		t.Errorf("expected error attribute in output, got: %s", buf.String())
	}
}

func TestWithHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	WithTool(WithProvider(logger, "ticketmaster"), "get_events_by_date").Info("hello")

	out := buf.String()
	if !strings.Contains(out, "provider=ticketmaster") {
		t.Errorf("missing provider attribute: %s", out)
	}
	if !strings.Contains(out, "tool=get_events_by_date") {
		t.Errorf("missing tool attribute: %s", out)
	}
}

func TestSanitizeKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "<empty>"},
		{"abcd1234", "[key:8 chars]"},
	}

	for _, tt := range tests {
		if got := SanitizeKey(tt.input); got != tt.want {
			t.Errorf("SanitizeKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
