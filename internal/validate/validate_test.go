package validate

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLocation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain city name",
			input: "Seattle",
			want:  "Seattle",
		},
		{
			name:  "surrounding whitespace is trimmed",
			input: "  New York  ",
			want:  "New York",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "single character",
			input:   "a",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   strings.Repeat("a", 201),
			wantErr: true,
		},
		{
			name:    "forbidden angle bracket",
			input:   "Seattle<script>",
			wantErr: true,
		},
		{
			name:    "forbidden slash",
			input:   "Seattle/Tacoma",
			wantErr: true,
		},
		{
			name:    "forbidden percent",
			input:   "Seattle%20",
			wantErr: true,
		},
		{
			name:  "exactly 200 characters passes",
			input: strings.Repeat("a", 200),
			want:  strings.Repeat("a", 200),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Location(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Location(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				var vErr *Error
				if !errors.As(err, &vErr) {
					t.Errorf("Location(%q) error is not *validate.Error: %T", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Location(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestKeyword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain keyword",
			input: "concert",
			want:  "concert",
		},
		{
			name:  "empty keyword passes",
			input: "",
			want:  "",
		},
		{
			name:    "too long",
			input:   strings.Repeat("x", 201),
			wantErr: true,
		},
		{
			name:    "forbidden characters",
			input:   "rock&roll",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Keyword(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Keyword(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Keyword(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateRange(t *testing.T) {
	future := func(days int) string {
		return time.Now().AddDate(0, 0, days).Format(DateFormat)
	}

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{
			name:  "valid future range",
			start: future(7),
			end:   future(10),
		},
		{
			name:    "malformed start date",
			start:   "2026/01/01",
			end:     future(10),
			wantErr: true,
		},
		{
			name:    "malformed end date",
			start:   future(7),
			end:     "not-a-date",
			wantErr: true,
		},
		{
			name:    "start equals end",
			start:   future(7),
			end:     future(7),
			wantErr: true,
		},
		{
			name:    "start after end",
			start:   future(10),
			end:     future(7),
			wantErr: true,
		},
		{
			name:    "start is today",
			start:   time.Now().Format(DateFormat),
			end:     future(5),
			wantErr: true,
		},
		{
			name:    "start in the past",
			start:   future(-3),
			end:     future(5),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStart, gotEnd, err := DateRange(tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DateRange(%q, %q) error = %v, wantErr %v", tt.start, tt.end, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			// The original strings come back unchanged.
			if gotStart != tt.start || gotEnd != tt.end {
				t.Errorf("DateRange(%q, %q) = (%q, %q), want inputs unchanged", tt.start, tt.end, gotStart, gotEnd)
			}
		})
	}
}

func TestIsCoordinates(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"34.05,-118.25", true},
		{"34.05, -118.25", true},
		{" 0,0 ", true},
		{"-90,180", true},
		{"Los Angeles", false},
		{"91,0", false},
		{"-91,0", false},
		{"0,181", false},
		{"0,-181", false},
		{"34.05", false},
		{"34.05,-118.25,12", false},
		{"abc,def", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsCoordinates(tt.input); got != tt.want {
				t.Errorf("IsCoordinates(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatCoordinates(t *testing.T) {
	got := FormatCoordinates(34.05, -118.25)
	if got != "34.05,-118.25" {
		t.Errorf("FormatCoordinates(34.05, -118.25) = %q, want %q", got, "34.05,-118.25")
	}

	// Round trip: formatted coordinates are recognized as coordinates.
	if !IsCoordinates(got) {
		t.Errorf("IsCoordinates(%q) = false, want true", got)
	}
}
