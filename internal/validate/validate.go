package validate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the calendar date layout accepted for search ranges.
const DateFormat = "2006-01-02"

const maxInputLength = 200

// invalidChars are rejected in locations and keywords. They have no place in
// a city name or search term and would otherwise travel verbatim into
// provider query strings.
const invalidChars = "<>:/\\|?*{}()[]@%&$#^=+`"

// Error represents invalid user input. It is always produced before any
// network call is made.
type Error struct {
	// Field is the input that failed validation (e.g., "location", "start_date")
	Field string

	// Reason is a human-readable description of the failure
	Reason string
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Location validates a city or address string. The input is trimmed before
// the length and character checks; the trimmed value is returned.
func Location(location string) (string, error) {
	location = strings.TrimSpace(location)

	if location == "" {
		return "", &Error{Field: "location", Reason: "location is required"}
	}
	if len(location) < 2 {
		return "", &Error{Field: "location", Reason: "location must be at least 2 characters long"}
	}
	if len(location) > maxInputLength {
		return "", &Error{Field: "location", Reason: "location is too long"}
	}
	if strings.ContainsAny(location, invalidChars) {
		return "", &Error{Field: "location", Reason: "location contains invalid characters"}
	}

	return location, nil
}

// Keyword validates an optional search keyword. Unlike Location, an empty
// keyword passes: keywords are optional upstream.
func Keyword(keyword string) (string, error) {
	keyword = strings.TrimSpace(keyword)

	if len(keyword) > maxInputLength {
		return "", &Error{Field: "keyword", Reason: "keyword is too long"}
	}
	if strings.ContainsAny(keyword, invalidChars) {
		return "", &Error{Field: "keyword", Reason: "keyword contains invalid characters"}
	}

	return keyword, nil
}

// DateRange validates a YYYY-MM-DD search range. The start date must be
// strictly before the end date and strictly in the future at validation
// time. The original strings are returned unchanged; downstream request
// building re-parses them.
func DateRange(startDate, endDate string) (string, string, error) {
	start, err := time.Parse(DateFormat, startDate)
	if err != nil {
		return "", "", &Error{Field: "start_date", Reason: "invalid date format, use YYYY-MM-DD"}
	}
	end, err := time.Parse(DateFormat, endDate)
	if err != nil {
		return "", "", &Error{Field: "end_date", Reason: "invalid date format, use YYYY-MM-DD"}
	}

	if !start.Before(end) {
		return "", "", &Error{Field: "start_date", Reason: "start date must be before end date"}
	}
	if !start.After(time.Now()) {
		return "", "", &Error{Field: "start_date", Reason: "start date must be in the future"}
	}

	return startDate, endDate, nil
}

// IsCoordinates reports whether location is already a "lat,lon" coordinate
// pair with both components in range. It never returns an error; anything
// that does not parse is simply not a coordinate string.
func IsCoordinates(location string) bool {
	parts := strings.Split(location, ",")
	if len(parts) != 2 {
		return false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return false
	}

	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// FormatCoordinates renders a coordinate pair in the "lat,lon" form the
// provider APIs expect.
func FormatCoordinates(lat, lon float64) string {
	return fmt.Sprintf("%v,%v", lat, lon)
}
