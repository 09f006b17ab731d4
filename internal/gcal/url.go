package gcal

import (
	"net/url"
	"strings"
)

// renderBaseURL is the Google Calendar event template endpoint.
const renderBaseURL = "https://calendar.google.com/calendar/render"

// EventURL builds a Google Calendar "create event" link for the given title
// and ISO-8601 start/end timestamps. Location may be empty.
//
// Google Calendar expects compact timestamps (20250915T100000Z), so a
// trailing "+00:00" UTC offset becomes "Z" and the dashes and colons are
// stripped. Timestamps are otherwise passed through untouched.
func EventURL(title, startISO, endISO, location string) string {
	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", title)
	params.Set("dates", compactTimestamp(startISO)+"/"+compactTimestamp(endISO))
	params.Set("location", location)

	return renderBaseURL + "?" + params.Encode()
}

// compactTimestamp converts an ISO-8601 timestamp to the compact form
// Google Calendar expects.
func compactTimestamp(iso string) string {
	s := strings.Replace(iso, "+00:00", "Z", 1)
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, ":", "")
}
