package ticketmaster

import (
	"io"
	"log/slog"
	"testing"

	"github.com/tidwall/gjson"
)

func testClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient("test-key", slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func TestParseEventAllFields(t *testing.T) {
	raw := gjson.Parse(`{
		"name": "The National",
		"id": "evt123",
		"url": "https://tickets.example.com/evt123",
		"dates": {"start": {"localDate": "2026-03-14", "localTime": "20:00:00"}},
		"_embedded": {"venues": [{
			"name": "Paramount Theatre",
			"address": {"line1": "911 Pine St"},
			"city": {"name": "Seattle"}
		}]},
		"priceRanges": [{"min": 45.5, "max": 120}],
		"classifications": [{"segment": {"name": "Music"}, "genre": {"name": "Rock"}}]
	}`)

	event, err := parseEvent(raw)
	if err != nil {
		t.Fatalf("parseEvent() error = %v", err)
	}

	if event.Name != "The National" || event.ID != "evt123" {
		t.Errorf("identity = (%q, %q)", event.Name, event.ID)
	}
	if event.URL != "https://tickets.example.com/evt123" {
		t.Errorf("URL = %q", event.URL)
	}
	if event.StartDate != "2026-03-14" {
		t.Errorf("StartDate = %q", event.StartDate)
	}
	if event.StartTime != "20:00:00" {
		t.Errorf("StartTime = %q", event.StartTime)
	}
	if event.VenueName != "Paramount Theatre" || event.VenueAddress != "911 Pine St" || event.VenueCity != "Seattle" {
		t.Errorf("venue = (%q, %q, %q)", event.VenueName, event.VenueAddress, event.VenueCity)
	}
	if event.PriceMin == nil || *event.PriceMin != 45.5 {
		t.Errorf("PriceMin = %v", event.PriceMin)
	}
	if event.PriceMax == nil || *event.PriceMax != 120 {
		t.Errorf("PriceMax = %v", event.PriceMax)
	}
	if event.Category != "Music" || event.Genre != "Rock" {
		t.Errorf("classification = (%q, %q)", event.Category, event.Genre)
	}
}

func TestParseEventMinimal(t *testing.T) {
	event, err := parseEvent(gjson.Parse(`{"name": "Mystery Show", "id": "x1"}`))
	if err != nil {
		t.Fatalf("parseEvent() error = %v", err)
	}

	if event.StartDate != "" || event.StartTime != "" {
		t.Errorf("expected empty start fields, got (%q, %q)", event.StartDate, event.StartTime)
	}
	if event.PriceMin != nil || event.PriceMax != nil {
		t.Error("expected nil prices")
	}
}

func TestParseEventStructuralFailures(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{
			name: "missing id",
			json: `{"name": "No ID Show"}`,
		},
		{
			name: "missing name",
			json: `{"id": "x2"}`,
		},
		{
			name: "unparsable start date",
			json: `{"name": "Bad Date", "id": "x3", "dates": {"start": {"localDate": "March 14th"}}}`,
		},
		{
			name: "price range missing max",
			json: `{"name": "Half Price", "id": "x4", "priceRanges": [{"min": 20}]}`,
		},
		{
			name: "inverted price range",
			json: `{"name": "Upside Down", "id": "x5", "priceRanges": [{"min": 100, "max": 20}]}`,
		},
		{
			name: "negative price",
			json: `{"name": "Negative", "id": "x6", "priceRanges": [{"min": -5, "max": 20}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseEvent(gjson.Parse(tt.json)); err == nil {
				t.Error("parseEvent() expected error, got nil")
			}
		})
	}
}

func TestParseEventVenueFieldsIndependentlyOptional(t *testing.T) {
	event, err := parseEvent(gjson.Parse(`{
		"name": "Partial Venue", "id": "x7",
		"_embedded": {"venues": [{"city": {"name": "Portland"}}]}
	}`))
	if err != nil {
		t.Fatalf("parseEvent() error = %v", err)
	}

	if event.VenueName != "" || event.VenueAddress != "" {
		t.Errorf("expected empty venue name/address, got (%q, %q)", event.VenueName, event.VenueAddress)
	}
	if event.VenueCity != "Portland" {
		t.Errorf("VenueCity = %q", event.VenueCity)
	}
}

func TestParseEventsResponseSkipsBadRecords(t *testing.T) {
	client := testClient(t)

	// The middle record has no id; its neighbors must still parse.
	body := []byte(`{"_embedded": {"events": [
		{"name": "First", "id": "a"},
		{"name": "Broken"},
		{"name": "Third", "id": "c"}
	]}}`)

	events := client.parseEventsResponse(body)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].ID != "a" || events[1].ID != "c" {
		t.Errorf("ids = (%q, %q)", events[0].ID, events[1].ID)
	}
}

func TestParseEventsResponseNoEmbeddedContainer(t *testing.T) {
	client := testClient(t)

	events := client.parseEventsResponse([]byte(`{"page": {"totalElements": 0}}`))
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}
