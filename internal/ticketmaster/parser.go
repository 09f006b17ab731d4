package ticketmaster

import (
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/mwolter/tripscout/internal/logging"
	"github.com/mwolter/tripscout/internal/validate"
)

// parseEventsResponse normalizes one Discovery API search response into
// Event records. A malformed record is logged and skipped; it never aborts
// the batch. A response without the embedded events container yields an
// empty list.
func (c *Client) parseEventsResponse(body []byte) []Event {
	events := []Event{}

	embedded := gjson.GetBytes(body, "_embedded.events")
	if !embedded.Exists() {
		return events
	}

	embedded.ForEach(func(_, raw gjson.Result) bool {
		event, err := parseEvent(raw)
		if err != nil {
			c.logger.Warn("skipping malformed event record",
				logging.Provider(ProviderName), logging.Err(err))
			return true
		}
		events = append(events, *event)
		return true
	})

	return events
}

// parseEvent maps a single provider record to an Event. Name and ID are
// required; each optional field is guarded independently so a missing one
// never blocks extraction of the fields that follow. A field that is
// present but malformed (an unparsable start date, a price range missing
// one bound, an inverted or negative price range) is structural: the whole
// record is rejected.
func parseEvent(raw gjson.Result) (*Event, error) {
	name := raw.Get("name").String()
	if name == "" {
		return nil, fmt.Errorf("record has no name")
	}
	id := raw.Get("id").String()
	if id == "" {
		return nil, fmt.Errorf("record has no id")
	}

	event := &Event{
		Name: name,
		ID:   id,
		URL:  raw.Get("url").String(),
	}

	if start := raw.Get("dates.start"); start.Exists() {
		if localDate := start.Get("localDate"); localDate.Exists() {
			if _, err := time.Parse(validate.DateFormat, localDate.String()); err != nil {
				return nil, fmt.Errorf("unparsable start date %q", localDate.String())
			}
			event.StartDate = localDate.String()
		}
		if localTime := start.Get("localTime"); localTime.Exists() {
			event.StartTime = localTime.String()
		}
	}

	if venue := raw.Get("_embedded.venues.0"); venue.Exists() {
		event.VenueName = venue.Get("name").String()
		event.VenueAddress = venue.Get("address.line1").String()
		event.VenueCity = venue.Get("city.name").String()
	}

	if priceRange := raw.Get("priceRanges.0"); priceRange.Exists() {
		minRes := priceRange.Get("min")
		maxRes := priceRange.Get("max")
		if !minRes.Exists() || !maxRes.Exists() {
			return nil, fmt.Errorf("price range missing min or max")
		}
		minPrice, maxPrice := minRes.Float(), maxRes.Float()
		if minPrice < 0 || maxPrice < 0 || minPrice > maxPrice {
			return nil, fmt.Errorf("invalid price range %v-%v", minPrice, maxPrice)
		}
		event.PriceMin = &minPrice
		event.PriceMax = &maxPrice
	}

	if classification := raw.Get("classifications.0"); classification.Exists() {
		event.Category = classification.Get("segment.name").String()
		event.Genre = classification.Get("genre.name").String()
	}

	return event, nil
}
