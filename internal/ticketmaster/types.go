package ticketmaster

// Event is one occurrence of a ticketed happening, normalized from a
// Discovery API record. Only Name and ID are guaranteed; everything else is
// populated when the provider supplies it.
type Event struct {
	// Name is the event title
	Name string `json:"name"`

	// ID is the provider's opaque event identifier
	ID string `json:"id"`

	// URL is the event page, when available
	URL string `json:"url,omitempty"`

	// StartDate is the local calendar date (YYYY-MM-DD), when available
	StartDate string `json:"start_date,omitempty"`

	// StartTime is the provider-supplied local time string, copied verbatim
	StartTime string `json:"start_time,omitempty"`

	// Venue information from the first embedded venue, when available
	VenueName    string `json:"venue_name,omitempty"`
	VenueAddress string `json:"venue_address,omitempty"`
	VenueCity    string `json:"venue_city,omitempty"`

	// PriceMin and PriceMax come from the first price range and are always
	// set together
	PriceMin *float64 `json:"price_min,omitempty"`
	PriceMax *float64 `json:"price_max,omitempty"`

	// Category and Genre come from the first classification
	Category string `json:"category,omitempty"`
	Genre    string `json:"genre,omitempty"`
}

// SearchQuery materializes one event search. Zero values for Radius, Unit
// and Size are replaced with defaults at request time.
type SearchQuery struct {
	// City to search in (already validated)
	City string

	// Keyword optionally narrows the search (already validated)
	Keyword string

	// StartDate and EndDate bound the search range (YYYY-MM-DD). The end
	// date is inclusive: request building pads it by one day to cover the
	// provider's end-of-day semantics. The query itself is never mutated.
	StartDate string
	EndDate   string

	// Radius is the search radius, 1-500
	Radius int

	// Unit is the radius unit
	Unit string

	// Size is the maximum number of events to return, 1-100
	Size int
}
