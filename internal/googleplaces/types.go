package googleplaces

// Place is one point of interest, normalized from a nearby-search record.
// Only PlaceID and Name are guaranteed; pointer fields distinguish "absent"
// from a legitimate zero value (a rating of 0, a price level of 0, a place
// reported as closed).
type Place struct {
	// PlaceID is the provider's opaque place identifier
	PlaceID string `json:"place_id"`

	// Name is the place name
	Name string `json:"name"`

	// Address is the vicinity string, empty when unavailable
	Address string `json:"address"`

	// Latitude and Longitude are independently optional
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	// Rating is 0-5, when reported
	Rating *float64 `json:"rating,omitempty"`

	// UserRatingsTotal is the review count, 0 when unreported
	UserRatingsTotal int `json:"user_ratings_total"`

	// PriceLevel is 0 (free) through 4 (very expensive), when reported
	PriceLevel *int `json:"price_level,omitempty"`

	// Types are the provider's category tags
	Types []string `json:"types"`

	// OpenNow is tri-state: open, closed, or unknown (nil)
	OpenNow *bool `json:"is_open_now,omitempty"`

	// PhotoReference is an opaque token for later photo retrieval
	PhotoReference string `json:"photo_reference,omitempty"`
}

// SearchQuery materializes one place search. PlaceType is normalized and
// numeric bounds are clamped by SearchPlaces before any request goes out.
type SearchQuery struct {
	// Location is either an address string or a "lat,lon" pair
	Location string

	// PlaceType is the requested category, alias or canonical
	PlaceType string

	// Radius is the search radius in meters; zero means the default
	Radius int

	// Keyword optionally narrows the search
	Keyword string

	// MinRating drops places rated below it (or unrated), when set
	MinRating *float64

	// PriceLevel keeps only places at exactly this level, when set
	PriceLevel *int
}
