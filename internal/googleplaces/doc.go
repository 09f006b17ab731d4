// Package googleplaces provides a client for the Google Places and
// Geocoding APIs.
//
// The package covers nearby search, place details, and forward geocoding.
// Search results are normalized into Place records, filtered and ranked
// client-side; free-text locations are resolved to coordinates before the
// nearby search is issued.
package googleplaces
