// Package ticketmaster provides a client for the Ticketmaster Discovery API.
//
// The package covers event search by city and date range. Provider responses
// are normalized into Event records; individual malformed records are
// skipped without failing the batch, since the Discovery API routinely
// returns partially populated documents.
package ticketmaster
