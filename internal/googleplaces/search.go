package googleplaces

import (
	"context"
	"sort"

	"github.com/mwolter/tripscout/internal/logging"
	"github.com/mwolter/tripscout/internal/validate"
)

const (
	defaultSearchRadius = 5000

	minSearchRadius = 1
	maxSearchRadius = 50000

	// maxSearchResults caps what SearchPlaces hands back after ranking.
	maxSearchResults = 20
)

// SearchPlaces resolves the query's location to coordinates when needed,
// runs one nearby search, then filters, ranks and truncates the results.
//
// The place type must resolve through the alias table; out-of-range radius,
// rating and price bounds are clamped silently rather than rejected. When a
// minimum rating is set, unrated places are dropped; when a price level is
// set, places without a reported price level are dropped too. Results come
// back sorted by rating descending (unrated sorts last), at most 20 of them.
func (c *Client) SearchPlaces(ctx context.Context, query SearchQuery) ([]Place, error) {
	placeType, err := NormalizePlaceType(query.PlaceType)
	if err != nil {
		return nil, err
	}

	radius := query.Radius
	if radius == 0 {
		radius = defaultSearchRadius
	}
	radius = clampInt(radius, minSearchRadius, maxSearchRadius)

	var minRating *float64
	if query.MinRating != nil {
		value := clampFloat(*query.MinRating, 1.0, 5.0)
		minRating = &value
	}
	var priceLevel *int
	if query.PriceLevel != nil {
		value := clampInt(*query.PriceLevel, 0, 4)
		priceLevel = &value
	}

	location := query.Location
	if !validate.IsCoordinates(location) {
		lat, lon, err := c.Geocode(ctx, location)
		if err != nil {
			return nil, err
		}
		location = validate.FormatCoordinates(lat, lon)
		c.logger.Debug("geocoded search location",
			logging.Provider(ProviderName), "location", query.Location, "coordinates", location)
	}

	places, err := c.NearbySearch(ctx, location, placeType, radius, query.Keyword)
	if err != nil {
		return nil, err
	}

	filtered := places[:0]
	for _, place := range places {
		if minRating != nil && (place.Rating == nil || *place.Rating < *minRating) {
			continue
		}
		if priceLevel != nil && (place.PriceLevel == nil || *place.PriceLevel != *priceLevel) {
			continue
		}
		filtered = append(filtered, place)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return ratingOrZero(filtered[i]) > ratingOrZero(filtered[j])
	})

	if len(filtered) > maxSearchResults {
		filtered = filtered[:maxSearchResults]
	}
	return filtered, nil
}

func ratingOrZero(place Place) float64 {
	if place.Rating == nil {
		return 0
	}
	return *place.Rating
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
