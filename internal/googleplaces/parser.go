package googleplaces

import (
	"github.com/tidwall/gjson"

	"github.com/mwolter/tripscout/internal/logging"
)

// parsePlacesResponse normalizes one nearby-search response into Place
// records. A record missing its identity is logged and dropped; the batch
// continues.
func (c *Client) parsePlacesResponse(body []byte) []Place {
	places := []Place{}

	gjson.GetBytes(body, "results").ForEach(func(_, raw gjson.Result) bool {
		place := parsePlace(raw)
		if place == nil {
			c.logger.Warn("skipping place record without id or name",
				logging.Provider(ProviderName))
			return true
		}
		places = append(places, *place)
		return true
	})

	return places
}

// parsePlace maps a single provider record to a Place, or nil when the
// record lacks place_id or name. Optional fields are guarded independently;
// absent ones keep their documented defaults (empty address, zero review
// count, empty type list, unknown open-now).
func parsePlace(raw gjson.Result) *Place {
	placeID := raw.Get("place_id").String()
	name := raw.Get("name").String()
	if placeID == "" || name == "" {
		return nil
	}

	place := &Place{
		PlaceID:          placeID,
		Name:             name,
		Address:          raw.Get("vicinity").String(),
		UserRatingsTotal: int(raw.Get("user_ratings_total").Int()),
		Types:            []string{},
	}

	if rating := raw.Get("rating"); rating.Exists() {
		value := rating.Float()
		place.Rating = &value
	}
	if priceLevel := raw.Get("price_level"); priceLevel.Exists() {
		value := int(priceLevel.Int())
		place.PriceLevel = &value
	}

	raw.Get("types").ForEach(func(_, tag gjson.Result) bool {
		place.Types = append(place.Types, tag.String())
		return true
	})

	if lat := raw.Get("geometry.location.lat"); lat.Exists() {
		value := lat.Float()
		place.Latitude = &value
	}
	if lng := raw.Get("geometry.location.lng"); lng.Exists() {
		value := lng.Float()
		place.Longitude = &value
	}

	if openNow := raw.Get("opening_hours.open_now"); openNow.Exists() {
		value := openNow.Bool()
		place.OpenNow = &value
	}

	if photoRef := raw.Get("photos.0.photo_reference"); photoRef.Exists() {
		place.PhotoReference = photoRef.String()
	}

	return place
}
