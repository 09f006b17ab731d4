package googleplaces

import (
	"strings"

	"github.com/mwolter/tripscout/internal/validate"
)

// placeTypeAliases maps common phrasings to canonical Places API categories.
// Canonical categories pass through NormalizePlaceType unchanged.
var placeTypeAliases = map[string]string{
	"restaurant":         "restaurant",
	"restaurants":        "restaurant",
	"cafe":               "cafe",
	"coffee":             "cafe",
	"bar":                "bar",
	"pub":                "bar",
	"park":               "park",
	"parks":              "park",
	"hiking":             "park",
	"hiking_area":        "park",
	"trail":              "park",
	"museum":             "museum",
	"museums":            "museum",
	"art_gallery":        "art_gallery",
	"gallery":            "art_gallery",
	"shopping":           "shopping_mall",
	"mall":               "shopping_mall",
	"store":              "store",
	"tourist_attraction": "tourist_attraction",
	"attraction":         "tourist_attraction",
	"night_club":         "night_club",
	"club":               "night_club",
	"gym":                "gym",
	"fitness":            "gym",
	"spa":                "spa",
	"movie_theater":      "movie_theater",
	"cinema":             "movie_theater",
	"zoo":                "zoo",
	"aquarium":           "aquarium",
	"amusement_park":     "amusement_park",
	"stadium":            "stadium",
	"lodging":            "lodging",
	"hotel":              "lodging",
}

// NormalizePlaceType resolves a user-supplied category to its canonical
// Places API type. Lookup is case-insensitive and whitespace-tolerant; an
// unrecognized category is a validation error whose message lists example
// valid types.
func NormalizePlaceType(placeType string) (string, error) {
	placeType = strings.ToLower(strings.TrimSpace(placeType))

	if canonical, ok := placeTypeAliases[placeType]; ok {
		return canonical, nil
	}

	for _, canonical := range placeTypeAliases {
		if placeType == canonical {
			return placeType, nil
		}
	}

	return "", &validate.Error{
		Field: "place_type",
		Reason: "unknown type '" + placeType + "', valid types include: " +
			"restaurant, cafe, bar, park, hiking_area, museum, shopping, " +
			"tourist_attraction, night_club, gym, spa, movie_theater",
	}
}
