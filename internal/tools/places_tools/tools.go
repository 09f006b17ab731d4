package places_tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mwolter/tripscout/internal/googleplaces"
	"github.com/mwolter/tripscout/internal/logging"
	"github.com/mwolter/tripscout/internal/server"
	"github.com/mwolter/tripscout/internal/tools/common"
	"github.com/mwolter/tripscout/internal/validate"
)

// placesResult is the JSON payload handed back to the caller.
type placesResult struct {
	Count  int                  `json:"count"`
	Places []googleplaces.Place `json:"places"`
}

// RegisterPlacesTools registers all place-related tools with the MCP server.
func RegisterPlacesTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	searchPlacesTool := mcp.NewTool("search_places",
		mcp.WithDescription("Search for places (restaurants, parks, museums, etc.) near a location. "+
			"Returns at most 20 results sorted by rating."),
		mcp.WithString("location",
			mcp.Required(),
			mcp.Description("Location as an address string or 'latitude,longitude' coordinates"),
		),
		mcp.WithString("place_type",
			mcp.Required(),
			mcp.Description("Type of place (restaurant, cafe, bar, park, hiking, museum, shopping, tourist_attraction, night_club, gym, spa, movie_theater, ...)"),
		),
		mcp.WithNumber("radius",
			mcp.Description("Search radius in meters, 1-50000 (default 5000)"),
		),
		mcp.WithString("keyword",
			mcp.Description("Optional keyword to refine the search"),
		),
		mcp.WithNumber("min_rating",
			mcp.Description("Minimum rating filter, 1.0-5.0; unrated places are excluded"),
		),
		mcp.WithNumber("price_level",
			mcp.Description("Price level filter, 0 (free) to 4 (very expensive); exact match"),
		),
	)

	s.AddTool(searchPlacesTool, common.InstrumentedToolHandlerWithProvider(
		"search_places", googleplaces.ProviderName, "nearby_search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchPlaces(ctx, request, sc)
		}))

	getPlaceDetailsTool := mcp.NewTool("get_place_details",
		mcp.WithDescription("Get detailed information about a place: contact info, website, "+
			"opening hours, reviews, and photos."),
		mcp.WithString("place_id",
			mcp.Required(),
			mcp.Description("The place identifier returned by search_places"),
		),
	)

	s.AddTool(getPlaceDetailsTool, common.InstrumentedToolHandlerWithProvider(
		"get_place_details", googleplaces.ProviderName, "place_details", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetPlaceDetails(ctx, request, sc)
		}))

	return nil
}

func handleSearchPlaces(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	location, err := common.RequiredStringArg(args, "location")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	placeType, err := common.RequiredStringArg(args, "place_type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	radius, err := common.OptionalIntArg(args, "radius")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	keyword, err := common.OptionalStringArg(args, "keyword")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	minRating, err := common.OptionalNumberArg(args, "min_rating")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	priceLevel, err := common.OptionalIntArg(args, "price_level")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	query := googleplaces.SearchQuery{
		Location:   location,
		PlaceType:  placeType,
		Keyword:    keyword,
		MinRating:  minRating,
		PriceLevel: priceLevel,
	}
	if radius != nil {
		query.Radius = *radius
	}

	places, err := sc.PlacesClient().SearchPlaces(ctx, query)
	if err != nil {
		var validationErr *validate.Error
		if errors.As(err, &validationErr) {
			return mcp.NewToolResultError(validationErr.Error()), nil
		}
		sc.Logger().Error("place search failed",
			logging.Tool("search_places"), logging.Err(err))
		return mcp.NewToolResultError("search_places tool failed"), nil
	}

	payload, err := json.MarshalIndent(placesResult{Count: len(places), Places: places}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal places: %w", err)
	}

	return mcp.NewToolResultText(string(payload)), nil
}

func handleGetPlaceDetails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	placeID, err := common.RequiredStringArg(request.GetArguments(), "place_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	details, err := sc.PlacesClient().PlaceDetails(ctx, placeID)
	if err != nil {
		sc.Logger().Error("place details lookup failed",
			logging.Tool("get_place_details"), logging.Err(err))
		return mcp.NewToolResultError("get_place_details tool failed"), nil
	}

	return mcp.NewToolResultText(string(details)), nil
}
