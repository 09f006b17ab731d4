package events_tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mwolter/tripscout/internal/logging"
	"github.com/mwolter/tripscout/internal/server"
	"github.com/mwolter/tripscout/internal/ticketmaster"
	"github.com/mwolter/tripscout/internal/tools/common"
	"github.com/mwolter/tripscout/internal/validate"
)

// eventsResult is the JSON payload handed back to the caller.
type eventsResult struct {
	Count  int                  `json:"count"`
	Events []ticketmaster.Event `json:"events"`
}

// RegisterEventsTools registers all event-related tools with the MCP server.
func RegisterEventsTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	getEventsByDateTool := mcp.NewTool("get_events_by_date",
		mcp.WithDescription("Find events happening in a city within a date range. "+
			"Dates must be in YYYY-MM-DD format and the start date must be in the future."),
		mcp.WithString("city",
			mcp.Required(),
			mcp.Description("City to search for events in (e.g., 'Seattle')"),
		),
		mcp.WithString("start_date",
			mcp.Required(),
			mcp.Description("First day of the search range (YYYY-MM-DD)"),
		),
		mcp.WithString("end_date",
			mcp.Required(),
			mcp.Description("Last day of the search range, inclusive (YYYY-MM-DD)"),
		),
		mcp.WithString("keyword",
			mcp.Description("Optional keyword to narrow the search (e.g., 'jazz', 'comedy')"),
		),
	)

	s.AddTool(getEventsByDateTool, common.InstrumentedToolHandlerWithProvider(
		"get_events_by_date", ticketmaster.ProviderName, "search_events", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetEventsByDate(ctx, request, sc)
		}))

	return nil
}

// handleGetEventsByDate validates the arguments, runs the event search and
// returns the normalized list. A fetch failure is reported to the caller
// rather than masked as an empty result.
func handleGetEventsByDate(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	city, err := common.RequiredStringArg(args, "city")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	startDate, err := common.RequiredStringArg(args, "start_date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	endDate, err := common.RequiredStringArg(args, "end_date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	keyword, err := common.OptionalStringArg(args, "keyword")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	events, err := sc.EventsClient().FetchEventsByDate(ctx, city, startDate, endDate, keyword)
	if err != nil {
		var validationErr *validate.Error
		if errors.As(err, &validationErr) {
			return mcp.NewToolResultError(validationErr.Error()), nil
		}
		sc.Logger().Error("event search failed",
			logging.Tool("get_events_by_date"), logging.Err(err))
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch events: %v", err)), nil
	}

	payload, err := json.MarshalIndent(eventsResult{Count: len(events), Events: events}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal events: %w", err)
	}

	return mcp.NewToolResultText(string(payload)), nil
}
