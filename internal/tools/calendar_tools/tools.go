package calendar_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mwolter/tripscout/internal/gcal"
	"github.com/mwolter/tripscout/internal/server"
	"github.com/mwolter/tripscout/internal/tools/common"
)

// gcalResult is the JSON payload handed back to the caller.
type gcalResult struct {
	GcalURL string `json:"gcal_url"`
}

// RegisterCalendarTools registers all calendar-related tools with the MCP server.
func RegisterCalendarTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	makeGcalURLTool := mcp.NewTool("make_gcal_url",
		mcp.WithDescription("Build a Google Calendar event-creation URL for an event. "+
			"The URL opens a pre-filled calendar entry the user can save."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Event title"),
		),
		mcp.WithString("start_iso",
			mcp.Required(),
			mcp.Description("Event start as an ISO-8601 UTC timestamp (e.g., '2025-09-15T10:00:00Z' or '2025-09-15T10:00:00+00:00')"),
		),
		mcp.WithString("end_iso",
			mcp.Required(),
			mcp.Description("Event end as an ISO-8601 UTC timestamp"),
		),
		mcp.WithString("location",
			mcp.Description("Optional event location"),
		),
	)

	s.AddTool(makeGcalURLTool, common.InstrumentedToolHandler("make_gcal_url", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleMakeGcalURL(ctx, request)
		}))

	return nil
}

func handleMakeGcalURL(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	title, err := common.RequiredStringArg(args, "title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	startISO, err := common.RequiredStringArg(args, "start_iso")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	endISO, err := common.RequiredStringArg(args, "end_iso")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	location, err := common.OptionalStringArg(args, "location")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	payload, err := json.Marshal(gcalResult{
		GcalURL: gcal.EventURL(title, startISO, endISO, location),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return mcp.NewToolResultText(string(payload)), nil
}
