// Package events_tools registers the event search tools with the MCP server.
package events_tools
