// Package calendar_tools registers the Google Calendar URL builder tool
// with the MCP server.
package calendar_tools
