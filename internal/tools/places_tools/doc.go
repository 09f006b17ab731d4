// Package places_tools registers the place search and place detail tools
// with the MCP server.
//
// Boundary policy: validation errors are surfaced to the caller verbatim;
// any other failure is logged and degraded to a generic message so provider
// error text never leaks through the tool surface.
package places_tools
