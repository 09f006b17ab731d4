// Package server holds the MCP server runtime: the shared server context
// carrying the provider clients, health endpoints for liveness and readiness
// probes, and the dedicated Prometheus metrics server.
package server
