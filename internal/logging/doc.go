// Package logging provides slog helpers shared across the codebase.
//
// It defines the canonical attribute keys so log lines stay consistent and
// queryable, plus small constructors for the common attributes (tool,
// provider, operation, status, error).
package logging
