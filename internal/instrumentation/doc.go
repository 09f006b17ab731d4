// Package instrumentation provides OpenTelemetry metrics for the server.
//
// It exposes a Provider that wires a meter provider to a configurable
// exporter (Prometheus or stdout) and a Metrics recorder with typed helpers
// for tool invocations, upstream provider calls, and HTTP traffic. When
// instrumentation is disabled every recorder is a no-op.
package instrumentation
