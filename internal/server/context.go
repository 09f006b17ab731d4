package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mwolter/tripscout/internal/config"
	"github.com/mwolter/tripscout/internal/googleplaces"
	"github.com/mwolter/tripscout/internal/instrumentation"
	"github.com/mwolter/tripscout/internal/ticketmaster"
)

// ServerContext holds the context for the MCP server. Both provider clients
// are created eagerly at startup since their API keys are required
// configuration; the context is the single place tool handlers reach for
// shared dependencies.
type ServerContext struct {
	ctx    context.Context
	cancel context.CancelFunc

	events *ticketmaster.Client
	places *googleplaces.Client

	metrics *instrumentation.Metrics
	logger  *slog.Logger

	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context with clients built from the
// given configuration.
func NewServerContext(ctx context.Context, cfg config.Config, logger *slog.Logger) (*ServerContext, error) {
	if logger == nil {
		logger = slog.Default()
	}

	shutdownCtx, cancel := context.WithCancel(ctx)

	events, err := ticketmaster.NewClient(cfg.TicketmasterAPIKey, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create ticketmaster client: %w", err)
	}

	places, err := googleplaces.NewClient(cfg.GooglePlacesAPIKey, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create google places client: %w", err)
	}

	return &ServerContext{
		ctx:    shutdownCtx,
		cancel: cancel,
		events: events,
		places: places,
		logger: logger,
	}, nil
}

// Context returns the server context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// EventsClient returns the Ticketmaster client.
func (sc *ServerContext) EventsClient() *ticketmaster.Client {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.events
}

// PlacesClient returns the Google Places client.
func (sc *ServerContext) PlacesClient() *googleplaces.Client {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.places
}

// Logger returns the server logger.
func (sc *ServerContext) Logger() *slog.Logger {
	return sc.logger
}

// SetMetrics attaches a metrics recorder. Called once during startup when
// instrumentation is enabled.
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// Metrics returns the metrics recorder, or nil when instrumentation is off.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// IsShutdown returns whether the server has been shutdown.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
