// Package observability provides hooks for metrics, tracing, and logging.
//
// The placement engine itself never logs. Callers that drive it (the API
// server and the CLI) report what they asked for and what came back through
// the hooks registered here, so a backend can be attached without the core
// packages importing one.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Callers emit events after each operation:
//
//	start := time.Now()
//	suggestions := engine.GenerateSuggestions(pctx, 5)
//	observability.Engine().OnSuggest(ctx, pctx.WidgetType, len(suggestions), time.Since(start))
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Engine Hooks
// =============================================================================

// EngineHooks receives events from placement and coordinate operations.
type EngineHooks interface {
	// OnSuggest records a suggestion request and how many candidates it returned.
	OnSuggest(ctx context.Context, widgetType string, count int, duration time.Duration)

	// OnPredict records a drop prediction.
	OnPredict(ctx context.Context, feasible bool, confidence float64, duration time.Duration)

	// OnTransform records a coordinate conversion. Direction is "pixel" or "grid".
	OnTransform(ctx context.Context, direction string, valid bool)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the API server.
type HTTPHooks interface {
	// OnResponse records a served request.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnSuggest(context.Context, string, int, time.Duration)   {}
func (NoopEngineHooks) OnPredict(context.Context, bool, float64, time.Duration) {}
func (NoopEngineHooks) OnTransform(context.Context, string, bool)               {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	engineHooks EngineHooks = NoopEngineHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetEngineHooks registers custom engine hooks.
// This should be called once at application startup.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	engineHooks = NoopEngineHooks{}
	httpHooks = NoopHTTPHooks{}
}
