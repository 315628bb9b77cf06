// Package observability provides hooks for metrics and tracing.
//
// The layout core stays free of any metrics backend. Consumers register hooks
// at startup and receive events about layout updates, keyword cache traffic
// and HTTP requests served by the API.
//
// # Architecture
//
// Each event category is a small interface with a no-op default held in a
// global registry:
//   - [LayoutHooks] for engine updates and degraded placements
//   - [KeywordCacheHooks] for the map view's keyword position cache
//   - [HTTPHooks] for requests handled by the layout server
//
// Hooks are registered by main, never by libraries, so there are no import
// cycles and any backend (Prometheus, OpenTelemetry, plain logs) can be
// plugged in.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Layout().OnUpdateStart(ctx, len(topics))
//	// ... compute ...
//	observability.Layout().OnUpdateComplete(ctx, stats, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// UpdateStats summarizes one engine update.
type UpdateStats struct {
	Topics   int
	Created  int
	Moved    int
	Degraded int
	Passes   int
	Skipped  bool // input unchanged, previous snapshot reused
}

// LayoutHooks receives events from the layout engine.
type LayoutHooks interface {
	// OnUpdateStart records the start of an update with n topics.
	OnUpdateStart(ctx context.Context, n int)

	// OnUpdateComplete records a finished update.
	OnUpdateComplete(ctx context.Context, stats UpdateStats, duration time.Duration)

	// OnPlacementDegraded records a placement that fell back to stacking.
	OnPlacementDegraded(ctx context.Context, view, topicID, reason string)
}

// =============================================================================
// Keyword Cache Hooks
// =============================================================================

// KeywordCacheHooks receives keyword cache traffic, aggregated per frame.
type KeywordCacheHooks interface {
	OnKeywordCacheHit(ctx context.Context, n int)
	OnKeywordCacheMiss(ctx context.Context, n int)
	OnKeywordCacheEvict(ctx context.Context, n int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, route string)

	// OnResponse records the response sent for a request.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnUpdateStart(context.Context, int)                           {}
func (NoopLayoutHooks) OnUpdateComplete(context.Context, UpdateStats, time.Duration) {}
func (NoopLayoutHooks) OnPlacementDegraded(context.Context, string, string, string)  {}

// NoopKeywordCacheHooks is a no-op implementation of KeywordCacheHooks.
type NoopKeywordCacheHooks struct{}

func (NoopKeywordCacheHooks) OnKeywordCacheHit(context.Context, int)   {}
func (NoopKeywordCacheHooks) OnKeywordCacheMiss(context.Context, int)  {}
func (NoopKeywordCacheHooks) OnKeywordCacheEvict(context.Context, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks       LayoutHooks       = NoopLayoutHooks{}
	keywordCacheHooks KeywordCacheHooks = NoopKeywordCacheHooks{}
	httpHooks         HTTPHooks         = NoopHTTPHooks{}
	hooksMu           sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout runs.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetKeywordCacheHooks registers custom keyword cache hooks.
func SetKeywordCacheHooks(h KeywordCacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		keywordCacheHooks = h
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

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// KeywordCache returns the registered keyword cache hooks.
func KeywordCache() KeywordCacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return keywordCacheHooks
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
	layoutHooks = NoopLayoutHooks{}
	keywordCacheHooks = NoopKeywordCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
