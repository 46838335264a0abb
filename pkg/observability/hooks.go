// Package observability provides hooks for metrics, tracing, and logging.
//
// Instrumentation is optional: consumers register hooks at startup to receive
// events about rendering, cache operations and HTTP requests, and libraries
// call the registered hooks without knowing what backend sits behind them.
//
// # Architecture
//
// Each event category has an interface and a no-op implementation that is
// installed until something else is registered.
//
// [LogHooks] is the one implementation shipped here; it writes every event
// to a charmbracelet logger at debug level.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    hooks := observability.NewLogHooks(logger)
//	    observability.SetRenderHooks(hooks)
//	    observability.SetCacheHooks(hooks)
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnBuildStart(ctx, len(doc.Elements))
//	// ... build the scene ...
//	observability.Render().OnBuildComplete(ctx, len(sc.Items), duration, err)
package observability

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the render pipeline.
type RenderHooks interface {
	// Decode events
	OnDecodeStart(ctx context.Context, size int)
	OnDecodeComplete(ctx context.Context, elementCount int, duration time.Duration, err error)

	// Build events
	OnBuildStart(ctx context.Context, elementCount int)
	OnBuildComplete(ctx context.Context, itemCount int, duration time.Duration, err error)

	// Encode events
	OnEncodeStart(ctx context.Context, format string)
	OnEncodeComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, format string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, format string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, format string, size int)
}

// =============================================================================
// Server Hooks
// =============================================================================

// ServerHooks receives events from the HTTP rendering service.
type ServerHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, requestID, method, path string)

	// OnResponse records the response written for a request.
	OnResponse(ctx context.Context, requestID string, statusCode, size int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnDecodeStart(context.Context, int)                                  {}
func (NoopRenderHooks) OnDecodeComplete(context.Context, int, time.Duration, error)         {}
func (NoopRenderHooks) OnBuildStart(context.Context, int)                                   {}
func (NoopRenderHooks) OnBuildComplete(context.Context, int, time.Duration, error)          {}
func (NoopRenderHooks) OnEncodeStart(context.Context, string)                               {}
func (NoopRenderHooks) OnEncodeComplete(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopServerHooks is a no-op implementation of ServerHooks.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string, string)           {}
func (NoopServerHooks) OnResponse(context.Context, string, int, int, time.Duration) {}

// =============================================================================
// Registry
// =============================================================================

// registry is replaced wholesale on every Set call, so readers never lock.
type registry struct {
	render RenderHooks
	cache  CacheHooks
	server ServerHooks
}

var noop = registry{NoopRenderHooks{}, NoopCacheHooks{}, NoopServerHooks{}}

var (
	current atomic.Pointer[registry]
	writeMu sync.Mutex
)

func init() { Reset() }

func update(fn func(r *registry)) {
	writeMu.Lock()
	defer writeMu.Unlock()
	next := *current.Load()
	fn(&next)
	current.Store(&next)
}

// SetRenderHooks installs h for all later render events. A nil h is ignored.
func SetRenderHooks(h RenderHooks) {
	if h != nil {
		update(func(r *registry) { r.render = h })
	}
}

// SetCacheHooks installs h for all later cache events. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		update(func(r *registry) { r.cache = h })
	}
}

// SetServerHooks installs h for all later server events. A nil h is ignored.
func SetServerHooks(h ServerHooks) {
	if h != nil {
		update(func(r *registry) { r.server = h })
	}
}

func Render() RenderHooks { return current.Load().render }
func Cache() CacheHooks   { return current.Load().cache }
func Server() ServerHooks { return current.Load().server }

// Reset reinstalls the no-op hooks.
func Reset() {
	r := noop
	current.Store(&r)
}
