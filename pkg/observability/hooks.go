// Package observability lets callers observe pipeline, cache, and HTTP events
// without the library depending on a metrics or tracing backend.
//
// Each event category has a hook interface with a no-op default. The
// application installs its own implementations once at startup and library
// code reports through the package-level accessors:
//
//	observability.SetPipelineHooks(myHooks)
//
//	observability.Pipeline().OnPartitionStart(ctx, "greedy", 8, 4, 5)
//
// Passing nil to a Set function keeps the current hooks.
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives partition and render events. width and height are
// the body grid size.
type PipelineHooks interface {
	OnPartitionStart(ctx context.Context, strategy string, width, height, rules int)
	OnPartitionComplete(ctx context.Context, strategy string, rectangles int, duration time.Duration, err error)
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives cache lookups and writes. keyType is "partition" or
// "artifact".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives one OnRequest and one OnResponse per served request, and
// OnError for requests answered with an error body.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
	OnError(ctx context.Context, method, path string, err error)
}

// NoopPipelineHooks ignores all pipeline events.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnPartitionStart(context.Context, string, int, int, int) {}
func (NoopPipelineHooks) OnPartitionComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks ignores all cache events.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks ignores all HTTP events.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

// slot holds one registered hook implementation.
type slot[T any] struct {
	mu  sync.RWMutex
	cur T
	def T
}

func newSlot[T any](def T) *slot[T] {
	return &slot[T]{cur: def, def: def}
}

func (s *slot[T]) get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

func (s *slot[T]) set(h T, isNil bool) {
	if isNil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = h
}

func (s *slot[T]) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = s.def
}

var (
	pipelineSlot = newSlot[PipelineHooks](NoopPipelineHooks{})
	cacheSlot    = newSlot[CacheHooks](NoopCacheHooks{})
	httpSlot     = newSlot[HTTPHooks](NoopHTTPHooks{})
)

// SetPipelineHooks installs h as the pipeline hooks.
func SetPipelineHooks(h PipelineHooks) { pipelineSlot.set(h, h == nil) }

// SetCacheHooks installs h as the cache hooks.
func SetCacheHooks(h CacheHooks) { cacheSlot.set(h, h == nil) }

// SetHTTPHooks installs h as the HTTP hooks.
func SetHTTPHooks(h HTTPHooks) { httpSlot.set(h, h == nil) }

// Pipeline returns the installed pipeline hooks.
func Pipeline() PipelineHooks { return pipelineSlot.get() }

// Cache returns the installed cache hooks.
func Cache() CacheHooks { return cacheSlot.get() }

// HTTP returns the installed HTTP hooks.
func HTTP() HTTPHooks { return httpSlot.get() }

// Reset reinstalls the no-op hooks. Tests call it to undo Set calls.
func Reset() {
	pipelineSlot.reset()
	cacheSlot.reset()
	httpSlot.reset()
}
