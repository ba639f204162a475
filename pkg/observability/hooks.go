// Package observability provides hooks for metrics and tracing of podgraph runs.
//
// The pipeline reports the start and end of each stage to the registered
// hooks. No backend is bundled; by default every hook is a no-op. A program
// embedding the pipeline can register its own implementation at startup to
// feed Prometheus, OpenTelemetry or plain logs.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks to emit events:
//
//	observability.Pipeline().OnParseStart(ctx, path)
//	// ... parse, verify, resolve ...
//	observability.Pipeline().OnParseComplete(ctx, path, pods, deps, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the lock file pipeline.
type PipelineHooks interface {
	// Parse events cover reading, verifying and resolving a lock file.
	OnParseStart(ctx context.Context, path string)
	OnParseComplete(ctx context.Context, path string, pods, deps int, duration time.Duration, err error)

	// Emit events cover building the graph and writing it in format.
	OnEmitStart(ctx context.Context, format string, pods int)
	OnEmitComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string)                                    {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, int, int, time.Duration, error) {}
func (NoopPipelineHooks) OnEmitStart(context.Context, string, int)                                {}
func (NoopPipelineHooks) OnEmitComplete(context.Context, string, int, time.Duration, error)       {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
// A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
