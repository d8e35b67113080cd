// registry.go maps task type names to processors.
//
// Registration happens once during startup (see registerBuiltins in main.go);
// from the executor's perspective the registry is read-only afterwards.
package main

import (
	"context"
	"sort"
	"sync"
)

// Processor is a processing routine: it consumes a task's input text and
// either returns a result string or an error. The core treats it as a black
// box — it may block, it may have side effects, it need not be idempotent.
// The context carries caller cancellation for processors that talk to the
// network; the executor itself imposes no timeout.
type Processor func(ctx context.Context, input string) (string, error)

// Registry is the process-wide mapping from task type to processor.
type Registry struct {
	mu         sync.RWMutex
	processors map[string]Processor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{processors: make(map[string]Processor)}
}

// Register associates name with proc. Re-registering the same name
// overwrites the previous binding: the last registration wins.
func (r *Registry) Register(name string, proc Processor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.processors[name] = proc
}

// Lookup returns the processor registered under name, if any.
func (r *Registry) Lookup(name string) (Processor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	proc, ok := r.processors[name]
	return proc, ok
}

// Types returns the registered task type names, sorted for stable listings.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.processors))
	for name := range r.processors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
