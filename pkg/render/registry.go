package render

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-pagegen/pkg/block"
)

// Registry maps each block kind to the renderer that finishes it.
type Registry struct {
	mu        sync.RWMutex
	renderers map[block.Kind]BlockRenderer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[block.Kind]BlockRenderer),
	}
}

// DefaultRegistry returns a registry holding a renderer for each of the eight
// block kinds.
func DefaultRegistry() *Registry {
	registry := NewRegistry()
	for _, renderer := range builtinRenderers() {
		registry.MustRegister(renderer)
	}
	return registry
}

// Register adds a renderer under its Kind(). A second renderer for the same
// kind is an error; use Replace to override a built-in.
func (r *Registry) Register(renderer BlockRenderer) error {
	return r.put(renderer, false)
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(renderer BlockRenderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Replace registers renderer, overriding any existing one for its kind.
func (r *Registry) Replace(renderer BlockRenderer) error {
	return r.put(renderer, true)
}

func (r *Registry) put(renderer BlockRenderer, replace bool) error {
	if renderer == nil {
		return errors.New("render: block renderer is required")
	}
	kind := renderer.Kind()
	if kind == "" {
		return errors.New("render: block renderer has no kind")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.renderers[kind]; exists && !replace {
		return fmt.Errorf("render: %s renderer already registered", kind)
	}
	r.renderers[kind] = renderer
	return nil
}

// Get retrieves the renderer for kind.
func (r *Registry) Get(kind block.Kind) (BlockRenderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[kind]
	return renderer, ok
}

// List returns the registered kinds sorted by name.
func (r *Registry) List() []block.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]block.Kind, 0, len(r.renderers))
	for kind := range r.renderers {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Has reports whether a renderer is registered for kind.
func (r *Registry) Has(kind block.Kind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[kind]
	return ok
}
