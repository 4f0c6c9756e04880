package render

import (
	"strings"

	"github.com/goliatone/go-pagegen/pkg/block"
	"github.com/goliatone/go-pagegen/pkg/content"
	"github.com/goliatone/go-pagegen/pkg/preset"
	"github.com/goliatone/go-pagegen/pkg/style"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithRegistry swaps the block renderer registry.
func WithRegistry(registry *Registry) Option {
	return func(r *Renderer) {
		if registry != nil {
			r.registry = registry
		}
	}
}

// Renderer turns a preset and a content model into resolved instances.
type Renderer struct {
	registry *Registry
}

// New constructs a Renderer backed by DefaultRegistry unless overridden.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.registry == nil {
		r.registry = DefaultRegistry()
	}
	return r
}

// Registry exposes the block renderer registry.
func (r *Renderer) Registry() *Registry {
	return r.registry
}

// Render resolves every block of p in order. The output order matches
// p.Blocks; blocks without a registered renderer are skipped. Neither p nor m
// is modified, and identical inputs give identical output.
func (r *Renderer) Render(p preset.Preset, m content.Model, v style.Variant) []Instance {
	if !v.Known() {
		v = style.Default
	}
	ctx := BlockContext{
		Model:  m.Clone(),
		Style:  v,
		Tokens: style.Lookup(v),
		Total:  len(p.Blocks),
	}

	out := make([]Instance, 0, len(p.Blocks))
	for i, b := range p.Blocks {
		if b.Props == nil {
			continue
		}
		renderer, ok := r.registry.Get(b.Kind())
		if !ok {
			continue
		}

		resolved, _ := Substitute(b.Props.Value(), m).(block.Obj)
		inst := Instance{
			ID:      b.ID,
			Kind:    b.Kind(),
			Props:   block.Decode(b.Kind(), resolved),
			Style:   v,
			Classes: []string{"block", "block-" + strings.ReplaceAll(string(b.Kind()), "_", "-"), "style-" + string(v)},
		}

		ctx.Position = i
		inst, ok = renderer.Render(inst, ctx)
		if !ok {
			continue
		}
		out = append(out, inst)
	}
	return out
}

var defaultRenderer = New()

// Render resolves p with the default block renderers.
func Render(p preset.Preset, m content.Model, v style.Variant) []Instance {
	return defaultRenderer.Render(p, m, v)
}
