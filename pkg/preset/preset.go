// Package preset holds the static library of page templates. Each vertical
// owns an ordered list of presets; the first is its default. Presets are
// loaded from YAML and validated once: every preset opens with exactly one
// hero block and closes with exactly one footer block.
package preset

import (
	"github.com/goliatone/go-pagegen/pkg/block"
	"github.com/goliatone/go-pagegen/pkg/vertical"
)

// Preset is a named, ordered list of blocks forming one page template.
type Preset struct {
	Name     string            `json:"name"`
	Vertical vertical.Vertical `json:"vertical"`
	Blocks   []block.Block     `json:"blocks"`
}

// Clone returns a structural copy; mutating it never touches p.
func (p Preset) Clone() Preset {
	out := p
	out.Blocks = block.CloneAll(p.Blocks)
	return out
}

// Kinds lists the block kinds in order.
func (p Preset) Kinds() []block.Kind {
	kinds := make([]block.Kind, len(p.Blocks))
	for i, b := range p.Blocks {
		kinds[i] = b.Kind()
	}
	return kinds
}

// Catalog indexes presets by vertical. The zero value is empty and safe.
type Catalog struct {
	presets map[vertical.Vertical][]Preset
}

// Lookup returns copies of the presets for v, default first. The boolean is
// false when the catalog has nothing for v.
func (c *Catalog) Lookup(v vertical.Vertical) ([]Preset, bool) {
	if c == nil {
		return nil, false
	}
	stored := c.presets[v]
	if len(stored) == 0 {
		return nil, false
	}
	out := make([]Preset, len(stored))
	for i, p := range stored {
		out[i] = p.Clone()
	}
	return out, true
}

// Default returns a copy of the first preset for v.
func (c *Catalog) Default(v vertical.Vertical) (Preset, bool) {
	if c == nil || len(c.presets[v]) == 0 {
		return Preset{}, false
	}
	return c.presets[v][0].Clone(), true
}

// Find returns a copy of the preset called name for v. An empty name selects
// the default preset.
func (c *Catalog) Find(v vertical.Vertical, name string) (Preset, bool) {
	if name == "" {
		return c.Default(v)
	}
	if c == nil {
		return Preset{}, false
	}
	for _, p := range c.presets[v] {
		if p.Name == name {
			return p.Clone(), true
		}
	}
	return Preset{}, false
}

// Names lists the preset names for v in catalog order.
func (c *Catalog) Names(v vertical.Vertical) []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.presets[v]))
	for _, p := range c.presets[v] {
		names = append(names, p.Name)
	}
	return names
}

// Verticals lists the verticals that have presets, in vertical.All order.
func (c *Catalog) Verticals() []vertical.Vertical {
	if c == nil {
		return nil
	}
	var out []vertical.Vertical
	for _, v := range vertical.All() {
		if len(c.presets[v]) > 0 {
			out = append(out, v)
		}
	}
	return out
}

// Empty reports whether the catalog holds any presets.
func (c *Catalog) Empty() bool {
	return c == nil || len(c.presets) == 0
}
