// Package layout reorders presets. Shuffle permutes the middle blocks of a
// preset with a seeded Fisher-Yates pass while hero and footer stay anchored;
// variants then trim or decorate the shuffled copy.
package layout

import (
	"github.com/goliatone/go-pagegen/pkg/block"
	"github.com/goliatone/go-pagegen/pkg/preset"
)

// Shuffle returns a copy of p whose non-anchor blocks are permuted by a
// sequence keyed on seed. The same (p, seed) always yields the same order. p is
// never modified.
func Shuffle(p preset.Preset, seed string) preset.Preset {
	out := p.Clone()

	var hero, footer *block.Block
	middle := make([]block.Block, 0, len(out.Blocks))
	for i := range out.Blocks {
		b := out.Blocks[i]
		switch {
		case b.Kind() == block.KindHero && hero == nil:
			hero = &b
		case b.Kind() == block.KindFooter && footer == nil:
			footer = &b
		default:
			middle = append(middle, b)
		}
	}

	seq := NewSequence(seed)
	for i := len(middle) - 1; i > 0; i-- {
		j := seq.NextInt(i)
		middle[i], middle[j] = middle[j], middle[i]
	}

	blocks := make([]block.Block, 0, len(out.Blocks))
	if hero != nil {
		blocks = append(blocks, *hero)
	}
	blocks = append(blocks, middle...)
	if footer != nil {
		blocks = append(blocks, *footer)
	}
	out.Blocks = blocks
	return out
}
