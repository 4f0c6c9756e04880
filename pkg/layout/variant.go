package layout

import (
	"strings"

	"github.com/goliatone/go-pagegen/pkg/block"
	"github.com/goliatone/go-pagegen/pkg/preset"
)

// Variant names a post-shuffle treatment.
type Variant string

const (
	Standard Variant = "standard"
	Minimal  Variant = "minimal"
	Featured Variant = "featured"
)

// FeaturedMarker prefixes testimonial titles in the featured variant.
const FeaturedMarker = "★ "

// Variants lists the known layout variants.
func Variants() []Variant {
	return []Variant{Standard, Minimal, Featured}
}

// ParseVariant matches a variant name case-insensitively. An empty name is
// Standard.
func ParseVariant(name string) (Variant, bool) {
	switch Variant(strings.ToLower(strings.TrimSpace(name))) {
	case "", Standard:
		return Standard, true
	case Minimal:
		return Minimal, true
	case Featured:
		return Featured, true
	default:
		return "", false
	}
}

var minimalKinds = map[block.Kind]struct{}{
	block.KindHero:        {},
	block.KindFeatureGrid: {},
	block.KindFooter:      {},
}

// Apply returns a copy of p with variant v applied. Block order is kept; Minimal
// drops blocks, Featured edits testimonial titles, anything else is a copy.
func Apply(p preset.Preset, v Variant) preset.Preset {
	out := p.Clone()
	switch v {
	case Minimal:
		kept := out.Blocks[:0]
		for _, b := range out.Blocks {
			if _, ok := minimalKinds[b.Kind()]; ok {
				kept = append(kept, b)
			}
		}
		out.Blocks = kept
	case Featured:
		for i, b := range out.Blocks {
			props, ok := b.Props.(block.TestimonialProps)
			if !ok || strings.HasPrefix(props.Title, FeaturedMarker) {
				continue
			}
			props.Title = FeaturedMarker + props.Title
			out.Blocks[i].Props = props
		}
	}
	return out
}

// Generate shuffles p with seed and then applies v.
func Generate(p preset.Preset, seed string, v Variant) preset.Preset {
	return Apply(Shuffle(p, seed), v)
}
