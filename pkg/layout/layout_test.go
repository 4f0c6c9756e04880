package layout_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pagegen/pkg/block"
	"github.com/goliatone/go-pagegen/pkg/layout"
	"github.com/goliatone/go-pagegen/pkg/preset"
	"github.com/goliatone/go-pagegen/pkg/vertical"
)

func fixture(kinds ...block.Kind) preset.Preset {
	blocks := make([]block.Block, len(kinds))
	for i, kind := range kinds {
		blocks[i] = block.New(string(kind), block.Decode(kind, block.Obj{"title": block.Str("Title " + string(kind))}))
	}
	return preset.Preset{Name: "fixture", Vertical: vertical.B2BSaaS, Blocks: blocks}
}

func classic() preset.Preset {
	ids := []string{"hero", "logos", "features", "story", "testimonials", "pricing", "faq", "footer"}
	kinds := []block.Kind{
		block.KindHero, block.KindLogoRow, block.KindFeatureGrid, block.KindSplitImage,
		block.KindTestimonial, block.KindPricing, block.KindFAQ, block.KindFooter,
	}
	p := fixture(kinds...)
	for i := range p.Blocks {
		p.Blocks[i].ID = ids[i]
	}
	return p
}

func ids(p preset.Preset) []string {
	out := make([]string, len(p.Blocks))
	for i, b := range p.Blocks {
		out[i] = b.ID
	}
	return out
}

func TestHashSeed(t *testing.T) {
	cases := map[string]int32{
		"":            0,
		"x":           120,
		"abc":         96354,
		"hello world": 1794106052,
		"seed-1":      -906232875,
	}
	for seed, want := range cases {
		if got := layout.HashSeed(seed); got != want {
			t.Fatalf("HashSeed(%q) = %d, want %d", seed, got, want)
		}
	}
}

func TestSequenceIsReproducible(t *testing.T) {
	a := layout.NewSequence("x")
	b := layout.NewSequence("x")
	for i := 0; i < 50; i++ {
		va, vb := a.Next(), b.Next()
		if va != vb {
			t.Fatalf("step %d diverged: %v vs %v", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("step %d out of range: %v", i, va)
		}
	}

	seq := layout.NewSequence("x")
	if got := seq.Next(); got != 232297.0/233280.0 {
		t.Fatalf("first value = %v", got)
	}
	if got := seq.NextInt(9); got != 0 {
		t.Fatalf("NextInt(9) = %d, want 0", got)
	}
}

func TestShuffleGoldenOrder(t *testing.T) {
	got := ids(layout.Shuffle(classic(), "x"))
	want := []string{"hero", "story", "testimonials", "features", "pricing", "logos", "faq", "footer"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("shuffle order mismatch (-want +got):\n%s", diff)
	}
}

func TestShuffleDeterministic(t *testing.T) {
	p := fixture(block.KindHero, block.KindLogoRow, block.KindFeatureGrid, block.KindFooter)
	first := ids(layout.Shuffle(p, "x"))
	second := ids(layout.Shuffle(p, "x"))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("same seed produced different orders (-first +second):\n%s", diff)
	}
}

func TestShuffleVariesAcrossSeeds(t *testing.T) {
	p := fixture(block.KindHero, block.KindLogoRow, block.KindFeatureGrid, block.KindFooter)
	orders := map[string]struct{}{}
	for i := 0; i < 20; i++ {
		order := ids(layout.Shuffle(p, fmt.Sprintf("seed-%d", i)))
		orders[strings.Join(order, ",")] = struct{}{}
	}
	if len(orders) < 2 {
		t.Fatalf("20 seeds produced a single order: %v", orders)
	}
}

func TestShuffleAnchorsAndPermutation(t *testing.T) {
	p := classic()
	for i := 0; i < 50; i++ {
		seed := fmt.Sprintf("anchor-%d", i)
		out := layout.Shuffle(p, seed)
		kinds := out.Kinds()
		if kinds[0] != block.KindHero || kinds[len(kinds)-1] != block.KindFooter {
			t.Fatalf("seed %q moved an anchor: %v", seed, kinds)
		}
		for _, k := range kinds[1 : len(kinds)-1] {
			if k.Anchor() {
				t.Fatalf("seed %q placed an anchor in the middle: %v", seed, kinds)
			}
		}
		if diff := cmp.Diff(countKinds(p), countKinds(out)); diff != "" {
			t.Fatalf("seed %q changed the block multiset (-want +got):\n%s", seed, diff)
		}
	}
}

func TestShuffleWithoutAnchors(t *testing.T) {
	p := fixture(block.KindLogoRow, block.KindFeatureGrid, block.KindFAQ)
	out := layout.Shuffle(p, "no-anchors")
	if len(out.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(out.Blocks))
	}
	if diff := cmp.Diff(countKinds(p), countKinds(out)); diff != "" {
		t.Fatalf("multiset changed (-want +got):\n%s", diff)
	}

	empty := layout.Shuffle(preset.Preset{Name: "empty"}, "x")
	if len(empty.Blocks) != 0 {
		t.Fatalf("expected no blocks, got %d", len(empty.Blocks))
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	p := classic()
	before := ids(p)
	out := layout.Shuffle(p, "hello world")
	out.Blocks[1].ID = "changed"
	if diff := cmp.Diff(before, ids(p)); diff != "" {
		t.Fatalf("input preset mutated (-want +got):\n%s", diff)
	}
}

func TestApplyMinimal(t *testing.T) {
	out := layout.Generate(classic(), "x", layout.Minimal)
	want := []block.Kind{block.KindHero, block.KindFeatureGrid, block.KindFooter}
	if diff := cmp.Diff(want, out.Kinds()); diff != "" {
		t.Fatalf("minimal kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyFeatured(t *testing.T) {
	p := classic()
	out := layout.Apply(p, layout.Featured)
	again := layout.Apply(out, layout.Featured)

	for _, b := range again.Blocks {
		props, ok := b.Props.(block.TestimonialProps)
		if !ok {
			continue
		}
		if props.Title != layout.FeaturedMarker+"Title testimonial" {
			t.Fatalf("unexpected featured title %q", props.Title)
		}
	}

	original := p.Blocks[4].Props.(block.TestimonialProps)
	if original.Title != "Title testimonial" {
		t.Fatalf("input preset mutated: %q", original.Title)
	}
}

func TestApplyKeepsShuffleOrder(t *testing.T) {
	shuffled := layout.Shuffle(classic(), "abc")
	for _, v := range []layout.Variant{layout.Standard, layout.Featured} {
		if diff := cmp.Diff(ids(shuffled), ids(layout.Apply(shuffled, v))); diff != "" {
			t.Fatalf("%s changed order (-want +got):\n%s", v, diff)
		}
	}
}

func TestParseVariant(t *testing.T) {
	cases := map[string]layout.Variant{
		"":          layout.Standard,
		"Standard":  layout.Standard,
		" minimal ": layout.Minimal,
		"FEATURED":  layout.Featured,
	}
	for in, want := range cases {
		got, ok := layout.ParseVariant(in)
		if !ok || got != want {
			t.Fatalf("ParseVariant(%q) = %q, %v", in, got, ok)
		}
	}
	if _, ok := layout.ParseVariant("gallery"); ok {
		t.Fatalf("unexpected variant accepted")
	}
}

func countKinds(p preset.Preset) map[block.Kind]int {
	counts := map[block.Kind]int{}
	for _, k := range p.Kinds() {
		counts[k]++
	}
	return counts
}
