package render_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pagegen/pkg/block"
	"github.com/goliatone/go-pagegen/pkg/content"
	"github.com/goliatone/go-pagegen/pkg/preset"
	"github.com/goliatone/go-pagegen/pkg/render"
	"github.com/goliatone/go-pagegen/pkg/style"
	"github.com/goliatone/go-pagegen/pkg/vertical"
)

func pagePreset() preset.Preset {
	return preset.Preset{
		Name:     "test",
		Vertical: vertical.B2BSaaS,
		Blocks: []block.Block{
			block.New("hero", block.HeroProps{Headline: "{{brandName}}", Subheadline: "{{tagline}}", PrimaryCTA: "{{ctas.0}}"}),
			block.New("mystery", block.Unknown{Type: "carousel", Raw: block.Obj{"title": block.Str("{{brandName}}")}}),
			block.New("features", block.FeatureGridProps{
				Title: "Why {{brandName}}",
				Items: []block.FeatureItem{
					{Title: "{{features.0}}"},
					{Title: ""},
					{Title: "{{features.2}}"},
				},
			}),
			block.New("quotes", block.TestimonialProps{
				Title:  "Loved by teams",
				Quotes: []block.Quote{{Text: "Canned quote", Author: "Preset"}},
			}),
			block.New("faq", block.FAQProps{Items: []block.FAQItem{{Question: "{{faq.0.q}}", Answer: "{{faq.0.a}}"}}}),
			block.New("footer", block.FooterProps{BrandName: "{{brandName}}"}),
		},
	}
}

func TestRenderPreservesOrderAndSkipsUnknown(t *testing.T) {
	out := render.Render(pagePreset(), sampleModel(), style.Bold)

	var ids []string
	for _, inst := range out {
		ids = append(ids, inst.ID)
		if inst.Style != style.Bold {
			t.Fatalf("%s has style %q", inst.ID, inst.Style)
		}
	}
	want := []string{"hero", "features", "quotes", "faq", "footer"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("instance order mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderResolvesPlaceholders(t *testing.T) {
	out := render.Render(pagePreset(), sampleModel(), style.Clean)

	hero := out[0].Props.(block.HeroProps)
	if hero.Headline != "Slotly" || hero.PrimaryCTA != "Book a demo" {
		t.Fatalf("unexpected hero %+v", hero)
	}

	grid := out[1].Props.(block.FeatureGridProps)
	if grid.Title != "Why Slotly" {
		t.Fatalf("unexpected grid title %q", grid.Title)
	}
	if len(grid.Items) != 2 || grid.Items[1].Title != "One-click rescheduling" {
		t.Fatalf("unexpected grid items %+v", grid.Items)
	}
	if diff := cmp.Diff([]string{"block", "block-feature-grid", "style-clean", "cols-2"}, out[1].Classes); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}

	footer := out[4].Props.(block.FooterProps)
	if footer.BrandName != "Slotly" || footer.Copyright != "© Slotly" {
		t.Fatalf("unexpected footer %+v", footer)
	}
}

func TestRenderUsesModelTestimonials(t *testing.T) {
	m := sampleModel()
	canned := render.Render(pagePreset(), m, style.Clean)[2].Props.(block.TestimonialProps)
	if len(canned.Quotes) != 1 || canned.Quotes[0].Author != "Preset" {
		t.Fatalf("expected canned quote, got %+v", canned.Quotes)
	}

	m.Testimonials = []string{`"Booking went from hours to minutes for us." - Dana, Studio Owner`, "Just great"}
	hydrated := render.Render(pagePreset(), m, style.Clean)[2].Props.(block.TestimonialProps)
	want := []block.Quote{
		{Text: "Booking went from hours to minutes for us.", Author: "Dana, Studio Owner"},
		{Text: "Just great", Author: render.DefaultQuoteAuthor},
	}
	if diff := cmp.Diff(want, hydrated.Quotes); diff != "" {
		t.Fatalf("quotes mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderIsIdempotentAndPure(t *testing.T) {
	p := pagePreset()
	m := sampleModel()

	first, err := json.Marshal(render.Render(p, m, style.Playful))
	if err != nil {
		t.Fatalf("marshal first: %v", err)
	}
	second, err := json.Marshal(render.Render(p, m, style.Playful))
	if err != nil {
		t.Fatalf("marshal second: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("render not idempotent:\n%s\n%s", first, second)
	}

	if p.Blocks[0].Props.(block.HeroProps).Headline != "{{brandName}}" {
		t.Fatalf("preset mutated by render")
	}
}

func TestRenderUnknownStyleFallsBack(t *testing.T) {
	out := render.Render(pagePreset(), sampleModel(), style.Variant("neon"))
	if out[0].Style != style.Default {
		t.Fatalf("style = %q, want default", out[0].Style)
	}
}

func TestRenderCatalogLeavesNoPlaceholders(t *testing.T) {
	catalog := preset.Default()
	thin := content.Model{BrandName: "Acme"}
	for _, v := range catalog.Verticals() {
		presets, _ := catalog.Lookup(v)
		for _, p := range presets {
			out := render.Render(p, thin, style.Elegant)
			if len(out) != len(p.Blocks) {
				t.Fatalf("%s/%s rendered %d of %d blocks", v, p.Name, len(out), len(p.Blocks))
			}
			payload, err := json.Marshal(out)
			if err != nil {
				t.Fatalf("marshal %s/%s: %v", v, p.Name, err)
			}
			if strings.Contains(string(payload), "{{") {
				t.Fatalf("%s/%s left placeholders: %s", v, p.Name, payload)
			}
		}
	}
}

func TestRendererCustomRegistry(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(render.BlockRendererFunc{For: block.KindHero})
	registry.MustRegister(render.BlockRendererFunc{
		For: "carousel",
		Fn: func(inst render.Instance, _ render.BlockContext) (render.Instance, bool) {
			inst.Classes = append(inst.Classes, "custom")
			return inst, true
		},
	})

	out := render.New(render.WithRegistry(registry)).Render(pagePreset(), sampleModel(), style.Clean)
	if len(out) != 2 || out[0].ID != "hero" || out[1].ID != "mystery" {
		t.Fatalf("unexpected instances %+v", out)
	}
	unknown, ok := out[1].Props.(block.Unknown)
	if !ok || unknown.Raw.String("title") != "Slotly" {
		t.Fatalf("unknown block not substituted: %+v", out[1].Props)
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := render.DefaultRegistry()
	if diff := cmp.Diff(len(block.Kinds()), len(registry.List())); diff != "" {
		t.Fatalf("default registry size mismatch (-want +got):\n%s", diff)
	}
	if err := registry.Register(render.BlockRendererFunc{For: block.KindFAQ}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}
	if err := registry.Replace(render.BlockRendererFunc{For: block.KindFAQ}); err != nil {
		t.Fatalf("replace: %v", err)
	}
}
