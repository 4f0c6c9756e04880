package block_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-pagegen/pkg/block"
)

func TestDecodeRoundTripsEveryKind(t *testing.T) {
	samples := []block.Props{
		block.HeroProps{Headline: "{{brandName}}", Subheadline: "{{tagline}}", PrimaryCTA: "{{ctas.0}}", SecondaryCTA: "{{ctas.1}}"},
		block.LogoRowProps{Title: "Trusted by", Logos: []string{"Acme", "Globex"}},
		block.FeatureGridProps{Title: "Why us", Items: []block.FeatureItem{{Title: "{{features.0}}", Description: "fast"}}},
		block.SplitImageProps{Title: "See it", Body: "copy", Image: "/img.png", CTA: "Go", Align: "left"},
		block.PricingProps{Title: "Plans", Tiers: []block.PricingTier{{Name: "Pro", Price: "29", Features: []string{"a", "b"}}}},
		block.TestimonialProps{Title: "Loved", Quotes: []block.Quote{{Text: "Great", Author: "Ann"}}},
		block.FAQProps{Title: "FAQ", Items: []block.FAQItem{{Question: "{{faq.0.q}}", Answer: "{{faq.0.a}}"}}},
		block.FooterProps{BrandName: "{{brandName}}", Links: []string{"Privacy"}, Copyright: "2026"},
	}

	for _, props := range samples {
		t.Run(string(props.Kind()), func(t *testing.T) {
			got := block.Decode(props.Kind(), props.Value())
			if diff := cmp.Diff(props, got); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMapCopiesAndRewritesLeaves(t *testing.T) {
	original := block.Obj{
		"title": block.Str("hello"),
		"items": block.Seq{block.Str("a"), block.Obj{"nested": block.Str("b")}},
	}

	mapped := block.Map(original, strings.ToUpper).(block.Obj)

	want := block.Obj{
		"title": block.Str("HELLO"),
		"items": block.Seq{block.Str("A"), block.Obj{"nested": block.Str("B")}},
	}
	if diff := cmp.Diff(want, mapped); diff != "" {
		t.Fatalf("mapped tree mismatch (-want +got):\n%s", diff)
	}

	mapped["items"].(block.Seq)[1].(block.Obj)["nested"] = block.Str("changed")
	if got := original["items"].(block.Seq)[1].(block.Obj).String("nested"); got != "b" {
		t.Fatalf("original mutated through copy: %q", got)
	}
}

func TestStringsVisitsLeavesInStableOrder(t *testing.T) {
	v := block.Obj{
		"b": block.Str("second"),
		"a": block.Seq{block.Str("first-1"), block.Str("first-2")},
	}
	want := []string{"first-1", "first-2", "second"}
	if diff := cmp.Diff(want, block.Strings(v)); diff != "" {
		t.Fatalf("leaf order mismatch (-want +got):\n%s", diff)
	}
}

func TestBlockJSONKeepsUnknownKinds(t *testing.T) {
	payload := `[
		{"id":"h","type":"hero","props":{"headline":"{{brandName}}"}},
		{"id":"x","type":"carousel","props":{"slides":["one","two"],"speed":3}},
		{"id":"f","type":"footer","props":{"brandName":"Acme"}}
	]`

	var blocks []block.Block
	if err := json.Unmarshal([]byte(payload), &blocks); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}

	unknown, ok := blocks[1].Props.(block.Unknown)
	if !ok {
		t.Fatalf("expected Unknown props, got %T", blocks[1].Props)
	}
	if unknown.Type != "carousel" || blocks[1].Kind().Known() {
		t.Fatalf("unexpected unknown block: %+v", unknown)
	}
	if got := unknown.Raw.String("speed"); got != "3" {
		t.Fatalf("numeric scalar not preserved as text: %q", got)
	}

	encoded, err := json.Marshal(blocks)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var again []block.Block
	if err := json.Unmarshal(encoded, &again); err != nil {
		t.Fatalf("unmarshal again: %v", err)
	}
	if diff := cmp.Diff(blocks, again); diff != "" {
		t.Fatalf("json round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestBlockYAMLDecode(t *testing.T) {
	doc := `
id: pricing-main
type: pricing
props:
  title: Plans
  tiers:
    - name: Starter
      price: 19
      features: [one, two]
`
	var b block.Block
	if err := yaml.Unmarshal([]byte(doc), &b); err != nil {
		t.Fatalf("yaml unmarshal: %v", err)
	}
	props, ok := b.Props.(block.PricingProps)
	if !ok {
		t.Fatalf("expected PricingProps, got %T", b.Props)
	}
	if b.ID != "pricing-main" || props.Tiers[0].Price != "19" {
		t.Fatalf("unexpected block: %+v", b)
	}
	if diff := cmp.Diff([]string{"one", "two"}, props.Tiers[0].Features); diff != "" {
		t.Fatalf("features mismatch (-want +got):\n%s", diff)
	}
}

func TestBlockWithoutTypeFails(t *testing.T) {
	var b block.Block
	if err := json.Unmarshal([]byte(`{"id":"a","props":{}}`), &b); err == nil {
		t.Fatalf("expected error for missing type")
	}
}

func TestCloneSharesNothing(t *testing.T) {
	original := block.New("logos", block.LogoRowProps{Title: "Trusted", Logos: []string{"A", "B"}})
	cloned := original.Clone()

	cloned.Props.(block.LogoRowProps).Logos[0] = "Z"
	if got := original.Props.(block.LogoRowProps).Logos[0]; got != "A" {
		t.Fatalf("clone shares slice with original: %q", got)
	}
}
