package content_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pagegen/pkg/content"
)

func TestSeed_BrandName(t *testing.T) {
	cases := map[string]string{
		"Bloom wellness app":        "Bloom Wellness",
		"bloom for teachers":        "Bloom",
		"A bakery for dogs":         "Bakery",
		"The pizza place downtown":  "Pizza",
		"  acme, inc. builds tools": "Acme Inc",
		"":                          content.DefaultBrandName,
		"!!! ???":                   content.DefaultBrandName,
		"the a an":                  content.DefaultBrandName,
	}
	for idea, want := range cases {
		if got := content.Seed(idea).BrandName; got != want {
			t.Fatalf("Seed(%q).BrandName = %q, want %q", idea, got, want)
		}
	}
}

func TestSeed_RulesFirstMatchWins(t *testing.T) {
	got := content.Seed("Analytics dashboard for restaurant scheduling")
	want := content.Model{
		BrandName: "Analytics Dashboard",
		Tagline:   "Scheduling that runs itself",
		Features:  []string{"Smart calendar sync", "Automated reminders", "One-click rescheduling"},
		CTAs:      []string{content.DefaultPrimaryCTA, content.DefaultSecondaryCTA},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("seed mismatch (-want +got):\n%s", diff)
	}

	if tagline := content.Seed("Pixel pizza delivery").Tagline; tagline != "Fresh flavors, made with care" {
		t.Fatalf("unexpected restaurant tagline %q", tagline)
	}
}

func TestSeed_Fallbacks(t *testing.T) {
	got := content.Seed("zzz")
	if got.Tagline != content.DefaultTagline {
		t.Fatalf("tagline = %q, want default", got.Tagline)
	}
	if len(got.Features) != 3 || len(got.CTAs) != 2 {
		t.Fatalf("expected 3 features and 2 ctas, got %d/%d", len(got.Features), len(got.CTAs))
	}
	if got.FAQ != nil || got.Testimonials != nil || got.Images != nil {
		t.Fatalf("optional fields should stay empty: %+v", got)
	}
}

func TestTestimonialSplit(t *testing.T) {
	text, author := content.Testimonial(`"Great stuff, would buy again" - Ann, Founder`)
	if text != "Great stuff, would buy again" || author != "Ann, Founder" {
		t.Fatalf("unexpected split: %q / %q", text, author)
	}
	text, author = content.Testimonial("plain praise")
	if text != "plain praise" || author != "" {
		t.Fatalf("unexpected split for plain text: %q / %q", text, author)
	}
}
