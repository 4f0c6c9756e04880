// Package content builds and enriches the ContentModel a page is rendered
// from. Seed derives a first model from the one-line idea; Hydrate merges in
// evidence found in longer PRD and UX documents. Neither function fails and
// neither mutates its input: absent evidence leaves fields untouched.
package content

import "strings"

// Caps applied after every merge.
const (
	MaxFeatures     = 6
	MaxFAQ          = 5
	MaxTestimonials = 3
	MaxImages       = 4
)

// Fallback copy used when the idea gives nothing to work with.
const (
	DefaultBrandName    = "Your Brand"
	DefaultTagline      = "Built for the way you work"
	DefaultPrimaryCTA   = "Get Started"
	DefaultSecondaryCTA = "Learn More"
)

// FAQ is one question and answer pair.
type FAQ struct {
	Q string `json:"q"`
	A string `json:"a"`
}

// Model is the structured copy a page is rendered from. It is JSON friendly so
// it can travel inside share links.
type Model struct {
	BrandName    string   `json:"brandName"`
	Tagline      string   `json:"tagline"`
	Features     []string `json:"features"`
	CTAs         []string `json:"ctas"`
	FAQ          []FAQ    `json:"faq,omitempty"`
	Testimonials []string `json:"testimonials,omitempty"`
	Images       []string `json:"images,omitempty"`
}

// Clone returns a deep copy of m.
func (m Model) Clone() Model {
	out := m
	out.Features = cloneStrings(m.Features)
	out.CTAs = cloneStrings(m.CTAs)
	out.Testimonials = cloneStrings(m.Testimonials)
	out.Images = cloneStrings(m.Images)
	if m.FAQ != nil {
		out.FAQ = append([]FAQ(nil), m.FAQ...)
	}
	return out
}

// Testimonial splits a stored testimonial of the form `"quote" - Author` into
// its text and author. Strings without an author come back whole.
func Testimonial(raw string) (text, author string) {
	if m := testimonialLine.FindStringSubmatch(strings.TrimSpace(raw)); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return strings.TrimSpace(raw), ""
}

func formatTestimonial(text, author string) string {
	return `"` + text + `" - ` + author
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

// appendUnique appends candidates not already present (case-insensitive,
// whitespace-trimmed) and truncates the result to limit.
func appendUnique(existing, candidates []string, limit int) []string {
	out := cloneStrings(existing)
	seen := make(map[string]struct{}, len(out)+len(candidates))
	for _, item := range out {
		seen[dedupeKey(item)] = struct{}{}
	}
	for _, item := range candidates {
		key := dedupeKey(item)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, strings.TrimSpace(item))
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func dedupeKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
