package render

import (
	"strings"

	"github.com/goliatone/go-pagegen/pkg/block"
	"github.com/goliatone/go-pagegen/pkg/content"
)

// token is one entry of the placeholder vocabulary.
type token struct {
	path     string
	resolve  func(content.Model) string
	fallback string
}

// vocabulary is applied in order; every entry is a literal find and replace.
var vocabulary = []token{
	{path: "brandName", resolve: func(m content.Model) string { return m.BrandName }, fallback: content.DefaultBrandName},
	{path: "tagline", resolve: func(m content.Model) string { return m.Tagline }, fallback: content.DefaultTagline},
	{path: "ctas.0", resolve: ctaAt(0), fallback: content.DefaultPrimaryCTA},
	{path: "ctas.1", resolve: ctaAt(1), fallback: content.DefaultSecondaryCTA},
	{path: "features.0", resolve: featureAt(0), fallback: "Thoughtful design"},
	{path: "features.1", resolve: featureAt(1), fallback: "Reliable performance"},
	{path: "features.2", resolve: featureAt(2), fallback: "Friendly support"},
	{path: "faq.0.q", resolve: questionAt(0), fallback: "How do I get started?"},
	{path: "faq.0.a", resolve: answerAt(0), fallback: "Sign up in minutes and follow the guided setup."},
	{path: "faq.1.q", resolve: questionAt(1), fallback: "Is there a free trial?"},
	{path: "faq.1.a", resolve: answerAt(1), fallback: "Yes. Try everything free for 14 days, no card required."},
	{path: "faq.2.q", resolve: questionAt(2), fallback: "Can I cancel anytime?"},
	{path: "faq.2.a", resolve: answerAt(2), fallback: "Absolutely. There are no long-term contracts."},
}

// Tokens lists the supported placeholder paths in substitution order.
func Tokens() []string {
	out := make([]string, len(vocabulary))
	for i, t := range vocabulary {
		out[i] = t.path
	}
	return out
}

// ResolveToken returns the replacement for a placeholder path. Paths the model
// cannot satisfy resolve to the token's fixed default; the boolean is false
// only for paths outside the vocabulary.
func ResolveToken(path string, m content.Model) (string, bool) {
	for _, t := range vocabulary {
		if t.path == path {
			return t.value(m), true
		}
	}
	return "", false
}

func (t token) value(m content.Model) string {
	if v := strings.TrimSpace(t.resolve(m)); v != "" {
		return v
	}
	return t.fallback
}

// SubstituteString replaces every known {{path}} in s. Unknown tokens are
// left as written.
func SubstituteString(s string, m content.Model) string {
	if !strings.Contains(s, "{{") {
		return s
	}
	for _, t := range vocabulary {
		placeholder := "{{" + t.path + "}}"
		if strings.Contains(s, placeholder) {
			s = strings.ReplaceAll(s, placeholder, t.value(m))
		}
	}
	return s
}

// Substitute returns a copy of v with every string leaf passed through
// SubstituteString. v is not modified.
func Substitute(v block.Value, m content.Model) block.Value {
	return block.Map(v, func(s string) string {
		return SubstituteString(s, m)
	})
}

func ctaAt(i int) func(content.Model) string {
	return func(m content.Model) string { return at(m.CTAs, i) }
}

func featureAt(i int) func(content.Model) string {
	return func(m content.Model) string { return at(m.Features, i) }
}

func questionAt(i int) func(content.Model) string {
	return func(m content.Model) string {
		if i < len(m.FAQ) {
			return m.FAQ[i].Q
		}
		return ""
	}
}

func answerAt(i int) func(content.Model) string {
	return func(m content.Model) string {
		if i < len(m.FAQ) {
			return m.FAQ[i].A
		}
		return ""
	}
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}
