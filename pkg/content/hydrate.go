package content

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DocumentKind names the kind of long-form document being merged.
type DocumentKind string

const (
	KindPRD DocumentKind = "prd"
	KindUX  DocumentKind = "ux"
)

// ParseKind maps a label onto a DocumentKind.
func ParseKind(label string) (DocumentKind, bool) {
	switch DocumentKind(strings.ToLower(strings.TrimSpace(label))) {
	case KindPRD:
		return KindPRD, true
	case KindUX:
		return KindUX, true
	default:
		return "", false
	}
}

const (
	minFeatureLen = 10
	maxFeatureLen = 100
	maxHeadingLen = 50
	minQuoteLen   = 20
	maxMarkerLen  = 40
)

var (
	bulletLine      = regexp.MustCompile(`^(?:[-*•+]|\d+[.)])\s+(.+)$`)
	labelLine       = regexp.MustCompile(`(?i)^(product name|brand|name|tagline|description|summary|cta|call to action|button)\s*:\s*(.+)$`)
	questionLine    = regexp.MustCompile(`(?i)^(?:q:|question:|\?)\s*(.+)$`)
	answerLine      = regexp.MustCompile(`(?i)^(?:a:|answer:)\s*(.+)$`)
	testimonialLine = regexp.MustCompile(`^["“”](.+)["“”]\s*[-–—]+\s*(.+)$`)
	imageRef        = regexp.MustCompile(`!\[[^\]]*\]\(([^)\s]+)\)`)
	headingSplit    = regexp.MustCompile(`\s+[-–—|]\s+|:\s+`)
)

// genericHeadingWords are trimmed from the end of a heading before it is
// considered as a brand name.
var genericHeadingWords = map[string]struct{}{
	"prd": {}, "ux": {}, "product": {}, "requirements": {}, "requirement": {},
	"document": {}, "doc": {}, "overview": {}, "specification": {}, "spec": {},
	"design": {}, "brief": {}, "plan": {}, "flows": {}, "flow": {},
}

// scan accumulates the evidence found in one document.
type scan struct {
	brand        string
	headingBrand string
	tagline      string
	cta          string
	features     []string
	faq          []FAQ
	testimonials []string
	images       []string

	inFAQ    bool
	question string
}

// Hydrate merges evidence from a PRD or UX document into a copy of existing.
// Bullet items become candidate features, `Label: value` lines override the
// brand name, tagline and primary call to action, and a short top-level
// heading is used as a brand name when no label supplies one. UX documents are
// also scanned for an FAQ section and quoted testimonials. Lists are merged
// without duplicates and capped; fields only change when the document offers
// non-empty evidence.
func Hydrate(doc string, existing Model, kind DocumentKind) Model {
	out := existing.Clone()

	s := &scan{}
	for _, raw := range strings.Split(plainText(doc), "\n") {
		s.line(strings.TrimSpace(raw), kind == KindUX)
	}

	switch {
	case s.brand != "":
		out.BrandName = s.brand
	case s.headingBrand != "":
		out.BrandName = s.headingBrand
	}
	if s.tagline != "" {
		out.Tagline = s.tagline
	}
	if s.cta != "" {
		if len(out.CTAs) == 0 {
			out.CTAs = []string{s.cta}
		} else {
			out.CTAs[0] = s.cta
		}
	}
	if len(s.features) > 0 {
		out.Features = appendUnique(out.Features, s.features, MaxFeatures)
	}
	if len(s.faq) > 0 {
		out.FAQ = mergeFAQ(out.FAQ, s.faq)
	}
	if len(s.testimonials) > 0 {
		out.Testimonials = appendUnique(out.Testimonials, s.testimonials, MaxTestimonials)
	}
	if len(s.images) > 0 {
		out.Images = appendUnique(out.Images, s.images, MaxImages)
	}
	return out
}

func (s *scan) line(line string, ux bool) {
	if line == "" {
		return
	}
	for _, m := range imageRef.FindAllStringSubmatch(line, -1) {
		s.images = append(s.images, m[1])
	}

	if strings.HasPrefix(line, "#") {
		s.heading(line, ux)
		return
	}

	item, bulleted := line, false
	if m := bulletLine.FindStringSubmatch(line); m != nil {
		item, bulleted = strings.TrimSpace(m[1]), true
	}
	item = stripEmphasis(item)

	if s.label(item) {
		return
	}
	if ux {
		if !bulleted && utf8.RuneCountInString(item) <= maxMarkerLen && isFAQMarker(item) {
			s.inFAQ, s.question = true, ""
			return
		}
		if s.inFAQ && s.faqLine(item) {
			return
		}
		if m := testimonialLine.FindStringSubmatch(item); m != nil {
			quote := strings.TrimSpace(m[1])
			if utf8.RuneCountInString(quote) >= minQuoteLen {
				s.testimonials = append(s.testimonials, formatTestimonial(quote, strings.TrimSpace(m[2])))
				return
			}
		}
	}
	if bulleted && !imageRef.MatchString(item) {
		if n := utf8.RuneCountInString(item); n >= minFeatureLen && n <= maxFeatureLen {
			s.features = append(s.features, strings.TrimRight(item, ".;,"))
		}
	}
}

func (s *scan) heading(line string, ux bool) {
	level := len(line) - len(strings.TrimLeft(line, "#"))
	text := stripEmphasis(strings.TrimSpace(line[level:]))

	if ux {
		if isFAQMarker(text) {
			s.inFAQ, s.question = true, ""
			return
		}
		s.inFAQ, s.question = false, ""
	}

	if level != 1 || s.headingBrand != "" || utf8.RuneCountInString(text) >= maxHeadingLen {
		return
	}
	s.headingBrand = brandFromHeading(text)
}

// label applies a `Label: value` line. The first occurrence of each label
// wins.
func (s *scan) label(item string) bool {
	m := labelLine.FindStringSubmatch(item)
	if m == nil {
		return false
	}
	value := strings.Trim(strings.TrimSpace(m[2]), `"'“”`)
	if value == "" {
		return false
	}
	switch strings.ToLower(m[1]) {
	case "product name", "brand", "name":
		if s.brand == "" {
			s.brand = value
		}
	case "tagline", "description", "summary":
		if s.tagline == "" {
			s.tagline = value
		}
	case "cta", "call to action", "button":
		if s.cta == "" {
			s.cta = value
		}
	}
	return true
}

// faqLine advances the question/answer state machine. An answer only counts
// when a question is pending.
func (s *scan) faqLine(item string) bool {
	if m := questionLine.FindStringSubmatch(item); m != nil {
		s.question = strings.TrimSpace(m[1])
		return true
	}
	if m := answerLine.FindStringSubmatch(item); m != nil {
		if s.question != "" {
			s.faq = append(s.faq, FAQ{Q: s.question, A: strings.TrimSpace(m[1])})
			s.question = ""
		}
		return true
	}
	return false
}

func isFAQMarker(text string) bool {
	lowered := strings.ToLower(text)
	if strings.Contains(lowered, "frequently asked") {
		return true
	}
	for _, word := range strings.FieldsFunc(lowered, func(r rune) bool {
		return !(r >= 'a' && r <= 'z')
	}) {
		if word == "faq" || word == "faqs" {
			return true
		}
	}
	return false
}

func brandFromHeading(text string) string {
	segment := strings.TrimSpace(headingSplit.Split(text, 2)[0])
	words := strings.Fields(segment)
	for len(words) > 0 {
		if _, generic := genericHeadingWords[strings.ToLower(words[len(words)-1])]; !generic {
			break
		}
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

func stripEmphasis(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return strings.TrimSpace(s)
}

func mergeFAQ(existing, found []FAQ) []FAQ {
	out := append([]FAQ(nil), existing...)
	seen := make(map[string]struct{}, len(out)+len(found))
	for _, item := range out {
		seen[dedupeKey(item.Q)] = struct{}{}
	}
	for _, item := range found {
		key := dedupeKey(item.Q)
		if _, ok := seen[key]; ok || key == "" {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	if len(out) > MaxFAQ {
		out = out[:MaxFAQ]
	}
	return out
}
