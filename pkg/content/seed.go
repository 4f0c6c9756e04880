package content

import (
	"strings"
	"unicode"
)

type seedRule struct {
	terms    []string
	tagline  string
	features [3]string
}

// seedRules are tried in order; the first rule with a matching term supplies
// the tagline and the first three features.
var seedRules = []seedRule{
	{
		terms:    []string{"schedul", "calendar", "booking", "appointment"},
		tagline:  "Scheduling that runs itself",
		features: [3]string{"Smart calendar sync", "Automated reminders", "One-click rescheduling"},
	},
	{
		terms:    []string{"analytic", "dashboard", "report", "metrics"},
		tagline:  "Turn your data into decisions",
		features: [3]string{"Real-time dashboards", "Custom reports", "Team-wide insights"},
	},
	{
		terms:    []string{"invoice", "invoicing", "billing", "payment"},
		tagline:  "Get paid faster",
		features: [3]string{"Automated invoicing", "Online payments", "Cash-flow tracking"},
	},
	{
		terms:    []string{"restaurant", "food", "cafe", "coffee", "bakery", "pizza", "menu"},
		tagline:  "Fresh flavors, made with care",
		features: [3]string{"Seasonal menu", "Online reservations", "Takeout and delivery"},
	},
	{
		terms:    []string{"shop", "store", "ecommerce", "e-commerce", "sell"},
		tagline:  "Shop the things you'll love",
		features: [3]string{"Curated collections", "Fast, free shipping", "Easy returns"},
	},
	{
		terms:    []string{"fitness", "gym", "yoga", "workout", "trainer"},
		tagline:  "Stronger every day",
		features: [3]string{"Expert coaching", "Flexible class schedule", "Progress tracking"},
	},
	{
		terms:    []string{"clinic", "health", "medical", "therapy", "dental"},
		tagline:  "Care that puts you first",
		features: [3]string{"Same-week appointments", "Experienced practitioners", "Online patient portal"},
	},
	{
		terms:    []string{"course", "tutor", "learn", "school", "teach"},
		tagline:  "Learn at your own pace",
		features: [3]string{"Expert-led lessons", "Hands-on projects", "Progress certificates"},
	},
	{
		terms:    []string{"real estate", "property", "rental", "realtor", "homes"},
		tagline:  "Find the place you'll call home",
		features: [3]string{"Curated listings", "Local market expertise", "Virtual tours"},
	},
	{
		terms:    []string{"plumb", "cleaning", "repair", "landscap", "salon", "handyman"},
		tagline:  "Reliable service, right on time",
		features: [3]string{"Licensed professionals", "Upfront pricing", "Same-day availability"},
	},
	{
		terms:    []string{"agency", "design", "branding", "creative", "studio"},
		tagline:  "Ideas that make brands unforgettable",
		features: [3]string{"Brand strategy", "Design that converts", "Campaigns that scale"},
	},
	{
		terms:    []string{"charity", "nonprofit", "non-profit", "donat", "volunteer"},
		tagline:  "Together we make a difference",
		features: [3]string{"Transparent impact", "Easy donations", "Volunteer opportunities"},
	},
	{
		terms:    []string{"automat", "workflow", "integration"},
		tagline:  "Automate the busywork",
		features: [3]string{"Workflow automation", "Smart integrations", "Audit-ready logs"},
	},
}

var defaultFeatures = [3]string{"Easy to get started", "Designed for your needs", "Support when you need it"}

var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "my": {}, "our": {}, "your": {}, "this": {},
	"that": {}, "for": {}, "with": {}, "and": {}, "to": {}, "of": {}, "in": {},
	"on": {}, "at": {}, "by": {}, "from": {}, "is": {}, "it": {}, "we": {},
	"i": {}, "new": {},
}

// Seed derives a ContentModel from the idea text. Brand name and tagline are
// always populated; features holds three entries and ctas two.
func Seed(idea string) Model {
	lowered := strings.ToLower(idea)

	tagline := DefaultTagline
	features := defaultFeatures
	for _, rule := range seedRules {
		if containsAny(lowered, rule.terms) {
			tagline = rule.tagline
			features = rule.features
			break
		}
	}

	return Model{
		BrandName: brandFromIdea(idea),
		Tagline:   tagline,
		Features:  []string{features[0], features[1], features[2]},
		CTAs:      []string{DefaultPrimaryCTA, DefaultSecondaryCTA},
	}
}

// brandFromIdea takes the first two words of the idea. When the idea opens
// with a stopword the next word alone is used, and a stopword in second
// position shortens the name to one word.
func brandFromIdea(idea string) string {
	var words []string
	for _, field := range strings.Fields(idea) {
		if word := trimWord(field); word != "" {
			words = append(words, word)
		}
	}
	if len(words) == 0 {
		return DefaultBrandName
	}

	if isStopword(words[0]) {
		for _, word := range words[1:] {
			if !isStopword(word) {
				return titleWord(word)
			}
		}
		return DefaultBrandName
	}

	name := titleWord(words[0])
	if len(words) > 1 && !isStopword(words[1]) {
		name += " " + titleWord(words[1])
	}
	return name
}

func trimWord(word string) string {
	return strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func isStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}

func titleWord(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
