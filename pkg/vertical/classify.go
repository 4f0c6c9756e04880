package vertical

import "strings"

// Hint carries an upstream classification (for example from an LLM call).
// Only the first entry is consulted.
type Hint struct {
	Verticals []string `json:"verticals"`
}

// Input bundles the free text the classifier looks at.
type Input struct {
	Idea    string
	Persona string
	Job     string
	Hint    *Hint
}

// Source records which rule produced a classification.
type Source string

const (
	SourceHint     Source = "hint"
	SourceKeywords Source = "keywords"
	SourceContext  Source = "context"
	SourceDefault  Source = "default"
)

// Result is a classification together with the evidence behind it.
type Result struct {
	Vertical Vertical
	Source   Source
	Scores   map[Vertical]int
}

// Classify returns the vertical for the input. It never fails.
func Classify(in Input) Vertical {
	return Explain(in).Vertical
}

// Explain classifies the input and reports how the answer was reached. A
// recognised hint wins outright; otherwise the highest keyword score wins,
// ties going to the vertical listed first by All. With no keyword evidence
// the broader context rules run, then Default.
func Explain(in Input) Result {
	if v, ok := fromHint(in.Hint); ok {
		return Result{Vertical: v, Source: SourceHint}
	}

	text := strings.ToLower(strings.Join([]string{in.Idea, in.Persona, in.Job}, " "))
	scores := Scores(text)

	best, bestScore := Vertical(""), 0
	for _, v := range order {
		if scores[v] > bestScore {
			best, bestScore = v, scores[v]
		}
	}
	if bestScore > 0 {
		return Result{Vertical: best, Source: SourceKeywords, Scores: scores}
	}

	for _, rule := range contextRules {
		if containsAny(text, rule.terms) {
			return Result{Vertical: rule.vertical, Source: SourceContext, Scores: scores}
		}
	}
	return Result{Vertical: Default, Source: SourceDefault, Scores: scores}
}

// Scores counts, for every vertical, how many of its keywords occur in text.
// Matching is case-insensitive.
func Scores(text string) map[Vertical]int {
	lowered := strings.ToLower(text)
	scores := make(map[Vertical]int, len(order))
	for _, v := range order {
		scores[v] = Score(lowered, v)
	}
	return scores
}

// Score counts the keywords of v present in text, which must already be
// lowercase.
func Score(text string, v Vertical) int {
	score := 0
	for _, term := range buckets[v] {
		if strings.Contains(text, term) {
			score++
		}
	}
	return score
}

func fromHint(hint *Hint) (Vertical, bool) {
	if hint == nil || len(hint.Verticals) == 0 {
		return "", false
	}
	return Parse(hint.Verticals[0])
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
