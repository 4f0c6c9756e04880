package prompt

import (
	"context"
	"strings"

	"github.com/goliatone/go-pagegen/pkg/content"
	"github.com/goliatone/go-pagegen/pkg/layout"
	"github.com/goliatone/go-pagegen/pkg/orchestrator"
	"github.com/goliatone/go-pagegen/pkg/style"
)

// Answers is what the interview collected.
type Answers struct {
	Idea      string
	Persona   string
	Job       string
	Style     style.Variant
	Layout    layout.Variant
	Documents []orchestrator.Document
}

// Request turns the answers into a preview request.
func (a Answers) Request() orchestrator.Request {
	docs := make([]orchestrator.Document, len(a.Documents))
	copy(docs, a.Documents)
	return orchestrator.Request{
		Idea:      a.Idea,
		Persona:   strings.TrimSpace(a.Persona),
		Job:       strings.TrimSpace(a.Job),
		Documents: docs,
		Layout:    a.Layout,
		Style:     a.Style,
	}
}

// Interview asks for the idea, optional persona and job, the style and layout,
// and optionally a PRD and a UX document.
func Interview(ctx context.Context, driver PromptDriver) (Answers, error) {
	var (
		ans Answers
		err error
	)

	if err = driver.Info(ctx, "Describe your business and we'll sketch a landing page."); err != nil {
		return Answers{}, err
	}

	ans.Idea, err = driver.Input(ctx, InputConfig{
		Message:   "What's the idea?",
		Help:      "One sentence is enough, e.g. \"a booking app for dog groomers\".",
		Validator: validateIdea,
	})
	if err != nil {
		return Answers{}, err
	}
	ans.Idea = strings.TrimSpace(ans.Idea)
	if err := validateIdea(ans.Idea); err != nil {
		return Answers{}, err
	}

	if ans.Persona, err = driver.Input(ctx, InputConfig{Message: "Who is it for? (optional)"}); err != nil {
		return Answers{}, err
	}
	if ans.Job, err = driver.Input(ctx, InputConfig{Message: "What job does it do for them? (optional)"}); err != nil {
		return Answers{}, err
	}

	styles := style.Variants()
	idx, err := driver.Select(ctx, SelectConfig{
		Message: "Pick a style",
		Options: variantNames(styles),
	})
	if err != nil {
		return Answers{}, err
	}
	ans.Style = style.Default
	if idx >= 0 && idx < len(styles) {
		ans.Style = styles[idx]
	}

	layouts := layout.Variants()
	idx, err = driver.Select(ctx, SelectConfig{
		Message: "Pick a layout",
		Options: variantNames(layouts),
	})
	if err != nil {
		return Answers{}, err
	}
	ans.Layout = layout.Standard
	if idx >= 0 && idx < len(layouts) {
		ans.Layout = layouts[idx]
	}

	for _, doc := range []struct {
		kind    content.DocumentKind
		confirm string
		message string
	}{
		{content.KindPRD, "Do you have a PRD to paste?", "Paste the PRD"},
		{content.KindUX, "Do you have UX notes to paste?", "Paste the UX notes"},
	} {
		ok, err := driver.Confirm(ctx, ConfirmConfig{Message: doc.confirm})
		if err != nil {
			return Answers{}, err
		}
		if !ok {
			continue
		}
		text, err := driver.TextArea(ctx, TextAreaConfig{Message: doc.message})
		if err != nil {
			return Answers{}, err
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		ans.Documents = append(ans.Documents, orchestrator.Document{Kind: doc.kind, Text: text})
	}
	return ans, nil
}

func validateIdea(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrIdeaRequired
	}
	return nil
}

func variantNames[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
