// Package testsupport holds fixture builders and assertion helpers shared by
// the package tests.
package testsupport

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pagegen/pkg/block"
	"github.com/goliatone/go-pagegen/pkg/content"
	"github.com/goliatone/go-pagegen/pkg/preset"
	"github.com/goliatone/go-pagegen/pkg/vertical"
)

// Idea is a scheduling SaaS pitch used across pipeline tests.
const Idea = "A scheduling app for busy salon owners"

// Model returns a fully populated content model.
func Model() content.Model {
	return content.Model{
		BrandName: "Slotly",
		Tagline:   "Scheduling that runs itself",
		Features:  []string{"Smart calendar sync", "Automated reminders", "One-click rescheduling"},
		CTAs:      []string{"Book a demo", "See pricing"},
		FAQ: []content.FAQ{
			{Q: "Does it sync with Google Calendar?", A: "Yes, changes flow both ways."},
		},
		Testimonials: []string{`"Our no-shows dropped by half in a month." - Priya, Salon Owner`},
	}
}

// Preset builds a preset with one block per kind. Block ids are the kinds;
// properties hold a title placeholder so substitution is observable.
func Preset(kinds ...block.Kind) preset.Preset {
	blocks := make([]block.Block, len(kinds))
	for i, kind := range kinds {
		props := block.Obj{
			"title":    block.Str("{{brandName}} " + string(kind)),
			"headline": block.Str("{{brandName}}"),
		}
		blocks[i] = block.New(string(kind), block.Decode(kind, props))
	}
	return preset.Preset{Name: "fixture", Vertical: vertical.B2BSaaS, Blocks: blocks}
}

// BlockIDs lists the block ids of p in order.
func BlockIDs(p preset.Preset) []string {
	ids := make([]string, len(p.Blocks))
	for i, b := range p.Blocks {
		ids[i] = b.ID
	}
	return ids
}

// MustLoadModel reads a JSON content model fixture.
func MustLoadModel(t *testing.T, path string) content.Model {
	t.Helper()

	m, err := LoadModel(path)
	if err != nil {
		t.Fatalf("load content model: %v", err)
	}
	return m
}

// LoadModel reads a JSON content model fixture, returning an error for callers
// managing setup outside of *testing.T.
func LoadModel(path string) (content.Model, error) {
	if path == "" {
		return content.Model{}, errors.New("testsupport: content model path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return content.Model{}, fmt.Errorf("testsupport: read content model: %w", err)
	}
	var m content.Model
	if err := json.Unmarshal(data, &m); err != nil {
		return content.Model{}, fmt.Errorf("testsupport: decode content model: %w", err)
	}
	return m, nil
}

// MustEqual fails the test with a cmp diff when want and got differ.
func MustEqual(t *testing.T, label string, want, got any, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Fatalf("%s mismatch (-want +got):\n%s", label, diff)
	}
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
