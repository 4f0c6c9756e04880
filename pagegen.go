// Package pagegen turns a one-line business idea into a landing page preview.
// It re-exports the orchestrator entry points so most callers only need this
// package; the pipeline stages live under pkg/.
package pagegen

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-pagegen/pkg/orchestrator"
	"github.com/goliatone/go-pagegen/pkg/preset"
	"github.com/goliatone/go-pagegen/pkg/renderers/html"
	"github.com/goliatone/go-pagegen/pkg/share"
)

// Request describes one preview.
type Request = orchestrator.Request

// Result is everything a preview produced.
type Result = orchestrator.Result

// Document is a PRD or UX document used to hydrate the content model.
type Document = orchestrator.Document

// Session keeps a preview's content model across calls.
type Session = orchestrator.Session

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate runs the full pipeline for req with a one-off orchestrator.
func Generate(ctx context.Context, req Request, options ...orchestrator.Option) (Result, error) {
	return orchestrator.New(options...).Generate(ctx, req)
}

// GenerateHTML renders the idea as a standalone HTML page using seed for the
// layout. An empty seed picks a fresh one.
func GenerateHTML(ctx context.Context, idea, seed string, options ...orchestrator.Option) ([]byte, error) {
	res, err := Generate(ctx, Request{Idea: idea, Seed: seed, Format: "html"}, options...)
	if err != nil {
		return nil, err
	}
	return res.Output, nil
}

// Reproduce re-renders the preview a share token describes in the given
// format.
func Reproduce(ctx context.Context, token, format string, options ...orchestrator.Option) (Result, error) {
	link, err := share.Decode(token)
	if err != nil {
		return Result{}, err
	}
	req := orchestrator.FromLink(link)
	req.Format = format
	return Generate(ctx, req, options...)
}

// WithLogger forwards a zap logger to the orchestrator.
func WithLogger(logger *zap.Logger) orchestrator.Option {
	return orchestrator.WithLogger(logger)
}

// WithPresetFS replaces the built-in preset catalog with the YAML/JSON
// documents found in fsys.
func WithPresetFS(fsys fs.FS) orchestrator.Option {
	return orchestrator.WithPresetFS(fsys)
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// style variants resolve against a caller-provided theme registry.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// EmbeddedTemplates exposes the built-in HTML templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}

// EmbeddedPresets exposes the bundled preset documents.
func EmbeddedPresets() fs.FS {
	return preset.EmbeddedFS()
}
