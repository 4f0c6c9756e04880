// Package html renders a page preview as a standalone HTML document. Each
// block kind has its own pongo2 partial; themes may point a kind at a
// different partial through go-theme template overrides.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-pagegen/pkg/block"
	"github.com/goliatone/go-pagegen/pkg/render"
	rendertemplate "github.com/goliatone/go-pagegen/pkg/render/template"
	"github.com/goliatone/go-pagegen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-pagegen/pkg/style"
)

const pageTemplate = "templates/page"

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer implements render.PageRenderer.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.PageRenderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// DefaultPartials maps "block.<kind>" to the bundled partial of each kind.
func DefaultPartials() map[string]string {
	partials := make(map[string]string, len(block.Kinds()))
	for _, kind := range block.Kinds() {
		partials[PartialKey(kind)] = "templates/blocks/" + string(kind)
	}
	return partials
}

// PartialKey is the go-theme template key for kind.
func PartialKey(kind block.Kind) string {
	return "block." + string(kind)
}

// Render writes the page document. Instances whose kind has no partial are
// left out.
func (r *Renderer) Render(ctx context.Context, page render.Page) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	cfg := page.Theme
	if cfg == nil {
		var err error
		cfg, err = style.RendererConfig(page.Style, DefaultPartials())
		if err != nil {
			return nil, fmt.Errorf("html renderer: resolve theme: %w", err)
		}
	}
	themeCtx := themeContext(cfg)

	sections := make([]string, 0, len(page.Instances))
	for _, inst := range page.Instances {
		partial, ok := cfg.Partials[PartialKey(inst.Kind)]
		if !ok {
			partial, ok = DefaultPartials()[PartialKey(inst.Kind)]
		}
		if !ok {
			continue
		}
		section, err := r.templates.RenderTemplate(partial, map[string]any{
			"block": inst,
			"theme": themeCtx,
		})
		if err != nil {
			return nil, fmt.Errorf("html renderer: render %s block %q: %w", inst.Kind, inst.ID, err)
		}
		sections = append(sections, section)
	}

	stylesheet := ""
	if cfg.AssetURL != nil {
		stylesheet = cfg.AssetURL("stylesheet")
	}

	result, err := r.templates.RenderTemplate(pageTemplate, map[string]any{
		"title":      page.Title,
		"vertical":   string(page.Vertical),
		"preset":     page.Preset,
		"stylesheet": stylesheet,
		"theme":      themeCtx,
		"sections":   sections,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render page: %w", err)
	}
	return []byte(result), nil
}

func themeContext(cfg *theme.RendererConfig) map[string]any {
	return map[string]any{
		"name":    cfg.Theme,
		"variant": cfg.Variant,
		"cssVars": cfg.CSSVars,
		"tokens":  cfg.Tokens,
	}
}
