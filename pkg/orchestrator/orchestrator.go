package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/google/uuid"
	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-pagegen/pkg/content"
	"github.com/goliatone/go-pagegen/pkg/layout"
	"github.com/goliatone/go-pagegen/pkg/preset"
	"github.com/goliatone/go-pagegen/pkg/render"
	"github.com/goliatone/go-pagegen/pkg/renderers/html"
	"github.com/goliatone/go-pagegen/pkg/renderers/jsonpage"
	"github.com/goliatone/go-pagegen/pkg/share"
	"github.com/goliatone/go-pagegen/pkg/style"
	"github.com/goliatone/go-pagegen/pkg/vertical"
)

// ErrNoPreset reports that the catalog holds no preset for the chosen
// vertical, or none with the requested name.
var ErrNoPreset = errors.New("orchestrator: no preset available")

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLogger sets the structured logger. Defaults to zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCatalog injects a preset catalog.
func WithCatalog(catalog *preset.Catalog) Option {
	return func(o *Orchestrator) {
		o.catalog = catalog
	}
}

// WithPresetFS loads the catalog from fsys instead of the embedded presets.
func WithPresetFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.presetFS = fsys
	}
}

// WithRenderer injects the block renderer.
func WithRenderer(renderer *render.Renderer) Option {
	return func(o *Orchestrator) {
		o.renderer = renderer
	}
}

// WithPageRenderers registers output formats by Name(). Later registrations
// replace earlier ones with the same name.
func WithPageRenderers(renderers ...render.PageRenderer) Option {
	return func(o *Orchestrator) {
		for _, r := range renderers {
			if r == nil {
				continue
			}
			if o.formats == nil {
				o.formats = make(map[string]render.PageRenderer)
			}
			o.formats[r.Name()] = r
		}
	}
}

// WithThemeSelector resolves style variants through a go-theme selector.
// Defaults to style.NewSelector().
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.selector = selector
	}
}

// WithSeedSource replaces the generator used when a request carries no seed.
func WithSeedSource(fn func() string) Option {
	return func(o *Orchestrator) {
		o.newSeed = fn
	}
}

// Orchestrator runs the preview pipeline. It is safe for concurrent use once
// constructed.
type Orchestrator struct {
	logger        *zap.Logger
	catalog       *preset.Catalog
	presetFS      fs.FS
	renderer      *render.Renderer
	formats       map[string]render.PageRenderer
	selector      theme.ThemeSelector
	newSeed       func() string
	initialiseErr error
}

// New constructs an Orchestrator. Missing dependencies are filled with the
// built-in implementations; a preset FS that fails to load surfaces on the
// first Generate call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.catalog == nil {
		if o.presetFS != nil {
			catalog, err := preset.LoadFS(o.presetFS)
			if err != nil {
				o.initialiseErr = fmt.Errorf("orchestrator: load presets: %w", err)
			}
			o.catalog = catalog
		} else {
			o.catalog = preset.Default()
		}
	}
	if o.renderer == nil {
		o.renderer = render.New()
	}
	if o.selector == nil {
		o.selector = style.NewSelector()
	}
	if o.newSeed == nil {
		o.newSeed = uuid.NewString
	}
	if _, ok := o.formats["json"]; !ok {
		WithPageRenderers(jsonpage.New(false))(o)
	}
	if _, ok := o.formats["html"]; !ok {
		renderer, err := html.New()
		if err != nil {
			o.initialiseErr = errors.Join(o.initialiseErr, fmt.Errorf("orchestrator: html renderer: %w", err))
		} else {
			WithPageRenderers(renderer)(o)
		}
	}
}

// Catalog exposes the preset catalog in use.
func (o *Orchestrator) Catalog() *preset.Catalog {
	return o.catalog
}

// Formats lists the registered output formats.
func (o *Orchestrator) Formats() []string {
	names := make([]string, 0, len(o.formats))
	for name := range o.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Document is a longer text the content model is hydrated from.
type Document struct {
	Kind content.DocumentKind
	Text string
}

// Request describes one preview.
type Request struct {
	Idea    string
	Persona string
	Job     string
	Hint    *vertical.Hint

	// Vertical skips classification when set. Labels are normalised with
	// vertical.Parse; an unknown label fails the request.
	Vertical vertical.Vertical
	// Content resumes from an existing model instead of seeding from Idea.
	Content *content.Model
	// Documents are applied in order after seeding.
	Documents []Document

	// Preset names a preset of the vertical; empty selects its default.
	Preset string
	// Seed drives the layout shuffle. A fresh one is generated when empty and
	// returned in the Result.
	Seed   string
	Layout layout.Variant
	Style  style.Variant

	// Format names a registered page renderer. Empty skips output rendering.
	Format string
	Title  string
}

// Result is everything a preview produced.
type Result struct {
	Vertical       vertical.Vertical
	Classification vertical.Result
	Content        content.Model
	Preset         string
	Seed           string
	Layout         layout.Variant
	Style          style.Variant
	Blocks         []render.Instance
	Theme          *theme.RendererConfig
	Link           string

	Format      string
	ContentType string
	Output      []byte
}

// Generate runs Classify -> Seed/Hydrate -> Select+Shuffle -> Render.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}

	var res Result
	if req.Vertical != "" {
		v, ok := vertical.Parse(string(req.Vertical))
		if !ok {
			return Result{}, fmt.Errorf("orchestrator: unknown vertical %q", req.Vertical)
		}
		req.Vertical = v
	}
	res.Vertical, res.Classification = o.classify(req)
	res.Content = o.content(req)

	var err error
	res.Layout, res.Style, err = variants(req)
	if err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	base, ok := o.catalog.Find(res.Vertical, req.Preset)
	if !ok {
		if req.Preset != "" {
			return Result{}, fmt.Errorf("%w: preset %q for %s", ErrNoPreset, req.Preset, res.Vertical)
		}
		return Result{}, fmt.Errorf("%w: %s", ErrNoPreset, res.Vertical)
	}
	res.Preset = base.Name

	res.Seed = req.Seed
	if res.Seed == "" {
		res.Seed = o.newSeed()
	}
	shuffled := layout.Generate(base, res.Seed, res.Layout)
	o.logger.Debug("preset selected",
		zap.String("vertical", string(res.Vertical)),
		zap.String("preset", res.Preset),
		zap.String("seed", res.Seed),
		zap.String("layout", string(res.Layout)),
		zap.Int("blocks", len(shuffled.Blocks)),
	)

	res.Blocks = o.renderer.Render(shuffled, res.Content, res.Style)
	res.Theme, err = o.themeConfig(res.Style)
	if err != nil {
		return Result{}, err
	}

	res.Link, err = share.Encode(share.Link{
		Vertical: res.Vertical,
		Preset:   res.Preset,
		Seed:     res.Seed,
		Layout:   res.Layout,
		Style:    res.Style,
		Content:  res.Content,
	})
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: %w", err)
	}

	if req.Format != "" {
		if err := o.output(ctx, req, &res); err != nil {
			return Result{}, err
		}
	}
	return res, nil
}

// FromLink rebuilds the request a share link describes.
func FromLink(l share.Link) Request {
	m := l.Content.Clone()
	return Request{
		Vertical: l.Vertical,
		Content:  &m,
		Preset:   l.Preset,
		Seed:     l.Seed,
		Layout:   l.Layout,
		Style:    l.Style,
	}
}

func (o *Orchestrator) classify(req Request) (vertical.Vertical, vertical.Result) {
	explained := vertical.Explain(vertical.Input{
		Idea:    req.Idea,
		Persona: req.Persona,
		Job:     req.Job,
		Hint:    req.Hint,
	})
	o.logger.Debug("idea classified",
		zap.String("vertical", string(explained.Vertical)),
		zap.String("source", string(explained.Source)),
	)
	if req.Vertical.Known() {
		return req.Vertical, explained
	}
	return explained.Vertical, explained
}

func (o *Orchestrator) content(req Request) content.Model {
	var m content.Model
	if req.Content != nil {
		m = req.Content.Clone()
	} else {
		m = content.Seed(req.Idea)
	}
	for _, doc := range req.Documents {
		m = content.Hydrate(doc.Text, m, doc.Kind)
	}
	o.logger.Debug("content ready",
		zap.String("brand", m.BrandName),
		zap.Int("features", len(m.Features)),
		zap.Int("faq", len(m.FAQ)),
		zap.Int("testimonials", len(m.Testimonials)),
		zap.Int("documents", len(req.Documents)),
	)
	return m
}

func variants(req Request) (layout.Variant, style.Variant, error) {
	l, ok := layout.ParseVariant(string(req.Layout))
	if !ok {
		return "", "", fmt.Errorf("orchestrator: unknown layout %q", req.Layout)
	}
	s, ok := style.Parse(string(req.Style))
	if !ok {
		return "", "", fmt.Errorf("orchestrator: unknown style %q", req.Style)
	}
	return l, s, nil
}

func (o *Orchestrator) themeConfig(v style.Variant) (*theme.RendererConfig, error) {
	selection, err := o.selector.Select(style.ThemeName, string(v))
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	return style.ConfigFromSelection(selection, html.DefaultPartials()), nil
}

func (o *Orchestrator) output(ctx context.Context, req Request, res *Result) error {
	renderer, ok := o.formats[req.Format]
	if !ok {
		return fmt.Errorf("orchestrator: format %q not registered", req.Format)
	}
	title := req.Title
	if title == "" {
		title = res.Content.BrandName
	}
	out, err := renderer.Render(ctx, render.Page{
		Title:     title,
		Vertical:  res.Vertical,
		Preset:    res.Preset,
		Style:     res.Style,
		Instances: res.Blocks,
		Theme:     res.Theme,
	})
	if err != nil {
		return fmt.Errorf("orchestrator: render %s: %w", req.Format, err)
	}
	res.Format = renderer.Name()
	res.ContentType = renderer.ContentType()
	res.Output = out
	return nil
}
