package gotemplate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-pagegen/pkg/render/template"
)

// DefaultExtension is appended to template names that carry none.
const DefaultExtension = ".tmpl"

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir   string
	files     fs.FS
	extension string
	funcs     map[string]any
	globals   map[string]any
}

// WithFS loads templates from files.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.files = files
		}
	}
}

// WithDir loads templates from a directory on disk.
func WithDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithExtension overrides DefaultExtension. The leading dot is optional.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		cfg.extension = "." + strings.TrimPrefix(ext, ".")
	}
}

// WithTemplateFunc registers filters (pongo2.FilterFunction values) and
// callable globals when the engine loads.
func WithTemplateFunc(funcs map[string]any) Option {
	return func(cfg *config) {
		for name, fn := range funcs {
			if name = strings.TrimSpace(name); name != "" && fn != nil {
				cfg.funcs[name] = fn
			}
		}
	}
}

// WithGlobalData seeds values every template sees.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		for key, value := range data {
			if key = strings.TrimSpace(key); key != "" {
				cfg.globals[key] = value
			}
		}
	}
}

// Engine renders pongo2 templates through a go-template engine. Data is
// converted to a template context via JSON, so structs are addressed by their
// JSON field names.
type Engine struct {
	engine *gotemplatepkg.Engine
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an Engine over the configured template files.
func New(options ...Option) (*Engine, error) {
	cfg := config{
		extension: DefaultExtension,
		funcs:     map[string]any{"cssvars": pongo2.FilterFunction(filterCSSVars)},
		globals:   map[string]any{},
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.files == nil && cfg.baseDir == "" {
		return nil, errors.New("gotemplate: no template files configured")
	}

	opts := []gotemplatepkg.Option{
		gotemplatepkg.WithExtension(cfg.extension),
		gotemplatepkg.WithTemplateFunc(cfg.funcs),
		gotemplatepkg.WithGlobalData(cfg.globals),
	}
	if cfg.files != nil {
		opts = append(opts, gotemplatepkg.WithFS(cfg.files))
	}
	if cfg.baseDir != "" {
		opts = append(opts, gotemplatepkg.WithBaseDir(cfg.baseDir))
	}

	engine, err := gotemplatepkg.NewRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load engine: %w", err)
	}
	return &Engine{engine: engine}, nil
}

// RenderTemplate executes the named template. Parsed templates are cached by
// name.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.engine == nil {
		return "", errors.New("gotemplate: nil engine")
	}
	rendered, err := e.engine.RenderTemplate(name, data, out...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %w", err)
	}
	return rendered, nil
}

// RenderString parses and executes source. The result of parsing is not cached.
func (e *Engine) RenderString(source string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.engine == nil {
		return "", errors.New("gotemplate: nil engine")
	}
	rendered, err := e.engine.RenderString(source, data, out...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %w", err)
	}
	return rendered, nil
}

// RegisterFilter adds a pongo2 filter. pongo2 filters are global to the
// process, so registering a name twice fails.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if e == nil || e.engine == nil {
		return errors.New("gotemplate: nil engine")
	}
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return errors.New("gotemplate: filter needs a name and a function")
	}
	if err := e.engine.RegisterFilter(name, fn); err != nil {
		return fmt.Errorf("gotemplate: %w", err)
	}
	return nil
}

// GlobalContext merges data into the values every template sees.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.engine == nil {
		return errors.New("gotemplate: nil engine")
	}
	if ctx, ok := data.(pongo2.Context); ok {
		data = map[string]any(ctx)
	}
	if err := e.engine.GlobalContext(data); err != nil {
		return fmt.Errorf("gotemplate: %w", err)
	}
	return nil
}

// filterCSSVars renders custom properties as "--a: 1; --b: 2;" in key order.
func filterCSSVars(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	vars := map[string]string{}
	switch m := in.Interface().(type) {
	case map[string]string:
		vars = m
	case map[string]any:
		for key, value := range m {
			vars[key] = fmt.Sprint(value)
		}
	default:
		return pongo2.AsValue(""), nil
	}

	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	decls := make([]string, len(keys))
	for i, key := range keys {
		decls[i] = key + ": " + vars[key] + ";"
	}
	return pongo2.AsValue(strings.Join(decls, " ")), nil
}
