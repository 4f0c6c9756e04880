package style

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ThemeName is the go-theme manifest name the variants are published under.
const ThemeName = "pagegen"

// ThemeVersion tracks the token table.
const ThemeVersion = "1.0.0"

// AssetPrefix is the URL prefix for theme assets.
const AssetPrefix = "/assets/pagegen"

// Manifest publishes the four variants as one go-theme manifest. The base
// tokens are Default's; every variant carries its full token set so the merge
// order never matters.
func Manifest() *theme.Manifest {
	manifest := &theme.Manifest{
		Name:    ThemeName,
		Version: ThemeVersion,
		Tokens:  Lookup(Default).Map(),
		Assets: theme.Assets{
			Prefix: AssetPrefix,
			Files: map[string]string{
				"stylesheet": "pagegen.css",
			},
		},
		Variants: make(map[string]theme.Variant, len(variants)),
	}
	for _, v := range variants {
		manifest.Variants[string(v)] = theme.Variant{
			Tokens: Lookup(v).Map(),
			Assets: theme.Assets{
				Files: map[string]string{
					"stylesheet": "pagegen." + string(v) + ".css",
				},
			},
		}
	}
	return manifest
}

// Provider returns a go-theme registry holding Manifest.
func Provider() (theme.ThemeProvider, error) {
	registry := theme.NewRegistry()
	if err := registry.Register(Manifest()); err != nil {
		return nil, fmt.Errorf("style: register manifest: %w", err)
	}
	return registry, nil
}

// Selector resolves theme/variant names against Manifest. It implements
// theme.ThemeSelector.
type Selector struct {
	manifest *theme.Manifest
}

var _ theme.ThemeSelector = (*Selector)(nil)

// NewSelector returns a selector over Manifest.
func NewSelector() *Selector {
	return &Selector{manifest: Manifest()}
}

// Select accepts an empty name or ThemeName, and an empty or known variant.
func (s *Selector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if name != "" && name != s.manifest.Name {
		return nil, fmt.Errorf("style: unknown theme %q", name)
	}
	v, ok := Parse(variant)
	if !ok {
		return nil, fmt.Errorf("style: unknown variant %q", variant)
	}
	return &theme.Selection{
		Theme:    s.manifest.Name,
		Variant:  string(v),
		Manifest: s.manifest,
	}, nil
}

// RendererConfig selects v from the default selector and derives the renderer
// configuration, with partials as fallbacks for templates the theme does not
// override.
func RendererConfig(v Variant, partials map[string]string) (*theme.RendererConfig, error) {
	selection, err := NewSelector().Select(ThemeName, string(v))
	if err != nil {
		return nil, err
	}
	return ConfigFromSelection(selection, partials), nil
}

// ConfigFromSelection merges manifest and variant tokens, templates and assets
// into a renderer configuration. CSS variables are the tokens prefixed "--".
func ConfigFromSelection(selection *theme.Selection, partials map[string]string) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest
	variant := manifest.Variants[selection.Variant]

	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: mergeStrings(partials, manifest.Templates, variant.Templates),
		Tokens:   mergeStrings(manifest.Tokens, variant.Tokens),
	}
	cfg.CSSVars = make(map[string]string, len(cfg.Tokens))
	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+key] = value
	}

	prefix := manifest.Assets.Prefix
	if variant.Assets.Prefix != "" {
		prefix = variant.Assets.Prefix
	}
	files := mergeStrings(manifest.Assets.Files, variant.Assets.Files)
	cfg.AssetURL = func(key string) string {
		file, ok := files[key]
		if !ok {
			return ""
		}
		if strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
			return file
		}
		return path.Join(prefix, file)
	}
	return cfg
}

func mergeStrings(layers ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, layer := range layers {
		for key, value := range layer {
			out[key] = value
		}
	}
	return out
}

func formatScale(scale float64) string {
	return strconv.FormatFloat(scale, 'f', -1, 64)
}
