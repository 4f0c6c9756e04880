// Package style holds the four visual themes a preview can be rendered with.
// Lookup is a pure table read; the same tokens are also published as a
// go-theme manifest so presentation adapters can resolve them through a
// theme selector.
package style

import "strings"

// Variant names one of the visual themes.
type Variant string

const (
	Clean   Variant = "clean"
	Bold    Variant = "bold"
	Elegant Variant = "elegant"
	Playful Variant = "playful"
)

// Default is used when no variant is requested.
const Default = Clean

var variants = []Variant{Clean, Bold, Elegant, Playful}

// Variants lists the themes in declaration order.
func Variants() []Variant {
	return append([]Variant(nil), variants...)
}

// Known reports whether v is one of the four themes.
func (v Variant) Known() bool {
	_, ok := table[v]
	return ok
}

// Parse matches a theme name case-insensitively. An empty name is Default.
func Parse(name string) (Variant, bool) {
	v := Variant(strings.ToLower(strings.TrimSpace(name)))
	if v == "" {
		return Default, true
	}
	if !v.Known() {
		return "", false
	}
	return v, true
}

// Colors is the palette of a theme.
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
	Muted      string `json:"muted"`
}

// Radii are corner radii from small controls to large cards.
type Radii struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// Shadows are box shadows for resting and raised surfaces.
type Shadows struct {
	Card     string `json:"card"`
	Elevated string `json:"elevated"`
}

// Spacing controls vertical rhythm.
type Spacing struct {
	Section string `json:"section"`
	Gap     string `json:"gap"`
}

// Typography is the font family and scale.
type Typography struct {
	Family   string  `json:"family"`
	Heading  string  `json:"heading"`
	Base     string  `json:"base"`
	Scale    float64 `json:"scale"`
	Headline string  `json:"headline"`
}

// Tokens is the full design-token record of a theme.
type Tokens struct {
	Colors     Colors     `json:"colors"`
	Radii      Radii      `json:"radii"`
	Shadows    Shadows    `json:"shadows"`
	Spacing    Spacing    `json:"spacing"`
	Typography Typography `json:"typography"`
}

var table = map[Variant]Tokens{
	Clean: {
		Colors: Colors{
			Primary: "#2563eb", Secondary: "#0f172a", Accent: "#38bdf8",
			Background: "#ffffff", Surface: "#f8fafc", Text: "#0f172a", Muted: "#64748b",
		},
		Radii:   Radii{Small: "4px", Medium: "8px", Large: "16px"},
		Shadows: Shadows{Card: "0 1px 3px rgba(15,23,42,0.08)", Elevated: "0 10px 30px rgba(15,23,42,0.12)"},
		Spacing: Spacing{Section: "96px", Gap: "24px"},
		Typography: Typography{
			Family: "Inter, system-ui, sans-serif", Heading: "Inter, system-ui, sans-serif",
			Base: "16px", Scale: 1.25, Headline: "3rem",
		},
	},
	Bold: {
		Colors: Colors{
			Primary: "#dc2626", Secondary: "#111827", Accent: "#facc15",
			Background: "#0b0b0f", Surface: "#1f2937", Text: "#f9fafb", Muted: "#9ca3af",
		},
		Radii:   Radii{Small: "0px", Medium: "2px", Large: "4px"},
		Shadows: Shadows{Card: "4px 4px 0 #111827", Elevated: "8px 8px 0 #111827"},
		Spacing: Spacing{Section: "112px", Gap: "32px"},
		Typography: Typography{
			Family: "\"Archivo\", Helvetica, sans-serif", Heading: "\"Archivo Black\", Helvetica, sans-serif",
			Base: "17px", Scale: 1.414, Headline: "4.5rem",
		},
	},
	Elegant: {
		Colors: Colors{
			Primary: "#1c1917", Secondary: "#78716c", Accent: "#b45309",
			Background: "#fafaf9", Surface: "#f5f5f4", Text: "#1c1917", Muted: "#78716c",
		},
		Radii:   Radii{Small: "2px", Medium: "4px", Large: "8px"},
		Shadows: Shadows{Card: "none", Elevated: "0 20px 40px rgba(28,25,23,0.08)"},
		Spacing: Spacing{Section: "128px", Gap: "40px"},
		Typography: Typography{
			Family: "\"Source Serif 4\", Georgia, serif", Heading: "\"Playfair Display\", Georgia, serif",
			Base: "18px", Scale: 1.333, Headline: "3.75rem",
		},
	},
	Playful: {
		Colors: Colors{
			Primary: "#7c3aed", Secondary: "#db2777", Accent: "#f59e0b",
			Background: "#fffbeb", Surface: "#fef3c7", Text: "#312e81", Muted: "#6b7280",
		},
		Radii:   Radii{Small: "8px", Medium: "16px", Large: "32px"},
		Shadows: Shadows{Card: "0 6px 0 rgba(124,58,237,0.25)", Elevated: "0 12px 0 rgba(219,39,119,0.25)"},
		Spacing: Spacing{Section: "88px", Gap: "20px"},
		Typography: Typography{
			Family: "\"Nunito\", system-ui, sans-serif", Heading: "\"Fredoka\", system-ui, sans-serif",
			Base: "16px", Scale: 1.2, Headline: "3.5rem",
		},
	},
}

// Lookup returns the tokens of v. Unknown variants resolve to Default.
func Lookup(v Variant) Tokens {
	if tokens, ok := table[v]; ok {
		return tokens
	}
	return table[Default]
}

// Map flattens the tokens into hyphenated keys such as "color-primary".
func (t Tokens) Map() map[string]string {
	return map[string]string{
		"color-primary":    t.Colors.Primary,
		"color-secondary":  t.Colors.Secondary,
		"color-accent":     t.Colors.Accent,
		"color-background": t.Colors.Background,
		"color-surface":    t.Colors.Surface,
		"color-text":       t.Colors.Text,
		"color-muted":      t.Colors.Muted,
		"radius-sm":        t.Radii.Small,
		"radius-md":        t.Radii.Medium,
		"radius-lg":        t.Radii.Large,
		"shadow-card":      t.Shadows.Card,
		"shadow-elevated":  t.Shadows.Elevated,
		"space-section":    t.Spacing.Section,
		"space-gap":        t.Spacing.Gap,
		"font-family":      t.Typography.Family,
		"font-heading":     t.Typography.Heading,
		"font-base":        t.Typography.Base,
		"font-scale":       formatScale(t.Typography.Scale),
		"font-headline":    t.Typography.Headline,
	}
}
