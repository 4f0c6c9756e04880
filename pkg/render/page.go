package render

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-pagegen/pkg/style"
	"github.com/goliatone/go-pagegen/pkg/vertical"
)

// Page is a rendered preview handed to a presentation adapter.
type Page struct {
	Title     string
	Vertical  vertical.Vertical
	Preset    string
	Style     style.Variant
	Instances []Instance
	// Theme carries the go-theme configuration for Style. Adapters may ignore
	// it and read style.Lookup(Style) directly.
	Theme *theme.RendererConfig
}

// PageRenderer converts a Page into bytes (HTML, JSON, ...).
type PageRenderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, page Page) ([]byte, error)
}
