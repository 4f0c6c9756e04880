package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl templates/blocks/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle so callers can copy or
// extend it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
