// Package template defines the template engine seam presentation adapters
// render through. The gotemplate subpackage provides the pongo2-backed engine.
package template
