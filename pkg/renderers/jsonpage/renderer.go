// Package jsonpage renders a page preview as indented JSON, the form the
// block tree takes when handed to a client-side presentation layer.
package jsonpage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-pagegen/pkg/render"
	"github.com/goliatone/go-pagegen/pkg/style"
	"github.com/goliatone/go-pagegen/pkg/vertical"
)

// Renderer implements render.PageRenderer.
type Renderer struct {
	indent string
}

var _ render.PageRenderer = (*Renderer)(nil)

// New returns a renderer indenting with two spaces, or compact output when
// compact is true.
func New(compact bool) *Renderer {
	if compact {
		return &Renderer{}
	}
	return &Renderer{indent: "  "}
}

func (r *Renderer) Name() string {
	return "json"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

type document struct {
	Title    string            `json:"title,omitempty"`
	Vertical vertical.Vertical `json:"vertical"`
	Preset   string            `json:"preset"`
	Style    style.Variant     `json:"style"`
	Tokens   style.Tokens      `json:"tokens"`
	Blocks   []render.Instance `json:"blocks"`
}

func (r *Renderer) Render(ctx context.Context, page render.Page) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc := document{
		Title:    page.Title,
		Vertical: page.Vertical,
		Preset:   page.Preset,
		Style:    page.Style,
		Tokens:   style.Lookup(page.Style),
		Blocks:   page.Instances,
	}
	if doc.Blocks == nil {
		doc.Blocks = []render.Instance{}
	}

	var (
		payload []byte
		err     error
	)
	if r.indent == "" {
		payload, err = json.Marshal(doc)
	} else {
		payload, err = json.MarshalIndent(doc, "", r.indent)
	}
	if err != nil {
		return nil, fmt.Errorf("json renderer: encode page: %w", err)
	}
	return payload, nil
}
