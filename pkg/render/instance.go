package render

import (
	"encoding/json"

	"github.com/goliatone/go-pagegen/pkg/block"
	"github.com/goliatone/go-pagegen/pkg/style"
)

// Instance is one resolved block ready for a presentation layer. Props carry
// no placeholders.
type Instance struct {
	ID      string
	Kind    block.Kind
	Props   block.Props
	Style   style.Variant
	Classes []string
}

// MarshalJSON encodes the instance with its props as a plain object.
func (i Instance) MarshalJSON() ([]byte, error) {
	var props any
	if i.Props != nil {
		props = block.ToAny(i.Props.Value())
	}
	return json.Marshal(struct {
		ID      string        `json:"id"`
		Type    block.Kind    `json:"type"`
		Style   style.Variant `json:"style"`
		Classes []string      `json:"classes,omitempty"`
		Props   any           `json:"props"`
	}{
		ID:      i.ID,
		Type:    i.Kind,
		Style:   i.Style,
		Classes: i.Classes,
		Props:   props,
	})
}
