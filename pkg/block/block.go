package block

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Block is one section of a page: an identifier plus the typed property record
// of its kind.
type Block struct {
	ID    string
	Props Props
}

// New wraps props in a Block with the given id.
func New(id string, props Props) Block {
	return Block{ID: id, Props: props}
}

// Kind returns the block's type tag. A block without props reports "".
func (b Block) Kind() Kind {
	if b.Props == nil {
		return ""
	}
	return b.Props.Kind()
}

// Clone returns a structural copy that shares nothing with b.
func (b Block) Clone() Block {
	if b.Props == nil {
		return Block{ID: b.ID}
	}
	return Block{ID: b.ID, Props: Decode(b.Kind(), b.Props.Value())}
}

// CloneAll copies a block list.
func CloneAll(blocks []Block) []Block {
	if blocks == nil {
		return nil
	}
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = b.Clone()
	}
	return out
}

// wireBlock is the serialised form shared by JSON and YAML.
type wireBlock struct {
	ID    string         `json:"id,omitempty" yaml:"id,omitempty"`
	Type  string         `json:"type" yaml:"type"`
	Props map[string]any `json:"props,omitempty" yaml:"props,omitempty"`
}

// MarshalJSON encodes the block as {"id", "type", "props"}.
func (b Block) MarshalJSON() ([]byte, error) {
	wire := wireBlock{ID: b.ID, Type: string(b.Kind())}
	if b.Props != nil {
		if props, ok := ToAny(b.Props.Value()).(map[string]any); ok {
			wire.Props = props
		}
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes a block. Unrecognised type tags are kept as Unknown.
func (b *Block) UnmarshalJSON(data []byte) error {
	var wire wireBlock
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("block: decode json: %w", err)
	}
	decoded, err := fromWire(wire)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}

// UnmarshalYAML decodes a block from a preset document.
func (b *Block) UnmarshalYAML(node *yaml.Node) error {
	var wire wireBlock
	if err := node.Decode(&wire); err != nil {
		return fmt.Errorf("block: decode yaml: %w", err)
	}
	decoded, err := fromWire(wire)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}

func fromWire(wire wireBlock) (Block, error) {
	kind := Kind(strings.TrimSpace(wire.Type))
	if kind == "" {
		return Block{}, fmt.Errorf("block: %q has no type", wire.ID)
	}
	props := Obj{}
	if wire.Props != nil {
		converted, err := FromAny(wire.Props)
		if err != nil {
			return Block{}, fmt.Errorf("block: %s props: %w", kind, err)
		}
		props = converted.(Obj)
	}
	return Block{
		ID:    strings.TrimSpace(wire.ID),
		Props: Decode(kind, props),
	}, nil
}
