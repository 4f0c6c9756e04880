// Package share encodes everything needed to reproduce a preview into a
// URL-safe token. A decoded link re-renders the same page: the seed pins the
// block order and the content model travels with it.
package share

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-pagegen/pkg/content"
	"github.com/goliatone/go-pagegen/pkg/layout"
	"github.com/goliatone/go-pagegen/pkg/style"
	"github.com/goliatone/go-pagegen/pkg/vertical"
)

// Version is the current payload version.
const Version = 1

// ErrInvalidLink reports a token that cannot be decoded into a Link.
var ErrInvalidLink = errors.New("share: invalid link")

// Link is the shareable state of a preview.
type Link struct {
	Vertical vertical.Vertical `json:"vertical"`
	Preset   string            `json:"preset,omitempty"`
	Seed     string            `json:"seed"`
	Layout   layout.Variant    `json:"layout,omitempty"`
	Style    style.Variant     `json:"style,omitempty"`
	Content  content.Model     `json:"content"`
}

type payload struct {
	Version int `json:"v"`
	Link
}

// Encode serialises l as unpadded base64url JSON.
func Encode(l Link) (string, error) {
	data, err := json.Marshal(payload{Version: Version, Link: l})
	if err != nil {
		return "", fmt.Errorf("share: encode link: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode parses a token produced by Encode. Padded tokens are accepted. Every
// failure wraps ErrInvalidLink.
func Decode(token string) (Link, error) {
	token = strings.TrimRight(strings.TrimSpace(token), "=")
	if token == "" {
		return Link{}, fmt.Errorf("%w: empty token", ErrInvalidLink)
	}
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Link{}, fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Link{}, fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}
	if p.Version != Version {
		return Link{}, fmt.Errorf("%w: unsupported version %d", ErrInvalidLink, p.Version)
	}

	l := p.Link
	v, ok := vertical.Parse(string(l.Vertical))
	if !ok {
		return Link{}, fmt.Errorf("%w: unknown vertical %q", ErrInvalidLink, l.Vertical)
	}
	l.Vertical = v
	if l.Layout, ok = layout.ParseVariant(string(l.Layout)); !ok {
		return Link{}, fmt.Errorf("%w: unknown layout %q", ErrInvalidLink, p.Layout)
	}
	if l.Style, ok = style.Parse(string(l.Style)); !ok {
		return Link{}, fmt.Errorf("%w: unknown style %q", ErrInvalidLink, p.Style)
	}
	return l, nil
}
