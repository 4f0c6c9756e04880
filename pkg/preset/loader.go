package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-pagegen/pkg/block"
	"github.com/goliatone/go-pagegen/pkg/vertical"
)

// LoadFS walks fsys and parses every JSON/YAML preset document. Files are
// visited in lexical order and presets keep their in-file order, so the first
// preset listed for a vertical is its default. A nil fsys yields an empty
// catalog.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	catalog := &Catalog{presets: make(map[vertical.Vertical][]Preset)}
	if fsys == nil {
		return catalog, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isPresetFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("preset: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		v, ok := vertical.Parse(doc.Vertical)
		if !ok {
			return fmt.Errorf("preset: file %s names unknown vertical %q", path, doc.Vertical)
		}

		for idx, raw := range doc.Presets {
			p, err := normalisePreset(raw, v, path, idx)
			if err != nil {
				return err
			}
			for _, existing := range catalog.presets[v] {
				if existing.Name == p.Name {
					return fmt.Errorf("preset: duplicate preset %q for %s (file %s)", p.Name, v, path)
				}
			}
			catalog.presets[v] = append(catalog.presets[v], p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return catalog, nil
}

type documentFile struct {
	Vertical string       `json:"vertical" yaml:"vertical"`
	Presets  []presetFile `json:"presets" yaml:"presets"`
}

type presetFile struct {
	Name   string        `json:"name" yaml:"name"`
	Blocks []block.Block `json:"blocks" yaml:"blocks"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("preset: file %s is empty", source)
	}

	var err error
	if strings.EqualFold(filepath.Ext(source), ".json") {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return documentFile{}, fmt.Errorf("preset: parse %s: %w", source, err)
	}
	return doc, nil
}

func normalisePreset(raw presetFile, v vertical.Vertical, source string, idx int) (Preset, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return Preset{}, fmt.Errorf("preset: file %s preset %d has no name", source, idx)
	}
	if err := checkAnchors(raw.Blocks); err != nil {
		return Preset{}, fmt.Errorf("preset: %s/%s (file %s): %w", v, name, source, err)
	}

	blocks := make([]block.Block, len(raw.Blocks))
	seen := make(map[string]struct{}, len(raw.Blocks))
	for i, b := range raw.Blocks {
		if !b.Kind().Known() {
			return Preset{}, fmt.Errorf("preset: %s/%s (file %s): block %d has unknown type %q", v, name, source, i, b.Kind())
		}
		if b.ID == "" {
			b.ID = fmt.Sprintf("%s-%d", b.Kind(), i)
		}
		if _, dup := seen[b.ID]; dup {
			return Preset{}, fmt.Errorf("preset: %s/%s (file %s): duplicate block id %q", v, name, source, b.ID)
		}
		seen[b.ID] = struct{}{}
		blocks[i] = b
	}

	return Preset{Name: name, Vertical: v, Blocks: blocks}, nil
}

// checkAnchors enforces one hero first and one footer last.
func checkAnchors(blocks []block.Block) error {
	if len(blocks) < 2 {
		return errors.New("needs at least a hero and a footer block")
	}
	if blocks[0].Kind() != block.KindHero {
		return fmt.Errorf("first block must be %s, got %s", block.KindHero, blocks[0].Kind())
	}
	if last := blocks[len(blocks)-1]; last.Kind() != block.KindFooter {
		return fmt.Errorf("last block must be %s, got %s", block.KindFooter, last.Kind())
	}
	for i, b := range blocks[1 : len(blocks)-1] {
		if b.Kind().Anchor() {
			return fmt.Errorf("block %d: %s may only appear at its anchor position", i+1, b.Kind())
		}
	}
	return nil
}

func isPresetFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
