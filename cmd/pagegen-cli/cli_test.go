package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-pagegen/pkg/prompt"
	"github.com/goliatone/go-pagegen/pkg/share"
	"github.com/goliatone/go-pagegen/pkg/testsupport"
	"github.com/goliatone/go-pagegen/pkg/vertical"
)

func resetCLI(t *testing.T) {
	t.Helper()
	logger = zap.NewNop()
	cfg = newConfig()
	previewFlags = previewOptions{}
	t.Cleanup(func() {
		cfg = newConfig()
		previewFlags = previewOptions{}
		classifyFlags.json = false
		classifyFlags.hints = nil
	})
}

func testCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{}
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetContext(context.Background())
	return cmd, &stdout, &stderr
}

type previewPage struct {
	Vertical string `json:"vertical"`
	Preset   string `json:"preset"`
	Style    string `json:"style"`
	Blocks   []struct {
		ID   string `json:"id"`
		Type string `json:"type"`
	} `json:"blocks"`
}

func decodePage(t *testing.T, data []byte) previewPage {
	t.Helper()
	var page previewPage
	if err := json.Unmarshal(data, &page); err != nil {
		t.Fatalf("decode preview: %v\n%s", err, data)
	}
	return page
}

func blockIDs(page previewPage) []string {
	ids := make([]string, len(page.Blocks))
	for i, b := range page.Blocks {
		ids[i] = b.ID
	}
	return ids
}

func shareToken(t *testing.T, stderr string) string {
	t.Helper()
	for _, line := range strings.Split(stderr, "\n") {
		if token, ok := strings.CutPrefix(line, "share: "); ok {
			return token
		}
	}
	t.Fatalf("no share token in %q", stderr)
	return ""
}

func TestPreviewJSON(t *testing.T) {
	resetCLI(t)
	cfg.Set(keyFormat, "json")
	cfg.Set(keyStyle, "bold")
	previewFlags.seed = "demo"

	cmd, stdout, stderr := testCommand()
	if err := runPreview(cmd, []string{testsupport.Idea}); err != nil {
		t.Fatalf("runPreview: %v", err)
	}

	page := decodePage(t, stdout.Bytes())
	if page.Vertical != string(vertical.B2BSaaS) || page.Preset != "classic" || page.Style != "bold" {
		t.Fatalf("unexpected page header: %+v", page)
	}
	ids := blockIDs(page)
	if len(ids) == 0 || ids[0] != "hero" || ids[len(ids)-1] != "footer" {
		t.Fatalf("anchors out of place: %v", ids)
	}
	if token := shareToken(t, stderr.String()); token == "" {
		t.Fatalf("empty share token")
	}
}

func TestPreviewLinkReproducesLayout(t *testing.T) {
	resetCLI(t)
	cfg.Set(keyFormat, "json")
	previewFlags.seed = "seed-1"

	cmd, stdout, stderr := testCommand()
	if err := runPreview(cmd, []string{"A cozy neighbourhood restaurant with seasonal dishes"}); err != nil {
		t.Fatalf("runPreview: %v", err)
	}
	first := decodePage(t, stdout.Bytes())
	token := shareToken(t, stderr.String())

	previewFlags = previewOptions{link: token}
	cmd, stdout, _ = testCommand()
	if err := runPreview(cmd, nil); err != nil {
		t.Fatalf("runPreview from link: %v", err)
	}
	second := decodePage(t, stdout.Bytes())

	if diff := cmp.Diff(blockIDs(first), blockIDs(second)); diff != "" {
		t.Fatalf("block order differs (-first +second):\n%s", diff)
	}
	if first.Vertical != second.Vertical {
		t.Fatalf("vertical %s != %s", first.Vertical, second.Vertical)
	}
}

func TestPreviewWritesHTMLFile(t *testing.T) {
	resetCLI(t)
	out := filepath.Join(t.TempDir(), "preview.html")
	previewFlags.out = out
	previewFlags.seed = "demo"

	cmd, stdout, _ := testCommand()
	if err := runPreview(cmd, []string{testsupport.Idea}); err != nil {
		t.Fatalf("runPreview: %v", err)
	}
	if !strings.Contains(stdout.String(), out) {
		t.Fatalf("expected confirmation mentioning %s, got %q", out, stdout.String())
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "<!DOCTYPE html>") {
		t.Fatalf("expected an HTML document, got %.80q", data)
	}
}

func TestPreviewHydratesDocuments(t *testing.T) {
	resetCLI(t)
	cfg.Set(keyFormat, "json")
	prd := filepath.Join(t.TempDir(), "prd.md")
	if err := os.WriteFile(prd, []byte("# Crumb Bakery\n- Feature: Same-day cake orders\n"), 0o644); err != nil {
		t.Fatalf("write prd: %v", err)
	}
	previewFlags.prdFile = prd

	cmd, _, _ := testCommand()
	req, err := previewRequest(cmd, []string{"A cozy bakery"})
	if err != nil {
		t.Fatalf("previewRequest: %v", err)
	}
	if len(req.Documents) != 1 || !strings.Contains(req.Documents[0].Text, "Crumb Bakery") {
		t.Fatalf("expected the PRD document, got %+v", req.Documents)
	}
	if req.Format != "json" || req.Layout != "standard" || req.Style != "clean" {
		t.Fatalf("config defaults not applied: %+v", req)
	}
}

func TestPreviewRequestErrors(t *testing.T) {
	tests := []struct {
		name  string
		flags previewOptions
		args  []string
		want  string
	}{
		{name: "missing idea", want: "an idea is required"},
		{name: "unknown vertical", flags: previewOptions{vertical: "spaceships"}, args: []string{"x"}, want: "unknown vertical"},
		{name: "missing prd", flags: previewOptions{prdFile: "/does/not/exist.md"}, args: []string{"x"}, want: "read prd document"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetCLI(t)
			previewFlags = tt.flags
			cmd, _, _ := testCommand()
			_, err := previewRequest(cmd, tt.args)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}

	resetCLI(t)
	previewFlags.link = "!!not-a-token"
	cmd, _, _ := testCommand()
	if _, err := previewRequest(cmd, nil); !errors.Is(err, share.ErrInvalidLink) {
		t.Fatalf("expected ErrInvalidLink, got %v", err)
	}
}

type stubDriver struct {
	inputs []string
}

func (d *stubDriver) Input(context.Context, prompt.InputConfig) (string, error) {
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	return out, nil
}

func (d *stubDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return false, nil
}

func (d *stubDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	return len(cfg.Options) - 1, nil
}

func (d *stubDriver) TextArea(context.Context, prompt.TextAreaConfig) (string, error) {
	return "", nil
}

func (d *stubDriver) Info(context.Context, string) error {
	return nil
}

func TestPreviewInteractive(t *testing.T) {
	resetCLI(t)
	previewFlags.interactive = true
	original := newPromptDriver
	newPromptDriver = func(io.Writer) prompt.PromptDriver {
		return &stubDriver{inputs: []string{"A yoga studio for beginners", "beginners", ""}}
	}
	t.Cleanup(func() { newPromptDriver = original })

	cmd, _, _ := testCommand()
	req, err := previewRequest(cmd, nil)
	if err != nil {
		t.Fatalf("previewRequest: %v", err)
	}
	if req.Idea != "A yoga studio for beginners" || req.Persona != "beginners" {
		t.Fatalf("interview answers not used: %+v", req)
	}
	if req.Style != "playful" || req.Layout != "featured" {
		t.Fatalf("expected the interview's style and layout, got %s/%s", req.Style, req.Layout)
	}
}

func TestClassifyText(t *testing.T) {
	resetCLI(t)
	cmd, stdout, _ := testCommand()
	if err := runClassify(cmd, []string{testsupport.Idea}); err != nil {
		t.Fatalf("runClassify: %v", err)
	}
	out := stdout.String()
	for _, want := range []string{"vertical: b2b_saas", "source:   keywords", "scores:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestClassifyJSONWithHint(t *testing.T) {
	resetCLI(t)
	classifyFlags.json = true
	classifyFlags.hints = []string{"restaurant"}

	cmd, stdout, _ := testCommand()
	if err := runClassify(cmd, []string{testsupport.Idea}); err != nil {
		t.Fatalf("runClassify: %v", err)
	}
	var got classification
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Vertical != vertical.Restaurant || got.Source != vertical.SourceHint {
		t.Fatalf("hint ignored: %+v", got)
	}
}

func TestRankedVerticals(t *testing.T) {
	got := rankedVerticals(map[vertical.Vertical]int{
		vertical.Fitness:   1,
		vertical.B2BSaaS:   2,
		vertical.Ecommerce: 1,
	})
	want := []vertical.Vertical{vertical.B2BSaaS, vertical.Ecommerce, vertical.Fitness}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ranking mismatch (-want +got):\n%s", diff)
	}
}

func TestPresetsListsCatalog(t *testing.T) {
	resetCLI(t)
	cmd, stdout, _ := testCommand()
	if err := runPresets(cmd, []string{"restaurant"}); err != nil {
		t.Fatalf("runPresets: %v", err)
	}
	out := stdout.String()
	for _, want := range []string{"VERTICAL", "classic", "menu-first"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "b2b_saas") {
		t.Fatalf("filter ignored:\n%s", out)
	}
}

func TestPresetsFromDirectory(t *testing.T) {
	resetCLI(t)
	dir := t.TempDir()
	doc := `vertical: fitness
presets:
  - name: lean
    blocks:
      - id: hero
        type: hero
        props:
          headline: "{{brandName}}"
      - id: footer
        type: footer
        props:
          brandName: "{{brandName}}"
`
	if err := os.WriteFile(filepath.Join(dir, "fitness.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	cfg.Set(keyPresetsDir, dir)

	cmd, stdout, _ := testCommand()
	if err := runPresets(cmd, nil); err != nil {
		t.Fatalf("runPresets: %v", err)
	}
	if !strings.Contains(stdout.String(), "lean") || strings.Contains(stdout.String(), "classic") {
		t.Fatalf("expected only the directory catalog:\n%s", stdout.String())
	}

	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("vertical: nowhere\npresets: []\n"), 0o644); err != nil {
		t.Fatalf("write broken preset: %v", err)
	}
	cmd, _, _ = testCommand()
	if err := runPresets(cmd, nil); err == nil || !strings.Contains(err.Error(), "load presets") {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestShareDecode(t *testing.T) {
	resetCLI(t)
	token, err := share.Encode(share.Link{
		Vertical: vertical.Fitness,
		Seed:     "abc",
		Content:  testsupport.Model(),
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	cmd, stdout, _ := testCommand()
	if err := runShareDecode(cmd, []string{token}); err != nil {
		t.Fatalf("runShareDecode: %v", err)
	}
	var got share.Link
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got.Vertical != vertical.Fitness || got.Seed != "abc" || got.Content.BrandName != "Slotly" {
		t.Fatalf("unexpected link: %+v", got)
	}

	cmd, _, _ = testCommand()
	if err := runShareDecode(cmd, []string{"%%%"}); !errors.Is(err, share.ErrInvalidLink) {
		t.Fatalf("expected ErrInvalidLink, got %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	resetCLI(t)
	path := filepath.Join(t.TempDir(), "pagegen.yaml")
	if err := os.WriteFile(path, []byte("style: elegant\nformat: json\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := loadConfig(cfg, path); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.GetString(keyStyle) != "elegant" || cfg.GetString(keyFormat) != "json" || cfg.GetString(keyLayout) != "standard" {
		t.Fatalf("unexpected config: style=%s format=%s layout=%s",
			cfg.GetString(keyStyle), cfg.GetString(keyFormat), cfg.GetString(keyLayout))
	}
	if err := loadConfig(newConfig(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("PAGEGEN_LAYOUT", "minimal")
	resetCLI(t)
	if got := cfg.GetString(keyLayout); got != "minimal" {
		t.Fatalf("layout = %q, want minimal", got)
	}
}

func TestVerboseFlagReadThroughConfig(t *testing.T) {
	resetCLI(t)
	bindGlobalFlags(cfg)
	flags := rootCmd.PersistentFlags()
	t.Cleanup(func() {
		_ = flags.Set("verbose", "false")
		flags.Lookup("verbose").Changed = false
	})

	if cfg.GetBool(keyVerbose) {
		t.Fatal("verbose should default to false")
	}
	if err := flags.Set("verbose", "true"); err != nil {
		t.Fatalf("set verbose: %v", err)
	}
	if !cfg.GetBool(keyVerbose) {
		t.Fatal("verbose flag not visible through config")
	}
}
