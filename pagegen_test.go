package pagegen

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pagegen/pkg/testsupport"
)

func TestGenerateHTML(t *testing.T) {
	out, err := GenerateHTML(context.Background(), testsupport.Idea, "demo")
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}
	page := string(out)
	if !strings.HasPrefix(page, "<!DOCTYPE html>") {
		t.Fatalf("expected an HTML document, got %.80q", page)
	}
	if !strings.Contains(page, "Scheduling") {
		t.Fatalf("expected the brand in the page")
	}
}

func TestReproduceMatchesOriginal(t *testing.T) {
	ctx := context.Background()
	first, err := Generate(ctx, Request{Idea: testsupport.Idea, Seed: "seed-1", Style: "elegant"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	again, err := Reproduce(ctx, first.Link, "json")
	if err != nil {
		t.Fatalf("Reproduce: %v", err)
	}
	if diff := cmp.Diff(first.Blocks, again.Blocks); diff != "" {
		t.Fatalf("blocks differ (-first +again):\n%s", diff)
	}
	if again.Style != first.Style || again.ContentType != "application/json" {
		t.Fatalf("unexpected reproduction: style=%s type=%s", again.Style, again.ContentType)
	}
}

func TestEmbeddedBundles(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), "templates/page.tmpl"); err != nil {
		t.Fatalf("page template: %v", err)
	}
	if _, err := fs.ReadFile(EmbeddedPresets(), "b2b_saas.yaml"); err != nil {
		t.Fatalf("b2b preset: %v", err)
	}
}
