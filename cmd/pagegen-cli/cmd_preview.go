package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-pagegen/pkg/content"
	"github.com/goliatone/go-pagegen/pkg/layout"
	"github.com/goliatone/go-pagegen/pkg/orchestrator"
	"github.com/goliatone/go-pagegen/pkg/prompt"
	"github.com/goliatone/go-pagegen/pkg/share"
	"github.com/goliatone/go-pagegen/pkg/style"
	"github.com/goliatone/go-pagegen/pkg/vertical"
)

type previewOptions struct {
	idea        string
	persona     string
	job         string
	hints       []string
	vertical    string
	prdFile     string
	uxFile      string
	seed        string
	preset      string
	title       string
	out         string
	link        string
	interactive bool
}

var previewFlags previewOptions

// newPromptDriver is swapped out in tests.
var newPromptDriver = func(w io.Writer) prompt.PromptDriver {
	return prompt.NewSurveyDriver(w)
}

var previewCmd = &cobra.Command{
	Use:   "preview [idea]",
	Short: "Render a page preview for an idea",
	Long: `Classifies the idea, builds its content model, picks and shuffles a preset
and renders it as HTML or JSON.

Examples:
  pagegen preview "A scheduling app for busy salon owners"
  pagegen preview --prd prd.md --style bold --seed demo "A cozy bakery"
  pagegen preview --link <token> --format json`,
	RunE: runPreview,
}

func init() {
	f := previewCmd.Flags()
	f.StringVar(&previewFlags.persona, "persona", "", "Who the product is for")
	f.StringVar(&previewFlags.job, "job", "", "The job the product does for them")
	f.StringSliceVar(&previewFlags.hints, "hint", nil, "Upstream vertical hints, most likely first")
	f.StringVar(&previewFlags.vertical, "vertical", "", "Force a vertical instead of classifying")
	f.StringVar(&previewFlags.prdFile, "prd", "", "PRD document to hydrate the content from")
	f.StringVar(&previewFlags.uxFile, "ux", "", "UX document to hydrate the content from")
	f.StringVar(&previewFlags.seed, "seed", "", "Layout seed (generated when empty)")
	f.StringVar(&previewFlags.preset, "preset", "", "Preset name (vertical default when empty)")
	f.StringVar(&previewFlags.title, "title", "", "Page title (brand name when empty)")
	f.StringVarP(&previewFlags.out, "out", "o", "", "Output file (stdout if empty)")
	f.StringVar(&previewFlags.link, "link", "", "Re-render a share link token")
	f.BoolVarP(&previewFlags.interactive, "interactive", "i", false, "Ask for the idea and settings interactively")
	f.String("style", string(style.Default), "Style variant: clean, bold, elegant, playful")
	f.String("layout", string(layout.Standard), "Layout variant: standard, minimal, featured")
	f.String("format", "html", "Output format: html, json")
	_ = cfg.BindPFlag(keyStyle, f.Lookup("style"))
	_ = cfg.BindPFlag(keyLayout, f.Lookup("layout"))
	_ = cfg.BindPFlag(keyFormat, f.Lookup("format"))
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	req, err := previewRequest(cmd, args)
	if err != nil {
		return err
	}

	orch, err := newOrchestrator()
	if err != nil {
		return err
	}
	res, err := orch.Generate(ctx, req)
	if err != nil {
		return err
	}

	logger.Info("preview generated",
		zap.String("vertical", string(res.Vertical)),
		zap.String("source", string(res.Classification.Source)),
		zap.String("preset", res.Preset),
		zap.String("seed", res.Seed),
		zap.Int("blocks", len(res.Blocks)),
	)

	if previewFlags.out != "" {
		if err := os.WriteFile(previewFlags.out, res.Output, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Preview written to %s\n", previewFlags.out)
	} else if _, err := cmd.OutOrStdout().Write(res.Output); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "share: %s\n", res.Link)
	return nil
}

func previewRequest(cmd *cobra.Command, args []string) (orchestrator.Request, error) {
	var req orchestrator.Request

	switch {
	case previewFlags.link != "":
		link, err := share.Decode(previewFlags.link)
		if err != nil {
			return orchestrator.Request{}, err
		}
		req = orchestrator.FromLink(link)
	case previewFlags.interactive:
		ans, err := prompt.Interview(commandContext(cmd), newPromptDriver(cmd.ErrOrStderr()))
		if err != nil {
			return orchestrator.Request{}, err
		}
		req = ans.Request()
	default:
		idea := strings.TrimSpace(strings.Join(args, " "))
		if idea == "" {
			return orchestrator.Request{}, fmt.Errorf("an idea is required (pass it as an argument or use --interactive)")
		}
		req = orchestrator.Request{
			Idea:    idea,
			Persona: previewFlags.persona,
			Job:     previewFlags.job,
		}
	}

	if len(previewFlags.hints) > 0 {
		req.Hint = &vertical.Hint{Verticals: previewFlags.hints}
	}
	if previewFlags.vertical != "" {
		v, ok := vertical.Parse(previewFlags.vertical)
		if !ok {
			return orchestrator.Request{}, fmt.Errorf("unknown vertical %q", previewFlags.vertical)
		}
		req.Vertical = v
	}

	for _, doc := range []struct {
		path string
		kind content.DocumentKind
	}{
		{previewFlags.prdFile, content.KindPRD},
		{previewFlags.uxFile, content.KindUX},
	} {
		if doc.path == "" {
			continue
		}
		data, err := os.ReadFile(doc.path)
		if err != nil {
			return orchestrator.Request{}, fmt.Errorf("read %s document: %w", doc.kind, err)
		}
		req.Documents = append(req.Documents, orchestrator.Document{Kind: doc.kind, Text: string(data)})
	}

	if previewFlags.seed != "" {
		req.Seed = previewFlags.seed
	}
	if previewFlags.preset != "" {
		req.Preset = previewFlags.preset
	}
	// Interactive answers and share links carry their own variants; an
	// explicit flag still wins.
	if req.Style == "" || cmd.Flags().Changed("style") {
		req.Style = style.Variant(cfg.GetString(keyStyle))
	}
	if req.Layout == "" || cmd.Flags().Changed("layout") {
		req.Layout = layout.Variant(cfg.GetString(keyLayout))
	}
	req.Format = cfg.GetString(keyFormat)
	req.Title = previewFlags.title
	return req, nil
}
