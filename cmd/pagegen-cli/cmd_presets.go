package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-pagegen/pkg/vertical"
)

var presetsCmd = &cobra.Command{
	Use:   "presets [vertical]",
	Short: "List the preset layouts of the catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPresets,
}

func runPresets(cmd *cobra.Command, args []string) error {
	orch, err := newOrchestrator()
	if err != nil {
		return err
	}
	catalog := orch.Catalog()

	verticals := catalog.Verticals()
	if len(args) == 1 {
		v, ok := vertical.Parse(args[0])
		if !ok {
			return fmt.Errorf("unknown vertical %q", args[0])
		}
		verticals = []vertical.Vertical{v}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VERTICAL\tPRESET\tBLOCKS")
	for _, v := range verticals {
		presets, _ := catalog.Lookup(v)
		for _, p := range presets {
			kinds := make([]string, 0, len(p.Blocks))
			for _, k := range p.Kinds() {
				kinds = append(kinds, string(k))
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", v, p.Name, strings.Join(kinds, ", "))
		}
	}
	return w.Flush()
}
