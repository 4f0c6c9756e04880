package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-pagegen/pkg/vertical"
)

var classifyFlags struct {
	persona string
	job     string
	hints   []string
	json    bool
}

var classifyCmd = &cobra.Command{
	Use:   "classify [idea]",
	Short: "Show which vertical an idea maps to and why",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClassify,
}

func init() {
	f := classifyCmd.Flags()
	f.StringVar(&classifyFlags.persona, "persona", "", "Who the product is for")
	f.StringVar(&classifyFlags.job, "job", "", "The job the product does for them")
	f.StringSliceVar(&classifyFlags.hints, "hint", nil, "Upstream vertical hints, most likely first")
	f.BoolVar(&classifyFlags.json, "json", false, "Print the result as JSON")
}

type classification struct {
	Vertical vertical.Vertical         `json:"vertical"`
	Label    string                    `json:"label"`
	Source   vertical.Source           `json:"source"`
	Scores   map[vertical.Vertical]int `json:"scores,omitempty"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	in := vertical.Input{
		Idea:    strings.Join(args, " "),
		Persona: classifyFlags.persona,
		Job:     classifyFlags.job,
	}
	if len(classifyFlags.hints) > 0 {
		in.Hint = &vertical.Hint{Verticals: classifyFlags.hints}
	}
	res := vertical.Explain(in)

	out := cmd.OutOrStdout()
	if classifyFlags.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(classification{
			Vertical: res.Vertical,
			Label:    res.Vertical.Label(),
			Source:   res.Source,
			Scores:   nonZero(res.Scores),
		})
	}

	fmt.Fprintf(out, "vertical: %s (%s)\n", res.Vertical, res.Vertical.Label())
	fmt.Fprintf(out, "source:   %s\n", res.Source)
	scores := nonZero(res.Scores)
	if len(scores) == 0 {
		return nil
	}
	fmt.Fprintln(out, "scores:")
	for _, v := range rankedVerticals(scores) {
		fmt.Fprintf(out, "  %-16s %d\n", v, scores[v])
	}
	return nil
}

func nonZero(scores map[vertical.Vertical]int) map[vertical.Vertical]int {
	out := make(map[vertical.Vertical]int)
	for v, score := range scores {
		if score > 0 {
			out[v] = score
		}
	}
	return out
}

// rankedVerticals orders by score, then by the classifier's tie-break order.
func rankedVerticals(scores map[vertical.Vertical]int) []vertical.Vertical {
	order := make(map[vertical.Vertical]int)
	for i, v := range vertical.All() {
		order[v] = i
	}
	out := make([]vertical.Vertical, 0, len(scores))
	for v := range scores {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if scores[out[i]] != scores[out[j]] {
			return scores[out[i]] > scores[out[j]]
		}
		return order[out[i]] < order[out[j]]
	})
	return out
}
