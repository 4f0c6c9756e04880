package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-pagegen/pkg/share"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Inspect share link tokens",
}

var shareDecodeCmd = &cobra.Command{
	Use:   "decode [token]",
	Short: "Print the preview state a share token carries",
	Args:  cobra.ExactArgs(1),
	RunE:  runShareDecode,
}

func init() {
	shareCmd.AddCommand(shareDecodeCmd)
}

func runShareDecode(cmd *cobra.Command, args []string) error {
	link, err := share.Decode(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(link)
}
