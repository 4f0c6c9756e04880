package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	cfgFile string

	cfg    = newConfig()
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pagegen",
	Short: "Sketch landing page previews from a one-line business idea",
	Long: `pagegen classifies an idea into a business vertical, builds a content model
from it (optionally enriched with PRD and UX documents), picks a preset layout
for the vertical, shuffles it with a seed and renders the result.

The same seed always produces the same block order, so a preview can be
shared and reproduced with "pagegen preview --link <token>".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cfg, cfgFile); err != nil {
			return err
		}

		config := zap.NewProductionConfig()
		if cfg.GetBool(keyVerbose) {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (e.g. pagegen.yaml)")
	rootCmd.PersistentFlags().String("presets-dir", "", "Directory of preset YAML files replacing the built-in catalog")
	bindGlobalFlags(cfg)

	rootCmd.AddCommand(previewCmd, classifyCmd, presetsCmd, shareCmd)
}

// bindGlobalFlags makes the root persistent flags visible through c; the
// flag values are only ever read back through viper.
func bindGlobalFlags(c *viper.Viper) {
	_ = c.BindPFlag(keyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	_ = c.BindPFlag(keyPresetsDir, rootCmd.PersistentFlags().Lookup("presets-dir"))
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
