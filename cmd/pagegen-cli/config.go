package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/goliatone/go-pagegen/pkg/layout"
	"github.com/goliatone/go-pagegen/pkg/orchestrator"
	"github.com/goliatone/go-pagegen/pkg/preset"
	"github.com/goliatone/go-pagegen/pkg/style"
)

const envPrefix = "PAGEGEN"

const (
	keyStyle      = "style"
	keyLayout     = "layout"
	keyFormat     = "format"
	keyPresetsDir = "presets_dir"
	keyVerbose    = "verbose"
)

// newConfig returns the CLI configuration with defaults and PAGEGEN_*
// environment overrides. Flags are bound onto it in the command init funcs.
func newConfig() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyStyle, string(style.Default))
	v.SetDefault(keyLayout, string(layout.Standard))
	v.SetDefault(keyFormat, "html")
	v.SetDefault(keyPresetsDir, "")
	v.SetDefault(keyVerbose, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func loadConfig(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// newOrchestrator wires the pipeline from the current configuration.
func newOrchestrator() (*orchestrator.Orchestrator, error) {
	opts := []orchestrator.Option{orchestrator.WithLogger(logger)}
	if dir := cfg.GetString(keyPresetsDir); dir != "" {
		catalog, err := preset.LoadFS(os.DirFS(dir))
		if err != nil {
			return nil, fmt.Errorf("load presets from %s: %w", dir, err)
		}
		opts = append(opts, orchestrator.WithCatalog(catalog))
	}
	return orchestrator.New(opts...), nil
}
