package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/shortid"
	"github.com/viant/shortid/internal/loader"
	"github.com/viant/shortid/internal/logging"
)

// addGeneratorFlags registers flags that override config file values.
func addGeneratorFlags(cmd *cobra.Command) {
	cmd.Flags().String("offset", "", "Offset reference date-time, e.g. 2022-01-01T00:00:00")
	cmd.Flags().Int64("start", 0, "Initial counter value")
	cmd.Flags().String("rate", "", "Rate class (low|high)")
	cmd.Flags().Int("radix", 0, "Numeral radix (36|62)")
	cmd.Flags().String("prefix", "", "Literal identifier prefix")
}

// resolveConfig loads --config (or defaults) and applies changed flags on top.
func resolveConfig(cmd *cobra.Command) (*shortid.Config, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	cfg := shortid.DefaultConfig()
	if location, _ := cmd.Flags().GetString("config"); location != "" {
		loaded, err := loader.Load(ctx, location)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		logger.Debug(ctx, "config loaded", "url", location)
	}

	flags := cmd.Flags()
	if flags.Changed("offset") {
		cfg.Offset, _ = flags.GetString("offset")
	}
	if flags.Changed("start") {
		cfg.Start, _ = flags.GetInt64("start")
	}
	if flags.Changed("rate") {
		cfg.Rate, _ = flags.GetString("rate")
	}
	if flags.Changed("radix") {
		cfg.Radix, _ = flags.GetInt("radix")
	}
	if flags.Changed("prefix") {
		cfg.Prefix, _ = flags.GetString("prefix")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newGenerator(cmd *cobra.Command) (*shortid.Generator, *shortid.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	gen, err := shortid.NewFromConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create generator: %w", err)
	}
	return gen, cfg, nil
}
