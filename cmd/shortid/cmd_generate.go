package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/shortid/internal/clock"
	"github.com/viant/shortid/internal/logging"
	"github.com/viant/shortid/tracing"
)

func newCmdGenerate() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate identifiers",
		Args:    cobra.NoArgs,
		RunE:    runGenerate,
	}
	addGeneratorFlags(cmd)
	cmd.Flags().IntP("count", "n", 1, "Number of identifiers")
	cmd.Flags().String("at", "", "Timestamp to generate for (default now)")
	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) (err error) {
	gen, cfg, err := newGenerator(cmd)
	if err != nil {
		return err
	}
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("count must be >= 1, got %d", count)
	}
	at := clock.Now()
	if value, _ := cmd.Flags().GetString("at"); value != "" {
		if at, err = clock.Parse(value); err != nil {
			return err
		}
	}

	ctx, span := tracing.StartSpan(cmd.Context(), "shortid.generate")
	defer func() { tracing.EndSpan(span, err) }()
	span.WithAttributes(map[string]any{
		"count":  count,
		"rate":   gen.Rate(),
		"radix":  gen.Radix(),
		"prefix": cfg.Prefix,
	})

	logger := logging.FromContext(ctx)
	if int64(count) > gen.MaxIDsPerSecond() {
		logger.Warn(ctx, "count exceeds per-second capacity, suffixes will repeat",
			"count", count, "capacity", gen.MaxIDsPerSecond())
	}
	out := cmd.OutOrStdout()
	for i := 0; i < count; i++ {
		id, err := gen.GenerateWithPrefix(cfg.Prefix, at)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, id)
	}
	logger.Debug(ctx, "generated", "count", count, "rate", gen.Rate().String(), "radix", gen.Radix().String())
	return nil
}
