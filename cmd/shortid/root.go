package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/shortid/internal/logging"
	"github.com/viant/shortid/internal/version"
	"github.com/viant/shortid/tracing"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shortid",
		Short:   "Short time-ordered identifiers",
		Long:    "shortid generates compact identifiers made of elapsed seconds since an offset and a per-second counter suffix.",
		Version: version.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Generator config URL or path (.yaml|.yml|.toml|.json)")
	cmd.PersistentFlags().String("log-format", "human", "Log format (human|text|json) (env SHORTID_LOG_FORMAT)")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().String("trace", "", "Write OpenTelemetry spans to this file")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		format, _ := c.Flags().GetString("log-format")
		if env := os.Getenv("SHORTID_LOG_FORMAT"); env != "" {
			format = env
		}
		level, _ := c.Flags().GetString("log-level")
		l, err := logging.New(format, logging.ParseLevel(level), c.ErrOrStderr())
		if err != nil {
			return err
		}
		ctx := logging.WithLogger(c.Context(), l)
		c.SetContext(ctx)

		if traceFile, _ := c.Flags().GetString("trace"); traceFile != "" {
			if err := tracing.Init("shortid", version.Version, traceFile); err != nil {
				return err
			}
			l.Debug(ctx, "tracing enabled", "file", traceFile)
		}
		return nil
	}
	cmd.PersistentPostRunE = func(c *cobra.Command, _ []string) error {
		return tracing.Shutdown(c.Context())
	}

	cmd.AddCommand(newCmdGenerate())
	cmd.AddCommand(newCmdCapacity())
	cmd.AddCommand(newCmdParse())
	cmd.AddCommand(newCmdEncode())
	cmd.AddCommand(newCmdDecode())
	cmd.AddCommand(newCmdPad())
	cmd.AddCommand(newCmdCompare())
	cmd.AddCommand(newCmdVersion())
	return cmd
}
