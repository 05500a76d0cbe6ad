package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/shortid/internal/version"
)

func newCmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "shortid %s (commit: %s, built: %s)\n",
				version.Version, version.Commit, version.Date)
			return nil
		},
	}
}
