package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCmdCapacity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Print the maximum identifiers per second before suffixes repeat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, _, err := newGenerator(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), gen.MaxIDsPerSecond())
			return nil
		},
	}
	addGeneratorFlags(cmd)
	return cmd
}
