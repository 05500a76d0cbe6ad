package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCmdParse() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <id>",
		Short: "Decode the time and sequence of an identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, cfg, err := newGenerator(cmd)
			if err != nil {
				return err
			}
			parts, err := gen.Parse(args[0], cfg.Prefix)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "prefix\t%s\n", parts.Prefix)
			fmt.Fprintf(out, "time\t%s\n", parts.Time.Format("2006-01-02T15:04:05"))
			fmt.Fprintf(out, "sequence\t%d\n", parts.Sequence)
			return nil
		},
	}
	addGeneratorFlags(cmd)
	return cmd
}
