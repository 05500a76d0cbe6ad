package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/shortid/internal/idgen"
)

func newCmdCompare() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Print a short identifier next to a UUID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, _, err := newGenerator(cmd)
			if err != nil {
				return err
			}
			short, err := gen.Next()
			if err != nil {
				return err
			}
			long := idgen.New()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "shortid\t%s\t%d\n", short, len(short))
			fmt.Fprintf(out, "uuid\t%s\t%d\n", long, len(long))
			return nil
		},
	}
	addGeneratorFlags(cmd)
	return cmd
}
