package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/viant/shortid"
	"github.com/viant/shortid/radix"
)

func newCmdEncode() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <value>",
		Short: "Encode a non-negative integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := radixFlag(cmd)
			if err != nil {
				return err
			}
			value, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %v", shortid.ErrInvalidArgument, err)
			}
			encoded, err := r.Encode(value)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), encoded)
			return nil
		},
	}
	cmd.Flags().Int("radix", radix.Base62.Size(), "Numeral radix (36|62)")
	return cmd
}

func newCmdDecode() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <numeral>",
		Short: "Decode a numeral to an integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := radixFlag(cmd)
			if err != nil {
				return err
			}
			value, err := r.Decode(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
	cmd.Flags().Int("radix", radix.Base62.Size(), "Numeral radix (36|62)")
	return cmd
}

func newCmdPad() *cobra.Command {
	return &cobra.Command{
		Use:   "pad <value> <width>",
		Short: "Left-pad a value with zero symbols",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: width %q", shortid.ErrInvalidArgument, args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), shortid.PadLeft(args[0], width))
			return nil
		},
	}
}

func radixFlag(cmd *cobra.Command) (radix.Radix, error) {
	size, _ := cmd.Flags().GetInt("radix")
	return radix.Lookup(size)
}
