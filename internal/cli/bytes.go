package cli

import (
	"fmt"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/birdayz/toolbelt/kbytes"
)

func bytesCmd(logger logr.Logger) *cobra.Command {
	c := &cobra.Command{
		Use:   "bytes",
		Short: "Convert between byte counts and size strings",
	}

	c.AddCommand(bytesParseCmd(logger))
	c.AddCommand(bytesFormatCmd())
	return c
}

func bytesParseCmd(logger logr.Logger) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "parse <size>...",
		Short: "Print the byte count of each size string (0 when invalid)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs error
			for _, a := range args {
				n, err := kbytes.ParseStrict(a)
				if err != nil {
					logger.V(1).Info("invalid size", "input", a, "err", err)
					if strict {
						errs = multierr.Append(errs, err)
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return errs
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any input is not a valid size")
	return cmd
}

func bytesFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <bytes>...",
		Short: "Print each byte count as a size string",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs error
			for _, a := range args {
				if n, err := strconv.ParseInt(a, 10, 64); err == nil {
					fmt.Fprintln(cmd.OutOrStdout(), kbytes.Format(n))
					continue
				}
				f, err := strconv.ParseFloat(a, 64)
				if err != nil {
					errs = multierr.Append(errs, fmt.Errorf("not a byte count: %q", a))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), kbytes.Format(f))
			}
			return errs
		},
	}
}
