package cli

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/birdayz/toolbelt"
	"github.com/birdayz/toolbelt/knull"
)

func omitNullsCmd(logger logr.Logger) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "omit-nulls [file...]",
		Short: "Print JSON or YAML documents with null entries removed",
		Long: "Print JSON or YAML documents with null entries removed at every depth.\n" +
			"Reads stdin when no file is given. Every file is processed even if some fail.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}

			var errs error
			for _, path := range args {
				doc, err := readDocument(cmd.InOrStdin(), path, format)
				if err != nil {
					errs = multierr.Append(errs, err)
					continue
				}
				logger.V(1).Info("omitting nulls", "document", doc.name, "format", doc.format)
				errs = multierr.Append(errs, encodeDocument(cmd.OutOrStdout(), doc.format, knull.OmitNullables(doc.value)))
			}
			return errs
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatAuto, "input format: json, yaml or auto (by file extension)")
	return cmd
}

func omitCmd() *cobra.Command {
	var (
		format string
		keys   []string
	)

	cmd := &cobra.Command{
		Use:   "omit [file]",
		Short: "Print a JSON or YAML object without the given top-level keys",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}

			doc, err := readDocument(cmd.InOrStdin(), path, format)
			if err != nil {
				return err
			}
			obj, ok := doc.value.(map[string]any)
			if !ok {
				return fmt.Errorf("%s: top level is %T, want an object", doc.name, doc.value)
			}

			out, err := toolbelt.OmitShallowProps(obj, keys)
			if err != nil {
				return err
			}
			return encodeDocument(cmd.OutOrStdout(), doc.format, out)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatAuto, "input format: json, yaml or auto (by file extension)")
	cmd.Flags().StringArrayVarP(&keys, "key", "k", nil, "top-level key to remove (repeatable)")
	return cmd
}
