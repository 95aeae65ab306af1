package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/birdayz/toolbelt/ktype"
	"github.com/birdayz/toolbelt/kvalue"
)

func injectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inject <template> [arg...]",
		Short: "Replace $0..$99 in a template with the given arguments",
		Long: "Replace $0..$99 in a template with the given arguments. Arguments are\n" +
			"type-detected first: numbers and booleans are inserted bare, strings quoted.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]any, 0, len(args)-1)
			for _, a := range args[1:] {
				values = append(values, kvalue.DetectString(a).Any())
			}
			fmt.Fprintln(cmd.OutOrStdout(), ktype.Inject(args[0], values...))
			return nil
		},
	}
}
