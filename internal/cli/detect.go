package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/birdayz/toolbelt/kserde"
	"github.com/birdayz/toolbelt/kvalue"
)

func detectCmd() *cobra.Command {
	var envs []string

	cmd := &cobra.Command{
		Use:   "detect [value...]",
		Short: "Print values as JSON after guessing their type",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]kvalue.Value, 0, len(args)+len(envs))
			for _, a := range args {
				values = append(values, kvalue.DetectString(a))
			}
			for _, key := range envs {
				values = append(values, kvalue.Env(key))
			}

			ser := kserde.JSONSerializer[kvalue.Value]()
			for _, v := range values {
				out, err := ser(v)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", v.Kind(), out)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&envs, "env", "e", nil, "detect the value of an environment variable")
	return cmd
}
