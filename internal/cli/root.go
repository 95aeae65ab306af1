package cli

import (
	"os"

	"github.com/go-logr/logr"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/birdayz/toolbelt"
	"github.com/birdayz/toolbelt/pkg/log"
)

func Execute() {
	zl := log.New()
	logger := log.Logr(zl, "toolbelt")

	code := 0
	toolbelt.TryCatch(func() error {
		return newRootCmd(logger).Execute()
	}, func(error) {
		code = 1
	}, toolbelt.WithLogr(logger))
	os.Exit(code)
}

func newRootCmd(logger logr.Logger) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:           "toolbelt",
		Short:         "Byte sizes, loose values and document clean-up from the shell",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(bytesCmd(logger))
	cmd.AddCommand(detectCmd())
	cmd.AddCommand(omitNullsCmd(logger))
	cmd.AddCommand(omitCmd())
	cmd.AddCommand(injectCmd())
	cmd.AddCommand(sleepCmd(logger))
	return cmd
}
