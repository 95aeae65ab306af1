package cli

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/birdayz/toolbelt"
)

func sleepCmd(logger logr.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "sleep <duration>",
		Short: "Wait for a duration such as 500ms or 2s",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			d, err := time.ParseDuration(args[0])
			if err != nil {
				return fmt.Errorf("invalid duration: %w", err)
			}
			logger.V(1).Info("sleeping", "duration", d)
			<-toolbelt.Delay(d)
			return nil
		},
	}
}
