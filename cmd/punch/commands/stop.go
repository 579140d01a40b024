package commands

import (
	"github.com/spf13/cobra"
)

func newStopCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the currently running slice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			defer app.Close()

			res, err := app.ledger.Stop(cmd.Context())
			if err != nil {
				return err
			}

			if !res.Stopped {
				app.out.NoRunningSlice()
				return nil
			}
			app.out.Stopped(res)
			return nil
		},
	}
}
