package commands

import (
	"github.com/spf13/cobra"
)

func newStatusCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the currently running slice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			defer app.Close()

			slice, err := app.ledger.Status(cmd.Context())
			if err != nil {
				return err
			}

			if slice == nil {
				app.out.NoRunningSlice()
				return nil
			}
			app.out.Running(slice)
			return nil
		},
	}
}
