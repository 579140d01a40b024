package commands

import (
	"github.com/spf13/cobra"
)

func newStartCommand(flags *rootFlags) *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "start <project>",
		Short: "Start logging time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			defer app.Close()

			res, err := app.ledger.Start(cmd.Context(), args[0], tags)
			if err != nil {
				return err
			}

			if res.AlreadyRunning {
				app.out.AlreadyRunning(&res.Slice)
				return nil
			}
			app.out.Started(&res.Slice)
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "tags to attach to the slice")

	return cmd
}
