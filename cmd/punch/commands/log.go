package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/punchcli/punch/internal/domain/report"
)

func newLogCommand(flags *rootFlags) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log recent work grouped by day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			defer app.Close()

			var filter report.Filter
			if !all {
				from := time.Now().AddDate(0, 0, -7)
				filter.From = &from
			}

			days, err := app.reports.Log(cmd.Context(), filter)
			if err != nil {
				return err
			}

			app.out.Log(days)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "show all recorded work instead of the last 7 days")

	return cmd
}
