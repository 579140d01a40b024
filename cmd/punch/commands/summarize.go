package commands

import (
	"github.com/spf13/cobra"

	"github.com/punchcli/punch/internal/domain/report"
)

func newSummarizeCommand(flags *rootFlags) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize work by project and time period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			defer app.Close()

			mode := report.GroupByDay
			if all {
				mode = report.GroupAll
			}

			summary, err := app.reports.Summarize(cmd.Context(), mode)
			if err != nil {
				return err
			}

			app.out.Summary(summary)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "use a single all-time bucket instead of per-day buckets")

	return cmd
}
