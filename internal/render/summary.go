package render

import (
	"fmt"

	"github.com/punchcli/punch/internal/domain/report"
)

// Summary writes the per-period summary report with project totals and the
// per-tag breakdown indented underneath each project.
func (r *Renderer) Summary(s *report.Summary) {
	for i, period := range s.Periods {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		fmt.Fprintln(r.out, headingColor.Sprint(period.Label))

		for _, project := range period.Projects {
			fmt.Fprintf(r.out, "    %s %s\n",
				projectColor.Sprintf("%-20s", project.Title),
				durationColor.Sprintf("%14s", FormatDuration(project.Total)))
			for _, tag := range project.Tags {
				fmt.Fprintf(r.out, "        %s %s\n",
					tagColor.Sprintf("%-16s", tag.Title),
					durationColor.Sprintf("%14s", FormatDuration(tag.Total)))
			}
		}
	}
}
