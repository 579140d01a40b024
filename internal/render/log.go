package render

import (
	"fmt"
	"strings"

	"github.com/punchcli/punch/internal/domain/report"
)

// Log writes the day-grouped log report:
//
//	Sat 12 September 2020
//	    08:20:00 — 12:05:00     3h 45m 0s  website  (backend, admin)
func (r *Renderer) Log(days []report.Day) {
	for i, day := range days {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		fmt.Fprintln(r.out, headingColor.Sprint(day.Date.Format(dayHeadingLayout)))

		for _, entry := range day.Entries {
			line := fmt.Sprintf("    %s — %s  %s  %s",
				clockColor.Sprint(entry.StartedOn.Format(clockLayout)),
				clockColor.Sprint(entry.StoppedOn.Format(clockLayout)),
				durationColor.Sprintf("%12s", FormatDuration(entry.Duration)),
				projectColor.Sprint(entry.ProjectTitle))
			if len(entry.Tags) > 0 {
				line += "  " + tagColor.Sprintf("(%s)", strings.Join(entry.Tags, ", "))
			}
			fmt.Fprintln(r.out, line)
		}
	}
}
