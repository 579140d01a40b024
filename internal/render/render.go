// Package render writes colored terminal output for ledger commands and
// reports.
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/punchcli/punch/internal/domain/ledger"
)

var (
	headingColor  = color.New(color.Bold)
	projectColor  = color.New(color.FgMagenta)
	clockColor    = color.New(color.FgGreen)
	durationColor = color.New(color.FgWhite)
	tagColor      = color.New(color.FgHiMagenta)
)

const (
	dayHeadingLayout = "Mon 02 January 2006"
	clockLayout      = "15:04:05"
)

// Renderer writes reports and command feedback to a single writer.
type Renderer struct {
	out io.Writer
}

// New creates a Renderer writing to out.
func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Started reports a freshly started slice.
func (r *Renderer) Started(slice *ledger.OpenSlice) {
	fmt.Fprintf(r.out, "started %s at %s\n",
		projectColor.Sprint(slice.ProjectTitle),
		clockColor.Sprint(slice.StartedOn.Local().Format(clockLayout)))
}

// AlreadyRunning reports the slice that blocked a start request.
func (r *Renderer) AlreadyRunning(slice *ledger.OpenSlice) {
	fmt.Fprintf(r.out, "already running: %s since %s\n",
		projectColor.Sprint(slice.ProjectTitle),
		clockColor.Sprint(slice.StartedOn.Local().Format(clockLayout)))
}

// Stopped reports a stopped slice with its duration.
func (r *Renderer) Stopped(res *ledger.StopResult) {
	fmt.Fprintf(r.out, "stopped %s after %s\n",
		projectColor.Sprint(res.ProjectTitle),
		durationColor.Sprint(FormatDuration(res.Duration)))
}

// Running reports the currently running slice for the status command.
func (r *Renderer) Running(slice *ledger.OpenSlice) {
	fmt.Fprintf(r.out, "running: %s since %s\n",
		projectColor.Sprint(slice.ProjectTitle),
		clockColor.Sprint(slice.StartedOn.Local().Format(clockLayout)))
}

// NoRunningSlice reports the idle state.
func (r *Renderer) NoRunningSlice() {
	fmt.Fprintln(r.out, "no running slice")
}

// Imported reports a completed bulk import.
func (r *Renderer) Imported(n int) {
	fmt.Fprintf(r.out, "imported %d frames\n", n)
}

// FormatDuration renders a duration as e.g. "3h 45m 0s".
func FormatDuration(d time.Duration) string {
	total := int64(d.Seconds())
	return fmt.Sprintf("%dh %dm %ds", total/3600, (total/60)%60, total%60)
}
