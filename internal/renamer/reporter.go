package renamer

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter prints per-file progress lines and the run summary.
type Reporter struct {
	out  io.Writer
	dry  *color.Color
	ok   *color.Color
	warn *color.Color
	head *color.Color
}

// NewReporter writes to out; tags are colored only when useColor is set.
func NewReporter(out io.Writer, useColor bool) *Reporter {
	r := &Reporter{
		out:  out,
		dry:  color.New(color.FgYellow, color.Bold),
		ok:   color.New(color.FgGreen, color.Bold),
		warn: color.New(color.FgRed, color.Bold),
		head: color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{r.dry, r.ok, r.warn, r.head} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Planned reports a dry-run rename.
func (r *Reporter) Planned(from, to string) {
	fmt.Fprintf(r.out, "%s %s  ->  %s\n", r.dry.Sprint("[DRY]"), from, to)
}

// Renamed reports an applied rename.
func (r *Reporter) Renamed(from, to string) {
	fmt.Fprintf(r.out, "%s %s  ->  %s\n", r.ok.Sprint("[OK ]"), from, to)
}

// MissingRoot reports a root path that does not exist.
func (r *Reporter) MissingRoot(root string) {
	fmt.Fprintf(r.out, "%s path does not exist: %s\n", r.warn.Sprint("[WARN]"), root)
}

// Summary prints the counters and the active mode.
func (r *Reporter) Summary(stats Stats, dryRun bool) {
	mode := "APPLY (files renamed)"
	if dryRun {
		mode = "DRY-RUN (preview only)"
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.head.Sprint("--- summary ---"))
	fmt.Fprintf(r.out, "files seen:   %d\n", stats.Seen)
	fmt.Fprintf(r.out, "renamed:      %d\n", stats.Renamed)
	fmt.Fprintf(r.out, "skipped:      %d\n", stats.Skipped)
	fmt.Fprintf(r.out, "mode:         %s\n", mode)
}
