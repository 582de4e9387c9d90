package reporting

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true)
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"})
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "196"}).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "246"})
)

// Console writes the event stream and summaries to a single writer,
// normally os.Stdout.
type Console struct {
	out io.Writer
	now func() time.Time
}

// NewConsole creates a console reporter.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out, now: time.Now}
}

// Event prints one timestamped flow event, matching the classic svut
// output format.
func (c *Console) Event(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(c.out, "SVUT (@ %s) %s\n\n", c.now().Format("15:04:05"), msg)
}

// Banner prints the startup splash with the resolved version tag.
func (c *Console) Banner(tag string) {
	art := `       ______    ____  ________
      / ___/ |  / / / / /_  __/
      \__ \| | / / / / / / /
     ___/ /| |/ / /_/ / / /
    /____/ |___/\____/ /_/`

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, bannerStyle.Render(art))
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "    %s\n", tag)
	fmt.Fprintln(c.out)
}

// Summary prints the per-testbench results and the batch elapsed time.
func (c *Console) Summary(results []Result, elapsed time.Duration) {
	for _, res := range results {
		status := passStyle.Render("PASSED")
		if !res.Passed {
			status = failStyle.Render("FAILED")
		}
		fmt.Fprintf(c.out, "  %s  %s  %s\n", status, res.Test,
			mutedStyle.Render(res.Elapsed.Round(time.Millisecond).String()))
	}
	fmt.Fprintln(c.out)
	c.Event("Elapsed time: %s", elapsed)
}
