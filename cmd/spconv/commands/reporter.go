// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/ik5/spconv/batch"
)

var (
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff9f"))
	warningStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e3b341"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f85149"))
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
)

// consoleReporter prints one line per batch event.
type consoleReporter struct {
	w io.Writer
}

func newConsoleReporter(w io.Writer) *consoleReporter {
	return &consoleReporter{w: w}
}

func (r *consoleReporter) Progress(index, total int, task batch.Task) {
	fmt.Fprintf(r.w, "%s %s\n",
		progressStyle.Render(fmt.Sprintf("Converting.. [%d/%d]..", index, total)),
		task.Input,
	)
}

func (r *consoleReporter) Copied(task batch.Task) {
	fmt.Fprintf(r.w, "%s %s %s\n",
		warningStyle.Render("WARNING:"),
		task.Input,
		pathStyle.Render("is already 16-bit PCM, copied instead of resampled"),
	)
}

func (r *consoleReporter) Failed(task batch.Task, err error) {
	fmt.Fprintf(r.w, "%s %s: %v\n", errorStyle.Render("ERROR:"), task.Input, err)
}
