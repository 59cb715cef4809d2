// Package cli renders everything binhist shows on stderr besides log lines.
//
// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayChart], [DisplayError].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatChart].
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/binhist/internal/format"
	"github.com/agbru/binhist/internal/report"
	"github.com/agbru/binhist/internal/ui"
)

// ChartBarWidth is the width in characters of the bar for the fullest bin.
const ChartBarWidth = 40

// FormatChart renders report rows as a horizontal bar chart, one line per
// bin, with bars scaled to the fullest bin.
//
// Parameters:
//   - rows: The report rows, in bin order.
//
// Returns:
//   - string: The chart, newline terminated, or "" for no rows.
func FormatChart(rows []report.Row) string {
	theme := ui.GetCurrentChartTheme()
	labelStyle := lipgloss.NewStyle().Foreground(theme.Label)
	barStyle := lipgloss.NewStyle().Foreground(theme.Bar)
	countStyle := lipgloss.NewStyle().Foreground(theme.Count)

	labels := make([]string, len(rows))
	labelWidth := 0
	var peak uint64
	for i, r := range rows {
		labels[i] = fmt.Sprintf("[%s, %s)", report.FormatBound(r.Lo), report.FormatBound(r.Hi))
		labelWidth = max(labelWidth, len(labels[i]))
		peak = max(peak, r.Count)
	}

	var b strings.Builder
	for i, r := range rows {
		ratio := 0.0
		if peak > 0 {
			ratio = float64(r.Count) / float64(peak)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Width(labelWidth+1).Render(labels[i]),
			barStyle.Render(format.ProgressBar(ratio, ChartBarWidth)),
			countStyle.Render(fmt.Sprintf(" %s (%.1f%%)", format.FormatCount(r.Count), r.Percent)),
		))
		b.WriteByte('\n')
	}
	return b.String()
}

// DisplayChart writes the bar chart of rows to out.
func DisplayChart(out io.Writer, rows []report.Row) {
	fmt.Fprint(out, FormatChart(rows))
}

// DisplayError writes a one-line error diagnostic to out.
func DisplayError(out io.Writer, err error) {
	fmt.Fprintf(out, "%sError:%s %v\n", ui.ColorRed(), ui.ColorReset(), err)
}
