package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/theirongolddev/pointplan/internal/cli"
)

const barWidth = 30

// RenderText renders the report for the terminal, wrapping justifications
// to width columns.
func RenderText(r Report, width int) string {
	if width < 40 {
		width = 40
	}
	var b strings.Builder

	title := "Final Design Project"
	if r.StudentName != "" {
		title += " · " + r.StudentName
	}
	b.WriteString(cli.RenderTitle(title))
	b.WriteString("\n")
	if !r.Date.IsZero() {
		fmt.Fprintf(&b, "  %s\n", cli.Muted(r.Date.Format("January 2, 2006")))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "  %-16s %s\n", "Initial budget", cli.FormatPoints(r.Initial))
	fmt.Fprintf(&b, "  %-16s %s\n", "Total used", cli.FormatPoints(r.Spent))
	fmt.Fprintf(&b, "  %-16s %s\n", "Remaining", cli.Balance(r.Remaining))
	fmt.Fprintf(&b, "  %-16s %d\n", "Total copies", r.Copies)

	if len(r.Groups) == 0 {
		b.WriteString("\n  ")
		b.WriteString(cli.Muted("No components selected."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("\n  ")
	b.WriteString(cli.Header("Distribution by Category"))
	b.WriteString("\n")
	nameWidth := 0
	for _, g := range r.Groups {
		nameWidth = max(nameWidth, lipgloss.Width(g.Category.Name))
	}
	for _, g := range r.Groups {
		bar := cli.RenderHorizontalBar(g.BarWidth(), 100, barWidth, 1)
		fmt.Fprintf(&b, "  %-*s %s %s\n", nameWidth, g.Category.Name, bar,
			cli.Muted(fmt.Sprintf("%d pts (%.1f%%)", g.Total, g.Percent)))
	}

	for _, g := range r.Groups {
		b.WriteString("\n  ")
		b.WriteString(cli.Header(g.Category.Icon.Glyph() + " " + g.Category.Name))
		b.WriteString("\n")
		for _, e := range g.Entries {
			fmt.Fprintf(&b, "    %s  %d× %s  %s\n",
				e.Component.Name,
				e.Item.Quantity,
				cli.FormatChips(e.Item.Quantity),
				cli.FormatPoints(e.Breakdown.Total))
			if e.Item.Justification != "" {
				wrapped := wordwrap.String(e.Item.Justification, width-8)
				b.WriteString(cli.Muted(indent.String(wrapped, 6)))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}
