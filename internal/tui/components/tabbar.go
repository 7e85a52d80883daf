package components

import (
	"strings"

	"github.com/theirongolddev/pointplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// tabPadding is the horizontal padding around each tab label.
const tabPadding = 1

// TabVisualWidth returns the rendered width of a tab label.
func TabVisualWidth(name string) int {
	return lipgloss.Width(name) + 2*tabPadding
}

// RenderTabBar renders one row of tabs separated by a single column.
// Tabs that do not fit are dropped from the end and marked with "…".
func RenderTabBar(names []string, activeIdx, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, tabPadding)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Padding(0, tabPadding)

	var b strings.Builder
	used := 0
	for i, name := range names {
		w := TabVisualWidth(name)
		if i > 0 {
			w++
		}
		if used+w > width {
			b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("…"))
			break
		}
		if i > 0 {
			b.WriteString(" ")
		}
		if i == activeIdx {
			b.WriteString(activeStyle.Render(name))
		} else {
			b.WriteString(inactiveStyle.Render(name))
		}
		used += w
	}
	return b.String()
}

// TabAtX returns the tab index at column x of a bar rendered by
// RenderTabBar, or -1 if none.
func TabAtX(names []string, x int) int {
	pos := 0
	for i, name := range names {
		w := TabVisualWidth(name)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 1
	}
	return -1
}
