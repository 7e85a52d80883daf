package components

import (
	"strings"

	"github.com/theirongolddev/pointplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom bar: the last notice on the left and
// the key hints on the right. Warnings are drawn in the warning color.
func RenderStatusBar(width int, notice string, warn bool, hints string) string {
	t := theme.Active

	noticeStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	if warn {
		noticeStyle = noticeStyle.Foreground(t.Warn)
	}

	left := " " + notice
	right := hints + " "

	avail := width - lipgloss.Width(right)
	if lipgloss.Width(left) > avail {
		left = truncate(left, avail)
	}
	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)

	return noticeStyle.Render(left) + strings.Repeat(" ", padding) + right
}

func truncate(s string, w int) string {
	if w <= 1 {
		return ""
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > w-1 {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
