// Package components provides reusable widgets for the pointplan dashboard.
package components

import (
	"github.com/theirongolddev/pointplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// PaneState controls how a pane border is drawn.
type PaneState int

const (
	PaneIdle PaneState = iota
	PaneFocused
	PaneDropTarget // a component is being dragged over this pane
)

// Pane renders a bordered pane with a title. outerWidth and outerHeight
// include the border; body is clipped to fit.
func Pane(title, body string, outerWidth, outerHeight int, state PaneState) string {
	t := theme.Active

	contentWidth := max(outerWidth-2, 10)
	contentHeight := max(outerHeight-2, 1)

	border := lipgloss.RoundedBorder()
	borderColor := t.Border
	titleColor := t.TextMuted
	switch state {
	case PaneFocused:
		borderColor, titleColor = t.BorderFocus, t.Accent
	case PaneDropTarget:
		border = lipgloss.DoubleBorder()
		borderColor, titleColor = t.Drag, t.Drag
	}

	style := lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderColor).
		Width(contentWidth).
		Height(contentHeight).
		MaxHeight(outerHeight).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Foreground(titleColor).
		Bold(true)

	content := body
	if title != "" {
		content = titleStyle.Render(title) + "\n" + body
	}
	content = ClipLines(content, contentHeight)

	return style.Render(content)
}

// PaneInnerWidth returns the usable text width inside a Pane given its outer
// width (subtracts border and padding).
func PaneInnerWidth(outerWidth int) int {
	return max(outerWidth-4, 10)
}

// PaneInnerHeight returns the body lines available under a titled Pane.
func PaneInnerHeight(outerHeight int) int {
	return max(outerHeight-3, 1)
}

// ClipLines keeps at most n lines of s.
func ClipLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			count++
			if count == n {
				return s[:i]
			}
		}
	}
	return s
}
