package components

import (
	"fmt"

	"github.com/theirongolddev/pointplan/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// BudgetBar renders the share of the budget spent, colored by the remaining
// balance. When preview is non-nil the projected balance of the component
// being dragged is shown after the bar.
func BudgetBar(spent, initial int, preview *int, width int) string {
	t := theme.Active

	pct := 0.0
	if initial > 0 {
		pct = float64(spent) / float64(initial)
	}
	remaining := initial - spent
	color := t.BalanceColor(remaining, initial)

	label := fmt.Sprintf(" %d / %d pts", spent, initial)
	extra := ""
	if preview != nil {
		extra = fmt.Sprintf("  → %d after drop", *preview)
	}

	barW := max(width-lipgloss.Width(label)-lipgloss.Width(extra)-6, 4)
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	out := bar.ViewAs(clamp01(pct)) +
		pctStyle.Render(fmt.Sprintf(" %3.0f%%", pct*100)) +
		labelStyle.Render(label)

	if preview != nil {
		previewColor := t.Drag
		if *preview < 0 {
			previewColor = t.Bad
		}
		out += lipgloss.NewStyle().Foreground(previewColor).Bold(true).Render(extra)
	}
	return out
}

func clamp01(f float64) float64 {
	return min(max(f, 0), 1)
}
