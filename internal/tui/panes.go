package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/pointplan/internal/budget"
	"github.com/theirongolddev/pointplan/internal/catalog"
	"github.com/theirongolddev/pointplan/internal/cli"
	"github.com/theirongolddev/pointplan/internal/pricing"
	"github.com/theirongolddev/pointplan/internal/tui/components"
	"github.com/theirongolddev/pointplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const (
	// Both lists start below the header, the pane border, the pane title
	// and two lines of pane chrome.
	catalogListTop = headerHeight + 4
	projectListTop = headerHeight + 4

	catalogDetailHeight = 5
	projectDetailHeight = 6
)

func (a App) catalogRows() int {
	return max(components.PaneInnerHeight(a.bodyHeight())-2-catalogDetailHeight, 1)
}

func (a App) projectRows() int {
	return max(components.PaneInnerHeight(a.bodyHeight())-2-projectDetailHeight, 1)
}

func (a App) renderHeader(w int) string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	left := titleStyle.Render(" pointplan")
	if a.studentName != "" {
		left += mutedStyle.Render(" · " + a.studentName)
	}

	undo, redo := "undo", "redo"
	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	on := lipgloss.NewStyle().Foreground(t.TextPrimary)
	undoS, redoS := dim.Render(undo), dim.Render(redo)
	if a.sess.CanUndo() {
		undoS = on.Render(undo)
	}
	if a.sess.CanRedo() {
		redoS = on.Render(redo)
	}
	right := undoS + dim.Render(" · ") + redoS + " "

	gap := max(w-lipgloss.Width(left)-lipgloss.Width(right), 1)
	line1 := left + strings.Repeat(" ", gap) + right

	sum := a.sess.Summary()
	var preview *int
	if p, ok := a.sess.Preview(); ok {
		preview = &p
	}
	line2 := " " + components.BudgetBar(sum.Spent, sum.Initial, preview, w-1)

	return line1 + "\n" + line2
}

func (a App) projectTitle() string {
	sum := a.sess.Summary()
	title := fmt.Sprintf("Project · %s", cli.FormatBalance(sum.Remaining))
	if _, dragging := a.sess.Dragging(); dragging {
		title = "Drop here · " + cli.FormatBalance(sum.Remaining)
	}
	return title
}

func (a App) renderCatalog(outerW int) string {
	t := theme.Active
	innerW := components.PaneInnerWidth(outerW)
	remaining := a.sess.Remaining()
	dragged, dragging := a.sess.Dragging()

	var b strings.Builder
	b.WriteString(components.RenderTabBar(a.categoryTabs(), a.catFilter, innerW))
	b.WriteString("\n\n")

	comps := a.visibleComponents()
	rows := a.catalogRows()
	nameW := max(innerW-14, 8)

	cursorStyle := lipgloss.NewStyle().Background(t.SurfaceHover).Foreground(t.TextPrimary).Bold(a.focus == paneCatalog)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	warnStyle := lipgloss.NewStyle().Foreground(t.Warn)
	dragStyle := lipgloss.NewStyle().Foreground(t.Drag).Bold(true)

	for i := a.catOffset; i < len(comps) && i < a.catOffset+rows; i++ {
		c := comps[i]
		marker := "  "
		if dragging && dragged.ID == c.ID {
			marker = dragStyle.Render("⇢ ")
		} else if i == a.catCursor {
			marker = "▸ "
		}

		glyph := c.Icon.Glyph()
		if cat, ok := a.sess.Catalog().Category(c.CategoryID); ok && c.Icon == catalog.IconDefault {
			glyph = cat.Icon.Glyph()
		}
		name := fmt.Sprintf("%s %-*s", glyph, nameW, cli.Truncate(c.Name, nameW))
		pts := fmt.Sprintf("%3d pts", c.BasePoints)

		style := rowStyle
		if i == a.catCursor {
			style = cursorStyle
		}
		line := marker + style.Render(name+" "+pts)
		if budget.WouldOverspend(remaining, c) {
			line += warnStyle.Render(" !")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	for i := min(len(comps)-a.catOffset, rows); i < rows; i++ {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.renderComponentDetail(innerW))
	return b.String()
}

func (a App) renderComponentDetail(innerW int) string {
	t := theme.Active
	c, ok := a.selectedComponent()
	if !ok {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No components in this category.")
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	ladderStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(nameStyle.Render(c.Name))
	if cat, ok := a.sess.Catalog().Category(c.CategoryID); ok {
		b.WriteString(descStyle.Render(" · " + cat.Name))
	}
	b.WriteString("\n")
	desc := wordwrap.String(c.Description, innerW)
	b.WriteString(descStyle.Render(components.ClipLines(desc, 2)))
	b.WriteString("\n")
	b.WriteString(ladderStyle.Render(cli.Truncate(pricing.DiscountExamples(c.BasePoints), innerW)))
	if budget.WouldOverspend(a.sess.Remaining(), c) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(t.Warn).Render("! adding this would exceed the budget"))
	}
	return b.String()
}

func (a App) renderProject(outerW int) string {
	t := theme.Active
	innerW := components.PaneInnerWidth(outerW)
	sum := a.sess.Summary()
	items := a.sess.Items()

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d items · %d copies · %s spent",
		len(items), sum.Copies, cli.FormatPoints(sum.Spent))))
	b.WriteString("\n\n")

	rows := a.projectRows()
	if len(items) == 0 {
		hint := "Drop components here: pick one up in the catalog with space, then press enter."
		b.WriteString(dimStyle.Render(wordwrap.String(hint, innerW)))
		return b.String()
	}

	cursorStyle := lipgloss.NewStyle().Background(t.SurfaceHover).Foreground(t.TextPrimary).Bold(a.focus == paneProject)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	nameW := max(innerW-30, 8)

	for i := a.itemOff; i < len(items) && i < a.itemOff+rows; i++ {
		it := items[i]
		marker := "  "
		if i == a.itemCur {
			marker = "▸ "
		}

		comp, ok := a.sess.Catalog().Component(it.ComponentID)
		if !ok {
			b.WriteString(marker + dimStyle.Render(fmt.Sprintf("%-*s  not in catalog", nameW, cli.Truncate(it.ComponentID, nameW))))
			b.WriteString("\n")
			continue
		}

		total := pricing.Total(comp.BasePoints, it.Quantity)
		chips := lipgloss.NewStyle().Foreground(a.categoryColor(comp.CategoryID)).Render(cli.FormatChips(it.Quantity))
		text := fmt.Sprintf("%-*s ×%-2d %4d pts ", nameW, cli.Truncate(comp.Name, nameW), it.Quantity, total)

		style := rowStyle
		if i == a.itemCur {
			style = cursorStyle
		}
		b.WriteString(marker + style.Render(text) + chips)
		b.WriteString("\n")
	}
	for i := min(len(items)-a.itemOff, rows); i < rows; i++ {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.renderItemDetail(innerW))
	return b.String()
}

func (a App) renderItemDetail(innerW int) string {
	t := theme.Active
	it, ok := a.selectedItem()
	if !ok {
		return ""
	}

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	if comp, ok := a.sess.Catalog().Component(it.ComponentID); ok {
		br := pricing.ComputeBreakdown(comp.BasePoints, it.Quantity)
		parts := make([]string, 0, len(br.Copies))
		for _, cp := range br.Copies {
			s := fmt.Sprintf("#%d %d", cp.Copy, cp.Price)
			if cp.Discount > 0 {
				s += fmt.Sprintf(" (%s)", cli.FormatDiscount(cp.Discount))
			}
			parts = append(parts, s)
		}
		line := strings.Join(parts, " · ")
		if saved := pricing.Savings(comp.BasePoints, it.Quantity); saved > 0 {
			line += fmt.Sprintf(" · saved %d", saved)
		}
		b.WriteString(mutedStyle.Render(components.ClipLines(wordwrap.String(line, innerW), 2)))
		b.WriteString("\n")
	}

	if a.mode == modeJustify && a.justifyItem == it.ID {
		b.WriteString(a.justify.View())
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d/%d · enter saves · esc cancels",
			len([]rune(a.justify.Value())), JustificationLimit)))
		return b.String()
	}

	if it.Justification == "" {
		b.WriteString(dimStyle.Render("No justification yet. Press e to write one."))
		return b.String()
	}
	j := wordwrap.String(it.Justification, innerW)
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextPrimary).Italic(true).Render(components.ClipLines(j, 3)))
	return b.String()
}

func (a App) categoryColor(categoryID string) lipgloss.Color {
	if cat, ok := a.sess.Catalog().Category(categoryID); ok && cat.Color != "" {
		return lipgloss.Color(cat.Color)
	}
	return theme.Active.Accent
}
