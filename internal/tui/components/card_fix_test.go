package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/pointplan/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToWidth(t *testing.T) {
	widths := LayoutRow(101, 2)
	if widths[0]+widths[1] != 101 || widths[0] != 51 {
		t.Fatalf("LayoutRow(101, 2) = %v", widths)
	}
	if LayoutRow(10, 0) != nil {
		t.Fatal("LayoutRow with n=0 should be nil")
	}
}

func TestPaneFixedSize(t *testing.T) {
	theme.SetActive("flexoki-dark")

	body := strings.Repeat("line\n", 40)
	out := Pane("Catalog", body, 30, 12, PaneFocused)
	lines := strings.Split(out, "\n")

	if len(lines) != 12 {
		t.Fatalf("pane height = %d, want 12", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 30 {
			t.Fatalf("line %d width = %d, want 30", i, w)
		}
	}
}

func TestPaneDropTargetUsesDoubleBorder(t *testing.T) {
	out := Pane("Project", "x", 20, 5, PaneDropTarget)
	if !strings.Contains(out, "╔") {
		t.Fatalf("drop target pane should use a double border:\n%s", out)
	}
	if strings.Contains(Pane("Project", "x", 20, 5, PaneIdle), "╔") {
		t.Fatal("idle pane should use a rounded border")
	}
}

func TestClipLines(t *testing.T) {
	if got := ClipLines("a\nb\nc", 2); got != "a\nb" {
		t.Fatalf("ClipLines = %q", got)
	}
	if got := ClipLines("a", 3); got != "a" {
		t.Fatalf("ClipLines = %q", got)
	}
}

func TestTabAtXMatchesRenderedWidths(t *testing.T) {
	names := []string{"All", "Branding", "Print"}
	bar := RenderTabBar(names, 1, 80)
	if lipgloss.Width(bar) != TabVisualWidth("All")+TabVisualWidth("Branding")+TabVisualWidth("Print")+2 {
		t.Fatalf("unexpected bar width %d", lipgloss.Width(bar))
	}

	pos := 0
	for i, n := range names {
		w := TabVisualWidth(n)
		if got := TabAtX(names, pos+w/2); got != i {
			t.Fatalf("TabAtX(mid of %q) = %d, want %d", n, got, i)
		}
		pos += w + 1
	}
	if got := TabAtX(names, pos+5); got != -1 {
		t.Fatalf("TabAtX past end = %d, want -1", got)
	}
}

func TestBudgetBarPreview(t *testing.T) {
	preview := -10
	out := BudgetBar(90, 100, &preview, 60)
	if !strings.Contains(out, "→ -10 after drop") {
		t.Fatalf("preview missing: %q", out)
	}
	if !strings.Contains(out, "90 / 100 pts") {
		t.Fatalf("label missing: %q", out)
	}
	if strings.Contains(BudgetBar(0, 100, nil, 60), "after drop") {
		t.Fatal("no preview expected without a drag")
	}
}

func TestStatusBarFitsWidth(t *testing.T) {
	out := RenderStatusBar(40, strings.Repeat("n", 80), true, "? help")
	if w := lipgloss.Width(out); w != 40 {
		t.Fatalf("status width = %d, want 40", w)
	}
}
