package tui

import (
	"strings"
	"testing"

	"github.com/theirongolddev/pointplan/internal/catalog"
	"github.com/theirongolddev/pointplan/internal/project"
	"github.com/theirongolddev/pointplan/internal/session"
	"github.com/theirongolddev/pointplan/internal/store"
	"github.com/theirongolddev/pointplan/internal/tui/components"
	"github.com/theirongolddev/pointplan/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

type fakeStore struct {
	sessions []store.SessionState
	projects []store.Record
}

func (f *fakeStore) SaveProject(_ string, rec store.Record) error {
	f.projects = append(f.projects, rec)
	return nil
}

func (f *fakeStore) SaveSession(_ string, st store.SessionState) error {
	f.sessions = append(f.sessions, st)
	return nil
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		[]catalog.Category{
			{ID: "layout", Name: "Layout"},
			{ID: "media", Name: "Media"},
		},
		[]catalog.Component{
			{ID: "header", Name: "Header", BasePoints: 30, CategoryID: "layout"},
			{ID: "footer", Name: "Footer", BasePoints: 20, CategoryID: "layout"},
			{ID: "gallery", Name: "Gallery", BasePoints: 80, CategoryID: "media"},
		},
	)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func newTestApp(t *testing.T) (App, *fakeStore) {
	t.Helper()
	theme.SetActive("flexoki-dark")

	n := 0
	sess := session.New(testCatalog(t), 100, nil, session.WithIDFunc(func(componentID string) string {
		n++
		return componentID + "-" + string(rune('0'+n))
	}))
	fs := &fakeStore{}
	app := NewApp(Options{Session: sess, Store: fs, ExportDir: t.TempDir()})

	m, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App), fs
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key and, in browse mode, runs the returned command once,
// feeding a persistence result back into the model. Editor commands are
// cursor blinks and are skipped.
func press(t *testing.T, a App, msg tea.KeyMsg) App {
	t.Helper()
	m, cmd := a.Update(msg)
	a = m.(App)
	if cmd != nil && a.mode == modeBrowse {
		if out := cmd(); out != nil {
			switch out.(type) {
			case persistedMsg, exportedMsg:
				m, _ = a.Update(out)
				a = m.(App)
			}
		}
	}
	return a
}

func TestDragPreviewAndDrop(t *testing.T) {
	a, fs := newTestApp(t)

	a = press(t, a, tea.KeyMsg{Type: tea.KeySpace})
	comp, dragging := a.sess.Dragging()
	if !dragging || comp.ID != "header" {
		t.Fatalf("Dragging() = %v, %v, want header", comp.ID, dragging)
	}
	if p, ok := a.sess.Preview(); !ok || p != 70 {
		t.Errorf("Preview() = %d, %v, want 70", p, ok)
	}
	if a.focus != paneProject {
		t.Error("picking up should move focus to the project pane")
	}
	if !strings.Contains(a.View(), "Drop here") {
		t.Error("project pane should advertise itself as the drop target")
	}

	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if _, dragging := a.sess.Dragging(); dragging {
		t.Error("drop should end the drag")
	}
	if got := a.sess.Remaining(); got != 70 {
		t.Errorf("Remaining() = %d, want 70", got)
	}
	if len(fs.sessions) != 1 {
		t.Fatalf("session saved %d times, want 1", len(fs.sessions))
	}
	if fs.sessions[0].Cursor != 1 {
		t.Errorf("saved cursor = %d, want 1", fs.sessions[0].Cursor)
	}
	if !strings.Contains(a.notice, "added to project") {
		t.Errorf("notice = %q", a.notice)
	}
}

func TestCancelDragLeavesProject(t *testing.T) {
	a, fs := newTestApp(t)

	a = press(t, a, tea.KeyMsg{Type: tea.KeySpace})
	a = press(t, a, tea.KeyMsg{Type: tea.KeyEsc})

	if _, dragging := a.sess.Dragging(); dragging {
		t.Error("esc should cancel the drag")
	}
	if len(a.sess.Items()) != 0 {
		t.Error("cancelled drag must not change the project")
	}
	if len(fs.sessions) != 0 {
		t.Error("cancelled drag must not persist anything")
	}
	if a.focus != paneCatalog {
		t.Error("focus should return to the catalog")
	}
}

func TestQuantityKeys(t *testing.T) {
	a, _ := newTestApp(t)

	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter}) // quick add header
	a = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = press(t, a, runes("+"))

	items := a.sess.Items()
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("items = %+v, want one item with quantity 2", items)
	}
	if got := a.sess.Remaining(); got != 46 {
		t.Errorf("Remaining() = %d, want 46", got)
	}

	a = press(t, a, runes("-"))
	a = press(t, a, runes("-"))
	if q := a.sess.Items()[0].Quantity; q != 1 {
		t.Errorf("quantity = %d, want 1", q)
	}
	if !a.warn {
		t.Error("decrement below 1 should warn")
	}
}

func TestRemoveUndoRedo(t *testing.T) {
	a, _ := newTestApp(t)

	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	a = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = press(t, a, runes("x"))
	if len(a.sess.Items()) != 0 {
		t.Fatal("x should remove the selected item")
	}

	a = press(t, a, runes("u"))
	if len(a.sess.Items()) != 1 {
		t.Fatal("undo should restore the item")
	}
	a = press(t, a, runes("r"))
	if len(a.sess.Items()) != 0 {
		t.Fatal("redo should remove it again")
	}

	a = press(t, a, runes("r"))
	if a.notice != "action redone" {
		t.Errorf("redo at the newest entry should leave the notice alone, got %q", a.notice)
	}
}

func TestResetWithoutConfirmation(t *testing.T) {
	a, _ := newTestApp(t)

	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	a = press(t, a, runes("R"))
	if len(a.sess.Items()) != 0 {
		t.Fatal("R should reset the project")
	}
	if !a.sess.CanUndo() {
		t.Error("reset should be undoable")
	}
}

func TestJustifyEditor(t *testing.T) {
	a, _ := newTestApp(t)

	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	a = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = press(t, a, runes("e"))
	if a.mode != modeJustify {
		t.Fatal("e should open the justification editor")
	}
	a = press(t, a, runes("needed"))
	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	if a.mode != modeBrowse {
		t.Error("enter should close the editor")
	}
	if got := a.sess.Items()[0].Justification; got != "needed" {
		t.Errorf("Justification = %q, want %q", got, "needed")
	}
}

func TestSaveKeyPersistsProject(t *testing.T) {
	a, fs := newTestApp(t)

	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	a = press(t, a, runes("s"))

	if len(fs.projects) != 1 {
		t.Fatalf("project saved %d times, want 1", len(fs.projects))
	}
	if fs.projects[0].Budget != 100 || len(fs.projects[0].Items) != 1 {
		t.Errorf("saved record = %+v", fs.projects[0])
	}
	if a.notice != "project saved" {
		t.Errorf("notice = %q", a.notice)
	}
}

func TestCategoryCycling(t *testing.T) {
	a, _ := newTestApp(t)

	a = press(t, a, tea.KeyMsg{Type: tea.KeyRight})
	a = press(t, a, tea.KeyMsg{Type: tea.KeyRight})
	if c, ok := a.selectedComponent(); !ok || c.ID != "gallery" {
		t.Errorf("selected = %v, want gallery", c.ID)
	}

	a = press(t, a, tea.KeyMsg{Type: tea.KeyRight})
	if a.catFilter != 0 {
		t.Errorf("catFilter = %d, want wrap to All", a.catFilter)
	}
}

func TestMouseSelectsCategoryTab(t *testing.T) {
	a, _ := newTestApp(t)

	// "All" spans columns 0-4 of the bar, then a gap, then "Layout".
	x := 2 + components.TabVisualWidth("All") + 1 + 1
	m, _ := a.Update(tea.MouseMsg{
		X: x, Y: catalogTabRow,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	})
	a = m.(App)
	if a.catFilter != 1 {
		t.Errorf("catFilter = %d, want 1 (Layout)", a.catFilter)
	}
}

func TestMouseFocusesProjectPane(t *testing.T) {
	a, _ := newTestApp(t)

	m, _ := a.Update(tea.MouseMsg{
		X: a.paneWidths()[0] + 3, Y: projectListTop,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	})
	if m.(App).focus != paneProject {
		t.Error("click right of the divider should focus the project pane")
	}
}

func TestViewStates(t *testing.T) {
	a, _ := newTestApp(t)

	view := a.View()
	for _, want := range []string{"pointplan", "Catalog", "Header", "100 pts left"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ := a.Update(tea.WindowSizeMsg{Width: 60, Height: 15})
	if !strings.Contains(m.(App).View(), "Terminal too small") {
		t.Error("small terminal should show the size warning")
	}
}

func TestOverBudgetWarns(t *testing.T) {
	a, _ := newTestApp(t)
	a.sess = session.New(testCatalog(t), 50, project.State{
		{ID: "g", ComponentID: "gallery", Quantity: 1},
	})

	a = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = press(t, a, runes("+"))
	if !a.warn {
		t.Error("going over budget should warn")
	}
	if !strings.Contains(a.notice, "over budget") {
		t.Errorf("notice = %q", a.notice)
	}
}

func TestScrollWindow(t *testing.T) {
	tests := []struct {
		cursor, offset, rows, want int
	}{
		{0, 0, 5, 0},
		{4, 0, 5, 0},
		{5, 0, 5, 1},
		{2, 3, 5, 2},
		{3, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := scrollWindow(tt.cursor, tt.offset, tt.rows); got != tt.want {
			t.Errorf("scrollWindow(%d, %d, %d) = %d, want %d", tt.cursor, tt.offset, tt.rows, got, tt.want)
		}
	}
}

func TestValidateDate(t *testing.T) {
	if err := ValidateDate("2024-06-01"); err != nil {
		t.Errorf("ValidateDate(valid) = %v", err)
	}
	if err := ValidateDate("01/06/2024"); err == nil {
		t.Error("ValidateDate should reject non-ISO dates")
	}
}
