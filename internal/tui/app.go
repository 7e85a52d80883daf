// Package tui provides the interactive Bubble Tea dashboard for pointplan.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/theirongolddev/pointplan/internal/catalog"
	"github.com/theirongolddev/pointplan/internal/project"
	"github.com/theirongolddev/pointplan/internal/session"
	"github.com/theirongolddev/pointplan/internal/store"
	"github.com/theirongolddev/pointplan/internal/tui/components"
	"github.com/theirongolddev/pointplan/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// JustificationLimit caps the justification editor.
const JustificationLimit = 200

const (
	minTerminalWidth  = 80
	minTerminalHeight = 20
	maxContentWidth   = 180

	headerHeight = 2 // title line + budget bar
	footerHeight = 1
)

// Store is where the dashboard persists the project. *store.DB satisfies it.
type Store interface {
	SaveProject(slot string, rec store.Record) error
	SaveSession(slot string, st store.SessionState) error
}

// Options configures the dashboard.
type Options struct {
	Session      *session.Session
	Store        Store
	Slot         string
	StudentName  string
	ExportDir    string
	ConfirmReset bool
	NeedSetup    bool
	Notice       string // shown on the status line at startup
	Logger       *slog.Logger
}

type pane int

const (
	paneCatalog pane = iota
	paneProject
)

type mode int

const (
	modeBrowse mode = iota
	modeJustify
	modeExport
	modeReset
	modeSetup
)

// persistedMsg reports the outcome of a background save.
type persistedMsg struct {
	what string
	err  error
}

// exportedMsg reports the outcome of an HTML export.
type exportedMsg struct {
	path string
	err  error
}

// App is the root Bubble Tea model.
type App struct {
	sess   *session.Session
	store  Store
	slot   string
	logger *slog.Logger

	keys KeyMap
	help help.Model

	// UI state
	width     int
	height    int
	focus     pane
	catFilter int // 0 = all categories, else index+1 into Categories()
	catCursor int
	catOffset int
	itemCur   int
	itemOff   int
	showHelp  bool

	mode        mode
	justify     textinput.Model
	justifyItem string
	form        *huh.Form
	exportVals  *exportValues // form fields bind to these; App is copied by value
	resetVals   *resetValues
	setupVals   *SetupValues

	notice string
	warn   bool

	studentName  string
	exportDir    string
	confirmReset bool
}

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	slot := opts.Slot
	if slot == "" {
		slot = store.DefaultSlot
	}

	ti := textinput.New()
	ti.CharLimit = JustificationLimit
	ti.Placeholder = "why this component belongs in the project"

	a := App{
		sess:         opts.Session,
		store:        opts.Store,
		slot:         slot,
		logger:       logger,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		justify:      ti,
		notice:       opts.Notice,
		warn:         opts.Notice != "",
		studentName:  opts.StudentName,
		exportDir:    opts.ExportDir,
		confirmReset: opts.ConfirmReset,
	}
	if opts.NeedSetup {
		a.mode = modeSetup
		vals := DefaultSetupValues()
		a.setupVals = &vals
		a.form = NewSetupForm(a.setupVals)
	}
	if a.notice == "" {
		a.notice = "space picks up a component, enter drops it"
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.form != nil {
		cmds = append(cmds, a.form.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.justify.Width = max(a.paneWidths()[1]-8, 10)
		if a.form != nil {
			a.form = a.form.WithWidth(min(msg.Width, 70))
		}
		return a, nil

	case persistedMsg:
		if msg.err != nil {
			a.logger.Error("save failed", "what", msg.what, "err", msg.err)
			a.setNotice(fmt.Sprintf("could not save %s: %v", msg.what, msg.err), true)
		} else if msg.what == "project" {
			a.setNotice("project saved", false)
		}
		return a, nil

	case exportedMsg:
		switch {
		case msg.err != nil && msg.path != "":
			a.setNotice(fmt.Sprintf("exported %s, but %v", msg.path, msg.err), true)
		case msg.err != nil:
			a.setNotice(fmt.Sprintf("export failed: %v", msg.err), true)
		default:
			a.setNotice("exported "+msg.path, false)
		}
		return a, nil

	case tea.MouseMsg:
		if a.mode != modeBrowse || a.showHelp {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.mode {
		case modeJustify:
			return a.updateJustify(msg)
		case modeExport, modeReset, modeSetup:
			return a.updateForm(msg)
		}

		if key.Matches(msg, a.keys.Help) {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}
		return a.updateBrowse(msg)
	}

	// Forward unhandled messages (cursor blinks etc.) to the active widget.
	switch a.mode {
	case modeJustify:
		var cmd tea.Cmd
		a.justify, cmd = a.justify.Update(msg)
		return a, cmd
	case modeExport, modeReset, modeSetup:
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := a.keys
	_, dragging := a.sess.Dragging()

	switch {
	case key.Matches(msg, k.Quit):
		return a, tea.Quit

	case key.Matches(msg, k.Cancel):
		if dragging {
			a.sess.EndDrag()
			a.focus = paneCatalog
			a.setNotice("drag cancelled", false)
		}
		return a, nil

	case key.Matches(msg, k.SwitchPane):
		if a.focus == paneCatalog {
			a.focus = paneProject
		} else {
			a.focus = paneCatalog
		}
		return a, nil

	case key.Matches(msg, k.Up):
		a.moveCursor(-1)
		return a, nil

	case key.Matches(msg, k.Down):
		a.moveCursor(1)
		return a, nil

	case key.Matches(msg, k.PrevCat):
		a.cycleCategory(-1)
		return a, nil

	case key.Matches(msg, k.NextCat):
		a.cycleCategory(1)
		return a, nil

	case key.Matches(msg, k.PickUp):
		if dragging {
			return a.drop()
		}
		return a.pickUp()

	case key.Matches(msg, k.Drop):
		if dragging {
			return a.drop()
		}
		if a.focus == paneCatalog {
			// Quick add: pick up and drop in one step.
			if comp, ok := a.selectedComponent(); ok {
				return a.apply(a.sess.Drop(comp.ID))
			}
		}
		return a, nil

	case key.Matches(msg, k.Undo):
		return a.apply(a.sess.Undo())

	case key.Matches(msg, k.Redo):
		return a.apply(a.sess.Redo())

	case key.Matches(msg, k.Reset):
		return a.startReset()

	case key.Matches(msg, k.Save):
		return a, saveProjectCmd(a.store, a.slot, a.sess.Record())

	case key.Matches(msg, k.Export):
		return a.startExport()
	}

	if a.focus != paneProject {
		return a, nil
	}

	it, ok := a.selectedItem()
	if !ok {
		return a, nil
	}
	switch {
	case key.Matches(msg, k.Increase):
		return a.apply(a.sess.SetQuantity(it.ID, it.Quantity+1))

	case key.Matches(msg, k.Decrease):
		if it.Quantity <= 1 {
			a.setNotice("quantity cannot go below 1; use x to remove", true)
			return a, nil
		}
		return a.apply(a.sess.SetQuantity(it.ID, it.Quantity-1))

	case key.Matches(msg, k.Justify):
		a.mode = modeJustify
		a.justifyItem = it.ID
		a.justify.SetValue(it.Justification)
		a.justify.CursorEnd()
		return a, a.justify.Focus()

	case key.Matches(msg, k.Remove):
		return a.apply(a.sess.Remove(it.ID))
	}
	return a, nil
}

func (a App) pickUp() (tea.Model, tea.Cmd) {
	if a.focus != paneCatalog {
		return a, nil
	}
	comp, ok := a.selectedComponent()
	if !ok || !a.sess.BeginDrag(comp.ID) {
		return a, nil
	}
	a.focus = paneProject
	preview, _ := a.sess.Preview()
	a.setNotice(fmt.Sprintf("dragging %s: enter or space drops, esc cancels", comp.Name), preview < 0)
	return a, nil
}

func (a App) drop() (tea.Model, tea.Cmd) {
	comp, ok := a.sess.Dragging()
	if !ok {
		return a, nil
	}
	m, cmd := a.apply(a.sess.Drop(comp.ID))
	app := m.(App)
	if i := app.sess.Items().FindComponent(comp.ID); i >= 0 {
		app.itemCur = i
		app.scrollItems()
	}
	return app, cmd
}

// apply shows an action's notice and persists the session if it changed.
func (a App) apply(res session.Result) (tea.Model, tea.Cmd) {
	if res.Notice != "" {
		a.setNotice(res.Notice, a.sess.Remaining() < 0)
	}
	if !res.Changed {
		return a, nil
	}
	a.clampCursors()
	return a, saveSessionCmd(a.store, a.slot, a.sess.State())
}

func (a App) updateJustify(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(a.justify.Value())
		a.mode = modeBrowse
		a.justify.Blur()
		return a.apply(a.sess.SetJustification(a.justifyItem, text))
	case "esc":
		a.mode = modeBrowse
		a.justify.Blur()
		a.setNotice("edit cancelled", false)
		return a, nil
	}

	var cmd tea.Cmd
	a.justify, cmd = a.justify.Update(msg)
	return a, cmd
}

func (a *App) setNotice(s string, warn bool) {
	a.notice = s
	a.warn = warn
}

// ─── Selection ──────────────────────────────────────────────────

func (a App) categoryTabs() []string {
	cats := a.sess.Catalog().Categories()
	names := make([]string, 0, len(cats)+1)
	names = append(names, "All")
	for _, c := range cats {
		names = append(names, c.Name)
	}
	return names
}

func (a App) visibleComponents() []catalog.Component {
	cat := a.sess.Catalog()
	if a.catFilter == 0 {
		return cat.Components()
	}
	cats := cat.Categories()
	return cat.ComponentsIn(cats[a.catFilter-1].ID)
}

func (a App) selectedComponent() (catalog.Component, bool) {
	comps := a.visibleComponents()
	if a.catCursor < 0 || a.catCursor >= len(comps) {
		return catalog.Component{}, false
	}
	return comps[a.catCursor], true
}

func (a App) selectedItem() (project.Item, bool) {
	items := a.sess.Items()
	if a.itemCur < 0 || a.itemCur >= len(items) {
		return project.Item{}, false
	}
	return items[a.itemCur], true
}

func (a *App) moveCursor(delta int) {
	if a.focus == paneCatalog {
		a.catCursor = clampIndex(a.catCursor+delta, len(a.visibleComponents()))
		a.scrollCatalog()
		return
	}
	a.itemCur = clampIndex(a.itemCur+delta, len(a.sess.Items()))
	a.scrollItems()
}

func (a *App) cycleCategory(delta int) {
	n := len(a.sess.Catalog().Categories()) + 1
	a.catFilter = (a.catFilter + delta + n) % n
	a.catCursor, a.catOffset = 0, 0
}

func (a *App) clampCursors() {
	a.catCursor = clampIndex(a.catCursor, len(a.visibleComponents()))
	a.itemCur = clampIndex(a.itemCur, len(a.sess.Items()))
	a.scrollCatalog()
	a.scrollItems()
}

func (a *App) scrollCatalog() {
	a.catOffset = scrollWindow(a.catCursor, a.catOffset, a.catalogRows())
}

func (a *App) scrollItems() {
	a.itemOff = scrollWindow(a.itemCur, a.itemOff, a.projectRows())
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return min(max(i, 0), n-1)
}

// scrollWindow returns the first visible row so that cursor stays within a
// window of size rows.
func scrollWindow(cursor, offset, rows int) int {
	if rows <= 0 {
		return 0
	}
	if cursor < offset {
		return cursor
	}
	if cursor >= offset+rows {
		return cursor - rows + 1
	}
	return offset
}

// ─── Mouse Support ──────────────────────────────────────────────

// catalogTabRow is the screen row of the category tab bar: below the header,
// the pane border and the pane title.
const catalogTabRow = headerHeight + 2

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	widths := a.paneWidths()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.moveCursor(-1)
	case tea.MouseButtonWheelDown:
		a.moveCursor(1)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		if msg.X < widths[0] {
			a.focus = paneCatalog
			if msg.Y == catalogTabRow {
				// Tab bar starts after the left border and padding.
				if tab := components.TabAtX(a.categoryTabs(), msg.X-2); tab >= 0 {
					a.catFilter = tab
					a.catCursor, a.catOffset = 0, 0
				}
			} else if row := msg.Y - catalogListTop; row >= 0 && row < a.catalogRows() {
				a.catCursor = clampIndex(a.catOffset+row, len(a.visibleComponents()))
			}
			return a, nil
		}
		a.focus = paneProject
		if row := msg.Y - projectListTop; row >= 0 && row < a.projectRows() {
			a.itemCur = clampIndex(a.itemOff+row, len(a.sess.Items()))
		}
	}
	return a, nil
}

// ─── Layout ─────────────────────────────────────────────────────

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) bodyHeight() int {
	return max(a.height-headerHeight-footerHeight, 6)
}

// paneWidths splits the content width between catalog and project panes.
func (a App) paneWidths() []int {
	return components.LayoutRow(a.contentWidth(), 2)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth || a.height < minTerminalHeight {
		return a.viewTooSmall()
	}

	switch {
	case a.mode == modeExport || a.mode == modeReset || a.mode == modeSetup:
		return a.viewForm()
	case a.showHelp:
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooSmall() string {
	t := theme.Active
	msg := fmt.Sprintf("Terminal too small (%dx%d). Need at least %dx%d.",
		a.width, a.height, minTerminalWidth, minTerminalHeight)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(t.Warn).Render(msg))
}

func (a App) viewHelp() string {
	t := theme.Active
	a.help.ShowAll = true
	a.help.Width = a.contentWidth() - 4

	title := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render("Keys")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(1, 2).
		Render(title + "\n\n" + a.help.View(a.keys) + "\n\n" +
			lipgloss.NewStyle().Foreground(t.TextDim).Render("press any key to close"))
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
}

func (a App) viewMain() string {
	w := a.contentWidth()
	widths := a.paneWidths()
	h := a.bodyHeight()

	catState, projState := components.PaneIdle, components.PaneIdle
	if a.focus == paneCatalog {
		catState = components.PaneFocused
	} else {
		projState = components.PaneFocused
	}
	if _, dragging := a.sess.Dragging(); dragging {
		projState = components.PaneDropTarget
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		components.Pane("Catalog", a.renderCatalog(widths[0]), widths[0], h, catState),
		components.Pane(a.projectTitle(), a.renderProject(widths[1]), widths[1], h, projState),
	)

	a.help.Width = w / 2
	status := components.RenderStatusBar(w, a.notice, a.warn, a.help.ShortHelpView(a.keys.ShortHelp()))

	return a.renderHeader(w) + "\n" + body + "\n" + status
}
