package tui

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/pointplan/internal/report"
	"github.com/theirongolddev/pointplan/internal/store"
	"github.com/theirongolddev/pointplan/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/browser"
)

// DateLayout is the date format accepted by the export dialog.
const DateLayout = "2006-01-02"

type exportValues struct {
	name string
	date string
	open bool
}

type resetValues struct {
	confirmed bool
}

// ValidateDate accepts an ISO date.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateLayout, strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

func newExportForm(vals *exportValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Student name").
				Placeholder("Your full name").
				Value(&vals.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("a name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Value(&vals.date).
				Validate(ValidateDate),
			huh.NewConfirm().
				Title("Open in browser when done?").
				Affirmative("Yes").
				Negative("No").
				Value(&vals.open),
		).Title("Export project to HTML"),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(true)
}

func newResetForm(vals *resetValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset the project?").
				Description("All items are removed. Undo brings them back.").
				Affirmative("Reset").
				Negative("Keep").
				Value(&vals.confirmed),
		),
	).WithTheme(huh.ThemeCharm())
}

func (a App) startExport() (tea.Model, tea.Cmd) {
	a.sess.EndDrag()
	a.exportVals = &exportValues{
		name: a.studentName,
		date: time.Now().Format(DateLayout),
	}
	a.mode = modeExport
	a.form = newExportForm(a.exportVals)
	if a.width > 0 {
		a.form = a.form.WithWidth(min(a.width, 70))
	}
	return a, a.form.Init()
}

func (a App) startReset() (tea.Model, tea.Cmd) {
	if !a.confirmReset {
		return a.apply(a.sess.Reset())
	}
	a.resetVals = &resetValues{}
	a.mode = modeReset
	a.form = newResetForm(a.resetVals)
	if a.width > 0 {
		a.form = a.form.WithWidth(min(a.width, 70))
	}
	return a, a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		a.closeForm()
		a.setNotice("cancelled", false)
		return a, nil
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		return a.completeForm()
	case huh.StateAborted:
		a.closeForm()
		return a, nil
	}
	return a, cmd
}

func (a *App) closeForm() {
	a.mode = modeBrowse
	a.form = nil
}

func (a App) completeForm() (tea.Model, tea.Cmd) {
	done := a.mode
	a.closeForm()

	switch done {
	case modeReset:
		if a.resetVals.confirmed {
			return a.apply(a.sess.Reset())
		}
		a.setNotice("reset cancelled", false)

	case modeExport:
		a.studentName = strings.TrimSpace(a.exportVals.name)
		date, _ := time.Parse(DateLayout, strings.TrimSpace(a.exportVals.date))
		r := report.Build(a.sess.Items(), a.sess.Catalog(), a.sess.Summary(), report.Meta{
			StudentName: a.studentName,
			Date:        date,
			Generated:   time.Now(),
		})
		path := filepath.Join(a.exportDir, report.Filename(a.studentName))
		a.setNotice("exporting…", false)
		return a, exportCmd(r, path, a.exportVals.open)

	case modeSetup:
		if err := SaveSetup(*a.setupVals); err != nil {
			a.setNotice(fmt.Sprintf("could not save config: %v", err), true)
			return a, nil
		}
		if a.setupVals.Name != "" {
			a.studentName = a.setupVals.Name
		}
		a.setNotice("settings saved", false)
	}
	return a, nil
}

func (a App) viewForm() string {
	t := theme.Active
	if a.form == nil {
		return ""
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(1, 2).
		Render(a.form.View())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
}

// ─── Commands ───────────────────────────────────────────────────

func saveSessionCmd(s Store, slot string, st store.SessionState) tea.Cmd {
	if s == nil {
		return nil
	}
	return func() tea.Msg {
		return persistedMsg{what: "session", err: s.SaveSession(slot, st)}
	}
}

func saveProjectCmd(s Store, slot string, rec store.Record) tea.Cmd {
	if s == nil {
		return nil
	}
	return func() tea.Msg {
		return persistedMsg{what: "project", err: s.SaveProject(slot, rec)}
	}
}

func exportCmd(r report.Report, path string, open bool) tea.Cmd {
	return func() tea.Msg {
		if err := report.WriteHTMLFile(path, r); err != nil {
			return exportedMsg{err: err}
		}
		if open {
			// The browser launcher writes to stdout, which belongs to the TUI.
			browser.Stdout, browser.Stderr = io.Discard, io.Discard
			if err := browser.OpenFile(path); err != nil {
				return exportedMsg{path: path, err: fmt.Errorf("opening browser: %w", err)}
			}
		}
		return exportedMsg{path: path}
	}
}
