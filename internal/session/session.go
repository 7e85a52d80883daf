// Package session owns the working project: the committed state, its undo
// history and the in-progress drag preview. Every committing method applies
// a pure project transformation and records it in history in the same call.
//
// A Session is not safe for concurrent use.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/theirongolddev/pointplan/internal/budget"
	"github.com/theirongolddev/pointplan/internal/catalog"
	"github.com/theirongolddev/pointplan/internal/history"
	"github.com/theirongolddev/pointplan/internal/project"
	"github.com/theirongolddev/pointplan/internal/store"
)

// ErrUnknownItem is returned by Resolve when no item matches a reference.
var ErrUnknownItem = errors.New("no such item in project")

// ErrAmbiguousItem is returned by Resolve when a prefix matches several items.
var ErrAmbiguousItem = errors.New("item reference is ambiguous")

// Result reports the outcome of a user action for the status line.
type Result struct {
	Changed bool
	Notice  string
}

// Session is the transactional container around a project.
type Session struct {
	catalog *catalog.Catalog
	initial int
	hist    *history.History
	logger  *slog.Logger
	newID   project.IDFunc

	dragging *catalog.Component
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger commits and no-ops are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDFunc overrides item id generation.
func WithIDFunc(f project.IDFunc) Option {
	return func(s *Session) {
		if f != nil {
			s.newID = f
		}
	}
}

// New starts a session whose history holds only the initial state.
func New(cat *catalog.Catalog, initialBudget int, initial project.State, opts ...Option) *Session {
	s := newSession(cat, initialBudget, opts)
	s.hist = history.New(project.Normalize(initial, s.newID))
	return s
}

// Restore rebuilds a session from persisted history.
func Restore(cat *catalog.Catalog, st store.SessionState, opts ...Option) *Session {
	s := newSession(cat, st.Budget, opts)
	s.hist = history.Restore(st.Snapshots, st.Cursor)
	return s
}

func newSession(cat *catalog.Catalog, initialBudget int, opts []Option) *Session {
	if initialBudget <= 0 {
		initialBudget = budget.DefaultInitial
	}
	s := &Session{
		catalog: cat,
		initial: initialBudget,
		logger:  slog.New(slog.DiscardHandler),
		newID:   project.NewItemID,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// commit records next as the new current state.
func (s *Session) commit(action string, next project.State) {
	s.hist.Commit(next)
	s.logger.Debug("commit", "action", action, "items", len(next), "cursor", s.hist.Cursor(), "history", s.hist.Len())
}

func (s *Session) current() project.State {
	return s.hist.Current().Items()
}

func (s *Session) componentName(id string) string {
	if c, ok := s.catalog.Component(id); ok {
		return c.Name
	}
	return id
}

// overNotice appends the over-budget warning when the balance is negative.
func (s *Session) overNotice(msg string) string {
	if r := s.Remaining(); r < 0 {
		return fmt.Sprintf("%s (over budget by %d points)", msg, -r)
	}
	return msg
}

// Drop adds one copy of a component, or raises the quantity of the item that
// already holds it, and ends any drag in progress.
func (s *Session) Drop(componentID string) Result {
	s.dragging = nil

	comp, ok := s.catalog.Component(componentID)
	if !ok {
		s.logger.Debug("drop ignored", "component", componentID, "reason", "unknown component")
		return Result{Notice: fmt.Sprintf("unknown component %q", componentID)}
	}

	next, added := project.AddOrIncrement(s.current(), s.catalog, componentID, s.newID)
	s.commit("drop", next)

	msg := fmt.Sprintf("quantity of %q increased", comp.Name)
	if added {
		msg = fmt.Sprintf("%q added to project", comp.Name)
	}
	return Result{Changed: true, Notice: s.overNotice(msg)}
}

// Update applies a partial edit to an item as a single history entry.
// An absent id, or a patch that leaves the item as it was, commits nothing.
func (s *Session) Update(itemID string, p project.Patch) Result {
	cur := s.current()
	i := cur.Find(itemID)
	if i < 0 {
		s.logger.Debug("update ignored", "item", itemID, "reason", "unknown item")
		return Result{}
	}

	next := project.UpdateItem(cur, itemID, p)
	if next[i] == cur[i] {
		s.logger.Debug("update ignored", "item", itemID, "reason", "no change")
		return Result{}
	}
	s.commit("update", next)

	name := s.componentName(cur[i].ComponentID)
	var msg string
	switch {
	case p.Quantity != nil && p.Justification != nil:
		msg = fmt.Sprintf("%s × %d, justification updated", name, next[i].Quantity)
	case p.Quantity != nil:
		msg = fmt.Sprintf("%s × %d", name, next[i].Quantity)
	default:
		msg = fmt.Sprintf("justification of %q updated", name)
	}
	return Result{Changed: true, Notice: s.overNotice(msg)}
}

// SetQuantity replaces an item's quantity, clamped to at least 1.
func (s *Session) SetQuantity(itemID string, q int) Result {
	return s.Update(itemID, project.Patch{Quantity: &q})
}

// SetJustification replaces an item's justification text.
func (s *Session) SetJustification(itemID, text string) Result {
	return s.Update(itemID, project.Patch{Justification: &text})
}

// Remove deletes an item from the project.
func (s *Session) Remove(itemID string) Result {
	cur := s.current()
	i := cur.Find(itemID)
	if i < 0 {
		s.logger.Debug("remove ignored", "item", itemID)
		return Result{}
	}

	s.commit("remove", project.RemoveItem(cur, itemID))
	return Result{Changed: true, Notice: fmt.Sprintf("%q removed from project", s.componentName(cur[i].ComponentID))}
}

// Reset empties the project. The previous state stays reachable by undo.
func (s *Session) Reset() Result {
	s.dragging = nil
	s.commit("reset", project.Reset())
	return Result{Changed: true, Notice: "project reset"}
}

// Import commits an externally read record as a new history entry. The
// session budget is kept.
func (s *Session) Import(rec store.Record) Result {
	next := project.Normalize(rec.Items, s.newID)
	s.commit("import", next)

	msg := fmt.Sprintf("imported %d items", len(next))
	if orphans := s.Summary().Orphans; len(orphans) > 0 {
		msg += fmt.Sprintf(", %d not in catalog", len(orphans))
	}
	return Result{Changed: true, Notice: s.overNotice(msg)}
}

// Load replaces the session with a saved record. History restarts from the
// loaded state and the record's budget is adopted when it is positive.
func (s *Session) Load(rec store.Record) Result {
	s.dragging = nil
	if rec.Budget > 0 {
		s.initial = rec.Budget
	}
	s.hist = history.New(project.Normalize(rec.Items, s.newID))
	s.logger.Debug("load", "items", len(rec.Items), "budget", s.initial)
	return Result{Changed: true, Notice: "project loaded"}
}

// Undo steps back one history entry. At the oldest entry it does nothing.
func (s *Session) Undo() Result {
	if _, ok := s.hist.Undo(); !ok {
		s.logger.Debug("undo ignored", "cursor", s.hist.Cursor())
		return Result{}
	}
	s.logger.Debug("undo", "cursor", s.hist.Cursor())
	return Result{Changed: true, Notice: "action undone"}
}

// Redo steps forward one history entry. At the newest entry it does nothing.
func (s *Session) Redo() Result {
	if _, ok := s.hist.Redo(); !ok {
		s.logger.Debug("redo ignored", "cursor", s.hist.Cursor())
		return Result{}
	}
	s.logger.Debug("redo", "cursor", s.hist.Cursor())
	return Result{Changed: true, Notice: "action redone"}
}

// BeginDrag starts a drag of a catalog component. It returns false for an
// unknown component.
func (s *Session) BeginDrag(componentID string) bool {
	comp, ok := s.catalog.Component(componentID)
	if !ok {
		return false
	}
	s.dragging = &comp
	return true
}

// EndDrag cancels any drag in progress without touching the project.
func (s *Session) EndDrag() {
	s.dragging = nil
}

// Dragging returns the component being dragged.
func (s *Session) Dragging() (catalog.Component, bool) {
	if s.dragging == nil {
		return catalog.Component{}, false
	}
	return *s.dragging, true
}

// Preview returns the projected balance while a drag is in progress. The
// projection always charges the component's base points.
func (s *Session) Preview() (int, bool) {
	if s.dragging == nil {
		return 0, false
	}
	return budget.PreviewRemaining(s.Remaining(), *s.dragging), true
}

// Items returns a copy of the committed project state.
func (s *Session) Items() project.State {
	return s.current()
}

// Catalog returns the session's catalog.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Budget returns the initial point budget.
func (s *Session) Budget() int {
	return s.initial
}

// Summary evaluates the committed state against the budget.
func (s *Session) Summary() budget.Summary {
	return budget.Evaluate(s.hist.Current().Items(), s.catalog, s.initial)
}

// Remaining returns the current balance, negative when over budget.
func (s *Session) Remaining() int {
	return budget.Remaining(s.initial, budget.TotalSpent(s.hist.Current().Items(), s.catalog))
}

// CanUndo reports whether Undo would move.
func (s *Session) CanUndo() bool { return s.hist.CanUndo() }

// CanRedo reports whether Redo would move.
func (s *Session) CanRedo() bool { return s.hist.CanRedo() }

// Record returns the persistence record of the committed state.
func (s *Session) Record() store.Record {
	return store.Record{Items: s.current(), Budget: s.initial}
}

// State returns the persisted form of the session's history.
func (s *Session) State() store.SessionState {
	return store.SessionState{
		Snapshots: s.hist.Snapshots(),
		Cursor:    s.hist.Cursor(),
		Budget:    s.initial,
	}
}

// Resolve finds an item by id, by component id, or by a unique id prefix.
func (s *Session) Resolve(ref string) (project.Item, error) {
	ref = strings.TrimSpace(ref)
	items := s.current()
	if i := items.Find(ref); i >= 0 {
		return items[i], nil
	}
	if i := items.FindComponent(ref); i >= 0 {
		return items[i], nil
	}

	var match []project.Item
	for _, it := range items {
		if ref != "" && strings.HasPrefix(it.ID, ref) {
			match = append(match, it)
		}
	}
	switch len(match) {
	case 1:
		return match[0], nil
	case 0:
		return project.Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, ref)
	default:
		return project.Item{}, fmt.Errorf("%w: %q matches %d items", ErrAmbiguousItem, ref, len(match))
	}
}
