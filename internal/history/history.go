// Package history keeps a bounded undo/redo log of project snapshots.
package history

import (
	"github.com/theirongolddev/pointplan/internal/project"
)

// Capacity is the maximum number of snapshots retained: the current state
// plus ten prior ones.
const Capacity = 11

// Snapshot is an immutable copy of a project state.
type Snapshot struct {
	items project.State
}

// NewSnapshot deep-copies state into a snapshot.
func NewSnapshot(state project.State) Snapshot {
	return Snapshot{items: state.Clone()}
}

// Items returns a copy of the snapshot's items.
func (s Snapshot) Items() project.State {
	return s.items.Clone()
}

// Len returns the number of items in the snapshot.
func (s Snapshot) Len() int {
	return len(s.items)
}

// History is a fixed-capacity ring of snapshots with a cursor.
// The cursor always indexes a valid snapshot.
type History struct {
	buf    [Capacity]Snapshot
	start  int // ring index of the oldest retained snapshot
	n      int // number of retained snapshots, 1..Capacity
	cursor int // logical index into the retained snapshots
}

// New returns a history holding only the initial state.
func New(initial project.State) *History {
	h := &History{n: 1}
	h.buf[0] = NewSnapshot(initial)
	return h
}

func (h *History) at(i int) Snapshot {
	return h.buf[(h.start+i)%Capacity]
}

// Commit records a new snapshot. Snapshots after the cursor (the redo branch)
// are discarded, and the oldest snapshot is evicted once capacity is exceeded.
// The cursor then points at the new snapshot.
func (h *History) Commit(state project.State) {
	h.n = h.cursor + 1
	if h.n == Capacity {
		h.start = (h.start + 1) % Capacity
		h.n--
	}
	h.buf[(h.start+h.n)%Capacity] = NewSnapshot(state)
	h.n++
	h.cursor = h.n - 1
}

// Undo moves the cursor back one snapshot. At the oldest snapshot it is a
// no-op and reports false.
func (h *History) Undo() (Snapshot, bool) {
	if h.cursor == 0 {
		return h.Current(), false
	}
	h.cursor--
	return h.Current(), true
}

// Redo moves the cursor forward one snapshot. At the newest snapshot it is a
// no-op and reports false.
func (h *History) Redo() (Snapshot, bool) {
	if h.cursor == h.n-1 {
		return h.Current(), false
	}
	h.cursor++
	return h.Current(), true
}

// Current returns the snapshot under the cursor.
func (h *History) Current() Snapshot {
	return h.at(h.cursor)
}

// CanUndo reports whether Undo would move the cursor.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether Redo would move the cursor.
func (h *History) CanRedo() bool { return h.cursor < h.n-1 }

// Len returns the number of retained snapshots.
func (h *History) Len() int { return h.n }

// Cursor returns the logical index of the current snapshot.
func (h *History) Cursor() int { return h.cursor }

// Snapshots returns the retained snapshots, oldest first, as plain states.
func (h *History) Snapshots() []project.State {
	out := make([]project.State, h.n)
	for i := range out {
		out[i] = h.at(i).Items()
	}
	return out
}

// Restore rebuilds a history from persisted states. Only the newest Capacity
// states are kept. A cursor that falls before the kept states lands on the
// oldest one, and a cursor past the end lands on the newest.
// An empty list restores a history holding a single empty state.
func Restore(states []project.State, cursor int) *History {
	if len(states) == 0 {
		return New(project.State{})
	}

	if drop := len(states) - Capacity; drop > 0 {
		states = states[drop:]
		cursor -= drop
	}
	switch {
	case cursor < 0:
		cursor = 0
	case cursor >= len(states):
		cursor = len(states) - 1
	}

	h := &History{n: len(states), cursor: cursor}
	for i, s := range states {
		h.buf[i] = NewSnapshot(s)
	}
	return h
}
