// Package project implements the pure transformations over a project's list
// of selected items. Every operation returns a fresh State and leaves its
// input untouched, so committed snapshots can never be edited in place.
package project

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/theirongolddev/pointplan/internal/catalog"
)

// Item is one distinct component placed in the project.
type Item struct {
	ID            string `json:"id"`
	ComponentID   string `json:"componentId"`
	Quantity      int    `json:"quantity"`
	Justification string `json:"justification"`
}

// State is the ordered list of items. Order is display order only.
type State []Item

// Patch holds the optional fields UpdateItem replaces.
type Patch struct {
	Quantity      *int
	Justification *string
}

// Lookup resolves component ids. *catalog.Catalog satisfies it.
type Lookup interface {
	Component(id string) (catalog.Component, bool)
}

// IDFunc generates a new item id for a component.
type IDFunc func(componentID string) string

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewItemID returns "<componentID>-<ULID>". ULIDs are monotonic within a
// process so ids stay unique even when generated in the same millisecond.
func NewItemID(componentID string) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return componentID + "-" + ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	if s == nil {
		return State{}
	}
	out := make(State, len(s))
	copy(out, s)
	return out
}

// Find returns the index of the item with the given id, or -1.
func (s State) Find(itemID string) int {
	for i, it := range s {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}

// FindComponent returns the index of the item holding componentID, or -1.
func (s State) FindComponent(componentID string) int {
	for i, it := range s {
		if it.ComponentID == componentID {
			return i
		}
	}
	return -1
}

// AddOrIncrement adds one copy of a component. An existing item for the
// component has its quantity raised by one and keeps its id; otherwise a new
// item with quantity 1 is appended. Unknown components leave state unchanged.
func AddOrIncrement(state State, lookup Lookup, componentID string, newID IDFunc) (State, bool) {
	if _, ok := lookup.Component(componentID); !ok {
		return state, false
	}

	out := state.Clone()
	if i := out.FindComponent(componentID); i >= 0 {
		out[i].Quantity++
		return out, false
	}

	if newID == nil {
		newID = NewItemID
	}
	out = append(out, Item{
		ID:          newID(componentID),
		ComponentID: componentID,
		Quantity:    1,
	})
	return out, true
}

// UpdateItem applies a patch to the item with the given id. Quantities below
// 1 are clamped to 1. An absent id is a no-op.
func UpdateItem(state State, itemID string, p Patch) State {
	i := state.Find(itemID)
	if i < 0 {
		return state
	}

	out := state.Clone()
	if p.Quantity != nil {
		out[i].Quantity = ClampQuantity(*p.Quantity)
	}
	if p.Justification != nil {
		out[i].Justification = *p.Justification
	}
	return out
}

// RemoveItem drops the item with the given id. An absent id is a no-op.
func RemoveItem(state State, itemID string) State {
	i := state.Find(itemID)
	if i < 0 {
		return state
	}

	out := make(State, 0, len(state)-1)
	out = append(out, state[:i]...)
	return append(out, state[i+1:]...)
}

// Reset returns an empty state.
func Reset() State {
	return State{}
}

// ClampQuantity raises anything below 1 to 1.
func ClampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

// TotalCopies returns the sum of all item quantities.
func TotalCopies(state State) int {
	n := 0
	for _, it := range state {
		n += it.Quantity
	}
	return n
}

// Normalize repairs state read from outside the process: items without an
// id get one, quantities are clamped, and repeated component ids are merged
// into the first occurrence so the one-item-per-component invariant holds.
func Normalize(state State, newID IDFunc) State {
	if newID == nil {
		newID = NewItemID
	}

	out := make(State, 0, len(state))
	seen := make(map[string]int, len(state))
	for _, it := range state {
		it.Quantity = ClampQuantity(it.Quantity)
		if idx, dup := seen[it.ComponentID]; dup {
			out[idx].Quantity += it.Quantity
			if out[idx].Justification == "" {
				out[idx].Justification = it.Justification
			}
			continue
		}
		if it.ID == "" {
			it.ID = newID(it.ComponentID)
		}
		seen[it.ComponentID] = len(out)
		out = append(out, it)
	}
	return out
}
