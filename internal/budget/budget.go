// Package budget derives spent and remaining points from a project state.
package budget

import (
	"github.com/theirongolddev/pointplan/internal/catalog"
	"github.com/theirongolddev/pointplan/internal/pricing"
	"github.com/theirongolddev/pointplan/internal/project"
)

// DefaultInitial is the starting point budget of a project.
const DefaultInitial = 100

// Line is one resolvable project item with its priced breakdown.
type Line struct {
	Item      project.Item
	Component catalog.Component
	Breakdown pricing.Breakdown
}

// Summary holds the full budget evaluation of a project state.
type Summary struct {
	Initial     int
	Spent       int
	Remaining   int
	UsedPercent float64 // Spent / Initial, unclamped; 0 when Initial <= 0
	Over        bool
	Copies      int
	Lines       []Line
	Orphans     []string // ids of items whose component is not in the catalog
}

// TotalSpent sums the discounted totals of every item. Items whose
// component is missing from the catalog contribute nothing.
func TotalSpent(state project.State, lookup project.Lookup) int {
	total := 0
	for _, it := range state {
		comp, ok := lookup.Component(it.ComponentID)
		if !ok || it.Quantity < 1 {
			continue
		}
		total += pricing.Total(comp.BasePoints, it.Quantity)
	}
	return total
}

// Remaining returns initial minus spent. Negative means over budget.
func Remaining(initial, spent int) int {
	return initial - spent
}

// PreviewRemaining projects the balance after dropping one copy of comp.
// It always charges the base price, even when the project already holds the
// component and the real charge would be discounted.
func PreviewRemaining(currentRemaining int, comp catalog.Component) int {
	return currentRemaining - comp.BasePoints
}

// WouldOverspend reports whether dropping comp would push the balance below zero.
func WouldOverspend(currentRemaining int, comp catalog.Component) bool {
	return PreviewRemaining(currentRemaining, comp) < 0
}

// Evaluate computes the full summary of a state against an initial budget.
func Evaluate(state project.State, lookup project.Lookup, initial int) Summary {
	s := Summary{Initial: initial}

	resolved := make(project.State, 0, len(state))
	for _, it := range state {
		comp, ok := lookup.Component(it.ComponentID)
		if !ok {
			s.Orphans = append(s.Orphans, it.ID)
			continue
		}
		b := pricing.ComputeBreakdown(comp.BasePoints, it.Quantity)
		s.Lines = append(s.Lines, Line{Item: it, Component: comp, Breakdown: b})
		s.Spent += b.Total
		resolved = append(resolved, it)
	}
	s.Copies = project.TotalCopies(resolved)

	s.Remaining = Remaining(initial, s.Spent)
	s.Over = s.Remaining < 0
	if initial > 0 {
		s.UsedPercent = float64(s.Spent) / float64(initial)
	}
	return s
}
