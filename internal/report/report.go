// Package report builds the printable summary of a project and renders it as
// an HTML document or a terminal report.
package report

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/theirongolddev/pointplan/internal/budget"
	"github.com/theirongolddev/pointplan/internal/catalog"
	"github.com/theirongolddev/pointplan/internal/cli"
	"github.com/theirongolddev/pointplan/internal/pricing"
	"github.com/theirongolddev/pointplan/internal/project"
)

// MinBarPercent is the narrowest category bar drawn, so small shares stay visible.
const MinBarPercent = 15

const (
	defaultSlug  = "estudiante"
	fallbackName = "Uncategorized"
	fallbackHex  = "#666666"
)

// Meta identifies who the report is for.
type Meta struct {
	StudentName string
	Date        time.Time
	Generated   time.Time
}

// Entry is one item of the report.
type Entry struct {
	Item      project.Item
	Component catalog.Component
	Breakdown pricing.Breakdown
}

// Chips returns how many quantity chips to draw.
func (e Entry) Chips() int { return min(e.Item.Quantity, cli.MaxChips) }

// More returns the copies beyond the drawn chips.
func (e Entry) More() int { return max(e.Item.Quantity-cli.MaxChips, 0) }

// Group collects the entries of one category.
type Group struct {
	Category catalog.Category
	Entries  []Entry
	Total    int
	Percent  float64 // share of all spent points, 0-100
}

// BarWidth is the drawn bar width in percent, never below MinBarPercent.
func (g Group) BarWidth() float64 {
	return max(g.Percent, MinBarPercent)
}

// Report is the read-only view rendered by WriteHTML and RenderText.
type Report struct {
	Meta
	Initial   int
	Spent     int
	Remaining int
	Copies    int
	Over      bool
	Groups    []Group
}

// Build groups the project's items by category in order of first
// appearance. Items whose component is not in the catalog are left out.
func Build(items project.State, cat *catalog.Catalog, sum budget.Summary, meta Meta) Report {
	r := Report{
		Meta:      meta,
		Initial:   sum.Initial,
		Spent:     sum.Spent,
		Remaining: sum.Remaining,
		Copies:    sum.Copies,
		Over:      sum.Over,
	}
	if r.Generated.IsZero() {
		r.Generated = time.Now()
	}

	index := make(map[string]int)
	for _, it := range items {
		comp, ok := cat.Component(it.ComponentID)
		if !ok {
			continue
		}

		gi, seen := index[comp.CategoryID]
		if !seen {
			category, ok := cat.Category(comp.CategoryID)
			if !ok {
				category = catalog.Category{ID: comp.CategoryID, Name: fallbackName, Color: fallbackHex}
			}
			gi = len(r.Groups)
			index[comp.CategoryID] = gi
			r.Groups = append(r.Groups, Group{Category: category})
		}

		b := pricing.ComputeBreakdown(comp.BasePoints, it.Quantity)
		g := &r.Groups[gi]
		g.Entries = append(g.Entries, Entry{Item: it, Component: comp, Breakdown: b})
		g.Total += b.Total
	}

	for i := range r.Groups {
		if r.Spent > 0 {
			r.Groups[i].Percent = float64(r.Groups[i].Total) / float64(r.Spent) * 100
		}
	}
	return r
}

var whitespace = regexp.MustCompile(`\s+`)

// Filename returns the export file name for a student, e.g.
// "proyecto-final-ana-ruiz.html".
func Filename(studentName string) string {
	slug := whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(studentName)), "-")
	slug = strings.ReplaceAll(slug, string(filepath.Separator), "-")
	if slug == "" {
		slug = defaultSlug
	}
	return "proyecto-final-" + slug + ".html"
}
