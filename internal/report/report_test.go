package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/pointplan/internal/budget"
	"github.com/theirongolddev/pointplan/internal/catalog"
	"github.com/theirongolddev/pointplan/internal/project"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		[]catalog.Category{
			{ID: "brand", Name: "Brand", Color: "#3AA99F"},
			{ID: "print", Name: "Print", Color: "red; background: url(x)"},
		},
		[]catalog.Component{
			{ID: "logo", Name: "Logo", BasePoints: 30, CategoryID: "brand"},
			{ID: "poster", Name: "Poster", BasePoints: 20, CategoryID: "print"},
			{ID: "palette", Name: "Palette", BasePoints: 10, CategoryID: "brand"},
		},
	)
	require.NoError(t, err)
	return c
}

func buildTest(t *testing.T, items project.State) Report {
	t.Helper()
	c := testCatalog(t)
	sum := budget.Evaluate(items, c, 100)
	return Build(items, c, sum, Meta{
		StudentName: "Ana Ruiz",
		Date:        time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Generated:   time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	})
}

func TestBuild_GroupsInFirstAppearanceOrder(t *testing.T) {
	r := buildTest(t, project.State{
		{ID: "1", ComponentID: "poster", Quantity: 1},
		{ID: "2", ComponentID: "logo", Quantity: 2},
		{ID: "3", ComponentID: "ghost", Quantity: 1},
		{ID: "4", ComponentID: "palette", Quantity: 1},
	})

	require.Len(t, r.Groups, 2)
	assert.Equal(t, "print", r.Groups[0].Category.ID)
	assert.Equal(t, "brand", r.Groups[1].Category.ID)
	assert.Len(t, r.Groups[1].Entries, 2)

	// logo ×2 = 54, palette = 10, poster = 20
	assert.Equal(t, 84, r.Spent)
	assert.Equal(t, 64, r.Groups[1].Total)
	assert.InDelta(t, 76.19, r.Groups[1].Percent, 0.01)
	assert.InDelta(t, 23.81, r.Groups[0].Percent, 0.01)
	assert.Equal(t, 4, r.Copies)
}

func TestBuild_EmptyProject(t *testing.T) {
	r := buildTest(t, nil)
	assert.Empty(t, r.Groups)
	assert.Equal(t, 100, r.Remaining)
}

func TestGroupBarWidthFloor(t *testing.T) {
	assert.Equal(t, float64(MinBarPercent), Group{Percent: 4}.BarWidth())
	assert.Equal(t, 60.0, Group{Percent: 60}.BarWidth())
}

func TestEntryChips(t *testing.T) {
	e := Entry{Item: project.Item{Quantity: 13}}
	assert.Equal(t, 10, e.Chips())
	assert.Equal(t, 3, e.More())

	e = Entry{Item: project.Item{Quantity: 4}}
	assert.Equal(t, 4, e.Chips())
	assert.Equal(t, 0, e.More())
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "proyecto-final-ana-ruiz.html", Filename("Ana  Ruiz"))
	assert.Equal(t, "proyecto-final-estudiante.html", Filename(""))
	assert.Equal(t, "proyecto-final-estudiante.html", Filename("   "))
	assert.Equal(t, "proyecto-final-a-b.html", Filename("a/b"))
}

func TestWriteHTML(t *testing.T) {
	r := buildTest(t, project.State{
		{ID: "1", ComponentID: "logo", Quantity: 12, Justification: "**bold** choice <script>alert(1)</script>"},
		{ID: "2", ComponentID: "poster", Quantity: 1},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "<title>Final Project - Ana Ruiz</title>")
	assert.Contains(t, out, "June 1, 2026")
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Equal(t, 11, strings.Count(out, `class="chip" style`), "10 logo chips plus 1 poster chip")
	assert.Contains(t, out, `<span class="chip-more">+2</span>`)
	assert.Contains(t, out, "12×")
	assert.Contains(t, out, "background-color: #3AA99F26", "tint uses category color")
	// An unsafe color is replaced, never emitted.
	assert.NotContains(t, out, "url(x)")
	assert.Contains(t, out, "#666666")
}

func TestWriteHTML_OverBudgetClass(t *testing.T) {
	r := buildTest(t, project.State{{ID: "1", ComponentID: "logo", Quantity: 5}})
	r.Remaining, r.Over = -20, true

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, r))
	assert.Contains(t, buf.String(), `class="negative">-20 pts`)
}

func TestRenderText(t *testing.T) {
	r := buildTest(t, project.State{
		{ID: "1", ComponentID: "logo", Quantity: 2, Justification: strings.Repeat("word ", 30)},
	})

	out := RenderText(r, 60)
	assert.Contains(t, out, "Ana Ruiz")
	assert.Contains(t, out, "Distribution by Category")
	assert.Contains(t, out, "Logo  2× ■■  54 pts")
	assert.Contains(t, out, "46 pts left")
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "word") {
			assert.LessOrEqual(t, lipgloss.Width(line), 60)
		}
	}
}

func TestRenderText_Empty(t *testing.T) {
	out := RenderText(buildTest(t, nil), 80)
	assert.Contains(t, out, "No components selected.")
}
