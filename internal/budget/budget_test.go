package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/pointplan/internal/catalog"
	"github.com/theirongolddev/pointplan/internal/project"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		[]catalog.Category{{ID: "cat", Name: "Cat"}},
		[]catalog.Component{
			{ID: "thirty", Name: "Thirty", BasePoints: 30, CategoryID: "cat"},
			{ID: "twenty", Name: "Twenty", BasePoints: 20, CategoryID: "cat"},
			{ID: "big", Name: "Big", BasePoints: 120, CategoryID: "cat"},
		},
	)
	require.NoError(t, err)
	return c
}

func TestAddTwiceExample(t *testing.T) {
	c := testCatalog(t)

	s, _ := project.AddOrIncrement(project.State{}, c, "thirty", nil)
	s, _ = project.AddOrIncrement(s, c, "thirty", nil)

	spent := TotalSpent(s, c)
	assert.Equal(t, 54, spent)
	assert.Equal(t, 46, Remaining(100, spent))
}

func TestTotalSpent_SkipsOrphans(t *testing.T) {
	c := testCatalog(t)
	s := project.State{
		{ID: "a", ComponentID: "twenty", Quantity: 3},
		{ID: "o", ComponentID: "retired", Quantity: 4},
	}

	assert.Equal(t, 50, TotalSpent(s, c))
}

func TestRemaining_MayBeNegative(t *testing.T) {
	assert.Equal(t, -20, Remaining(100, 120))
}

func TestPreviewRemaining_UsesBasePrice(t *testing.T) {
	c := testCatalog(t)
	comp, _ := c.Component("thirty")

	// Already holding one copy: the real second copy costs 24, the preview
	// still charges the full 30.
	s := project.State{{ID: "a", ComponentID: "thirty", Quantity: 1}}
	remaining := Remaining(100, TotalSpent(s, c))

	assert.Equal(t, 40, PreviewRemaining(remaining, comp))

	after, _ := project.AddOrIncrement(s, c, "thirty", nil)
	assert.Equal(t, 46, Remaining(100, TotalSpent(after, c)))
}

func TestWouldOverspend(t *testing.T) {
	c := testCatalog(t)
	big, _ := c.Component("big")
	twenty, _ := c.Component("twenty")

	assert.True(t, WouldOverspend(100, big))
	assert.False(t, WouldOverspend(20, twenty))
	assert.True(t, WouldOverspend(19, twenty))
}

func TestEvaluate(t *testing.T) {
	c := testCatalog(t)
	s := project.State{
		{ID: "a", ComponentID: "thirty", Quantity: 2},
		{ID: "o", ComponentID: "gone", Quantity: 1},
		{ID: "b", ComponentID: "big", Quantity: 1},
	}

	sum := Evaluate(s, c, 100)
	assert.Equal(t, 174, sum.Spent)
	assert.Equal(t, -74, sum.Remaining)
	assert.True(t, sum.Over)
	assert.Equal(t, 3, sum.Copies)
	assert.InDelta(t, 1.74, sum.UsedPercent, 1e-9)
	assert.Equal(t, []string{"o"}, sum.Orphans)
	require.Len(t, sum.Lines, 2)
	assert.Equal(t, "a", sum.Lines[0].Item.ID)
	assert.Equal(t, 54, sum.Lines[0].Breakdown.Total)
}

func TestEvaluate_Empty(t *testing.T) {
	sum := Evaluate(nil, testCatalog(t), 100)
	assert.Equal(t, 0, sum.Spent)
	assert.Equal(t, 100, sum.Remaining)
	assert.False(t, sum.Over)
	assert.Empty(t, sum.Lines)
}
