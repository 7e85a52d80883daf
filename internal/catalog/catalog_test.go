package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, 45, c.Len())
	assert.Len(t, c.Categories(), 8)

	comp, ok := c.Component("realtime-unity")
	require.True(t, ok)
	assert.Equal(t, 40, comp.BasePoints)
	assert.Equal(t, IconZap, comp.Icon)

	cat, ok := c.Category(comp.CategoryID)
	require.True(t, ok)
	assert.Equal(t, "experimental-tech", cat.ID)
}

func TestLookupMissIsNotAnError(t *testing.T) {
	c := Default()

	_, ok := c.Component("does-not-exist")
	assert.False(t, ok)

	_, ok = c.Category("does-not-exist")
	assert.False(t, ok)
}

func TestComponentsIn_PreservesOrder(t *testing.T) {
	c := Default()

	comps := c.ComponentsIn("physical-media")
	require.Len(t, comps, 5)
	assert.Equal(t, "packaging", comps[0].ID)
	assert.Equal(t, "pop", comps[4].ID)

	assert.Empty(t, c.ComponentsIn("nope"))
}

func TestCatalogIsImmutable(t *testing.T) {
	c := Default()

	comps := c.Components()
	comps[0].BasePoints = 999

	fresh, _ := c.Component(comps[0].ID)
	assert.NotEqual(t, 999, fresh.BasePoints)
}

func TestNew_Validation(t *testing.T) {
	cats := []Category{{ID: "a", Name: "A"}}

	tests := []struct {
		name  string
		cats  []Category
		comps []Component
		want  error
	}{
		{"duplicate category", append(cats, Category{ID: "a"}), nil, ErrDuplicateID},
		{"duplicate component", cats, []Component{
			{ID: "x", BasePoints: 1, CategoryID: "a"},
			{ID: "x", BasePoints: 2, CategoryID: "a"},
		}, ErrDuplicateID},
		{"zero points", cats, []Component{{ID: "x", CategoryID: "a"}}, ErrInvalidPoints},
		{"unknown category", cats, []Component{{ID: "x", BasePoints: 3, CategoryID: "b"}}, ErrUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cats, tt.comps)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestParseTOML(t *testing.T) {
	doc := `
[[category]]
id = "print"
name = "Print"
color = "#8B5CF6"
icon = "Package"

[[component]]
id = "poster"
name = "Poster"
description = "A poster"
base_points = 12
category = "print"
icon = "no-such-icon"
`
	c, err := Parse([]byte(doc))
	require.NoError(t, err)

	cat, ok := c.Category("print")
	require.True(t, ok)
	assert.Equal(t, IconPackage, cat.Icon)

	comp, ok := c.Component("poster")
	require.True(t, ok)
	assert.Equal(t, 12, comp.BasePoints)
	assert.Equal(t, IconDefault, comp.Icon)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 45, c.Len())
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, Write(Default(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Components(), c.Components())
	assert.Equal(t, Default().Categories(), c.Categories())
}

func TestParseIcon(t *testing.T) {
	assert.Equal(t, IconMapPin, ParseIcon("map-pin"))
	assert.Equal(t, IconMapPin, ParseIcon("  MAP-PIN "))
	assert.Equal(t, IconDefault, ParseIcon(""))
	assert.Equal(t, "●", ParseIcon("unknown").Glyph())
}
