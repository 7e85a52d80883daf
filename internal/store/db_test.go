package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/pointplan/internal/project"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "pointplan.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoadProject_NothingSaved(t *testing.T) {
	db := openTestDB(t)

	rec, notice, err := db.LoadProject(DefaultSlot, 100)
	assert.ErrorIs(t, err, ErrNoSavedProject)
	assert.Nil(t, notice)
	assert.Empty(t, rec.Items)
	assert.Equal(t, 100, rec.Budget)
}

func TestSaveLoadProject(t *testing.T) {
	db := openTestDB(t)
	rec := Record{
		Items:  project.State{{ID: "logo-1", ComponentID: "logo", Quantity: 2}},
		Budget: 100,
	}
	require.NoError(t, db.SaveProject(DefaultSlot, rec))

	got, notice, err := db.LoadProject(DefaultSlot, 100)
	require.NoError(t, err)
	assert.Nil(t, notice)
	assert.Equal(t, rec, got)

	_, ok := db.SavedAt(DefaultSlot)
	assert.True(t, ok)

	// Saving again replaces the slot.
	require.NoError(t, db.SaveProject(DefaultSlot, Record{Budget: 90}))
	got, _, err = db.LoadProject(DefaultSlot, 100)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
	assert.Equal(t, 90, got.Budget)
}

func TestLoadProject_CorruptRecord(t *testing.T) {
	db := openTestDB(t)
	_, err := db.db.Exec(`INSERT INTO saved_projects (slot, record, saved_at) VALUES (?, ?, ?)`,
		DefaultSlot, "{not json", "2026-01-01T00:00:00Z")
	require.NoError(t, err)

	rec, notice, err := db.LoadProject(DefaultSlot, 100)
	require.NoError(t, err)
	require.NotNil(t, notice)
	assert.Empty(t, rec.Items)
}

func TestSessionRoundTrip(t *testing.T) {
	db := openTestDB(t)

	_, found, _, err := db.LoadSession(DefaultSlot)
	require.NoError(t, err)
	assert.False(t, found)

	st := SessionState{
		Snapshots: []project.State{
			nil,
			{{ID: "a", ComponentID: "logo", Quantity: 1}},
			{{ID: "a", ComponentID: "logo", Quantity: 2}},
		},
		Cursor: 1,
		Budget: 100,
	}
	require.NoError(t, db.SaveSession(DefaultSlot, st))

	got, found, notice, err := db.LoadSession(DefaultSlot)
	require.NoError(t, err)
	require.True(t, found)
	assert.Nil(t, notice)
	assert.Equal(t, 1, got.Cursor)
	assert.Equal(t, 100, got.Budget)
	require.Len(t, got.Snapshots, 3)
	assert.Empty(t, got.Snapshots[0])
	assert.Equal(t, 2, got.Snapshots[2][0].Quantity)

	// A shorter history replaces the longer one entirely.
	require.NoError(t, db.SaveSession(DefaultSlot, SessionState{Snapshots: []project.State{{}}, Budget: 100}))
	got, _, _, err = db.LoadSession(DefaultSlot)
	require.NoError(t, err)
	assert.Len(t, got.Snapshots, 1)
}

