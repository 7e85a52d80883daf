// Package store persists projects: the JSON record exchanged with files, and
// a SQLite database holding the saved project and the working session's
// undo history between CLI invocations.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/pointplan/internal/project"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DefaultSlot is the key projects and sessions are stored under.
const DefaultSlot = "default"

// ErrNoSavedProject indicates nothing has been saved under a slot yet.
var ErrNoSavedProject = errors.New("no saved project")

// DB is the SQLite-backed project store.
type DB struct {
	db     *sql.DB
	logger *slog.Logger
}

// SessionState is the persisted form of a working session: its history
// snapshots (oldest first), the cursor into them, and the budget.
type SessionState struct {
	Snapshots []project.State
	Cursor    int
	Budget    int
}

// Open opens or creates the database at the given path.
func Open(dbPath string, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening project db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db, logger: logger}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// SaveProject stores a record under slot, replacing any previous save.
func (d *DB) SaveProject(slot string, rec Record) error {
	if rec.Items == nil {
		rec.Items = project.State{}
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding project: %w", err)
	}

	_, err = d.db.Exec(`INSERT OR REPLACE INTO saved_projects (slot, record, saved_at)
		VALUES (?, ?, ?)`, slot, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving project: %w", err)
	}
	d.logger.Debug("project saved", "slot", slot, "items", len(rec.Items))
	return nil
}

// LoadProject reads the record saved under slot. It returns
// ErrNoSavedProject when nothing was saved. A stored record that cannot be
// parsed yields an empty record and a notice rather than an error.
func (d *DB) LoadProject(slot string, fallbackBudget int) (Record, *Notice, error) {
	var data string
	err := d.db.QueryRow("SELECT record FROM saved_projects WHERE slot = ?", slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{Items: project.State{}, Budget: fallbackBudget}, nil, ErrNoSavedProject
	}
	if err != nil {
		return Record{}, nil, fmt.Errorf("loading project: %w", err)
	}

	rec, notice := DecodeRecord([]byte(data), "saved project", fallbackBudget)
	if notice != nil {
		d.logger.Warn("saved project unreadable", "slot", slot, "reason", notice.Reason)
	}
	return rec, notice, nil
}

// SavedAt returns when the project under slot was last saved.
func (d *DB) SavedAt(slot string) (time.Time, bool) {
	var s string
	if err := d.db.QueryRow("SELECT saved_at FROM saved_projects WHERE slot = ?", slot).Scan(&s); err != nil {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	return t, err == nil
}

// SaveSession replaces the working session stored under slot.
func (d *DB) SaveSession(slot string, st SessionState) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO sessions (slot, budget, cursor, updated_at)
		VALUES (?, ?, ?, ?)`, slot, st.Budget, st.Cursor, now)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	// Delete old snapshots for this slot
	if _, err := tx.Exec("DELETE FROM session_snapshots WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("clearing snapshots: %w", err)
	}

	for pos, items := range st.Snapshots {
		if items == nil {
			items = project.State{}
		}
		data, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("encoding snapshot %d: %w", pos, err)
		}
		_, err = tx.Exec(`INSERT INTO session_snapshots (slot, position, items)
			VALUES (?, ?, ?)`, slot, pos, string(data))
		if err != nil {
			return fmt.Errorf("saving snapshot %d: %w", pos, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	d.logger.Debug("session saved", "slot", slot, "snapshots", len(st.Snapshots), "cursor", st.Cursor)
	return nil
}

// LoadSession reads the working session stored under slot. found is false
// when no session exists. Snapshots that fail to parse are replaced with an
// empty state and reported through the notice.
func (d *DB) LoadSession(slot string) (st SessionState, found bool, notice *Notice, err error) {
	err = d.db.QueryRow("SELECT budget, cursor FROM sessions WHERE slot = ?", slot).
		Scan(&st.Budget, &st.Cursor)
	if errors.Is(err, sql.ErrNoRows) {
		return SessionState{}, false, nil, nil
	}
	if err != nil {
		return SessionState{}, false, nil, fmt.Errorf("loading session: %w", err)
	}

	rows, err := d.db.Query(`SELECT position, items FROM session_snapshots
		WHERE slot = ? ORDER BY position`, slot)
	if err != nil {
		return SessionState{}, false, nil, fmt.Errorf("loading snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var pos int
		var data string
		if err := rows.Scan(&pos, &data); err != nil {
			return SessionState{}, false, nil, err
		}
		var items project.State
		if err := json.Unmarshal([]byte(data), &items); err != nil {
			notice = &Notice{Source: "undo history", Reason: err.Error()}
			items = project.State{}
		}
		st.Snapshots = append(st.Snapshots, project.Normalize(items, nil))
	}
	if err := rows.Err(); err != nil {
		return SessionState{}, false, nil, err
	}

	return st, true, notice, nil
}
