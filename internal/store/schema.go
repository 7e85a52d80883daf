package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS saved_projects (
    slot        TEXT PRIMARY KEY,
    record      TEXT NOT NULL,
    saved_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
    slot        TEXT PRIMARY KEY,
    budget      INTEGER NOT NULL,
    cursor      INTEGER NOT NULL,
    updated_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS session_snapshots (
    slot        TEXT NOT NULL REFERENCES sessions(slot) ON DELETE CASCADE,
    position    INTEGER NOT NULL,
    items       TEXT NOT NULL,
    PRIMARY KEY (slot, position)
);
`
