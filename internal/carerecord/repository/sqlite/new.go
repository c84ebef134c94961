// Package sqlite persists care records in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"care-companion/internal/carerecord/repository"
	pkgLog "care-companion/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	user_id    TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	age        INTEGER NOT NULL,
	conditions TEXT NOT NULL DEFAULT '[]',
	allergies  TEXT NOT NULL DEFAULT '[]',
	ai_mode    TEXT NOT NULL DEFAULT 'hybrid'
);

CREATE TABLE IF NOT EXISTS medications (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	name       TEXT NOT NULL,
	dosage     TEXT NOT NULL,
	times      TEXT NOT NULL DEFAULT '[]',
	notes      TEXT NOT NULL DEFAULT '',
	active     INTEGER NOT NULL DEFAULT 1,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_medications_user ON medications(user_id);

CREATE TABLE IF NOT EXISTS vitals (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	type        TEXT NOT NULL,
	value       REAL NOT NULL,
	secondary   REAL NOT NULL DEFAULT 0,
	unit        TEXT NOT NULL DEFAULT '',
	notes       TEXT NOT NULL DEFAULT '',
	recorded_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_vitals_user_time ON vitals(user_id, recorded_at);

CREATE TABLE IF NOT EXISTS appointments (
	id             TEXT PRIMARY KEY,
	user_id        TEXT NOT NULL,
	title          TEXT NOT NULL,
	location       TEXT NOT NULL DEFAULT '',
	doctor         TEXT NOT NULL DEFAULT '',
	notes          TEXT NOT NULL DEFAULT '',
	starts_at      TEXT NOT NULL,
	reminder_id    TEXT NOT NULL DEFAULT '',
	calendar_event TEXT NOT NULL DEFAULT '',
	created_at     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_appointments_user ON appointments(user_id);
`

// Repo is the SQLite-backed care-record repository.
type Repo struct {
	db *sql.DB
	l  pkgLog.Logger
}

var _ repository.Repository = (*Repo)(nil)

// Open opens (creating if needed) the SQLite database at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	// SQLite handles one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)
	return db, nil
}

// New creates the repository and ensures the schema exists.
func New(ctx context.Context, db *sql.DB, l pkgLog.Logger) (*Repo, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Repo{db: db, l: l}, nil
}

// timeColumn formats a timestamp for storage. Time columns are compared
// and ordered lexically, so every value is normalized to UTC first —
// mixed offsets would break chronological ordering otherwise.
func timeColumn(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
