package trace

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS transitions (
    id          INTEGER PRIMARY KEY,
    session_id  TEXT NOT NULL,
    seq         INTEGER NOT NULL,
    event       TEXT NOT NULL,
    active_page TEXT NOT NULL,
    overlay     TEXT NOT NULL CHECK(overlay IN ('none','profile','menu')),
    layout      TEXT NOT NULL CHECK(layout IN ('desktop','mobile')),
    scroll_y    INTEGER NOT NULL DEFAULT 0,
    nav_hidden  INTEGER NOT NULL CHECK(nav_hidden IN (0,1)),
    recorded_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
    UNIQUE(session_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_transitions_session ON transitions(session_id, seq);
`

// Open opens or creates the trace database and initializes the schema.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace database: %w", err)
	}
	// Transitions are written from concurrent commands; one connection
	// serializes them instead of failing with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping trace database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}
