package trace

import (
	"database/sql"
	"eomarket/internal/model"
	"fmt"
	"time"
)

const timeLayout = "2006-01-02T15:04:05.000Z"

// InsertTransition appends one transition and returns its row id.
func InsertTransition(db *sql.DB, t model.Transition) (int64, error) {
	query := `
		INSERT INTO transitions (session_id, seq, event, active_page, overlay, layout, scroll_y, nav_hidden, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	recordedAt := t.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}
	hidden := 0
	if t.NavHidden {
		hidden = 1
	}

	result, err := db.Exec(query,
		t.SessionID, t.Seq, t.Event, t.ActivePage, t.Overlay, t.Layout, t.ScrollY, hidden,
		recordedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transition: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get transition id: %w", err)
	}
	return id, nil
}

// ListTransitions returns the transitions of a session in dispatch order.
// A limit of zero or less returns all of them.
func ListTransitions(db *sql.DB, sessionID string, limit int) ([]model.Transition, error) {
	query := `
		SELECT id, session_id, seq, event, active_page, overlay, layout, scroll_y, nav_hidden, recorded_at
		FROM transitions
		WHERE session_id = ?
		ORDER BY seq ASC
		LIMIT ?
	`
	if limit <= 0 {
		limit = -1
	}

	rows, err := db.Query(query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transitions: %w", err)
	}
	defer rows.Close()

	var results []model.Transition
	for rows.Next() {
		var t model.Transition
		var hidden int
		var recordedAt string
		if err := rows.Scan(&t.ID, &t.SessionID, &t.Seq, &t.Event, &t.ActivePage, &t.Overlay, &t.Layout, &t.ScrollY, &hidden, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transition row: %w", err)
		}
		t.NavHidden = hidden == 1
		t.RecordedAt, _ = time.Parse(timeLayout, recordedAt)
		results = append(results, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transition rows: %w", err)
	}

	return results, nil
}

// ListSessions returns one summary per recorded session, newest first.
func ListSessions(db *sql.DB) ([]model.TraceSession, error) {
	query := `
		SELECT
			t.session_id,
			COUNT(*),
			MIN(t.recorded_at),
			(SELECT l.active_page FROM transitions l
			 WHERE l.session_id = t.session_id
			 ORDER BY l.seq DESC LIMIT 1)
		FROM transitions t
		GROUP BY t.session_id
		ORDER BY MIN(t.recorded_at) DESC
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var results []model.TraceSession
	for rows.Next() {
		var s model.TraceSession
		var startedAt string
		if err := rows.Scan(&s.ID, &s.Transitions, &startedAt, &s.LastPage); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		s.StartedAt, _ = time.Parse(timeLayout, startedAt)
		results = append(results, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}

	return results, nil
}
