package model

import "time"

// Transition is one dispatched event and the navigation state it produced.
type Transition struct {
	ID         int64
	SessionID  string
	Seq        int
	Event      string
	ActivePage string
	Overlay    string
	Layout     string
	ScrollY    int
	NavHidden  bool
	RecordedAt time.Time
}

// TraceSession summarizes the transitions of one program run.
type TraceSession struct {
	ID          string
	Transitions int
	StartedAt   time.Time
	LastPage    string
}
