package trace

import (
	"database/sql"
	"eomarket/internal/model"
	"time"

	"github.com/google/uuid"
)

// Recorder numbers the transitions of one program run. Next is called from
// the update loop only; the writes themselves may happen elsewhere.
type Recorder struct {
	db      *sql.DB
	session string
	seq     int
}

// NewRecorder starts a new session on db.
func NewRecorder(db *sql.DB) *Recorder {
	return &Recorder{db: db, session: uuid.NewString()}
}

func (r *Recorder) DB() *sql.DB { return r.db }
func (r *Recorder) Session() string { return r.session }

// Next builds the transition for event given the resulting state.
func (r *Recorder) Next(event string, state model.NavigationState, scrollY int) model.Transition {
	r.seq++
	return model.Transition{
		SessionID:  r.session,
		Seq:        r.seq,
		Event:      event,
		ActivePage: state.ActivePage,
		Overlay:    state.Overlay.String(),
		Layout:     state.Layout.String(),
		ScrollY:    scrollY,
		NavHidden:  !state.BottomNavVisible(),
		RecordedAt: time.Now(),
	}
}
