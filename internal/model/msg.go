package model

import "time"

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// FrameMsg is sent on the frame boundary after deferred effects were queued.
type FrameMsg struct{}

// AnimationTickMsg advances the hero entrance animation.
type AnimationTickMsg struct {
	At time.Time
}

// TransitionRecordedMsg is sent when a transition was written to the trace.
type TransitionRecordedMsg struct {
	Seq int
}
