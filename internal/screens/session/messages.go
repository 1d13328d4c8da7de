package session

import (
	"github.com/abhisek/prepdrill/internal/session"
	"github.com/abhisek/prepdrill/internal/timer"
)

// questionReadyMsg is sent when the next question has been generated.
type questionReadyMsg struct {
	Item session.Item
	Err  error
}

// evaluationMsg is sent when the answer evaluation resolves.
type evaluationMsg struct {
	Response  string
	TimeSpent int
	Eval      session.Evaluation
	Err       error
}

// timerEventMsg carries tracker activity out of its goroutine: a
// one-second snapshot or the auto-submit signal.
type timerEventMsg struct {
	Snapshot   timer.Snapshot
	AutoSubmit bool
}

// persistDoneMsg confirms the history append finished.
type persistDoneMsg struct {
	Err error
}
