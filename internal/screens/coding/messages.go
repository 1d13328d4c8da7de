package coding

import (
	"time"

	"github.com/abhisek/prepdrill/internal/evaluate"
)

// runDoneMsg is sent when the run-code oracle resolves; the output is
// applied to the controller's console on the event loop.
type runDoneMsg struct {
	Output string
	Err    error
}

// submitDoneMsg is sent when the evaluate-code oracle resolves.
// TimeSpent is the elapsed seconds snapshotted at submission.
type submitDoneMsg struct {
	Eval      *evaluate.CodeEvaluation
	TimeSpent int
	Err       error
}

// clockTickMsg refreshes the elapsed-time display once a second.
type clockTickMsg time.Time

// persistDoneMsg confirms the history append finished.
type persistDoneMsg struct {
	Err error
}
