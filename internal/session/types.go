// Package session implements the assessment session engine: the item
// history, the adaptive difficulty controller, and the generic session
// state machine shared by interview, practice, and coding modes.
package session

// Mode identifies the kind of assessment a session runs.
type Mode string

const (
	ModeInterview Mode = "interview"
	ModePractice  Mode = "practice"
	ModeCoding    Mode = "coding"
)

// Status is the lifecycle state of a session.
type Status string

const (
	// StatusSetup holds configuration selection. Entered on construction
	// and on explicit restart.
	StatusSetup Status = "setup"

	// StatusActive means an item is selected and its time budget is ticking.
	StatusActive Status = "active"

	// StatusReviewing means an evaluation has been received and recorded;
	// the session waits for the next item or an end request.
	StatusReviewing Status = "reviewing"

	// StatusCompleted is terminal: the item budget was exhausted and the
	// last evaluation allowed continuation.
	StatusCompleted Status = "completed"

	// StatusTerminated is terminal: the oracle refused continuation or the
	// user aborted.
	StatusTerminated Status = "terminated"
)

// Terminal reports whether the status is an end state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusTerminated
}

// Item is an immutable question served within a session.
// Created by the question oracle; never mutated afterward.
type Item struct {
	// Prompt is the question text shown to the candidate.
	Prompt string

	// Topic is the subject area the oracle chose.
	Topic string

	// Difficulty is the level the item was generated at.
	Difficulty Level

	// ExpectedSeconds is the time budget for answering.
	ExpectedSeconds int

	// KeyPoints are the points a strong answer should cover. Passed back
	// to the evaluation oracle; not shown before answering.
	KeyPoints []string
}

// Evaluation is the oracle's judgment of a response. It is authoritative
// input, not computed locally; NextDifficulty is the raw oracle value and
// is validated by the difficulty controller before use.
type Evaluation struct {
	// Score is the primary numeric score (0-100).
	Score float64

	// Verdict is the qualitative judgment (e.g. "strong", "average").
	Verdict string

	// Feedback is free-form coaching text.
	Feedback string

	// NextDifficulty is the oracle's requested level for the next item.
	// Untrusted; clamped to the current level when unrecognized.
	NextDifficulty string

	// ShouldContinue is false when the oracle ends the session early.
	ShouldContinue bool

	// TerminationReason accompanies ShouldContinue=false.
	TerminationReason string

	// Detail carries the full mode-specific oracle payload
	// (*evaluate.InterviewEvaluation, *evaluate.PracticeEvaluation,
	// *evaluate.CodeEvaluation).
	Detail any
}

// Record is one completed item: what was asked, what was answered, how it
// was judged, and how long it took. Records are append-only history.
type Record struct {
	Item             Item
	Response         string
	Evaluation       Evaluation
	TimeSpentSeconds int
}
