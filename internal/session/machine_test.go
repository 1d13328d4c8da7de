package session

import (
	"errors"
	"testing"

	"github.com/abhisek/prepdrill/internal/timer"
)

func testItem(prompt string) Item {
	return Item{
		Prompt:          prompt,
		Topic:           "concurrency",
		Difficulty:      LevelMedium,
		ExpectedSeconds: 120,
		KeyPoints:       []string{"goroutines", "channels"},
	}
}

func passingEval(score float64) Evaluation {
	return Evaluation{Score: score, Verdict: "average", NextDifficulty: "medium", ShouldContinue: true}
}

func newTestMachine(maxItems int) *Machine {
	return NewMachine(Config{
		Mode:            ModeInterview,
		Skills:          []string{"go"},
		StartDifficulty: LevelMedium,
		MaxItems:        maxItems,
	}, timer.Callbacks{})
}

func TestMachine_HappyPath(t *testing.T) {
	m := newTestMachine(2)
	if m.Status() != StatusSetup {
		t.Fatalf("initial status = %s, want setup", m.Status())
	}

	if err := m.Begin(testItem("q1")); err != nil {
		t.Fatal(err)
	}
	if m.Status() != StatusActive {
		t.Fatalf("status = %s, want active", m.Status())
	}
	if !m.Tracker().Running() {
		t.Error("expected tracker running while active")
	}

	if err := m.Review("an answer", passingEval(70)); err != nil {
		t.Fatal(err)
	}
	if m.Status() != StatusReviewing {
		t.Fatalf("status = %s, want reviewing", m.Status())
	}
	if m.Tracker().Running() {
		t.Error("expected tracker stopped in reviewing")
	}
	if m.History().Len() != 1 {
		t.Errorf("history len = %d, want 1", m.History().Len())
	}

	// Last allowed item: continuation permitted and budget hit → Completed.
	if err := m.Begin(testItem("q2")); err != nil {
		t.Fatal(err)
	}
	if err := m.Review("another answer", passingEval(85)); err != nil {
		t.Fatal(err)
	}
	if m.Status() != StatusCompleted {
		t.Fatalf("status = %s, want completed", m.Status())
	}
}

func TestMachine_OracleTerminationBeatsItemBudget(t *testing.T) {
	m := newTestMachine(5)
	if err := m.Begin(testItem("q1")); err != nil {
		t.Fatal(err)
	}

	eval := Evaluation{
		Score:             20,
		Verdict:           "weak",
		NextDifficulty:    "easy",
		ShouldContinue:    false,
		TerminationReason: "insufficient depth",
	}
	if err := m.Review("answer", eval); err != nil {
		t.Fatal(err)
	}

	if m.Status() != StatusTerminated {
		t.Fatalf("status = %s, want terminated after 1 of 5 items", m.Status())
	}
	if m.EndReason() != "insufficient depth" {
		t.Errorf("EndReason = %q", m.EndReason())
	}
	if m.TerminatedByWhom() != TerminatedByOracle {
		t.Errorf("TerminatedByWhom = %q, want oracle", m.TerminatedByWhom())
	}
}

func TestMachine_InvalidNextDifficultyKeepsCurrent(t *testing.T) {
	m := newTestMachine(5)
	if err := m.Begin(testItem("q1")); err != nil {
		t.Fatal(err)
	}

	eval := passingEval(60)
	eval.NextDifficulty = "impossible"
	if err := m.Review("answer", eval); err != nil {
		t.Fatal(err)
	}

	if m.Difficulty() != LevelMedium {
		t.Errorf("Difficulty = %q, want pre-evaluation medium", m.Difficulty())
	}
	req := m.NextRequest()
	if req.Difficulty != LevelMedium {
		t.Errorf("NextRequest difficulty = %q, want medium", req.Difficulty)
	}
}

func TestMachine_NextRequestCarriesPriorPrompts(t *testing.T) {
	m := newTestMachine(5)
	if err := m.Begin(testItem("q1")); err != nil {
		t.Fatal(err)
	}
	eval := passingEval(75)
	eval.NextDifficulty = "hard"
	if err := m.Review("answer", eval); err != nil {
		t.Fatal(err)
	}

	req := m.NextRequest()
	if len(req.PreviousQuestions) != 1 || req.PreviousQuestions[0] != "q1" {
		t.Errorf("PreviousQuestions = %v, want [q1]", req.PreviousQuestions)
	}
	if req.Difficulty != LevelHard {
		t.Errorf("Difficulty = %q, want hard", req.Difficulty)
	}
}

func TestMachine_TransitionPreconditions(t *testing.T) {
	m := newTestMachine(5)

	// Review before any item is a caller bug.
	if err := m.Review("answer", passingEval(50)); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Review in setup: err = %v, want ErrInvalidTransition", err)
	}

	if err := m.Begin(testItem("q1")); err != nil {
		t.Fatal(err)
	}

	// Beginning the next item with the current one unrecorded is a bug.
	if err := m.Begin(testItem("q2")); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Begin while active: err = %v, want ErrInvalidTransition", err)
	}

	if err := m.Review("answer", passingEval(50)); err != nil {
		t.Fatal(err)
	}

	// Reviewing is not re-entrant.
	if err := m.Review("again", passingEval(50)); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second Review: err = %v, want ErrInvalidTransition", err)
	}
}

func TestMachine_BeginRejectsZeroBudgetItem(t *testing.T) {
	m := newTestMachine(5)
	item := testItem("q1")
	item.ExpectedSeconds = 0
	if err := m.Begin(item); err == nil {
		t.Error("expected error for an item without a time budget")
	}
}

func TestMachine_AbortFromActive(t *testing.T) {
	m := newTestMachine(5)
	if err := m.Begin(testItem("q1")); err != nil {
		t.Fatal(err)
	}

	m.Abort("")

	if m.Status() != StatusTerminated {
		t.Fatalf("status = %s, want terminated", m.Status())
	}
	if m.TerminatedByWhom() != TerminatedByUser {
		t.Errorf("TerminatedByWhom = %q, want user", m.TerminatedByWhom())
	}
	if m.EndReason() == "" {
		t.Error("expected a default abort reason")
	}
	if m.Tracker().Running() {
		t.Error("expected tracker cancelled on abort")
	}

	// Terminal states reject new items.
	if err := m.Begin(testItem("q2")); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Begin after terminate: err = %v, want ErrInvalidTransition", err)
	}
}

func TestMachine_RestartClearsEverything(t *testing.T) {
	m := newTestMachine(5)
	oldID := m.ID()
	if err := m.Begin(testItem("q1")); err != nil {
		t.Fatal(err)
	}
	eval := passingEval(60)
	eval.NextDifficulty = "hard"
	if err := m.Review("answer", eval); err != nil {
		t.Fatal(err)
	}

	m.Restart()

	if m.Status() != StatusSetup {
		t.Errorf("status = %s, want setup", m.Status())
	}
	if m.ID() == oldID {
		t.Error("expected a fresh session ID after restart")
	}
	if m.History().Len() != 0 {
		t.Errorf("history len = %d, want 0", m.History().Len())
	}
	if m.Difficulty() != LevelMedium {
		t.Errorf("difficulty = %q, want configured start medium", m.Difficulty())
	}
	if m.CurrentItem() != nil {
		t.Error("expected no current item after restart")
	}
}

func TestMachine_RecordCapturesElapsedTime(t *testing.T) {
	m := newTestMachine(5)
	if err := m.Begin(testItem("q1")); err != nil {
		t.Fatal(err)
	}
	if err := m.Review("answer", passingEval(70)); err != nil {
		t.Fatal(err)
	}

	rec := m.History().Records()[0]
	if rec.TimeSpentSeconds < 0 {
		t.Errorf("TimeSpentSeconds = %d, want >= 0", rec.TimeSpentSeconds)
	}
	if rec.Item.Prompt != "q1" || rec.Response != "answer" {
		t.Errorf("record = %+v, item/response not captured", rec)
	}
}
