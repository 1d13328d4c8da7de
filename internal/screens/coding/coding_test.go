package coding

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	codingctl "github.com/abhisek/prepdrill/internal/coding"
	"github.com/abhisek/prepdrill/internal/evaluate"
	"github.com/abhisek/prepdrill/internal/llm"
	"github.com/abhisek/prepdrill/internal/store"
)

type stubRunner struct {
	result *evaluate.RunResult
	err    error
	calls  int
}

func (s *stubRunner) Run(context.Context, string, string) (*evaluate.RunResult, error) {
	s.calls++
	return s.result, s.err
}

type stubEvaluator struct {
	result *evaluate.CodeEvaluation
	err    error
	calls  int
}

func (s *stubEvaluator) Evaluate(context.Context, evaluate.CodeInput) (*evaluate.CodeEvaluation, error) {
	s.calls++
	return s.result, s.err
}

type memAttempts struct {
	rows []store.AttemptData
}

func (m *memAttempts) Append(_ context.Context, data store.AttemptData) error {
	m.rows = append(m.rows, data)
	return nil
}

func (m *memAttempts) Recent(context.Context, int) ([]store.Attempt, error) {
	return nil, nil
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

// newEditingScreen drives a fresh screen to the editor on two-sum.
func newEditingScreen(t *testing.T, runner *stubRunner, ev *stubEvaluator) (*CodingScreen, *memAttempts) {
	t.Helper()

	attempts := &memAttempts{}
	s := New(runner, ev, attempts)
	if err := s.ctl.SelectCategory("hashing"); err != nil {
		t.Fatalf("select category: %v", err)
	}
	if err := s.ctl.SelectChallenge("two-sum"); err != nil {
		t.Fatalf("select challenge: %v", err)
	}
	if err := s.ctl.SetCode("my solution"); err != nil {
		t.Fatalf("set code: %v", err)
	}
	return s, attempts
}

func TestSubmitKey_TransitionsBeforeOracleResolves(t *testing.T) {
	ev := &stubEvaluator{result: &evaluate.CodeEvaluation{Score: 80, PassedCount: 2, TotalCount: 2}}
	s, attempts := newEditingScreen(t, &stubRunner{}, ev)

	_, cmd := s.Update(ctrlKey('s'))

	// The transition happens in Update; the command carries only the
	// oracle call.
	if s.ctl.Status() != codingctl.StatusSubmitting {
		t.Fatalf("expected submitting, got %s", s.ctl.Status())
	}
	if ev.calls != 0 {
		t.Fatal("the oracle must not run inside Update")
	}
	if !s.busy {
		t.Fatal("expected busy while the submission is in flight")
	}
	if cmd == nil {
		t.Fatal("expected an evaluation command")
	}

	msg := cmd()
	if ev.calls != 1 {
		t.Fatalf("expected one oracle call, got %d", ev.calls)
	}

	_, persist := s.Update(msg)
	if s.ctl.Status() != codingctl.StatusReviewing {
		t.Fatalf("expected reviewing, got %s", s.ctl.Status())
	}
	if s.busy {
		t.Fatal("busy must clear once the submission resolves")
	}
	if persist == nil {
		t.Fatal("expected a persist command")
	}
	if msg := persist(); msg == nil {
		t.Fatal("persist command returned nothing")
	}
	if len(attempts.rows) != 1 {
		t.Fatalf("expected 1 persisted attempt, got %d", len(attempts.rows))
	}
}

func TestSubmitKey_FailureReturnsToEditor(t *testing.T) {
	ev := &stubEvaluator{err: &llm.ErrProviderUnavailable{}}
	s, attempts := newEditingScreen(t, &stubRunner{}, ev)

	_, cmd := s.Update(ctrlKey('s'))
	_, _ = s.Update(cmd())

	if s.ctl.Status() != codingctl.StatusCoding {
		t.Fatalf("expected revert to coding, got %s", s.ctl.Status())
	}
	if s.ctl.Code() != "my solution" {
		t.Error("code must survive a failed submit")
	}
	if s.errMsg == "" {
		t.Fatal("expected an error message")
	}
	if len(attempts.rows) != 0 {
		t.Fatal("a failed submission must not persist")
	}
}

func TestSubmitKey_EmptyCodeNeverLeavesUpdate(t *testing.T) {
	ev := &stubEvaluator{}
	s, _ := newEditingScreen(t, &stubRunner{}, ev)
	if err := s.ctl.SetCode("   "); err != nil {
		t.Fatal(err)
	}

	_, cmd := s.Update(ctrlKey('s'))

	if cmd != nil {
		t.Fatal("whitespace-only code must not produce a command")
	}
	if ev.calls != 0 {
		t.Fatal("the oracle must not be called")
	}
	if s.ctl.Status() != codingctl.StatusCoding {
		t.Fatalf("status must be unchanged, got %s", s.ctl.Status())
	}
	if s.errMsg == "" {
		t.Fatal("expected an inline error message")
	}
}

func TestRunKey_AppliesConsoleOnEventLoop(t *testing.T) {
	runner := &stubRunner{result: &evaluate.RunResult{Output: "0 1\n"}}
	s, _ := newEditingScreen(t, runner, &stubEvaluator{})

	_, cmd := s.Update(ctrlKey('r'))

	if runner.calls != 0 {
		t.Fatal("the oracle must not run inside Update")
	}
	if !s.busy {
		t.Fatal("expected busy while the run is in flight")
	}
	if cmd == nil {
		t.Fatal("expected a run command")
	}

	_, _ = s.Update(cmd())

	if s.ctl.Console() != "0 1\n" {
		t.Errorf("unexpected console: %q", s.ctl.Console())
	}
	if s.busy {
		t.Fatal("busy must clear once the run resolves")
	}
	if s.ctl.Status() != codingctl.StatusCoding {
		t.Errorf("run must not change status, got %s", s.ctl.Status())
	}
}
