// Package session is the interview/practice session screen: it drives
// the session machine, the question and evaluation oracles, and the
// per-item countdown.
package session

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdrill/internal/evaluate"
	"github.com/abhisek/prepdrill/internal/llm"
	"github.com/abhisek/prepdrill/internal/question"
	"github.com/abhisek/prepdrill/internal/router"
	"github.com/abhisek/prepdrill/internal/screen"
	sess "github.com/abhisek/prepdrill/internal/session"
	"github.com/abhisek/prepdrill/internal/store"
	"github.com/abhisek/prepdrill/internal/timer"
	"github.com/abhisek/prepdrill/internal/ui/components"
	"github.com/abhisek/prepdrill/internal/ui/layout"
)

// phase is the screen's presentation state, layered over the machine's
// session status.
type phase int

const (
	phaseLoading phase = iota
	phaseAnswering
	phaseEvaluating
	phaseFeedback
	phaseSummary
)

const autoSubmitPlaceholder = "(no answer before time expired)"

// SessionScreen implements screen.Screen for interview and practice
// sessions.
type SessionScreen struct {
	machine   *sess.Machine
	generator question.Generator
	evaluator evaluate.SessionEvaluator
	attempts  store.AttemptRepo

	input components.TextArea
	phase phase
	snap  timer.Snapshot

	// timerEvents carries tracker callbacks into the event loop. Sends
	// are non-blocking so a stalled UI can never wedge the tick loop.
	timerEvents chan timerEventMsg

	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// New creates a session screen and its machine.
func New(cfg sess.Config, generator question.Generator, evaluator evaluate.SessionEvaluator, attempts store.AttemptRepo) *SessionScreen {
	s := &SessionScreen{
		generator:   generator,
		evaluator:   evaluator,
		attempts:    attempts,
		timerEvents: make(chan timerEventMsg, 16),
		input:       components.NewTextArea("Type your answer..."),
	}
	s.machine = sess.NewMachine(cfg, timer.Callbacks{
		OnTick:       s.pushTick,
		OnAutoSubmit: s.pushAutoSubmit,
	})
	return s
}

func (s *SessionScreen) pushTick(snap timer.Snapshot) {
	select {
	case s.timerEvents <- timerEventMsg{Snapshot: snap}:
	default:
	}
}

func (s *SessionScreen) pushAutoSubmit() {
	select {
	case s.timerEvents <- timerEventMsg{AutoSubmit: true}:
	default:
	}
}

// waitTimer blocks on the next tracker event.
func (s *SessionScreen) waitTimer() tea.Cmd {
	return func() tea.Msg {
		return <-s.timerEvents
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(
		s.generateQuestion(),
		s.waitTimer(),
		s.input.Init(),
	)
}

func (s *SessionScreen) Title() string {
	if s.machine.Mode() == sess.ModePractice {
		return "Practice"
	}
	return "Interview"
}

// HeaderStatus renders the countdown clock while a question is live.
func (s *SessionScreen) HeaderStatus() string {
	if s.phase != phaseAnswering && s.phase != phaseEvaluating {
		return ""
	}
	if s.snap.Overtime {
		return fmt.Sprintf("OVERTIME +%s", timer.FormatClock(s.snap.ElapsedSeconds-s.snap.ExpectedSeconds))
	}
	return timer.FormatClock(s.snap.RemainingSeconds())
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.phase {
	case phaseAnswering:
		return []layout.KeyHint{
			{Key: "Ctrl+S", Description: "Submit"},
			{Key: "Esc", Description: "End session"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next question"},
			{Key: "Esc", Description: "End session"},
		}
	case phaseSummary:
		return []layout.KeyHint{
			{Key: "Enter/Esc", Description: "Back home"},
		}
	}
	return nil
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return s.handleQuestionReady(msg)

	case evaluationMsg:
		return s.handleEvaluation(msg)

	case timerEventMsg:
		return s.handleTimerEvent(msg)

	case persistDoneMsg:
		// History writes are best effort; a failure must not interrupt
		// the session.
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseAnswering && !s.confirmQuit {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.confirmQuit {
		switch msg.String() {
		case "y", "Y":
			s.machine.Abort("ended by user")
			s.confirmQuit = false
			s.phase = phaseSummary
			return s, nil
		case "n", "N", "esc":
			s.confirmQuit = false
			return s, nil
		}
		return s, nil
	}

	switch msg.String() {
	case "esc":
		if s.phase == phaseSummary {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.confirmQuit = true
		return s, nil

	case "ctrl+s":
		if s.phase == phaseAnswering {
			return s.submit(s.input.Value())
		}

	case "enter":
		switch s.phase {
		case phaseLoading:
			// Retry a failed generation.
			if s.errMsg != "" {
				s.errMsg = ""
				return s, s.generateQuestion()
			}
		case phaseFeedback:
			s.phase = phaseLoading
			return s, s.generateQuestion()
		case phaseSummary:
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	if s.phase == phaseAnswering {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// generateQuestion asks the oracle for the next item.
func (s *SessionScreen) generateQuestion() tea.Cmd {
	req := s.machine.NextRequest()
	mode := s.machine.Mode()
	return func() tea.Msg {
		q, err := s.generator.Generate(context.Background(), question.FromRequest(mode, req))
		if err != nil {
			return questionReadyMsg{Err: err}
		}
		return questionReadyMsg{Item: q.Item()}
	}
}

func (s *SessionScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = oracleErrorText(msg.Err)
		return s, nil
	}

	if err := s.machine.Begin(msg.Item); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.errMsg = ""
	s.snap = s.machine.Tracker().Snapshot()
	s.input = components.NewTextArea("Type your answer...")
	s.phase = phaseAnswering
	return s, s.input.Init()
}

func (s *SessionScreen) handleTimerEvent(msg timerEventMsg) (screen.Screen, tea.Cmd) {
	if msg.AutoSubmit {
		if s.phase == phaseAnswering {
			answer := s.input.Value()
			if answer == "" {
				answer = autoSubmitPlaceholder
			}
			_, cmd := s.submit(answer)
			return s, tea.Batch(cmd, s.waitTimer())
		}
		return s, s.waitTimer()
	}

	s.snap = msg.Snapshot
	return s, s.waitTimer()
}

// submit sends the answer for evaluation. Empty answers never reach the
// oracle; the screen flags them inline and stays in Answering.
func (s *SessionScreen) submit(response string) (screen.Screen, tea.Cmd) {
	item := s.machine.CurrentItem()
	if item == nil {
		return s, nil
	}

	timeSpent := s.machine.Tracker().Snapshot().ElapsedSeconds
	in := evaluate.AnswerInput{
		Item:             *item,
		Response:         response,
		TimeSpentSeconds: timeSpent,
	}

	s.phase = phaseEvaluating
	s.errMsg = ""
	return s, func() tea.Msg {
		eval, err := s.evaluator.EvaluateAnswer(context.Background(), in)
		return evaluationMsg{Response: response, TimeSpent: timeSpent, Eval: eval, Err: err}
	}
}

func (s *SessionScreen) handleEvaluation(msg evaluationMsg) (screen.Screen, tea.Cmd) {
	// A result landing after the user ended the session has nothing to
	// apply to; drop it rather than re-enter the answering phase.
	if s.machine.Status().Terminal() {
		return s, nil
	}

	if msg.Err != nil {
		// The session stays where it was: same question, clock running.
		s.phase = phaseAnswering
		s.errMsg = oracleErrorText(msg.Err)
		return s, nil
	}

	if err := s.machine.Review(msg.Response, msg.Eval); err != nil {
		s.phase = phaseAnswering
		s.errMsg = err.Error()
		return s, nil
	}

	persist := s.persistAttempt(msg)

	if s.machine.Status().Terminal() {
		s.phase = phaseSummary
	} else {
		s.phase = phaseFeedback
	}
	return s, persist
}

// persistAttempt appends the finished item to history.
func (s *SessionScreen) persistAttempt(msg evaluationMsg) tea.Cmd {
	item := s.machine.History().Records()
	if len(item) == 0 {
		return nil
	}
	last := item[len(item)-1]

	data := store.AttemptData{
		SessionID:        s.machine.ID(),
		AssessmentType:   string(s.machine.Mode()),
		SkillArea:        last.Item.Topic,
		Difficulty:       string(last.Item.Difficulty),
		Score:            last.Evaluation.Score,
		TimeTakenSeconds: last.TimeSpentSeconds,
		Metadata: map[string]any{
			"verdict": last.Evaluation.Verdict,
		},
	}
	return func() tea.Msg {
		return persistDoneMsg{Err: s.attempts.Append(context.Background(), data)}
	}
}

// oracleErrorText maps the error taxonomy to user-facing text.
func oracleErrorText(err error) string {
	var rate *llm.ErrRateLimit
	if errors.As(err, &rate) {
		return "The AI service is rate limited. Wait a moment and try again."
	}
	var invalid *llm.ErrInvalidResponse
	if errors.As(err, &invalid) {
		return "The AI service returned an unusable response. Try again."
	}
	if errors.Is(err, llm.ErrEmptyInput) {
		return "Type an answer before submitting."
	}
	return err.Error()
}
