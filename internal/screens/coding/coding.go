// Package coding is the coding-challenge screen: category and challenge
// selection, the editor with run/submit/hints, and the review view.
package coding

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/prepdrill/internal/challenge"
	codingctl "github.com/abhisek/prepdrill/internal/coding"
	"github.com/abhisek/prepdrill/internal/evaluate"
	"github.com/abhisek/prepdrill/internal/llm"
	"github.com/abhisek/prepdrill/internal/router"
	"github.com/abhisek/prepdrill/internal/screen"
	"github.com/abhisek/prepdrill/internal/store"
	"github.com/abhisek/prepdrill/internal/timer"
	"github.com/abhisek/prepdrill/internal/ui/components"
	"github.com/abhisek/prepdrill/internal/ui/layout"
)

// CodingScreen implements screen.Screen over the coding controller.
type CodingScreen struct {
	ctl       *codingctl.Controller
	runner    codingctl.Runner
	evaluator codingctl.Evaluator
	attempts  store.AttemptRepo

	sessionID string
	editor    components.TextArea
	catMenu   components.Menu
	chalMenu  components.Menu

	// busy blocks controller access while an oracle call is in flight,
	// the controller itself is not safe for concurrent use.
	busy bool

	elapsed int
	width   int
	errMsg  string
}

var _ screen.Screen = (*CodingScreen)(nil)
var _ screen.KeyHintProvider = (*CodingScreen)(nil)
var _ screen.StatusProvider = (*CodingScreen)(nil)

// New creates the coding screen at category selection.
func New(runner codingctl.Runner, evaluator codingctl.Evaluator, attempts store.AttemptRepo) *CodingScreen {
	s := &CodingScreen{
		ctl:       codingctl.NewController(runner, evaluator),
		runner:    runner,
		evaluator: evaluator,
		attempts:  attempts,
		sessionID: uuid.NewString(),
	}
	s.catMenu = s.buildCategoryMenu()
	return s
}

func (s *CodingScreen) buildCategoryMenu() components.Menu {
	var items []components.MenuItem
	for _, cat := range challenge.Categories() {
		cat := cat
		items = append(items, components.MenuItem{
			Label:  cat.Name,
			Detail: fmt.Sprintf("%s · %d challenges", cat.Description, len(challenge.ByCategory(cat.ID))),
			Action: func() tea.Cmd {
				if err := s.ctl.SelectCategory(cat.ID); err != nil {
					s.errMsg = err.Error()
					return nil
				}
				s.errMsg = ""
				s.chalMenu = s.buildChallengeMenu(cat.ID)
				return nil
			},
		})
	}
	return components.NewMenu(items)
}

func (s *CodingScreen) buildChallengeMenu(categoryID string) components.Menu {
	var items []components.MenuItem
	for _, ch := range challenge.ByCategory(categoryID) {
		ch := ch
		items = append(items, components.MenuItem{
			Label:  ch.Title,
			Detail: fmt.Sprintf("%s · ~%d min", ch.Difficulty, ch.ExpectedMinutes),
			Action: func() tea.Cmd {
				if err := s.ctl.SelectChallenge(ch.ID); err != nil {
					s.errMsg = err.Error()
					return nil
				}
				s.errMsg = ""
				s.elapsed = 0
				s.editor = components.NewTextArea("")
				s.editor.SetValue(s.ctl.Code())
				s.sizeEditor()
				return tea.Batch(s.editor.Init(), tickClock())
			},
		})
	}
	return components.NewMenu(items)
}

func tickClock() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func (s *CodingScreen) Init() tea.Cmd {
	return nil
}

func (s *CodingScreen) Title() string {
	return "Coding"
}

// HeaderStatus shows the elapsed clock against the challenge budget.
func (s *CodingScreen) HeaderStatus() string {
	switch s.ctl.Status() {
	case codingctl.StatusCoding, codingctl.StatusSubmitting:
		budget := s.ctl.Challenge().ExpectedMinutes * 60
		if budget > 0 && s.elapsed > budget {
			return fmt.Sprintf("OVERTIME +%s", timer.FormatClock(s.elapsed-budget))
		}
		return fmt.Sprintf("%s / %s", timer.FormatClock(s.elapsed), timer.FormatClock(budget))
	}
	return ""
}

func (s *CodingScreen) KeyHints() []layout.KeyHint {
	switch s.ctl.Status() {
	case codingctl.StatusSelecting, codingctl.StatusCategorySelected:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	case codingctl.StatusCoding:
		return []layout.KeyHint{
			{Key: "Ctrl+R", Description: "Run"},
			{Key: "Ctrl+S", Description: "Submit"},
			{Key: "Ctrl+H", Description: "Hint"},
			{Key: "Ctrl+L", Description: "Language"},
			{Key: "Esc", Description: "Back"},
		}
	case codingctl.StatusReviewing:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Enter", Description: "More challenges"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

func (s *CodingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.sizeEditor()
		return s, nil

	case clockTickMsg:
		if s.ctl.Status() != codingctl.StatusCoding && s.ctl.Status() != codingctl.StatusSubmitting {
			return s, nil
		}
		s.elapsed = s.ctl.TimeSpentSeconds()
		return s, tickClock()

	case runDoneMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = oracleErrorText(msg.Err)
			return s, nil
		}
		if err := s.ctl.FinishRun(msg.Output); err != nil {
			s.errMsg = err.Error()
		}
		return s, nil

	case submitDoneMsg:
		return s.handleSubmitDone(msg)

	case persistDoneMsg:
		// Best effort, same as the session screen.
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.ctl.Status() == codingctl.StatusCoding && !s.busy {
		return s, s.forwardToEditor(msg)
	}
	return s, nil
}

func (s *CodingScreen) forwardToEditor(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.editor, cmd = s.editor.Update(msg)
	if err := s.ctl.SetCode(s.editor.Value()); err != nil {
		s.errMsg = err.Error()
	}
	return cmd
}

func (s *CodingScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.busy {
		return s, nil
	}

	switch s.ctl.Status() {
	case codingctl.StatusSelecting:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		var cmd tea.Cmd
		s.catMenu, cmd = s.catMenu.Update(msg)
		return s, cmd

	case codingctl.StatusCategorySelected:
		if msg.String() == "esc" {
			if err := s.ctl.GoToSelection(); err != nil {
				s.errMsg = err.Error()
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.chalMenu, cmd = s.chalMenu.Update(msg)
		return s, cmd

	case codingctl.StatusCoding:
		return s.handleCodingKey(msg)

	case codingctl.StatusReviewing:
		switch msg.String() {
		case "r", "R":
			if err := s.ctl.ResetChallenge(); err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			s.errMsg = ""
			s.elapsed = 0
			s.editor.SetValue(s.ctl.Code())
			return s, tickClock()
		case "enter", "esc":
			if err := s.ctl.GoToCategory(); err != nil {
				s.errMsg = err.Error()
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *CodingScreen) handleCodingKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if err := s.ctl.GoToCategory(); err != nil {
			s.errMsg = err.Error()
		}
		return s, nil

	case "ctrl+r":
		// The controller is not safe for concurrent use: transitions
		// happen here on the event loop, the command only calls the
		// oracle.
		code, lang, err := s.ctl.BeginRun()
		if err != nil {
			s.errMsg = oracleErrorText(err)
			return s, nil
		}
		s.busy = true
		s.errMsg = ""
		return s, func() tea.Msg {
			res, err := s.runner.Run(context.Background(), code, lang)
			if err != nil {
				return runDoneMsg{Err: err}
			}
			return runDoneMsg{Output: res.Output}
		}

	case "ctrl+s":
		in, err := s.ctl.BeginSubmit()
		if err != nil {
			s.errMsg = oracleErrorText(err)
			return s, nil
		}
		s.busy = true
		s.errMsg = ""
		return s, func() tea.Msg {
			eval, err := s.evaluator.Evaluate(context.Background(), in)
			return submitDoneMsg{Eval: eval, TimeSpent: in.TimeSpentSeconds, Err: err}
		}

	case "ctrl+h":
		next := len(s.ctl.RevealedHints())
		if next < len(s.ctl.Challenge().Hints) {
			if err := s.ctl.RevealHint(next); err != nil {
				s.errMsg = err.Error()
			}
		}
		return s, nil

	case "ctrl+l":
		s.cycleLanguage()
		return s, nil

	case "ctrl+x":
		if err := s.ctl.ResetChallenge(); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.elapsed = 0
		s.editor.SetValue(s.ctl.Code())
		return s, nil
	}

	return s, s.forwardToEditor(msg)
}

// cycleLanguage moves to the next supported language, replacing the
// editor buffer with that language's starter code.
func (s *CodingScreen) cycleLanguage() {
	langs := challenge.Languages()
	cur := s.ctl.Language()
	for i, l := range langs {
		if l == cur {
			next := langs[(i+1)%len(langs)]
			if err := s.ctl.ChangeLanguage(next); err != nil {
				s.errMsg = err.Error()
				return
			}
			s.editor.SetValue(s.ctl.Code())
			return
		}
	}
}

func (s *CodingScreen) handleSubmitDone(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	s.busy = false
	if err := s.ctl.FinishSubmit(msg.Eval, msg.Err); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if msg.Err != nil {
		s.errMsg = oracleErrorText(msg.Err)
		return s, nil
	}
	s.errMsg = ""
	return s, s.persistAttempt(msg.Eval, msg.TimeSpent)
}

// persistAttempt appends the graded submission to history.
func (s *CodingScreen) persistAttempt(eval *evaluate.CodeEvaluation, timeSpent int) tea.Cmd {
	ch := s.ctl.Challenge()
	data := store.AttemptData{
		SessionID:        s.sessionID,
		AssessmentType:   "coding",
		SkillArea:        ch.CategoryID,
		Difficulty:       ch.Difficulty,
		Score:            eval.Score,
		TimeTakenSeconds: timeSpent,
		Metadata: map[string]any{
			"challenge_id": ch.ID,
			"language":     s.ctl.Language(),
			"passed":       eval.PassedCount,
			"total":        eval.TotalCount,
		},
	}
	return func() tea.Msg {
		return persistDoneMsg{Err: s.attempts.Append(context.Background(), data)}
	}
}

func (s *CodingScreen) sizeEditor() {
	if s.width > 0 {
		s.editor.SetSize(s.width-4, 14)
	}
}

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
		return "Write some code first."
	}
	return err.Error()
}
