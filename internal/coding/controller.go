// Package coding runs the coding challenge mode: catalog navigation, the
// editor buffer, hint reveals, simulated runs, and submission for
// evaluation.
package coding

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/prepdrill/internal/challenge"
	"github.com/abhisek/prepdrill/internal/evaluate"
	"github.com/abhisek/prepdrill/internal/llm"
	"github.com/abhisek/prepdrill/internal/session"
)

// Status is the lifecycle state of a coding session.
type Status string

const (
	// StatusSelecting means no category is chosen yet.
	StatusSelecting Status = "selecting"

	// StatusCategorySelected means a category is chosen, no challenge yet.
	StatusCategorySelected Status = "category_selected"

	// StatusCoding means a challenge is active and the editor is live.
	StatusCoding Status = "coding"

	// StatusSubmitting means an evaluation call is in flight. Run and a
	// second Submit are blocked until it resolves.
	StatusSubmitting Status = "submitting"

	// StatusReviewing means the evaluation arrived and is on display.
	StatusReviewing Status = "reviewing"
)

// Runner simulates code execution for the console pane.
type Runner interface {
	Run(ctx context.Context, code, language string) (*evaluate.RunResult, error)
}

// Evaluator grades a submission.
type Evaluator interface {
	Evaluate(ctx context.Context, in evaluate.CodeInput) (*evaluate.CodeEvaluation, error)
}

// Controller drives one coding session. Not safe for concurrent use:
// the event loop serializes all calls. Run and Submit split into
// Begin/Finish pairs so callers can keep every state change on the
// event loop and run only the oracle call elsewhere; Submitting blocks
// the operations that could overlap an in-flight submission.
type Controller struct {
	status     Status
	categoryID string
	ch         challenge.Challenge
	language   string
	code       string
	console    string
	revealed   map[int]bool
	startTime  time.Time
	evaluation *evaluate.CodeEvaluation

	runner    Runner
	evaluator Evaluator

	// now is injectable for deterministic elapsed-time tests.
	now func() time.Time
}

// NewController creates a coding session at challenge selection.
func NewController(runner Runner, evaluator Evaluator) *Controller {
	return &Controller{
		status:    StatusSelecting,
		language:  challenge.Languages()[0],
		revealed:  make(map[int]bool),
		runner:    runner,
		evaluator: evaluator,
		now:       time.Now,
	}
}

func (c *Controller) Status() Status                       { return c.status }
func (c *Controller) CategoryID() string                   { return c.categoryID }
func (c *Controller) Challenge() challenge.Challenge       { return c.ch }
func (c *Controller) Language() string                     { return c.language }
func (c *Controller) Code() string                         { return c.code }
func (c *Controller) Console() string                      { return c.console }
func (c *Controller) Evaluation() *evaluate.CodeEvaluation { return c.evaluation }

// TimeSpentSeconds is the whole seconds since the challenge started.
func (c *Controller) TimeSpentSeconds() int {
	if c.startTime.IsZero() {
		return 0
	}
	return int(c.now().Sub(c.startTime) / time.Second)
}

// RevealedHints returns the revealed hint indices in ascending order.
func (c *Controller) RevealedHints() []int {
	out := make([]int, 0, len(c.revealed))
	for i := range c.revealed {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func (c *Controller) invalid(op string) error {
	return fmt.Errorf("%w: %s in %s", session.ErrInvalidTransition, op, c.status)
}

// SelectCategory picks a category. Allowed while selecting or switching
// categories, and from an in-progress or reviewed challenge, which it
// abandons. Blocked only while a submission is in flight.
func (c *Controller) SelectCategory(categoryID string) error {
	if c.status == StatusSubmitting {
		return c.invalid("select category")
	}
	found := false
	for _, cat := range challenge.Categories() {
		if cat.ID == categoryID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown category: %q", categoryID)
	}
	if c.status == StatusCoding || c.status == StatusReviewing {
		c.clearChallenge()
	}
	c.categoryID = categoryID
	c.status = StatusCategorySelected
	return nil
}

// SelectChallenge starts a challenge from the selected category: seeds
// the editor with the current language's starter code and starts the
// clock.
func (c *Controller) SelectChallenge(id string) error {
	if c.status != StatusCategorySelected {
		return c.invalid("select challenge")
	}
	ch, ok := challenge.ByID(id)
	if !ok {
		return fmt.Errorf("unknown challenge: %q", id)
	}
	if ch.CategoryID != c.categoryID {
		return fmt.Errorf("challenge %q is not in category %q", id, c.categoryID)
	}

	c.ch = ch
	c.language = starterLanguage(ch, c.language)
	c.code = ch.StarterCode[c.language]
	c.console = ""
	c.revealed = make(map[int]bool)
	c.evaluation = nil
	c.startTime = c.now()
	c.status = StatusCoding
	return nil
}

// ChangeLanguage swaps the editor to another language's starter code,
// discarding unsaved edits. The clock and revealed hints survive; the
// console does not.
func (c *Controller) ChangeLanguage(lang string) error {
	if c.status != StatusCoding {
		return c.invalid("change language")
	}
	starter, ok := c.ch.StarterCode[lang]
	if !ok {
		return fmt.Errorf("unsupported language: %q", lang)
	}
	c.language = lang
	c.code = starter
	c.console = ""
	return nil
}

// SetCode replaces the editor buffer.
func (c *Controller) SetCode(code string) error {
	if c.status != StatusCoding {
		return c.invalid("edit code")
	}
	c.code = code
	return nil
}

// RevealHint reveals one hint by index. Revealing the same hint twice
// is a no-op; hints never un-reveal.
func (c *Controller) RevealHint(i int) error {
	if c.status != StatusCoding {
		return c.invalid("reveal hint")
	}
	if i < 0 || i >= len(c.ch.Hints) {
		return fmt.Errorf("hint index %d out of range", i)
	}
	c.revealed[i] = true
	return nil
}

// BeginRun validates the run preconditions and snapshots the code and
// language for the runner oracle. Whitespace-only code is rejected
// before any oracle call. Pairs with FinishRun.
func (c *Controller) BeginRun() (code, language string, err error) {
	if c.status != StatusCoding {
		return "", "", c.invalid("run")
	}
	if strings.TrimSpace(c.code) == "" {
		return "", "", llm.ErrEmptyInput
	}
	return c.code, c.language, nil
}

// FinishRun writes the run output to the console pane. Output is
// advisory only; it never affects scoring or status.
func (c *Controller) FinishRun(output string) error {
	if c.status != StatusCoding {
		return c.invalid("finish run")
	}
	c.console = output
	return nil
}

// Run simulates executing the current code and writes the result to the
// console pane: BeginRun, the runner oracle, and FinishRun in one call.
func (c *Controller) Run(ctx context.Context) error {
	code, language, err := c.BeginRun()
	if err != nil {
		return err
	}
	res, err := c.runner.Run(ctx, code, language)
	if err != nil {
		return err
	}
	return c.FinishRun(res.Output)
}

// BeginSubmit validates the submission, snapshots the evaluation input,
// and moves to Submitting. Whitespace-only code is rejected before any
// oracle call and leaves the status unchanged. The caller completes the
// transition with FinishSubmit once the oracle resolves.
func (c *Controller) BeginSubmit() (evaluate.CodeInput, error) {
	if c.status != StatusCoding {
		return evaluate.CodeInput{}, c.invalid("submit")
	}
	if strings.TrimSpace(c.code) == "" {
		return evaluate.CodeInput{}, llm.ErrEmptyInput
	}

	in := evaluate.CodeInput{
		Code:                 c.code,
		Language:             c.language,
		ChallengeTitle:       c.ch.Title,
		ChallengeDescription: c.ch.Description,
		TestCases:            c.ch.TestCases,
		TimeSpentSeconds:     c.TimeSpentSeconds(),
		ExpectedMinutes:      c.ch.ExpectedMinutes,
	}
	c.status = StatusSubmitting
	return in, nil
}

// FinishSubmit applies the oracle outcome: Reviewing on success, back
// to Coding on failure with the code and clock intact so the candidate
// can retry.
func (c *Controller) FinishSubmit(ev *evaluate.CodeEvaluation, callErr error) error {
	if c.status != StatusSubmitting {
		return c.invalid("finish submit")
	}
	if callErr != nil {
		c.status = StatusCoding
		return nil
	}
	c.evaluation = ev
	c.status = StatusReviewing
	return nil
}

// Submit sends the code for evaluation: BeginSubmit, the evaluator
// oracle, and FinishSubmit in one call.
func (c *Controller) Submit(ctx context.Context) (*evaluate.CodeEvaluation, error) {
	in, err := c.BeginSubmit()
	if err != nil {
		return nil, err
	}
	ev, callErr := c.evaluator.Evaluate(ctx, in)
	if err := c.FinishSubmit(ev, callErr); err != nil {
		return nil, err
	}
	if callErr != nil {
		return nil, callErr
	}
	return ev, nil
}

// ResetChallenge restarts the current challenge: starter code, fresh
// clock, no hints, no console, no evaluation.
func (c *Controller) ResetChallenge() error {
	if c.status != StatusCoding && c.status != StatusReviewing {
		return c.invalid("reset challenge")
	}
	c.code = c.ch.StarterCode[c.language]
	c.console = ""
	c.revealed = make(map[int]bool)
	c.evaluation = nil
	c.startTime = c.now()
	c.status = StatusCoding
	return nil
}

// GoToCategory leaves the current challenge and returns to the
// category's challenge list.
func (c *Controller) GoToCategory() error {
	if c.status != StatusCoding && c.status != StatusReviewing {
		return c.invalid("back to category")
	}
	c.clearChallenge()
	c.status = StatusCategorySelected
	return nil
}

// GoToSelection abandons the category and returns to category selection.
func (c *Controller) GoToSelection() error {
	if c.status == StatusSubmitting {
		return c.invalid("back to selection")
	}
	c.clearChallenge()
	c.categoryID = ""
	c.status = StatusSelecting
	return nil
}

// starterLanguage keeps the preferred language when the challenge ships
// starter code for it, otherwise the first supported language that does.
func starterLanguage(ch challenge.Challenge, preferred string) string {
	if _, ok := ch.StarterCode[preferred]; ok {
		return preferred
	}
	for _, lang := range challenge.Languages() {
		if _, ok := ch.StarterCode[lang]; ok {
			return lang
		}
	}
	return preferred
}

func (c *Controller) clearChallenge() {
	c.ch = challenge.Challenge{}
	c.code = ""
	c.console = ""
	c.revealed = make(map[int]bool)
	c.evaluation = nil
	c.startTime = time.Time{}
}
