package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/prepdrill/internal/timer"
)

// DefaultMaxItems is the item-count budget when the config leaves it unset.
const DefaultMaxItems = 5

// ErrInvalidTransition marks a lifecycle call made from the wrong state.
// These are programming errors in the caller, not runtime conditions.
var ErrInvalidTransition = errors.New("invalid session transition")

// TerminatedBy distinguishes abort classes for downstream reporting.
type TerminatedBy string

const (
	TerminatedByUser   TerminatedBy = "user"
	TerminatedByOracle TerminatedBy = "oracle"
)

// Config selects what a session runs.
type Config struct {
	Mode Mode

	// Skills seed the question generation request.
	Skills []string

	// Topic optionally pins generation to one subject area.
	Topic string

	// StartDifficulty is the first item's level. Defaults to medium.
	StartDifficulty Level

	// MaxItems is the item-count budget. Defaults to DefaultMaxItems.
	MaxItems int
}

// GenerateRequest is the input the machine hands to the question oracle
// for the next item.
type GenerateRequest struct {
	Skills            []string
	Difficulty        Level
	PreviousQuestions []string
	Topic             string
}

// Machine is the generic session lifecycle:
//
//	Setup → Active → Reviewing → {Active | Completed | Terminated}
//
// One Machine per session; it owns its tracker and history, so no state is
// shared across sessions. Not safe for concurrent use — the engine is
// single-threaded by design, with the tracker's tick loop the only
// background activity.
type Machine struct {
	id      string
	cfg     Config
	status  Status
	current *Item

	// currentRecorded is true once the active item's record has been
	// appended; requesting the next item without it is a caller bug.
	currentRecorded bool

	difficulty   Level
	history      *History
	tracker      *timer.Tracker
	served       int
	lastEval     *Evaluation
	endReason    string
	terminatedBy TerminatedBy
}

// NewMachine creates a session in Setup with its own tracker and history.
// The timer callbacks are forwarded to the owned tracker.
func NewMachine(cfg Config, cb timer.Callbacks) *Machine {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultMaxItems
	}
	if !cfg.StartDifficulty.Valid() {
		cfg.StartDifficulty = LevelMedium
	}
	return &Machine{
		id:         uuid.NewString(),
		cfg:        cfg,
		status:     StatusSetup,
		difficulty: cfg.StartDifficulty,
		history:    NewHistory(),
		tracker:    timer.New(cb),
	}
}

// ID returns the session UUID.
func (m *Machine) ID() string { return m.id }

// Mode returns the configured session mode.
func (m *Machine) Mode() Mode { return m.cfg.Mode }

// Status returns the current lifecycle state.
func (m *Machine) Status() Status { return m.status }

// Config returns the session configuration.
func (m *Machine) Config() Config { return m.cfg }

// CurrentItem returns the active item, or nil between items.
func (m *Machine) CurrentItem() *Item { return m.current }

// Difficulty returns the level the next item will be requested at.
func (m *Machine) Difficulty() Level { return m.difficulty }

// History returns the session's append-only item log.
func (m *Machine) History() *History { return m.history }

// Tracker returns the session's owned time budget tracker.
func (m *Machine) Tracker() *timer.Tracker { return m.tracker }

// ItemsServed returns how many items have been recorded.
func (m *Machine) ItemsServed() int { return m.served }

// LastEvaluation returns the most recent evaluation, or nil before the
// first review.
func (m *Machine) LastEvaluation() *Evaluation { return m.lastEval }

// EndReason returns the termination reason for Terminated sessions.
func (m *Machine) EndReason() string { return m.endReason }

// TerminatedByWhom reports the abort class for Terminated sessions.
func (m *Machine) TerminatedByWhom() TerminatedBy { return m.terminatedBy }

// NextRequest builds the generation request for the next item: the
// configured skills at the current difficulty, with all prior prompts
// included so the oracle can avoid repeats.
func (m *Machine) NextRequest() GenerateRequest {
	return GenerateRequest{
		Skills:            m.cfg.Skills,
		Difficulty:        m.difficulty,
		PreviousQuestions: m.history.PreviousPrompts(),
		Topic:             m.cfg.Topic,
	}
}

// Begin enters Active with the given item and starts its time budget.
// Allowed from Setup (first item) and Reviewing (next item). Beginning
// while the prior item is unrecorded, or from a terminal state, is an
// ErrInvalidTransition.
func (m *Machine) Begin(item Item) error {
	switch m.status {
	case StatusSetup, StatusReviewing:
	default:
		return fmt.Errorf("%w: begin from %s", ErrInvalidTransition, m.status)
	}
	if m.current != nil && !m.currentRecorded {
		return fmt.Errorf("%w: prior item not recorded", ErrInvalidTransition)
	}
	if item.ExpectedSeconds <= 0 {
		return fmt.Errorf("item has no time budget (expected %d seconds)", item.ExpectedSeconds)
	}

	if err := m.tracker.Start(item.ExpectedSeconds); err != nil {
		return fmt.Errorf("start time budget: %w", err)
	}

	m.current = &item
	m.currentRecorded = false
	m.status = StatusActive
	return nil
}

// Review applies an evaluation to the active item: the tracker is stopped,
// the elapsed time captured into the record, the record appended, and the
// difficulty controller consulted. The session lands in Reviewing, or in
// Terminated when the oracle refuses continuation, or in Completed when
// the item budget is exhausted. Reviewing is not re-entrant: a second
// evaluation requires a new Begin first.
func (m *Machine) Review(response string, eval Evaluation) error {
	if m.status != StatusActive || m.current == nil {
		return fmt.Errorf("%w: review from %s", ErrInvalidTransition, m.status)
	}

	snap := m.tracker.Stop()
	rec := Record{
		Item:             *m.current,
		Response:         response,
		Evaluation:       eval,
		TimeSpentSeconds: snap.ElapsedSeconds,
	}
	m.history.Append(rec)
	m.currentRecorded = true
	m.served++
	m.lastEval = &eval
	m.status = StatusReviewing

	verdict := DecideNext(m.difficulty, eval)
	m.difficulty = verdict.Next

	// Oracle termination wins over the remaining item budget.
	if !verdict.Continue {
		m.status = StatusTerminated
		m.terminatedBy = TerminatedByOracle
		m.endReason = verdict.Reason
		return nil
	}
	if m.served >= m.cfg.MaxItems {
		m.status = StatusCompleted
	}
	return nil
}

// Abort moves any non-terminal session to Terminated with a user-abort
// reason, stopping the tracker. No-op on a session already ended.
func (m *Machine) Abort(reason string) {
	if m.status.Terminal() {
		return
	}
	m.tracker.Reset()
	if reason == "" {
		reason = "aborted by user"
	}
	m.status = StatusTerminated
	m.terminatedBy = TerminatedByUser
	m.endReason = reason
}

// Restart returns the session to Setup under a fresh ID: history cleared,
// tracker cancelled and zeroed, difficulty back to the configured start.
func (m *Machine) Restart() {
	m.tracker.Reset()
	m.history.Reset()
	m.id = uuid.NewString()
	m.current = nil
	m.currentRecorded = false
	m.served = 0
	m.lastEval = nil
	m.difficulty = m.cfg.StartDifficulty
	m.status = StatusSetup
	m.endReason = ""
	m.terminatedBy = ""
}
