package session

// Level is the difficulty of an item. The ordering exists for invariant
// checks only; the engine never increments a level itself — progression is
// supplied by the evaluation oracle.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// Valid reports whether l is one of the three recognized levels.
func (l Level) Valid() bool {
	switch l {
	case LevelEasy, LevelMedium, LevelHard:
		return true
	}
	return false
}

// Rank returns the total order position (easy=0, medium=1, hard=2).
// Unrecognized levels rank below easy.
func (l Level) Rank() int {
	switch l {
	case LevelEasy:
		return 0
	case LevelMedium:
		return 1
	case LevelHard:
		return 2
	}
	return -1
}

// ParseLevel normalizes an oracle-supplied difficulty string.
func ParseLevel(s string) (Level, bool) {
	l := Level(s)
	return l, l.Valid()
}

// Verdict is the difficulty controller's decision for the next item.
type Verdict struct {
	// Next is the difficulty for the next item. Equal to the current level
	// when the oracle's value was unrecognized.
	Next Level

	// Continue is false when the session must move to Terminated.
	Continue bool

	// Reason accompanies Continue=false.
	Reason string

	// Clamped is true when the oracle's next_difficulty was unrecognized
	// and the current level was kept. Informational; clamping is silent.
	Clamped bool
}

// DecideNext extracts the next difficulty and continuation from an
// evaluation. The oracle is untrusted input: an unrecognized
// next_difficulty clamps to the current level rather than propagating.
// A should_continue=false verdict overrides any remaining item budget.
func DecideNext(current Level, eval Evaluation) Verdict {
	v := Verdict{Next: current, Continue: eval.ShouldContinue}

	if next, ok := ParseLevel(eval.NextDifficulty); ok {
		v.Next = next
	} else if eval.NextDifficulty != "" {
		v.Clamped = true
	}

	if !eval.ShouldContinue {
		v.Reason = eval.TerminationReason
		if v.Reason == "" {
			v.Reason = "ended by evaluator"
		}
	}

	return v
}
