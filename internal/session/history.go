package session

// History is the append-only, insertion-ordered log of completed items.
// It never deduplicates; guarding against double-appends is the caller's
// job (the machine appends exactly once per reviewed item).
type History struct {
	records []Record
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{}
}

// Append adds a record to the end of the log.
func (h *History) Append(r Record) {
	h.records = append(h.records, r)
}

// Len returns the number of completed items.
func (h *History) Len() int {
	return len(h.records)
}

// Records returns a copy of the log in insertion order.
func (h *History) Records() []Record {
	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// AverageScore returns the arithmetic mean of the primary score across all
// records, or 0 for an empty history. Never NaN.
func (h *History) AverageScore() float64 {
	if len(h.records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range h.records {
		sum += r.Evaluation.Score
	}
	return sum / float64(len(h.records))
}

// PreviousPrompts returns the prompts of all completed items in order.
// Used to bias the next generation request away from repeats.
func (h *History) PreviousPrompts() []string {
	out := make([]string, len(h.records))
	for i, r := range h.records {
		out[i] = r.Item.Prompt
	}
	return out
}

// Reset discards all records. Only called on explicit session restart.
func (h *History) Reset() {
	h.records = nil
}
