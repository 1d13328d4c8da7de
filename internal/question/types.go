package question

import "github.com/abhisek/prepdrill/internal/session"

// Input is the context handed to the oracle for the next question.
type Input struct {
	// Mode selects the prompt framing: interview questions probe depth,
	// practice questions teach.
	Mode session.Mode

	// Skills are the areas the candidate chose to drill.
	Skills []string

	// Difficulty is the controller-decided level for this item.
	Difficulty session.Level

	// PreviousQuestions are prompts already asked this session, for
	// deduplication.
	PreviousQuestions []string

	// Topic optionally narrows the question to one subject.
	Topic string
}

// FromRequest adapts the session machine's generate request.
func FromRequest(mode session.Mode, req session.GenerateRequest) Input {
	return Input{
		Mode:              mode,
		Skills:            req.Skills,
		Difficulty:        req.Difficulty,
		PreviousQuestions: req.PreviousQuestions,
		Topic:             req.Topic,
	}
}

// Question is the oracle's generated question.
type Question struct {
	// Text is the question prompt.
	Text string

	// Difficulty is the level the oracle generated at. May disagree with
	// the requested level; the session records what was actually served.
	Difficulty session.Level

	// ExpectedSeconds is the oracle's time budget for answering.
	ExpectedSeconds int

	// Topic is the subject area the oracle chose.
	Topic string

	// KeyPoints are the points a strong answer should cover.
	KeyPoints []string
}

// Item converts the question into a session item.
func (q *Question) Item() session.Item {
	return session.Item{
		Prompt:          q.Text,
		Topic:           q.Topic,
		Difficulty:      q.Difficulty,
		ExpectedSeconds: q.ExpectedSeconds,
		KeyPoints:       q.KeyPoints,
	}
}

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorQuestions is the maximum number of prior questions to
	// include in the prompt for deduplication.
	MaxPriorQuestions int
}

// DefaultConfig returns recommended generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:         768,
		Temperature:       0.7,
		MaxPriorQuestions: 10,
	}
}
