// Package evaluate holds the oracle clients that judge candidate work:
// interview answers, practice answers, and submitted code, plus the
// best-effort simulated code runner.
package evaluate

import "github.com/abhisek/prepdrill/internal/session"

// InterviewEvaluation is the full interview oracle verdict.
type InterviewEvaluation struct {
	// Dimension scores, each 0-100.
	Accuracy       float64 `json:"accuracy"`
	Clarity        float64 `json:"clarity"`
	Depth          float64 `json:"depth"`
	Relevance      float64 `json:"relevance"`
	TimeEfficiency float64 `json:"time_efficiency"`

	OverallScore float64 `json:"overall_score"`
	Verdict      string  `json:"verdict"`
	Feedback     string  `json:"feedback"`

	Strengths        []string `json:"strengths"`
	Improvements     []string `json:"improvements"`
	PenaltiesApplied []string `json:"penalties_applied"`

	// NextDifficulty and ShouldContinue steer the session. Raw oracle
	// values; the difficulty controller clamps before use.
	NextDifficulty    string `json:"next_difficulty"`
	ShouldContinue    bool   `json:"should_continue"`
	TerminationReason string `json:"termination_reason"`

	TimeTakenSeconds    int `json:"time_taken_seconds"`
	ExpectedTimeSeconds int `json:"expected_time_seconds"`
	OvertimeSeconds     int `json:"overtime_seconds"`
}

// Session converts the verdict into the engine's evaluation shape.
func (e *InterviewEvaluation) Session() session.Evaluation {
	return session.Evaluation{
		Score:             e.OverallScore,
		Verdict:           e.Verdict,
		Feedback:          e.Feedback,
		NextDifficulty:    e.NextDifficulty,
		ShouldContinue:    e.ShouldContinue,
		TerminationReason: e.TerminationReason,
		Detail:            e,
	}
}

// PracticeEvaluation is the practice oracle verdict. Practice never ends
// a session or steers difficulty; it coaches.
type PracticeEvaluation struct {
	Score               float64  `json:"score"`
	Strengths           []string `json:"strengths"`
	Improvements        []string `json:"improvements"`
	ModelAnswer         string   `json:"model_answer"`
	CoachingTips        []string `json:"coaching_tips"`
	NextTopicSuggestion string   `json:"next_topic_suggestion"`
}

// Session converts the verdict into the engine's evaluation shape.
// Practice evaluations always continue and leave difficulty to the
// controller's default (keep current).
func (e *PracticeEvaluation) Session() session.Evaluation {
	return session.Evaluation{
		Score:          e.Score,
		Verdict:        practiceVerdict(e.Score),
		Feedback:       e.ModelAnswer,
		ShouldContinue: true,
		Detail:         e,
	}
}

// practiceVerdict derives a qualitative label from the score so the
// review screen has something to show; practice oracles return none.
func practiceVerdict(score float64) string {
	switch {
	case score >= 80:
		return "strong"
	case score >= 50:
		return "average"
	default:
		return "weak"
	}
}

// TestResult is one test case outcome from the code oracle.
type TestResult struct {
	ID           string `json:"id"`
	Passed       bool   `json:"passed"`
	ActualOutput string `json:"actual_output"`
	Explanation  string `json:"explanation"`
}

// CodeQuality is the oracle's quality breakdown, each dimension 0-100.
type CodeQuality struct {
	Readability float64 `json:"readability"`
	Efficiency  float64 `json:"efficiency"`
	Correctness float64 `json:"correctness"`
}

// CodeEvaluation is the evaluate-code oracle verdict.
type CodeEvaluation struct {
	Score       float64      `json:"score"`
	TestResults []TestResult `json:"test_results"`
	PassedCount int          `json:"passed_count"`
	TotalCount  int          `json:"total_count"`
	CodeQuality CodeQuality  `json:"code_quality"`
	Feedback    string       `json:"feedback"`
	Suggestions []string     `json:"suggestions"`
}

// RunResult is the run-code oracle output. Simulated execution; output
// is advisory only and never used for scoring.
type RunResult struct {
	Output string `json:"output"`
}
