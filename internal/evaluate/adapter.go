package evaluate

import (
	"context"
	"fmt"

	"github.com/abhisek/prepdrill/internal/llm"
	"github.com/abhisek/prepdrill/internal/session"
)

// SessionEvaluator is the mode-independent surface the session engine
// drives: one answered item in, one engine-shaped evaluation out.
type SessionEvaluator interface {
	EvaluateAnswer(ctx context.Context, in AnswerInput) (session.Evaluation, error)
}

type interviewAdapter struct{ ev *InterviewEvaluator }

func (a interviewAdapter) EvaluateAnswer(ctx context.Context, in AnswerInput) (session.Evaluation, error) {
	out, err := a.ev.Evaluate(ctx, in)
	if err != nil {
		return session.Evaluation{}, err
	}
	return out.Session(), nil
}

type practiceAdapter struct{ ev *PracticeEvaluator }

func (a practiceAdapter) EvaluateAnswer(ctx context.Context, in AnswerInput) (session.Evaluation, error) {
	out, err := a.ev.Evaluate(ctx, in)
	if err != nil {
		return session.Evaluation{}, err
	}
	return out.Session(), nil
}

// ForMode returns the evaluator for an interview or practice session.
func ForMode(mode session.Mode, provider llm.Provider, cfg EvaluatorConfig) (SessionEvaluator, error) {
	switch mode {
	case session.ModeInterview:
		return interviewAdapter{ev: NewInterviewEvaluator(provider, cfg)}, nil
	case session.ModePractice:
		return practiceAdapter{ev: NewPracticeEvaluator(provider, cfg)}, nil
	default:
		return nil, fmt.Errorf("no answer evaluator for mode %q", mode)
	}
}
