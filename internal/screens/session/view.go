package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdrill/internal/evaluate"
	sess "github.com/abhisek/prepdrill/internal/session"
	"github.com/abhisek/prepdrill/internal/timer"
	"github.com/abhisek/prepdrill/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.confirmQuit {
		return centered(width, height,
			theme.Title.Render("End this session?")+"\n\n"+
				theme.Hint.Render("Progress so far is already saved."))
	}

	switch s.phase {
	case phaseLoading:
		if s.errMsg != "" {
			return centered(width, height,
				theme.Fail.Render(s.errMsg)+"\n\n"+
					theme.Hint.Render("Press Enter to retry, Esc to end the session."))
		}
		return centered(width, height, theme.Subtitle.Render("Preparing your next question..."))
	case phaseAnswering, phaseEvaluating:
		return s.renderQuestion(width)
	case phaseFeedback:
		return s.renderFeedback(width)
	case phaseSummary:
		return s.renderSummary(width, height)
	}
	return ""
}

func (s *SessionScreen) renderQuestion(width int) string {
	item := s.machine.CurrentItem()
	if item == nil {
		return theme.Body.Render(s.errMsg)
	}

	var b strings.Builder

	// The active item is not yet recorded, so it is ItemsServed()+1.
	meta := fmt.Sprintf("%s · %s · question %d of %d",
		item.Topic, item.Difficulty, s.machine.ItemsServed()+1, s.machine.Config().MaxItems)
	b.WriteString(theme.Subtitle.Render(meta) + "\n\n")

	card := theme.Card.Width(width - 4).Render(theme.Body.Render(item.Prompt))
	b.WriteString(card + "\n\n")

	if s.snap.Overtime {
		over := s.snap.ElapsedSeconds - s.snap.ExpectedSeconds
		b.WriteString(theme.ClockOvertime.Render(
			fmt.Sprintf("Over budget by %s — auto-submit at 2x", timer.FormatClock(over))) + "\n\n")
	}

	b.WriteString(s.input.View() + "\n")

	if s.phase == phaseEvaluating {
		b.WriteString("\n" + theme.Hint.Render("Evaluating your answer..."))
	}
	if s.errMsg != "" {
		b.WriteString("\n" + theme.Fail.Render(s.errMsg))
	}

	return b.String()
}

func (s *SessionScreen) renderFeedback(width int) string {
	eval := s.machine.LastEvaluation()
	if eval == nil {
		return ""
	}

	var b strings.Builder

	score := fmt.Sprintf("Score: %.0f/100 · %s", eval.Score, eval.Verdict)
	b.WriteString(theme.Title.Render(score) + "\n\n")

	if eval.Feedback != "" {
		b.WriteString(theme.Card.Width(width-4).Render(theme.Body.Render(eval.Feedback)) + "\n\n")
	}

	b.WriteString(renderEvalDetail(eval))

	b.WriteString(theme.Hint.Render("Press Enter for the next question."))
	return b.String()
}

// renderEvalDetail shows the mode-specific oracle payload.
func renderEvalDetail(eval *sess.Evaluation) string {
	var b strings.Builder

	switch d := eval.Detail.(type) {
	case *evaluate.InterviewEvaluation:
		b.WriteString(theme.Body.Render(fmt.Sprintf(
			"accuracy %.0f · clarity %.0f · depth %.0f · relevance %.0f · time %.0f",
			d.Accuracy, d.Clarity, d.Depth, d.Relevance, d.TimeEfficiency)) + "\n")
		b.WriteString(bulletList("Strengths", d.Strengths))
		b.WriteString(bulletList("Improvements", d.Improvements))
		if len(d.PenaltiesApplied) > 0 {
			b.WriteString(bulletList("Penalties", d.PenaltiesApplied))
		}

	case *evaluate.PracticeEvaluation:
		b.WriteString(bulletList("Strengths", d.Strengths))
		b.WriteString(bulletList("Improvements", d.Improvements))
		b.WriteString(bulletList("Coaching tips", d.CoachingTips))
		if d.NextTopicSuggestion != "" {
			b.WriteString(theme.Hint.Render("Next topic to drill: "+d.NextTopicSuggestion) + "\n")
		}
	}

	if b.Len() > 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func bulletList(heading string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(heading) + "\n")
	for _, it := range items {
		b.WriteString(theme.Body.Render("  • "+it) + "\n")
	}
	return b.String()
}

func (s *SessionScreen) renderSummary(width, height int) string {
	hist := s.machine.History()

	var b strings.Builder
	switch s.machine.Status() {
	case sess.StatusTerminated:
		b.WriteString(theme.Title.Render("Session ended") + "\n")
		if reason := s.machine.EndReason(); reason != "" {
			b.WriteString(theme.Subtitle.Render(reason) + "\n")
		}
	default:
		b.WriteString(theme.Title.Render("Session complete") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Body.Render(fmt.Sprintf("Questions answered: %d", hist.Len())) + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Average score: %.0f", hist.AverageScore())) + "\n\n")

	for i, rec := range hist.Records() {
		line := fmt.Sprintf("%d. [%s] %.0f · %s", i+1, rec.Item.Difficulty, rec.Evaluation.Score, truncate(rec.Item.Prompt, width-16))
		b.WriteString(theme.Body.Render(line) + "\n")
	}

	b.WriteString("\n" + theme.Hint.Render("Press Enter to go back home."))
	return b.String()
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
