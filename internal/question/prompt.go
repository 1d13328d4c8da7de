package question

import (
	"fmt"
	"strings"

	"github.com/abhisek/prepdrill/internal/session"
)

const interviewSystemPrompt = `You are a senior technical interviewer generating one interview question at a time.

Rules:
- Generate a single question appropriate for the given skills, topic, and difficulty.
- The question must be answerable verbally in the expected time. No whiteboard coding.
- Easy questions test recall and definitions. Medium questions test applied understanding. Hard questions test design judgment and tradeoffs.
- key_points must list what a strong answer covers, specific enough to grade against.
- expected_time_seconds should match the depth you expect: 60-120 for easy, 120-240 for medium, 240-600 for hard.
- Do not repeat any question from the "already asked" list, including rephrasings of the same idea.`

const practiceSystemPrompt = `You are a patient study coach generating one practice question at a time.

Rules:
- Generate a single question appropriate for the given skills, topic, and difficulty.
- Practice questions should teach: prefer questions whose answer builds a reusable mental model over trivia.
- key_points must list what a complete answer covers, specific enough to grade against.
- expected_time_seconds should be generous; this is practice, not a timed exam.
- Do not repeat any question from the "already asked" list, including rephrasings of the same idea.`

// systemPrompt selects the prompt framing for the session mode.
func systemPrompt(mode session.Mode) string {
	if mode == session.ModePractice {
		return practiceSystemPrompt
	}
	return interviewSystemPrompt
}

// buildUserMessage constructs the user message from Input and Config limits.
func buildUserMessage(input Input, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Skills: %s\n", strings.Join(input.Skills, ", "))
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	if input.Topic != "" {
		fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	}

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(buildDedup(input.PreviousQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildDedup formats prior questions for the prompt, respecting the max
// limit. Returns "None" if there are no prior questions.
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
