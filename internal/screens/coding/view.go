package coding

import (
	"fmt"
	"strings"

	"github.com/abhisek/prepdrill/internal/challenge"
	codingctl "github.com/abhisek/prepdrill/internal/coding"
	"github.com/abhisek/prepdrill/internal/ui/theme"
)

func (s *CodingScreen) View(width, height int) string {
	switch s.ctl.Status() {
	case codingctl.StatusSelecting:
		return s.renderSelection("Pick a category", s.catMenu.View())
	case codingctl.StatusCategorySelected:
		return s.renderSelection(categoryTitle(s.ctl.CategoryID()), s.chalMenu.View())
	case codingctl.StatusCoding, codingctl.StatusSubmitting:
		return s.renderEditor(width)
	case codingctl.StatusReviewing:
		return s.renderReview(width)
	}
	return ""
}

func categoryTitle(id string) string {
	for _, cat := range challenge.Categories() {
		if cat.ID == id {
			return cat.Name
		}
	}
	return "Challenges"
}

func (s *CodingScreen) renderSelection(title, menu string) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(title) + "\n\n")
	b.WriteString(menu)
	if s.errMsg != "" {
		b.WriteString("\n" + theme.Fail.Render(s.errMsg))
	}
	return b.String()
}

func (s *CodingScreen) renderEditor(width int) string {
	ch := s.ctl.Challenge()

	var b strings.Builder

	meta := fmt.Sprintf("%s · %s · %s", ch.Title, ch.Difficulty, s.ctl.Language())
	b.WriteString(theme.Subtitle.Render(meta) + "\n")
	b.WriteString(theme.Body.Render(ch.Description) + "\n\n")

	b.WriteString(s.editor.View() + "\n")

	if hints := s.ctl.RevealedHints(); len(hints) > 0 {
		b.WriteString("\n")
		for _, i := range hints {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("Hint %d: %s", i+1, ch.Hints[i])) + "\n")
		}
	}

	if out := s.ctl.Console(); out != "" {
		b.WriteString("\n" + theme.Console.Width(width-4).Render(out) + "\n")
	}

	if s.busy {
		if s.ctl.Status() == codingctl.StatusSubmitting {
			b.WriteString("\n" + theme.Hint.Render("Grading your solution..."))
		} else {
			b.WriteString("\n" + theme.Hint.Render("Running..."))
		}
	}
	if s.errMsg != "" {
		b.WriteString("\n" + theme.Fail.Render(s.errMsg))
	}

	return b.String()
}

func (s *CodingScreen) renderReview(width int) string {
	eval := s.ctl.Evaluation()
	if eval == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(theme.Title.Render(fmt.Sprintf("Score: %.0f/100", eval.Score)) + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Tests: %d/%d passed · took %s",
		eval.PassedCount, eval.TotalCount, formatElapsed(s.ctl.TimeSpentSeconds()))) + "\n\n")

	for _, tr := range eval.TestResults {
		mark := theme.Pass.Render("✓")
		if !tr.Passed {
			mark = theme.Fail.Render("✗")
		}
		line := fmt.Sprintf("%s %s", mark, tr.ID)
		if !tr.Passed && tr.Explanation != "" {
			line += theme.Hint.Render("  " + tr.Explanation)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	q := eval.CodeQuality
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"readability %.0f · efficiency %.0f · correctness %.0f",
		q.Readability, q.Efficiency, q.Correctness)) + "\n\n")

	if eval.Feedback != "" {
		b.WriteString(theme.Card.Width(width-4).Render(theme.Body.Render(eval.Feedback)) + "\n\n")
	}
	if len(eval.Suggestions) > 0 {
		b.WriteString(theme.Subtitle.Render("Suggestions") + "\n")
		for _, sug := range eval.Suggestions {
			b.WriteString(theme.Body.Render("  • "+sug) + "\n")
		}
	}

	return b.String()
}

func formatElapsed(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
