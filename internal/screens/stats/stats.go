// Package stats shows recent attempt history from the local store.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdrill/internal/router"
	"github.com/abhisek/prepdrill/internal/screen"
	"github.com/abhisek/prepdrill/internal/store"
	"github.com/abhisek/prepdrill/internal/ui/layout"
	"github.com/abhisek/prepdrill/internal/ui/theme"
)

type attemptsLoadedMsg struct {
	Attempts []store.Attempt
	Err      error
}

// StatsScreen lists recent attempts, newest first, with per-mode
// aggregates on top.
type StatsScreen struct {
	attempts store.AttemptRepo
	rows     []store.Attempt
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a stats screen backed by the attempt repository.
func New(attempts store.AttemptRepo) *StatsScreen {
	return &StatsScreen{attempts: attempts}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		rows, err := s.attempts.Recent(context.Background(), store.DefaultRecentLimit)
		return attemptsLoadedMsg{Attempts: rows, Err: err}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.rows = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.rows)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.rows) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Run an interview or practice session first.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(summaryLine(s.rows))))
	b.WriteString("\n\n")

	// Visible window keeps the cursor on screen for long histories.
	visible := height - 6
	if visible < 5 {
		visible = 5
	}
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}
	end := start + visible
	if end > len(s.rows) {
		end = len(s.rows)
	}

	for i := start; i < end; i++ {
		row := s.rows[i]
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-9s  %-8s  %3.0f  %s  %s",
			prefix,
			row.CreatedAt.Local().Format("Jan 02 15:04"),
			row.AssessmentType,
			row.Difficulty,
			row.Score,
			formatDuration(row.TimeTakenSeconds),
			row.SkillArea)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// summaryLine aggregates the loaded rows into one header line.
func summaryLine(rows []store.Attempt) string {
	var total float64
	counts := map[string]int{}
	for _, r := range rows {
		total += r.Score
		counts[r.AssessmentType]++
	}
	avg := total / float64(len(rows))

	parts := []string{fmt.Sprintf("%d attempts · avg %.0f", len(rows), avg)}
	for _, mode := range []string{"interview", "practice", "coding"} {
		if n := counts[mode]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, mode))
		}
	}
	return strings.Join(parts, " · ")
}

func formatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
