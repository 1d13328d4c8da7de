// Package home is the main menu: it owns the wiring from configuration
// and the LLM provider to the individual feature screens.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdrill/internal/config"
	"github.com/abhisek/prepdrill/internal/evaluate"
	"github.com/abhisek/prepdrill/internal/llm"
	"github.com/abhisek/prepdrill/internal/question"
	"github.com/abhisek/prepdrill/internal/router"
	"github.com/abhisek/prepdrill/internal/screen"
	codingscreen "github.com/abhisek/prepdrill/internal/screens/coding"
	sessionscreen "github.com/abhisek/prepdrill/internal/screens/session"
	"github.com/abhisek/prepdrill/internal/screens/stats"
	sess "github.com/abhisek/prepdrill/internal/session"
	"github.com/abhisek/prepdrill/internal/store"
	"github.com/abhisek/prepdrill/internal/ui/components"
	"github.com/abhisek/prepdrill/internal/ui/layout"
	"github.com/abhisek/prepdrill/internal/ui/theme"
)

// defaultSkills seeds interview and practice sessions when the config
// does not name any.
var defaultSkills = []string{"data structures", "algorithms", "system design"}

// Deps carries everything the feature screens need.
type Deps struct {
	Provider llm.Provider
	Store    *store.Store
	Config   config.Config
}

// HomeScreen is the top-level menu.
type HomeScreen struct {
	deps   Deps
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	noProvider := deps.Provider == nil
	detail := ""
	if noProvider {
		detail = "set PREPDRILL_LLM_PROVIDER and an API key"
	}

	items := []components.MenuItem{
		{Label: "MOCK INTERVIEW", Detail: detail, Disabled: noProvider, Action: func() tea.Cmd {
			return h.startSession(sess.ModeInterview)
		}},
		{Label: "PRACTICE", Detail: detail, Disabled: noProvider, Action: func() tea.Cmd {
			return h.startSession(sess.ModePractice)
		}},
		{Label: "CODING CHALLENGES", Detail: detail, Disabled: noProvider, Action: func() tea.Cmd {
			return h.startCoding()
		}},
		{Label: "STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(deps.Store.Attempts())}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

// Launch returns the command that opens the named feature directly,
// bypassing the menu. Unknown names and a missing provider return nil.
func (h *HomeScreen) Launch(name string) tea.Cmd {
	if h.deps.Provider == nil {
		return nil
	}
	switch name {
	case "interview":
		return h.startSession(sess.ModeInterview)
	case "practice":
		return h.startSession(sess.ModePractice)
	case "code":
		return h.startCoding()
	}
	return nil
}

func (h *HomeScreen) startCoding() tea.Cmd {
	return func() tea.Msg {
		cfg := evaluate.DefaultEvaluatorConfig()
		return router.PushScreenMsg{Screen: codingscreen.New(
			evaluate.NewRunner(h.deps.Provider, cfg),
			evaluate.NewCodeEvaluator(h.deps.Provider, cfg),
			h.deps.Store.Attempts(),
		)}
	}
}

// startSession builds the oracle pipeline for one mode and pushes the
// session screen.
func (h *HomeScreen) startSession(mode sess.Mode) tea.Cmd {
	evaluator, err := evaluate.ForMode(mode, h.deps.Provider, evaluate.DefaultEvaluatorConfig())
	if err != nil {
		h.errMsg = err.Error()
		return nil
	}

	skills := h.deps.Config.Session.Skills
	if len(skills) == 0 {
		skills = defaultSkills
	}

	cfg := sess.Config{
		Mode:            mode,
		Skills:          skills,
		StartDifficulty: h.deps.Config.Session.StartDifficulty,
		MaxItems:        h.deps.Config.Session.MaxItems,
	}
	generator := question.New(h.deps.Provider, question.DefaultConfig())
	attempts := h.deps.Store.Attempts()

	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: sessionscreen.New(cfg, generator, evaluator, attempts),
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("PREPDRILL"))
	sections = append(sections, theme.Subtitle.Render("Timed, adaptive interview preparation"))

	model := "no LLM configured"
	if h.deps.Provider != nil {
		model = h.deps.Provider.ModelID()
	}
	sections = append(sections, theme.Hint.Render(fmt.Sprintf("model: %s", model)))

	sections = append(sections, h.menu.View())

	if h.errMsg != "" {
		sections = append(sections, theme.Fail.Render(h.errMsg))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
