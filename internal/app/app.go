// Package app assembles the root Bubble Tea model: the screen router,
// the shared header/footer chrome, and program startup.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdrill/internal/router"
	"github.com/abhisek/prepdrill/internal/screen"
	"github.com/abhisek/prepdrill/internal/screens/home"
	"github.com/abhisek/prepdrill/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	startCmd tea.Cmd
	width    int
	height   int
}

func newAppModel(deps home.Deps, startMode string) AppModel {
	h := home.New(deps)
	return AppModel{
		router:   router.New(h),
		startCmd: h.Launch(startMode),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.startCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Screens size their own widgets from the window.
		cmd := m.router.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// Esc is owned by the screens: the session screen turns it into
		// a quit confirmation, the others pop themselves.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.HeaderStatus()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program. A non-empty startMode ("interview",
// "practice", "code") opens that feature immediately.
func Run(deps home.Deps, startMode string) error {
	p := tea.NewProgram(newAppModel(deps, startMode))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
