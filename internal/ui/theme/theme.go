package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, focused, terminal-dark
var (
	Primary   = lipgloss.Color("#38BDF8") // Sky Blue
	Secondary = lipgloss.Color("#A78BFA") // Violet
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#34D399") // Emerald
	Error     = lipgloss.Color("#FB7185") // Rose
	Warning   = lipgloss.Color("#FB923C") // Orange
	Text      = lipgloss.Color("#E2E8F0") // Light Slate
	TextDim   = lipgloss.Color("#64748B") // Slate
	BgDark    = lipgloss.Color("#0B1120") // Near Black
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Pass = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Fail = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Timer
var (
	Clock = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	// ClockOvertime replaces Clock once the budget is spent.
	ClockOvertime = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Console styles the simulated run output pane.
var Console = lipgloss.NewStyle().
	Foreground(TextDim).
	Border(lipgloss.NormalBorder()).
	BorderForeground(Border).
	Padding(0, 1)
