// Package challenge is the static coding challenge catalog: categories,
// challenges, per-language starter code, and test cases.
package challenge

// Language identifiers used as StarterCode keys.
const (
	LangJavaScript = "javascript"
	LangPython     = "python"
	LangGo         = "go"
)

// Languages returns the supported languages in display order. The first
// entry is the default for a fresh coding session.
func Languages() []string {
	return []string{LangJavaScript, LangPython, LangGo}
}

// TestCase is one input/expected-output pair a solution is graded
// against.
type TestCase struct {
	ID             string
	Input          string
	ExpectedOutput string
}

// Challenge is one coding problem.
type Challenge struct {
	ID          string
	CategoryID  string
	Title       string
	Description string
	Difficulty  string

	// StarterCode maps language → template. Selecting a language seeds
	// the editor with exactly this text.
	StarterCode map[string]string

	TestCases []TestCase

	// Hints are ordered from gentle nudge to near-spoiler.
	Hints []string

	// ExpectedMinutes is the time budget; the tracker converts to seconds.
	ExpectedMinutes int
}

// Category groups challenges by theme.
type Category struct {
	ID          string
	Name        string
	Description string
}
