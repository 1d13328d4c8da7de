package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextArea wraps bubbles/textarea for answers and the code editor.
type TextArea struct {
	Model textarea.Model
}

// NewTextArea creates a focused multi-line input.
func NewTextArea(placeholder string) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.Focus()
	return TextArea{Model: ta}
}

// Init returns the initial command.
func (t TextArea) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input.
func (t TextArea) View() string {
	return t.Model.View()
}

// Value returns the current contents.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// SetValue replaces the contents.
func (t *TextArea) SetValue(s string) {
	t.Model.SetValue(s)
}

// SetSize resizes the editor.
func (t *TextArea) SetSize(width, height int) {
	t.Model.SetWidth(width)
	t.Model.SetHeight(height)
}
