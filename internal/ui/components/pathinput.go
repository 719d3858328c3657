package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pmpquiz/internal/ui/theme"
)

// PathInput wraps bubbles/textinput for the picker's folder prompt.
type PathInput struct {
	Model textinput.Model
}

// NewPathInput creates a styled text input prefilled with value.
func NewPathInput(placeholder, value string) PathInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.Focus()
	return PathInput{Model: ti}
}

// Init returns the initial command.
func (p PathInput) Init() tea.Cmd {
	return p.Model.Focus()
}

// Update handles messages.
func (p PathInput) Update(msg tea.Msg) (PathInput, tea.Cmd) {
	var cmd tea.Cmd
	p.Model, cmd = p.Model.Update(msg)
	return p, cmd
}

// View renders the input with a folder prompt.
func (p PathInput) View() string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("Folder: ") + p.Model.View()
}

// Value returns the current input value.
func (p PathInput) Value() string {
	return p.Model.Value()
}

// SetValue replaces the current input value.
func (p *PathInput) SetValue(v string) {
	p.Model.SetValue(v)
}
