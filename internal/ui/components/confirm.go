package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pmpquiz/internal/ui/theme"
)

// Confirm is a yes/no prompt for destructive operations. The core never
// resets or replaces a quiz on its own; it acts only on a confirmed
// intent, and this component is where the confirmation happens.
type Confirm struct {
	Prompt string
}

// View renders the prompt as a centered card.
func (c Confirm) View(width, height int) string {
	card := theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Prompt) +
			"\n\n" +
			theme.Hint.Render("y: yes    n: no"),
	)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}
