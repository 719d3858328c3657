package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pmpquiz/internal/quiz"
	"github.com/abhisek/pmpquiz/internal/ui/theme"
)

// ChoiceList renders the four answer choices of a question. Unlike a
// one-shot selector it stays interactive after an answer is recorded:
// the quiz allows changing an answer at any time.
type ChoiceList struct {
	Choices []string
	Correct int

	Cursor int
	Chosen int // -1 while unanswered

	// Reveal colors the chosen choice by correctness. Off by default so
	// the quiz does not give the answer away while questions are open.
	Reveal bool
}

// NewChoiceList creates a choice list with no recorded answer.
func NewChoiceList(choices []string, correct int) ChoiceList {
	return ChoiceList{
		Choices: choices,
		Correct: correct,
		Chosen:  -1,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement. Choosing is driven by the parent
// screen, which owns the session.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Choices)-1 {
			c.Cursor++
		}
	}

	return c, nil
}

// View renders the choices with A-D labels.
func (c ChoiceList) View() string {
	var s string
	for i, choice := range c.Choices {
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		marker := " "
		if i == c.Chosen {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, quiz.Letter(i), choice)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case c.Reveal && c.Chosen >= 0 && i == c.Chosen && i == c.Correct:
			style = theme.Correct
		case c.Reveal && c.Chosen >= 0 && i == c.Chosen:
			style = theme.Incorrect
		case i == c.Chosen:
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		case i == c.Cursor:
			style = theme.Selected
		}

		s += style.Render(line) + "\n"
	}
	return s
}
