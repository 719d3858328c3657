package quiz

import (
	"fmt"
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pmpquiz/internal/ui/components"
	"github.com/abhisek/pmpquiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.confirm != confirmNone {
		return s.renderConfirm(width, height)
	}
	return s.renderQuestion(width, height)
}

func (s *QuizScreen) renderConfirm(width, height int) string {
	var prompt string
	switch s.confirm {
	case confirmReset:
		prompt = "Reset will clear all answers and start over. Continue?"
	case confirmLoadNew:
		prompt = "This will replace the current question set. Continue?"
	}
	return components.Confirm{Prompt: prompt}.View(width, height)
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	sess := s.session
	q := sess.CurrentQuestion()

	var b strings.Builder
	b.WriteString("\n")

	// Source files line.
	names := make([]string, 0, len(sess.Sources()))
	for _, p := range sess.Sources() {
		names = append(names, filepath.Base(p))
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  Loaded: " + strings.Join(names, ", ")))
	b.WriteString("\n\n")

	// Question header and stem.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d [%s]", sess.Current()+1, sess.Total(), q.QID)))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.
		Width(width - 4).
		PaddingLeft(2).
		Render(q.Stem))
	b.WriteString("\n\n")

	b.WriteString(s.choices.View())
	b.WriteString("\n")

	if line := s.explanationLine(); line != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width - 4).
			PaddingLeft(2).
			Foreground(theme.TextDim).
			Italic(true).
			Render(line))
		b.WriteString("\n")
	}

	if s.jumping {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  Go to question: %s_", s.jumpBuf)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.renderNavStrip(width))

	return b.String()
}

// explanationLine mirrors the show-explanation toggle: only an answered
// question ever reveals its explanation.
func (s *QuizScreen) explanationLine() string {
	if !s.showExplanations {
		return ""
	}
	cur := s.session.Current()
	correct, answered := s.session.Correct(cur)
	if !answered {
		return ""
	}

	explanation := strings.TrimSpace(s.session.CurrentQuestion().Explanation)
	if explanation == "" {
		explanation = "No explanation for this question."
	}
	prefix := "Incorrect."
	if correct {
		prefix = "Correct."
	}
	return prefix + " " + explanation
}

// renderNavStrip draws one numbered cell per question, colored by state,
// with the current question marked.
func (s *QuizScreen) renderNavStrip(width int) string {
	sess := s.session

	var b strings.Builder
	b.WriteString(theme.Hint.Render("  Questions:"))
	b.WriteString("\n  ")

	lineWidth := 2
	for i := 0; i < sess.Total(); i++ {
		cell := fmt.Sprintf(" %d ", i+1)

		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if correct, answered := sess.Correct(i); answered {
			if correct {
				style = theme.Correct
			} else {
				style = theme.Incorrect
			}
		}
		if i == sess.Current() {
			style = style.Underline(true).Bold(true)
		}

		cellWidth := len(cell) + 1
		if lineWidth+cellWidth > width-4 {
			b.WriteString("\n  ")
			lineWidth = 2
		}
		b.WriteString(style.Render(cell))
		b.WriteString(" ")
		lineWidth += cellWidth
	}

	return b.String()
}
