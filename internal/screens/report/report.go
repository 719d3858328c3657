package report

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pmpquiz/internal/router"
	"github.com/abhisek/pmpquiz/internal/screen"
	"github.com/abhisek/pmpquiz/internal/ui/layout"
	"github.com/abhisek/pmpquiz/internal/ui/theme"
)

// ReportScreen shows the results report in a read-only scrollable view.
// Grading is a query, not a transition: closing this screen returns to
// the quiz with the session still answerable.
type ReportScreen struct {
	lines  []string
	offset int
	height int
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a ReportScreen for the given report text.
func New(text string) *ReportScreen {
	return &ReportScreen{
		lines: strings.Split(text, "\n"),
	}
}

func (s *ReportScreen) Init() tea.Cmd {
	return nil
}

func (s *ReportScreen) Title() string {
	return "Results"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "PgUp/PgDn", Description: "Page"},
		{Key: "Esc", Description: "Back to quiz"},
	}
}

// visibleLines is the number of report lines shown at once, leaving room
// for the position indicator.
func (s *ReportScreen) visibleLines() int {
	v := s.height - 2
	if v < 1 {
		v = 1
	}
	return v
}

func (s *ReportScreen) maxOffset() int {
	m := len(s.lines) - s.visibleLines()
	if m < 0 {
		m = 0
	}
	return m
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		if s.offset < s.maxOffset() {
			s.offset++
		}
	case "pgup":
		s.offset -= s.visibleLines()
		if s.offset < 0 {
			s.offset = 0
		}
	case "pgdown":
		s.offset += s.visibleLines()
		if s.offset > s.maxOffset() {
			s.offset = s.maxOffset()
		}
	case "home":
		s.offset = 0
	case "end":
		s.offset = s.maxOffset()
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	s.height = height
	if s.offset > s.maxOffset() {
		s.offset = s.maxOffset()
	}

	visible := s.visibleLines()
	end := s.offset + visible
	if end > len(s.lines) {
		end = len(s.lines)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width-4).
		PaddingLeft(2).
		Foreground(theme.Text).
		Render(strings.Join(s.lines[s.offset:end], "\n")))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  Lines %d-%d of %d", s.offset+1, end, len(s.lines))))

	return b.String()
}
