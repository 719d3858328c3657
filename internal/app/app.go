package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/pmpquiz/internal/config"
	quizcore "github.com/abhisek/pmpquiz/internal/quiz"
	"github.com/abhisek/pmpquiz/internal/router"
	"github.com/abhisek/pmpquiz/internal/screen"
	"github.com/abhisek/pmpquiz/internal/screens/picker"
	"github.com/abhisek/pmpquiz/internal/screens/quiz"
	"github.com/abhisek/pmpquiz/internal/ui/layout"
)

// Model is the root Bubble Tea model: it owns the screen router and the
// header/footer frame.
type Model struct {
	router *router.Router
	width  int
	height int
}

// newModel builds the root model with the file picker as the initial
// screen. The picker's start callback wraps the merged set in a quiz
// screen.
func newModel(cfg *config.Config, log *zap.Logger, startDir string) Model {
	start := func(set quizcore.QuestionSet, sources []string) tea.Cmd {
		qs, err := quiz.New(set, sources, cfg, log)
		if err != nil {
			// The picker refuses empty sets before calling start.
			log.Error("start quiz", zap.Error(err))
			return nil
		}
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: qs}
		}
	}

	return Model{
		router: router.New(picker.New(startDir, start, false, log)),
	}
}

func (m Model) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
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
	if active != nil {
		title = active.Title()
	}

	status := ""
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.HeaderStatus()
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), footerHints...)
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(cfg *config.Config, log *zap.Logger, startDir string) error {
	p := tea.NewProgram(newModel(cfg, log, startDir))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
