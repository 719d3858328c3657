package picker

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/pmpquiz/internal/quiz"
	"github.com/abhisek/pmpquiz/internal/router"
	"github.com/abhisek/pmpquiz/internal/screen"
	"github.com/abhisek/pmpquiz/internal/ui/components"
	"github.com/abhisek/pmpquiz/internal/ui/layout"
	"github.com/abhisek/pmpquiz/internal/ui/theme"
)

// StartFunc receives the merged, non-empty question set once the user
// confirms a selection.
type StartFunc func(set quiz.QuestionSet, sources []string) tea.Cmd

type filesLoadedMsg struct {
	Dir   string
	Files []string
	Warn  string
	Err   error
}

type setBuiltMsg struct {
	Set     quiz.QuestionSet
	Sources []string
	Err     error
}

// PickerScreen lets the user choose one or more question files from a
// folder before a quiz starts (or mid-quiz, to replace the set).
type PickerScreen struct {
	dir      string
	files    []string
	selected map[int]bool
	cursor   int

	browsing bool
	input    components.PathInput

	warn    string
	loading bool

	start      StartFunc
	cancelable bool // true when opened on top of a running quiz
	log        *zap.Logger
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates a PickerScreen browsing dir. cancelable controls whether
// esc closes the picker (only when a quiz is running underneath).
func New(dir string, start StartFunc, cancelable bool, log *zap.Logger) *PickerScreen {
	if log == nil {
		log = zap.NewNop()
	}
	return &PickerScreen{
		dir:        dir,
		selected:   make(map[int]bool),
		start:      start,
		cancelable: cancelable,
		log:        log,
	}
}

func (s *PickerScreen) Init() tea.Cmd {
	return discoverCmd(s.dir)
}

func (s *PickerScreen) Title() string {
	return "Select Question Files"
}

func (s *PickerScreen) KeyHints() []layout.KeyHint {
	if s.browsing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Open folder"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Space", Description: "Toggle"},
		{Key: "A", Description: "All"},
		{Key: "C", Description: "Clear"},
		{Key: "B", Description: "Browse"},
		{Key: "Enter", Description: "Start"},
	}
	if s.cancelable {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	return hints
}

// discoverCmd scans dir for question files, falling back to a recursive
// walk when the flat scan comes up empty.
func discoverCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		files, err := quiz.Discover(dir)
		if err != nil {
			return filesLoadedMsg{Dir: dir, Err: err}
		}
		if len(files) == 0 {
			files, err = quiz.DiscoverRecursive(dir)
			if err != nil {
				return filesLoadedMsg{Dir: dir, Err: err}
			}
		}
		msg := filesLoadedMsg{Dir: dir, Files: files}
		if len(files) == 0 {
			msg.Warn = fmt.Sprintf("No .json files found in: %s", dir)
		}
		return msg
	}
}

func (s *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case filesLoadedMsg:
		if msg.Err != nil {
			// An unreadable folder keeps the current listing.
			s.warn = msg.Err.Error()
			s.log.Warn("open folder", zap.String("dir", msg.Dir), zap.Error(msg.Err))
			return s, nil
		}
		s.dir = msg.Dir
		s.files = msg.Files
		s.selected = make(map[int]bool)
		s.cursor = 0
		s.warn = msg.Warn
		return s, nil

	case setBuiltMsg:
		s.loading = false
		if msg.Err != nil {
			s.warn = msg.Err.Error()
			s.log.Warn("question set rejected", zap.Error(msg.Err))
			return s, nil
		}
		if len(msg.Set) == 0 {
			s.warn = quiz.ErrNoQuestions.Error()
			return s, nil
		}
		return s, s.start(msg.Set, msg.Sources)

	case tea.KeyMsg:
		if s.browsing {
			return s.updateBrowsing(msg)
		}
		return s.updateList(msg)
	}

	return s, nil
}

func (s *PickerScreen) updateBrowsing(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		dir := strings.TrimSpace(s.input.Value())
		s.browsing = false
		if dir == "" || dir == s.dir {
			return s, nil
		}
		return s, discoverCmd(dir)
	case "esc":
		s.browsing = false
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PickerScreen) updateList(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.files)-1 {
			s.cursor++
		}
	case " ", "space":
		if len(s.files) > 0 {
			s.selected[s.cursor] = !s.selected[s.cursor]
		}
	case "a":
		for i := range s.files {
			s.selected[i] = true
		}
	case "c":
		s.selected = make(map[int]bool)
	case "b":
		s.input = components.NewPathInput("Path to a folder with question files", s.dir)
		s.browsing = true
		return s, s.input.Init()
	case "enter":
		return s.startQuiz()
	case "esc":
		if s.cancelable {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *PickerScreen) startQuiz() (screen.Screen, tea.Cmd) {
	if len(s.files) == 0 {
		s.warn = "No .json files are available in the selected folder."
		return s, nil
	}
	var paths []string
	for i, f := range s.files {
		if s.selected[i] {
			paths = append(paths, f)
		}
	}
	if len(paths) == 0 {
		s.warn = "Select at least one file."
		return s, nil
	}

	s.warn = ""
	s.loading = true
	s.log.Info("building question set", zap.Strings("files", paths))
	return s, func() tea.Msg {
		set, err := quiz.BuildSet(paths)
		return setBuiltMsg{Set: set, Sources: paths, Err: err}
	}
}

func (s *PickerScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(theme.Title.Render("  Select one or more question files to run"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("  Space toggles a file, Enter starts the quiz."))
	b.WriteString("\n\n")

	if s.browsing {
		b.WriteString("  " + s.input.View())
	} else {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  Folder: %s", s.dir)))
	}
	b.WriteString("\n\n")

	if s.warn != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + s.warn))
		b.WriteString("\n\n")
	}
	if s.loading {
		b.WriteString(theme.Hint.Render("  Loading questions..."))
		b.WriteString("\n\n")
	}

	for i, f := range s.files {
		label, err := filepath.Rel(s.dir, f)
		if err != nil {
			label = filepath.Base(f)
		}

		check := "[ ]"
		if s.selected[i] {
			check = "[x]"
		}
		prefix := "  "
		if i == s.cursor && !s.browsing {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", prefix, check, label)
		switch {
		case i == s.cursor && !s.browsing:
			b.WriteString(theme.Selected.Render(line))
		case s.selected[i]:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
