package quiz

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/pmpquiz/internal/config"
	quizcore "github.com/abhisek/pmpquiz/internal/quiz"
	"github.com/abhisek/pmpquiz/internal/router"
	"github.com/abhisek/pmpquiz/internal/screen"
	"github.com/abhisek/pmpquiz/internal/screens/picker"
	"github.com/abhisek/pmpquiz/internal/screens/report"
	"github.com/abhisek/pmpquiz/internal/ui/components"
	"github.com/abhisek/pmpquiz/internal/ui/layout"
)

// confirmKind identifies which destructive operation is awaiting a
// yes/no answer.
type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmReset
	confirmLoadNew
)

// setReplacedMsg tells the quiz screen its session's question set was
// swapped by the load-new picker.
type setReplacedMsg struct{}

// QuizScreen drives a quiz session: one question at a time, answer
// recording, navigation, reset, and finish-and-grade.
type QuizScreen struct {
	session *quizcore.Session
	log     *zap.Logger

	choices          components.ChoiceList
	showExplanations bool

	confirm confirmKind

	jumping bool
	jumpBuf string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New wraps a freshly merged question set in a session and returns the
// screen driving it.
func New(set quizcore.QuestionSet, sources []string, cfg *config.Config, log *zap.Logger) (*QuizScreen, error) {
	session, err := quizcore.NewSession(set, sources, log)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &QuizScreen{
		session:          session,
		log:              log,
		showExplanations: cfg.ShowExplanations,
	}
	s.syncChoices()
	return s, nil
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// HeaderStatus shows the running counts in the header.
func (s *QuizScreen) HeaderStatus() string {
	answered, correct := s.session.Status()
	return fmt.Sprintf("Answered %d/%d   Correct %d", answered, s.session.Total(), correct)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirm != confirmNone {
		return []layout.KeyHint{
			{Key: "Y", Description: "Confirm"},
			{Key: "N", Description: "Cancel"},
		}
	}
	if s.jumping {
		return []layout.KeyHint{
			{Key: "0-9", Description: "Question number"},
			{Key: "Enter", Description: "Go"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choice"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "G", Description: "Go to"},
		{Key: "E", Description: "Explain"},
		{Key: "R", Description: "Reset"},
		{Key: "N", Description: "New files"},
		{Key: "F", Description: "Finish"},
	}
}

// syncChoices rebuilds the choice list for the question under the
// cursor, restoring any recorded answer.
func (s *QuizScreen) syncChoices() {
	q := s.session.CurrentQuestion()
	cl := components.NewChoiceList(q.Choices, q.CorrectIndex)
	if choice, answered := s.session.Answer(s.session.Current()); answered {
		cl.Chosen = choice
		cl.Cursor = choice
	}
	cl.Reveal = s.showExplanations
	s.choices = cl
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case setReplacedMsg:
		s.syncChoices()
		return s, nil

	case tea.KeyMsg:
		if s.confirm != confirmNone {
			return s.updateConfirm(msg)
		}
		if s.jumping {
			return s.updateJump(msg)
		}
		return s.updateQuestion(msg)
	}

	return s, nil
}

func (s *QuizScreen) updateConfirm(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	kind := s.confirm
	switch msg.String() {
	case "y", "Y", "enter":
		s.confirm = confirmNone
		switch kind {
		case confirmReset:
			s.session.Reset()
			s.syncChoices()
			return s, nil
		case confirmLoadNew:
			return s, s.openPicker()
		}
	case "n", "N", "esc":
		s.confirm = confirmNone
	}
	return s, nil
}

func (s *QuizScreen) updateJump(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	switch {
	case key == "enter":
		s.jumping = false
		if n, err := strconv.Atoi(s.jumpBuf); err == nil {
			// Out-of-range targets are a no-op by contract.
			s.session.Navigate(n - 1)
			s.syncChoices()
		}
		s.jumpBuf = ""
	case key == "esc":
		s.jumping = false
		s.jumpBuf = ""
	case key == "backspace":
		if len(s.jumpBuf) > 0 {
			s.jumpBuf = s.jumpBuf[:len(s.jumpBuf)-1]
		}
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		s.jumpBuf += key
	}
	return s, nil
}

func (s *QuizScreen) updateQuestion(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if err := s.session.Record(s.choices.Cursor); err != nil {
			s.log.Error("record answer", zap.Error(err))
			return s, nil
		}
		s.choices.Chosen = s.choices.Cursor
		return s, nil

	case "left":
		s.session.Prev()
		s.syncChoices()
		return s, nil

	case "right":
		s.session.Next()
		s.syncChoices()
		return s, nil

	case "g":
		s.jumping = true
		s.jumpBuf = ""
		return s, nil

	case "e":
		s.showExplanations = !s.showExplanations
		s.choices.Reveal = s.showExplanations
		return s, nil

	case "r":
		s.confirm = confirmReset
		return s, nil

	case "n":
		s.confirm = confirmLoadNew
		return s, nil

	case "f":
		text := s.session.Report()
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: report.New(text)}
		}
	}

	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	return s, cmd
}

// openPicker pushes a picker whose start callback swaps the new set
// into the existing session and pops back here.
func (s *QuizScreen) openPicker() tea.Cmd {
	start := func(set quizcore.QuestionSet, sources []string) tea.Cmd {
		if err := s.session.Load(set, sources); err != nil {
			// The picker rejects empty sets before calling start.
			s.log.Error("load question set", zap.Error(err))
			return nil
		}
		return tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return setReplacedMsg{} },
		)
	}
	p := picker.New(quizcore.DefaultQuestionsDir(), start, true, s.log)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: p}
	}
}
