package quiz

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is the quiz state machine. It owns the merged question set
// (read-only after construction), the per-question answer state, and the
// navigation cursor. All mutation happens through its methods so that
// correctness state is always derivable from the recorded choice and the
// question's correct index.
//
// A Session is driven by a single foreground interaction loop; it needs
// no locking.
type Session struct {
	id  string
	log *zap.Logger

	questions QuestionSet
	sources   []string

	selected []int  // choice index per question, -1 while unanswered
	correct  []bool // meaningful only where selected >= 0
	current  int
}

// NewSession wraps a freshly merged question set. It refuses an empty set:
// callers must never install a quiz with nothing to ask.
func NewSession(set QuestionSet, sources []string, log *zap.Logger) (*Session, error) {
	if len(set) == 0 {
		return nil, ErrNoQuestions
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		id:  uuid.New().String(),
		log: log,
	}
	s.install(set, sources)
	s.log.Info("session started",
		zap.String("session_id", s.id),
		zap.Int("questions", len(set)),
		zap.Strings("sources", sources),
	)
	return s, nil
}

// install swaps in a question set and fresh answer state in one step, so
// no mix of old questions and new answers is ever observable.
func (s *Session) install(set QuestionSet, sources []string) {
	selected := make([]int, len(set))
	for i := range selected {
		selected[i] = -1
	}
	s.questions = set
	s.sources = append([]string(nil), sources...)
	s.selected = selected
	s.correct = make([]bool, len(set))
	s.current = 0
}

// ID returns the session's identifier, used for log correlation.
func (s *Session) ID() string { return s.id }

// Total returns the number of questions in the set.
func (s *Session) Total() int { return len(s.questions) }

// Current returns the cursor position.
func (s *Session) Current() int { return s.current }

// CurrentQuestion returns the question under the cursor.
func (s *Session) CurrentQuestion() Question {
	return s.questions[s.current]
}

// QuestionAt returns the question at index i.
func (s *Session) QuestionAt(i int) Question {
	return s.questions[i]
}

// Sources returns the file paths the set was built from.
func (s *Session) Sources() []string {
	return append([]string(nil), s.sources...)
}

// Record stores choice as the answer to the current question and
// recomputes its correctness. Re-selecting the same choice is idempotent;
// a different choice overwrites both values. No other question's state is
// touched.
func (s *Session) Record(choice int) error {
	if choice < 0 || choice >= NumChoices {
		return fmt.Errorf("choice index %d out of range 0..%d", choice, NumChoices-1)
	}
	s.selected[s.current] = choice
	s.correct[s.current] = choice == s.questions[s.current].CorrectIndex
	s.log.Debug("answer recorded",
		zap.String("session_id", s.id),
		zap.Int("question", s.current),
		zap.Int("choice", choice),
		zap.Bool("correct", s.correct[s.current]),
	)
	return nil
}

// Answer returns the recorded choice for question i, and whether one has
// been recorded.
func (s *Session) Answer(i int) (choice int, answered bool) {
	if s.selected[i] < 0 {
		return -1, false
	}
	return s.selected[i], true
}

// Correct reports whether question i was answered correctly; answered is
// false when no answer has been recorded yet.
func (s *Session) Correct(i int) (correct bool, answered bool) {
	if s.selected[i] < 0 {
		return false, false
	}
	return s.correct[i], true
}

// Navigate moves the cursor to target. Out-of-range targets are a no-op.
func (s *Session) Navigate(target int) {
	if target < 0 || target >= len(s.questions) {
		return
	}
	s.current = target
}

// Prev moves the cursor back one question, clamped at the first.
func (s *Session) Prev() {
	if s.current > 0 {
		s.current--
	}
}

// Next moves the cursor forward one question, clamped at the last.
func (s *Session) Next() {
	if s.current < len(s.questions)-1 {
		s.current++
	}
}

// Reset clears all recorded answers and returns the cursor to the first
// question. The question set itself is untouched. Destructive: callers
// obtain confirmation before invoking it.
func (s *Session) Reset() {
	for i := range s.selected {
		s.selected[i] = -1
		s.correct[i] = false
	}
	s.current = 0
	s.log.Info("session reset", zap.String("session_id", s.id))
}

// Status recounts answered and correct questions from the answer arrays.
// Recomputing keeps it consistent after resets and answer overwrites.
func (s *Session) Status() (answered, correct int) {
	for i := range s.selected {
		if s.selected[i] < 0 {
			continue
		}
		answered++
		if s.correct[i] {
			correct++
		}
	}
	return answered, correct
}

// Load replaces the question set and source labels wholesale, clearing
// all per-question state. It refuses an empty set, leaving the running
// session untouched.
func (s *Session) Load(set QuestionSet, sources []string) error {
	if len(set) == 0 {
		return ErrNoQuestions
	}
	s.install(set, sources)
	s.log.Info("question set replaced",
		zap.String("session_id", s.id),
		zap.Int("questions", len(set)),
		zap.Strings("sources", sources),
	)
	return nil
}

// Report renders the results report for the session's current state. It
// is a pure query: the session stays answerable afterward.
func (s *Session) Report() string {
	return BuildReport(s.sources, s.questions, s.selected, s.correct)
}
