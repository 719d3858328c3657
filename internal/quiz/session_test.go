package quiz

import (
	"errors"
	"testing"
)

func testSet(n int) QuestionSet {
	set := make(QuestionSet, n)
	for i := range set {
		set[i] = Question{
			QID:          "Q" + Letter(i%NumChoices),
			Stem:         "stem",
			Choices:      []string{"a", "b", "c", "d"},
			CorrectIndex: i % NumChoices,
		}
	}
	return set
}

func newTestSession(t *testing.T, n int) *Session {
	t.Helper()
	s, err := NewSession(testSet(n), []string{"test.json"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewSession_EmptySet(t *testing.T) {
	_, err := NewSession(nil, nil, nil)
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestRecord_Scoring(t *testing.T) {
	// Answers recorded in scattered navigation order; Status must not care.
	s := newTestSession(t, 5)

	s.Navigate(3)
	if err := s.Record(3); err != nil { // correct (3%4 == 3)
		t.Fatal(err)
	}
	s.Navigate(0)
	if err := s.Record(1); err != nil { // wrong (correct is 0)
		t.Fatal(err)
	}
	s.Navigate(1)
	if err := s.Record(1); err != nil { // correct
		t.Fatal(err)
	}

	answered, correct := s.Status()
	if answered != 3 || correct != 2 {
		t.Errorf("expected status (3, 2), got (%d, %d)", answered, correct)
	}
}

func TestRecord_Overwrite(t *testing.T) {
	s := newTestSession(t, 1)

	if err := s.Record(1); err != nil {
		t.Fatal(err)
	}
	if _, correct := s.Status(); correct != 0 {
		t.Fatal("expected wrong answer")
	}

	// Overwriting with the correct choice replaces both values.
	if err := s.Record(0); err != nil {
		t.Fatal(err)
	}
	answered, correct := s.Status()
	if answered != 1 || correct != 1 {
		t.Errorf("expected (1, 1) after overwrite, got (%d, %d)", answered, correct)
	}

	// Re-selecting the same choice is idempotent.
	if err := s.Record(0); err != nil {
		t.Fatal(err)
	}
	answered, correct = s.Status()
	if answered != 1 || correct != 1 {
		t.Errorf("expected (1, 1) after re-select, got (%d, %d)", answered, correct)
	}
}

func TestRecord_ChoiceOutOfRange(t *testing.T) {
	s := newTestSession(t, 1)
	for _, choice := range []int{-1, 4, 99} {
		if err := s.Record(choice); err == nil {
			t.Errorf("expected error for choice %d", choice)
		}
	}
	if answered, _ := s.Status(); answered != 0 {
		t.Error("rejected choice must not be recorded")
	}
}

func TestNavigate_Boundaries(t *testing.T) {
	s := newTestSession(t, 3)

	s.Prev()
	if s.Current() != 0 {
		t.Errorf("Prev at 0 should stay at 0, got %d", s.Current())
	}

	s.Navigate(2)
	s.Next()
	if s.Current() != 2 {
		t.Errorf("Next at last should stay at last, got %d", s.Current())
	}

	// Out-of-range Navigate is a no-op.
	s.Navigate(-1)
	s.Navigate(3)
	if s.Current() != 2 {
		t.Errorf("out-of-range Navigate must not move the cursor, got %d", s.Current())
	}
}

func TestReset(t *testing.T) {
	s := newTestSession(t, 4)
	s.Record(0)
	s.Navigate(2)
	s.Record(1)
	s.Navigate(3)

	s.Reset()

	answered, correct := s.Status()
	if answered != 0 || correct != 0 {
		t.Errorf("expected (0, 0) after reset, got (%d, %d)", answered, correct)
	}
	if s.Current() != 0 {
		t.Errorf("expected cursor 0 after reset, got %d", s.Current())
	}
	// The question set itself is untouched.
	if s.Total() != 4 || s.QuestionAt(1).Stem != "stem" {
		t.Error("reset must not touch the question set")
	}
}

func TestLoad_ReplacesStateAtomically(t *testing.T) {
	s := newTestSession(t, 2)
	s.Record(1)
	s.Navigate(1)

	if err := s.Load(testSet(5), []string{"other.json"}); err != nil {
		t.Fatal(err)
	}

	if s.Total() != 5 {
		t.Errorf("expected total 5, got %d", s.Total())
	}
	if s.Current() != 0 {
		t.Errorf("expected cursor 0, got %d", s.Current())
	}
	answered, correct := s.Status()
	if answered != 0 || correct != 0 {
		t.Errorf("expected fresh answer state, got (%d, %d)", answered, correct)
	}
	if got := s.Sources(); len(got) != 1 || got[0] != "other.json" {
		t.Errorf("expected sources replaced, got %v", got)
	}
}

func TestLoad_EmptySetRejected(t *testing.T) {
	s := newTestSession(t, 2)
	s.Record(1)

	if err := s.Load(nil, nil); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}

	// The running session is untouched by the failed load.
	if s.Total() != 2 {
		t.Errorf("expected total 2, got %d", s.Total())
	}
	if answered, _ := s.Status(); answered != 1 {
		t.Error("failed load must not clear answers")
	}
}

func TestAnswerAndCorrect(t *testing.T) {
	s := newTestSession(t, 2)

	if _, answered := s.Answer(0); answered {
		t.Error("unanswered question reported as answered")
	}
	if _, answered := s.Correct(0); answered {
		t.Error("unanswered question has no correctness")
	}

	s.Record(0)
	choice, answered := s.Answer(0)
	if !answered || choice != 0 {
		t.Errorf("expected (0, true), got (%d, %v)", choice, answered)
	}
	correct, answered := s.Correct(0)
	if !answered || !correct {
		t.Errorf("expected correct answer, got (%v, %v)", correct, answered)
	}
}
