package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pmpquiz/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "picker"}
	r := New(s1)

	s2 := &stubScreen{title: "quiz"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("expected active 'quiz', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "picker"}
	r := New(s1)
	r.Push(&stubScreen{title: "quiz"})

	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "picker" {
		t.Errorf("expected active 'picker', got %q", r.Active().Title())
	}

	// Popping the last screen is a no-op.
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("expected depth to stay 1, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "picker"}
	r := New(s1)
	r.Push(&stubScreen{title: "quiz"})

	s3 := &stubScreen{title: "fresh quiz"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth to stay 2, got %d", r.Depth())
	}
	if r.Active().Title() != "fresh quiz" {
		t.Errorf("expected active 'fresh quiz', got %q", r.Active().Title())
	}
	if !s3.initRan {
		t.Error("expected Init to run on replacement screen")
	}
}

func TestUpdateRouting(t *testing.T) {
	r := New(&stubScreen{title: "picker"})

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "quiz"}})
	if r.Depth() != 2 {
		t.Fatalf("expected depth 2 after push msg, got %d", r.Depth())
	}

	r.Update(ReplaceScreenMsg{Screen: &stubScreen{title: "report"}})
	if r.Active().Title() != "report" {
		t.Fatalf("expected active 'report', got %q", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Fatalf("expected depth 1 after pop msg, got %d", r.Depth())
	}
}
