package picker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pmpquiz/internal/quiz"
	"github.com/abhisek/pmpquiz/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

const sampleDoc = `{"questions": [{"qid": "Q1", "stem": "s", "choices": ["a","b","c","d"], "correct_index": 0}]}`

func writeSample(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// runInit executes the screen's Init command and feeds the message back.
func runInit(t *testing.T, s *PickerScreen) *PickerScreen {
	t.Helper()
	msg := s.Init()()
	scr, _ := s.Update(msg)
	return scr.(*PickerScreen)
}

func TestPicker_DiscoverAndStart(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "one.json", sampleDoc)
	writeSample(t, dir, "two.json", sampleDoc)

	var started quiz.QuestionSet
	start := func(set quiz.QuestionSet, sources []string) tea.Cmd {
		started = set
		return nil
	}

	p := runInit(t, New(dir, start, false, nil))
	if len(p.files) != 2 {
		t.Fatalf("expected 2 files discovered, got %d", len(p.files))
	}

	// Select both files and start.
	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('a'))
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a build command")
	}

	scr, _ = scr.Update(cmd())
	p = scr.(*PickerScreen)
	if p.warn != "" {
		t.Fatalf("unexpected warning: %s", p.warn)
	}
	if len(started) != 2 {
		t.Fatalf("expected start with 2 questions, got %d", len(started))
	}
}

func TestPicker_StartWithoutSelection(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "one.json", sampleDoc)

	p := runInit(t, New(dir, nil, false, nil))

	scr, cmd := p.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Fatal("expected no command without a selection")
	}
	p = scr.(*PickerScreen)
	if !strings.Contains(p.warn, "at least one file") {
		t.Errorf("expected selection warning, got %q", p.warn)
	}
}

func TestPicker_InvalidFileShowsError(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "bad.json", `{"questions": [{"qid": "X", "choices": ["a"], "correct_index": 0}]}`)

	started := false
	start := func(quiz.QuestionSet, []string) tea.Cmd {
		started = true
		return nil
	}

	p := runInit(t, New(dir, start, false, nil))

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress(' '))
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a build command")
	}

	scr, _ = scr.Update(cmd())
	p = scr.(*PickerScreen)
	if started {
		t.Error("start must not run for an invalid set")
	}
	if !strings.Contains(p.warn, "bad.json") {
		t.Errorf("expected error naming the file, got %q", p.warn)
	}
}

func TestPicker_RecursiveFallback(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "nested")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	writeSample(t, nested, "deep.json", sampleDoc)

	p := runInit(t, New(dir, nil, false, nil))
	if len(p.files) != 1 {
		t.Fatalf("expected recursive fallback to find 1 file, got %d", len(p.files))
	}
	if filepath.Base(p.files[0]) != "deep.json" {
		t.Errorf("unexpected file %s", p.files[0])
	}
}

func TestPicker_EmptyFolderWarns(t *testing.T) {
	p := runInit(t, New(t.TempDir(), nil, false, nil))
	if len(p.files) != 0 {
		t.Fatalf("expected no files, got %d", len(p.files))
	}
	if !strings.Contains(p.warn, "No .json files found") {
		t.Errorf("expected empty-folder warning, got %q", p.warn)
	}
}

func TestPicker_View(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "one.json", sampleDoc)

	p := runInit(t, New(dir, nil, false, nil))
	view := p.View(80, 24)

	if !strings.Contains(view, "Select one or more question files") {
		t.Error("missing heading")
	}
	if !strings.Contains(view, "Folder:") {
		t.Error("missing folder line")
	}
	if !strings.Contains(view, "one.json") {
		t.Error("missing file entry")
	}
}

func TestPicker_FailedBrowseKeepsListing(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "one.json", sampleDoc)

	p := runInit(t, New(dir, nil, false, nil))
	if len(p.files) != 1 {
		t.Fatalf("expected 1 file discovered, got %d", len(p.files))
	}

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('b'))
	p = scr.(*PickerScreen)
	p.input.SetValue(filepath.Join(dir, "does-not-exist"))

	_, cmd := p.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a discover command")
	}
	scr, _ = p.Update(cmd())
	p = scr.(*PickerScreen)

	if p.dir != dir {
		t.Errorf("expected folder to stay %s, got %s", dir, p.dir)
	}
	if len(p.files) != 1 {
		t.Errorf("expected listing preserved, got %d files", len(p.files))
	}
	if p.warn == "" {
		t.Error("expected a warning for the unreadable folder")
	}
}

func TestPicker_SelectionToggle(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "one.json", sampleDoc)
	writeSample(t, dir, "two.json", sampleDoc)

	p := runInit(t, New(dir, nil, false, nil))

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress(' '))
	p = scr.(*PickerScreen)
	if !p.selected[0] {
		t.Fatal("expected first file selected")
	}

	scr, _ = p.Update(keyPress(' '))
	p = scr.(*PickerScreen)
	if p.selected[0] {
		t.Fatal("expected selection toggled off")
	}

	scr, _ = p.Update(keyPress('a'))
	p = scr.(*PickerScreen)
	if !p.selected[0] || !p.selected[1] {
		t.Fatal("expected all files selected")
	}

	scr, _ = p.Update(keyPress('c'))
	p = scr.(*PickerScreen)
	if len(p.selected) != 0 {
		t.Fatal("expected selection cleared")
	}
}
