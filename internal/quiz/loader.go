package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// MaxFileSize is the per-file guardrail. Question files are small; anything
// larger is almost certainly not question data.
const MaxFileSize = 2 * 1024 * 1024

// DefaultQuestionsDirname is the folder checked next to the executable on
// startup.
const DefaultQuestionsDirname = "questions"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Discover lists the immediate .json files in dir (extension matched
// case-insensitively), sorted by case-insensitive filename.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &AccessError{Path: dir, Err: err}
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	slices.SortFunc(paths, func(a, b string) int {
		return strings.Compare(strings.ToLower(filepath.Base(a)), strings.ToLower(filepath.Base(b)))
	})
	return paths, nil
}

// DiscoverRecursive walks dir and all subdirectories for .json files,
// sorted by case-insensitive full path. Callers use it only as a fallback
// when Discover finds nothing.
func DiscoverRecursive(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(d.Name()), ".json") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, &AccessError{Path: dir, Err: err}
	}
	slices.SortFunc(paths, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return paths, nil
}

// DefaultQuestionsDir returns the initial browse directory: a "questions"
// folder next to the running executable when present, otherwise the
// executable's own directory.
func DefaultQuestionsDir() string {
	base := "."
	if exe, err := os.Executable(); err == nil {
		base = filepath.Dir(exe)
	}
	candidate := filepath.Join(base, DefaultQuestionsDirname)
	if info, err := os.Stat(candidate); err == nil && info.IsDir() {
		return candidate
	}
	return base
}

// ParseFile reads and validates one question file. It fails closed: any
// malformed question rejects the entire file rather than silently hiding
// content from the quiz-taker.
func ParseFile(path string) ([]Question, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &AccessError{Path: path, Err: err}
	}
	if info.Size() > MaxFileSize {
		return nil, &AccessError{
			Path: path,
			Err:  fmt.Errorf("file is too large (%d bytes, limit is %d)", info.Size(), MaxFileSize),
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &AccessError{Path: path, Err: err}
	}
	// Files saved by common editors may carry a UTF-8 BOM.
	raw = bytes.TrimPrefix(raw, utf8BOM)

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &StructuralError{Path: path, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := validateDocument(doc); err != nil {
		return nil, &StructuralError{Path: path, Err: err}
	}

	items := doc.(map[string]any)["questions"].([]any)
	questions := make([]Question, 0, len(items))
	for _, item := range items {
		q, err := extractQuestion(item.(map[string]any))
		if err != nil {
			return nil, &StructuralError{Path: path, Err: err}
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// extractQuestion applies the per-field defaulting and coercion rules.
// Only the required shape (choice count, correct_index range) can fail;
// missing optional fields default to empty.
func extractQuestion(obj map[string]any) (Question, error) {
	// Placeholder used in error messages only; the final qid defaults to "".
	qidLabel := "(missing qid)"
	if v, ok := obj["qid"]; ok {
		qidLabel = asString(v)
	}

	rawChoices, ok := obj["choices"].([]any)
	if !ok || len(rawChoices) != NumChoices {
		return Question{}, fmt.Errorf("%s must have exactly %d choices", qidLabel, NumChoices)
	}
	choices := make([]string, NumChoices)
	for i, c := range rawChoices {
		choices[i] = asString(c)
	}

	correctIndex, ok := asChoiceIndex(obj["correct_index"])
	if !ok {
		return Question{}, fmt.Errorf("%s correct_index must be 0..%d", qidLabel, NumChoices-1)
	}

	var citations []Citation
	if rawCitations, ok := obj["citations"].([]any); ok {
		for _, rc := range rawCitations {
			cobj, _ := rc.(map[string]any)
			citations = append(citations, Citation{
				Source:  asString(cobj["source"]),
				Section: asString(cobj["section"]),
				Page:    asString(cobj["page"]),
			})
		}
	}

	return Question{
		QID:          asString(obj["qid"]),
		Stem:         asString(obj["stem"]),
		Choices:      choices,
		CorrectIndex: correctIndex,
		Explanation:  asString(obj["explanation"]),
		Citations:    citations,
	}, nil
}

// asString coerces a decoded JSON value to its string form. Absent values
// (nil) become the empty string.
func asString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1e15 {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		b, _ := json.Marshal(x)
		return string(b)
	}
}

// asChoiceIndex accepts only a JSON number that is exactly one of 0..3.
func asChoiceIndex(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	i := int(f)
	if float64(i) != f || i < 0 || i >= NumChoices {
		return 0, false
	}
	return i, true
}
