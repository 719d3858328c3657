package quiz

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Empty-result conditions. These are distinct from access and structural
// failures: every input may be individually valid and the result still empty.
var (
	ErrNoFiles     = errors.New("no question files selected")
	ErrNoQuestions = errors.New("no questions loaded from selected files")
)

// AccessError reports a file that could not be admitted at all: missing,
// unreadable, or over the size guardrail.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot load %s: %v", filepath.Base(e.Path), e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// StructuralError reports a file whose content is not a valid question
// document: broken JSON, a missing "questions" array, or a malformed
// question. A structural error rejects the whole file; no questions from
// it are admitted.
type StructuralError struct {
	Path string
	Err  error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("invalid question file %s: %v", filepath.Base(e.Path), e.Err)
}

func (e *StructuralError) Unwrap() error { return e.Err }
