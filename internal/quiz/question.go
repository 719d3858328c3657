package quiz

// Citation points at the study material backing a question's explanation.
type Citation struct {
	Source  string
	Section string
	Page    string
}

// Question is a single multiple-choice item. Immutable once the loader
// has produced it.
type Question struct {
	QID          string
	Stem         string
	Choices      []string // exactly NumChoices entries after validation
	CorrectIndex int
	Explanation  string
	Citations    []Citation
}

// NumChoices is the fixed number of answer choices per question.
const NumChoices = 4

// QuestionSet is the merged, ordered question list for one quiz run.
// Within a set no two questions share a non-empty qid.
type QuestionSet []Question

// Letter maps a choice index to its display label: 0→A, 1→B, 2→C, 3→D.
func Letter(index int) string {
	return string(rune('A' + index))
}
