package quiz

import (
	"fmt"
	"path/filepath"
	"strings"
)

const reportRule = 60

// BuildReport renders the plain-text results report: the files used, the
// score, and one detail block per answered-and-missed question. Questions
// with no recorded answer are excluded from the detail section entirely.
func BuildReport(sources []string, questions QuestionSet, selected []int, correct []bool) string {
	correctCount := 0
	for i := range questions {
		if selected[i] >= 0 && correct[i] {
			correctCount++
		}
	}
	score := 0.0
	if len(questions) > 0 {
		score = float64(correctCount) / float64(len(questions)) * 100
	}

	var lines []string
	lines = append(lines, "PMP Quiz Report", "", "Files used:")
	for _, p := range sources {
		lines = append(lines, "  - "+filepath.Base(p))
	}
	lines = append(lines, "",
		fmt.Sprintf("Score: %d/%d (%.1f%%)", correctCount, len(questions), score),
		"")

	missed := false
	for i, q := range questions {
		if selected[i] < 0 || correct[i] {
			continue
		}
		missed = true
		picked := selected[i]

		lines = append(lines,
			fmt.Sprintf("Question %d [%s]", i+1, q.QID),
			q.Stem,
			"",
			fmt.Sprintf("Your answer: %s. %s", Letter(picked), q.Choices[picked]),
			fmt.Sprintf("Correct answer: %s. %s", Letter(q.CorrectIndex), q.Choices[q.CorrectIndex]),
		)
		if q.Explanation != "" {
			lines = append(lines, "Why: "+q.Explanation)
		}
		if len(q.Citations) > 0 {
			lines = append(lines, "Where to study:")
			for _, c := range q.Citations {
				entry := fmt.Sprintf("  - %s | %s", c.Source, c.Section)
				if c.Page != "" {
					entry += " | page " + c.Page
				}
				lines = append(lines, entry)
			}
		}
		lines = append(lines, "", strings.Repeat("-", reportRule), "")
	}

	if !missed {
		lines = append(lines, "No incorrect answers to review.")
	}

	return strings.Join(lines, "\n")
}
