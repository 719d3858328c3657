package quiz

import (
	"path/filepath"
	"strings"
)

// BuildSet parses every path and concatenates the results in the given
// order. When a question's trimmed qid collides with one already seen,
// its qid is rewritten to "file-stem:qid" so both questions survive and
// the original identifier stays visible. Empty qids are never
// deduplicated; they carry no identity.
func BuildSet(paths []string) (QuestionSet, error) {
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}

	var set QuestionSet
	seen := make(map[string]struct{})

	for _, path := range paths {
		questions, err := ParseFile(path)
		if err != nil {
			// One bad file aborts the whole merge; a partial set would
			// silently drop content.
			return nil, err
		}
		stem := fileStem(path)
		for _, q := range questions {
			qid := strings.TrimSpace(q.QID)
			if qid != "" {
				if _, dup := seen[qid]; dup {
					q.QID = stem + ":" + qid
				}
			}
			if q.QID != "" {
				seen[q.QID] = struct{}{}
			}
			set = append(set, q)
		}
	}
	return set, nil
}

// fileStem returns the file name without directory or extension.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
