package reporter

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// diffContextLines is the number of unchanged lines around each hunk.
const diffContextLines = 1

// Diff is a unified diff between a file before and after an assist.
type Diff struct {
	Text      string
	Additions int
	Deletions int
}

// HasChanges reports whether the diff has any hunk.
func (d *Diff) HasChanges() bool {
	return d != nil && d.Text != ""
}

// UnifiedDiff compares before and after line by line.
func UnifiedDiff(path string, before, after []byte) (*Diff, error) {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  diffContextLines,
	})
	if err != nil {
		return nil, fmt.Errorf("diff %s: %w", path, err)
	}

	diff := &Diff{Text: text}
	for line := range strings.SplitSeq(text, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			diff.Additions++
		case strings.HasPrefix(line, "-"):
			diff.Deletions++
		}
	}

	return diff, nil
}
