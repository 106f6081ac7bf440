package pretty

import (
	"fmt"
	"strings"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummary renders the closing line of a list or resolve run:
// "2 assists available" or "No assists available", followed by the number
// of handlers that failed, if any.
func (s *Styles) FormatSummary(assists, failures int) string {
	var parts []string

	if assists == 0 {
		parts = append(parts, s.Dim.Render("No assists available"))
	} else {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d %s available", assists, plural(assists, "assist", "assists"))))
	}

	if failures > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s failed", failures, plural(failures, "handler", "handlers"))))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatDiffStat renders "1 insertion(+), 2 deletions(-)".
func (s *Styles) FormatDiffStat(additions, deletions int) string {
	parts := []string{
		s.DiffAdd.Render(fmt.Sprintf("%d %s(+)", additions, plural(additions, "insertion", "insertions"))),
		s.DiffRemove.Render(fmt.Sprintf("%d %s(-)", deletions, plural(deletions, "deletion", "deletions"))),
	}
	return strings.Join(parts, ", ") + "\n"
}

// FormatDiffLine colours one line of a unified diff.
func (s *Styles) FormatDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return s.DiffHeader.Render(line)
	case strings.HasPrefix(line, "@@"):
		return s.DiffHunk.Render(line)
	case strings.HasPrefix(line, "+"):
		return s.DiffAdd.Render(line)
	case strings.HasPrefix(line, "-"):
		return s.DiffRemove.Render(line)
	default:
		return s.DiffContext.Render(line)
	}
}
