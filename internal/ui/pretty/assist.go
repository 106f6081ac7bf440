package pretty

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FormatLocation renders path:line:col, or path:line:col-line:col when the
// selection is not empty.
func (s *Styles) FormatLocation(path string, startLine, startCol, endLine, endCol int) string {
	loc := fmt.Sprintf(":%d:%d", startLine, startCol)
	if endLine != startLine || endCol != startCol {
		loc += fmt.Sprintf("-%d:%d", endLine, endCol)
	}
	return s.FilePath.Render(path) + s.Location.Render(loc)
}

// FormatAssist renders one numbered assist line:
//
//	1. Separate thousands  (separate_decimal_thousands)
func (s *Styles) FormatAssist(index int, id, label, group string) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("  %d. %s  %s", index, s.Label.Render(label), s.AssistID.Render("("+id+")")))
	if group != "" {
		builder.WriteString("  " + s.Group.Render("["+group+"]"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// FormatSourceContext renders a source line with the selected columns
// underlined. startCol and endCol are 1-based character columns; an empty
// selection renders a single caret.
func (s *Styles) FormatSourceContext(line string, startCol, endCol int) string {
	const indent = "     "

	var builder strings.Builder
	builder.WriteString(indent + s.SourceLine.Render(strings.ReplaceAll(line, "\t", " ")) + "\n")

	if startCol < 1 {
		return builder.String()
	}

	width := 1
	if endCol > startCol {
		width = endCol - startCol
	}
	if maxWidth := utf8.RuneCountInString(line) - startCol + 1; maxWidth > 0 && width > maxWidth {
		width = maxWidth
	}

	marker := "^" + strings.Repeat("~", width-1)
	builder.WriteString(indent + strings.Repeat(" ", startCol-1) + s.Marker.Render(marker) + "\n")

	return builder.String()
}
