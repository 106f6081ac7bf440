package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	tablePadding   = 2
	minColumnWidth = 4
	heavySeparator = "="
	ellipsis       = "..."
)

// TableFormatter lays out rows of plain cells in aligned columns. The last
// column absorbs whatever width remains and is truncated to fit.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = DefaultWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

// Format renders headers and rows. Rows shorter than headers are padded
// with empty cells.
func (t *TableFormatter) Format(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := t.columnWidths(headers, rows)
	total := 0
	for _, w := range widths {
		total += w
	}
	total += tablePadding * (len(widths) - 1)

	var builder strings.Builder

	builder.WriteString(t.styles.TableHeader.Render(t.formatCells(headers, widths)) + "\n")
	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, total)) + "\n")
	for _, row := range rows {
		builder.WriteString(t.formatCells(row, widths) + "\n")
	}

	return builder.String()
}

func (t *TableFormatter) columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := range min(len(row), len(widths)) {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	last := len(widths) - 1
	used := tablePadding * last
	for _, w := range widths[:last] {
		used += w
	}
	widths[last] = max(minColumnWidth, min(widths[last], t.termWidth-used))

	return widths
}

func (t *TableFormatter) formatCells(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = truncate(cells[i], w)
		}
		if i < len(widths)-1 {
			cell += strings.Repeat(" ", w-lipgloss.Width(cell))
		}
		parts[i] = cell
	}
	return strings.TrimRight(strings.Join(parts, strings.Repeat(" ", tablePadding)), " ")
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+len(ellipsis) > width {
		runes = runes[:len(runes)-1]
	}
	return strings.TrimRight(string(runes), " ") + ellipsis
}
