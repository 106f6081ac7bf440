package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/assistkit/internal/ui/pretty"
)

func TestFormatLocation(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Equal(t, "main.rs:3:9", styles.FormatLocation("main.rs", 3, 9, 3, 9))
	assert.Equal(t, "main.rs:3:9-3:14", styles.FormatLocation("main.rs", 3, 9, 3, 14))
	assert.Equal(t, "main.rs:1:1-2:1", styles.FormatLocation("main.rs", 1, 1, 2, 1))
}

func TestFormatAssist(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Equal(t,
		"  1. Separate thousands  (separate_decimal_thousands)\n",
		styles.FormatAssist(1, "separate_decimal_thousands", "Separate thousands", ""))
	assert.Equal(t,
		"  2. Split string  (split_string)  [Strings]\n",
		styles.FormatAssist(2, "split_string", "Split string", "Strings"))
}

func TestFormatSourceContext(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name     string
		line     string
		startCol int
		endCol   int
		want     string
	}{
		{
			name:     "caret",
			line:     "let n = 1000;",
			startCol: 9,
			endCol:   9,
			want:     "     let n = 1000;\n             ^\n",
		},
		{
			name:     "selection",
			line:     "let n = 1000;",
			startCol: 9,
			endCol:   13,
			want:     "     let n = 1000;\n             ^~~~\n",
		},
		{
			name:     "multibyte columns",
			line:     `"héllo"`,
			startCol: 3,
			endCol:   5,
			want:     "     \"héllo\"\n       ^~\n",
		},
		{
			name:     "selection clamped to line",
			line:     "ab",
			startCol: 2,
			endCol:   9,
			want:     "     ab\n      ^\n",
		},
		{
			name:     "no marker",
			line:     "ab",
			startCol: 0,
			want:     "     ab\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, styles.FormatSourceContext(tt.line, tt.startCol, tt.endCol))
		})
	}
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Equal(t, "No assists available\n", styles.FormatSummary(0, 0))
	assert.Equal(t, "1 assist available\n", styles.FormatSummary(1, 0))
	assert.Equal(t, "2 assists available, 1 handler failed\n", styles.FormatSummary(2, 1))
}

func TestFormatDiff(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Equal(t, "1 insertion(+), 2 deletions(-)\n", styles.FormatDiffStat(1, 2))
	for _, line := range []string{"--- a/main.rs", "@@ -1 +1 @@", "+x", "-y", " z"} {
		assert.Equal(t, line, styles.FormatDiffLine(line))
	}
}

func TestTableFormatter(t *testing.T) {
	t.Parallel()

	table := pretty.NewTableFormatter(pretty.NewStyles(false), 40)

	got := table.Format(
		[]string{"ID", "DESCRIPTION"},
		[][]string{
			{"split_string", "Split a string literal at the caret"},
			{"x"},
		},
	)

	want := "ID            DESCRIPTION\n" +
		"========================================\n" +
		"split_string  Split a string literal...\n" +
		"x\n"
	assert.Equal(t, want, got)
	assert.Empty(t, table.Format(nil, nil))
}
