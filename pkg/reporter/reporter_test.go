package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/assistkit/pkg/assist"
	"github.com/yaklabco/assistkit/pkg/assist/handlers"
	"github.com/yaklabco/assistkit/pkg/config"
	"github.com/yaklabco/assistkit/pkg/fix"
	"github.com/yaklabco/assistkit/pkg/reporter"
	"github.com/yaklabco/assistkit/pkg/syntax"
)

const source = "fn main() {\n    let n = 1000000;\n}\n"

// literal is the byte range of 1000000 in source.
var literal = syntax.NewRange(24, 31)

func newReport(t *testing.T, mode assist.Mode) *reporter.Report {
	t.Helper()

	a := assist.Assist{
		ID:      "separate_decimal_thousands",
		Label:   "Separate thousands",
		Handler: "separate_number_literal",
	}

	if mode == assist.ModeResolve {
		c := fix.NewComposer()
		c.Replace(literal, "1_000_000")
		c.SetTarget(literal)
		edit, err := c.Finish()
		require.NoError(t, err)
		a.Edit = edit
	}

	return &reporter.Report{
		Snapshot:  syntax.NewFileSnapshot("main.rs", []byte(source)),
		Selection: syntax.EmptyAt(27),
		Mode:      mode,
		Result:    &assist.Result{Assists: []assist.Assist{a}},
	}
}

func newReporter(t *testing.T, format reporter.Format, buf *bytes.Buffer) reporter.Reporter {
	t.Helper()

	opts := reporter.DefaultOptions()
	opts.Writer = buf
	opts.Format = format
	opts.Color = config.ColorNever

	r, err := reporter.New(opts)
	require.NoError(t, err)
	return r
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{input: "", want: reporter.FormatText},
		{input: "text", want: reporter.FormatText},
		{input: "json", want: reporter.FormatJSON},
		{input: "html", want: reporter.FormatHTML},
		{input: "sarif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{Format: "sarif"})
	require.Error(t, err)
}

func TestTextReporter_List(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := newReporter(t, reporter.FormatText, &buf).Report(context.Background(), newReport(t, assist.ModeList))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	want := "main.rs:2:16\n" +
		"         let n = 1000000;\n" +
		strings.Repeat(" ", 20) + "^\n" +
		"  1. Separate thousands  (separate_decimal_thousands)\n" +
		"1 assist available\n"
	assert.Equal(t, want, buf.String())
}

func TestTextReporter_ResolveShowsDiff(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := newReporter(t, reporter.FormatText, &buf).Report(context.Background(), newReport(t, assist.ModeResolve))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "     @@ -1,3 +1,3 @@\n")
	assert.Contains(t, out, "     -    let n = 1000000;\n")
	assert.Contains(t, out, "     +    let n = 1_000_000;\n")
	assert.NotContains(t, out, "+++")
}

func TestTextReporter_HandlerErrors(t *testing.T) {
	t.Parallel()

	report := newReport(t, assist.ModeList)
	report.Result.HandlerErrors = map[string]error{"split_string": errors.New("boom")}

	var buf bytes.Buffer
	_, err := newReporter(t, reporter.FormatText, &buf).Report(context.Background(), report)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "  split_string: boom\n")
	assert.Contains(t, buf.String(), "1 assist available, 1 handler failed\n")
}

func TestTextReporter_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := newReporter(t, reporter.FormatText, &buf).Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "No assists available\n", buf.String())
}

func TestJSONReporter_Resolve(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := newReporter(t, reporter.FormatJSON, &buf).Report(context.Background(), newReport(t, assist.ModeResolve))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "main.rs", out.Path)
	assert.Equal(t, "resolve", out.Mode)
	assert.Equal(t, 27, out.Selection.Start)

	require.Len(t, out.Assists, 1)
	got := out.Assists[0]
	assert.Equal(t, "separate_decimal_thousands", got.ID)
	assert.Equal(t, "separate_number_literal", got.Handler)
	require.NotNil(t, got.Target)
	assert.Equal(t, 24, got.Target.Start)
	assert.Equal(t, 31, got.Target.End)
	assert.Equal(t, []reporter.JSONEdit{{StartOffset: 24, EndOffset: 31, NewText: "1_000_000"}}, got.Edits)
	require.NotNil(t, got.Cursor)
	assert.Equal(t, 24, *got.Cursor, "a caret inside the replaced literal moves to its start")
	assert.Contains(t, got.Diff, "+    let n = 1_000_000;")
}

func TestJSONReporter_ListOmitsEdits(t *testing.T) {
	t.Parallel()

	report := newReport(t, assist.ModeList)
	report.Result.HandlerErrors = map[string]error{"split_string": errors.New("boom")}

	var buf bytes.Buffer
	_, err := newReporter(t, reporter.FormatJSON, &buf).Report(context.Background(), report)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, map[string]any{"split_string": "boom"}, raw["errors"])

	assists, ok := raw["assists"].([]any)
	require.True(t, ok)
	first, ok := assists[0].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, first, "edits")
	assert.NotContains(t, first, "cursor")
}

func TestHTMLReporter_Resolve(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := newReporter(t, reporter.FormatHTML, &buf).Report(context.Background(), newReport(t, assist.ModeResolve))
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>main.rs:2:16</title>")
	assert.Contains(t, out, "<h1>Resolved assists at <code>main.rs:2:16</code></h1>")
	assert.Contains(t, out, "<h2>1. Separate thousands</h2>")
	assert.Contains(t, out, `<pre><code class="language-diff">`)
	assert.True(t, strings.HasSuffix(out, "</html>\n"))
}

func TestCatalogue(t *testing.T) {
	t.Parallel()

	reg := assist.NewRegistry()
	handlers.RegisterAll(reg)
	entries := reporter.NewCatalogue(reg, &config.Config{DisableAssists: []string{"split_string"}})

	require.Len(t, entries, 3)
	assert.Equal(t, "separate_number_literal", entries[1].ID)
	assert.Equal(t, []string{
		"separate_decimal_thousands",
		"separate_hexadecimal_words",
		"separate_binary_bytes",
	}, entries[1].AssistIDs)
	assert.True(t, entries[1].Enabled)
	assert.False(t, entries[2].Enabled)

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, newReporter(t, reporter.FormatText, &buf).Catalogue(context.Background(), entries))
		assert.True(t, strings.HasPrefix(buf.String(), "HANDLER"))
		assert.Contains(t, buf.String(), "split_string")
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, newReporter(t, reporter.FormatJSON, &buf).Catalogue(context.Background(), entries))

		var out reporter.JSONCatalogue
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		assert.Equal(t, entries, out.Handlers)
	})

	t.Run("html", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, newReporter(t, reporter.FormatHTML, &buf).Catalogue(context.Background(), entries))
		assert.Contains(t, buf.String(), "<table>")
		assert.Contains(t, buf.String(), "<td><code>split_string</code></td>")
	})
}

func TestUnifiedDiff(t *testing.T) {
	t.Parallel()

	diff, err := reporter.UnifiedDiff("main.rs", []byte(source), []byte(strings.Replace(source, "1000000", "1_000_000", 1)))
	require.NoError(t, err)

	want := "--- a/main.rs\n" +
		"+++ b/main.rs\n" +
		"@@ -1,3 +1,3 @@\n" +
		" fn main() {\n" +
		"-    let n = 1000000;\n" +
		"+    let n = 1_000_000;\n" +
		" }\n"
	assert.Equal(t, want, diff.Text)
	assert.Equal(t, 1, diff.Additions)
	assert.Equal(t, 1, diff.Deletions)
	assert.True(t, diff.HasChanges())

	same, err := reporter.UnifiedDiff("main.rs", []byte(source), []byte(source))
	require.NoError(t, err)
	assert.False(t, same.HasChanges())
}
