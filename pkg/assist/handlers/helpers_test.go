package handlers_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/assistkit/pkg/assist"
	"github.com/yaklabco/assistkit/pkg/parser/treesitter"
	"github.com/yaklabco/assistkit/pkg/syntax"
)

const caretMarker = "<|>"

// extractSelection removes one or two caret markers from fixture.
func extractSelection(t *testing.T, fixture string) (string, syntax.TextRange) {
	t.Helper()

	start := strings.Index(fixture, caretMarker)
	require.GreaterOrEqual(t, start, 0, "fixture has no caret")
	text := fixture[:start] + fixture[start+len(caretMarker):]

	end := strings.Index(text, caretMarker)
	if end < 0 {
		return text, syntax.EmptyAt(start)
	}
	text = text[:end] + text[end+len(caretMarker):]
	return text, syntax.NewRange(start, end)
}

// resolve runs a single handler in resolve mode over fixture.
func resolve(t *testing.T, h assist.Handler, fixture string) (*syntax.FileSnapshot, *assist.Result) {
	t.Helper()

	text, selection := extractSelection(t, fixture)

	snapshot, err := treesitter.New().Parse(context.Background(), "lib.rs", []byte(text))
	require.NoError(t, err)
	t.Cleanup(func() { _ = snapshot.Close() })

	reg := assist.NewRegistry()
	reg.Register(h)

	result, err := assist.NewEngine(reg).Resolve(context.Background(), snapshot, selection, nil)
	require.NoError(t, err)
	require.Empty(t, result.HandlerErrors)

	return snapshot, result
}

// checkAssist asserts that id is offered at the fixture's caret and that
// applying it yields want. A caret marker in want is compared against the
// edit's cursor.
func checkAssist(t *testing.T, h assist.Handler, id, fixture, want string) {
	t.Helper()

	snapshot, result := resolve(t, h, fixture)

	a, ok := result.Find(id)
	require.True(t, ok, "assist %s not offered; got %v", id, result.IDs())
	require.NotNil(t, a.Edit)

	out, err := a.Edit.Apply(snapshot.Content)
	require.NoError(t, err)

	got := string(out)
	if a.Edit.Cursor != nil && strings.Contains(want, caretMarker) {
		got = got[:*a.Edit.Cursor] + caretMarker + got[*a.Edit.Cursor:]
	}
	assert.Equal(t, want, got)
}

// checkAssistTarget asserts the target text of the offered assist.
func checkAssistTarget(t *testing.T, h assist.Handler, id, fixture, want string) {
	t.Helper()

	snapshot, result := resolve(t, h, fixture)

	a, ok := result.Find(id)
	require.True(t, ok, "assist %s not offered", id)
	require.NotNil(t, a.Edit.Target)
	assert.Equal(t, want, snapshot.RangeText(*a.Edit.Target))
}

// checkNotApplicable asserts that the handler offers nothing.
func checkNotApplicable(t *testing.T, h assist.Handler, fixture string) {
	t.Helper()

	_, result := resolve(t, h, fixture)
	assert.Empty(t, result.Assists, "expected no assists, got %v", result.IDs())
}
