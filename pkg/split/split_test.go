package split_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/assistkit/pkg/fix"
	"github.com/yaklabco/assistkit/pkg/parser/treesitter"
	"github.com/yaklabco/assistkit/pkg/split"
	"github.com/yaklabco/assistkit/pkg/syntax"
)

const caretMarker = "<|>"

// extractSelection removes one or two caret markers from fixture and
// returns the clean text with the selection they describe.
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

// insertCaret renders the caret marker into text at offset.
func insertCaret(text string, offset int) string {
	return text[:offset] + caretMarker + text[offset:]
}

func noParent(syntax.TextRange) (split.Call, bool) {
	return split.Call{}, false
}

func TestNew_Applicability(t *testing.T) {
	t.Parallel()

	// "random" at 10..16, quotes at 9 and 16.
	token := syntax.NewRange(9, 17)
	interior := syntax.NewRange(10, 16)

	tests := []struct {
		name      string
		selection syntax.TextRange
		want      bool
	}{
		{"caret in the middle", syntax.EmptyAt(13), true},
		{"selection in the middle", syntax.NewRange(11, 14), true},
		{"caret after opening quote", syntax.EmptyAt(10), true},
		{"caret before closing quote", syntax.EmptyAt(16), true},
		{"caret before opening quote", syntax.EmptyAt(9), false},
		{"caret after closing quote", syntax.EmptyAt(17), false},
		{"selection crossing opening quote", syntax.NewRange(9, 12), false},
		{"selection crossing closing quote", syntax.NewRange(12, 17), false},
		{"reversed selection", syntax.TextRange{Start: 14, End: 11}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, ok := split.New(token, interior, tt.selection, split.LookupFunc(noParent))
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestNew_NeedsWrapper(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		call *split.Call
		want bool
	}{
		{name: "no parent", call: nil, want: true},
		{name: "statement parent", call: &split.Call{Kind: syntax.NodeStatement}, want: true},
		{name: "other macro", call: &split.Call{Kind: syntax.NodeMacroCall, Callee: "println"}, want: true},
		{name: "concat macro", call: &split.Call{Kind: syntax.NodeMacroCall, Callee: "concat"}, want: false},
		{name: "std concat macro", call: &split.Call{Kind: syntax.NodeMacroCall, Callee: "std::concat"}, want: false},
		{name: "absolute core concat", call: &split.Call{Kind: syntax.NodeMacroCall, Callee: "::core::concat"}, want: false},
		{name: "concat function", call: &split.Call{Kind: syntax.NodeCall, Callee: "concat"}, want: true},
		{name: "call without callee", call: &split.Call{Kind: syntax.NodeCall}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lookup := split.LookupFunc(func(syntax.TextRange) (split.Call, bool) {
				if tt.call == nil {
					return split.Call{}, false
				}
				return *tt.call, true
			})

			plan, ok := split.New(syntax.NewRange(0, 4), syntax.NewRange(1, 3), syntax.EmptyAt(2), lookup)
			require.True(t, ok)
			assert.Equal(t, tt.want, plan.NeedsWrapper)
			if tt.want {
				assert.Equal(t, split.WrapperOpen, plan.WrapperOpen)
				assert.Equal(t, split.WrapperClose, plan.WrapperClose)
			} else {
				assert.Empty(t, plan.WrapperOpen)
				assert.Empty(t, plan.WrapperClose)
			}
		})
	}
}

func TestNew_NilLookupNeedsWrapper(t *testing.T) {
	t.Parallel()

	plan, ok := split.New(syntax.NewRange(0, 4), syntax.NewRange(1, 3), syntax.EmptyAt(2), nil)
	require.True(t, ok)
	assert.True(t, plan.NeedsWrapper)
	assert.Equal(t, []string{split.Boundary}, plan.Boundaries)
}

func TestForToken_Applicability(t *testing.T) {
	t.Parallel()

	str := func(text string) syntax.Token {
		return syntax.Token{Kind: syntax.TokString, Range: syntax.NewRange(0, len(text)), Text: text}
	}

	tests := []struct {
		name      string
		token     syntax.Token
		selection syntax.TextRange
		want      bool
	}{
		{"plain string", str(`"abcd"`), syntax.EmptyAt(3), true},
		{"raw string", syntax.Token{Kind: syntax.TokRawString, Range: syntax.NewRange(0, 6), Text: `r"abc"`}, syntax.EmptyAt(3), false},
		{"byte string", str(`b"abcd"`), syntax.EmptyAt(4), false},
		{"caret before an escape", str(`"ab\ncd"`), syntax.EmptyAt(3), true},
		{"caret after an escape", str(`"ab\ncd"`), syntax.EmptyAt(5), true},
		{"caret inside an escape", str(`"ab\ncd"`), syntax.EmptyAt(4), false},
		{"caret after an escaped backslash", str(`"a\\b"`), syntax.EmptyAt(4), true},
		{"caret inside a hex escape", str(`"a\x41b"`), syntax.EmptyAt(4), false},
		{"caret after a hex escape", str(`"a\x41b"`), syntax.EmptyAt(6), true},
		{"caret inside a unicode escape", str(`"a\u{41}b"`), syntax.EmptyAt(6), false},
		{"caret after a unicode escape", str(`"a\u{41}b"`), syntax.EmptyAt(8), true},
		{"caret inside a line continuation", str("\"a\\\n  b\""), syntax.EmptyAt(5), false},
		{"selection ending inside an escape", str(`"ab\ncd"`), syntax.NewRange(2, 4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, ok := split.ForToken(tt.token, tt.selection, nil)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestPlan_Compose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fixture string
		want    string
	}{
		{
			name:    "caret in let binding",
			fixture: `fn f() { let s = "random<|>\nstring"; }`,
			want:    `fn f() { let s = concat!("random",<|> "\nstring"); }`,
		},
		{
			name:    "selection in let binding",
			fixture: `fn f() { let s = "random<|>\n<|>string"; }`,
			want:    `fn f() { let s = concat!("random", "\n",<|> "string"); }`,
		},
		{
			name:    "inside another macro",
			fixture: `fn f() { println!("random<|>\nstring"); }`,
			want:    `fn f() { println!(concat!("random",<|> "\nstring")); }`,
		},
		{
			name:    "inside concat",
			fixture: `fn f() { let s = concat!("random<|>\n", "string"); }`,
			want:    `fn f() { let s = concat!("random",<|> "\n", "string"); }`,
		},
		{
			name:    "selection inside concat",
			fixture: `fn f() { let s = std::concat!("a<|>b<|>c"); }`,
			want:    `fn f() { let s = std::concat!("a", "b",<|> "c"); }`,
		},
		{
			name:    "caret after opening quote",
			fixture: `fn f() { let s = "<|>random"; }`,
			want:    `fn f() { let s = concat!("",<|> "random"); }`,
		},
		{
			name:    "multi-byte text",
			fixture: `fn f() { let s = "héllo<|>wörld"; }`,
			want:    `fn f() { let s = concat!("héllo",<|> "wörld"); }`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			text, selection := extractSelection(t, tt.fixture)

			snapshot, err := treesitter.New().Parse(context.Background(), "lib.rs", []byte(text))
			require.NoError(t, err)
			defer func() { _ = snapshot.Close() }()

			tok, ok := snapshot.Tree.CoveringToken(selection)
			require.True(t, ok)
			require.Equal(t, syntax.TokString, tok.Kind)

			plan, ok := split.ForToken(tok, selection, split.TreeLookup{Tree: snapshot.Tree})
			require.True(t, ok)

			composer := fix.NewComposer()
			require.NoError(t, plan.Compose(composer))

			composed, err := composer.Finish()
			require.NoError(t, err)
			require.NotNil(t, composed.Target)
			assert.Equal(t, tok.Range, *composed.Target)
			require.NotNil(t, composed.Cursor)

			out, err := composed.Apply(snapshot.Content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, insertCaret(string(out), *composed.Cursor))
		})
	}
}

func TestPlan_ComposePreservesValue(t *testing.T) {
	t.Parallel()

	text := `let s = "randomstring";`
	token := syntax.NewRange(8, 22)
	interior := syntax.NewRange(9, 21)

	plan, ok := split.New(token, interior, syntax.EmptyAt(15), nil)
	require.True(t, ok)

	composer := fix.NewComposer()
	require.NoError(t, plan.Compose(composer))
	composed, err := composer.Finish()
	require.NoError(t, err)

	out, err := composed.Apply([]byte(text))
	require.NoError(t, err)
	assert.Equal(t, `let s = concat!("random", "string");`, string(out))

	joined := strings.NewReplacer(split.WrapperOpen, "", split.Boundary, "", split.WrapperClose+";", ";").
		Replace(string(out))
	assert.Equal(t, text, joined)
}

func TestPlan_ComposeWithoutBoundaries(t *testing.T) {
	t.Parallel()

	plan := &split.Plan{Token: syntax.NewRange(0, 4), Selection: syntax.EmptyAt(2)}
	require.Error(t, plan.Compose(fix.NewComposer()))
}
