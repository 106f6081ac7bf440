package fix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/assistkit/pkg/fix"
)

func TestApplyEdits(t *testing.T) {
	t.Parallel()

	ins := func(at int, text string) fix.TextEdit {
		return fix.TextEdit{StartOffset: at, EndOffset: at, NewText: text}
	}
	repl := func(start, end int, text string) fix.TextEdit {
		return fix.TextEdit{StartOffset: start, EndOffset: end, NewText: text}
	}

	tests := []struct {
		name    string
		content string
		edits   []fix.TextEdit
		want    string
	}{
		{"no edits", "let n = 1;", nil, "let n = 1;"},
		{"group digits", "let n = 1000000;", []fix.TextEdit{repl(8, 15, "1_000_000")}, "let n = 1_000_000;"},
		{"drop separators", "0xdead_beef", []fix.TextEdit{repl(0, 11, "0xdeadbeef")}, "0xdeadbeef"},
		{
			"wrap and split a string",
			`let s = "ab";`,
			[]fix.TextEdit{ins(8, "concat!("), ins(10, `", "`), ins(12, ")")},
			`let s = concat!("a", "b");`,
		},
		{"adjacent replacements", "abcdef", []fix.TextEdit{repl(0, 2, "X"), repl(2, 4, "Y"), repl(4, 6, "Z")}, "XYZ"},
		{"insert at both ends", "mid", []fix.TextEdit{ins(0, "<"), ins(3, ">")}, "<mid>"},
		{"delete everything", "gone", []fix.TextEdit{repl(0, 4, "")}, ""},
		{"insert into empty", "", []fix.TextEdit{ins(0, "fn main() {}")}, "fn main() {}"},
		{"multibyte text", "let c = 'é';", []fix.TextEdit{repl(9, 11, `\u{e9}`)}, `let c = '\u{e9}';`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, string(fix.ApplyEdits([]byte(tt.content), tt.edits)))
		})
	}
}

func TestApplyEdits_NeverAliasesInput(t *testing.T) {
	t.Parallel()

	content := []byte("42_420")

	unchanged := fix.ApplyEdits(content, nil)
	unchanged[0] = 'x'

	edited := fix.ApplyEdits(content, []fix.TextEdit{{StartOffset: 2, EndOffset: 3}})

	assert.Equal(t, "42_420", string(content))
	assert.Equal(t, "42420", string(edited))
}
