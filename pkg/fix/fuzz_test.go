package fix_test

import (
	"testing"
	"unicode/utf8"

	"github.com/yaklabco/assistkit/pkg/fix"
)

// FuzzTranslate checks that offset translation is monotonic and that
// untouched bytes keep their value after the edit is applied.
func FuzzTranslate(f *testing.F) {
	f.Add("let s = \"random\\nstring\";", 8, 15, 24)
	f.Add("0b0010_1010", 2, 6, 7)
	f.Add("abc", 0, 1, 3)

	f.Fuzz(func(t *testing.T, content string, a, b, c int) {
		if !utf8.ValidString(content) || len(content) == 0 {
			return
		}

		n := len(content)
		offsets := []int{wrap(a, n+1), wrap(b, n+1), wrap(c, n+1)}
		if offsets[0] >= offsets[1] || offsets[1] >= offsets[2] {
			return
		}

		composer := fix.NewComposer()
		composer.Insert(offsets[0], "<")
		composer.ReplaceRange(offsets[1], offsets[2], "|")

		composed, err := composer.Finish()
		if err != nil {
			t.Fatalf("Finish: %v", err)
		}

		src := []byte(content)
		out, translateFn, err := composed.Finalize(src)
		if err != nil {
			// Offsets splitting a multi-byte character are rejected.
			return
		}

		if got := translateFn(n); got != len(out) {
			t.Fatalf("translate(len) = %d, want %d", got, len(out))
		}

		prev := -1
		for o := 0; o <= n; o++ {
			mapped := translateFn(o)
			if mapped < prev {
				t.Fatalf("translate not monotonic at %d: %d < %d", o, mapped, prev)
			}
			prev = mapped

			untouched := o < n && o != offsets[0] && (o < offsets[1] || o >= offsets[2])
			if untouched && out[mapped] != src[o] {
				t.Fatalf("byte at %d moved to %d but changed from %q to %q", o, mapped, src[o], out[mapped])
			}
		}
	})
}

func wrap(v, m int) int {
	return ((v % m) + m) % m
}
