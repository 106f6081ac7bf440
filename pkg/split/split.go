// Package split plans the edits that split a string literal in two at a
// caret or around a selection.
//
// Fragments are joined as arguments of the concat! macro:
//
//	let s = "random<|>string";        =>  let s = concat!("random", "string");
//	println!("a<|>b");                =>  println!(concat!("a", "b"));
//	concat!("a<|>b", "c");            =>  concat!("a", "b", "c");
//
// Joining fragments with a binary operator is not supported. Byte strings
// and raw strings are never split, and neither is an escape sequence.
package split

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/assistkit/pkg/fix"
	"github.com/yaklabco/assistkit/pkg/syntax"
)

// Style names the join style implemented by the planner.
const Style = "concat"

// Text inserted by a split.
const (
	// WrapperOpen is inserted before the string when no enclosing concat
	// call can take the new fragments.
	WrapperOpen = "concat!("

	// WrapperClose is inserted after the string together with WrapperOpen.
	WrapperClose = ")"

	// Boundary closes the current fragment and opens the next one.
	Boundary = `", "`

	// caretAdvance is the part of Boundary the caret moves past: the
	// closing quote and the comma.
	caretAdvance = len(`",`)
)

// canonicalCallees are the macro paths that already concatenate their
// arguments.
var canonicalCallees = map[string]bool{
	"concat":       true,
	"std::concat":  true,
	"core::concat": true,
}

// IsCanonicalConcat reports whether a call of the given kind and callee
// concatenates its arguments.
func IsCanonicalConcat(kind syntax.NodeKind, callee string) bool {
	if kind != syntax.NodeMacroCall {
		return false
	}
	return canonicalCallees[strings.TrimPrefix(strings.TrimSpace(callee), "::")]
}

// Plan describes the text a split inserts.
type Plan struct {
	// Token is the range of the whole string literal.
	Token syntax.TextRange

	// Selection is the caret or selection being split at.
	Selection syntax.TextRange

	// NeedsWrapper is true when the string must be wrapped in a concat call.
	NeedsWrapper bool

	// WrapperOpen and WrapperClose are empty unless NeedsWrapper is set.
	WrapperOpen  string
	WrapperClose string

	// Boundaries holds one boundary text per split point, left to right.
	Boundaries []string
}

// New plans a split of the string token at selection. interior is the
// range strictly between the quotes; the selection must lie within it,
// ends inclusive, so a caret right after the opening quote or right
// before the closing one is accepted.
func New(token, interior, selection syntax.TextRange, lookup CallLookup) (*Plan, bool) {
	if !selection.IsValid() || !interior.IsValid() || !token.ContainsRange(interior) {
		return nil, false
	}
	if !interior.ContainsRange(selection) {
		return nil, false
	}

	plan := &Plan{
		Token:        token,
		Selection:    selection,
		NeedsWrapper: needsWrapper(token, lookup),
		Boundaries:   []string{Boundary},
	}
	if !selection.IsEmpty() {
		plan.Boundaries = append(plan.Boundaries, Boundary)
	}
	if plan.NeedsWrapper {
		plan.WrapperOpen = WrapperOpen
		plan.WrapperClose = WrapperClose
	}

	return plan, true
}

// ForToken plans a split of a plain string token. Raw strings and prefixed
// strings such as b"..." cannot be split, since concat! accepts neither.
// A selection end inside an escape sequence is rejected.
func ForToken(tok syntax.Token, selection syntax.TextRange, lookup CallLookup) (*Plan, bool) {
	interior, ok := tok.BetweenQuotes()
	if !ok || interior.Start != tok.Range.Start+1 {
		return nil, false
	}

	text := tok.Text[1 : len(tok.Text)-1]
	if insideEscape(text, selection.Start-interior.Start) || insideEscape(text, selection.End-interior.Start) {
		return nil, false
	}

	return New(tok.Range, interior, selection, lookup)
}

// insideEscape reports whether offset, relative to the start of a string
// interior, falls strictly inside an escape sequence.
func insideEscape(interior string, offset int) bool {
	for i := 0; i < len(interior) && i < offset; {
		if interior[i] != '\\' {
			i++
			continue
		}
		end := i + escapeLen(interior[i:])
		if offset < end {
			return true
		}
		i = end
	}
	return false
}

// escapeLen returns the length of the escape sequence starting s. A line
// continuation runs through the whitespace it swallows.
func escapeLen(s string) int {
	if len(s) < 2 {
		return len(s)
	}

	switch s[1] {
	case 'x':
		return min(len(`\x00`), len(s))
	case 'u':
		if end := strings.IndexByte(s, '}'); end > 0 {
			return end + 1
		}
		return len(s)
	case '\n', '\r':
		n := 2
		for n < len(s) && strings.IndexByte(" \t\n\r", s[n]) >= 0 {
			n++
		}
		return n
	default:
		_, size := utf8.DecodeRuneInString(s[1:])
		return 1 + size
	}
}

func needsWrapper(token syntax.TextRange, lookup CallLookup) bool {
	if lookup == nil {
		return true
	}
	call, ok := lookup.EnclosingCall(token)
	if !ok {
		return true
	}
	return !IsCanonicalConcat(call.Kind, call.Callee)
}

// Compose adds the planned insertions to c, targets the whole string and
// places the caret just before the last inserted join marker.
func (p *Plan) Compose(c *fix.Composer) error {
	if len(p.Boundaries) == 0 {
		return fmt.Errorf("split plan for %s has no boundaries", p.Token)
	}

	if p.NeedsWrapper {
		c.Insert(p.Token.Start, p.WrapperOpen)
		c.Insert(p.Token.End, p.WrapperClose)
	}

	c.Insert(p.Selection.Start, p.Boundaries[0])
	if len(p.Boundaries) > 1 {
		c.Insert(p.Selection.End, p.Boundaries[1])
	}

	c.SetTarget(p.Token)

	end, err := c.TranslateOffset(p.Selection.End)
	if err != nil {
		return fmt.Errorf("compose split: %w", err)
	}
	c.SetCursor(end + caretAdvance)

	return nil
}
