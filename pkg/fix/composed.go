package fix

import (
	"fmt"

	"github.com/yaklabco/assistkit/pkg/syntax"
)

// ComposedEdit is an atomic set of sorted, non-overlapping edits together
// with an optional target range and an optional caret position.
type ComposedEdit struct {
	// Edits are sorted by start offset and never overlap.
	Edits []TextEdit

	// Target is the range the assist applies to, in original coordinates.
	Target *syntax.TextRange

	// Cursor is the caret offset after the edit is applied.
	Cursor *int
}

// TargetLen returns the length of the target range, or false if unset.
func (e *ComposedEdit) TargetLen() (int, bool) {
	if e == nil || e.Target == nil {
		return 0, false
	}
	return e.Target.Len(), true
}

// Delta returns the total change in buffer length.
func (e *ComposedEdit) Delta() int {
	delta := 0
	for _, edit := range e.Edits {
		delta += edit.Delta()
	}
	return delta
}

// Translate maps an offset in the original buffer to the same logical
// position in the edited buffer:
//   - offsets before every edit are unchanged;
//   - offsets at or after the end of an edit shift by that edit's delta;
//   - an offset equal to an insertion point stays before the inserted text;
//   - an offset strictly inside a replaced span maps to the start of the
//     replacement.
func (e *ComposedEdit) Translate(offset int) int {
	return translate(e.Edits, offset)
}

// Validate checks that every edit fits content and does not split a
// multi-byte character.
func (e *ComposedEdit) Validate(content []byte) error {
	return ValidateEdits(e.Edits, content)
}

// Finalize applies the edit to content and returns the new text together
// with the offset translation. Content is never modified. The caret, if
// set, must land inside the new text on a character boundary.
func (e *ComposedEdit) Finalize(content []byte) ([]byte, func(int) int, error) {
	if err := e.Validate(content); err != nil {
		return nil, nil, err
	}

	out := ApplyEdits(content, e.Edits)

	if e.Cursor != nil && !syntax.IsCharBoundary(out, *e.Cursor) {
		return nil, nil, &ValidationError{
			Message: fmt.Sprintf("cursor offset %d is outside the edited text or splits a character", *e.Cursor),
		}
	}

	edits := e.Edits
	return out, func(offset int) int { return translate(edits, offset) }, nil
}

// Apply applies the edit to content and returns the new text.
func (e *ComposedEdit) Apply(content []byte) ([]byte, error) {
	out, _, err := e.Finalize(content)
	return out, err
}

// CursorOr returns the explicit caret, or fallback translated through the
// edit when no caret was set.
func (e *ComposedEdit) CursorOr(fallback int) int {
	if e.Cursor != nil {
		return *e.Cursor
	}
	return e.Translate(fallback)
}

func translate(sorted []TextEdit, offset int) int {
	shift := 0
	for _, edit := range sorted {
		if edit.StartOffset >= offset {
			break
		}
		if offset < edit.EndOffset {
			return edit.StartOffset + shift
		}
		shift += edit.Delta()
	}
	return offset + shift
}
