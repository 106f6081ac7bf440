// Package fix composes text edits into one atomic change and maps offsets
// from the original buffer into the edited one.
package fix

import "github.com/yaklabco/assistkit/pkg/syntax"

// TextEdit represents a single text replacement in a buffer.
// Offsets are always in the coordinates of the original buffer.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// IsInsert returns true if the edit replaces nothing.
func (e TextEdit) IsInsert() bool {
	return e.StartOffset == e.EndOffset
}

// Delta returns the change in buffer length caused by the edit.
func (e TextEdit) Delta() int {
	return len(e.NewText) - (e.EndOffset - e.StartOffset)
}

// Range returns the replaced range.
func (e TextEdit) Range() syntax.TextRange {
	return syntax.NewRange(e.StartOffset, e.EndOffset)
}

// Composer accumulates the edits of one assist. Edits may be added in any
// order; all offset arithmetic is done by the composer, never by callers.
type Composer struct {
	edits  []TextEdit
	target *syntax.TextRange
	cursor *int
}

// NewComposer creates an empty Composer.
func NewComposer() *Composer {
	return &Composer{
		edits: make([]TextEdit, 0),
	}
}

// ReplaceRange adds an edit that replaces bytes [start, end) with newText.
func (c *Composer) ReplaceRange(start, end int, newText string) {
	c.edits = append(c.edits, TextEdit{
		StartOffset: start,
		EndOffset:   end,
		NewText:     newText,
	})
}

// Replace adds an edit that replaces r with newText.
func (c *Composer) Replace(r syntax.TextRange, newText string) {
	c.ReplaceRange(r.Start, r.End, newText)
}

// Insert adds an edit that inserts text at the given offset.
func (c *Composer) Insert(offset int, text string) {
	c.ReplaceRange(offset, offset, text)
}

// Delete adds an edit that deletes bytes [start, end).
func (c *Composer) Delete(start, end int) {
	c.ReplaceRange(start, end, "")
}

// SetTarget records the range the assist applies to, in original coordinates.
func (c *Composer) SetTarget(r syntax.TextRange) {
	c.target = &r
}

// SetCursor records an explicit caret offset in post-edit coordinates.
func (c *Composer) SetCursor(offset int) {
	c.cursor = &offset
}

// Edits returns a copy of the edits added so far, in insertion order.
func (c *Composer) Edits() []TextEdit {
	out := make([]TextEdit, len(c.edits))
	copy(out, c.edits)
	return out
}

// TranslateOffset maps an original offset through every edit added so far.
// It fails if the edits composed so far conflict.
func (c *Composer) TranslateOffset(offset int) (int, error) {
	prepared, err := prepare(c.edits)
	if err != nil {
		return 0, err
	}
	return translate(prepared, offset), nil
}

// Finish validates the accumulated edits and returns the composed edit.
// Overlapping edits are a programming error and yield a *ConflictError.
func (c *Composer) Finish() (*ComposedEdit, error) {
	prepared, err := prepare(c.edits)
	if err != nil {
		return nil, err
	}

	composed := &ComposedEdit{Edits: prepared}
	if c.target != nil {
		target := *c.target
		composed.Target = &target
	}
	if c.cursor != nil {
		cursor := *c.cursor
		composed.Cursor = &cursor
	}

	return composed, nil
}
