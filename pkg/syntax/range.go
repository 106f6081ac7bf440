package syntax

import "fmt"

// TextRange is a half-open byte range [Start, End) in a source buffer.
type TextRange struct {
	// Start is the byte index where the range begins (inclusive).
	Start int

	// End is the byte index where the range ends (exclusive).
	End int
}

// NewRange returns the range [start, end).
func NewRange(start, end int) TextRange {
	return TextRange{Start: start, End: end}
}

// EmptyAt returns the zero-length range at offset, as used for a caret.
func EmptyAt(offset int) TextRange {
	return TextRange{Start: offset, End: offset}
}

// Len returns the length of the range in bytes.
func (r TextRange) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r TextRange) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid returns true if the range is non-negative and not reversed.
func (r TextRange) IsValid() bool {
	return r.Start >= 0 && r.End >= r.Start
}

// Contains returns true if the given offset is within this range.
func (r TextRange) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// ContainsRange returns true if other lies within r. Both ends are inclusive,
// so a caret sitting on either boundary of r is contained.
func (r TextRange) ContainsRange(other TextRange) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Intersects returns true if the two ranges share at least one byte.
func (r TextRange) Intersects(other TextRange) bool {
	return r.Start < other.End && other.Start < r.End
}

// String formats the range as "[start; end)".
func (r TextRange) String() string {
	return fmt.Sprintf("[%d; %d)", r.Start, r.End)
}
