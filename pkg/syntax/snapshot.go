// Package syntax provides the buffer model assists operate on.
// It defines an immutable view of a source file:
// - FileSnapshot: content, line index and the parsed tree
// - Token and TextRange: byte-addressed lexical spans
// - Tree and Node: the read-only navigation capability supplied by a parser
package syntax

import (
	"io"
	"unicode/utf8"
)

// FileSnapshot is an immutable view of a source file at a specific time.
type FileSnapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Language is the detected language of the file (e.g. "rust").
	Language string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo

	// Tree is the parsed syntax tree. Nil until a parser populates it.
	Tree Tree
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewFileSnapshot creates a new FileSnapshot from content.
// It builds the line index but does not parse (that requires a parser).
func NewFileSnapshot(path string, content []byte) *FileSnapshot {
	return &FileSnapshot{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}

// ValidRange reports whether r lies inside the content and both of its ends
// fall on UTF-8 character boundaries.
func (f *FileSnapshot) ValidRange(r TextRange) bool {
	if !r.IsValid() || r.End > len(f.Content) {
		return false
	}
	return IsCharBoundary(f.Content, r.Start) && IsCharBoundary(f.Content, r.End)
}

// RangeText returns the source text covered by r, or "" if r is out of range.
func (f *FileSnapshot) RangeText(r TextRange) string {
	if !r.IsValid() || r.End > len(f.Content) {
		return ""
	}
	return string(f.Content[r.Start:r.End])
}

// Close releases resources held by the tree, if any.
func (f *FileSnapshot) Close() error {
	if closer, ok := f.Tree.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// IsCharBoundary reports whether offset does not split a UTF-8 sequence.
// Offsets 0 and len(content) are always boundaries.
func IsCharBoundary(content []byte, offset int) bool {
	if offset < 0 || offset > len(content) {
		return false
	}
	if offset == 0 || offset == len(content) {
		return true
	}
	return utf8.RuneStart(content[offset])
}
