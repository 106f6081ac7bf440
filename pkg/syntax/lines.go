package syntax

import (
	"sort"
	"unicode/utf8"
)

// BuildLines constructs line metadata from file content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char != '\n' {
			continue
		}
		newlineStart := idx
		if idx > 0 && content[idx-1] == '\r' {
			newlineStart = idx - 1
		}
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    idx + 1,
		})
		lineStart = idx + 1
	}

	lines = append(lines, LineInfo{
		StartOffset:  lineStart,
		NewlineStart: len(content),
		EndOffset:    len(content),
	})

	return lines
}

// LineCount returns the number of lines in the file.
func (f *FileSnapshot) LineCount() int {
	return len(f.Lines)
}

// LineAt converts a byte offset to a 1-based line and a 1-based column.
// Columns count characters, not bytes, so they match what an editor shows.
// Returns (0, 0) if the offset is out of range or splits a character.
func (f *FileSnapshot) LineAt(offset int) (int, int) {
	if offset < 0 || offset > len(f.Content) || len(f.Lines) == 0 {
		return 0, 0
	}
	if !IsCharBoundary(f.Content, offset) {
		return 0, 0
	}

	lineIdx := sort.Search(len(f.Lines), func(i int) bool {
		return f.Lines[i].EndOffset > offset
	})
	if lineIdx >= len(f.Lines) {
		lineIdx = len(f.Lines) - 1
	}

	line := f.Lines[lineIdx]
	col := utf8.RuneCount(f.Content[line.StartOffset:offset]) + 1

	return lineIdx + 1, col
}

// Offset converts a 1-based line and 1-based character column to a byte offset.
// The column may point one past the last character of the line (caret at
// end of line). Returns (0, false) if the position is out of range.
func (f *FileSnapshot) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(f.Lines) || col < 1 {
		return 0, false
	}

	info := f.Lines[line-1]
	offset := info.StartOffset
	for remaining := col - 1; remaining > 0; remaining-- {
		if offset >= info.NewlineStart {
			return 0, false
		}
		_, size := utf8.DecodeRune(f.Content[offset:info.NewlineStart])
		offset += size
	}

	return offset, true
}

// LineContent returns the content of a 1-based line number, excluding the newline.
// Returns nil if the line number is out of range.
func (f *FileSnapshot) LineContent(line int) []byte {
	if line < 1 || line > len(f.Lines) {
		return nil
	}

	info := f.Lines[line-1]
	return f.Content[info.StartOffset:info.NewlineStart]
}
