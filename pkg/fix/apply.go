package fix

// ApplyEdits splices sorted, non-overlapping edits into a fresh copy of
// content. Callers validate edits with PrepareEdits first; content is
// never modified.
func ApplyEdits(content []byte, edits []TextEdit) []byte {
	size := len(content)
	for _, e := range edits {
		size += e.Delta()
	}

	out := make([]byte, 0, size)
	prev := 0
	for _, e := range edits {
		out = append(out, content[prev:e.StartOffset]...)
		out = append(out, e.NewText...)
		prev = e.EndOffset
	}

	return append(out, content[prev:]...)
}
