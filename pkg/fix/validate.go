package fix

import (
	"fmt"
	"slices"

	"github.com/yaklabco/assistkit/pkg/syntax"
)

// ValidationError describes an invalid edit.
type ValidationError struct {
	Edit    TextEdit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.StartOffset, e.Edit.EndOffset, e.Message)
}

// ConflictError describes overlapping edits.
type ConflictError struct {
	Edit1 TextEdit
	Edit2 TextEdit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] and [%d:%d]",
		e.Edit1.StartOffset, e.Edit1.EndOffset,
		e.Edit2.StartOffset, e.Edit2.EndOffset)
}

func validateShape(edit TextEdit) error {
	if edit.StartOffset < 0 {
		return &ValidationError{Edit: edit, Message: "start offset is negative"}
	}
	if edit.EndOffset < edit.StartOffset {
		return &ValidationError{Edit: edit, Message: "end offset is before start offset"}
	}
	return nil
}

// ValidateEdits checks that all edits have valid ranges inside content and
// that no offset splits a UTF-8 sequence.
// Returns nil if all edits are valid, or the first validation error encountered.
func ValidateEdits(edits []TextEdit, content []byte) error {
	for _, edit := range edits {
		if err := validateShape(edit); err != nil {
			return err
		}
		if edit.EndOffset > len(content) {
			return &ValidationError{
				Edit:    edit,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", edit.EndOffset, len(content)),
			}
		}
		if !syntax.IsCharBoundary(content, edit.StartOffset) || !syntax.IsCharBoundary(content, edit.EndOffset) {
			return &ValidationError{Edit: edit, Message: "offset splits a multi-byte character"}
		}
	}
	return nil
}

// SortEdits sorts edits by start offset, then by end offset.
// The sort is stable, so equal edits keep the order they were added in.
func SortEdits(edits []TextEdit) {
	slices.SortStableFunc(edits, func(a, b TextEdit) int {
		if a.StartOffset != b.StartOffset {
			return a.StartOffset - b.StartOffset
		}
		return a.EndOffset - b.EndOffset
	})
}

// DetectConflicts checks for overlapping edits in a sorted slice.
// Two insertions at the same offset also conflict: their relative order
// would be ambiguous.
// Edits must be sorted by SortEdits before calling.
func DetectConflicts(edits []TextEdit) error {
	for i := 1; i < len(edits); i++ {
		prev := edits[i-1]
		curr := edits[i]
		if curr.StartOffset < prev.EndOffset {
			return &ConflictError{Edit1: prev, Edit2: curr}
		}
		if curr.IsInsert() && prev.IsInsert() && curr.StartOffset == prev.StartOffset {
			return &ConflictError{Edit1: prev, Edit2: curr}
		}
	}
	return nil
}

// PrepareEdits validates, sorts, and checks for conflicts against content.
// Returns the sorted edits and any error encountered.
func PrepareEdits(edits []TextEdit, content []byte) ([]TextEdit, error) {
	if err := ValidateEdits(edits, content); err != nil {
		return nil, err
	}
	return prepare(edits)
}

// prepare sorts a copy of edits and checks shape and conflicts. Bounds are
// checked later, once the buffer is known.
func prepare(edits []TextEdit) ([]TextEdit, error) {
	for _, edit := range edits {
		if err := validateShape(edit); err != nil {
			return nil, err
		}
	}

	result := make([]TextEdit, len(edits))
	copy(result, edits)
	SortEdits(result)

	if err := DetectConflicts(result); err != nil {
		return nil, err
	}

	return result, nil
}
