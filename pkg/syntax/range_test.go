package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/assistkit/pkg/syntax"
)

func TestTextRange_ContainsRange(t *testing.T) {
	t.Parallel()

	outer := syntax.NewRange(10, 20)

	tests := []struct {
		name  string
		inner syntax.TextRange
		want  bool
	}{
		{"strictly inside", syntax.NewRange(12, 15), true},
		{"caret at start", syntax.EmptyAt(10), true},
		{"caret at end", syntax.EmptyAt(20), true},
		{"equal", syntax.NewRange(10, 20), true},
		{"starting before", syntax.NewRange(9, 15), false},
		{"ending after", syntax.NewRange(15, 21), false},
		{"disjoint", syntax.NewRange(30, 31), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, outer.ContainsRange(tt.inner))
		})
	}
}

func TestTextRange_Basics(t *testing.T) {
	t.Parallel()

	r := syntax.NewRange(3, 7)
	assert.Equal(t, 4, r.Len())
	assert.False(t, r.IsEmpty())
	assert.True(t, r.Contains(3))
	assert.False(t, r.Contains(7))
	assert.True(t, r.Intersects(syntax.NewRange(6, 9)))
	assert.False(t, r.Intersects(syntax.NewRange(7, 9)))
	assert.Equal(t, "[3; 7)", r.String())
	assert.True(t, syntax.EmptyAt(5).IsEmpty())
	assert.False(t, syntax.NewRange(5, 4).IsValid())
}

func TestFileSnapshot_ValidRange(t *testing.T) {
	t.Parallel()

	snapshot := syntax.NewFileSnapshot("test.rs", []byte(`"héllo"`))

	assert.True(t, snapshot.ValidRange(syntax.NewRange(0, 8)))
	assert.True(t, snapshot.ValidRange(syntax.EmptyAt(2)))
	assert.False(t, snapshot.ValidRange(syntax.EmptyAt(3)), "offset 3 splits é")
	assert.False(t, snapshot.ValidRange(syntax.NewRange(0, 9)))
	assert.False(t, snapshot.ValidRange(syntax.NewRange(4, 2)))
	assert.Equal(t, "héllo", snapshot.RangeText(syntax.NewRange(1, 7)))
}
