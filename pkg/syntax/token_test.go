package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/assistkit/pkg/syntax"
)

func TestToken_BetweenQuotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		token  syntax.Token
		want   syntax.TextRange
		wantOK bool
	}{
		{
			name:   "plain string",
			token:  syntax.Token{Kind: syntax.TokString, Range: syntax.NewRange(8, 16), Text: `"random"`},
			want:   syntax.NewRange(9, 15),
			wantOK: true,
		},
		{
			name:   "empty string",
			token:  syntax.Token{Kind: syntax.TokString, Range: syntax.NewRange(0, 2), Text: `""`},
			want:   syntax.NewRange(1, 1),
			wantOK: true,
		},
		{
			name:   "byte string",
			token:  syntax.Token{Kind: syntax.TokString, Range: syntax.NewRange(0, 5), Text: `b"ab"`},
			want:   syntax.NewRange(2, 4),
			wantOK: true,
		},
		{
			name:   "unterminated",
			token:  syntax.Token{Kind: syntax.TokString, Range: syntax.NewRange(0, 3), Text: `"ab`},
			wantOK: false,
		},
		{
			name:   "not a string",
			token:  syntax.Token{Kind: syntax.TokIntNumber, Range: syntax.NewRange(0, 2), Text: `42`},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tt.token.BetweenQuotes()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestKindStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "IntNumber", syntax.TokIntNumber.String())
	assert.Equal(t, "MacroCall", syntax.NodeMacroCall.String())
	assert.True(t, syntax.NodeCall.IsCallLike())
	assert.False(t, syntax.NodeTokenTree.IsCallLike())
	assert.True(t, syntax.TokString.IsLiteral())
	assert.False(t, syntax.TokPunct.IsLiteral())
}
