package syntax

// TokenKind classifies a lexical token of the source language.
type TokenKind uint16

// Token kinds recognised by the parsers.
const (
	TokOther TokenKind = iota
	TokIntNumber
	TokFloatNumber
	TokString
	TokRawString
	TokChar
	TokIdent
	TokComment
	TokPunct
	TokWhitespace
)

var tokenKindNames = [...]string{
	TokOther:       "Other",
	TokIntNumber:   "IntNumber",
	TokFloatNumber: "FloatNumber",
	TokString:      "String",
	TokRawString:   "RawString",
	TokChar:        "Char",
	TokIdent:       "Ident",
	TokComment:     "Comment",
	TokPunct:       "Punct",
	TokWhitespace:  "Whitespace",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "TokenKind(?)"
}

// IsLiteral returns true for numeric, string and character literals.
func (k TokenKind) IsLiteral() bool {
	switch k {
	case TokIntNumber, TokFloatNumber, TokString, TokRawString, TokChar:
		return true
	default:
		return false
	}
}

// Token is the smallest lexical unit covering a position in the buffer.
type Token struct {
	// Kind classifies the token.
	Kind TokenKind

	// Range is the byte span of the token in the buffer.
	Range TextRange

	// Text is the raw source text of the token.
	Text string

	// SuffixLen is the length of a recognised type suffix at the end of a
	// numeric literal (e.g. 3 for "42u32"). Zero for all other tokens.
	SuffixLen int
}

// Len returns the length of this token in bytes.
func (t Token) Len() int {
	return t.Range.Len()
}

// BetweenQuotes returns the range strictly between the opening and closing
// double quote of a string token. Prefixed strings such as b"..." are
// handled by locating the first quote.
func (t Token) BetweenQuotes() (TextRange, bool) {
	if t.Kind != TokString {
		return TextRange{}, false
	}

	open := -1
	for i := 0; i < len(t.Text); i++ {
		if t.Text[i] == '"' {
			open = i
			break
		}
	}
	closing := len(t.Text) - 1
	if open < 0 || closing <= open || t.Text[closing] != '"' {
		return TextRange{}, false
	}

	return TextRange{
		Start: t.Range.Start + open + 1,
		End:   t.Range.Start + closing,
	}, true
}
