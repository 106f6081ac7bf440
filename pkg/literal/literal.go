// Package literal decomposes integer literal tokens into prefix, digits and
// suffix, and maps each literal kind to its digit grouping.
package literal

import (
	"errors"
	"fmt"

	"github.com/yaklabco/assistkit/pkg/syntax"
)

// ErrNotALiteral is returned when a token is not an integer literal.
var ErrNotALiteral = errors.New("not an integer literal")

// NumberType is the radix family of an integer literal.
type NumberType int

// Integer literal kinds.
const (
	Decimal NumberType = iota
	Hex
	Octal
	Binary
)

func (t NumberType) String() string {
	switch t {
	case Decimal:
		return "decimal"
	case Hex:
		return "hex"
	case Octal:
		return "octal"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("NumberType(%d)", int(t))
	}
}

// prefixLen is the length of every radix prefix.
const prefixLen = 2

// Literal is an integer literal split into its syntactic parts.
// Prefix + Digits + Suffix reproduces the original token text.
type Literal struct {
	// Type is the radix family, derived from Prefix.
	Type NumberType

	// Prefix is "0x", "0o", "0b" or empty for decimal literals.
	Prefix string

	// Digits is everything between prefix and suffix, separators included.
	Digits string

	// Suffix is the type suffix (e.g. "u32"), or empty.
	Suffix string
}

// String reassembles the literal text.
func (l Literal) String() string {
	return l.Prefix + l.Digits + l.Suffix
}

// WithDigits returns a copy of l with its digit run replaced.
func (l Literal) WithDigits(digits string) Literal {
	l.Digits = digits
	return l
}

// Decompose splits an integer literal's text. The trailing suffixLen bytes
// are taken as the suffix; the caller's token classifier knows which
// suffixes are valid. Prefixes are matched case-sensitively.
func Decompose(text string, suffixLen int) (Literal, error) {
	if text == "" || suffixLen < 0 || suffixLen >= len(text) {
		return Literal{}, fmt.Errorf("%w: %q", ErrNotALiteral, text)
	}

	body := text[:len(text)-suffixLen]
	lit := Literal{
		Type:   Decimal,
		Digits: body,
		Suffix: text[len(body):],
	}

	if len(body) < prefixLen {
		return lit, nil
	}

	switch body[:prefixLen] {
	case "0x":
		lit.Type = Hex
	case "0o":
		lit.Type = Octal
	case "0b":
		lit.Type = Binary
	default:
		return lit, nil
	}

	lit.Prefix = body[:prefixLen]
	lit.Digits = body[prefixLen:]

	return lit, nil
}

// FromToken decomposes an integer literal token.
func FromToken(tok syntax.Token) (Literal, error) {
	if tok.Kind != syntax.TokIntNumber {
		return Literal{}, fmt.Errorf("%w: token kind %s", ErrNotALiteral, tok.Kind)
	}
	return Decompose(tok.Text, tok.SuffixLen)
}
