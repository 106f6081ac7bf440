package treesitter

import (
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/assistkit/pkg/syntax"
)

// integerSuffixes are the Rust integer type suffixes, longest first so the
// first match is the longest one.
var integerSuffixes = []string{
	"usize", "isize",
	"u128", "i128",
	"u16", "u32", "u64",
	"i16", "i32", "i64",
	"u8", "i8",
}

// floatSuffixes may end an integer literal such as 1000f32. In a hex
// literal the same bytes are digits.
var floatSuffixes = []string{"f32", "f64"}

// IntegerSuffixLen returns the length of the type suffix ending text, or 0
// when there is none. At least one character must remain in front of the
// suffix.
func IntegerSuffixLen(text string) int {
	if n := suffixLen(text, integerSuffixes); n > 0 {
		return n
	}
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		return 0
	}
	return suffixLen(text, floatSuffixes)
}

func suffixLen(text string, suffixes []string) int {
	for _, suffix := range suffixes {
		if len(text) > len(suffix) && strings.HasSuffix(text, suffix) {
			return len(suffix)
		}
	}
	return 0
}

// atomicTypes are node types treated as a single token even though the
// grammar may give them children.
var atomicTypes = map[string]syntax.TokenKind{
	"integer_literal":    syntax.TokIntNumber,
	"float_literal":      syntax.TokFloatNumber,
	"string_literal":     syntax.TokString,
	"raw_string_literal": syntax.TokRawString,
	"char_literal":       syntax.TokChar,
	"line_comment":       syntax.TokComment,
	"block_comment":      syntax.TokComment,
}

var identTypes = map[string]bool{
	"identifier":       true,
	"field_identifier": true,
	"type_identifier":  true,
	"primitive_type":   true,
	"metavariable":     true,
	"self":             true,
	"crate":            true,
	"super":            true,
}

func isAtomic(n *sitter.Node) bool {
	_, ok := atomicTypes[n.Type()]
	return ok
}

// tokenKind classifies a leaf or atomic node.
func tokenKind(n *sitter.Node, text string) syntax.TokenKind {
	nodeType := n.Type()
	if kind, ok := atomicTypes[nodeType]; ok {
		return kind
	}
	if identTypes[nodeType] {
		return syntax.TokIdent
	}
	if text == "" {
		return syntax.TokOther
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return syntax.TokOther
		}
	}
	return syntax.TokPunct
}

// nodeKind maps a grammar node type onto the closed node kind set.
func nodeKind(nodeType string) syntax.NodeKind {
	switch nodeType {
	case "source_file":
		return syntax.NodeSourceFile
	case "macro_invocation":
		return syntax.NodeMacroCall
	case "call_expression":
		return syntax.NodeCall
	case "token_tree":
		return syntax.NodeTokenTree
	case "let_declaration":
		return syntax.NodeStatement
	}
	if _, ok := atomicTypes[nodeType]; ok && !strings.HasSuffix(nodeType, "_comment") {
		return syntax.NodeLiteral
	}
	switch {
	case strings.HasSuffix(nodeType, "_statement"):
		return syntax.NodeStatement
	case strings.HasSuffix(nodeType, "_expression"):
		return syntax.NodeExpression
	default:
		return syntax.NodeOther
	}
}

// tokenRank orders candidate tokens at a boundary. Higher wins.
func tokenRank(kind syntax.TokenKind) int {
	switch {
	case kind.IsLiteral(), kind == syntax.TokIdent:
		return 2
	case kind == syntax.TokWhitespace, kind == syntax.TokPunct:
		return 0
	default:
		return 1
	}
}
