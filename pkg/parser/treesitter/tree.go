package treesitter

import (
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/assistkit/pkg/syntax"
)

// side selects which neighbour owns an offset that sits on a boundary.
type side int

const (
	sideRight side = iota
	sideLeft
)

// Tree adapts a tree-sitter tree to syntax.Tree.
// The underlying bindings cache nodes without locking, so every lookup is
// serialised.
type Tree struct {
	mu      sync.Mutex
	tree    *sitter.Tree
	root    *sitter.Node
	content []byte
}

var _ syntax.Tree = (*Tree)(nil)

func newTree(tree *sitter.Tree, content []byte) *Tree {
	return &Tree{
		tree:    tree,
		root:    tree.RootNode(),
		content: content,
	}
}

// Close releases the tree-sitter tree.
func (t *Tree) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.tree != nil {
		t.tree.Close()
		t.tree = nil
		t.root = nil
	}
	return nil
}

// node is a syntax.Node backed by a tree-sitter node.
type node struct {
	n    *sitter.Node
	kind syntax.NodeKind
}

func (n *node) Kind() syntax.NodeKind {
	return n.kind
}

func (n *node) Range() syntax.TextRange {
	return nodeRange(n.n)
}

// Type returns the grammar node type, e.g. "macro_invocation".
func (n *node) Type() string {
	return n.n.Type()
}

func wrap(n *sitter.Node) *node {
	return &node{n: n, kind: nodeKind(n.Type())}
}

func nodeRange(n *sitter.Node) syntax.TextRange {
	return syntax.NewRange(int(n.StartByte()), int(n.EndByte()))
}

// CoveringToken returns the smallest token containing r. For an empty range
// on a token boundary both neighbours are considered: literals and
// identifiers win over punctuation and whitespace, and ties go right.
func (t *Tree) CoveringToken(r syntax.TextRange) (syntax.Token, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.root == nil || !r.IsValid() || r.End > len(t.content) {
		return syntax.Token{}, false
	}

	if !r.IsEmpty() {
		return t.tokenCovering(r)
	}

	right, okRight := t.tokenAt(r.Start, sideRight)
	left, okLeft := t.tokenAt(r.Start, sideLeft)
	switch {
	case okRight && okLeft:
		if right.Range == left.Range {
			return right, true
		}
		if tokenRank(left.Kind) > tokenRank(right.Kind) {
			return left, true
		}
		return right, true
	case okRight:
		return right, true
	case okLeft:
		return left, true
	default:
		return syntax.Token{}, false
	}
}

// tokenAt returns the token owning offset. With sideRight the token must
// satisfy start <= offset < end, with sideLeft start < offset <= end.
func (t *Tree) tokenAt(offset int, s side) (syntax.Token, bool) {
	if s == sideRight && offset >= len(t.content) {
		return syntax.Token{}, false
	}
	if s == sideLeft && offset == 0 {
		return syntax.Token{}, false
	}

	probe := syntax.NewRange(offset, offset+1)
	if s == sideLeft {
		probe = syntax.NewRange(offset-1, offset)
	}
	return t.tokenCovering(probe)
}

// tokenCovering descends from the root to the smallest token containing the
// non-empty range r. Bytes between children form a whitespace token.
func (t *Tree) tokenCovering(r syntax.TextRange) (syntax.Token, bool) {
	current := t.root
	if !nodeRange(current).ContainsRange(r) {
		return t.gapToken(current, r)
	}

	for {
		if isAtomic(current) || current.ChildCount() == 0 {
			return t.makeToken(current), true
		}

		next := childContaining(current, r)
		if next == nil {
			return t.gapToken(current, r)
		}
		current = next
	}
}

// gapToken returns the whitespace run around r inside parent, if r does not
// touch any child.
func (t *Tree) gapToken(parent *sitter.Node, r syntax.TextRange) (syntax.Token, bool) {
	start, end := 0, len(t.content)
	if parent != t.root {
		start, end = int(parent.StartByte()), int(parent.EndByte())
	}

	count := int(parent.ChildCount())
	for i := range count {
		child := parent.Child(i)
		childStart, childEnd := int(child.StartByte()), int(child.EndByte())
		switch {
		case childEnd <= r.Start:
			start = max(start, childEnd)
		case childStart >= r.End:
			end = min(end, childStart)
		default:
			return syntax.Token{}, false
		}
	}

	gap := syntax.NewRange(start, end)
	if gap.IsEmpty() || !gap.ContainsRange(r) {
		return syntax.Token{}, false
	}

	return syntax.Token{
		Kind:  syntax.TokWhitespace,
		Range: gap,
		Text:  string(t.content[gap.Start:gap.End]),
	}, true
}

func (t *Tree) makeToken(n *sitter.Node) syntax.Token {
	r := nodeRange(n)
	text := string(t.content[r.Start:r.End])
	tok := syntax.Token{
		Kind:  tokenKind(n, text),
		Range: r,
		Text:  text,
	}
	if tok.Kind == syntax.TokIntNumber {
		tok.SuffixLen = IntegerSuffixLen(text)
	}
	return tok
}

func childContaining(parent *sitter.Node, r syntax.TextRange) *sitter.Node {
	count := int(parent.ChildCount())
	for i := range count {
		child := parent.Child(i)
		if child == nil {
			continue
		}
		cr := nodeRange(child)
		if cr.IsEmpty() {
			continue
		}
		if cr.ContainsRange(r) {
			return child
		}
	}
	return nil
}

// CoveringNode returns the smallest named node containing r. An empty range
// on a boundary prefers the node starting at it.
func (t *Tree) CoveringNode(r syntax.TextRange) (syntax.Node, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.root == nil || !r.IsValid() || r.End > len(t.content) {
		return nil, false
	}

	current := t.root
	for {
		next := namedChildCovering(current, r)
		if next == nil {
			return wrap(current), true
		}
		current = next
	}
}

func namedChildCovering(parent *sitter.Node, r syntax.TextRange) *sitter.Node {
	var fallback *sitter.Node
	count := int(parent.NamedChildCount())
	for i := range count {
		child := parent.NamedChild(i)
		if child == nil {
			continue
		}
		cr := nodeRange(child)
		if !cr.ContainsRange(r) {
			continue
		}
		if !r.IsEmpty() || r.Start < cr.End {
			return child
		}
		fallback = child
	}
	return fallback
}

// Parent returns the structural parent of n. Token trees of a macro call and
// argument lists of a function call fold into the call itself.
func (t *Tree) Parent(n syntax.Node) (syntax.Node, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tn, ok := n.(*node)
	if !ok || t.root == nil {
		return nil, false
	}

	parent := tn.n.Parent()
	if parent == nil || parent.IsNull() {
		return nil, false
	}

	if grand := parent.Parent(); grand != nil && !grand.IsNull() {
		switch {
		case parent.Type() == "token_tree" && grand.Type() == "macro_invocation":
			parent = grand
		case parent.Type() == "arguments" && grand.Type() == "call_expression":
			parent = grand
		}
	}

	return wrap(parent), true
}

// CalleeName returns the macro path of a macro invocation or the function
// expression of a call.
func (t *Tree) CalleeName(n syntax.Node) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tn, ok := n.(*node)
	if !ok || t.root == nil {
		return "", false
	}

	var callee *sitter.Node
	switch tn.n.Type() {
	case "macro_invocation":
		callee = tn.n.ChildByFieldName("macro")
	case "call_expression":
		callee = tn.n.ChildByFieldName("function")
	}
	if callee == nil || callee.IsNull() {
		return "", false
	}

	return callee.Content(t.content), true
}
