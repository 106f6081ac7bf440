package split

import "github.com/yaklabco/assistkit/pkg/syntax"

// Call describes the call-like node directly enclosing a string token.
type Call struct {
	// Kind is the kind of the enclosing node. Only call-like kinds carry a
	// callee.
	Kind syntax.NodeKind

	// Callee is the macro path or function expression, if any.
	Callee string
}

// CallLookup finds the immediate structural parent of a token.
type CallLookup interface {
	// EnclosingCall returns the parent of the node spanning token, or false
	// if the token has no parent.
	EnclosingCall(token syntax.TextRange) (Call, bool)
}

// TreeLookup implements CallLookup on a syntax tree.
type TreeLookup struct {
	Tree syntax.Tree
}

var _ CallLookup = TreeLookup{}

// EnclosingCall implements CallLookup.
func (l TreeLookup) EnclosingCall(token syntax.TextRange) (Call, bool) {
	if l.Tree == nil {
		return Call{}, false
	}

	n, ok := l.Tree.CoveringNode(token)
	if !ok {
		return Call{}, false
	}
	parent, ok := l.Tree.Parent(n)
	if !ok {
		return Call{}, false
	}

	call := Call{Kind: parent.Kind()}
	if parent.Kind().IsCallLike() {
		call.Callee, _ = l.Tree.CalleeName(parent)
	}
	return call, true
}

// LookupFunc adapts a function to CallLookup.
type LookupFunc func(token syntax.TextRange) (Call, bool)

// EnclosingCall implements CallLookup.
func (f LookupFunc) EnclosingCall(token syntax.TextRange) (Call, bool) {
	return f(token)
}
