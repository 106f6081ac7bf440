package syntax

// NodeKind classifies a syntax tree node for the purposes of assists.
// Parsers map their grammar-specific node types onto this closed set.
type NodeKind uint16

// Node kinds exposed to assists.
const (
	NodeOther NodeKind = iota
	NodeSourceFile
	NodeMacroCall
	NodeCall
	NodeTokenTree
	NodeLiteral
	NodeStatement
	NodeExpression
)

var nodeKindNames = [...]string{
	NodeOther:      "Other",
	NodeSourceFile: "SourceFile",
	NodeMacroCall:  "MacroCall",
	NodeCall:       "Call",
	NodeTokenTree:  "TokenTree",
	NodeLiteral:    "Literal",
	NodeStatement:  "Statement",
	NodeExpression: "Expression",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "NodeKind(?)"
}

// IsCallLike returns true for nodes that apply a callee to arguments.
func (k NodeKind) IsCallLike() bool {
	return k == NodeMacroCall || k == NodeCall
}

// Node is a read-only handle to a syntax tree node.
type Node interface {
	// Kind classifies the node.
	Kind() NodeKind

	// Range is the byte span of the node in the buffer.
	Range() TextRange
}

// Tree is the navigation capability assists consume. Implementations must be
// safe for concurrent use by multiple readers; assists never mutate or retain
// the tree beyond a single invocation.
type Tree interface {
	// CoveringToken returns the smallest lexical token containing r.
	CoveringToken(r TextRange) (Token, bool)

	// CoveringNode returns the smallest node containing r.
	CoveringNode(r TextRange) (Node, bool)

	// Parent returns the structural parent of n.
	Parent(n Node) (Node, bool)

	// CalleeName returns the callee path of a call-like node.
	CalleeName(n Node) (string, bool)
}
