package predictive

import (
	"strings"

	"github.com/npillmayer/ll1"
	"github.com/npillmayer/ll1/ll"
)

// Node is a node of a parse tree. Inner nodes are labeled with non-terminals,
// leaves with terminals or with ε.
type Node struct {
	Symbol   ll.Symbol
	Children []*Node
	Span     ll1.Span  // input tokens covered by this node
	Token    ll1.Token // input token matched by a terminal leaf, nil otherwise
}

// IsLeaf is true for nodes without children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// String returns the tree rooted at n in a compact form, e.g.
//
//    E(T(F(id), T'(ε)), E'(ε))
//
// where every leaf is represented by its symbol. For ε-leaves, "ε" is printed.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	b.WriteString(n.Symbol.String())
	if n.Symbol.IsNonTerminal() {
		b.WriteByte('(')
		for i, ch := range n.Children {
			if i > 0 {
				b.WriteString(", ")
			}
			ch.write(b)
		}
		b.WriteByte(')')
	}
}

// Leaves returns the names of the terminals of a tree, from left to right.
// For a complete parse tree, this is the input token sequence.
func (n *Node) Leaves() []string {
	var leaves []string
	n.Walk(func(node *Node, depth int) bool {
		if node.Symbol.IsTerminal() {
			leaves = append(leaves, node.Symbol.Name)
		}
		return true
	})
	return leaves
}

// Walk traverses the tree rooted at n depth-first, left to right, calling
// visit for every node before visiting its children. If visit returns false,
// the children of a node are skipped.
func (n *Node) Walk(visit func(node *Node, depth int) bool) {
	n.walk(visit, 0)
}

func (n *Node) walk(visit func(*Node, int) bool, depth int) {
	if !visit(n, depth) {
		return
	}
	for _, ch := range n.Children {
		ch.walk(visit, depth+1)
	}
}

// fixSpans sets the spans of inner nodes from the spans of their children.
// Leaves have been assigned their spans during parsing.
func fixSpans(n *Node) ll1.Span {
	if n.IsLeaf() {
		return n.Span
	}
	span := fixSpans(n.Children[0])
	for _, ch := range n.Children[1:] {
		span = span.Extend(fixSpans(ch))
	}
	n.Span = span
	return span
}
