package syntax

import (
	"iter"
	"strings"

	"orn/token"
)

// Element is one entry of a node's child list: either a sub-node or a token.
// Both answer span questions through their first and last token.
type Element interface {
	FirstToken() *Token
	LastToken() *Token
	element()
}

// Token is a leaf: a terminal kind plus its source text. Immutable.
type Token struct {
	kind token.Kind
	text string
}

// NewToken builds a leaf. This and NewNode are the entire construction
// surface offered to the external lexer/parser.
func NewToken(kind token.Kind, text string) *Token {
	return &Token{kind: kind, text: text}
}

func (t *Token) Kind() token.Kind   { return t.kind }
func (t *Token) Text() string       { return t.text }
func (t *Token) FirstToken() *Token { return t }
func (t *Token) LastToken() *Token  { return t }
func (*Token) element()             {}

// Node is an interior tree node: a kind tag and an ordered child list.
// Nothing about the child list is validated; a node of kind FN_DEF with no
// body, or with stray tokens attached during error recovery, is a perfectly
// valid tree. Immutable after construction and safe for concurrent reads.
type Node struct {
	kind     Kind
	children []Element
}

// NewNode builds a node over an ordered child list. The list is copied, so
// the caller's slice stays free for reuse; nil children are dropped.
// Construction never fails; a malformed tree is still a tree.
func NewNode(kind Kind, children []Element) *Node {
	owned := make([]Element, 0, len(children))
	for _, c := range children {
		if c != nil {
			owned = append(owned, c)
		}
	}
	return &Node{kind: kind, children: owned}
}

func (n *Node) Kind() Kind { return n.kind }

// Children iterates the child list in order. Each call yields an
// independent iteration, so the sequence can be walked repeatedly.
func (n *Node) Children() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		for _, c := range n.children {
			if !yield(c) {
				return
			}
		}
	}
}

// NumChildren returns the child count.
func (n *Node) NumChildren() int { return len(n.children) }

// NthChildOfKind returns the nth direct sub-node of the given kind, counting
// from zero, or nil. Position in the child list is irrelevant: lookup is by
// kind, which is what keeps accessors working on trees mangled by error
// recovery.
func (n *Node) NthChildOfKind(kind Kind, nth int) *Node {
	for _, c := range n.children {
		child, ok := c.(*Node)
		if !ok || child.kind != kind {
			continue
		}
		if nth == 0 {
			return child
		}
		nth--
	}
	return nil
}

// NthTokenOfKind is NthChildOfKind for direct token children.
func (n *Node) NthTokenOfKind(kind token.Kind, nth int) *Token {
	for _, c := range n.children {
		tok, ok := c.(*Token)
		if !ok || tok.kind != kind {
			continue
		}
		if nth == 0 {
			return tok
		}
		nth--
	}
	return nil
}

// FirstToken returns the leftmost token underneath this node, or nil for a
// node with no tokens at all. Callers reconstruct source spans from the
// first and last token.
func (n *Node) FirstToken() *Token {
	for _, c := range n.children {
		if t := c.FirstToken(); t != nil {
			return t
		}
	}
	return nil
}

// LastToken returns the rightmost token underneath this node, or nil.
func (n *Node) LastToken() *Token {
	for i := len(n.children) - 1; i >= 0; i-- {
		if t := n.children[i].LastToken(); t != nil {
			return t
		}
	}
	return nil
}

// Text concatenates the text of every token underneath this node.
func (n *Node) Text() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	for _, c := range n.children {
		switch c := c.(type) {
		case *Token:
			b.WriteString(c.text)
		case *Node:
			c.writeText(b)
		}
	}
}

func (*Node) element() {}
