package grammar

import (
	"orn/token"
)

// Position tracks a location in a grammar file for diagnostics.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Rule is one node of a grammar rule tree. Rules are immutable after Parse;
// traversal is via type switches and Subrules.
type Rule interface {
	RulePos() Position
	String() string
	isRule()
}

// Seq is an ordered sequence of sub-rules.
type Seq struct {
	Pos   Position
	Rules []Rule
}

// Alt is an ordered set of interchangeable sub-rules.
type Alt struct {
	Pos   Position
	Rules []Rule
}

// Opt marks its sub-rule as present zero or one times.
type Opt struct {
	Pos  Position
	Rule Rule
}

// Rep marks its sub-rule as present zero or more times.
type Rep struct {
	Pos  Position
	Rule Rule
}

// Labeled names the field a sub-rule produces.
type Labeled struct {
	Pos   Position
	Label string
	Rule  Rule
}

// NodeRef references another definition by name. Resolution against the
// definition set is the compiler's job; an unresolved name survives parsing
// and fails compilation instead.
type NodeRef struct {
	Pos  Position
	Name string
}

// TokenRef references a primitive terminal category such as ident or
// int_literal.
type TokenRef struct {
	Pos  Position
	Name string
	Kind token.Kind
}

// Literal is a fixed token spelled out in quotes, e.g. 'fn' or '->'.
// The compiler maps the text to a token kind.
type Literal struct {
	Pos  Position
	Text string
}

func (r *Seq) RulePos() Position     { return r.Pos }
func (r *Alt) RulePos() Position     { return r.Pos }
func (r *Opt) RulePos() Position     { return r.Pos }
func (r *Rep) RulePos() Position     { return r.Pos }
func (r *Labeled) RulePos() Position { return r.Pos }
func (r *NodeRef) RulePos() Position { return r.Pos }
func (r *TokenRef) RulePos() Position { return r.Pos }
func (r *Literal) RulePos() Position { return r.Pos }

func (*Seq) isRule()     {}
func (*Alt) isRule()     {}
func (*Opt) isRule()     {}
func (*Rep) isRule()     {}
func (*Labeled) isRule() {}
func (*NodeRef) isRule() {}
func (*TokenRef) isRule() {}
func (*Literal) isRule() {}

// Subrules returns the immediate children of a rule, in rule order.
// Leaf rules return nil.
func Subrules(r Rule) []Rule {
	switch r := r.(type) {
	case *Seq:
		return r.Rules
	case *Alt:
		return r.Rules
	case *Opt:
		return []Rule{r.Rule}
	case *Rep:
		return []Rule{r.Rule}
	case *Labeled:
		return []Rule{r.Rule}
	default:
		return nil
	}
}

// Definition is one grammar-level production: Name = Rule.
type Definition struct {
	Pos  Position
	Name string
	Rule Rule
}

// Grammar is the lossless in-memory form of one grammar file. The definition
// order is the file order; the index of a definition doubles as its stable
// node-kind id.
type Grammar struct {
	Defs  []*Definition
	index map[string]*Definition
}

// Def looks a definition up by name. When a name is defined twice, the first
// definition wins here and the compiler reports the duplicate.
func (g *Grammar) Def(name string) (*Definition, bool) {
	d, ok := g.index[name]
	return d, ok
}

// NodeID returns the stable numeric id of a definition, which is its
// position in the file.
func (g *Grammar) NodeID(name string) (int, bool) {
	d, ok := g.index[name]
	if !ok {
		return 0, false
	}
	for i, def := range g.Defs {
		if def == d {
			return i, true
		}
	}
	return 0, false
}
