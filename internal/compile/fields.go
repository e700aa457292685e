// Package compile turns a parsed grammar into the shape contract the typed
// facade is generated from: per definition, either a flat field list
// (product) or a member list (sum), with every reference resolved and every
// field classified by cardinality and target.
package compile

import (
	"fmt"
	"strings"

	"orn/grammar"
	"orn/token"
)

// Cardinality says how many children a field may produce.
type Cardinality int

const (
	One Cardinality = iota
	Optional
	Many
)

func (c Cardinality) String() string {
	switch c {
	case One:
		return "one"
	case Optional:
		return "optional"
	case Many:
		return "many"
	default:
		return fmt.Sprintf("Cardinality(%d)", int(c))
	}
}

// Target is what a field's children are: a terminal, a single node kind, or
// a closed set of node kinds sharing the slot.
type Target interface {
	String() string
	isTarget()
}

// TokenTarget is a field holding a terminal.
type TokenTarget struct {
	Kind token.Kind
}

// NodeTarget is a field holding one concrete node kind.
type NodeTarget struct {
	Name string
	ID   int
}

// SumTarget is a field holding any member of a sum definition.
type SumTarget struct {
	Name    string
	Members []string
}

func (TokenTarget) isTarget() {}
func (NodeTarget) isTarget()  {}
func (SumTarget) isTarget()   {}

func (t TokenTarget) String() string { return fmt.Sprintf("token(%s)", t.Kind) }
func (t NodeTarget) String() string  { return t.Name }
func (t SumTarget) String() string {
	return fmt.Sprintf("%s(%s)", t.Name, strings.Join(t.Members, " | "))
}

// Field is one compiled accessor slot of a product definition. TargetIndex
// distinguishes several one-shot fields of the same target within a node,
// e.g. the two operand slots of a binary expression.
type Field struct {
	Name        string
	Card        Cardinality
	Target      Target
	TargetIndex int
	Pos         grammar.Position
}

// DefKind classifies a compiled definition.
type DefKind int

const (
	// ProductDef is struct-like: a fixed, ordered field list.
	ProductDef DefKind = iota
	// SumDef is a tagged union of node kinds sharing one grammatical slot.
	SumDef
)

// Def is the compiled form of one grammar definition.
type Def struct {
	Name    string
	ID      int
	Kind    DefKind
	Fields  []Field  // products; grammar left-to-right order
	Members []string // sums; declaration order
}

// Model is the compiler output: the sole contract the facade generator
// consumes. Definition order follows the grammar file, minus inlined list
// helpers.
type Model struct {
	Defs  []*Def
	index map[string]*Def
}

// Def looks a compiled definition up by (canonical) name.
func (m *Model) Def(name string) (*Def, bool) {
	d, ok := m.index[name]
	return d, ok
}
