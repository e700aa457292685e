package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"orn/token"
)

// Lowering flattens the participle surface tree into the Rule model:
// single-element alternations and sequences unwrap, postfix operators become
// Opt/Rep nodes, and labels wrap their rule from the outside, so
// `baz:Baz*` lowers to Labeled(baz, Rep(NodeRef(Baz))).

func lowerPos(p lexer.Position) Position {
	return Position{
		Filename: p.Filename,
		Offset:   p.Offset,
		Line:     p.Line,
		Column:   p.Column,
	}
}

type lowerCtx struct {
	// definition names of the file being lowered; a bare identifier that
	// names no definition is classified as a primitive terminal reference
	// when the terminal vocabulary knows it
	defined map[string]bool
}

func lowerFile(f *grammarFile) *Grammar {
	ctx := &lowerCtx{defined: make(map[string]bool, len(f.Defs))}
	for _, d := range f.Defs {
		ctx.defined[d.Name] = true
	}

	g := &Grammar{index: make(map[string]*Definition, len(f.Defs))}
	for _, d := range f.Defs {
		def := &Definition{
			Pos:  lowerPos(d.Pos),
			Name: d.Name,
			Rule: ctx.lowerAlt(d.Rule),
		}
		g.Defs = append(g.Defs, def)
		if _, seen := g.index[def.Name]; !seen {
			g.index[def.Name] = def
		}
	}
	return g
}

func (ctx *lowerCtx) lowerAlt(n *altNode) Rule {
	if len(n.Alts) == 1 {
		return ctx.lowerSeq(n.Alts[0])
	}
	alt := &Alt{Pos: lowerPos(n.Pos)}
	for _, s := range n.Alts {
		alt.Rules = append(alt.Rules, ctx.lowerSeq(s))
	}
	return alt
}

func (ctx *lowerCtx) lowerSeq(n *seqNode) Rule {
	if len(n.Atoms) == 1 {
		return ctx.lowerPostfix(n.Atoms[0])
	}
	seq := &Seq{Pos: lowerPos(n.Pos)}
	for _, a := range n.Atoms {
		seq.Rules = append(seq.Rules, ctx.lowerPostfix(a))
	}
	return seq
}

func (ctx *lowerCtx) lowerPostfix(n *postfixNode) Rule {
	rule := ctx.lowerAtom(n.Atom)

	switch n.Op {
	case "*":
		rule = &Rep{Pos: lowerPos(n.Pos), Rule: rule}
	case "?":
		rule = &Opt{Pos: lowerPos(n.Pos), Rule: rule}
	}

	if n.Atom.Label != nil {
		rule = &Labeled{Pos: lowerPos(n.Atom.Pos), Label: *n.Atom.Label, Rule: rule}
	}
	return rule
}

func (ctx *lowerCtx) lowerAtom(n *atomNode) Rule {
	switch {
	case n.Literal != nil:
		return &Literal{Pos: lowerPos(n.Pos), Text: unquote(*n.Literal)}
	case n.Ref != nil:
		name := *n.Ref
		if !ctx.defined[name] {
			if kind, ok := token.LookupPrimitive(name); ok {
				return &TokenRef{Pos: lowerPos(n.Pos), Name: name, Kind: kind}
			}
		}
		// Either a definition or an unresolved name; the compiler decides.
		return &NodeRef{Pos: lowerPos(n.Pos), Name: name}
	default:
		return ctx.lowerAlt(n.Group)
	}
}

func unquote(lit string) string {
	body := lit[1 : len(lit)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}
	var b strings.Builder
	escaped := false
	for _, r := range body {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
