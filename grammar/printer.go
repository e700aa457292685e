package grammar

import (
	"fmt"
	"strings"
)

// String renders a rule back in DSL syntax. Grouping parentheses are emitted
// wherever precedence demands them, so the output re-parses to the same
// model even when the input leaned on precedence instead of parentheses.

func (r *Seq) String() string {
	parts := make([]string, 0, len(r.Rules))
	for _, sub := range r.Rules {
		if alt, ok := sub.(*Alt); ok {
			parts = append(parts, "("+alt.String()+")")
			continue
		}
		parts = append(parts, sub.String())
	}
	return strings.Join(parts, " ")
}

func (r *Alt) String() string {
	parts := make([]string, 0, len(r.Rules))
	for _, sub := range r.Rules {
		parts = append(parts, sub.String())
	}
	return strings.Join(parts, " | ")
}

func (r *Opt) String() string { return postfix(r.Rule, "?") }
func (r *Rep) String() string { return postfix(r.Rule, "*") }

func (r *Labeled) String() string {
	switch r.Rule.(type) {
	case *Seq, *Alt:
		return fmt.Sprintf("%s:(%s)", r.Label, r.Rule)
	default:
		return fmt.Sprintf("%s:%s", r.Label, r.Rule)
	}
}

func (r *NodeRef) String() string  { return r.Name }
func (r *TokenRef) String() string { return r.Name }

func (r *Literal) String() string {
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(r.Text)
	return "'" + escaped + "'"
}

func postfix(inner Rule, op string) string {
	switch inner.(type) {
	case *NodeRef, *TokenRef, *Literal:
		return inner.String() + op
	default:
		return "(" + inner.String() + ")" + op
	}
}

func (d *Definition) String() string {
	return fmt.Sprintf("%s = %s", d.Name, d.Rule)
}

// String renders the whole grammar, one definition per line, in file order.
func (g *Grammar) String() string {
	var b strings.Builder
	for _, d := range g.Defs {
		b.WriteString(d.String())
		b.WriteString("\n")
	}
	return b.String()
}
