package compile

import (
	"orn/grammar"
)

// Two revisions of the grammar text are in circulation. They differ only in
// spelling: the older one names some rules differently and spells
// separated lists through dedicated helper rules instead of inline sugar.
// Both normalize to the same compiled model here, so nothing downstream
// needs to know which revision it was fed.

// renames maps legacy rule names to their current spelling. A rename only
// applies when the grammar defines the legacy name and not the current one.
var renames = map[string]string{
	"TypeRef":            "PathType",
	"RecordLit":          "RecordExpr",
	"RecordLitField":     "RecordExprField",
	"RecordLitFieldList": "RecordExprFieldList",
}

// renameTable computes the active renames for one grammar.
func renameTable(g *grammar.Grammar) map[string]string {
	table := make(map[string]string)
	for legacy, current := range renames {
		if _, hasLegacy := g.Def(legacy); !hasLegacy {
			continue
		}
		if _, hasCurrent := g.Def(current); hasCurrent {
			continue
		}
		table[legacy] = current
	}
	return table
}

// listHelper is a recognized dedicated-rule spelling of a separated list.
type listHelper struct {
	elem  *grammar.NodeRef
	label string // the helper's own field label, if any
	sep   string
}

// listHelperElem recognizes the dedicated-rule spelling of a separated list:
//
//	Params = param:Param (',' param:Param)* ','?
//
// Labels are tolerated as long as both element occurrences agree. The
// trailing-separator part is optional.
func listHelperElem(rule grammar.Rule) (listHelper, bool) {
	seq, ok := rule.(*grammar.Seq)
	if !ok || len(seq.Rules) < 2 || len(seq.Rules) > 3 {
		return listHelper{}, false
	}

	head, headLabel := unwrapLabel(seq.Rules[0])
	elem, ok := head.(*grammar.NodeRef)
	if !ok {
		return listHelper{}, false
	}

	rep, ok := seq.Rules[1].(*grammar.Rep)
	if !ok {
		return listHelper{}, false
	}
	tail, ok := rep.Rule.(*grammar.Seq)
	if !ok || len(tail.Rules) != 2 {
		return listHelper{}, false
	}
	sep, ok := tail.Rules[0].(*grammar.Literal)
	if !ok {
		return listHelper{}, false
	}
	tailElemRule, tailLabel := unwrapLabel(tail.Rules[1])
	tailElem, ok := tailElemRule.(*grammar.NodeRef)
	if !ok || tailElem.Name != elem.Name || tailLabel != headLabel {
		return listHelper{}, false
	}

	if len(seq.Rules) == 3 {
		trailing, ok := seq.Rules[2].(*grammar.Opt)
		if !ok {
			return listHelper{}, false
		}
		trailingSep, ok := trailing.Rule.(*grammar.Literal)
		if !ok || trailingSep.Text != sep.Text {
			return listHelper{}, false
		}
	}

	return listHelper{elem: elem, label: headLabel, sep: sep.Text}, true
}

func unwrapLabel(r grammar.Rule) (grammar.Rule, string) {
	if l, ok := r.(*grammar.Labeled); ok {
		return l.Rule, l.Label
	}
	return r, ""
}
