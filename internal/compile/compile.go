package compile

import (
	"fmt"

	"github.com/iancoleman/strcase"

	"orn/grammar"
	"orn/internal/errors"
	"orn/token"
)

type compiler struct {
	g       *grammar.Grammar
	renames map[string]string
	defs    []*grammar.Definition // deduplicated, file order
	defSet  map[string]bool       // canonical names
	sums    map[string][]string   // canonical sum name -> canonical members
	helpers map[string]listHelper
	ids     map[string]int // canonical name -> emitted id
	errs    []errors.GrammarError
}

// Compile resolves and flattens a grammar into its field-list model. All
// defects are collected before failing; any defect is fatal and yields a nil
// model, because generated code cannot be trusted past a broken grammar.
func Compile(g *grammar.Grammar) (*Model, []errors.GrammarError) {
	c := &compiler{
		g:       g,
		renames: renameTable(g),
		defSet:  make(map[string]bool),
		sums:    make(map[string][]string),
		helpers: make(map[string]listHelper),
		ids:     make(map[string]int),
	}

	c.collectDefs()
	c.classifySums()
	c.detectHelpers()
	c.validateAll()
	if len(c.errs) > 0 {
		return nil, c.errs
	}

	model := c.build()
	if len(c.errs) > 0 {
		return nil, c.errs
	}
	return model, nil
}

func (c *compiler) canonical(name string) string {
	if current, ok := c.renames[name]; ok {
		return current
	}
	return name
}

func (c *compiler) errorf(code string, pos grammar.Position, length int, format string, args ...interface{}) {
	c.errs = append(c.errs, errors.GrammarError{
		Level:    errors.Error,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
		Length:   length,
	})
}

func (c *compiler) collectDefs() {
	for _, d := range c.g.Defs {
		name := c.canonical(d.Name)
		if c.defSet[name] {
			c.errorf(errors.ErrorDuplicateDefinition, d.Pos, len(d.Name),
				"%s is defined more than once", d.Name)
			continue
		}
		c.defSet[name] = true
		c.defs = append(c.defs, d)
	}
}

// classifySums finds definitions whose rule is a bare alternation of node
// references. Everything else is a product.
func (c *compiler) classifySums() {
	for _, d := range c.defs {
		alt, ok := d.Rule.(*grammar.Alt)
		if !ok {
			continue
		}
		members := make([]string, 0, len(alt.Rules))
		bare := true
		for _, sub := range alt.Rules {
			ref, ok := sub.(*grammar.NodeRef)
			if !ok {
				bare = false
				break
			}
			members = append(members, c.canonical(ref.Name))
		}
		if bare {
			c.sums[c.canonical(d.Name)] = members
		}
	}
}

// detectHelpers finds dedicated comma-list rules from the older grammar
// revision. A helper is inlined at its use site only when it has exactly one
// use; rules like Path = PathSegment ('::' PathSegment)* are real nodes and
// must survive, which the comma requirement and the use count both guard.
func (c *compiler) detectHelpers() {
	refs := make(map[string]int)
	for _, d := range c.defs {
		countRefs(d.Rule, c, refs)
	}

	for _, d := range c.defs {
		helper, ok := listHelperElem(d.Rule)
		if !ok || helper.sep != "," {
			continue
		}
		if refs[c.canonical(d.Name)] != 1 {
			continue
		}
		c.helpers[c.canonical(d.Name)] = helper
	}
}

func countRefs(r grammar.Rule, c *compiler, refs map[string]int) {
	if ref, ok := r.(*grammar.NodeRef); ok {
		refs[c.canonical(ref.Name)]++
		return
	}
	for _, sub := range grammar.Subrules(r) {
		countRefs(sub, c, refs)
	}
}

func (c *compiler) validateAll() {
	for _, d := range c.defs {
		c.validate(d.Rule)
	}
}

func (c *compiler) validate(r grammar.Rule) {
	switch r := r.(type) {
	case *grammar.Opt:
		c.checkNested(r.Rule)
	case *grammar.Rep:
		c.checkNested(r.Rule)
	case *grammar.NodeRef:
		if !c.defSet[c.canonical(r.Name)] {
			c.errs = append(c.errs, errors.GrammarError{
				Level:    errors.Error,
				Code:     errors.ErrorUnresolvedReference,
				Message:  fmt.Sprintf("cannot resolve reference to %s", r.Name),
				Position: r.Pos,
				Length:   len(r.Name),
				HelpText: "declare the rule, or use a primitive terminal name such as ident",
			})
		}
		return
	case *grammar.Literal:
		if _, ok := token.LookupLiteral(r.Text); !ok {
			c.errorf(errors.ErrorUnknownLiteral, r.Pos, len(r.Text)+2,
				"'%s' is not a token of the language", r.Text)
		}
		return
	}
	for _, sub := range grammar.Subrules(r) {
		c.validate(sub)
	}
}

// checkNested rejects '?' or '*' applied directly to an already optional or
// repeated rule. A Labeled or Seq in between resets the check: the label or
// the sequence pins down which layer owns the cardinality.
func (c *compiler) checkNested(child grammar.Rule) {
	offenders := []grammar.Rule{child}
	if alt, ok := child.(*grammar.Alt); ok {
		offenders = alt.Rules
	}
	for _, sub := range offenders {
		switch sub.(type) {
		case *grammar.Opt, *grammar.Rep:
			c.errorf(errors.ErrorNestedCardinality, sub.RulePos(), 1,
				"cardinality operator applied to an already optional or repeated rule")
		}
	}
}

func (c *compiler) build() *Model {
	var emitted []*grammar.Definition
	for _, d := range c.defs {
		if _, inlined := c.helpers[c.canonical(d.Name)]; inlined {
			continue
		}
		emitted = append(emitted, d)
	}
	for i, d := range emitted {
		c.ids[c.canonical(d.Name)] = i
	}

	model := &Model{index: make(map[string]*Def, len(emitted))}
	for i, d := range emitted {
		name := c.canonical(d.Name)
		def := &Def{Name: name, ID: i}
		if members, ok := c.sums[name]; ok {
			def.Kind = SumDef
			def.Members = members
		} else {
			def.Kind = ProductDef
			def.Fields = c.flatten(d)
		}
		model.Defs = append(model.Defs, def)
		model.index[name] = def
	}
	return model
}

// fieldAcc accumulates fields in first-occurrence order while merging
// repeated sightings of the same name.
type fieldAcc struct {
	fields []Field
	index  map[string]int
	auto   map[string]bool
}

func newFieldAcc() *fieldAcc {
	return &fieldAcc{index: make(map[string]int), auto: make(map[string]bool)}
}

func (c *compiler) flatten(d *grammar.Definition) []Field {
	acc := newFieldAcc()
	c.walk(d.Rule, One, "", acc)

	// Several one-shot fields can share a target, e.g. the two operand
	// slots of a binary expression. The index tells the facade which
	// matching child each field owns.
	counts := make(map[string]int)
	for i := range acc.fields {
		key := acc.fields[i].Target.String()
		acc.fields[i].TargetIndex = counts[key]
		counts[key]++
	}
	return acc.fields
}

func weaken(card Cardinality) Cardinality {
	if card == Many {
		return Many
	}
	return Optional
}

func (c *compiler) walk(r grammar.Rule, card Cardinality, label string, acc *fieldAcc) {
	switch r := r.(type) {
	case *grammar.Seq:
		for _, sub := range r.Rules {
			c.walk(sub, card, "", acc)
		}
	case *grammar.Alt:
		// Only one branch materializes, so every branch's fields are at
		// most optional, and a field shared between branches stays
		// optional rather than turning repeated.
		for _, sub := range r.Rules {
			branch := newFieldAcc()
			c.walk(sub, weaken(card), label, branch)
			c.mergeAlt(acc, branch)
		}
	case *grammar.Labeled:
		c.walk(r.Rule, card, r.Label, acc)
	case *grammar.Opt:
		c.walk(r.Rule, weaken(card), label, acc)
	case *grammar.Rep:
		c.walk(r.Rule, Many, label, acc)
	case *grammar.NodeRef:
		c.addRef(r, card, label, acc)
	case *grammar.TokenRef:
		name, auto := label, false
		if name == "" {
			name, auto = r.Name, true
		}
		c.addField(acc, Field{Name: name, Card: card, Target: TokenTarget{Kind: r.Kind}, Pos: r.Pos}, auto)
	case *grammar.Literal:
		if label == "" {
			// Structural punctuation; reachable only through the
			// generic child sequence.
			return
		}
		kind, _ := token.LookupLiteral(r.Text)
		c.addField(acc, Field{Name: label, Card: card, Target: TokenTarget{Kind: kind}, Pos: r.Pos}, false)
	}
}

func (c *compiler) addRef(r *grammar.NodeRef, card Cardinality, label string, acc *fieldAcc) {
	name := c.canonical(r.Name)

	if helper, ok := c.helpers[name]; ok {
		elemName := c.canonical(helper.elem.Name)
		fieldName, auto := label, false
		if fieldName == "" {
			fieldName = helper.label
		}
		if fieldName == "" {
			fieldName, auto = strcase.ToSnake(elemName), true
		}
		c.addField(acc, Field{Name: fieldName, Card: Many, Target: c.targetFor(elemName), Pos: r.Pos}, auto)
		return
	}

	fieldName, auto := label, false
	if fieldName == "" {
		fieldName, auto = strcase.ToSnake(name), true
	}
	c.addField(acc, Field{Name: fieldName, Card: card, Target: c.targetFor(name), Pos: r.Pos}, auto)
}

func (c *compiler) targetFor(name string) Target {
	if members, ok := c.sums[name]; ok {
		return SumTarget{Name: name, Members: members}
	}
	return NodeTarget{Name: name, ID: c.ids[name]}
}

// addField merges a sighting into the accumulator. Sequential collisions
// become repeated fields (the permissive reading: the parser may emit zero,
// one, or many), except that two explicit labels disagreeing between
// exactly-one and optional is a grammar defect.
func (c *compiler) addField(acc *fieldAcc, f Field, auto bool) {
	i, seen := acc.index[f.Name]
	if !seen {
		acc.index[f.Name] = len(acc.fields)
		acc.auto[f.Name] = auto
		acc.fields = append(acc.fields, f)
		return
	}

	existing := &acc.fields[i]
	if existing.Target.String() != f.Target.String() {
		c.errorf(errors.ErrorConflictingTargets, f.Pos, len(f.Name),
			"field %s is bound to both %s and %s", f.Name, existing.Target, f.Target)
		return
	}
	bothLabeled := !auto && !acc.auto[f.Name]
	switch {
	case existing.Card == Many || f.Card == Many:
		existing.Card = Many
	case existing.Card != f.Card && bothLabeled:
		c.errorf(errors.ErrorAmbiguousCardinality, f.Pos, len(f.Name),
			"field %s is reachable with conflicting cardinalities", f.Name)
	default:
		existing.Card = Many
	}
}

// mergeAlt folds one alternation branch into the accumulator. Shared names
// take the most permissive cardinality seen so far instead of turning into
// repetition.
func (c *compiler) mergeAlt(acc *fieldAcc, branch *fieldAcc) {
	for _, f := range branch.fields {
		i, seen := acc.index[f.Name]
		if !seen {
			acc.index[f.Name] = len(acc.fields)
			acc.auto[f.Name] = branch.auto[f.Name]
			acc.fields = append(acc.fields, f)
			continue
		}
		if f.Card > acc.fields[i].Card {
			acc.fields[i].Card = f.Card
		}
	}
}
