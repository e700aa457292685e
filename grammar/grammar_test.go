package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orn/token"
)

func TestParseSimpleDefinition(t *testing.T) {
	g, err := Parse("test.grammar", `Foo = 'a' bar:Bar? baz:Baz*
Bar = 'b'
Baz = 'c'`)
	require.NoError(t, err)
	require.Len(t, g.Defs, 3)

	foo := g.Defs[0]
	assert.Equal(t, "Foo", foo.Name)

	seq, ok := foo.Rule.(*Seq)
	require.True(t, ok, "Foo should lower to a sequence")
	require.Len(t, seq.Rules, 3)

	lit, ok := seq.Rules[0].(*Literal)
	require.True(t, ok, "first element should be a literal")
	assert.Equal(t, "a", lit.Text)

	bar, ok := seq.Rules[1].(*Labeled)
	require.True(t, ok, "second element should be labeled")
	assert.Equal(t, "bar", bar.Label)
	opt, ok := bar.Rule.(*Opt)
	require.True(t, ok, "bar should be optional")
	ref, ok := opt.Rule.(*NodeRef)
	require.True(t, ok)
	assert.Equal(t, "Bar", ref.Name)

	baz, ok := seq.Rules[2].(*Labeled)
	require.True(t, ok)
	assert.Equal(t, "baz", baz.Label)
	_, ok = baz.Rule.(*Rep)
	assert.True(t, ok, "baz should be repeated")
}

func TestParseAlternation(t *testing.T) {
	g, err := Parse("test.grammar", `Item = Bar | Baz
Bar = 'b'
Baz = 'c'`)
	require.NoError(t, err)

	alt, ok := g.Defs[0].Rule.(*Alt)
	require.True(t, ok, "Item should lower to an alternation")
	require.Len(t, alt.Rules, 2)

	first, ok := alt.Rules[0].(*NodeRef)
	require.True(t, ok)
	assert.Equal(t, "Bar", first.Name)
	second, ok := alt.Rules[1].(*NodeRef)
	require.True(t, ok)
	assert.Equal(t, "Baz", second.Name)
}

func TestParseSeparatedListSugar(t *testing.T) {
	g, err := Parse("test.grammar", `ParamList = '(' (param:Param (',' param:Param)* ','?)? ')'
Param = name:ident`)
	require.NoError(t, err)

	seq, ok := g.Defs[0].Rule.(*Seq)
	require.True(t, ok)
	require.Len(t, seq.Rules, 3)

	body, ok := seq.Rules[1].(*Opt)
	require.True(t, ok, "list body should be optional")
	inner, ok := body.Rule.(*Seq)
	require.True(t, ok, "list body should be a sequence")
	require.Len(t, inner.Rules, 3)

	_, ok = inner.Rules[0].(*Labeled)
	assert.True(t, ok, "leading element should be labeled")
	_, ok = inner.Rules[1].(*Rep)
	assert.True(t, ok, "separator tail should be repeated")
	_, ok = inner.Rules[2].(*Opt)
	assert.True(t, ok, "trailing separator should be optional")
}

func TestParseClassifiesPrimitiveTerminals(t *testing.T) {
	g, err := Parse("test.grammar", `Name = ident
Literal = int_literal | string_literal`)
	require.NoError(t, err)

	ref, ok := g.Defs[0].Rule.(*TokenRef)
	require.True(t, ok, "ident should be a primitive terminal reference")
	assert.Equal(t, token.IDENT, ref.Kind)

	alt, ok := g.Defs[1].Rule.(*Alt)
	require.True(t, ok)
	first, ok := alt.Rules[0].(*TokenRef)
	require.True(t, ok)
	assert.Equal(t, token.INT_LITERAL, first.Kind)
}

func TestParseKeepsUnknownNamesAsNodeRefs(t *testing.T) {
	g, err := Parse("test.grammar", `Foo = Missing`)
	require.NoError(t, err, "unresolved names are a compile defect, not a parse defect")

	ref, ok := g.Defs[0].Rule.(*NodeRef)
	require.True(t, ok)
	assert.Equal(t, "Missing", ref.Name)
}

func TestParseDefinitionBoundary(t *testing.T) {
	// Without lookahead the trailing Baz reference would swallow the next
	// definition's header.
	g, err := Parse("test.grammar", `Foo = 'a' Baz
Baz = 'c'`)
	require.NoError(t, err)
	require.Len(t, g.Defs, 2)

	seq, ok := g.Defs[0].Rule.(*Seq)
	require.True(t, ok)
	assert.Len(t, seq.Rules, 2)
}

func TestParseLiteralEscapes(t *testing.T) {
	g, err := Parse("test.grammar", `Quote = '\''
Backslash = '\\'`)
	require.NoError(t, err)

	quote := g.Defs[0].Rule.(*Literal)
	assert.Equal(t, "'", quote.Text)
	backslash := g.Defs[1].Rule.(*Literal)
	assert.Equal(t, `\`, backslash.Text)
}

func TestParseErrorHasPosition(t *testing.T) {
	_, err := Parse("broken.grammar", `Foo = ( 'a'`)
	require.Error(t, err)

	perr, ok := err.(*ParseError)
	require.True(t, ok, "malformed text should yield a ParseError")
	assert.Equal(t, "broken.grammar", perr.Position.Filename)
	assert.NotEmpty(t, perr.Message)
}

func TestParseCommentsAreElided(t *testing.T) {
	g, err := Parse("test.grammar", `// items
Foo = 'a' // trailing
Bar = 'b'`)
	require.NoError(t, err)
	assert.Len(t, g.Defs, 2)
}

func TestDuplicateDefinitionKeepsFirst(t *testing.T) {
	g, err := Parse("test.grammar", `Foo = 'a'
Foo = 'b'`)
	require.NoError(t, err)
	require.Len(t, g.Defs, 2, "both definitions survive for the compiler to flag")

	d, ok := g.Def("Foo")
	require.True(t, ok)
	lit := d.Rule.(*Literal)
	assert.Equal(t, "a", lit.Text, "lookup should resolve to the first definition")
}

func TestPrinterRoundTrip(t *testing.T) {
	source := `Foo = 'a' bar:Bar? baz:Baz*
Item = Bar | Baz
Bar = 'b'
Baz = 'c'
Pair = first:Expr '..' second:Expr
Expr = Bar`

	g, err := Parse("test.grammar", source)
	require.NoError(t, err)

	reparsed, err := Parse("test.grammar", g.String())
	require.NoError(t, err, "printed grammar should re-parse")
	assert.Equal(t, g.String(), reparsed.String(), "printing should be a fixed point")
}
