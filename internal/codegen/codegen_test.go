package codegen

import (
	goparser "go/parser"
	gotoken "go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orn/grammar"
	"orn/internal/compile"
)

func generateSource(t *testing.T, source string, opts Options) map[string]string {
	t.Helper()
	g, err := grammar.Parse("test.grammar", source)
	require.NoError(t, err)
	model, errs := compile.Compile(g)
	require.Empty(t, errs)

	files, err := Generate(model, opts)
	require.NoError(t, err)

	out := make(map[string]string, len(files))
	fset := gotoken.NewFileSet()
	for _, f := range files {
		_, err := goparser.ParseFile(fset, f.Name, f.Source, 0)
		require.NoError(t, err, "%s must be valid Go", f.Name)
		out[f.Name] = string(f.Source)
	}
	return out
}

func TestGenerateKinds(t *testing.T) {
	out := generateSource(t, `
Foo = 'fn' bar:Bar?
Bar = ident
Item = Foo | Bar
`, DefaultOptions())

	kinds := out["kind_gen.go"]
	assert.Contains(t, kinds, "package syntax")
	assert.Contains(t, kinds, "ERROR Kind = iota")
	assert.Contains(t, kinds, "\tFOO\n")
	assert.Contains(t, kinds, "\tBAR\n")
	assert.NotContains(t, kinds, "ITEM", "groups have no node kind of their own")
}

func TestGenerateFacade(t *testing.T) {
	out := generateSource(t, `
Foo = 'fn' bar:Bar? names:Name* mut:'mut'?
Bar = ident
Name = ident
Item = Foo | Bar
`, DefaultOptions())

	facade := out["nodes_gen.go"]
	assert.Contains(t, facade, "// Code generated by orn-syntaxgen. DO NOT EDIT.")
	assert.Contains(t, facade, "func CastFoo(n *syntax.Node) (*Foo, bool)")
	assert.Contains(t, facade, "func (n *Foo) Bar() (*Bar, bool)")
	assert.Contains(t, facade, "func (n *Foo) Names() iter.Seq[*Name]")
	assert.Contains(t, facade, "func (n *Foo) MutToken() (*syntax.Token, bool)")
	assert.Contains(t, facade, "var itemKinds = []syntax.Kind{")
	assert.Contains(t, facade, "func (n *Item) Downcast() Node")
}

func TestGenerateManualFieldsSkipped(t *testing.T) {
	opts := DefaultOptions()
	opts.ManualFields = map[string][]string{"Foo": {"bar"}}

	out := generateSource(t, `
Foo = bar:Bar baz:Baz
Bar = ident
Baz = ident
`, opts)

	facade := out["nodes_gen.go"]
	assert.NotContains(t, facade, "func (n *Foo) Bar()")
	assert.Contains(t, facade, "func (n *Foo) Baz()")
}

func TestGenerateTargetIndex(t *testing.T) {
	out := generateSource(t, `
Bin = lhs:Operand '+' rhs:Operand
Operand = ident
`, DefaultOptions())

	facade := out["nodes_gen.go"]
	assert.Contains(t, facade, "NthChildOfKind(syntax.OPERAND, 0)")
	assert.Contains(t, facade, "NthChildOfKind(syntax.OPERAND, 1)")
}

func TestGenerateFullGrammar(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "grammar", "testdata", "orn.grammar"))
	require.NoError(t, err)

	out := generateSource(t, string(data), DefaultOptions())

	kinds := out["kind_gen.go"]
	for _, want := range []string{"SOURCE_FILE", "FN_DEF", "RECORD_EXPR_FIELD_LIST", "MACRO_CALL"} {
		assert.Contains(t, kinds, want)
	}

	facade := out["nodes_gen.go"]
	assert.Contains(t, facade, "func (n *FnDef) Name() (*Name, bool)")
	assert.Contains(t, facade, "func (n *BinExpr) Rhs() (*Expr, bool)")
	assert.Contains(t, facade, "nthOfSet(n.Syntax(), exprKinds, 1)")
	assert.NotContains(t, facade, "ElseBranch()", "the else slot is maintained by hand")
	assert.NotContains(t, facade, "SelfTy()")

	// Generation is deterministic.
	again := generateSource(t, string(data), DefaultOptions())
	assert.Equal(t, facade, again["nodes_gen.go"])
	assert.Equal(t, kinds, again["kind_gen.go"])
}

func TestGenerateNoManyNoIterImport(t *testing.T) {
	out := generateSource(t, `
Foo = bar:Bar
Bar = ident
`, DefaultOptions())

	lines := strings.Split(out["nodes_gen.go"], "\n")
	for _, l := range lines {
		assert.NotContains(t, l, `"iter"`)
	}
}
