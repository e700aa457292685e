package compile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orn/grammar"
	"orn/internal/errors"
	"orn/token"
)

func compileSource(t *testing.T, source string) *Model {
	t.Helper()
	g, err := grammar.Parse("test.grammar", source)
	require.NoError(t, err)
	model, errs := Compile(g)
	require.Empty(t, errs)
	require.NotNil(t, model)
	return model
}

func compileErrors(t *testing.T, source string) []errors.GrammarError {
	t.Helper()
	g, err := grammar.Parse("test.grammar", source)
	require.NoError(t, err)
	model, errs := Compile(g)
	require.Nil(t, model)
	require.NotEmpty(t, errs)
	return errs
}

func errorCodes(errs []errors.GrammarError) []string {
	codes := make([]string, len(errs))
	for i, e := range errs {
		codes[i] = e.Code
	}
	return codes
}

func TestCompileProductFields(t *testing.T) {
	model := compileSource(t, `
Foo = 'fn' bar:Bar? baz:Baz*
Bar = ident
Baz = ident
`)

	foo, ok := model.Def("Foo")
	require.True(t, ok)
	assert.Equal(t, ProductDef, foo.Kind)
	require.Len(t, foo.Fields, 2, "unlabeled punctuation must not become a field")

	assert.Equal(t, "bar", foo.Fields[0].Name)
	assert.Equal(t, Optional, foo.Fields[0].Card)
	assert.Equal(t, NodeTarget{Name: "Bar", ID: 1}, foo.Fields[0].Target)

	assert.Equal(t, "baz", foo.Fields[1].Name)
	assert.Equal(t, Many, foo.Fields[1].Card)
	assert.Equal(t, NodeTarget{Name: "Baz", ID: 2}, foo.Fields[1].Target)
}

func TestCompileSumClassification(t *testing.T) {
	model := compileSource(t, `
Item = Bar | Baz
Bar = ident
Baz = ident
`)

	item, ok := model.Def("Item")
	require.True(t, ok)
	assert.Equal(t, SumDef, item.Kind)
	assert.Equal(t, []string{"Bar", "Baz"}, item.Members)
	assert.Empty(t, item.Fields)
}

func TestCompileSumTarget(t *testing.T) {
	model := compileSource(t, `
Foo = e:Elem
Elem = Bar | Baz
Bar = ident
Baz = ident
`)

	foo, _ := model.Def("Foo")
	require.Len(t, foo.Fields, 1)
	assert.Equal(t, SumTarget{Name: "Elem", Members: []string{"Bar", "Baz"}}, foo.Fields[0].Target)
	assert.Equal(t, One, foo.Fields[0].Card)
}

func TestCompileAutoNaming(t *testing.T) {
	model := compileSource(t, `
Foo = RecordFieldList
RecordFieldList = ident
`)

	foo, _ := model.Def("Foo")
	require.Len(t, foo.Fields, 1)
	assert.Equal(t, "record_field_list", foo.Fields[0].Name)
}

func TestCompileCollisionBecomesRepeated(t *testing.T) {
	model := compileSource(t, `
Foo = Bar Bar
Bar = ident
`)

	foo, _ := model.Def("Foo")
	require.Len(t, foo.Fields, 1)
	assert.Equal(t, "bar", foo.Fields[0].Name)
	assert.Equal(t, Many, foo.Fields[0].Card)
}

func TestCompileManyDominates(t *testing.T) {
	model := compileSource(t, `
Foo = bar:Bar bar:Bar*
Bar = ident
`)

	foo, _ := model.Def("Foo")
	require.Len(t, foo.Fields, 1)
	assert.Equal(t, Many, foo.Fields[0].Card)
}

func TestCompileTargetIndex(t *testing.T) {
	model := compileSource(t, `
Bin = lhs:Operand '+' rhs:Operand
Operand = ident
`)

	bin, _ := model.Def("Bin")
	require.Len(t, bin.Fields, 2)
	assert.Equal(t, 0, bin.Fields[0].TargetIndex)
	assert.Equal(t, 1, bin.Fields[1].TargetIndex)
}

func TestCompileAltBranchesAreOptional(t *testing.T) {
	model := compileSource(t, `
Foo = (Bar | Baz)
Bar = ident
Baz = ident
`)

	foo, _ := model.Def("Foo")
	require.Len(t, foo.Fields, 2)
	assert.Equal(t, Optional, foo.Fields[0].Card)
	assert.Equal(t, Optional, foo.Fields[1].Card)
}

func TestCompileTokenFields(t *testing.T) {
	model := compileSource(t, `
Foo = mut:'mut'? name:ident
`)

	foo, _ := model.Def("Foo")
	require.Len(t, foo.Fields, 2)
	assert.Equal(t, "mut", foo.Fields[0].Name)
	assert.Equal(t, TokenTarget{Kind: token.MUT_KW}, foo.Fields[0].Target)
	assert.Equal(t, Optional, foo.Fields[0].Card)
	assert.Equal(t, "name", foo.Fields[1].Name)
	assert.Equal(t, TokenTarget{Kind: token.IDENT}, foo.Fields[1].Target)
}

func TestCompileUnresolvedReference(t *testing.T) {
	errs := compileErrors(t, `Foo = Missing`)

	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorUnresolvedReference, errs[0].Code)
	assert.Contains(t, errs[0].Message, "Missing")
	assert.NotEmpty(t, errs[0].HelpText)
}

func TestCompileAmbiguousCardinality(t *testing.T) {
	errs := compileErrors(t, `
Foo = x:Bar sep:',' x:Bar?
Bar = ident
`)

	assert.Contains(t, errorCodes(errs), errors.ErrorAmbiguousCardinality)
}

func TestCompileNestedCardinality(t *testing.T) {
	errs := compileErrors(t, `
Foo = (Bar?)?
Bar = ident
`)

	assert.Contains(t, errorCodes(errs), errors.ErrorNestedCardinality)
}

func TestCompileUnknownLiteral(t *testing.T) {
	errs := compileErrors(t, `Foo = 'xyzzy'`)

	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorUnknownLiteral, errs[0].Code)
}

func TestCompileDuplicateDefinition(t *testing.T) {
	errs := compileErrors(t, `
Foo = ident
Foo = ident ident
`)

	assert.Contains(t, errorCodes(errs), errors.ErrorDuplicateDefinition)
}

func TestCompileConflictingTargets(t *testing.T) {
	errs := compileErrors(t, `
Foo = x:Bar? x:'fn'?
Bar = ident
`)

	assert.Contains(t, errorCodes(errs), errors.ErrorConflictingTargets)
}

func TestCompileCollectsAllErrors(t *testing.T) {
	errs := compileErrors(t, `
Foo = Missing 'xyzzy'
`)

	codes := errorCodes(errs)
	assert.Contains(t, codes, errors.ErrorUnresolvedReference)
	assert.Contains(t, codes, errors.ErrorUnknownLiteral)
}

func TestCompileListHelperInlined(t *testing.T) {
	model := compileSource(t, `
Foo = '(' Things? ')'
Things = thing:Thing (',' thing:Thing)* ','?
Thing = ident
`)

	_, ok := model.Def("Things")
	assert.False(t, ok, "a single-use comma list rule folds into its use site")

	foo, _ := model.Def("Foo")
	require.Len(t, foo.Fields, 1)
	assert.Equal(t, "thing", foo.Fields[0].Name)
	assert.Equal(t, Many, foo.Fields[0].Card)
	assert.Equal(t, "Thing", foo.Fields[0].Target.String())

	// Inlining must not disturb the ids of the surviving definitions.
	thing, _ := model.Def("Thing")
	assert.Equal(t, 1, thing.ID)
}

func TestCompileSeparatedListSurvivesNonComma(t *testing.T) {
	model := compileSource(t, `
Foo = Path
Path = segment:PathSegment ('::' segment:PathSegment)*
PathSegment = ident
`)

	path, ok := model.Def("Path")
	require.True(t, ok, "a '::' list is a real node, not a helper")
	require.Len(t, path.Fields, 1)
	assert.Equal(t, "segment", path.Fields[0].Name)
	assert.Equal(t, Many, path.Fields[0].Card)
}

func TestCompileMultiUseListSurvives(t *testing.T) {
	model := compileSource(t, `
Foo = '(' Things? ')'
Bar = '[' Things? ']'
Things = thing:Thing (',' thing:Thing)* ','?
Thing = ident
`)

	_, ok := model.Def("Things")
	assert.True(t, ok, "a list rule with two uses keeps its own node")
}

func TestCompileRenameRequiresAbsentCurrentName(t *testing.T) {
	// When both spellings are defined the legacy one is a distinct rule.
	model := compileSource(t, `
Foo = TypeRef PathType
TypeRef = ident
PathType = ident
`)

	_, hasLegacy := model.Def("TypeRef")
	_, hasCurrent := model.Def("PathType")
	assert.True(t, hasLegacy)
	assert.True(t, hasCurrent)
}

func TestCompileDeterministic(t *testing.T) {
	source := `
Foo = 'fn' bar:Bar? baz:Baz*
Bar = ident
Baz = ident
Item = Bar | Baz
`
	first := compileSource(t, source)
	second := compileSource(t, source)

	require.Equal(t, len(first.Defs), len(second.Defs))
	for i := range first.Defs {
		assert.Equal(t, first.Defs[i], second.Defs[i])
	}
}

func loadGrammar(t *testing.T, name string) *grammar.Grammar {
	t.Helper()
	path := filepath.Join("..", "..", "grammar", "testdata", name)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	g, err := grammar.Parse(name, string(data))
	require.NoError(t, err)
	return g
}

func TestCompileOrnGrammar(t *testing.T) {
	g := loadGrammar(t, "orn.grammar")
	model, errs := Compile(g)
	require.Empty(t, errs)

	fn, ok := model.Def("FnDef")
	require.True(t, ok)
	names := make([]string, len(fn.Fields))
	for i, f := range fn.Fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{
		"attr", "vis", "name", "generic_param_list",
		"param_list", "ret_type", "where_clause", "body",
	}, names)

	expr, ok := model.Def("Expr")
	require.True(t, ok)
	assert.Equal(t, SumDef, expr.Kind)
	assert.Len(t, expr.Members, 23)
}

func TestCompileRevisionsAgree(t *testing.T) {
	current, errs := Compile(loadGrammar(t, "orn.grammar"))
	require.Empty(t, errs)
	legacy, errs := Compile(loadGrammar(t, "orn_legacy.grammar"))
	require.Empty(t, errs)

	require.Equal(t, len(current.Defs), len(legacy.Defs))
	for i, want := range current.Defs {
		got := legacy.Defs[i]
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Kind, got.Kind)
		assert.Equal(t, want.Members, got.Members)

		require.Len(t, got.Fields, len(want.Fields), "fields of %s", want.Name)
		for j, wf := range want.Fields {
			gf := got.Fields[j]
			assert.Equal(t, wf.Name, gf.Name, "%s field %d", want.Name, j)
			assert.Equal(t, wf.Card, gf.Card, "%s.%s", want.Name, wf.Name)
			assert.Equal(t, wf.Target.String(), gf.Target.String(), "%s.%s", want.Name, wf.Name)
			assert.Equal(t, wf.TargetIndex, gf.TargetIndex, "%s.%s", want.Name, wf.Name)
		}
	}
}
