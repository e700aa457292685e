package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"orn/grammar"
	"orn/internal/errors"
)

func TestConvertGrammarErrors(t *testing.T) {
	diagnostics := ConvertGrammarErrors([]errors.GrammarError{{
		Level:    errors.Error,
		Code:     errors.ErrorUnresolvedReference,
		Message:  "cannot resolve reference to Missing",
		Position: grammar.Position{Line: 3, Column: 7},
		Length:   7,
		HelpText: "declare the rule",
	}})

	require.Len(t, diagnostics, 1)
	d := diagnostics[0]
	assert.Equal(t, uint32(2), d.Range.Start.Line, "LSP lines are 0-based")
	assert.Equal(t, uint32(6), d.Range.Start.Character)
	assert.Equal(t, uint32(13), d.Range.End.Character)
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	assert.Equal(t, errors.ErrorUnresolvedReference, d.Code.Value)
	assert.Contains(t, d.Message, "help: declare the rule")
}

func TestConvertGrammarErrorsSeverity(t *testing.T) {
	diagnostics := ConvertGrammarErrors([]errors.GrammarError{
		{Level: errors.Warning, Message: "w", Position: grammar.Position{Line: 1, Column: 1}},
		{Level: errors.Note, Message: "n", Position: grammar.Position{Line: 1, Column: 1}},
	})

	require.Len(t, diagnostics, 2)
	assert.Equal(t, protocol.DiagnosticSeverityWarning, *diagnostics[0].Severity)
	assert.Equal(t, protocol.DiagnosticSeverityInformation, *diagnostics[1].Severity)
}

func TestConvertParseError(t *testing.T) {
	diagnostics := ConvertParseError(&grammar.ParseError{
		Message:  "unexpected token",
		Position: grammar.Position{Line: 2, Column: 4},
	})

	require.Len(t, diagnostics, 1)
	assert.Equal(t, uint32(1), diagnostics[0].Range.Start.Line)
	assert.Equal(t, errors.ErrorMalformedGrammar, diagnostics[0].Code.Value)

	assert.Nil(t, ConvertParseError(nil))
}

func TestUpdatePublishesCompileDefects(t *testing.T) {
	h := NewGrammarHandler()

	diagnostics := h.update("file:///g.grammar", "Foo = Missing\n")

	require.Len(t, diagnostics, 1)
	assert.Equal(t, errors.ErrorUnresolvedReference, diagnostics[0].Code.Value)
}

func TestUpdateCleanGrammarClearsDiagnostics(t *testing.T) {
	h := NewGrammarHandler()

	diagnostics := h.update("file:///g.grammar", "Foo = ident\n")

	require.NotNil(t, diagnostics, "an empty publish clears stale diagnostics")
	assert.Empty(t, diagnostics)
}

func TestUpdateKeepsGrammarForLaterRequests(t *testing.T) {
	h := NewGrammarHandler()
	h.update("file:///g.grammar", "Foo = bar:Bar?\nBar = ident\n")

	h.mu.RLock()
	g := h.grammars["file:///g.grammar"]
	h.mu.RUnlock()

	require.NotNil(t, g)
	_, ok := g.Def("Bar")
	assert.True(t, ok)
}

func TestCompletionListsRulesAndPrimitives(t *testing.T) {
	h := NewGrammarHandler()
	h.update("file:///g.grammar", "Foo = bar:Bar?\nBar = ident\n")

	result, err := h.TextDocumentCompletion(nil, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///g.grammar"},
		},
	})
	require.NoError(t, err)

	list, ok := result.(*protocol.CompletionList)
	require.True(t, ok)

	var labels []string
	for _, item := range list.Items {
		labels = append(labels, item.Label)
	}
	assert.Contains(t, labels, "Foo")
	assert.Contains(t, labels, "Bar")
	assert.Contains(t, labels, "ident")
	assert.Contains(t, labels, "int_literal")
}

func TestCollectSemanticTokens(t *testing.T) {
	g, err := grammar.Parse("g.grammar", "Foo = 'fn' bar:Bar?\nBar = ident\n")
	require.NoError(t, err)

	tokens := collectSemanticTokens(g)
	require.NotEmpty(t, tokens)

	// The first token is the Foo definition head, flagged as a
	// declaration.
	assert.Equal(t, uint32(0), tokens[0].Line)
	assert.Equal(t, uint32(0), tokens[0].StartChar)
	assert.Equal(t, uint32(3), tokens[0].Length)
	assert.Equal(t, indexOf("type", SemanticTokenTypes), tokens[0].TokenType)
	assert.Equal(t, 1, tokens[0].TokenModifiers)

	kinds := make(map[int]int)
	for _, tok := range tokens {
		kinds[tok.TokenType]++
	}
	assert.NotZero(t, kinds[indexOf("string", SemanticTokenTypes)], "literal 'fn' is a string token")
	assert.NotZero(t, kinds[indexOf("property", SemanticTokenTypes)], "label bar is a property token")
	assert.NotZero(t, kinds[indexOf("typeParameter", SemanticTokenTypes)], "primitive ident is a type parameter")
}

func TestFullText(t *testing.T) {
	text, ok := fullText([]any{
		protocol.TextDocumentContentChangeEventWhole{Text: "first"},
		protocol.TextDocumentContentChangeEventWhole{Text: "second"},
	})
	assert.True(t, ok)
	assert.Equal(t, "second", text, "the last change wins under full sync")

	_, ok = fullText(nil)
	assert.False(t, ok)
}
