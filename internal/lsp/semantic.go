package lsp

import (
	"orn/grammar"
)

// SemanticToken is a single LSP semantic token entry. Line and StartChar
// are 0-based; TokenType indexes SemanticTokenTypes and TokenModifiers is
// a bitmask over SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// collectSemanticTokens walks a parsed grammar and classifies every
// interesting region: definition heads and rule references as types,
// primitive terminals as type parameters, field labels as properties and
// quoted literals as strings.
func collectSemanticTokens(g *grammar.Grammar) []SemanticToken {
	var tokens []SemanticToken

	if g == nil {
		return tokens
	}

	for _, def := range g.Defs {
		tokens = append(tokens, makeToken(def.Pos, len(def.Name), "type", 1)...)
		tokens = append(tokens, walkRule(def.Rule)...)
	}

	return tokens
}

func walkRule(r grammar.Rule) []SemanticToken {
	var tokens []SemanticToken

	switch r := r.(type) {
	case *grammar.Labeled:
		tokens = append(tokens, makeToken(r.Pos, len(r.Label), "property", 0)...)
	case *grammar.NodeRef:
		tokens = append(tokens, makeToken(r.Pos, len(r.Name), "type", 0)...)
	case *grammar.TokenRef:
		tokens = append(tokens, makeToken(r.Pos, len(r.Name), "typeParameter", 0)...)
	case *grammar.Literal:
		tokens = append(tokens, makeToken(r.Pos, len(r.Text)+2, "string", 0)...)
	}

	for _, sub := range grammar.Subrules(r) {
		tokens = append(tokens, walkRule(sub)...)
	}

	return tokens
}

// makeToken creates a semantic token at a grammar position.
func makeToken(pos grammar.Position, length int, tokenType string, declModifier int) []SemanticToken {
	if length <= 0 || pos.Line <= 0 || pos.Column <= 0 {
		return nil
	}

	return []SemanticToken{{
		Line:           uint32(pos.Line - 1),
		StartChar:      uint32(pos.Column - 1),
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	}}
}

// indexOf returns the index of a string in a slice, or 0 if not found.
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
