package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// GrammarLexer tokenizes the grammar description DSL. The DSL is tiny:
// identifiers, quoted token literals, a handful of operators, and comments.
var GrammarLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},

		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Quoted token literal, e.g. 'fn' or '\''
		{"Literal", `'(?:[^'\\]|\\.)*'`, nil},

		{"Punct", `[=|*?():]`, nil},

		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
