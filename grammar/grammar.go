package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Participle surface grammar for the DSL. These structs mirror the textual
// shape only; Parse lowers them into the Rule model before returning.
//
// Precedence, loosest first: alternation, sequence, postfix '*'/'?'.

type grammarFile struct {
	Pos  lexer.Position
	Defs []*definitionNode `@@*`
}

type definitionNode struct {
	Pos  lexer.Position
	Name string   `@Ident "="`
	Rule *altNode `@@`
}

type altNode struct {
	Pos  lexer.Position
	Alts []*seqNode `@@ ( "|" @@ )*`
}

// A sequence runs until the next definition header. Definitions are not
// otherwise delimited, so the lookahead on Ident "=" is what keeps a
// trailing reference from being swallowed into the previous rule.
type seqNode struct {
	Pos   lexer.Position
	Atoms []*postfixNode `@@ ( (?! Ident "=") @@ )*`
}

type postfixNode struct {
	Pos  lexer.Position
	Atom *atomNode `@@`
	Op   string    `@( "*" | "?" )?`
}

type atomNode struct {
	Pos     lexer.Position
	Label   *string  `( @Ident ":" )?`
	Literal *string  `( @Literal`
	Ref     *string  `| @Ident`
	Group   *altNode `| "(" @@ ")" )`
}
