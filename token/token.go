// Package token enumerates the terminal vocabulary of the Orn language.
//
// Every terminal has a stable numeric kind. The grammar compiler resolves
// quoted literals ('fn', '->') and bare primitive references (ident,
// int_literal) against this vocabulary, and the syntax tree tags its tokens
// with these kinds.
package token

import "sort"

// Kind identifies a terminal category. Kinds are disjoint from syntax node
// kinds; the zero value is ILLEGAL.
type Kind uint16

const (
	ILLEGAL Kind = iota
	EOF

	// Primitive terminal categories produced by the lexer
	IDENT
	INT_LITERAL
	FLOAT_LITERAL
	STRING_LITERAL
	CHAR_LITERAL
	LIFETIME
	WHITESPACE
	COMMENT

	// Punctuation
	L_PAREN
	R_PAREN
	L_BRACE
	R_BRACE
	L_BRACKET
	R_BRACKET
	COMMA
	SEMICOLON
	COLON
	COLON2
	THIN_ARROW
	FAT_ARROW
	DOT
	DOT2
	DOT2EQ
	POUND
	BANG
	QUESTION
	AT
	AMP
	AMP2
	PIPE
	PIPE2
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	CARET
	EQ
	EQ2
	NEQ
	LT
	GT
	LTEQ
	GTEQ
	SHL
	SHR
	PLUS_EQ
	MINUS_EQ
	STAR_EQ
	SLASH_EQ
	UNDERSCORE

	// Keywords
	AS_KW
	BREAK_KW
	CONST_KW
	CONTINUE_KW
	DYN_KW
	ELSE_KW
	ENUM_KW
	FALSE_KW
	FN_KW
	FOR_KW
	IF_KW
	IMPL_KW
	IN_KW
	LET_KW
	LOOP_KW
	MACRO_KW
	MATCH_KW
	MOD_KW
	MOVE_KW
	MUT_KW
	PUB_KW
	REF_KW
	RETURN_KW
	SELF_KW
	STATIC_KW
	STRUCT_KW
	TRAIT_KW
	TRUE_KW
	TYPE_KW
	USE_KW
	WHERE_KW
	WHILE_KW

	kindCount
)

var names = [...]string{
	ILLEGAL:        "ILLEGAL",
	EOF:            "EOF",
	IDENT:          "ident",
	INT_LITERAL:    "int_literal",
	FLOAT_LITERAL:  "float_literal",
	STRING_LITERAL: "string_literal",
	CHAR_LITERAL:   "char_literal",
	LIFETIME:       "lifetime",
	WHITESPACE:     "whitespace",
	COMMENT:        "comment",
	L_PAREN:        "(",
	R_PAREN:        ")",
	L_BRACE:        "{",
	R_BRACE:        "}",
	L_BRACKET:      "[",
	R_BRACKET:      "]",
	COMMA:          ",",
	SEMICOLON:      ";",
	COLON:          ":",
	COLON2:         "::",
	THIN_ARROW:     "->",
	FAT_ARROW:      "=>",
	DOT:            ".",
	DOT2:           "..",
	DOT2EQ:         "..=",
	POUND:          "#",
	BANG:           "!",
	QUESTION:       "?",
	AT:             "@",
	AMP:            "&",
	AMP2:           "&&",
	PIPE:           "|",
	PIPE2:          "||",
	PLUS:           "+",
	MINUS:          "-",
	STAR:           "*",
	SLASH:          "/",
	PERCENT:        "%",
	CARET:          "^",
	EQ:             "=",
	EQ2:            "==",
	NEQ:            "!=",
	LT:             "<",
	GT:             ">",
	LTEQ:           "<=",
	GTEQ:           ">=",
	SHL:            "<<",
	SHR:            ">>",
	PLUS_EQ:        "+=",
	MINUS_EQ:       "-=",
	STAR_EQ:        "*=",
	SLASH_EQ:       "/=",
	UNDERSCORE:     "_",
	AS_KW:          "as",
	BREAK_KW:       "break",
	CONST_KW:       "const",
	CONTINUE_KW:    "continue",
	DYN_KW:         "dyn",
	ELSE_KW:        "else",
	ENUM_KW:        "enum",
	FALSE_KW:       "false",
	FN_KW:          "fn",
	FOR_KW:         "for",
	IF_KW:          "if",
	IMPL_KW:        "impl",
	IN_KW:          "in",
	LET_KW:         "let",
	LOOP_KW:        "loop",
	MACRO_KW:       "macro",
	MATCH_KW:       "match",
	MOD_KW:         "mod",
	MOVE_KW:        "move",
	MUT_KW:         "mut",
	PUB_KW:         "pub",
	REF_KW:         "ref",
	RETURN_KW:      "return",
	SELF_KW:        "self",
	STATIC_KW:      "static",
	STRUCT_KW:      "struct",
	TRAIT_KW:       "trait",
	TRUE_KW:        "true",
	TYPE_KW:        "type",
	USE_KW:         "use",
	WHERE_KW:       "where",
	WHILE_KW:       "while",
}

func (k Kind) String() string {
	if int(k) < len(names) && names[k] != "" {
		return names[k]
	}
	return "ILLEGAL"
}

// IsKeyword reports whether k is a reserved word of the language.
func (k Kind) IsKeyword() bool { return k >= AS_KW && k < kindCount }

// IsPunct reports whether k is punctuation or an operator.
func (k Kind) IsPunct() bool { return k >= L_PAREN && k <= UNDERSCORE }

// IsTrivia reports whether k never participates in grammar shape.
func (k Kind) IsTrivia() bool { return k == WHITESPACE || k == COMMENT }

// literals maps the exact source text of keywords and punctuation to their
// kind. This is the resolution table for quoted literals in grammar files.
var literals = map[string]Kind{}

// primitives maps the grammar-file spelling of primitive terminal categories
// to their kind. Bare identifiers in a grammar rule that name no definition
// are looked up here.
var primitives = map[string]Kind{
	"ident":          IDENT,
	"int_literal":    INT_LITERAL,
	"float_literal":  FLOAT_LITERAL,
	"string_literal": STRING_LITERAL,
	"char_literal":   CHAR_LITERAL,
	"lifetime":       LIFETIME,
}

func init() {
	for k := L_PAREN; k < kindCount; k++ {
		literals[names[k]] = k
	}
}

// LookupLiteral resolves the quoted text of a grammar literal ('fn', '->')
// to its token kind.
func LookupLiteral(text string) (Kind, bool) {
	k, ok := literals[text]
	return k, ok
}

// LookupPrimitive resolves a bare terminal reference (ident, int_literal)
// to its token kind.
func LookupPrimitive(name string) (Kind, bool) {
	k, ok := primitives[name]
	return k, ok
}

// PrimitiveNames returns the grammar-file spellings of the primitive
// terminal categories, sorted.
func PrimitiveNames() []string {
	names := make([]string, 0, len(primitives))
	for name := range primitives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
