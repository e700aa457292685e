// Package syntax is the homogeneous concrete syntax tree: one node type and
// one token type for every construct of the language, valid or not.
//
// A node is a kind tag plus an ordered child list that freely mixes nodes
// and tokens. The tree places no structural constraints at all; that is what
// lets an error-recovering parser attach whatever it has to the node kind it
// expected. Shape is enforced lazily, on read, by the typed facade in
// package ast.
package syntax

import "fmt"

// Kind tags a node with the grammar definition it instantiates. Token kinds
// live in package token; the two sets are disjoint by construction.
//
// ERROR is the zero value: the kind an error-recovering parser gives a node
// it could not attribute to any definition.
type Kind uint16

const (
	ERROR Kind = iota

	SOURCE_FILE
	NAME
	NAME_REF
	ATTR
	VISIBILITY
	PATH
	PATH_SEGMENT
	GENERIC_ARG_LIST

	// Items
	FN_DEF
	PARAM_LIST
	PARAM
	RET_TYPE
	GENERIC_PARAM_LIST
	TYPE_PARAM
	TYPE_BOUND_LIST
	TYPE_BOUND
	WHERE_CLAUSE
	WHERE_PRED
	STRUCT_DEF
	RECORD_FIELD_LIST
	RECORD_FIELD
	ENUM_DEF
	VARIANT_LIST
	VARIANT
	TRAIT_DEF
	IMPL_BLOCK
	USE_DECL
	CONST_DEF
	TYPE_ALIAS
	MOD_DEF

	// Types
	PATH_TYPE
	REF_TYPE
	TUPLE_TYPE
	INFER_TYPE

	// Patterns
	BIND_PAT
	WILDCARD_PAT
	PATH_PAT
	LITERAL_PAT
	RECORD_PAT
	RECORD_PAT_FIELD_LIST
	RECORD_PAT_FIELD

	// Expressions
	LITERAL_EXPR
	PATH_EXPR
	IF_EXPR
	LOOP_EXPR
	WHILE_EXPR
	FOR_EXPR
	MATCH_EXPR
	MATCH_ARM_LIST
	MATCH_ARM
	MATCH_GUARD
	BLOCK_EXPR
	RETURN_EXPR
	BREAK_EXPR
	CONTINUE_EXPR
	CALL_EXPR
	ARG_LIST
	METHOD_CALL_EXPR
	FIELD_EXPR
	INDEX_EXPR
	BIN_EXPR
	PREFIX_EXPR
	REF_EXPR
	RANGE_EXPR
	TUPLE_EXPR
	PAREN_EXPR
	RECORD_EXPR
	RECORD_EXPR_FIELD_LIST
	RECORD_EXPR_FIELD
	MACRO_CALL

	// Statements
	LET_STMT
	EXPR_STMT

	kindCount
)

var kindNames = [...]string{
	ERROR:                  "ERROR",
	SOURCE_FILE:            "SOURCE_FILE",
	NAME:                   "NAME",
	NAME_REF:               "NAME_REF",
	ATTR:                   "ATTR",
	VISIBILITY:             "VISIBILITY",
	PATH:                   "PATH",
	PATH_SEGMENT:           "PATH_SEGMENT",
	GENERIC_ARG_LIST:       "GENERIC_ARG_LIST",
	FN_DEF:                 "FN_DEF",
	PARAM_LIST:             "PARAM_LIST",
	PARAM:                  "PARAM",
	RET_TYPE:               "RET_TYPE",
	GENERIC_PARAM_LIST:     "GENERIC_PARAM_LIST",
	TYPE_PARAM:             "TYPE_PARAM",
	TYPE_BOUND_LIST:        "TYPE_BOUND_LIST",
	TYPE_BOUND:             "TYPE_BOUND",
	WHERE_CLAUSE:           "WHERE_CLAUSE",
	WHERE_PRED:             "WHERE_PRED",
	STRUCT_DEF:             "STRUCT_DEF",
	RECORD_FIELD_LIST:      "RECORD_FIELD_LIST",
	RECORD_FIELD:           "RECORD_FIELD",
	ENUM_DEF:               "ENUM_DEF",
	VARIANT_LIST:           "VARIANT_LIST",
	VARIANT:                "VARIANT",
	TRAIT_DEF:              "TRAIT_DEF",
	IMPL_BLOCK:             "IMPL_BLOCK",
	USE_DECL:               "USE_DECL",
	CONST_DEF:              "CONST_DEF",
	TYPE_ALIAS:             "TYPE_ALIAS",
	MOD_DEF:                "MOD_DEF",
	PATH_TYPE:              "PATH_TYPE",
	REF_TYPE:               "REF_TYPE",
	TUPLE_TYPE:             "TUPLE_TYPE",
	INFER_TYPE:             "INFER_TYPE",
	BIND_PAT:               "BIND_PAT",
	WILDCARD_PAT:           "WILDCARD_PAT",
	PATH_PAT:               "PATH_PAT",
	LITERAL_PAT:            "LITERAL_PAT",
	RECORD_PAT:             "RECORD_PAT",
	RECORD_PAT_FIELD_LIST:  "RECORD_PAT_FIELD_LIST",
	RECORD_PAT_FIELD:       "RECORD_PAT_FIELD",
	LITERAL_EXPR:           "LITERAL_EXPR",
	PATH_EXPR:              "PATH_EXPR",
	IF_EXPR:                "IF_EXPR",
	LOOP_EXPR:              "LOOP_EXPR",
	WHILE_EXPR:             "WHILE_EXPR",
	FOR_EXPR:               "FOR_EXPR",
	MATCH_EXPR:             "MATCH_EXPR",
	MATCH_ARM_LIST:         "MATCH_ARM_LIST",
	MATCH_ARM:              "MATCH_ARM",
	MATCH_GUARD:            "MATCH_GUARD",
	BLOCK_EXPR:             "BLOCK_EXPR",
	RETURN_EXPR:            "RETURN_EXPR",
	BREAK_EXPR:             "BREAK_EXPR",
	CONTINUE_EXPR:          "CONTINUE_EXPR",
	CALL_EXPR:              "CALL_EXPR",
	ARG_LIST:               "ARG_LIST",
	METHOD_CALL_EXPR:       "METHOD_CALL_EXPR",
	FIELD_EXPR:             "FIELD_EXPR",
	INDEX_EXPR:             "INDEX_EXPR",
	BIN_EXPR:               "BIN_EXPR",
	PREFIX_EXPR:            "PREFIX_EXPR",
	REF_EXPR:               "REF_EXPR",
	RANGE_EXPR:             "RANGE_EXPR",
	TUPLE_EXPR:             "TUPLE_EXPR",
	PAREN_EXPR:             "PAREN_EXPR",
	RECORD_EXPR:            "RECORD_EXPR",
	RECORD_EXPR_FIELD_LIST: "RECORD_EXPR_FIELD_LIST",
	RECORD_EXPR_FIELD:      "RECORD_EXPR_FIELD",
	MACRO_CALL:             "MACRO_CALL",
	LET_STMT:               "LET_STMT",
	EXPR_STMT:              "EXPR_STMT",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}
