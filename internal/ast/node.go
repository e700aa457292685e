// Package ast is the typed facade over the homogeneous syntax tree.
//
// Every wrapper is a named type over syntax.Node, so casting is a pointer
// conversion and carries no allocation. Accessors search the generic child
// list on demand; on a malformed tree they report absence instead of
// panicking, which is what lets tooling walk half-parsed sources.
package ast

import (
	"iter"

	"orn/internal/syntax"
)

// Node is implemented by every typed wrapper.
type Node interface {
	Syntax() *syntax.Node
}

// Wrap returns the typed wrapper for a node, or nil for a kind with no
// wrapper (such as ERROR).
func Wrap(n *syntax.Node) Node {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case syntax.SOURCE_FILE:
		return (*SourceFile)(n)
	case syntax.NAME:
		return (*Name)(n)
	case syntax.NAME_REF:
		return (*NameRef)(n)
	case syntax.ATTR:
		return (*Attr)(n)
	case syntax.VISIBILITY:
		return (*Visibility)(n)
	case syntax.PATH:
		return (*Path)(n)
	case syntax.PATH_SEGMENT:
		return (*PathSegment)(n)
	case syntax.GENERIC_ARG_LIST:
		return (*GenericArgList)(n)
	case syntax.FN_DEF:
		return (*FnDef)(n)
	case syntax.PARAM_LIST:
		return (*ParamList)(n)
	case syntax.PARAM:
		return (*Param)(n)
	case syntax.RET_TYPE:
		return (*RetType)(n)
	case syntax.GENERIC_PARAM_LIST:
		return (*GenericParamList)(n)
	case syntax.TYPE_PARAM:
		return (*TypeParam)(n)
	case syntax.TYPE_BOUND_LIST:
		return (*TypeBoundList)(n)
	case syntax.TYPE_BOUND:
		return (*TypeBound)(n)
	case syntax.WHERE_CLAUSE:
		return (*WhereClause)(n)
	case syntax.WHERE_PRED:
		return (*WherePred)(n)
	case syntax.STRUCT_DEF:
		return (*StructDef)(n)
	case syntax.RECORD_FIELD_LIST:
		return (*RecordFieldList)(n)
	case syntax.RECORD_FIELD:
		return (*RecordField)(n)
	case syntax.ENUM_DEF:
		return (*EnumDef)(n)
	case syntax.VARIANT_LIST:
		return (*VariantList)(n)
	case syntax.VARIANT:
		return (*Variant)(n)
	case syntax.TRAIT_DEF:
		return (*TraitDef)(n)
	case syntax.IMPL_BLOCK:
		return (*ImplBlock)(n)
	case syntax.USE_DECL:
		return (*UseDecl)(n)
	case syntax.CONST_DEF:
		return (*ConstDef)(n)
	case syntax.TYPE_ALIAS:
		return (*TypeAlias)(n)
	case syntax.MOD_DEF:
		return (*ModDef)(n)
	case syntax.PATH_TYPE:
		return (*PathType)(n)
	case syntax.REF_TYPE:
		return (*RefType)(n)
	case syntax.TUPLE_TYPE:
		return (*TupleType)(n)
	case syntax.INFER_TYPE:
		return (*InferType)(n)
	case syntax.BIND_PAT:
		return (*BindPat)(n)
	case syntax.WILDCARD_PAT:
		return (*WildcardPat)(n)
	case syntax.PATH_PAT:
		return (*PathPat)(n)
	case syntax.LITERAL_PAT:
		return (*LiteralPat)(n)
	case syntax.RECORD_PAT:
		return (*RecordPat)(n)
	case syntax.RECORD_PAT_FIELD_LIST:
		return (*RecordPatFieldList)(n)
	case syntax.RECORD_PAT_FIELD:
		return (*RecordPatField)(n)
	case syntax.LITERAL_EXPR:
		return (*LiteralExpr)(n)
	case syntax.PATH_EXPR:
		return (*PathExpr)(n)
	case syntax.IF_EXPR:
		return (*IfExpr)(n)
	case syntax.LOOP_EXPR:
		return (*LoopExpr)(n)
	case syntax.WHILE_EXPR:
		return (*WhileExpr)(n)
	case syntax.FOR_EXPR:
		return (*ForExpr)(n)
	case syntax.MATCH_EXPR:
		return (*MatchExpr)(n)
	case syntax.MATCH_ARM_LIST:
		return (*MatchArmList)(n)
	case syntax.MATCH_ARM:
		return (*MatchArm)(n)
	case syntax.MATCH_GUARD:
		return (*MatchGuard)(n)
	case syntax.BLOCK_EXPR:
		return (*BlockExpr)(n)
	case syntax.RETURN_EXPR:
		return (*ReturnExpr)(n)
	case syntax.BREAK_EXPR:
		return (*BreakExpr)(n)
	case syntax.CONTINUE_EXPR:
		return (*ContinueExpr)(n)
	case syntax.CALL_EXPR:
		return (*CallExpr)(n)
	case syntax.ARG_LIST:
		return (*ArgList)(n)
	case syntax.METHOD_CALL_EXPR:
		return (*MethodCallExpr)(n)
	case syntax.FIELD_EXPR:
		return (*FieldExpr)(n)
	case syntax.INDEX_EXPR:
		return (*IndexExpr)(n)
	case syntax.BIN_EXPR:
		return (*BinExpr)(n)
	case syntax.PREFIX_EXPR:
		return (*PrefixExpr)(n)
	case syntax.REF_EXPR:
		return (*RefExpr)(n)
	case syntax.RANGE_EXPR:
		return (*RangeExpr)(n)
	case syntax.TUPLE_EXPR:
		return (*TupleExpr)(n)
	case syntax.PAREN_EXPR:
		return (*ParenExpr)(n)
	case syntax.RECORD_EXPR:
		return (*RecordExpr)(n)
	case syntax.RECORD_EXPR_FIELD_LIST:
		return (*RecordExprFieldList)(n)
	case syntax.RECORD_EXPR_FIELD:
		return (*RecordExprField)(n)
	case syntax.MACRO_CALL:
		return (*MacroCall)(n)
	case syntax.LET_STMT:
		return (*LetStmt)(n)
	case syntax.EXPR_STMT:
		return (*ExprStmt)(n)
	default:
		return nil
	}
}

func kindIn(k syntax.Kind, kinds []syntax.Kind) bool {
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

// nthOfSet returns the nth direct child whose kind is in the set.
func nthOfSet(n *syntax.Node, kinds []syntax.Kind, nth int) *syntax.Node {
	for c := range n.Children() {
		child, ok := c.(*syntax.Node)
		if !ok || !kindIn(child.Kind(), kinds) {
			continue
		}
		if nth == 0 {
			return child
		}
		nth--
	}
	return nil
}

// children yields every direct child the cast accepts, in tree order.
func children[T Node](n *syntax.Node, cast func(*syntax.Node) (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := range n.Children() {
			child, ok := c.(*syntax.Node)
			if !ok {
				continue
			}
			if t, ok := cast(child); ok && !yield(t) {
				return
			}
		}
	}
}
