package ast

import (
	"iter"

	"orn/internal/syntax"
	"orn/token"
)

// Expr is any expression node.
type Expr syntax.Node

var exprKinds = []syntax.Kind{
	syntax.LITERAL_EXPR, syntax.PATH_EXPR, syntax.IF_EXPR, syntax.LOOP_EXPR,
	syntax.WHILE_EXPR, syntax.FOR_EXPR, syntax.MATCH_EXPR, syntax.BLOCK_EXPR,
	syntax.RETURN_EXPR, syntax.BREAK_EXPR, syntax.CONTINUE_EXPR,
	syntax.CALL_EXPR, syntax.METHOD_CALL_EXPR, syntax.FIELD_EXPR,
	syntax.INDEX_EXPR, syntax.BIN_EXPR, syntax.PREFIX_EXPR, syntax.REF_EXPR,
	syntax.RANGE_EXPR, syntax.TUPLE_EXPR, syntax.PAREN_EXPR,
	syntax.RECORD_EXPR, syntax.MACRO_CALL,
}

func CastExpr(n *syntax.Node) (*Expr, bool) {
	if n == nil || !kindIn(n.Kind(), exprKinds) {
		return nil, false
	}
	return (*Expr)(n), true
}

func (n *Expr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *Expr) Downcast() Node { return Wrap(n.Syntax()) }

// ElseBranch is what may follow the else keyword: a block or another if.
type ElseBranch syntax.Node

var elseBranchKinds = []syntax.Kind{syntax.BLOCK_EXPR, syntax.IF_EXPR}

func CastElseBranch(n *syntax.Node) (*ElseBranch, bool) {
	if n == nil || !kindIn(n.Kind(), elseBranchKinds) {
		return nil, false
	}
	return (*ElseBranch)(n), true
}

func (n *ElseBranch) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *ElseBranch) Downcast() Node { return Wrap(n.Syntax()) }

type LiteralExpr syntax.Node

func CastLiteralExpr(n *syntax.Node) (*LiteralExpr, bool) {
	if n == nil || n.Kind() != syntax.LITERAL_EXPR {
		return nil, false
	}
	return (*LiteralExpr)(n), true
}

func (n *LiteralExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *LiteralExpr) IntLiteralToken() (*syntax.Token, bool) {
	t := n.Syntax().NthTokenOfKind(token.INT_LITERAL, 0)
	return t, t != nil
}

func (n *LiteralExpr) FloatLiteralToken() (*syntax.Token, bool) {
	t := n.Syntax().NthTokenOfKind(token.FLOAT_LITERAL, 0)
	return t, t != nil
}

func (n *LiteralExpr) StringLiteralToken() (*syntax.Token, bool) {
	t := n.Syntax().NthTokenOfKind(token.STRING_LITERAL, 0)
	return t, t != nil
}

func (n *LiteralExpr) CharLiteralToken() (*syntax.Token, bool) {
	t := n.Syntax().NthTokenOfKind(token.CHAR_LITERAL, 0)
	return t, t != nil
}

func (n *LiteralExpr) TrueToken() (*syntax.Token, bool) {
	t := n.Syntax().NthTokenOfKind(token.TRUE_KW, 0)
	return t, t != nil
}

func (n *LiteralExpr) FalseToken() (*syntax.Token, bool) {
	t := n.Syntax().NthTokenOfKind(token.FALSE_KW, 0)
	return t, t != nil
}

type PathExpr syntax.Node

func CastPathExpr(n *syntax.Node) (*PathExpr, bool) {
	if n == nil || n.Kind() != syntax.PATH_EXPR {
		return nil, false
	}
	return (*PathExpr)(n), true
}

func (n *PathExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *PathExpr) Path() (*Path, bool) {
	return CastPath(n.Syntax().NthChildOfKind(syntax.PATH, 0))
}

// IfExpr is a conditional. The ElseBranch accessor lives in extensions.go
// because the then branch and an else block share a node kind.
type IfExpr syntax.Node

func CastIfExpr(n *syntax.Node) (*IfExpr, bool) {
	if n == nil || n.Kind() != syntax.IF_EXPR {
		return nil, false
	}
	return (*IfExpr)(n), true
}

func (n *IfExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *IfExpr) Condition() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}

func (n *IfExpr) ThenBranch() (*BlockExpr, bool) {
	return CastBlockExpr(n.Syntax().NthChildOfKind(syntax.BLOCK_EXPR, 0))
}

type LoopExpr syntax.Node

func CastLoopExpr(n *syntax.Node) (*LoopExpr, bool) {
	if n == nil || n.Kind() != syntax.LOOP_EXPR {
		return nil, false
	}
	return (*LoopExpr)(n), true
}

func (n *LoopExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *LoopExpr) Body() (*BlockExpr, bool) {
	return CastBlockExpr(n.Syntax().NthChildOfKind(syntax.BLOCK_EXPR, 0))
}

type WhileExpr syntax.Node

func CastWhileExpr(n *syntax.Node) (*WhileExpr, bool) {
	if n == nil || n.Kind() != syntax.WHILE_EXPR {
		return nil, false
	}
	return (*WhileExpr)(n), true
}

func (n *WhileExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *WhileExpr) Condition() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}

func (n *WhileExpr) Body() (*BlockExpr, bool) {
	return CastBlockExpr(n.Syntax().NthChildOfKind(syntax.BLOCK_EXPR, 0))
}

type ForExpr syntax.Node

func CastForExpr(n *syntax.Node) (*ForExpr, bool) {
	if n == nil || n.Kind() != syntax.FOR_EXPR {
		return nil, false
	}
	return (*ForExpr)(n), true
}

func (n *ForExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *ForExpr) Pat() (*Pat, bool) {
	return CastPat(nthOfSet(n.Syntax(), patKinds, 0))
}

func (n *ForExpr) Iterable() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}

func (n *ForExpr) Body() (*BlockExpr, bool) {
	return CastBlockExpr(n.Syntax().NthChildOfKind(syntax.BLOCK_EXPR, 0))
}

type MatchExpr syntax.Node

func CastMatchExpr(n *syntax.Node) (*MatchExpr, bool) {
	if n == nil || n.Kind() != syntax.MATCH_EXPR {
		return nil, false
	}
	return (*MatchExpr)(n), true
}

func (n *MatchExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *MatchExpr) Scrutinee() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}

func (n *MatchExpr) ArmList() (*MatchArmList, bool) {
	return CastMatchArmList(n.Syntax().NthChildOfKind(syntax.MATCH_ARM_LIST, 0))
}

type MatchArmList syntax.Node

func CastMatchArmList(n *syntax.Node) (*MatchArmList, bool) {
	if n == nil || n.Kind() != syntax.MATCH_ARM_LIST {
		return nil, false
	}
	return (*MatchArmList)(n), true
}

func (n *MatchArmList) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *MatchArmList) Arms() iter.Seq[*MatchArm] {
	return children(n.Syntax(), CastMatchArm)
}

type MatchArm syntax.Node

func CastMatchArm(n *syntax.Node) (*MatchArm, bool) {
	if n == nil || n.Kind() != syntax.MATCH_ARM {
		return nil, false
	}
	return (*MatchArm)(n), true
}

func (n *MatchArm) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *MatchArm) Pat() (*Pat, bool) {
	return CastPat(nthOfSet(n.Syntax(), patKinds, 0))
}

func (n *MatchArm) Guard() (*MatchGuard, bool) {
	return CastMatchGuard(n.Syntax().NthChildOfKind(syntax.MATCH_GUARD, 0))
}

func (n *MatchArm) Body() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}

type MatchGuard syntax.Node

func CastMatchGuard(n *syntax.Node) (*MatchGuard, bool) {
	if n == nil || n.Kind() != syntax.MATCH_GUARD {
		return nil, false
	}
	return (*MatchGuard)(n), true
}

func (n *MatchGuard) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *MatchGuard) Condition() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}

type BlockExpr syntax.Node

func CastBlockExpr(n *syntax.Node) (*BlockExpr, bool) {
	if n == nil || n.Kind() != syntax.BLOCK_EXPR {
		return nil, false
	}
	return (*BlockExpr)(n), true
}

func (n *BlockExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *BlockExpr) Stmts() iter.Seq[*Stmt] { return children(n.Syntax(), CastStmt) }

// Tail is the trailing expression whose value the block produces.
func (n *BlockExpr) Tail() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}

type ReturnExpr syntax.Node

func CastReturnExpr(n *syntax.Node) (*ReturnExpr, bool) {
	if n == nil || n.Kind() != syntax.RETURN_EXPR {
		return nil, false
	}
	return (*ReturnExpr)(n), true
}

func (n *ReturnExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *ReturnExpr) Value() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}

type BreakExpr syntax.Node

func CastBreakExpr(n *syntax.Node) (*BreakExpr, bool) {
	if n == nil || n.Kind() != syntax.BREAK_EXPR {
		return nil, false
	}
	return (*BreakExpr)(n), true
}

func (n *BreakExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *BreakExpr) Value() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}

type ContinueExpr syntax.Node

func CastContinueExpr(n *syntax.Node) (*ContinueExpr, bool) {
	if n == nil || n.Kind() != syntax.CONTINUE_EXPR {
		return nil, false
	}
	return (*ContinueExpr)(n), true
}

func (n *ContinueExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

type CallExpr syntax.Node

func CastCallExpr(n *syntax.Node) (*CallExpr, bool) {
	if n == nil || n.Kind() != syntax.CALL_EXPR {
		return nil, false
	}
	return (*CallExpr)(n), true
}

func (n *CallExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *CallExpr) Callee() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}

func (n *CallExpr) ArgList() (*ArgList, bool) {
	return CastArgList(n.Syntax().NthChildOfKind(syntax.ARG_LIST, 0))
}

type ArgList syntax.Node

func CastArgList(n *syntax.Node) (*ArgList, bool) {
	if n == nil || n.Kind() != syntax.ARG_LIST {
		return nil, false
	}
	return (*ArgList)(n), true
}

func (n *ArgList) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *ArgList) Args() iter.Seq[*Expr] { return children(n.Syntax(), CastExpr) }

type MethodCallExpr syntax.Node

func CastMethodCallExpr(n *syntax.Node) (*MethodCallExpr, bool) {
	if n == nil || n.Kind() != syntax.METHOD_CALL_EXPR {
		return nil, false
	}
	return (*MethodCallExpr)(n), true
}

func (n *MethodCallExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *MethodCallExpr) Receiver() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}

func (n *MethodCallExpr) NameRef() (*NameRef, bool) {
	return CastNameRef(n.Syntax().NthChildOfKind(syntax.NAME_REF, 0))
}

func (n *MethodCallExpr) GenericArgList() (*GenericArgList, bool) {
	return CastGenericArgList(n.Syntax().NthChildOfKind(syntax.GENERIC_ARG_LIST, 0))
}

func (n *MethodCallExpr) ArgList() (*ArgList, bool) {
	return CastArgList(n.Syntax().NthChildOfKind(syntax.ARG_LIST, 0))
}

type FieldExpr syntax.Node

func CastFieldExpr(n *syntax.Node) (*FieldExpr, bool) {
	if n == nil || n.Kind() != syntax.FIELD_EXPR {
		return nil, false
	}
	return (*FieldExpr)(n), true
}

func (n *FieldExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *FieldExpr) Base() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}

func (n *FieldExpr) NameRef() (*NameRef, bool) {
	return CastNameRef(n.Syntax().NthChildOfKind(syntax.NAME_REF, 0))
}

type IndexExpr syntax.Node

func CastIndexExpr(n *syntax.Node) (*IndexExpr, bool) {
	if n == nil || n.Kind() != syntax.INDEX_EXPR {
		return nil, false
	}
	return (*IndexExpr)(n), true
}

func (n *IndexExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *IndexExpr) Base() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}

func (n *IndexExpr) Index() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 1))
}

// BinExpr is a binary operation. The OpToken accessor lives in
// extensions.go.
type BinExpr syntax.Node

func CastBinExpr(n *syntax.Node) (*BinExpr, bool) {
	if n == nil || n.Kind() != syntax.BIN_EXPR {
		return nil, false
	}
	return (*BinExpr)(n), true
}

func (n *BinExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *BinExpr) Lhs() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}

func (n *BinExpr) Rhs() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 1))
}

type PrefixExpr syntax.Node

func CastPrefixExpr(n *syntax.Node) (*PrefixExpr, bool) {
	if n == nil || n.Kind() != syntax.PREFIX_EXPR {
		return nil, false
	}
	return (*PrefixExpr)(n), true
}

func (n *PrefixExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *PrefixExpr) Expr() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}

type RefExpr syntax.Node

func CastRefExpr(n *syntax.Node) (*RefExpr, bool) {
	if n == nil || n.Kind() != syntax.REF_EXPR {
		return nil, false
	}
	return (*RefExpr)(n), true
}

func (n *RefExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *RefExpr) MutToken() (*syntax.Token, bool) {
	t := n.Syntax().NthTokenOfKind(token.MUT_KW, 0)
	return t, t != nil
}

func (n *RefExpr) Expr() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}

// RangeExpr is a range. When only one operand is present in the tree the
// accessors cannot tell a missing start from a missing end; Start reports
// the first operand and End the second.
type RangeExpr syntax.Node

func CastRangeExpr(n *syntax.Node) (*RangeExpr, bool) {
	if n == nil || n.Kind() != syntax.RANGE_EXPR {
		return nil, false
	}
	return (*RangeExpr)(n), true
}

func (n *RangeExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *RangeExpr) Start() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}

func (n *RangeExpr) End() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 1))
}

type TupleExpr syntax.Node

func CastTupleExpr(n *syntax.Node) (*TupleExpr, bool) {
	if n == nil || n.Kind() != syntax.TUPLE_EXPR {
		return nil, false
	}
	return (*TupleExpr)(n), true
}

func (n *TupleExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *TupleExpr) Exprs() iter.Seq[*Expr] { return children(n.Syntax(), CastExpr) }

type ParenExpr syntax.Node

func CastParenExpr(n *syntax.Node) (*ParenExpr, bool) {
	if n == nil || n.Kind() != syntax.PAREN_EXPR {
		return nil, false
	}
	return (*ParenExpr)(n), true
}

func (n *ParenExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *ParenExpr) Expr() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}

type RecordExpr syntax.Node

func CastRecordExpr(n *syntax.Node) (*RecordExpr, bool) {
	if n == nil || n.Kind() != syntax.RECORD_EXPR {
		return nil, false
	}
	return (*RecordExpr)(n), true
}

func (n *RecordExpr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *RecordExpr) Path() (*Path, bool) {
	return CastPath(n.Syntax().NthChildOfKind(syntax.PATH, 0))
}

func (n *RecordExpr) FieldList() (*RecordExprFieldList, bool) {
	return CastRecordExprFieldList(n.Syntax().NthChildOfKind(syntax.RECORD_EXPR_FIELD_LIST, 0))
}

type RecordExprFieldList syntax.Node

func CastRecordExprFieldList(n *syntax.Node) (*RecordExprFieldList, bool) {
	if n == nil || n.Kind() != syntax.RECORD_EXPR_FIELD_LIST {
		return nil, false
	}
	return (*RecordExprFieldList)(n), true
}

func (n *RecordExprFieldList) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *RecordExprFieldList) Fields() iter.Seq[*RecordExprField] {
	return children(n.Syntax(), CastRecordExprField)
}

type RecordExprField syntax.Node

func CastRecordExprField(n *syntax.Node) (*RecordExprField, bool) {
	if n == nil || n.Kind() != syntax.RECORD_EXPR_FIELD {
		return nil, false
	}
	return (*RecordExprField)(n), true
}

func (n *RecordExprField) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *RecordExprField) NameRef() (*NameRef, bool) {
	return CastNameRef(n.Syntax().NthChildOfKind(syntax.NAME_REF, 0))
}

func (n *RecordExprField) Expr() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}

type MacroCall syntax.Node

func CastMacroCall(n *syntax.Node) (*MacroCall, bool) {
	if n == nil || n.Kind() != syntax.MACRO_CALL {
		return nil, false
	}
	return (*MacroCall)(n), true
}

func (n *MacroCall) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *MacroCall) Path() (*Path, bool) {
	return CastPath(n.Syntax().NthChildOfKind(syntax.PATH, 0))
}

func (n *MacroCall) ArgList() (*ArgList, bool) {
	return CastArgList(n.Syntax().NthChildOfKind(syntax.ARG_LIST, 0))
}

// Stmt is any statement node.
type Stmt syntax.Node

var stmtKinds = []syntax.Kind{syntax.LET_STMT, syntax.EXPR_STMT}

func CastStmt(n *syntax.Node) (*Stmt, bool) {
	if n == nil || !kindIn(n.Kind(), stmtKinds) {
		return nil, false
	}
	return (*Stmt)(n), true
}

func (n *Stmt) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *Stmt) Downcast() Node { return Wrap(n.Syntax()) }

type LetStmt syntax.Node

func CastLetStmt(n *syntax.Node) (*LetStmt, bool) {
	if n == nil || n.Kind() != syntax.LET_STMT {
		return nil, false
	}
	return (*LetStmt)(n), true
}

func (n *LetStmt) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *LetStmt) Attrs() iter.Seq[*Attr] { return children(n.Syntax(), CastAttr) }

func (n *LetStmt) Pat() (*Pat, bool) {
	return CastPat(nthOfSet(n.Syntax(), patKinds, 0))
}

func (n *LetStmt) Ty() (*Type, bool) {
	return CastType(nthOfSet(n.Syntax(), typeKinds, 0))
}

func (n *LetStmt) Initializer() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}

type ExprStmt syntax.Node

func CastExprStmt(n *syntax.Node) (*ExprStmt, bool) {
	if n == nil || n.Kind() != syntax.EXPR_STMT {
		return nil, false
	}
	return (*ExprStmt)(n), true
}

func (n *ExprStmt) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *ExprStmt) Expr() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}
