package ast

import (
	"orn/internal/syntax"
)

// Hand-written accessors for the slots a positional by-kind search cannot
// tell apart.

// ElseBranch returns the else arm of a conditional. An else block shares
// its node kind with the then branch, so the search cannot be positional:
// a nested if child is always the else arm, otherwise the else arm is the
// second block.
func (n *IfExpr) ElseBranch() (*ElseBranch, bool) {
	if ifChild := n.Syntax().NthChildOfKind(syntax.IF_EXPR, 0); ifChild != nil {
		return CastElseBranch(ifChild)
	}
	return CastElseBranch(n.Syntax().NthChildOfKind(syntax.BLOCK_EXPR, 1))
}

// Trait returns the implemented trait of an impl block, which is present
// only in the `impl Trait for Type` form. With two type children the first
// is the trait; with one there is no trait.
func (n *ImplBlock) Trait() (*PathType, bool) {
	first := nthOfSet(n.Syntax(), typeKinds, 0)
	second := nthOfSet(n.Syntax(), typeKinds, 1)
	if second == nil {
		return nil, false
	}
	return CastPathType(first)
}

// SelfTy returns the type an impl block is for: the last type child.
func (n *ImplBlock) SelfTy() (*Type, bool) {
	if second := nthOfSet(n.Syntax(), typeKinds, 1); second != nil {
		return CastType(second)
	}
	return CastType(nthOfSet(n.Syntax(), typeKinds, 0))
}

// OpToken returns the operator of a binary operation: its first punctuation
// token child.
func (n *BinExpr) OpToken() (*syntax.Token, bool) {
	for c := range n.Syntax().Children() {
		if t, ok := c.(*syntax.Token); ok && t.Kind().IsPunct() {
			return t, true
		}
	}
	return nil, false
}
