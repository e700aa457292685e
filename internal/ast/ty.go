package ast

import (
	"iter"

	"orn/internal/syntax"
	"orn/token"
)

// Type is any type node.
type Type syntax.Node

var typeKinds = []syntax.Kind{
	syntax.PATH_TYPE, syntax.REF_TYPE, syntax.TUPLE_TYPE, syntax.INFER_TYPE,
}

func CastType(n *syntax.Node) (*Type, bool) {
	if n == nil || !kindIn(n.Kind(), typeKinds) {
		return nil, false
	}
	return (*Type)(n), true
}

func (n *Type) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *Type) Downcast() Node { return Wrap(n.Syntax()) }

type PathType syntax.Node

func CastPathType(n *syntax.Node) (*PathType, bool) {
	if n == nil || n.Kind() != syntax.PATH_TYPE {
		return nil, false
	}
	return (*PathType)(n), true
}

func (n *PathType) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *PathType) Path() (*Path, bool) {
	return CastPath(n.Syntax().NthChildOfKind(syntax.PATH, 0))
}

type RefType syntax.Node

func CastRefType(n *syntax.Node) (*RefType, bool) {
	if n == nil || n.Kind() != syntax.REF_TYPE {
		return nil, false
	}
	return (*RefType)(n), true
}

func (n *RefType) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *RefType) LifetimeToken() (*syntax.Token, bool) {
	t := n.Syntax().NthTokenOfKind(token.LIFETIME, 0)
	return t, t != nil
}

func (n *RefType) MutToken() (*syntax.Token, bool) {
	t := n.Syntax().NthTokenOfKind(token.MUT_KW, 0)
	return t, t != nil
}

func (n *RefType) Ty() (*Type, bool) {
	return CastType(nthOfSet(n.Syntax(), typeKinds, 0))
}

type TupleType syntax.Node

func CastTupleType(n *syntax.Node) (*TupleType, bool) {
	if n == nil || n.Kind() != syntax.TUPLE_TYPE {
		return nil, false
	}
	return (*TupleType)(n), true
}

func (n *TupleType) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *TupleType) Tys() iter.Seq[*Type] { return children(n.Syntax(), CastType) }

type InferType syntax.Node

func CastInferType(n *syntax.Node) (*InferType, bool) {
	if n == nil || n.Kind() != syntax.INFER_TYPE {
		return nil, false
	}
	return (*InferType)(n), true
}

func (n *InferType) Syntax() *syntax.Node { return (*syntax.Node)(n) }
